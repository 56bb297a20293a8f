package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAICompletionClient struct {
	client *openai.Client
}

func NewOpenAICompletionClient(apiKey, baseURL string) *OpenAICompletionClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAICompletionClient{client: openai.NewClientWithConfig(config)}
}

func (c *OpenAICompletionClient) Provider() string { return "openai" }

func (c *OpenAICompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
	}

	switch req.TokenParam {
	case TokenParamMaxCompletionTokens:
		chatReq.MaxCompletionTokens = req.MaxTokens
	default:
		chatReq.MaxTokens = req.MaxTokens
	}

	if req.JSONResponse {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

func classifyOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code, _ := apiErr.Code.(string)
		switch {
		case code == "insufficient_quota", apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrAIQuotaExceeded, err)
		case code == "invalid_api_key", apiErr.HTTPStatusCode == http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrAIKeyRejected, err)
		}
		return fmt.Errorf("openai: %w", err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrAIQuotaExceeded, err)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %v", ErrAIKeyRejected, err)
		}
	}

	if strings.Contains(err.Error(), "quota") {
		return fmt.Errorf("%w: %v", ErrAIQuotaExceeded, err)
	}
	return fmt.Errorf("openai: %w", err)
}
