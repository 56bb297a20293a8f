package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiCompletionClient dials Gemini per call; the planner never keeps a
// connection open between requests.
type GeminiCompletionClient struct {
	apiKey string
}

func NewGeminiCompletionClient(apiKey string) *GeminiCompletionClient {
	return &GeminiCompletionClient{apiKey: apiKey}
}

func (c *GeminiCompletionClient) Provider() string { return "gemini" }

func (c *GeminiCompletionClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(req.Model)
	m.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	m.SetTemperature(req.Temperature)
	m.SetMaxOutputTokens(int32(req.MaxTokens))
	if req.JSONResponse {
		m.ResponseMIMEType = "application/json"
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.User))
	if err != nil {
		return "", classifyGeminiError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content.WriteString(string(text))
		}
	}
	return content.String(), nil
}

func classifyGeminiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", ErrAIQuotaExceeded, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", ErrAIKeyRejected, err)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"), strings.Contains(msg, "ResourceExhausted"), strings.Contains(msg, "quota"):
		return fmt.Errorf("%w: %v", ErrAIQuotaExceeded, err)
	case strings.Contains(msg, "API key not valid"), strings.Contains(msg, "API_KEY_INVALID"):
		return fmt.Errorf("%w: %v", ErrAIKeyRejected, err)
	}
	return fmt.Errorf("gemini: %w", err)
}
