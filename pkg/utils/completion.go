package utils

import (
	"context"
	"strings"
)

// TokenLimitParam names the request field that caps the completion length.
type TokenLimitParam string

const (
	TokenParamMaxTokens           TokenLimitParam = "max_tokens"
	TokenParamMaxCompletionTokens TokenLimitParam = "max_completion_tokens"
)

type CompletionRequest struct {
	Model        string
	System       string
	User         string
	Temperature  float32
	TokenParam   TokenLimitParam
	MaxTokens    int
	JSONResponse bool
}

// CompletionClientInterface is a single system+user round trip to a text model.
type CompletionClientInterface interface {
	Provider() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

var placeholderKeys = map[string]bool{
	"your_openai_api_key_here": true,
	"your_gemini_api_key_here": true,
	"your_api_key_here":        true,
}

// IsConfiguredKey treats blank keys and the sample .env placeholders as absent.
func IsConfiguredKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !placeholderKeys[key]
}
