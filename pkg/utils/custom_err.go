package utils

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDayNotFound         = errors.New("day not found")
	ErrActivityNotFound    = errors.New("activity not found")
	ErrLastDay             = errors.New("cannot delete the only remaining day")
	ErrScheduleParse       = errors.New("schedule file is malformed")
	ErrSchedulePersistence = errors.New("schedule persistence failed")
	ErrInvalidSchedule     = errors.New("invalid schedule")
	ErrAINotConfigured     = errors.New("AI API key not configured")
	ErrAIQuotaExceeded     = errors.New("AI API quota exceeded")
	ErrAIInvalidResponse   = errors.New("invalid response from AI")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")

	// ErrAIKeyRejected is a configuration failure reported by the provider itself.
	ErrAIKeyRejected = fmt.Errorf("%w: API key rejected by provider", ErrAINotConfigured)
)

// ErrorKind is the coarse failure class shown to the user.
type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindQuota         ErrorKind = "quota"
	KindFormat        ErrorKind = "format"
	KindValidation    ErrorKind = "validation"
	KindPersistence   ErrorKind = "persistence"
	KindParse         ErrorKind = "parse"
	KindNotFound      ErrorKind = "not_found"
	KindBadRequest    ErrorKind = "bad_request"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindUnknown       ErrorKind = "unknown"
)

func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAINotConfigured):
		return KindConfiguration
	case errors.Is(err, ErrAIQuotaExceeded):
		return KindQuota
	case errors.Is(err, ErrAIInvalidResponse):
		return KindFormat
	case errors.Is(err, ErrInvalidSchedule):
		return KindValidation
	case errors.Is(err, ErrSchedulePersistence):
		return KindPersistence
	case errors.Is(err, ErrScheduleParse):
		return KindParse
	case errors.Is(err, ErrDayNotFound), errors.Is(err, ErrActivityNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrLastDay):
		return KindBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	}

	// upstream SDK errors that were not wrapped by a client adapter
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return KindConfiguration
	case strings.Contains(msg, "quota"):
		return KindQuota
	case strings.Contains(msg, "Invalid JSON"):
		return KindFormat
	}
	return KindUnknown
}

// UserMessage renders err the way the editor shows it in a toast.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch ClassifyError(err) {
	case KindConfiguration:
		if errors.Is(err, ErrAIKeyRejected) || !errors.Is(err, ErrAINotConfigured) {
			return "Invalid AI API key. Please check your configuration."
		}
		return "AI API key not configured. Please set the provider API key in your .env file."
	case KindQuota:
		return "AI API quota exceeded. Please check your billing."
	case KindFormat:
		return "AI returned invalid response. Please try rephrasing your request."
	}
	return err.Error()
}
