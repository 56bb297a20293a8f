package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Kind    ErrorKind   `json:"kind,omitempty"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

var kindStatus = map[ErrorKind]int{
	KindConfiguration: http.StatusServiceUnavailable,
	KindQuota:         http.StatusTooManyRequests,
	KindFormat:        http.StatusBadGateway,
	KindValidation:    http.StatusUnprocessableEntity,
	KindPersistence:   http.StatusInternalServerError,
	KindParse:         http.StatusInternalServerError,
	KindNotFound:      http.StatusNotFound,
	KindBadRequest:    http.StatusBadRequest,
	KindUnauthorized:  http.StatusUnauthorized,
	KindUnknown:       http.StatusInternalServerError,
}

// HandleServiceError reports err with its classified kind and the message the editor shows.
func HandleServiceError(c *gin.Context, err error) {
	kind := ClassifyError(err)
	code, ok := kindStatus[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[%s] %s error: %v", c.GetString("trace_id"), kind, err)
	}

	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Kind:    kind,
		Message: UserMessage(err),
		TraceID: c.GetString("trace_id"),
	})
}
