package web

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/swfz/courserepo/internal/models"
)

// ErrCode identifies an API error independently of its message
type ErrCode string

const (
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrInvalidArgument   ErrCode = "INVALID_ARGUMENT"
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"
	ErrInternal          ErrCode = "INTERNAL_ERROR"
)

// Response is the JSON envelope of every API response
type Response struct {
	Data     any        `json:"data"`
	Error    *ErrorBody `json:"error,omitempty"`
	Metadata Metadata   `json:"metadata"`
}

// ErrorBody describes a failed request
type ErrorBody struct {
	Code    ErrCode `json:"code"`
	Message string  `json:"message"`
}

// Metadata carries request tracing information
type Metadata struct {
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Data: data, Metadata: metadata(c)})
}

func fail(c *gin.Context, status int, code ErrCode, message string) {
	c.AbortWithStatusJSON(status, Response{
		Error:    &ErrorBody{Code: code, Message: message},
		Metadata: metadata(c),
	})
}

// failErr maps the error taxonomy onto HTTP statuses
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		fail(c, http.StatusNotFound, ErrNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidArgument):
		fail(c, http.StatusBadRequest, ErrInvalidArgument, err.Error())
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrInternal, "internal server error")
	}
}

func metadata(c *gin.Context) Metadata {
	return Metadata{
		RequestID: c.GetString(contextKeyRequestID),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
