package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "club-service/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// writeError converts usecase errors to HTTP responses. Internal failures
// never expose their cause.
func writeError(c *gin.Context, err error) {
	status := apperrors.StatusOf(err)

	var code string
	switch status {
	case http.StatusBadRequest:
		code = "validation_error"
	case http.StatusNotFound:
		code = "not_found"
	case http.StatusConflict:
		code = "conflict"
	case http.StatusForbidden:
		code = "invalid_credentials"
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
		return
	}

	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}

func badBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: "invalid request body: " + err.Error(),
	})
}

// parseID reads a positive integer path or query value.
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
