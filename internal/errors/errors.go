package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/doctor/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for request failures
//     These functions handle both logging and HTTP response automatically
//   - Use logger.Warn()/logger.ErrorErr() only where processing continues,
//     e.g. a model call that failed but is still shown to the user as text
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "validation_error")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeSessionNotFound = "session_not_found"
)

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 404 error for unknown or expired sessions
func SessionNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeSessionNotFound,
		Message: "session not found",
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for validation failures
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := ""

	if err != nil {
		details = sanitizeError(err)
		if strings.Contains(err.Error(), "binding") || strings.Contains(err.Error(), "unknown") {
			message = "request validation failed"
		}
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	// enum validation messages carry no secrets and tell the caller what to fix
	if strings.Contains(lower, "unknown language") || strings.Contains(lower, "unknown depth") ||
		strings.Contains(lower, "unknown action") || strings.Contains(lower, "select a language") {
		return errMsg
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") {
		return "connection error occurred"
	}

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lower, "not found") {
		return "resource not found"
	}

	return "an error occurred"
}
