// internal/utils/response.go
package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/dippchain/studio-api/internal/i18n"

	"github.com/gin-gonic/gin"
)

const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Now is the envelope clock.
var Now = time.Now

type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error codes
const (
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeMissingFields      = "MISSING_FIELDS"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidFormat      = "INVALID_FORMAT"
	CodeInvalidContentType = "INVALID_CONTENT_TYPE"
	CodeNoFiles            = "NO_FILES"
	CodeFileTooLarge       = "FILE_TOO_LARGE"
	CodeInvalidPagination  = "INVALID_PAGINATION"
	CodeInvalidFilter      = "INVALID_FILTER"
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyRegistered  = "ALREADY_REGISTERED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternalError      = "INTERNAL_ERROR"
)

func timestamp() string {
	return Now().UTC().Format(TimestampLayout)
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: timestamp(),
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: timestamp(),
	})
}

// AbortWithError writes the error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, statusCode int, code, message string) {
	ErrorResponse(c, statusCode, code, message, nil)
	c.Abort()
}

func BadRequestResponse(c *gin.Context, code, message string, details interface{}) {
	lang := GetLangFromContext(c)
	if message == "" {
		message = i18n.T(lang, i18n.KeyValidationInvalid, "request")
	}
	ErrorResponse(c, http.StatusBadRequest, code, message, details)
}

func MissingFieldsResponse(c *gin.Context, fields []string) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyValidationMissingFields, strings.Join(fields, ", "))
	ErrorResponse(c, http.StatusBadRequest, CodeMissingFields, message, gin.H{"fields": fields})
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	lang := GetLangFromContext(c)
	message := i18n.T(lang, i18n.KeyValidationInvalid, "input")
	if len(errors) == 1 {
		message = errors[0].Message
	}
	ErrorResponse(c, http.StatusBadRequest, CodeValidationError, message, errors)
}

func NotFoundResponse(c *gin.Context, key string) {
	lang := GetLangFromContext(c)
	ErrorResponse(c, http.StatusNotFound, CodeNotFound, i18n.T(lang, key), nil)
}

func ConflictResponse(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusConflict, code, message, nil)
}

// MethodNotAllowedResponse writes the bare 405 body the dashboard expects.
func MethodNotAllowedResponse(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = i18n.T(GetLangFromContext(c), i18n.KeyInternalError)
	}
	ErrorResponse(c, http.StatusInternalServerError, CodeInternalError, message, nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if langStr, ok := lang.(string); ok {
			return langStr
		}
	}
	return "en"
}
