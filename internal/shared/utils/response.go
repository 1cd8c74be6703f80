package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litrevu/litrevu/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: "Resource created successfully",
	}
	if len(message) > 0 {
		response.Message = message[0]
	}
	c.JSON(http.StatusCreated, response)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    "error",
			Message: message,
		},
	})
}

// FieldErrorResponse reports per-field form errors with status 400.
func FieldErrorResponse(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(errors.ErrorTypeValidation),
			Message: "Validation failed",
			Fields:  fields,
		},
	})
}

// ErrorInfoFromError converts err into the public error payload and status.
// Errors that are not AppErrors are reported as a generic internal error so
// that datastore details never reach the client.
func ErrorInfoFromError(err error) (int, ErrorInfo) {
	if appErr := errors.GetAppError(err); appErr != nil {
		info := ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
			Fields:  appErr.Fields,
		}
		if appErr.Code >= http.StatusInternalServerError {
			info.Details = ""
		}
		return appErr.Code, info
	}
	return http.StatusInternalServerError, ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: "Internal server error occurred",
	}
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	statusCode, info := ErrorInfoFromError(err)
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   &info,
	})
}
