package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// BadRequest reports a 400 with the given reason.
func BadRequest(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	JSONError(c, http.StatusBadRequest, message, details)
}

// NotFound reports a 404 for a missing resource.
func NotFound(c *gin.Context, message string) {
	JSONError(c, http.StatusNotFound, message, "")
}

// InternalError reports a 500 without leaking internals to the client.
func InternalError(c *gin.Context, message string, err error) {
	Logger := GetLogger()
	Logger.Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
}
