package utils

import (
	"net/http"
	"time"

	"estatehub/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorBody is the "error" member of a failure envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Respond writes a success envelope.
func Respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, SuccessResponse{Success: true, Data: data, Message: message})
}

// RespondError maps err onto the failure envelope and aborts the chain.
func RespondError(c *gin.Context, err error) {
	appErr := AsAppError(err)
	body := ErrorBody{Code: appErr.Code, Message: appErr.Message, Details: appErr.Details}

	logger := RequestLogger(c)
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(appErr.Message, zap.String("code", appErr.Code), zap.Error(appErr.Err))
		if config.IsDevelopment() {
			body.Stack = appErr.StackTrace()
		}
	} else {
		logger.Debug(appErr.Message, zap.String("code", appErr.Code), zap.Int("status", appErr.Status))
	}

	c.AbortWithStatusJSON(appErr.Status, ErrorResponse{
		Success:   false,
		Error:     body,
		Timestamp: time.Now().UTC().Format(timestampLayout),
	})
}

// RequestLogger returns the request-scoped logger set by the logging
// middleware, or the global logger.
func RequestLogger(c *gin.Context) *zap.Logger {
	if c != nil {
		if l, exists := c.Get("logger"); exists {
			if logger, ok := l.(*zap.Logger); ok {
				return logger
			}
		}
	}
	return GetLogger()
}

// ErrorHandler recovers panics into an INTERNAL_ERROR envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				RequestLogger(c).Error("Unhandled panic", zap.Any("error", rec))
				RespondError(c, Internal(nil))
			}
		}()
		c.Next()
	}
}

// NoRoute answers unknown routes with NOT_FOUND.
func NoRoute(c *gin.Context) {
	RespondError(c, NotFound("Route "+c.Request.Method+" "+c.Request.URL.Path))
}
