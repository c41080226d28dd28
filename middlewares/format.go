package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RespondJSON writes a JSON response to the client.
func RespondJSON(c *gin.Context, data interface{}, status int) {
	c.JSON(status, data)
}

// HttpError logs an error and writes an HTTP error response to the client.
func HttpError(c *gin.Context, message string, status int, err error) {
	event := log.Warn()
	if status >= 500 {
		event = log.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("request_id", c.GetString(ContextRequestID)).
		Msg(message)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// HttpValidationError responds with the per-field messages of a failed validation.
func HttpValidationError(c *gin.Context, status int, fields map[string]string) {
	c.AbortWithStatusJSON(status, gin.H{"error": "validation failed", "fields": fields})
}
