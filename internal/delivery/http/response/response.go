package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope returned by the form endpoints:
// {success, message?, error?}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a success envelope.
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
	})
}

// Error sends a failure envelope.
func Error(c *gin.Context, code int, errMsg string) {
	c.JSON(code, Response{
		Success: false,
		Error:   errMsg,
	})
}
