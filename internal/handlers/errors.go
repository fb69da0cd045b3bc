package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error    string   `json:"error" example:"Bad Request"`
	Messages []string `json:"messages,omitempty"`
}

func abortWithError(c *gin.Context, status int, messages ...string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:    http.StatusText(status),
		Messages: messages,
	})
}
