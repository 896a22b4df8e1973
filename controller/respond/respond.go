package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse error payload returned by non-200 endpoints
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
}

// BadRequest respond 400 with a short diagnostic
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// NotFound respond 404 with a short diagnostic
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// BadGateway respond 502 for upstream chain/RPC failures
func BadGateway(c *gin.Context, message string) {
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: message})
}
