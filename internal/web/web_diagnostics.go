package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-while/go-foxstarter/internal/models"
)

// RegionalWord is the path of the third diagnostic endpoint
const RegionalWord = "hau"

// Fixed replies of the diagnostic endpoints. Request bodies are never read.
const (
	HelloMessage    = "Hello from the server!"
	TestMessage     = "Test endpoint works!"
	RegionalMessage = "Ghét Hàu"
)

func (s *WebServer) helloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: HelloMessage})
}

func (s *WebServer) testHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: TestMessage})
}

func (s *WebServer) regionalHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: RegionalMessage})
}

// plain-text GET variants
func (s *WebServer) testText(c *gin.Context) {
	c.String(http.StatusOK, "Test")
}

func (s *WebServer) regionalText(c *gin.Context) {
	c.String(http.StatusOK, RegionalMessage)
}
