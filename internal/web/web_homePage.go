package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-while/go-foxstarter/internal/models"
)

// homePage serves the embedded single page front-end on "/"
func (s *WebServer) homePage(c *gin.Context) {
	if !serveEmbedded(c, "static/index.html", "no-cache") {
		s.log.Error("[WEB]: Embedded index.html missing")
		abortJSON(c, http.StatusInternalServerError, models.KindServerFault, "front-end not available")
	}
}

// swaggerPage renders the API documentation viewer
func (s *WebServer) swaggerPage(c *gin.Context) {
	if !serveEmbedded(c, "static/swagger.html", "no-cache") {
		s.log.Error("[WEB]: Embedded swagger.html missing", zap.String("path", c.Request.URL.Path))
		abortJSON(c, http.StatusInternalServerError, models.KindServerFault, "documentation not available")
	}
}

// swaggerJSON returns the OpenAPI document of the JSON endpoints
func (s *WebServer) swaggerJSON(c *gin.Context) {
	if !serveEmbedded(c, "static/openapi.json", "no-cache") {
		s.log.Error("[WEB]: Embedded openapi.json missing")
		abortJSON(c, http.StatusInternalServerError, models.KindServerFault, "documentation not available")
	}
}
