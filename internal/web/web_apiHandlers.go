package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-while/go-foxstarter/internal/models"
)

// Handlers for the state endpoints. Neither keeps anything between requests:
// the caller sends the state it knows and receives the new one.

// counterHandler serves POST /counter
func (s *WebServer) counterHandler(c *gin.Context) {
	var req models.CounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.malformedRequest(c, err)
		return
	}

	if !models.KnownAction(req.Action) {
		s.log.Warn("[WEB]: Unknown counter action, count left unchanged",
			zap.String("action", req.Action),
			zap.Int64("currentCount", *req.CurrentCount))
	}

	c.JSON(http.StatusOK, models.ApplyCounterAction(req.Action, *req.CurrentCount))
}

// themeHandler serves POST /theme. The submitted theme is echoed, not validated.
func (s *WebServer) themeHandler(c *gin.Context) {
	var req models.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.malformedRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ThemeResponse{
		Message:   models.ThemeChangedMessage(req.Theme),
		Theme:     req.Theme,
		Timestamp: s.now().UTC(),
	})
}
