package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-while/go-foxstarter/internal/models"
)

// abortJSON stops the handler chain and replies with an ErrorResponse
func abortJSON(c *gin.Context, status int, kind, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error: message,
		Kind:  kind,
	})
}

// malformedRequest replies 400 for a body that could not be decoded
func (s *WebServer) malformedRequest(c *gin.Context, err error) {
	s.log.Debug("[WEB]: Malformed request",
		zap.String("path", c.Request.URL.Path),
		zap.String("client", c.ClientIP()),
		zap.Error(err))
	abortJSON(c, http.StatusBadRequest, models.KindMalformedRequest, "malformed request body: "+err.Error())
}

// recoverFault turns a handler panic into a 500 server_fault reply
func (s *WebServer) recoverFault(c *gin.Context, recovered any) {
	s.log.Error("[WEB]: Handler panic",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("panic", fmt.Sprint(recovered)),
		zap.Stack("stack"))
	abortJSON(c, http.StatusInternalServerError, models.KindServerFault, "internal server error")
}
