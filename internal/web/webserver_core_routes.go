// Package web provides the HTTP server and web interface for go-foxstarter
package web

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/go-while/go-foxstarter/internal/config"
	"github.com/go-while/go-foxstarter/internal/models"
)

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	StartTime time.Time // Track server start time for uptime calculations

	log *zap.Logger
	now func() time.Time
}

// NewServer creates a new web server instance
func NewServer(log *zap.Logger, webconfig *config.WebConfig) *WebServer {
	if webconfig.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Configure Gin to trust reverse proxy headers
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	server := &WebServer{
		Router: router,
		Config: webconfig,
		log:    log,
		now:    time.Now,
	}

	if webconfig.Debug {
		router.Use(server.ApacheLogFormat())
	}
	router.Use(gin.CustomRecovery(server.recoverFault))

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	router.Use(secure.New(secureConfig))

	// Add reverse proxy middleware for handling X-Forwarded headers
	router.Use(server.ReverseProxyMiddleware())

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Static files first
	s.Router.GET("/static/*filepath", EmbeddedStaticHandler("/static"))
	s.Router.GET("/favicon.ico", EmbeddedFileHandler("static/favicon.svg"))
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	// Single page front-end
	s.Router.GET("/", s.homePage)

	// API documentation
	s.Router.GET("/swagger", s.swaggerPage)
	s.Router.GET("/swagger/", s.swaggerPage)
	s.Router.GET("/swagger/json", s.swaggerJSON)

	// Diagnostic endpoints
	s.Router.POST("/hello", s.helloHandler)
	s.Router.POST("/test", s.testHandler)
	s.Router.GET("/test", s.testText)
	s.Router.POST("/"+RegionalWord, s.regionalHandler)
	s.Router.GET("/"+RegionalWord, s.regionalText)

	// State endpoints
	s.Router.POST("/counter", s.counterHandler)
	s.Router.POST("/theme", s.themeHandler)

	s.Router.NoRoute(func(c *gin.Context) {
		abortJSON(c, http.StatusNotFound, models.KindNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	s.Router.NoMethod(func(c *gin.Context) {
		abortJSON(c, http.StatusMethodNotAllowed, models.KindMethodNotAllowed, "method "+c.Request.Method+" not allowed on "+c.Request.URL.Path)
	})
}

// Start runs the web server until ctx is canceled, then shuts it down gracefully
func (s *WebServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.Config.Addr(),
		Handler:      s.Router,
		ReadTimeout:  s.Config.ReadTimeout,
		WriteTimeout: s.Config.WriteTimeout,
	}
	s.StartTime = s.now() // Set the start time for uptime calculations

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("listener", parallel.Fail, func(ctx context.Context) error {
			var err error
			if s.Config.SSL {
				s.log.Info("[WEB]: Starting HTTPS server", zap.String("addr", srv.Addr))
				err = srv.ListenAndServeTLS(s.Config.CertFile, s.Config.KeyFile)
			} else {
				s.log.Info("[WEB]: Starting HTTP server", zap.String("addr", srv.Addr))
				err = srv.ListenAndServe()
			}
			if errors.Is(err, http.ErrServerClosed) {
				return errors.WithStack(ctx.Err())
			}
			return errors.Wrap(err, "web server failed")
		})
		spawn("shutdown", parallel.Fail, func(ctx context.Context) error {
			<-ctx.Done()

			s.log.Info("[WEB]: Shutting down HTTP server", zap.Duration("uptime", s.now().Sub(s.StartTime)))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "graceful shutdown failed")
			}
			return errors.WithStack(ctx.Err())
		})
		return nil
	})
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handle X-Forwarded-Proto to detect if the original request was HTTPS
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		// Handle X-Forwarded-Host to get the original host
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}

// ApacheLogFormat writes one combined-log line per request
func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			strings.ReplaceAll(param.Request.UserAgent(), `"`, `'`),
		)
	})
}
