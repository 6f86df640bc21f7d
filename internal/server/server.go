package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server exposes the liveness endpoint, separate from the chat-event
// ingestion path.
type Server struct {
	appEnv  string
	version string
	port    string
	router  *gin.Engine
}

// New creates the HTTP server with its routes configured.
func New(appEnv, version, port string) *Server {
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		appEnv:  appEnv,
		version: version,
		port:    port,
		router:  router,
	}
	router.GET("/health", s.handleHealth)
	return s
}

// Run starts the HTTP server. It blocks until the listener fails.
func (s *Server) Run() error {
	return s.router.Run(":" + s.port)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "linkpulse-bot",
		"version": s.version,
	})
}
