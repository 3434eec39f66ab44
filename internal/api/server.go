// Package api exposes the REST surface over the task and tag services.
package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dotodo/todos/internal/services/tag"
	"github.com/dotodo/todos/internal/services/task"
)

// Server is the todos API server
type Server struct {
	tasks  task.Service
	tags   tag.Service
	router *gin.Engine
}

// NewServer creates a new API server and wires all routes under /api
func NewServer(tasks task.Service, tags tag.Service, allowedOrigin string) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(cors(allowedOrigin))

	s := &Server{
		tasks:  tasks,
		tags:   tags,
		router: router,
	}

	api := router.Group("/api")
	{
		api.POST("/todos", s.handleCreateTodo)
		api.GET("/todos", s.handleListTodos)
		api.GET("/todos/:id", s.handleGetTodo)
		api.PATCH("/todos/:id", s.handleUpdateTodo)
		api.DELETE("/todos/:id", s.handleDeleteTodo)

		api.GET("/tags", s.handleListTags)
		api.GET("/tags/:id", s.handleGetTag)
		api.POST("/tags", s.handleCreateTag)
		api.PATCH("/tags/:id", s.handleUpdateTag)
	}

	return s
}

// Router exposes the underlying handler for http.Server and tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// requestID tags every request with a unique id for log correlation
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs each request with method, path, status and latency
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// cors allows the single configured cross-origin caller
func cors(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
