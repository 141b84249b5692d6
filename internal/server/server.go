package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stackit-app/backend/internal/config"
	"github.com/stackit-app/backend/internal/handlers"
)

type Server struct {
	handler *handlers.Handler
}

// New creates and configures the HTTP server
func New(cfg config.Config, handler *handlers.Handler) *http.Server {
	gin.SetMode(cfg.GinMode)

	s := &Server{handler: handler}
	router := s.RegisterRoutes()

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := r.Group("/api")
	{
		// Question routes
		api.GET("/questions", s.handler.Question.GetQuestions)
		api.POST("/questions", s.handler.Question.CreateQuestion)
		api.GET("/questions/:id", s.handler.Question.GetQuestion)
		api.POST("/questions/:id/vote", s.handler.Question.VoteQuestion)

		// Answer routes
		api.GET("/questions/:id/answers", s.handler.Answer.GetAnswers)
		api.POST("/questions/:id/answers", s.handler.Answer.CreateAnswer)
		api.POST("/answers/:id/vote", s.handler.Answer.VoteAnswer)
		api.POST("/answers/:id/accept", s.handler.Answer.AcceptAnswer)

		// Comment routes
		api.GET("/questions/:id/comments", s.handler.Comment.GetComments)
		api.POST("/questions/:id/comments", s.handler.Comment.CreateComment)
	}

	return r
}
