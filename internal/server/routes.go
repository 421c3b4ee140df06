package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	gin.SetMode(s.ginMode)
	s.router = gin.New()

	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(requestIDMiddleware())
	s.router.Use(s.corsMiddleware())
	s.router.Use(s.maxBodySizeMiddleware())
	if s.rateLimiter != nil {
		s.router.Use(s.rateLimitMiddleware())
	}

	s.router.GET("/", showIndexPage)
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/api/stats", s.getStatsData)

	s.router.GET("/models", s.listModels)
	s.router.GET("/models/:model/settings", s.modelSettings)

	generate := s.router.Group("/generate")
	{
		generate.POST("", s.generate)
		generate.POST("/batch", s.generateBatch)
		generate.POST("/legacy", s.generateLegacy)
	}
}
