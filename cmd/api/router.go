package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"employee-service/internal/shared/middleware"
	"employee-service/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)
	if c.RateLimiter != nil {
		router.Use(middleware.RateLimit(c.RateLimiter))
	}

	router.GET("/health", healthCheckHandler(c))

	api := router.Group("/api")
	c.EmployeeHandler.RegisterRoutes(api)

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		if err := c.EmployeeRepo.Ping(pingCtx); err != nil {
			log.Error().
				Err(err).
				Str("request_id", ctx.GetString("request_id")).
				Msg("❌ Health check failed")
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"driver":  c.Config.Database.Driver,
			"version": c.Config.App.Version,
		})
	}
}
