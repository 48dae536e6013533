package routes

import (
	"net/http"

	"university_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addPingRoutes registers the unauthenticated liveness endpoints.
func addPingRoutes(r gin.IRoutes) {
	r.GET("/health", handlers.Health)
	r.GET("/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
