package handlers

import (
	"net/http"
	"time"

	response "university_billing/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

const ServiceName = "university-billing-service"

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Status:    "UP",
		Service:   ServiceName,
		Timestamp: time.Now().UTC(),
	})
}
