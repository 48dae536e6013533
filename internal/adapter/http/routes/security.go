package routes

import (
	"university_billing/internal/adapter/http/middleware"
	"university_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const AdminRole = "admin"

// guards is the chain every business route runs behind: gateway trust first, then the role check.
func guards(filter usecase.GatewayTrustFilter, access usecase.IAccessUseCase, role string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		middleware.GatewayTrust(filter),
		middleware.RequireRole(access, role),
	}
}
