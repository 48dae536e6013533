package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase"
	"university_billing/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderGatewayRequest = "X-Gateway-Request"
	HeaderGatewaySecret  = "X-Gateway-Secret"

	principalKey = "principal"
)

var (
	errDirectAccess    = pkg.NewDomainErrorSimple("DIRECT_ACCESS_FORBIDDEN", "Direct access forbidden", http.StatusForbidden)
	errMissingToken    = pkg.NewDomainErrorSimple("MISSING_TOKEN", "Authentication token is required", http.StatusUnauthorized)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid or expired token", http.StatusUnauthorized)
	errAccessDenied    = pkg.NewDomainErrorSimple("ACCESS_DENIED", "Access denied", http.StatusForbidden)
)

// GatewayTrust rejects requests that did not come through the API gateway.
// It runs before any token validation.
func GatewayTrust(filter usecase.GatewayTrustFilter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := filter.Check(c.GetHeader(HeaderGatewayRequest), c.GetHeader(HeaderGatewaySecret)); err != nil {
			log.Printf("[auth][middleware] direct access rejected method=%s path=%s remote=%s", c.Request.Method, c.FullPath(), c.ClientIP())
			c.AbortWithStatusJSON(errDirectAccess.HTTPStatus, errDirectAccess.ToHTTPError())
			return
		}
		c.Next()
	}
}

// RequireRole authorizes the bearer token against role and stores the
// principal in the request context.
func RequireRole(access usecase.IAccessUseCase, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := access.Authorize(c.Request.Context(), BearerToken(c.GetHeader("Authorization")), role)
		if err != nil {
			appErr := mapAccessError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// PrincipalFrom returns the principal admitted by RequireRole.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

// ActorID is the subject id of the admitted principal, or "" when none.
func ActorID(c *gin.Context) string {
	p, _ := PrincipalFrom(c)
	return p.SubjectID
}

func mapAccessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingToken):
		return errMissingToken
	case errors.Is(err, usecase.ErrAuthorizationDenied):
		return errAccessDenied
	case errors.Is(err, usecase.ErrGatewayTrustViolation):
		return errDirectAccess
	default:
		return errUnauthenticated
	}
}
