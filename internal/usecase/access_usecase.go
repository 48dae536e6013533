package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log"
	"strings"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"
)

var (
	ErrGatewayTrustViolation = errors.New("direct access forbidden")
	ErrMissingToken          = errors.New("authentication token is required")
	ErrAuthenticationFailed  = errors.New("invalid or expired token")
	ErrAuthorizationDenied   = errors.New("access denied")
)

// GatewayMarkerValue is the only accepted value of the gateway marker header.
const GatewayMarkerValue = "true"

// GatewayTrustFilter admits only requests that came through the API gateway.
//
// The shared secret is an operational segmentation control, not key material.
type GatewayTrustFilter struct {
	secret string
}

func NewGatewayTrustFilter(secret string) GatewayTrustFilter {
	return GatewayTrustFilter{secret: secret}
}

// Check admits iff marker is exactly "true" and secret exactly equals the configured
// secret. An empty configured secret admits nothing.
func (f GatewayTrustFilter) Check(marker, secret string) error {
	if f.secret == "" || marker != GatewayMarkerValue {
		return ErrGatewayTrustViolation
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(f.secret)) != 1 {
		return ErrGatewayTrustViolation
	}
	return nil
}

// IAccessUseCase authorizes privileged operations against the identity authority.

type IAccessUseCase interface {
	Authorize(ctx context.Context, token string, requiredRole string) (entities.Principal, error)
}

type AccessUseCase struct {
	validator interfaces.ITokenValidator
}

var _ IAccessUseCase = (*AccessUseCase)(nil)

func NewAccessUseCase(validator interfaces.ITokenValidator) *AccessUseCase {
	return &AccessUseCase{validator: validator}
}

// Authorize validates token remotely and checks the principal's role.
//
// Rejections by the authority and authority outages both surface as
// ErrAuthenticationFailed: callers fail closed either way.
func (u *AccessUseCase) Authorize(ctx context.Context, token string, requiredRole string) (entities.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		log.Printf("[auth][usecase] missing token")
		return entities.Principal{}, ErrMissingToken
	}
	if u.validator == nil {
		log.Printf("[auth][usecase] token validator not configured")
		return entities.Principal{}, ErrAuthenticationFailed
	}

	p, err := u.validator.Validate(ctx, token)
	if err != nil {
		log.Printf("[auth][usecase] token validation failed err=%v", err)
		return entities.Principal{}, ErrAuthenticationFailed
	}

	if !p.HasRole(requiredRole) {
		log.Printf("[auth][usecase] role denied subject=%s role=%s required=%s", p.SubjectID, p.Role, entities.CanonicalRole(requiredRole))
		return entities.Principal{}, ErrAuthorizationDenied
	}
	return p, nil
}
