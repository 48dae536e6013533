package interfaces

import (
	"context"
	"university_billing/internal/domain/entities"
)

// ITokenValidator turns a bearer token into a verified principal using the
// central identity authority. Every call is independent: no caching.
//
//go:generate mockgen -source=token_validator_interface.go -destination=mocks/mock_token_validator.go -package=mock_interfaces
type ITokenValidator interface {
	Validate(ctx context.Context, token string) (entities.Principal, error)
}
