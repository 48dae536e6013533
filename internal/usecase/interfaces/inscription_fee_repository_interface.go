package interfaces

import (
	"context"
	"university_billing/internal/domain/entities"
)

// IInscriptionFeeRepository abstracts persistence for InscriptionFee.
//
// Like the other repositories, a missing record is reported as a zero-value
// entity (empty ID) and a nil error; the use case turns that into a not-found error.
//
//go:generate mockgen -source=inscription_fee_repository_interface.go -destination=mocks/mock_inscription_fee_repository.go -package=mock_interfaces

type IInscriptionFeeRepository interface {
	Create(ctx context.Context, fee entities.InscriptionFee) (entities.InscriptionFee, error)
	GetByID(ctx context.Context, id string) (entities.InscriptionFee, error)
	List(ctx context.Context) ([]entities.InscriptionFee, error)
	ListByStudentID(ctx context.Context, studentID string) ([]entities.InscriptionFee, error)
	Replace(ctx context.Context, fee entities.InscriptionFee) (entities.InscriptionFee, error)
	UpdatePayment(ctx context.Context, id string, change entities.PaymentChange) (entities.InscriptionFee, error)
	Delete(ctx context.Context, id string) (bool, error)
}
