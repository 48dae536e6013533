package interfaces

import (
	"context"
	"university_billing/internal/domain/entities"
)

// IStudentRepository abstracts persistence for Student records.
//
//go:generate mockgen -source=student_repository_interface.go -destination=mocks/mock_student_repository.go -package=mock_interfaces

type IStudentRepository interface {
	Create(ctx context.Context, s entities.Student) (entities.Student, error)
	GetByID(ctx context.Context, id string) (entities.Student, error)
	FindByEmailOrNumber(ctx context.Context, email, studentNumber string) (entities.Student, error)
	List(ctx context.Context) ([]entities.Student, error)
	Replace(ctx context.Context, s entities.Student) (entities.Student, error)
	UpdateInscriptionFeeStatus(ctx context.Context, id string, status entities.InscriptionFeeStatus) (entities.Student, error)
	Delete(ctx context.Context, id string) (bool, error)
}
