package request

import (
	"errors"
	"strings"
	"time"

	"university_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate   = errors.New("invalid date: use YYYY-MM-DD or RFC3339")
	ErrMissingAmount = errors.New("amount is required")
)

// InscriptionFeeRequest is the payload of fee creation and full replacement.
//
// Payment fields are only honoured on replacement; creation always starts a
// fee as PENDING with nothing paid.
type InscriptionFeeRequest struct {
	StudentID     string           `json:"student_id" binding:"required"`
	StudentName   string           `json:"student_name" binding:"required"`
	StudentEmail  string           `json:"student_email" binding:"required"`
	AcademicYear  string           `json:"academic_year" binding:"required"`
	Amount        *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number"`
	Currency      string           `json:"currency"`
	DueDate       string           `json:"due_date" binding:"required" example:"2026-03-31"`
	PaidAmount    *decimal.Decimal `json:"paid_amount" swaggertype:"number"`
	PaymentDate   string           `json:"payment_date"`
	PaymentMethod string           `json:"payment_method"`
	TransactionID string           `json:"transaction_id"`
	Notes         string           `json:"notes"`
}

func (r InscriptionFeeRequest) ToEntity() (entities.InscriptionFee, error) {
	if r.Amount == nil {
		return entities.InscriptionFee{}, ErrMissingAmount
	}
	due, err := ParseDate(r.DueDate)
	if err != nil || due.IsZero() {
		return entities.InscriptionFee{}, ErrInvalidDate
	}
	fee := entities.InscriptionFee{
		StudentID:     r.StudentID,
		StudentName:   r.StudentName,
		StudentEmail:  r.StudentEmail,
		AcademicYear:  r.AcademicYear,
		Amount:        *r.Amount,
		Currency:      r.Currency,
		DueDate:       due,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		Notes:         r.Notes,
	}
	if r.PaidAmount != nil {
		fee.PaidAmount = *r.PaidAmount
	}
	paidAt, err := ParseDate(r.PaymentDate)
	if err != nil {
		return entities.InscriptionFee{}, ErrInvalidDate
	}
	if !paidAt.IsZero() {
		fee.PaymentDate = &paidAt
	}
	return fee, nil
}

// PaymentUpdateRequest reports the total amount paid so far on a fee.
type PaymentUpdateRequest struct {
	PaidAmount    *decimal.Decimal `json:"paid_amount" binding:"required" swaggertype:"number"`
	PaymentMethod string           `json:"payment_method" binding:"required"`
	TransactionID string           `json:"transaction_id"`
	PaymentDate   string           `json:"payment_date"`
	Notes         string           `json:"notes"`
}

func (r PaymentUpdateRequest) ToEntity(feeID string) (entities.PaymentUpdate, error) {
	if r.PaidAmount == nil {
		return entities.PaymentUpdate{}, ErrMissingAmount
	}
	paidAt, err := ParseDate(r.PaymentDate)
	if err != nil {
		return entities.PaymentUpdate{}, ErrInvalidDate
	}
	return entities.PaymentUpdate{
		FeeID:         feeID,
		PaidAmount:    *r.PaidAmount,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		PaymentDate:   paidAt,
		Notes:         r.Notes,
	}, nil
}

// ParseDate accepts a calendar date (UTC midnight) or an RFC3339 timestamp.
// An empty string yields the zero time.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
