package response

import (
	"encoding/json"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase"

	"github.com/shopspring/decimal"
)

type InscriptionFeeResponse struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"student_id"`
	StudentName   string          `json:"student_name"`
	StudentEmail  string          `json:"student_email"`
	AcademicYear  string          `json:"academic_year"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string" example:"5000.00"`
	Currency      string          `json:"currency"`
	PaymentStatus string          `json:"payment_status" enums:"PENDING,PARTIAL,PAID"`
	PaidAmount    decimal.Decimal `json:"paid_amount" swaggertype:"string" example:"2000.00"`
	Outstanding   decimal.Decimal `json:"outstanding" swaggertype:"string" example:"3000.00"`
	Overdue       bool            `json:"overdue"`
	DueDate       time.Time       `json:"due_date"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
	UpdatedBy     string          `json:"updated_by,omitempty"`
}

// FromInscriptionFee renders a fee; Overdue is evaluated at now.
func FromInscriptionFee(f entities.InscriptionFee, now time.Time) InscriptionFeeResponse {
	return InscriptionFeeResponse{
		ID:            f.ID,
		StudentID:     f.StudentID,
		StudentName:   f.StudentName,
		StudentEmail:  f.StudentEmail,
		AcademicYear:  f.AcademicYear,
		Amount:        f.Amount,
		Currency:      f.Currency,
		PaymentStatus: string(f.PaymentStatus),
		PaidAmount:    f.PaidAmount,
		Outstanding:   f.Outstanding(),
		Overdue:       f.IsOverdue(now),
		DueDate:       f.DueDate,
		PaymentDate:   f.PaymentDate,
		PaymentMethod: f.PaymentMethod,
		TransactionID: f.TransactionID,
		Notes:         f.Notes,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
		CreatedBy:     f.CreatedBy,
		UpdatedBy:     f.UpdatedBy,
	}
}

func FromInscriptionFees(fees []entities.InscriptionFee, now time.Time) []InscriptionFeeResponse {
	out := make([]InscriptionFeeResponse, 0, len(fees))
	for _, f := range fees {
		out = append(out, FromInscriptionFee(f, now))
	}
	return out
}

type FeeStatisticsResponse struct {
	TotalFees    int             `json:"total_fees"`
	TotalAmount  decimal.Decimal `json:"total_amount" swaggertype:"string"`
	TotalPaid    decimal.Decimal `json:"total_paid" swaggertype:"string"`
	TotalPending decimal.Decimal `json:"total_pending" swaggertype:"string"`
	PaidCount    int             `json:"paid_count"`
	PendingCount int             `json:"pending_count"`
	OverdueCount int             `json:"overdue_count"`
}

func FromFeeStatistics(s entities.FeeStatistics) FeeStatisticsResponse {
	return FeeStatisticsResponse(s)
}

type CheckoutResponse struct {
	Fee               InscriptionFeeResponse `json:"fee"`
	ProviderPaymentID string                 `json:"provider_payment_id"`
	ProviderStatus    string                 `json:"provider_status"`
	ProviderResponse  json.RawMessage        `json:"provider_response,omitempty" swaggertype:"object"`
}

func FromCheckoutResult(r usecase.CheckoutResult, now time.Time) CheckoutResponse {
	return CheckoutResponse{
		Fee:               FromInscriptionFee(r.Fee, now),
		ProviderPaymentID: r.ProviderPaymentID,
		ProviderStatus:    r.ProviderStatus,
		ProviderResponse:  r.ProviderResponse,
	}
}
