package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the stored payment classification of an inscription fee.
//
// OVERDUE is never stored: see InscriptionFee.IsOverdue.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

const DefaultCurrency = "USD"

// CurrencyScale is the number of decimal places a stored amount may carry.
const CurrencyScale = 2

// maxAmount bounds amounts to twelve integer digits, the NUMERIC(14,2) columns of the SQL store.
var maxAmount = decimal.New(1, 12)

// IsCurrencyAmount reports whether d is storable as is by every backend: at most
// CurrencyScale decimal places and below maxAmount in magnitude.
func IsCurrencyAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(CurrencyScale)) && d.Abs().LessThan(maxAmount)
}

// InscriptionFee is the fee a student owes for one academic year.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (student_id-index): student_id
//
// Monetary representation:
//   - Amount and PaidAmount are exact decimals, persisted as strings.
//   - PaymentStatus is always DeriveStatus(Amount, PaidAmount) after a payment update.
type InscriptionFee struct {
	ID            string          `json:"id"`
	StudentID     string          `json:"student_id"`
	StudentName   string          `json:"student_name"`
	StudentEmail  string          `json:"student_email"`
	AcademicYear  string          `json:"academic_year"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
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

// DeriveStatus maps monetary facts to a payment status.
//
// A zero amount with nothing paid yields PAID (0 >= 0).
func DeriveStatus(amount, paidAmount decimal.Decimal) PaymentStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(amount):
		return PaymentStatusPaid
	case paidAmount.IsPositive():
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// IsOpen reports whether the fee still expects money.
func (f InscriptionFee) IsOpen() bool {
	return f.PaymentStatus == PaymentStatusPending || f.PaymentStatus == PaymentStatusPartial
}

// IsOverdue reports whether an open fee is past its due date at now.
func (f InscriptionFee) IsOverdue(now time.Time) bool {
	return f.IsOpen() && f.DueDate.Before(now)
}

// Outstanding is the amount still owed; never negative.
func (f InscriptionFee) Outstanding() decimal.Decimal {
	rest := f.Amount.Sub(f.PaidAmount)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// PaymentUpdate is the input of a payment update; it replaces every payment field of the fee.
type PaymentUpdate struct {
	FeeID         string
	PaidAmount    decimal.Decimal
	PaymentMethod string
	TransactionID string
	PaymentDate   time.Time
	Notes         string
}

// PaymentChange is the field set written atomically to the store.
type PaymentChange struct {
	Status        PaymentStatus
	PaidAmount    decimal.Decimal
	PaymentMethod string
	TransactionID string
	PaymentDate   time.Time
	Notes         string
	UpdatedAt     time.Time
	UpdatedBy     string
}

// FeeStatistics is a reporting snapshot over all fees.
type FeeStatistics struct {
	TotalFees    int             `json:"total_fees"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	PaidCount    int             `json:"paid_count"`
	PendingCount int             `json:"pending_count"`
	OverdueCount int             `json:"overdue_count"`
}
