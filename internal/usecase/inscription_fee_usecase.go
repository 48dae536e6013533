package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInscriptionFeeNotFound      = errors.New("inscription fee not found")
	ErrInvalidFeeID                = errors.New("invalid fee id")
	ErrInvalidStudentID            = errors.New("invalid student id")
	ErrInvalidInscriptionFee       = errors.New("invalid inscription fee")
	ErrInvalidPaymentUpdate        = errors.New("invalid payment update")
	ErrInvalidCheckoutPayload      = errors.New("invalid checkout payload")
	ErrFeeAlreadySettled           = errors.New("inscription fee already settled")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

const (
	checkoutPaymentMethod  = "CARD"
	providerStatusApproved = "approved"
)

// IInscriptionFeeUseCase exposes inscription fee operations.
//
//   - UpdatePayment is the only lifecycle mutation: it derives the status from the amounts.
//   - GetStatistics aggregates every fee against one instant.
//   - Checkout charges the outstanding balance through the payment gateway and records it
//     as a payment update.

type IInscriptionFeeUseCase interface {
	Create(ctx context.Context, fee entities.InscriptionFee, actor string) (entities.InscriptionFee, error)
	GetAll(ctx context.Context) ([]entities.InscriptionFee, error)
	GetByID(ctx context.Context, id string) (entities.InscriptionFee, error)
	ListByStudentID(ctx context.Context, studentID string) ([]entities.InscriptionFee, error)
	Replace(ctx context.Context, id string, fee entities.InscriptionFee, actor string) (entities.InscriptionFee, error)
	UpdatePayment(ctx context.Context, update entities.PaymentUpdate, actor string) (entities.InscriptionFee, error)
	Delete(ctx context.Context, id string) error
	GetStatistics(ctx context.Context) (entities.FeeStatistics, error)
	GetReport(ctx context.Context) (FeeReport, error)
	Checkout(ctx context.Context, id string, payload json.RawMessage, actor string) (CheckoutResult, error)
}

// FeeReport is every fee plus its statistics, evaluated at GeneratedAt.
type FeeReport struct {
	GeneratedAt time.Time
	Fees        []entities.InscriptionFee
	Statistics  entities.FeeStatistics
}

// CheckoutResult carries the fee after checkout and the provider outcome.
type CheckoutResult struct {
	Fee               entities.InscriptionFee
	ProviderPaymentID string
	ProviderStatus    string
	ProviderResponse  json.RawMessage
}

type InscriptionFeeUseCase struct {
	repo    interfaces.IInscriptionFeeRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ IInscriptionFeeUseCase = (*InscriptionFeeUseCase)(nil)

func NewInscriptionFeeUseCase(repo interfaces.IInscriptionFeeRepository, gateway interfaces.IPaymentGateway) *InscriptionFeeUseCase {
	return &InscriptionFeeUseCase{
		repo:    repo,
		gateway: gateway,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *InscriptionFeeUseCase) Create(ctx context.Context, fee entities.InscriptionFee, actor string) (entities.InscriptionFee, error) {
	fee, err := normalizeFee(fee)
	if err != nil {
		return entities.InscriptionFee{}, err
	}

	now := u.now()
	fee.ID = uuid.NewString()
	fee.PaidAmount = decimal.Zero
	fee.PaymentStatus = entities.PaymentStatusPending
	fee.PaymentDate = nil
	fee.PaymentMethod = ""
	fee.TransactionID = ""
	fee.CreatedAt = now
	fee.UpdatedAt = now
	fee.CreatedBy = actor
	fee.UpdatedBy = actor

	created, err := u.repo.Create(ctx, fee)
	if err != nil {
		log.Printf("[fee][usecase] create failed student_id=%s err=%v", fee.StudentID, err)
		return entities.InscriptionFee{}, err
	}
	log.Printf("[fee][usecase] created fee_id=%s student_id=%s amount=%s %s", created.ID, created.StudentID, created.Amount.StringFixed(2), created.Currency)
	return created, nil
}

func (u *InscriptionFeeUseCase) GetAll(ctx context.Context) ([]entities.InscriptionFee, error) {
	return u.repo.List(ctx)
}

func (u *InscriptionFeeUseCase) GetByID(ctx context.Context, id string) (entities.InscriptionFee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InscriptionFee{}, ErrInvalidFeeID
	}

	fee, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	if fee.ID == "" {
		return entities.InscriptionFee{}, ErrInscriptionFeeNotFound
	}
	return fee, nil
}

func (u *InscriptionFeeUseCase) ListByStudentID(ctx context.Context, studentID string) ([]entities.InscriptionFee, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, ErrInvalidStudentID
	}
	return u.repo.ListByStudentID(ctx, studentID)
}

// Replace overwrites a whole fee record. It does not run the payment lifecycle,
// but the stored status is still derived from the replaced amounts.
func (u *InscriptionFeeUseCase) Replace(ctx context.Context, id string, fee entities.InscriptionFee, actor string) (entities.InscriptionFee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InscriptionFee{}, ErrInvalidFeeID
	}
	fee, err := normalizeFee(fee)
	if err != nil {
		return entities.InscriptionFee{}, err
	}
	if fee.PaidAmount.IsNegative() {
		return entities.InscriptionFee{}, fmt.Errorf("%w: paid amount must not be negative", ErrInvalidInscriptionFee)
	}
	if !entities.IsCurrencyAmount(fee.PaidAmount) {
		return entities.InscriptionFee{}, fmt.Errorf("%w: paid amount must have at most two decimal places", ErrInvalidInscriptionFee)
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InscriptionFee{}, err
	}

	fee.ID = existing.ID
	fee.CreatedAt = existing.CreatedAt
	fee.CreatedBy = existing.CreatedBy
	fee.UpdatedAt = u.now()
	fee.UpdatedBy = actor
	fee.PaymentStatus = entities.DeriveStatus(fee.Amount, fee.PaidAmount)

	replaced, err := u.repo.Replace(ctx, fee)
	if err != nil {
		log.Printf("[fee][usecase] replace failed fee_id=%s err=%v", id, err)
		return entities.InscriptionFee{}, err
	}
	if replaced.ID == "" {
		return entities.InscriptionFee{}, ErrInscriptionFeeNotFound
	}
	log.Printf("[fee][usecase] replaced fee_id=%s status=%s", replaced.ID, replaced.PaymentStatus)
	return replaced, nil
}

// UpdatePayment applies a payment update: the new status is derived from the fee
// amount and the reported paid amount, then every payment field is overwritten in
// one store mutation. Empty optional fields clear previous values.
func (u *InscriptionFeeUseCase) UpdatePayment(ctx context.Context, update entities.PaymentUpdate, actor string) (entities.InscriptionFee, error) {
	update.FeeID = strings.TrimSpace(update.FeeID)
	if update.FeeID == "" {
		return entities.InscriptionFee{}, ErrInvalidFeeID
	}
	update.PaymentMethod = strings.ToUpper(strings.TrimSpace(update.PaymentMethod))
	if update.PaymentMethod == "" {
		return entities.InscriptionFee{}, fmt.Errorf("%w: payment method is required", ErrInvalidPaymentUpdate)
	}
	if update.PaidAmount.IsNegative() {
		return entities.InscriptionFee{}, fmt.Errorf("%w: paid amount must not be negative", ErrInvalidPaymentUpdate)
	}
	if !entities.IsCurrencyAmount(update.PaidAmount) {
		return entities.InscriptionFee{}, fmt.Errorf("%w: paid amount must have at most two decimal places", ErrInvalidPaymentUpdate)
	}

	fee, err := u.GetByID(ctx, update.FeeID)
	if err != nil {
		return entities.InscriptionFee{}, err
	}

	now := u.now()
	paymentDate := update.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}
	change := entities.PaymentChange{
		Status:        entities.DeriveStatus(fee.Amount, update.PaidAmount),
		PaidAmount:    update.PaidAmount,
		PaymentMethod: update.PaymentMethod,
		TransactionID: strings.TrimSpace(update.TransactionID),
		PaymentDate:   paymentDate.UTC(),
		Notes:         strings.TrimSpace(update.Notes),
		UpdatedAt:     now,
		UpdatedBy:     actor,
	}

	updated, err := u.repo.UpdatePayment(ctx, fee.ID, change)
	if err != nil {
		log.Printf("[fee][usecase] payment update failed fee_id=%s err=%v", fee.ID, err)
		return entities.InscriptionFee{}, err
	}
	if updated.ID == "" {
		// deleted between read and write
		return entities.InscriptionFee{}, ErrInscriptionFeeNotFound
	}
	log.Printf("[fee][usecase] payment updated fee_id=%s status=%s->%s paid=%s method=%s", fee.ID, fee.PaymentStatus, updated.PaymentStatus, updated.PaidAmount.StringFixed(2), updated.PaymentMethod)
	return updated, nil
}

func (u *InscriptionFeeUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidFeeID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[fee][usecase] delete failed fee_id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return ErrInscriptionFeeNotFound
	}
	log.Printf("[fee][usecase] deleted fee_id=%s", id)
	return nil
}

func (u *InscriptionFeeUseCase) GetStatistics(ctx context.Context) (entities.FeeStatistics, error) {
	now := u.now()
	fees, err := u.repo.List(ctx)
	if err != nil {
		return entities.FeeStatistics{}, err
	}
	return ComputeFeeStatistics(fees, now), nil
}

func (u *InscriptionFeeUseCase) GetReport(ctx context.Context) (FeeReport, error) {
	now := u.now()
	fees, err := u.repo.List(ctx)
	if err != nil {
		return FeeReport{}, err
	}
	return FeeReport{GeneratedAt: now, Fees: fees, Statistics: ComputeFeeStatistics(fees, now)}, nil
}

// Checkout charges the outstanding balance through the payment gateway. An approved
// provider payment settles the fee through UpdatePayment; any other provider status
// leaves the fee untouched.
func (u *InscriptionFeeUseCase) Checkout(ctx context.Context, id string, payload json.RawMessage, actor string) (CheckoutResult, error) {
	if u.gateway == nil {
		log.Printf("[fee][checkout] gateway not configured fee_id=%s", id)
		return CheckoutResult{}, ErrPaymentGatewayNotConfigured
	}

	fee, err := u.GetByID(ctx, id)
	if err != nil {
		return CheckoutResult{}, err
	}
	outstanding := fee.Outstanding()
	if fee.PaymentStatus == entities.PaymentStatusPaid || !outstanding.IsPositive() {
		return CheckoutResult{}, ErrFeeAlreadySettled
	}

	req := map[string]any{}
	if len(strings.TrimSpace(string(payload))) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil || req == nil {
			return CheckoutResult{}, ErrInvalidCheckoutPayload
		}
	}
	// The fee in the store is the source of truth for the amount.
	req["transaction_amount"] = outstanding.InexactFloat64()
	req["external_reference"] = fee.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Inscription fee %s - %s", fee.AcademicYear, fee.StudentName)
	}
	if _, ok := req["payer"]; !ok && fee.StudentEmail != "" {
		req["payer"] = map[string]any{"email": fee.StudentEmail}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return CheckoutResult{}, err
	}

	log.Printf("[fee][checkout] calling payment gateway fee_id=%s amount=%s", fee.ID, outstanding.StringFixed(2))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[fee][checkout] payment gateway failed fee_id=%s err=%v", fee.ID, err)
		if isGatewayUnauthorized(err) {
			return CheckoutResult{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return CheckoutResult{}, ErrPaymentGatewayBadRequest
		}
		return CheckoutResult{}, err
	}

	result := CheckoutResult{
		Fee:               fee,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
	}
	if !strings.EqualFold(providerStatus, providerStatusApproved) {
		log.Printf("[fee][checkout] provider did not approve fee_id=%s provider_payment_id=%s provider_status=%s", fee.ID, providerID, providerStatus)
		return result, nil
	}

	updated, err := u.UpdatePayment(ctx, entities.PaymentUpdate{
		FeeID:         fee.ID,
		PaidAmount:    fee.PaidAmount.Add(outstanding),
		PaymentMethod: checkoutPaymentMethod,
		TransactionID: providerID,
		PaymentDate:   u.now(),
		Notes:         fee.Notes,
	}, actor)
	if err != nil {
		return CheckoutResult{}, err
	}
	result.Fee = updated
	log.Printf("[fee][checkout] settled fee_id=%s provider_payment_id=%s", fee.ID, providerID)
	return result, nil
}

func normalizeFee(fee entities.InscriptionFee) (entities.InscriptionFee, error) {
	fee.StudentID = strings.TrimSpace(fee.StudentID)
	fee.StudentName = strings.TrimSpace(fee.StudentName)
	fee.StudentEmail = strings.TrimSpace(fee.StudentEmail)
	fee.AcademicYear = strings.TrimSpace(fee.AcademicYear)
	fee.Currency = strings.ToUpper(strings.TrimSpace(fee.Currency))
	fee.PaymentMethod = strings.ToUpper(strings.TrimSpace(fee.PaymentMethod))
	fee.TransactionID = strings.TrimSpace(fee.TransactionID)
	fee.Notes = strings.TrimSpace(fee.Notes)
	if fee.Currency == "" {
		fee.Currency = entities.DefaultCurrency
	}

	switch {
	case fee.StudentID == "":
		return fee, fmt.Errorf("%w: student id is required", ErrInvalidInscriptionFee)
	case fee.StudentName == "":
		return fee, fmt.Errorf("%w: student name is required", ErrInvalidInscriptionFee)
	case fee.StudentEmail == "":
		return fee, fmt.Errorf("%w: student email is required", ErrInvalidInscriptionFee)
	case fee.AcademicYear == "":
		return fee, fmt.Errorf("%w: academic year is required", ErrInvalidInscriptionFee)
	case fee.Amount.IsNegative():
		return fee, fmt.Errorf("%w: amount must not be negative", ErrInvalidInscriptionFee)
	case !entities.IsCurrencyAmount(fee.Amount):
		return fee, fmt.Errorf("%w: amount must have at most two decimal places", ErrInvalidInscriptionFee)
	case fee.DueDate.IsZero():
		return fee, fmt.Errorf("%w: due date is required", ErrInvalidInscriptionFee)
	case len(fee.Currency) != 3:
		return fee, fmt.Errorf("%w: currency must be an ISO code", ErrInvalidInscriptionFee)
	}
	fee.DueDate = fee.DueDate.UTC()
	return fee, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
