package postgres

import (
	"context"
	"errors"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

// Ensure InscriptionFeeStore satisfies the repository interface at compile time.
var _ interfaces.IInscriptionFeeRepository = (*InscriptionFeeStore)(nil)

// InscriptionFeeStore provides Postgres-backed persistence for inscription fees.
// Amounts travel as text so decimals stay exact in both directions.
type InscriptionFeeStore struct {
	pool *pgxpool.Pool
}

func NewInscriptionFeeStore(pool *pgxpool.Pool) *InscriptionFeeStore {
	return &InscriptionFeeStore{pool: pool}
}

const feeColumns = `id, student_id, student_name, student_email, academic_year,
	amount::text, currency, payment_status, paid_amount::text, due_date, payment_date,
	COALESCE(payment_method, ''), COALESCE(transaction_id, ''), COALESCE(notes, ''),
	created_at, updated_at, COALESCE(created_by, ''), COALESCE(updated_by, '')`

func (s *InscriptionFeeStore) Create(ctx context.Context, fee entities.InscriptionFee) (entities.InscriptionFee, error) {
	const query = `
	INSERT INTO inscription_fees (id, student_id, student_name, student_email, academic_year,
		amount, currency, payment_status, paid_amount, due_date, payment_date,
		payment_method, transaction_id, notes, created_at, updated_at, created_by, updated_by)
	VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9::numeric, $10, $11,
		NULLIF($12, ''), NULLIF($13, ''), NULLIF($14, ''), $15, $16, NULLIF($17, ''), NULLIF($18, ''))
	RETURNING ` + feeColumns
	row := s.pool.QueryRow(ctx, query,
		fee.ID, fee.StudentID, fee.StudentName, fee.StudentEmail, fee.AcademicYear,
		fee.Amount.String(), fee.Currency, string(fee.PaymentStatus), fee.PaidAmount.String(), fee.DueDate, fee.PaymentDate,
		fee.PaymentMethod, fee.TransactionID, fee.Notes, fee.CreatedAt, fee.UpdatedAt, fee.CreatedBy, fee.UpdatedBy,
	)
	created, err := scanFee(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.InscriptionFee{}, interfaces.ErrConflict
		}
		return entities.InscriptionFee{}, err
	}
	return created, nil
}

func (s *InscriptionFeeStore) GetByID(ctx context.Context, id string) (entities.InscriptionFee, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+feeColumns+` FROM inscription_fees WHERE id = $1`, id)
	return scanFee(row)
}

func (s *InscriptionFeeStore) List(ctx context.Context) ([]entities.InscriptionFee, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+feeColumns+` FROM inscription_fees ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectFees(rows)
}

func (s *InscriptionFeeStore) ListByStudentID(ctx context.Context, studentID string) ([]entities.InscriptionFee, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+feeColumns+` FROM inscription_fees WHERE student_id = $1 ORDER BY created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	return collectFees(rows)
}

func (s *InscriptionFeeStore) Replace(ctx context.Context, fee entities.InscriptionFee) (entities.InscriptionFee, error) {
	const query = `
	UPDATE inscription_fees SET
		student_id = $2, student_name = $3, student_email = $4, academic_year = $5,
		amount = $6::numeric, currency = $7, payment_status = $8, paid_amount = $9::numeric,
		due_date = $10, payment_date = $11, payment_method = NULLIF($12, ''),
		transaction_id = NULLIF($13, ''), notes = NULLIF($14, ''),
		updated_at = $15, updated_by = NULLIF($16, '')
	WHERE id = $1
	RETURNING ` + feeColumns
	row := s.pool.QueryRow(ctx, query,
		fee.ID, fee.StudentID, fee.StudentName, fee.StudentEmail, fee.AcademicYear,
		fee.Amount.String(), fee.Currency, string(fee.PaymentStatus), fee.PaidAmount.String(),
		fee.DueDate, fee.PaymentDate, fee.PaymentMethod, fee.TransactionID, fee.Notes,
		fee.UpdatedAt, fee.UpdatedBy,
	)
	return scanFee(row)
}

// UpdatePayment sets every payment field in a single UPDATE statement.
func (s *InscriptionFeeStore) UpdatePayment(ctx context.Context, id string, change entities.PaymentChange) (entities.InscriptionFee, error) {
	const query = `
	UPDATE inscription_fees SET
		payment_status = $2, paid_amount = $3::numeric, payment_method = $4,
		transaction_id = NULLIF($5, ''), payment_date = $6, notes = NULLIF($7, ''),
		updated_at = $8, updated_by = NULLIF($9, '')
	WHERE id = $1
	RETURNING ` + feeColumns
	row := s.pool.QueryRow(ctx, query,
		id, string(change.Status), change.PaidAmount.String(), change.PaymentMethod,
		change.TransactionID, change.PaymentDate, change.Notes, change.UpdatedAt, change.UpdatedBy,
	)
	return scanFee(row)
}

func (s *InscriptionFeeStore) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM inscription_fees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func collectFees(rows pgx.Rows) ([]entities.InscriptionFee, error) {
	defer rows.Close()
	fees := []entities.InscriptionFee{}
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	return fees, rows.Err()
}

// scanFee reads one fee row. No rows yields a zero fee and a nil error.
func scanFee(row pgx.Row) (entities.InscriptionFee, error) {
	var (
		fee                entities.InscriptionFee
		amount, paidAmount string
		status             string
		paymentDate        *time.Time
	)
	err := row.Scan(&fee.ID, &fee.StudentID, &fee.StudentName, &fee.StudentEmail, &fee.AcademicYear,
		&amount, &fee.Currency, &status, &paidAmount, &fee.DueDate, &paymentDate,
		&fee.PaymentMethod, &fee.TransactionID, &fee.Notes,
		&fee.CreatedAt, &fee.UpdatedAt, &fee.CreatedBy, &fee.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.InscriptionFee{}, nil
		}
		return entities.InscriptionFee{}, err
	}

	if fee.Amount, err = decimal.NewFromString(amount); err != nil {
		return entities.InscriptionFee{}, err
	}
	if fee.PaidAmount, err = decimal.NewFromString(paidAmount); err != nil {
		return entities.InscriptionFee{}, err
	}
	fee.PaymentStatus = entities.PaymentStatus(status)
	fee.DueDate = fee.DueDate.UTC()
	fee.CreatedAt = fee.CreatedAt.UTC()
	fee.UpdatedAt = fee.UpdatedAt.UTC()
	if paymentDate != nil {
		pd := paymentDate.UTC()
		fee.PaymentDate = &pd
	}
	return fee, nil
}
