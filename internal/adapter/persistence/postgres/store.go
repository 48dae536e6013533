package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the fee and student tables when missing.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS inscription_fees (
		id TEXT PRIMARY KEY,
		student_id TEXT NOT NULL,
		student_name TEXT NOT NULL,
		student_email TEXT NOT NULL,
		academic_year TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL CHECK (amount >= 0),
		currency TEXT NOT NULL DEFAULT 'USD',
		payment_status TEXT NOT NULL DEFAULT 'PENDING',
		paid_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		due_date TIMESTAMPTZ NOT NULL,
		payment_date TIMESTAMPTZ,
		payment_method TEXT,
		transaction_id TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_by TEXT,
		updated_by TEXT
	);`,
	`CREATE INDEX IF NOT EXISTS inscription_fees_student_id_idx ON inscription_fees (student_id);`,
	`CREATE TABLE IF NOT EXISTS students (
		id TEXT PRIMARY KEY,
		student_number TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		inscription_fee_status TEXT NOT NULL DEFAULT 'NOT_PAID',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS students_email_unique_idx ON students (email);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS students_number_unique_idx ON students (student_number);`,
	`ALTER TABLE students ADD COLUMN IF NOT EXISTS courses JSONB NOT NULL DEFAULT '[]'::jsonb;`,
	`ALTER TABLE students ADD COLUMN IF NOT EXISTS grades JSONB NOT NULL DEFAULT '[]'::jsonb;`,
}
