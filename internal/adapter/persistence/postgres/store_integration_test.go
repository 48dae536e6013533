package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/infrastructure/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Runs against a real database when TEST_DATABASE_URL is set.
func TestInscriptionFeeStore_Integration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := database.ConnectPostgres(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()
	if err := Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store := NewInscriptionFeeStore(pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	fee := entities.InscriptionFee{
		ID: uuid.NewString(), StudentID: "stu-it", StudentName: "Ada", StudentEmail: "ada@uni.edu",
		AcademicYear: "2026", Amount: decimal.RequireFromString("5000"), Currency: "USD",
		PaymentStatus: entities.PaymentStatusPending, PaidAmount: decimal.Zero,
		DueDate: now.AddDate(0, 1, 0), CreatedAt: now, UpdatedAt: now,
	}
	if _, err := store.Create(ctx, fee); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer store.Delete(ctx, fee.ID)

	updated, err := store.UpdatePayment(ctx, fee.ID, entities.PaymentChange{
		Status: entities.PaymentStatusPartial, PaidAmount: decimal.RequireFromString("2000"),
		PaymentMethod: "CASH", PaymentDate: now, UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("update payment: %v", err)
	}
	if updated.PaymentStatus != entities.PaymentStatusPartial || !updated.PaidAmount.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected fee %+v", updated)
	}

	missing, err := store.UpdatePayment(ctx, uuid.NewString(), entities.PaymentChange{PaymentMethod: "CASH", PaymentDate: now, UpdatedAt: now})
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero fee for unknown id, got %+v %v", missing, err)
	}
}
