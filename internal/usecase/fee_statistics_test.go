package usecase

import (
	"testing"
	"time"

	"university_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeFeeStatistics(t *testing.T) {
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	fees := []entities.InscriptionFee{
		{ID: "1", Amount: dec("5000"), PaidAmount: dec("0"), PaymentStatus: entities.PaymentStatusPending, DueDate: past},
		{ID: "2", Amount: dec("3000"), PaidAmount: dec("1000.25"), PaymentStatus: entities.PaymentStatusPartial, DueDate: past},
		{ID: "3", Amount: dec("2000"), PaidAmount: dec("0"), PaymentStatus: entities.PaymentStatusPending, DueDate: future},
		{ID: "4", Amount: dec("1500"), PaidAmount: dec("1500"), PaymentStatus: entities.PaymentStatusPaid, DueDate: past},
	}

	stats := ComputeFeeStatistics(fees, now)
	if stats.TotalFees != 4 {
		t.Fatalf("expected 4 fees, got %d", stats.TotalFees)
	}
	if !stats.TotalAmount.Equal(dec("11500")) || !stats.TotalPaid.Equal(dec("2500.25")) {
		t.Fatalf("unexpected sums: %s / %s", stats.TotalAmount, stats.TotalPaid)
	}
	if !stats.TotalPending.Equal(dec("8999.75")) {
		t.Fatalf("unexpected pending %s", stats.TotalPending)
	}
	if stats.PaidCount != 1 || stats.PendingCount != 3 || stats.OverdueCount != 2 {
		t.Fatalf("unexpected counts: %+v", stats)
	}

	again := ComputeFeeStatistics(fees, now)
	if again.OverdueCount != stats.OverdueCount {
		t.Fatalf("overdue classification must be stable at the same instant")
	}
}

func TestComputeFeeStatistics_Empty(t *testing.T) {
	stats := ComputeFeeStatistics(nil, time.Now())
	if stats.TotalFees != 0 || !stats.TotalAmount.IsZero() || !stats.TotalPaid.IsZero() || !stats.TotalPending.IsZero() {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestComputeFeeStatistics_PendingIdentity(t *testing.T) {
	now := time.Now().UTC()
	fees := []entities.InscriptionFee{
		{Amount: dec("100"), PaidAmount: dec("250"), PaymentStatus: entities.PaymentStatusPaid, DueDate: now},
		{Amount: dec("0"), PaidAmount: dec("0"), PaymentStatus: entities.PaymentStatusPaid, DueDate: now},
		{Amount: dec("999.99"), PaidAmount: dec("0.01"), PaymentStatus: entities.PaymentStatusPartial, DueDate: now},
	}
	stats := ComputeFeeStatistics(fees, now)
	if !stats.TotalPending.Equal(stats.TotalAmount.Sub(stats.TotalPaid)) {
		t.Fatalf("totalPending must equal totalAmount - totalPaid: %+v", stats)
	}
}

func TestComputeFeeStatistics_PaidNeverOverdue(t *testing.T) {
	now := time.Now().UTC()
	fees := []entities.InscriptionFee{
		{Amount: dec("10"), PaidAmount: dec("10"), PaymentStatus: entities.PaymentStatusPaid, DueDate: now.AddDate(-5, 0, 0)},
	}
	if got := ComputeFeeStatistics(fees, now).OverdueCount; got != 0 {
		t.Fatalf("paid fee counted overdue: %d", got)
	}
}
