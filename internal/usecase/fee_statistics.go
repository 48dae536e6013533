package usecase

import (
	"time"

	"university_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ComputeFeeStatistics aggregates a full scan of fees. now is captured once by the
// caller so the paid, pending and overdue counts describe the same instant.
//
// A store-side aggregation can replace the scan as long as the classification stays
// the same: PENDING and PARTIAL are pending, and only pending fees can be overdue.
func ComputeFeeStatistics(fees []entities.InscriptionFee, now time.Time) entities.FeeStatistics {
	stats := entities.FeeStatistics{
		TotalAmount: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}
	for _, f := range fees {
		stats.TotalFees++
		stats.TotalAmount = stats.TotalAmount.Add(f.Amount)
		stats.TotalPaid = stats.TotalPaid.Add(f.PaidAmount)

		switch f.PaymentStatus {
		case entities.PaymentStatusPaid:
			stats.PaidCount++
		case entities.PaymentStatusPending, entities.PaymentStatusPartial:
			stats.PendingCount++
		}
		if f.IsOverdue(now) {
			stats.OverdueCount++
		}
	}
	stats.TotalPending = stats.TotalAmount.Sub(stats.TotalPaid)
	return stats
}
