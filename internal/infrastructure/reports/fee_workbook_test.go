package reports

import (
	"bytes"
	"testing"
	"time"

	"university_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestWriteFeeWorkbook(t *testing.T) {
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	paidAt := now.AddDate(0, 0, -2)
	fees := []entities.InscriptionFee{
		{
			ID: "fee-1", StudentID: "stu-1", StudentName: "Ada", StudentEmail: "ada@uni.edu", AcademicYear: "2026",
			Amount: decimal.NewFromInt(5000), PaidAmount: decimal.NewFromInt(2000), Currency: "USD",
			PaymentStatus: entities.PaymentStatusPartial, DueDate: now.AddDate(0, 0, -1),
			PaymentDate: &paidAt, PaymentMethod: "CASH",
		},
		{
			ID: "fee-2", StudentID: "stu-2", StudentName: "Grace", AcademicYear: "2026",
			Amount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(100), Currency: "USD",
			PaymentStatus: entities.PaymentStatusPaid, DueDate: now.AddDate(0, 0, -30),
		},
	}
	stats := entities.FeeStatistics{TotalFees: 2, OverdueCount: 1, PaidCount: 1, PendingCount: 1,
		TotalAmount: decimal.NewFromInt(5100), TotalPaid: decimal.NewFromInt(2100), TotalPending: decimal.NewFromInt(3000)}

	var buf bytes.Buffer
	if err := WriteFeeWorkbook(&buf, fees, stats, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(FeesSheet)
	if err != nil {
		t.Fatalf("read fees sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][10] != "Overdue" || rows[1][10] != "YES" || rows[2][10] != "NO" {
		t.Fatalf("unexpected overdue column: %v / %v / %v", rows[0], rows[1], rows[2])
	}
	if rows[1][7] != "3000" || rows[1][12] != paidAt.Format(dateLayout) {
		t.Fatalf("unexpected fee row: %v", rows[1])
	}

	overdue, err := f.GetCellValue(SummarySheet, "B8")
	if err != nil || overdue != "1" {
		t.Fatalf("unexpected overdue summary %q %v", overdue, err)
	}
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if got != "inscription_fees_20260102_030405.xlsx" {
		t.Fatalf("unexpected file name %q", got)
	}
}
