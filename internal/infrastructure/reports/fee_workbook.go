package reports

import (
	"fmt"
	"io"
	"time"

	"university_billing/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

const (
	FeesSheet    = "Inscription fees"
	SummarySheet = "Summary"
	dateLayout   = "2006-01-02"
)

var feeHeaders = []string{
	"Fee ID", "Student ID", "Student", "Email", "Academic year", "Amount", "Paid",
	"Outstanding", "Currency", "Status", "Overdue", "Due date", "Payment date",
	"Payment method", "Transaction ID", "Notes",
}

// FileName is the attachment name used for a workbook generated at at.
func FileName(at time.Time) string {
	return fmt.Sprintf("inscription_fees_%s.xlsx", at.UTC().Format("20060102_150405"))
}

// WriteFeeWorkbook renders fees and their statistics as an xlsx workbook.
// Overdue is evaluated at generatedAt.
func WriteFeeWorkbook(w io.Writer, fees []entities.InscriptionFee, stats entities.FeeStatistics, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FeesSheet); err != nil {
		return err
	}
	for i, header := range feeHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(FeesSheet, cell, header); err != nil {
			return err
		}
	}

	for i, fee := range fees {
		values := []any{
			fee.ID, fee.StudentID, fee.StudentName, fee.StudentEmail, fee.AcademicYear,
			fee.Amount.InexactFloat64(), fee.PaidAmount.InexactFloat64(), fee.Outstanding().InexactFloat64(),
			fee.Currency, string(fee.PaymentStatus), yesNo(fee.IsOverdue(generatedAt)),
			fee.DueDate.Format(dateLayout), "", fee.PaymentMethod, fee.TransactionID, fee.Notes,
		}
		if fee.PaymentDate != nil {
			values[12] = fee.PaymentDate.Format(dateLayout)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(FeesSheet, cell, &values); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Generated at", generatedAt.UTC().Format(time.RFC3339)},
		{"Total fees", stats.TotalFees},
		{"Total amount", stats.TotalAmount.InexactFloat64()},
		{"Total paid", stats.TotalPaid.InexactFloat64()},
		{"Total pending", stats.TotalPending.InexactFloat64()},
		{"Paid", stats.PaidCount},
		{"Pending", stats.PendingCount},
		{"Overdue", stats.OverdueCount},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
