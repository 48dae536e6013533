package postgres

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"university_billing/internal/domain/entities"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

func TestScanFee(t *testing.T) {
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	paid := due.Add(-24 * time.Hour)
	row := fakeRow{vals: []any{
		"fee-1", "stu-1", "Ada", "ada@uni.edu", "2026",
		"5000.00", "USD", "PARTIAL", "2000.50", due, &paid,
		"CASH", "", "first installment",
		due, due, "admin-1", "",
	}}

	fee, err := scanFee(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fee.Amount.Equal(decimal.RequireFromString("5000")) || !fee.PaidAmount.Equal(decimal.RequireFromString("2000.5")) {
		t.Fatalf("unexpected amounts %s %s", fee.Amount, fee.PaidAmount)
	}
	if fee.PaymentStatus != entities.PaymentStatusPartial || fee.Notes != "first installment" {
		t.Fatalf("unexpected fee %+v", fee)
	}
	if fee.DueDate.Location() != time.UTC || fee.PaymentDate == nil || !fee.PaymentDate.Equal(paid) {
		t.Fatalf("unexpected dates %v %v", fee.DueDate, fee.PaymentDate)
	}
}

func TestScanFee_NoRows(t *testing.T) {
	fee, err := scanFee(fakeRow{err: pgx.ErrNoRows})
	if err != nil || fee.ID != "" {
		t.Fatalf("expected zero fee, got %+v %v", fee, err)
	}
}

func TestScanFee_BadNumeric(t *testing.T) {
	now := time.Now()
	row := fakeRow{vals: []any{
		"fee-1", "stu-1", "Ada", "ada@uni.edu", "2026",
		"abc", "USD", "PENDING", "0", now, (*time.Time)(nil),
		"", "", "", now, now, "", "",
	}}
	if _, err := scanFee(row); err == nil {
		t.Fatalf("expected numeric parse error")
	}
}

func TestScanStudent(t *testing.T) {
	now := time.Now()
	st, err := scanStudent(fakeRow{vals: []any{"st-1", "S-1", "Grace", "Hopper", "g@uni.edu", "555", true, "PAID",
		`[{"course_id":"CS-101","course_name":"Programming","course_code":"CS1","credits":4}]`,
		`[{"course_id":"CS-101","course_name":"Programming","grade":9.5,"semester":"2026-1"}]`, now, now}})
	if err != nil || st.InscriptionFeeStatus != entities.InscriptionFeePaid || !st.Enabled {
		t.Fatalf("unexpected student %+v %v", st, err)
	}
	if len(st.Courses) != 1 || st.Courses[0].Credits != 4 || len(st.Grades) != 1 || st.Grades[0].Grade != 9.5 {
		t.Fatalf("unexpected enrollment %+v %+v", st.Courses, st.Grades)
	}

	empty, err := scanStudent(fakeRow{vals: []any{"st-2", "S-2", "Ada", "Lovelace", "a@uni.edu", "555", true, "NOT_PAID", "[]", "[]", now, now}})
	if err != nil || empty.Courses == nil || empty.Grades == nil {
		t.Fatalf("empty arrays must read as empty lists, got %+v %v", empty, err)
	}

	if _, err := scanStudent(fakeRow{vals: []any{"st-3", "S-3", "Ada", "Lovelace", "a@uni.edu", "555", true, "NOT_PAID", "{", "[]", now, now}}); err == nil {
		t.Fatalf("expected an error for corrupt courses")
	}

	if _, err := scanStudent(fakeRow{err: errors.New("boom")}); err == nil {
		t.Fatalf("expected error")
	}
}
