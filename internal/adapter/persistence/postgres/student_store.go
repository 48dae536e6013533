package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure StudentStore satisfies the repository interface at compile time.
var _ interfaces.IStudentRepository = (*StudentStore)(nil)

// StudentStore provides Postgres-backed persistence for student records.
type StudentStore struct {
	pool *pgxpool.Pool
}

func NewStudentStore(pool *pgxpool.Pool) *StudentStore {
	return &StudentStore{pool: pool}
}

// Courses and grades are JSONB arrays read back as text.
const studentColumns = `id, student_number, first_name, last_name, email, phone_number,
	enabled, inscription_fee_status, courses::text, grades::text, created_at, updated_at`

func (s *StudentStore) Create(ctx context.Context, st entities.Student) (entities.Student, error) {
	courses, grades, err := encodeEnrollment(st)
	if err != nil {
		return entities.Student{}, err
	}
	const query = `
	INSERT INTO students (id, student_number, first_name, last_name, email, phone_number,
		enabled, inscription_fee_status, courses, grades, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10::jsonb, $11, $12)
	RETURNING ` + studentColumns
	row := s.pool.QueryRow(ctx, query, st.ID, st.StudentNumber, st.FirstName, st.LastName, st.Email,
		st.PhoneNumber, st.Enabled, string(st.InscriptionFeeStatus), courses, grades, st.CreatedAt, st.UpdatedAt)
	return scanStudentWrite(row)
}

func (s *StudentStore) GetByID(ctx context.Context, id string) (entities.Student, error) {
	return scanStudent(s.pool.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// FindByEmailOrNumber fetches the first student matching either unique key.
// An empty key never matches.
func (s *StudentStore) FindByEmailOrNumber(ctx context.Context, email, studentNumber string) (entities.Student, error) {
	const query = `SELECT ` + studentColumns + ` FROM students
	WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND student_number = $2) LIMIT 1`
	return scanStudent(s.pool.QueryRow(ctx, query, email, studentNumber))
}

func (s *StudentStore) List(ctx context.Context) ([]entities.Student, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []entities.Student{}
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func (s *StudentStore) Replace(ctx context.Context, st entities.Student) (entities.Student, error) {
	courses, grades, err := encodeEnrollment(st)
	if err != nil {
		return entities.Student{}, err
	}
	const query = `
	UPDATE students SET student_number = $2, first_name = $3, last_name = $4, email = $5,
		phone_number = $6, enabled = $7, inscription_fee_status = $8,
		courses = $9::jsonb, grades = $10::jsonb, updated_at = $11
	WHERE id = $1
	RETURNING ` + studentColumns
	row := s.pool.QueryRow(ctx, query, st.ID, st.StudentNumber, st.FirstName, st.LastName, st.Email,
		st.PhoneNumber, st.Enabled, string(st.InscriptionFeeStatus), courses, grades, st.UpdatedAt)
	return scanStudentWrite(row)
}

func (s *StudentStore) UpdateInscriptionFeeStatus(ctx context.Context, id string, status entities.InscriptionFeeStatus) (entities.Student, error) {
	const query = `
	UPDATE students SET inscription_fee_status = $2, updated_at = $3
	WHERE id = $1
	RETURNING ` + studentColumns
	return scanStudent(s.pool.QueryRow(ctx, query, id, string(status), time.Now().UTC()))
}

func (s *StudentStore) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanStudentWrite(row pgx.Row) (entities.Student, error) {
	st, err := scanStudent(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entities.Student{}, interfaces.ErrConflict
		}
		return entities.Student{}, err
	}
	return st, nil
}

func scanStudent(row pgx.Row) (entities.Student, error) {
	var (
		st              entities.Student
		status          string
		courses, grades string
	)
	err := row.Scan(&st.ID, &st.StudentNumber, &st.FirstName, &st.LastName, &st.Email,
		&st.PhoneNumber, &st.Enabled, &status, &courses, &grades, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Student{}, nil
		}
		return entities.Student{}, err
	}
	st.Courses = []entities.Course{}
	if err := json.Unmarshal([]byte(courses), &st.Courses); err != nil {
		return entities.Student{}, fmt.Errorf("corrupt courses for student %s: %w", st.ID, err)
	}
	st.Grades = []entities.Grade{}
	if err := json.Unmarshal([]byte(grades), &st.Grades); err != nil {
		return entities.Student{}, fmt.Errorf("corrupt grades for student %s: %w", st.ID, err)
	}
	st.InscriptionFeeStatus = entities.InscriptionFeeStatus(status)
	st.CreatedAt = st.CreatedAt.UTC()
	st.UpdatedAt = st.UpdatedAt.UTC()
	return st, nil
}

func encodeEnrollment(st entities.Student) (string, string, error) {
	courses := st.Courses
	if courses == nil {
		courses = []entities.Course{}
	}
	grades := st.Grades
	if grades == nil {
		grades = []entities.Grade{}
	}
	c, err := json.Marshal(courses)
	if err != nil {
		return "", "", err
	}
	g, err := json.Marshal(grades)
	if err != nil {
		return "", "", err
	}
	return string(c), string(g), nil
}
