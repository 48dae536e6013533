package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"net/mail"
	"strings"
	"time"

	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student already exists")
	ErrInvalidStudent       = errors.New("invalid student")
	ErrInvalidStudentRecord = errors.New("invalid student record id")
	ErrInvalidCourse        = errors.New("invalid course")
	ErrCourseAlreadyAdded   = errors.New("course already added")
	ErrInvalidGrade         = errors.New("invalid grade")
)

const (
	DefaultStudentPageSize = 10
	MaxStudentPageSize     = 100
)

// IStudentUseCase exposes student record operations. Records are plain data;
// the only rule is uniqueness of email and student number.

type IStudentUseCase interface {
	Create(ctx context.Context, s entities.Student) (entities.Student, error)
	List(ctx context.Context, filter entities.StudentFilter) (entities.StudentPage, error)
	GetByID(ctx context.Context, id string) (entities.Student, error)
	GetByStudentNumber(ctx context.Context, studentNumber string) (entities.Student, error)
	GetByEmail(ctx context.Context, email string) (entities.Student, error)
	Update(ctx context.Context, id string, s entities.Student) (entities.Student, error)
	UpdateInscriptionFeeStatus(ctx context.Context, id string, status entities.InscriptionFeeStatus) (entities.Student, error)
	AddCourse(ctx context.Context, id string, course entities.Course) (entities.Student, error)
	RemoveCourse(ctx context.Context, id string, courseID string) (entities.Student, error)
	AddGrade(ctx context.Context, id string, grade entities.Grade) (entities.Student, error)
	Delete(ctx context.Context, id string) error
}

type StudentUseCase struct {
	repo interfaces.IStudentRepository
	now  func() time.Time
}

var _ IStudentUseCase = (*StudentUseCase)(nil)

func NewStudentUseCase(repo interfaces.IStudentRepository) *StudentUseCase {
	return &StudentUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *StudentUseCase) Create(ctx context.Context, s entities.Student) (entities.Student, error) {
	s, err := normalizeStudent(s)
	if err != nil {
		return entities.Student{}, err
	}

	existing, err := u.repo.FindByEmailOrNumber(ctx, s.Email, s.StudentNumber)
	if err != nil {
		return entities.Student{}, err
	}
	if existing.ID != "" {
		return entities.Student{}, ErrStudentAlreadyExists
	}

	now := u.now()
	s.ID = uuid.NewString()
	s.Enabled = true
	if s.InscriptionFeeStatus == "" {
		s.InscriptionFeeStatus = entities.InscriptionFeeNotPaid
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Student{}, ErrStudentAlreadyExists
	}
	if err != nil {
		log.Printf("[student][usecase] create failed student_number=%s err=%v", s.StudentNumber, err)
		return entities.Student{}, err
	}
	log.Printf("[student][usecase] created id=%s student_number=%s", created.ID, created.StudentNumber)
	return created, nil
}

// List filters the store's listing and cuts one page out of it. Page and limit
// default to 1 and DefaultStudentPageSize; the limit is capped at MaxStudentPageSize.
func (u *StudentUseCase) List(ctx context.Context, filter entities.StudentFilter) (entities.StudentPage, error) {
	filter.InscriptionFeeStatus = entities.InscriptionFeeStatus(strings.ToUpper(strings.TrimSpace(string(filter.InscriptionFeeStatus))))
	if filter.InscriptionFeeStatus != "" && !filter.InscriptionFeeStatus.Valid() {
		return entities.StudentPage{}, fmt.Errorf("%w: inscription fee status must be PAID or NOT_PAID", ErrInvalidStudent)
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultStudentPageSize
	}
	if filter.Limit > MaxStudentPageSize {
		filter.Limit = MaxStudentPageSize
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return entities.StudentPage{}, err
	}

	matched := make([]entities.Student, 0, len(all))
	for _, s := range all {
		if filter.InscriptionFeeStatus != "" && s.InscriptionFeeStatus != filter.InscriptionFeeStatus {
			continue
		}
		if filter.Enabled != nil && s.Enabled != *filter.Enabled {
			continue
		}
		if filter.Search != "" && !s.Matches(filter.Search) {
			continue
		}
		matched = append(matched, s)
	}

	page := entities.StudentPage{
		Students: []entities.Student{},
		Total:    len(matched),
		Page:     filter.Page,
		Limit:    filter.Limit,
		Pages:    (len(matched) + filter.Limit - 1) / filter.Limit,
	}
	start := (filter.Page - 1) * filter.Limit
	if start < len(matched) {
		end := min(start+filter.Limit, len(matched))
		page.Students = matched[start:end]
	}
	return page, nil
}

func (u *StudentUseCase) GetByStudentNumber(ctx context.Context, studentNumber string) (entities.Student, error) {
	studentNumber = strings.TrimSpace(studentNumber)
	if studentNumber == "" {
		return entities.Student{}, fmt.Errorf("%w: student number is required", ErrInvalidStudent)
	}
	return u.findOne(ctx, "", studentNumber)
}

func (u *StudentUseCase) GetByEmail(ctx context.Context, email string) (entities.Student, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Student{}, fmt.Errorf("%w: email is required", ErrInvalidStudent)
	}
	return u.findOne(ctx, email, "")
}

func (u *StudentUseCase) findOne(ctx context.Context, email, studentNumber string) (entities.Student, error) {
	s, err := u.repo.FindByEmailOrNumber(ctx, email, studentNumber)
	if err != nil {
		return entities.Student{}, err
	}
	if s.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	return s, nil
}

func (u *StudentUseCase) GetByID(ctx context.Context, id string) (entities.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Student{}, ErrInvalidStudentRecord
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}
	if s.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	return s, nil
}

// Update replaces the editable fields of a student. The id and creation time are kept.
func (u *StudentUseCase) Update(ctx context.Context, id string, s entities.Student) (entities.Student, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}
	s, err = normalizeStudent(s)
	if err != nil {
		return entities.Student{}, err
	}

	clash, err := u.repo.FindByEmailOrNumber(ctx, s.Email, s.StudentNumber)
	if err != nil {
		return entities.Student{}, err
	}
	if clash.ID != "" && clash.ID != existing.ID {
		return entities.Student{}, ErrStudentAlreadyExists
	}

	s.ID = existing.ID
	s.Courses = existing.Courses
	s.Grades = existing.Grades
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = u.now()
	if s.InscriptionFeeStatus == "" {
		s.InscriptionFeeStatus = existing.InscriptionFeeStatus
	}

	updated, err := u.repo.Replace(ctx, s)
	if errors.Is(err, interfaces.ErrConflict) {
		return entities.Student{}, ErrStudentAlreadyExists
	}
	if err != nil {
		return entities.Student{}, err
	}
	if updated.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	return updated, nil
}

func (u *StudentUseCase) UpdateInscriptionFeeStatus(ctx context.Context, id string, status entities.InscriptionFeeStatus) (entities.Student, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Student{}, ErrInvalidStudentRecord
	}
	status = entities.InscriptionFeeStatus(strings.ToUpper(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return entities.Student{}, fmt.Errorf("%w: inscription fee status must be PAID or NOT_PAID", ErrInvalidStudent)
	}

	updated, err := u.repo.UpdateInscriptionFeeStatus(ctx, id, status)
	if err != nil {
		return entities.Student{}, err
	}
	if updated.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	log.Printf("[student][usecase] inscription fee status id=%s status=%s", id, status)
	return updated, nil
}

// AddCourse enrolls the student in a course; a course id can be added once.
func (u *StudentUseCase) AddCourse(ctx context.Context, id string, course entities.Course) (entities.Student, error) {
	course.CourseID = strings.TrimSpace(course.CourseID)
	course.CourseName = strings.TrimSpace(course.CourseName)
	course.CourseCode = strings.TrimSpace(course.CourseCode)
	switch {
	case course.CourseID == "":
		return entities.Student{}, fmt.Errorf("%w: course id is required", ErrInvalidCourse)
	case course.Credits < 0:
		return entities.Student{}, fmt.Errorf("%w: credits must not be negative", ErrInvalidCourse)
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}
	if s.HasCourse(course.CourseID) {
		return entities.Student{}, ErrCourseAlreadyAdded
	}
	s.Courses = append(s.Courses, course)
	return u.save(ctx, s, "add-course")
}

// RemoveCourse drops a course from the student. Removing a course the student
// does not have is a no-op.
func (u *StudentUseCase) RemoveCourse(ctx context.Context, id string, courseID string) (entities.Student, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return entities.Student{}, fmt.Errorf("%w: course id is required", ErrInvalidCourse)
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}
	if !s.HasCourse(courseID) {
		return s, nil
	}
	kept := make([]entities.Course, 0, len(s.Courses))
	for _, c := range s.Courses {
		if c.CourseID != courseID {
			kept = append(kept, c)
		}
	}
	s.Courses = kept
	return u.save(ctx, s, "remove-course")
}

func (u *StudentUseCase) AddGrade(ctx context.Context, id string, grade entities.Grade) (entities.Student, error) {
	grade.CourseID = strings.TrimSpace(grade.CourseID)
	grade.CourseName = strings.TrimSpace(grade.CourseName)
	grade.Semester = strings.TrimSpace(grade.Semester)
	switch {
	case grade.CourseID == "":
		return entities.Student{}, fmt.Errorf("%w: course id is required", ErrInvalidGrade)
	case math.IsNaN(grade.Grade) || math.IsInf(grade.Grade, 0) || grade.Grade < 0:
		return entities.Student{}, fmt.Errorf("%w: grade must be a non-negative number", ErrInvalidGrade)
	}

	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Student{}, err
	}
	s.Grades = append(s.Grades, grade)
	return u.save(ctx, s, "add-grade")
}

// save writes back a student read by GetByID; a concurrent delete yields ErrStudentNotFound.
func (u *StudentUseCase) save(ctx context.Context, s entities.Student, op string) (entities.Student, error) {
	s.UpdatedAt = u.now()
	saved, err := u.repo.Replace(ctx, s)
	if err != nil {
		log.Printf("[student][usecase] %s failed id=%s err=%v", op, s.ID, err)
		return entities.Student{}, err
	}
	if saved.ID == "" {
		return entities.Student{}, ErrStudentNotFound
	}
	log.Printf("[student][usecase] %s id=%s courses=%d grades=%d", op, saved.ID, len(saved.Courses), len(saved.Grades))
	return saved, nil
}

func (u *StudentUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStudentRecord
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStudentNotFound
	}
	log.Printf("[student][usecase] deleted id=%s", id)
	return nil
}

func normalizeStudent(s entities.Student) (entities.Student, error) {
	s.StudentNumber = strings.TrimSpace(s.StudentNumber)
	s.FirstName = strings.TrimSpace(s.FirstName)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.PhoneNumber = strings.TrimSpace(s.PhoneNumber)
	s.InscriptionFeeStatus = entities.InscriptionFeeStatus(strings.ToUpper(strings.TrimSpace(string(s.InscriptionFeeStatus))))

	switch {
	case s.StudentNumber == "":
		return s, fmt.Errorf("%w: student number is required", ErrInvalidStudent)
	case s.FirstName == "" || s.LastName == "":
		return s, fmt.Errorf("%w: first and last name are required", ErrInvalidStudent)
	case s.PhoneNumber == "":
		return s, fmt.Errorf("%w: phone number is required", ErrInvalidStudent)
	case s.InscriptionFeeStatus != "" && !s.InscriptionFeeStatus.Valid():
		return s, fmt.Errorf("%w: inscription fee status must be PAID or NOT_PAID", ErrInvalidStudent)
	}
	if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
		return s, fmt.Errorf("%w: email is invalid", ErrInvalidStudent)
	}
	return s, nil
}
