package entities

import (
	"strings"
	"time"
)

// InscriptionFeeStatus is the coarse fee flag kept on a student record.
type InscriptionFeeStatus string

const (
	InscriptionFeePaid    InscriptionFeeStatus = "PAID"
	InscriptionFeeNotPaid InscriptionFeeStatus = "NOT_PAID"
)

func (s InscriptionFeeStatus) Valid() bool {
	return s == InscriptionFeePaid || s == InscriptionFeeNotPaid
}

// Student is a student record managed by administrators.
//
// Storage model (DynamoDB):
//   - PK: id
//   - email and student_number are unique; uniqueness is checked by the use case.
type Student struct {
	ID                   string               `json:"id"`
	StudentNumber        string               `json:"student_number"`
	FirstName            string               `json:"first_name"`
	LastName             string               `json:"last_name"`
	Email                string               `json:"email"`
	PhoneNumber          string               `json:"phone_number"`
	Enabled              bool                 `json:"enabled"`
	InscriptionFeeStatus InscriptionFeeStatus `json:"inscription_fee_status"`
	Courses              []Course             `json:"courses"`
	Grades               []Grade              `json:"grades"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// Course is a course the student is enrolled in, keyed by CourseID.
type Course struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	CourseCode string `json:"course_code"`
	Credits    int    `json:"credits"`
}

// Grade is one recorded result; a course may have a grade per semester.
type Grade struct {
	CourseID   string  `json:"course_id"`
	CourseName string  `json:"course_name"`
	Grade      float64 `json:"grade"`
	Semester   string  `json:"semester"`
}

// HasCourse reports whether the student is enrolled in courseID.
func (s Student) HasCourse(courseID string) bool {
	for _, c := range s.Courses {
		if c.CourseID == courseID {
			return true
		}
	}
	return false
}

// Matches reports whether the student's names, email or student number contain
// term, ignoring case.
func (s Student) Matches(term string) bool {
	term = strings.ToLower(term)
	for _, v := range []string{s.FirstName, s.LastName, s.Email, s.StudentNumber} {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// StudentFilter narrows a student listing. Zero fields do not filter.
type StudentFilter struct {
	InscriptionFeeStatus InscriptionFeeStatus
	Enabled              *bool
	Search               string
	Page                 int
	Limit                int
}

// StudentPage is one page of a filtered listing.
type StudentPage struct {
	Students []Student
	Total    int
	Page     int
	Limit    int
	Pages    int
}
