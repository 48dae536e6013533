package response

import (
	"time"

	"university_billing/internal/domain/entities"
)

type StudentResponse struct {
	ID                   string            `json:"id"`
	StudentNumber        string            `json:"student_number"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	FullName             string            `json:"full_name"`
	Email                string            `json:"email"`
	PhoneNumber          string            `json:"phone_number"`
	Enabled              bool              `json:"enabled"`
	InscriptionFeeStatus string            `json:"inscription_fee_status"`
	Courses              []entities.Course `json:"courses"`
	Grades               []entities.Grade  `json:"grades"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func FromStudent(s entities.Student) StudentResponse {
	courses := s.Courses
	if courses == nil {
		courses = []entities.Course{}
	}
	grades := s.Grades
	if grades == nil {
		grades = []entities.Grade{}
	}
	return StudentResponse{
		ID:                   s.ID,
		StudentNumber:        s.StudentNumber,
		FirstName:            s.FirstName,
		LastName:             s.LastName,
		FullName:             s.FirstName + " " + s.LastName,
		Email:                s.Email,
		PhoneNumber:          s.PhoneNumber,
		Enabled:              s.Enabled,
		InscriptionFeeStatus: string(s.InscriptionFeeStatus),
		Courses:              courses,
		Grades:               grades,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func FromStudents(students []entities.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination Pagination        `json:"pagination"`
}

func FromStudentPage(p entities.StudentPage) StudentListResponse {
	return StudentListResponse{
		Students:   FromStudents(p.Students),
		Pagination: Pagination{Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: p.Pages},
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
