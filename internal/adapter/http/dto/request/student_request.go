package request

import "university_billing/internal/domain/entities"

type StudentRequest struct {
	StudentNumber        string `json:"student_number" binding:"required"`
	FirstName            string `json:"first_name" binding:"required"`
	LastName             string `json:"last_name" binding:"required"`
	Email                string `json:"email" binding:"required"`
	PhoneNumber          string `json:"phone_number" binding:"required"`
	Enabled              *bool  `json:"enabled"`
	InscriptionFeeStatus string `json:"inscription_fee_status" enums:"PAID,NOT_PAID"`
}

// ToEntity maps the payload; an absent enabled flag means enabled.
func (r StudentRequest) ToEntity() entities.Student {
	enabled := true
	if r.Enabled != nil {
		enabled = *r.Enabled
	}
	return entities.Student{
		StudentNumber:        r.StudentNumber,
		FirstName:            r.FirstName,
		LastName:             r.LastName,
		Email:                r.Email,
		PhoneNumber:          r.PhoneNumber,
		Enabled:              enabled,
		InscriptionFeeStatus: entities.InscriptionFeeStatus(r.InscriptionFeeStatus),
	}
}

type InscriptionFeeStatusRequest struct {
	InscriptionFeeStatus string `json:"inscription_fee_status" binding:"required" enums:"PAID,NOT_PAID"`
}

// StudentListQuery is bound from the query string of the student listing.
type StudentListQuery struct {
	Page                 int    `form:"page" binding:"omitempty,min=1"`
	Limit                int    `form:"limit" binding:"omitempty,min=1"`
	InscriptionFeeStatus string `form:"inscription_fee_status"`
	Enabled              *bool  `form:"enabled"`
	Search               string `form:"search"`
}

func (q StudentListQuery) ToFilter() entities.StudentFilter {
	return entities.StudentFilter{
		InscriptionFeeStatus: entities.InscriptionFeeStatus(q.InscriptionFeeStatus),
		Enabled:              q.Enabled,
		Search:               q.Search,
		Page:                 q.Page,
		Limit:                q.Limit,
	}
}

type CourseRequest struct {
	CourseID   string `json:"course_id" binding:"required"`
	CourseName string `json:"course_name"`
	CourseCode string `json:"course_code"`
	Credits    int    `json:"credits"`
}

func (r CourseRequest) ToEntity() entities.Course {
	return entities.Course{CourseID: r.CourseID, CourseName: r.CourseName, CourseCode: r.CourseCode, Credits: r.Credits}
}

type GradeRequest struct {
	CourseID   string   `json:"course_id" binding:"required"`
	CourseName string   `json:"course_name"`
	Grade      *float64 `json:"grade" binding:"required"`
	Semester   string   `json:"semester"`
}

func (r GradeRequest) ToEntity() entities.Grade {
	g := entities.Grade{CourseID: r.CourseID, CourseName: r.CourseName, Semester: r.Semester}
	if r.Grade != nil {
		g.Grade = *r.Grade
	}
	return g
}
