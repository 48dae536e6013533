package handlers

import (
	"errors"
	"log"
	"net/http"

	request "university_billing/internal/adapter/http/dto/request"
	response "university_billing/internal/adapter/http/dto/response"
	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase"
	"university_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStudentPayload = pkg.NewDomainErrorSimple("INVALID_STUDENT_INPUT", "Invalid student payload", http.StatusBadRequest)
	errInvalidStudentQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid student list query", http.StatusBadRequest)
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	usecase usecase.IStudentUseCase
}

func NewStudentHandler(uc usecase.IStudentUseCase) *StudentHandler {
	return &StudentHandler{usecase: uc}
}

func (h *StudentHandler) ListStudents(c *gin.Context) {
	var query request.StudentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidStudentQuery.HTTPStatus, errInvalidStudentQuery.ToHTTPError())
		return
	}

	page, err := h.usecase.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudentPage(page))
}

func (h *StudentHandler) GetStudentByNumber(c *gin.Context) {
	s, err := h.usecase.GetByStudentNumber(c.Request.Context(), c.Param("student_number"))
	if err != nil {
		h.fail(c, "get-by-number", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(s))
}

func (h *StudentHandler) GetStudentByEmail(c *gin.Context) {
	s, err := h.usecase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, "get-by-email", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(s))
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(s))
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var payload request.StudentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		h.fail(c, "create", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromStudent(created))
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var payload request.StudentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(updated))
}

func (h *StudentHandler) UpdateInscriptionFeeStatus(c *gin.Context) {
	var payload request.InscriptionFeeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateInscriptionFeeStatus(c.Request.Context(), c.Param("id"), entities.InscriptionFeeStatus(payload.InscriptionFeeStatus))
	if err != nil {
		h.fail(c, "inscription-fee-status", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(updated))
}

func (h *StudentHandler) AddCourse(c *gin.Context) {
	var payload request.CourseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AddCourse(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		h.fail(c, "add-course", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(updated))
}

func (h *StudentHandler) RemoveCourse(c *gin.Context) {
	updated, err := h.usecase.RemoveCourse(c.Request.Context(), c.Param("id"), c.Param("course_id"))
	if err != nil {
		h.fail(c, "remove-course", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(updated))
}

func (h *StudentHandler) AddGrade(c *gin.Context) {
	var payload request.GradeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AddGrade(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		h.fail(c, "add-grade", err)
		return
	}
	c.JSON(http.StatusOK, response.FromStudent(updated))
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StudentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapStudentError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[student][handler] %s failed path=%s err=%v", op, c.Request.URL.Path, err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapStudentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStudentRecord):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCourse), errors.Is(err, usecase.ErrInvalidGrade):
		return pkg.NewDomainError("VALIDATION_FAILED", "Course or grade validation failed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStudent):
		return pkg.NewDomainError("VALIDATION_FAILED", "Student validation failed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStudentNotFound):
		return pkg.NewDomainErrorSimple("STUDENT_NOT_FOUND", "Student not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStudentAlreadyExists):
		return pkg.NewDomainErrorSimple("STUDENT_ALREADY_EXISTS", "A student with this email or student number already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCourseAlreadyAdded):
		return pkg.NewDomainErrorSimple("COURSE_ALREADY_ADDED", "The student is already enrolled in this course", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
