package routes

import (
	"university_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFees     = "/fees"
	PathStudents = "/students"
)

func addInscriptionFeeRoutes(rg *gin.RouterGroup, h *handlers.InscriptionFeeHandler) {
	fees := rg.Group(PathFees)
	{
		fees.GET("", h.ListFees)
		fees.POST("", h.CreateFee)
		fees.GET("/statistics", h.GetStatistics)
		fees.GET("/export", h.ExportFees)
		fees.GET("/student/:student_id", h.ListFeesByStudent)
		fees.GET("/:id", h.GetFee)
		fees.PUT("/:id", h.ReplaceFee)
		fees.PATCH("/:id/payment", h.UpdatePayment)
		fees.POST("/:id/checkout", h.Checkout)
		fees.DELETE("/:id", h.DeleteFee)
	}
}

func addStudentRoutes(rg *gin.RouterGroup, h *handlers.StudentHandler) {
	students := rg.Group(PathStudents)
	{
		students.GET("", h.ListStudents)
		students.POST("", h.CreateStudent)
		students.GET("/student-number/:student_number", h.GetStudentByNumber)
		students.GET("/email/:email", h.GetStudentByEmail)
		students.GET("/:id", h.GetStudent)
		students.PUT("/:id", h.UpdateStudent)
		students.PATCH("/:id/inscription-fee-status", h.UpdateInscriptionFeeStatus)
		students.POST("/:id/courses", h.AddCourse)
		students.DELETE("/:id/courses/:course_id", h.RemoveCourse)
		students.POST("/:id/grades", h.AddGrade)
		students.DELETE("/:id", h.DeleteStudent)
	}
}
