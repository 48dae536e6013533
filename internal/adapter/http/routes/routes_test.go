package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"university_billing/internal/adapter/http/handlers"
	"university_billing/internal/adapter/http/handlers/mocks"
	"university_billing/internal/adapter/http/middleware"
	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const testSecret = "s3cret"

func newTestRouter(fees usecase.IInscriptionFeeUseCase, students usecase.IStudentUseCase, access usecase.IAccessUseCase) *gin.Engine {
	r := gin.New()
	addPingRoutes(r)
	v1 := r.Group("/v1")
	protected := v1.Group("", guards(usecase.NewGatewayTrustFilter(testSecret), access, AdminRole)...)
	addInscriptionFeeRoutes(protected, handlers.NewInscriptionFeeHandler(fees))
	addStudentRoutes(protected, handlers.NewStudentHandler(students))
	return r
}

func trustedRequest(method, path string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(middleware.HeaderGatewayRequest, "true")
	req.Header.Set(middleware.HeaderGatewaySecret, testSecret)
	req.Header.Set("Authorization", "Bearer tok")
	return req
}

func TestPingRoutesArePublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	access := mocks.NewMockIAccessUseCase(ctrl)
	access.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	r := newTestRouter(mocks.NewMockIInscriptionFeeUseCase(ctrl), mocks.NewMockIStudentUseCase(ctrl), access)
	for _, path := range []string{"/health", "/v1/ping"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestBusinessRoutesRequireGateway(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	access := mocks.NewMockIAccessUseCase(ctrl)
	access.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	r := newTestRouter(mocks.NewMockIInscriptionFeeUseCase(ctrl), mocks.NewMockIStudentUseCase(ctrl), access)
	for _, path := range []string{"/v1/fees", "/v1/students", "/v1/fees/statistics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", path, w.Code)
		}
	}
}

func TestStaticFeeRoutesWinOverID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	access := mocks.NewMockIAccessUseCase(ctrl)
	access.EXPECT().Authorize(gomock.Any(), "tok", AdminRole).
		Return(entities.NewPrincipal("admin-1", "root@uni.edu", "Root", "ADMIN", "tok"), nil).Times(2)
	fees := mocks.NewMockIInscriptionFeeUseCase(ctrl)
	fees.EXPECT().GetStatistics(gomock.Any()).Return(entities.FeeStatistics{}, nil)
	fees.EXPECT().GetByID(gomock.Any(), "fee-1").Return(entities.InscriptionFee{ID: "fee-1"}, nil)

	r := newTestRouter(fees, mocks.NewMockIStudentUseCase(ctrl), access)
	for _, path := range []string{"/v1/fees/statistics", "/v1/fees/fee-1"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, trustedRequest(http.MethodGet, path))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d %s", path, w.Code, w.Body.String())
		}
	}
}

func TestStudentLookupRoutesWinOverID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	access := mocks.NewMockIAccessUseCase(ctrl)
	access.EXPECT().Authorize(gomock.Any(), "tok", AdminRole).
		Return(entities.NewPrincipal("admin-1", "root@uni.edu", "Root", "ADMIN", "tok"), nil).Times(4)
	students := mocks.NewMockIStudentUseCase(ctrl)
	students.EXPECT().GetByStudentNumber(gomock.Any(), "2026001").Return(entities.Student{ID: "stu-1"}, nil)
	students.EXPECT().GetByEmail(gomock.Any(), "ada@uni.edu").Return(entities.Student{ID: "stu-1"}, nil)
	students.EXPECT().GetByID(gomock.Any(), "stu-1").Return(entities.Student{ID: "stu-1"}, nil)
	students.EXPECT().RemoveCourse(gomock.Any(), "stu-1", "CS-101").Return(entities.Student{ID: "stu-1"}, nil)

	r := newTestRouter(mocks.NewMockIInscriptionFeeUseCase(ctrl), students, access)
	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/v1/students/student-number/2026001"},
		{http.MethodGet, "/v1/students/email/ada@uni.edu"},
		{http.MethodGet, "/v1/students/stu-1"},
		{http.MethodDelete, "/v1/students/stu-1/courses/CS-101"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, trustedRequest(rt.method, rt.path))
		if w.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d %s", rt.method, rt.path, w.Code, w.Body.String())
		}
	}
}
