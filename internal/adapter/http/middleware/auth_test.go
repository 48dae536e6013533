package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"university_billing/internal/adapter/http/handlers/mocks"
	"university_billing/internal/domain/entities"
	"university_billing/internal/usecase"
	mock_interfaces "university_billing/internal/usecase/interfaces/mocks"
	"university_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProtectedRouter(filter usecase.GatewayTrustFilter, access usecase.IAccessUseCase) *gin.Engine {
	r := gin.New()
	r.GET("/v1/fees", GatewayTrust(filter), RequireRole(access, "admin"), func(c *gin.Context) {
		p, _ := PrincipalFrom(c)
		c.JSON(http.StatusOK, gin.H{"subject": p.SubjectID, "actor": ActorID(c)})
	})
	return r
}

func doGet(r *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/fees", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %s", w.Body.String())
	}
	return body.Code
}

func TestGatewayTrustThenRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	filter := usecase.NewGatewayTrustFilter("s3cret")
	trusted := map[string]string{HeaderGatewayRequest: "true", HeaderGatewaySecret: "s3cret"}

	t.Run("direct access never reaches the authority", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mocks.NewMockIAccessUseCase(ctrl)
		access.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		cases := []map[string]string{
			{"Authorization": "Bearer tok"},
			{HeaderGatewayRequest: "true", "Authorization": "Bearer tok"},
			{HeaderGatewayRequest: "false", HeaderGatewaySecret: "s3cret", "Authorization": "Bearer tok"},
			{HeaderGatewayRequest: "true", HeaderGatewaySecret: "wrong", "Authorization": "Bearer tok"},
		}
		for _, h := range cases {
			w := doGet(newProtectedRouter(filter, access), h)
			if w.Code != http.StatusForbidden || errorCode(t, w) != "DIRECT_ACCESS_FORBIDDEN" {
				t.Fatalf("expected 403 DIRECT_ACCESS_FORBIDDEN for %v, got %d %s", h, w.Code, w.Body.String())
			}
		}
	})

	t.Run("missing bearer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mocks.NewMockIAccessUseCase(ctrl)
		access.EXPECT().Authorize(gomock.Any(), "", "admin").Return(entities.Principal{}, usecase.ErrMissingToken)

		w := doGet(newProtectedRouter(filter, access), trusted)
		if w.Code != http.StatusUnauthorized || errorCode(t, w) != "MISSING_TOKEN" {
			t.Fatalf("expected 401 MISSING_TOKEN, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("authentication failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mocks.NewMockIAccessUseCase(ctrl)
		access.EXPECT().Authorize(gomock.Any(), "tok", "admin").Return(entities.Principal{}, usecase.ErrAuthenticationFailed)

		h := map[string]string{HeaderGatewayRequest: "true", HeaderGatewaySecret: "s3cret", "Authorization": "Bearer tok"}
		w := doGet(newProtectedRouter(filter, access), h)
		if w.Code != http.StatusUnauthorized || errorCode(t, w) != "UNAUTHENTICATED" {
			t.Fatalf("expected 401 UNAUTHENTICATED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("denied role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mocks.NewMockIAccessUseCase(ctrl)
		access.EXPECT().Authorize(gomock.Any(), "tok", "admin").Return(entities.Principal{}, usecase.ErrAuthorizationDenied)

		h := map[string]string{HeaderGatewayRequest: "true", HeaderGatewaySecret: "s3cret", "Authorization": "Bearer tok"}
		w := doGet(newProtectedRouter(filter, access), h)
		if w.Code != http.StatusForbidden || errorCode(t, w) != "ACCESS_DENIED" {
			t.Fatalf("expected 403 ACCESS_DENIED, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("admitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		access := mocks.NewMockIAccessUseCase(ctrl)
		access.EXPECT().Authorize(gomock.Any(), "tok", "admin").Return(entities.NewPrincipal("adm-1", "a@uni.edu", "Ada", "ROLE_ADMIN", "tok"), nil)

		h := map[string]string{HeaderGatewayRequest: "true", HeaderGatewaySecret: "s3cret", "Authorization": "bearer tok"}
		w := doGet(newProtectedRouter(filter, access), h)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["subject"] != "adm-1" || body["actor"] != "adm-1" {
			t.Fatalf("principal not propagated: %v", body)
		}
	})
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":      "abc",
		"bearer  abc ":    "abc",
		"Basic abc":       "",
		"abc":             "",
		"":                "",
		"Bearer":          "",
		"  Bearer x.y.z ": "x.y.z",
	}
	for in, want := range cases {
		if got := BearerToken(in); got != want {
			t.Fatalf("BearerToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMissingTokenIsDistinctFromRejectedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator := mock_interfaces.NewMockITokenValidator(ctrl)
	validator.EXPECT().Validate(gomock.Any(), "bad").Return(entities.Principal{}, errors.New("authority said no")).Times(1)

	r := newProtectedRouter(usecase.NewGatewayTrustFilter("s3cret"), usecase.NewAccessUseCase(validator))
	trusted := map[string]string{HeaderGatewayRequest: "true", HeaderGatewaySecret: "s3cret"}

	missing := doGet(r, trusted)
	trusted["Authorization"] = "Bearer bad"
	rejected := doGet(r, trusted)

	if missing.Code != http.StatusUnauthorized || rejected.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", missing.Code, rejected.Code)
	}
	if got := errorCode(t, missing); got != "MISSING_TOKEN" {
		t.Fatalf("expected MISSING_TOKEN, got %s", got)
	}
	if got := errorCode(t, rejected); got != "UNAUTHENTICATED" {
		t.Fatalf("expected UNAUTHENTICATED, got %s", got)
	}
}
