package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dynamodb: connection reset")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", err.HTTPStatus)
	}
}

func TestAppError_Simple(t *testing.T) {
	err := NewDomainErrorSimple("FEE_NOT_FOUND", "Inscription fee not found", http.StatusNotFound)
	if err.Error() != "FEE_NOT_FOUND: Inscription fee not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected no cause")
	}
}
