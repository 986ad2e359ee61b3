package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medilog/medilog-api/internal/api/handler"
	"github.com/medilog/medilog-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, handler.Response) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp handler.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrUnauthenticated, http.StatusUnauthorized},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrEmailExists, http.StatusConflict},
		{domain.ErrFlagNameExists, http.StatusConflict},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrFlagNotFound, http.StatusNotFound},
		{errors.New("database exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, resp := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: status = %d, want %d", tc.err, code, tc.code)
		}
		if resp.Success {
			t.Fatalf("%v: expected failure envelope", tc.err)
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	_, resp := renderError(t, errors.New("pq: secret connection string"))
	if resp.Message != "An unexpected error occurred" {
		t.Fatalf("internal detail leaked: %q", resp.Message)
	}
}

func TestErrorHandler_ValidationFieldsInData(t *testing.T) {
	code, resp := renderError(t, domain.NewValidationError(map[string]string{
		"email": "email must be a valid email",
	}))
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	fields, ok := resp.Data.(map[string]any)
	if !ok || fields["email"] != "email must be a valid email" {
		t.Fatalf("field messages missing: %+v", resp.Data)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid feature flag id"))
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	if resp.Message != "invalid feature flag id" {
		t.Fatalf("message = %q", resp.Message)
	}
}
