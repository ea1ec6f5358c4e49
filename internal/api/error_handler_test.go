package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crewdesk/crewdesk-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the error envelope: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token revoked", domain.ErrTokenRevoked, http.StatusUnauthorized},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"profile not found", domain.ErrProfileNotFound, http.StatusNotFound},
		{"task not found", domain.ErrTaskNotFound, http.StatusNotFound},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, code)
			}
			if body.Error == "" {
				t.Fatalf("expected error message in envelope")
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationError(t *testing.T) {
	code, body := render(t, &domain.ValidationError{Field: "title", Reason: "must not be empty"})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if body.Error == "" {
		t.Fatalf("expected validation message")
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body.Error != "Not Found" {
		t.Fatalf("expected echo message, got %q", body.Error)
	}
}

func TestHTTPErrorHandler_DataAccessError(t *testing.T) {
	code, body := render(t, &domain.DataAccessError{Op: "tasks.list", Err: errors.New("connection reset")})
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "storage failure: tasks.list" {
		t.Fatalf("real cause must not leak: %q", body.Error)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, body := render(t, errors.New("boom"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail must not leak: %q", body.Error)
	}
}
