package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *echo.Echo {
	e := echo.New()
	srv := &Server{}
	srv.RegisterRoutes(e)
	return e
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code errs.Code
		want int
	}{
		{errs.CodeNotFound, http.StatusNotFound},
		{errs.CodeAlreadyExists, http.StatusConflict},
		{errs.CodeValidationError, http.StatusBadRequest},
		{errs.CodePermissionDenied, http.StatusForbidden},
		{errs.CodeImmutableViolation, http.StatusConflict},
		{errs.CodeDatabaseError, http.StatusInternalServerError},
		{errs.CodeUnknownError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, statusForCode(tt.code))
		})
	}
}

func TestHealth(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMissingOrganizationHeader(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, errs.CodeValidationError, envelope.Error.Code)
}

func TestMalformedOrganizationHeader(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set(organizationHeader, "not-a-uuid")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMalformedPathIdentifier(t *testing.T) {
	e := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid", nil)
	req.Header.Set(organizationHeader, "3422b448-2460-4fd2-9183-8000de6f8343")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, errs.CodeValidationError, envelope.Error.Code)
}

func TestParseOptionalTime(t *testing.T) {
	t.Run("should return nil for empty value", func(t *testing.T) {
		got, err := parseOptionalTime("from", "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should parse RFC3339", func(t *testing.T) {
		got, err := parseOptionalTime("from", "2026-08-30T12:00:00Z")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 2026, got.Year())
	})

	t.Run("should reject malformed value", func(t *testing.T) {
		_, err := parseOptionalTime("from", "yesterday")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
