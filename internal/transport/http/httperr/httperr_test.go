package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/points-backend/internal/service"
)

func TestToHTTP(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "nil", err: nil, wantStatus: http.StatusInternalServerError, wantCode: "internal"},
		{name: "invalid json", err: ErrInvalidJSON, wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "missing refresh", err: service.ErrMissingRefreshToken, wantStatus: http.StatusBadRequest, wantCode: "missing_input"},
		{name: "bad account name", err: service.ErrInvalidAccountName, wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "registration rejected", err: service.ErrRegistrationRejected, wantStatus: http.StatusBadRequest, wantCode: "registration_rejected"},
		{name: "empty participant", err: service.ErrEmptyParticipant, wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "self request", err: service.ErrSelfRequest, wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "missing header", err: service.ErrMissingAuthHeader, wantStatus: http.StatusUnauthorized, wantCode: "missing_credential"},
		{name: "malformed header", err: service.ErrMalformedAuthHeader, wantStatus: http.StatusUnauthorized, wantCode: "malformed_credential"},
		{name: "bad credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantCode: "invalid_credentials"},
		{name: "revoked", err: service.ErrTokenRevoked, wantStatus: http.StatusUnauthorized, wantCode: "revoked_credential"},
		{name: "expired", err: service.ErrTokenExpired, wantStatus: http.StatusUnauthorized, wantCode: "expired_credential"},
		{name: "invalid token", err: service.ErrInvalidToken, wantStatus: http.StatusUnauthorized, wantCode: "invalid_credential"},
		{name: "sender mismatch", err: service.ErrSenderMismatch, wantStatus: http.StatusForbidden, wantCode: "sender_mismatch"},
		{name: "not found", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "duplicate", err: service.ErrDuplicateRequest, wantStatus: http.StatusConflict, wantCode: "already_exists"},
		{name: "not configured", err: service.ErrNotConfigured, wantStatus: http.StatusInternalServerError, wantCode: "not_configured"},
		{name: "store unavailable", err: service.ErrStoreUnavailable, wantStatus: http.StatusNotImplemented, wantCode: "store_unavailable"},
		{name: "upstream", err: service.ErrUpstream, wantStatus: http.StatusBadGateway, wantCode: "upstream_unavailable"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedError(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("service/lifecycle/Redeem"), service.ErrTokenRevoked)

	status, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, "revoked_credential", resp.Error.Code)
	require.Equal(t, "Refresh token revoked", resp.Error.Message)
}

func TestToHTTP_NoInternalLeakage(t *testing.T) {
	t.Parallel()

	_, resp := ToHTTP(errors.New("pgx: connection refused on 10.0.0.5"))
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrTokenExpired)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "expired_credential", resp.Error.Code)
	require.Equal(t, "req-123", resp.Error.RequestID)
}
