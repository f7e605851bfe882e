package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/points-backend/internal/config"
	"github.com/pribylovaa/points-backend/mocks"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockTokenStorage, *mocks.MockSocialStorage, *mocks.MockProvider, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenStorage(ctrl)
	social := mocks.NewMockSocialStorage(ctrl)
	idp := mocks.NewMockProvider(ctrl)
	svc := New(tokens, social, idp, testCfg())
	return svc, tokens, social, idp, ctrl
}

func TestIssueVerifyAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	now := time.Now().UTC().Truncate(time.Second)

	signed, expiresAt, err := svc.issueAccessToken("uid-1", "user@example.com", now)
	require.NoError(t, err)
	require.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := svc.verifyAccessToken(signed)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, now, claims.IssuedAt)
	require.Equal(t, expiresAt, claims.ExpiresAt)
}

func TestIssueAccessToken_NoSecret(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	cfg.JWTSecret = ""
	svc := New(nil, nil, nil, cfg)

	_, _, err := svc.issueAccessToken("uid-1", "user@example.com", time.Now().UTC())
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestVerifyAccessToken_WrongAlg(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Токен подписан тем же секретом, но другим алгоритмом.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "uid-1",
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("unit-secret"))
	require.NoError(t, err)

	_, err = svc.verifyAccessToken(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessToken_TamperedSignature(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	signed, _, err := svc.issueAccessToken("uid-1", "user@example.com", time.Now().UTC())
	require.NoError(t, err)

	other := New(nil, nil, nil, config.AuthConfig{
		JWTSecret:      "another-secret",
		AccessTokenTTL: time.Hour,
	})

	_, err = other.verifyAccessToken(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	signed, _, err := svc.issueAccessToken("uid-1", "user@example.com", time.Now().UTC().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.verifyAccessToken(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyAccessToken_LeewayToleratesSkew(t *testing.T) {
	t.Parallel()

	cfg := testCfg()
	cfg.Leeway = 5 * time.Minute
	svc := New(nil, nil, nil, cfg)

	// Истёк две минуты назад — в пределах допуска.
	signed, _, err := svc.issueAccessToken("uid-1", "user@example.com", time.Now().UTC().Add(-time.Hour-2*time.Minute))
	require.NoError(t, err)

	claims, err := svc.verifyAccessToken(signed)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
}

func TestVerifyAccessToken_MissingSubject(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	signed, _, err := svc.issueAccessToken("", "user@example.com", time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.verifyAccessToken(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "bearer scheme", raw: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", raw: "bearer token123", want: "token123"},
		{name: "mixed case scheme", raw: "BeArEr token123", want: "token123"},
		{name: "bare token", raw: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "quoted token", raw: `Bearer "token123"`, want: "token123"},
		{name: "single quoted bare", raw: "'token123'", want: "token123"},
		{name: "surrounding spaces", raw: "   Bearer token123   ", want: "token123"},
		{name: "empty", raw: "", wantErr: ErrMissingAuthHeader},
		{name: "spaces only", raw: "   ", wantErr: ErrMissingAuthHeader},
		{name: "quotes only", raw: `""`, wantErr: ErrMissingAuthHeader},
		{name: "unknown scheme", raw: "Basic dXNlcjpwYXNz", wantErr: ErrMalformedAuthHeader},
		{name: "three parts", raw: "Bearer a b", wantErr: ErrMalformedAuthHeader},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := extractBearerToken(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAuthenticate_OK(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	signed, _, err := svc.issueAccessToken("uid-1", "user@example.com", time.Now().UTC())
	require.NoError(t, err)

	claims, err := svc.Authenticate(context.Background(), "Bearer "+signed)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
}

func TestAuthenticate_Garbage(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.Authenticate(context.Background(), "Bearer not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}
