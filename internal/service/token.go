package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/pkg/log"
)

// refreshTokenBytes — энтропия refresh-токена до кодирования base64url.
const refreshTokenBytes = 48

// accessClaims — полезная нагрузка access-токена: sub/iat/exp плюс email.
type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// issueAccessToken подписывает access-токен (HS256) для пользователя.
// Без побочных эффектов: валидность токена определяется только подписью
// и временными метками.
func (s *Service) issueAccessToken(uid, email string, now time.Time) (string, time.Time, error) {
	const op = "service/token/issueAccessToken"

	if s.cfg.JWTSecret == "" {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, ErrNotConfigured)
	}

	expiresAt := now.Add(s.cfg.AccessTokenTTL)

	claims := accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// verifyAccessToken проверяет подпись и exp access-токена.
//
// exp проверяется с допуском cfg.Leeway; iat намеренно НЕ сверяется с
// текущим временем: выпускающая и проверяющая стороны могут жить на разных
// машинах, и «iat из будущего» сам по себе не делает токен недействительным.
func (s *Service) verifyAccessToken(raw string) (*models.Claims, error) {
	const op = "service/token/verifyAccessToken"

	token, err := jwt.ParseWithClaims(raw, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.cfg.Leeway),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	out := &models.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
	}

	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time.UTC()
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time.UTC()
	}

	return out, nil
}

// issueRefreshToken создаёт refresh-токен и сохраняет его запись.
// Уникальность обеспечивается энтропией генерации, а не явной проверкой.
func (s *Service) issueRefreshToken(ctx context.Context, uid, email, accountName string, now time.Time) (*models.RefreshToken, error) {
	const op = "service/token/issueRefreshToken"

	lg := log.From(ctx)

	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		lg.Error("refresh_rand_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rec := &models.RefreshToken{
		Token:       base64.RawURLEncoding.EncodeToString(b),
		UserID:      uid,
		Email:       email,
		AccountName: accountName,
		IssuedAt:    now,
		ExpiresAt:   now.Add(s.cfg.RefreshTokenTTL),
	}

	if err := s.tokens.SaveRefreshToken(ctx, rec); err != nil {
		lg.Error("save_refresh_token_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

// extractBearerToken разбирает значение заголовка Authorization.
//
// Принимаются две формы: "Bearer <token>" (схема без учёта регистра)
// и голый токен. Окружающие кавычки и пробелы срезаются. Больше двух
// разделённых пробелами частей — некорректный заголовок.
func extractBearerToken(raw string) (string, error) {
	const op = "service/token/extractBearerToken"

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMissingAuthHeader)
	}

	fields := strings.Fields(raw)

	var token string
	switch {
	case len(fields) > 2:
		return "", fmt.Errorf("%s: %w", op, ErrMalformedAuthHeader)
	case len(fields) == 2:
		if !strings.EqualFold(fields[0], "bearer") {
			return "", fmt.Errorf("%s: %w", op, ErrMalformedAuthHeader)
		}
		token = fields[1]
	default:
		token = fields[0]
	}

	token = strings.Trim(token, `"'`)
	if token == "" {
		return "", fmt.Errorf("%s: %w", op, ErrMissingAuthHeader)
	}

	return token, nil
}

// Authenticate проверяет bearer-токен из заголовка Authorization и
// возвращает восстановленную идентичность.
func (s *Service) Authenticate(_ context.Context, authorizationHeader string) (*models.Claims, error) {
	const op = "service/token/Authenticate"

	token, err := extractBearerToken(authorizationHeader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	claims, err := s.verifyAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return claims, nil
}
