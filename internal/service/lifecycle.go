package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/pkg/log"
	"github.com/pribylovaa/points-backend/internal/storage"
)

// Redeem обменивает валидный refresh-токен на новый access-токен.
//
// Порядок проверок фиксирован:
//  1. отзыв — ДО поиска записи, чтобы отзыв действовал и после того,
//     как сама запись была удалена;
//  2. существование записи;
//  3. срок: просроченная запись удаляется, повторный обмен того же
//     значения ответит «невалиден», а не «просрочен».
//
// Сам refresh-токен не ротируется: он действует до собственного истечения
// или явного logout.
func (s *Service) Redeem(ctx context.Context, refreshToken string) (*models.Session, error) {
	const op = "service/lifecycle/Redeem"

	if strings.TrimSpace(refreshToken) == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingRefreshToken)
	}

	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	lg := log.From(ctx)

	revoked, err := s.tokens.IsRevoked(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		lg.Warn("redeem_revoked", slog.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	rec, err := s.tokens.RefreshTokenByValue(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("redeem_unknown", slog.String("op", op))
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	if rec.ExpiresAt.Before(now) {
		if err := s.tokens.DeleteRefreshToken(ctx, refreshToken); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		lg.Warn("redeem_expired",
			slog.String("op", op),
			slog.String("uid", rec.UserID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	accessToken, accessExpiresAt, err := s.issueAccessToken(rec.UserID, rec.Email, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.Session{
		UID:             rec.UserID,
		Email:           rec.Email,
		AccountName:     rec.AccountName,
		AccessToken:     accessToken,
		AccessExpiresAt: accessExpiresAt,
	}, nil
}

// Revoke отзывает refresh-токен (logout).
//
// Повторный отзыв того же значения — идемпотентный успех; неизвестное
// значение — ErrInvalidToken. Отзыв постоянен: значение остаётся в
// множестве отозванных и после удаления записи.
func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	const op = "service/lifecycle/Revoke"

	if strings.TrimSpace(refreshToken) == "" {
		return fmt.Errorf("%s: %w", op, ErrMissingRefreshToken)
	}

	s.lifecycleMu.Lock()
	defer s.lifecycleMu.Unlock()

	if err := s.tokens.RevokeRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("refresh_revoked", slog.String("op", op))

	return nil
}
