package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/points-backend/internal/identity"
	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/pkg/log"
)

const (
	accountNameMinLen = 3
	accountNameMaxLen = 30
)

// Login делегирует проверку email/пароля провайдеру идентичности и
// выпускает собственную пару токенов.
func (s *Service) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "service/auth/Login"

	acct, err := s.idp.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapIdentityErr(err))
	}

	now := time.Now().UTC()

	accessToken, accessExpiresAt, err := s.issueAccessToken(acct.UID, acct.Email, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := s.issueRefreshToken(ctx, acct.UID, acct.Email, acct.AccountName, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("login_ok",
		slog.String("op", op),
		slog.String("uid", acct.UID),
	)

	return &models.Session{
		UID:             acct.UID,
		Email:           acct.Email,
		AccountName:     acct.AccountName,
		AccessToken:     accessToken,
		RefreshToken:    refresh.Token,
		AccessExpiresAt: accessExpiresAt,
	}, nil
}

// Register создаёт учётную запись у провайдера и профиль в документном
// хранилище.
//
// Частичный сбой компенсируется: если профиль записать не удалось (или
// хранилище не сконфигурировано), только что созданная учётная запись
// провайдера удаляется best-effort, ошибка удаления логируется и не
// перекрывает исходную.
func (s *Service) Register(ctx context.Context, email, password, accountName string) (*models.Profile, error) {
	const op = "service/auth/Register"

	accountName = strings.TrimSpace(accountName)
	if n := len([]rune(accountName)); n < accountNameMinLen || n > accountNameMaxLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidAccountName)
	}

	acct, err := s.idp.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapIdentityErr(err))
	}

	if s.social == nil {
		s.rollbackAccount(ctx, acct)
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	profile := &models.Profile{
		UID:         acct.UID,
		Email:       acct.Email,
		AccountName: accountName,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.social.SaveProfile(ctx, profile); err != nil {
		s.rollbackAccount(ctx, acct)
		return nil, fmt.Errorf("%s: save profile: %w", op, err)
	}

	log.From(ctx).Info("register_ok",
		slog.String("op", op),
		slog.String("uid", acct.UID),
	)

	return profile, nil
}

// rollbackAccount — компенсирующее удаление учётной записи провайдера,
// чтобы не оставить учётку без профиля. Сбой отката только логируется.
func (s *Service) rollbackAccount(ctx context.Context, acct *identity.Account) {
	const op = "service/auth/rollbackAccount"

	if err := s.idp.DeleteAccount(ctx, acct.ProviderToken); err != nil {
		log.From(ctx).Error("rollback_delete_failed",
			slog.String("op", op),
			slog.String("uid", acct.UID),
			slog.String("err", err.Error()),
		)
	}
}

// mapIdentityErr переводит ошибки адаптера провайдера в сигнальные ошибки
// сервиса; адаптерные ошибки не покидают этот слой.
func mapIdentityErr(err error) error {
	switch {
	case errors.Is(err, identity.ErrNotConfigured):
		return ErrNotConfigured
	case errors.Is(err, identity.ErrUnavailable):
		return ErrUpstream
	case errors.Is(err, identity.ErrInvalidCredentials):
		return ErrInvalidCredentials
	case errors.Is(err, identity.ErrRejected):
		return ErrRegistrationRejected
	default:
		return err
	}
}
