package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/pkg/log"
	"github.com/pribylovaa/points-backend/internal/storage"
)

// CreateFriendRequest создаёт pending-заявку в друзья от имени
// аутентифицированного пользователя.
//
// Порядок проверок:
//  1. оба участника непусты после обрезки;
//  2. senderId совпадает с subject токена (действовать можно только за себя);
//  3. заявка не самому себе;
//  4. для пары (sender, receiver) ещё нет pending-заявки — направление
//     имеет значение, встречная заявка receiver→sender допустима.
//
// Денормализация имён/почты участников — best-effort: отсутствие профиля
// не срывает создание заявки.
func (s *Service) CreateFriendRequest(ctx context.Context, claims *models.Claims, senderID, receiverID string) (*models.FriendRequest, error) {
	const op = "service/friends/CreateFriendRequest"

	senderID = strings.TrimSpace(senderID)
	receiverID = strings.TrimSpace(receiverID)

	if senderID == "" || receiverID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyParticipant)
	}

	if claims == nil || senderID != claims.UserID {
		return nil, fmt.Errorf("%s: %w", op, ErrSenderMismatch)
	}

	if senderID == receiverID {
		return nil, fmt.Errorf("%s: %w", op, ErrSelfRequest)
	}

	if s.social == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	_, err := s.social.PendingFriendRequest(ctx, senderID, receiverID)
	if err == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrDuplicateRequest)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req := &models.FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestPending,
		CreatedAt:  time.Now().UTC(),
	}

	s.denormalizeParticipants(ctx, req)

	if err := s.social.SaveFriendRequest(ctx, req); err != nil {
		// Гонка закрывается частичным уникальным индексом хранилища.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, fmt.Errorf("%s: %w", op, ErrDuplicateRequest)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("friend_request_created",
		slog.String("op", op),
		slog.String("request_id", req.ID),
		slog.String("sender", senderID),
		slog.String("receiver", receiverID),
	)

	return req, nil
}

// denormalizeParticipants подтягивает имена и почту участников из профилей.
// Любая ошибка поиска только логируется: заявка создаётся и без этих полей.
func (s *Service) denormalizeParticipants(ctx context.Context, req *models.FriendRequest) {
	const op = "service/friends/denormalizeParticipants"

	lg := log.From(ctx)

	if p, err := s.social.ProfileByUID(ctx, req.SenderID); err == nil {
		req.SenderName = p.AccountName
		req.SenderEmail = p.Email
	} else if !errors.Is(err, storage.ErrNotFound) {
		lg.Warn("denormalize_sender_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}

	if p, err := s.social.ProfileByUID(ctx, req.ReceiverID); err == nil {
		req.ReceiverName = p.AccountName
		req.ReceiverEmail = p.Email
	} else if !errors.Is(err, storage.ErrNotFound) {
		lg.Warn("denormalize_receiver_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
	}
}
