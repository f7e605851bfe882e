package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/storage"
)

// searchLimitPerField — максимум совпадений на каждое поле поиска.
const searchLimitPerField = 50

// ProfileByUID возвращает профиль пользователя.
func (s *Service) ProfileByUID(ctx context.Context, uid string) (*models.Profile, error) {
	const op = "service/users/ProfileByUID"

	if s.social == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	profile, err := s.social.ProfileByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profile, nil
}

// SearchProfiles ищет профили по префиксу имени аккаунта или email
// (регистрозависимо). Пустой запрос — пустой результат, не ошибка.
func (s *Service) SearchProfiles(ctx context.Context, query string) ([]models.Profile, error) {
	const op = "service/users/SearchProfiles"

	if s.social == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Profile{}, nil
	}

	profiles, err := s.social.SearchProfiles(ctx, query, searchLimitPerField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return profiles, nil
}
