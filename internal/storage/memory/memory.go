// memory — референсный бэкенд TokenStorage: мапа записей плюс множество
// отозванных значений в памяти процесса.
//
// Состояние разделяется всеми запросами, поэтому каждая операция держит
// мьютекс на всю последовательность read-modify-write; частичных состояний
// снаружи не видно. Данные живут только в рамках процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/storage"
)

// Storage реализует storage.TokenStorage в памяти.
type Storage struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
	// revoked: значение токена -> исходный ExpiresAt записи.
	// Срок нужен, чтобы DeleteExpired мог вычистить отметку, когда
	// токен всё равно перестал бы действовать.
	revoked map[string]time.Time
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{
		tokens:  make(map[string]*models.RefreshToken),
		revoked: make(map[string]time.Time),
	}
}

// SaveRefreshToken сохраняет запись.
func (s *Storage) SaveRefreshToken(_ context.Context, token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token.Token]; ok {
		return storage.ErrAlreadyExists
	}

	cp := *token
	s.tokens[token.Token] = &cp

	return nil
}

// RefreshTokenByValue возвращает копию записи.
func (s *Storage) RefreshTokenByValue(_ context.Context, token string) (*models.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tokens[token]
	if !ok {
		return nil, storage.ErrNotFound
	}

	cp := *rec
	return &cp, nil
}

// DeleteRefreshToken удаляет запись без отметки об отзыве.
func (s *Storage) DeleteRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[token]; !ok {
		return storage.ErrNotFound
	}

	delete(s.tokens, token)

	return nil
}

// RevokeRefreshToken удаляет запись и помечает значение отозванным.
// Уже отозванное значение — no-op; неизвестное — ErrNotFound.
func (s *Storage) RevokeRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.revoked[token]; ok {
		return nil
	}

	rec, ok := s.tokens[token]
	if !ok {
		return storage.ErrNotFound
	}

	delete(s.tokens, token)
	s.revoked[token] = rec.ExpiresAt

	return nil
}

// IsRevoked сообщает, помечено ли значение отозванным.
func (s *Storage) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[token]
	return ok, nil
}

// DeleteExpired вычищает просроченные записи и отметки об отзыве,
// пережившие исходный срок жизни токена.
func (s *Storage) DeleteExpired(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for v, rec := range s.tokens {
		if rec.ExpiresAt.Before(now) {
			delete(s.tokens, v)
		}
	}

	for v, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, v)
		}
	}

	return nil
}

// Close — no-op для памяти.
func (s *Storage) Close() error { return nil }
