// redisstore — бэкенд TokenStorage поверх Redis для горизонтального
// масштабирования: записи и отметки об отзыве переживают рестарт процесса.
//
// Схема:
//   - rt:<token>  — hash {uid, email, acct, iat, exp} с TTL до ExpiresAt;
//   - rvk:<token> — маркер отзыва "1" с TTL до исходного ExpiresAt записи.
//
// TTL Redis сам выполняет роль janitor-а: DeleteExpired здесь no-op.
package redisstore

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/storage"
)

const (
	tokenPrefix  = "rt:"
	revokePrefix = "rvk:"
)

// Storage реализует storage.TokenStorage поверх Redis.
type Storage struct {
	rdb *redis.Client
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0)
// и проверяет соединение (fail-fast на старте).
func New(ctx context.Context, redisURL string) (*Storage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{rdb: rdb}, nil
}

// SaveRefreshToken сохраняет запись с TTL до её ExpiresAt.
func (s *Storage) SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	kv := map[string]string{
		"uid":   token.UserID,
		"email": token.Email,
		"acct":  token.AccountName,
		"iat":   strconv.FormatInt(token.IssuedAt.Unix(), 10),
		"exp":   strconv.FormatInt(token.ExpiresAt.Unix(), 10),
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, tokenPrefix+token.Token, kv)
	pipe.Expire(ctx, tokenPrefix+token.Token, ttl)

	_, err := pipe.Exec(ctx)
	return err
}

// RefreshTokenByValue находит запись по значению токена.
func (s *Storage) RefreshTokenByValue(ctx context.Context, token string) (*models.RefreshToken, error) {
	m, err := s.rdb.HGetAll(ctx, tokenPrefix+token).Result()
	if err != nil {
		return nil, err
	}

	if len(m) == 0 {
		return nil, storage.ErrNotFound
	}

	iat, err := strconv.ParseInt(m["iat"], 10, 64)
	if err != nil {
		return nil, err
	}

	exp, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, err
	}

	return &models.RefreshToken{
		Token:       token,
		UserID:      m["uid"],
		Email:       m["email"],
		AccountName: m["acct"],
		IssuedAt:    time.Unix(iat, 0).UTC(),
		ExpiresAt:   time.Unix(exp, 0).UTC(),
	}, nil
}

// DeleteRefreshToken удаляет запись без отметки об отзыве.
func (s *Storage) DeleteRefreshToken(ctx context.Context, token string) error {
	n, err := s.rdb.Del(ctx, tokenPrefix+token).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// RevokeRefreshToken переносит токен в множество отозванных.
// Маркер живёт столько, сколько жила бы сама запись.
func (s *Storage) RevokeRefreshToken(ctx context.Context, token string) error {
	revoked, err := s.IsRevoked(ctx, token)
	if err != nil {
		return err
	}
	if revoked {
		return nil
	}

	rec, err := s.RefreshTokenByValue(ctx, token)
	if err != nil {
		return err
	}

	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Minute
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, revokePrefix+token, "1", ttl)
	pipe.Del(ctx, tokenPrefix+token)

	_, err = pipe.Exec(ctx)
	return err
}

// IsRevoked проверяет наличие маркера отзыва.
func (s *Storage) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokePrefix+token).Result()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// DeleteExpired — no-op: срок жизни ключей обеспечивает TTL Redis.
func (s *Storage) DeleteExpired(context.Context, time.Time) error { return nil }

// Close закрывает клиент Redis.
func (s *Storage) Close() error { return s.rdb.Close() }
