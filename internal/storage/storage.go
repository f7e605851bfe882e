// storage задаёт контракты хранилищ сервиса и их сигнальные ошибки.
//
// TokenStorage — refresh-токены и множество отозванных значений
// (в памяти по умолчанию, Redis как альтернативный бэкенд).
// SocialStorage — профили и заявки в друзья в документной БД.
// Бизнес-логика работает только с этими интерфейсами.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/points-backend/internal/models"
)

var (
	// ErrNotFound — запись не найдена (токен/профиль/заявка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (pending-заявка для пары).
	ErrAlreadyExists = errors.New("already exists")
	// ErrRevoked — refresh-токен находится в множестве отозванных.
	ErrRevoked = errors.New("revoked")
)

// TokenStorage выполняет операции над refresh-токенами.
//
// Отзыв постоянен: значение токена остаётся в множестве отозванных и после
// удаления самой записи, пока его не вычистит DeleteExpired по исходному
// сроку жизни. Реализации обязаны быть потокобезопасными: каждая операция
// read-modify-write выполняется атомарно.
type TokenStorage interface {
	// SaveRefreshToken сохраняет новую запись.
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error
	// RefreshTokenByValue находит запись по значению токена.
	RefreshTokenByValue(ctx context.Context, token string) (*models.RefreshToken, error)
	// DeleteRefreshToken удаляет запись, НЕ помечая токен отозванным.
	DeleteRefreshToken(ctx context.Context, token string) error
	// RevokeRefreshToken удаляет запись (если есть) и добавляет значение
	// в множество отозванных. Повторный отзыв — no-op.
	RevokeRefreshToken(ctx context.Context, token string) error
	// IsRevoked сообщает, отозвано ли значение токена.
	IsRevoked(ctx context.Context, token string) (bool, error)
	// DeleteExpired удаляет просроченные записи и отметки об отзыве,
	// чей исходный срок жизни прошёл.
	DeleteExpired(ctx context.Context, now time.Time) error
	// Close освобождает ресурсы бэкенда.
	Close() error
}

// ProfileStorage выполняет операции над профилями.
type ProfileStorage interface {
	// SaveProfile создаёт профиль пользователя.
	SaveProfile(ctx context.Context, profile *models.Profile) error
	// ProfileByUID находит профиль по uid.
	ProfileByUID(ctx context.Context, uid string) (*models.Profile, error)
	// SearchProfiles ищет профили по префиксу account_name или email
	// (регистрозависимо), не более limit совпадений на поле.
	SearchProfiles(ctx context.Context, prefix string, limit int64) ([]models.Profile, error)
}

// FriendRequestStorage выполняет операции над заявками в друзья.
type FriendRequestStorage interface {
	// SaveFriendRequest создаёт заявку. Возвращает ErrAlreadyExists,
	// если для пары (sender, receiver) уже есть pending-заявка.
	SaveFriendRequest(ctx context.Context, req *models.FriendRequest) error
	// PendingFriendRequest находит pending-заявку для упорядоченной пары.
	PendingFriendRequest(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error)
}

// SocialStorage объединяет документное хранилище сервиса.
type SocialStorage interface {
	ProfileStorage
	FriendRequestStorage
	Close(ctx context.Context) error
}
