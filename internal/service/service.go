// service содержит бизнес-логику сервиса: делегирование входа/регистрации
// провайдеру идентичности, выпуск/проверку/обновление/отзыв собственных
// токенов и инварианты заявок в друзья.
//
// Основные аспекты:
//   - Service не хранит состояние запроса; экземпляр безопасен для
//     конкурентного использования из разных горутин — последовательности
//     check-then-act над хранилищем токенов сериализуются внутренним мьютексом;
//   - Ошибки возвращаются сигнальными значениями и далее маппятся
//     транспортом на HTTP-статусы (см. комментарии к переменным ниже).
package service

import (
	"errors"
	"sync"

	"github.com/pribylovaa/points-backend/internal/config"
	"github.com/pribylovaa/points-backend/internal/identity"
	"github.com/pribylovaa/points-backend/internal/storage"
)

var (
	// ErrNotConfigured — операция требует секрета/ключа, которого нет.
	// Транспорт: 500.
	ErrNotConfigured = errors.New("service is not configured")

	// ErrUpstream — провайдер идентичности недоступен. Транспорт: 502.
	ErrUpstream = errors.New("identity provider unreachable")

	// ErrInvalidCredentials — провайдер отверг email/пароль. Транспорт: 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrRegistrationRejected — провайдер отверг регистрацию. Транспорт: 400.
	ErrRegistrationRejected = errors.New("registration rejected")

	// ErrInvalidAccountName — имя аккаунта вне диапазона 3–30 символов
	// после обрезки пробелов. Транспорт: 400.
	ErrInvalidAccountName = errors.New("invalid account name")

	// ErrMissingRefreshToken — в запросе нет refresh-токена. Транспорт: 400.
	ErrMissingRefreshToken = errors.New("refresh token is required")

	// ErrMissingAuthHeader — заголовок Authorization отсутствует или пуст.
	// Транспорт: 401.
	ErrMissingAuthHeader = errors.New("missing credential")

	// ErrMalformedAuthHeader — заголовок Authorization не разбирается
	// (больше двух частей или неизвестная схема). Транспорт: 401.
	ErrMalformedAuthHeader = errors.New("malformed credential")

	// ErrInvalidToken — токен некорректен по формату/подписи или
	// неизвестен хранилищу. Транспорт: 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — refresh-токен отозван и недействителен независимо
	// от срока. Транспорт: 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrEmptyParticipant — senderId/receiverId пусты после обрезки.
	// Транспорт: 400.
	ErrEmptyParticipant = errors.New("sender and receiver are required")

	// ErrSelfRequest — заявка самому себе. Транспорт: 400.
	ErrSelfRequest = errors.New("cannot send friend request to yourself")

	// ErrSenderMismatch — senderId не совпадает с subject токена:
	// действовать можно только от своего имени. Транспорт: 403.
	ErrSenderMismatch = errors.New("sender does not match authenticated user")

	// ErrDuplicateRequest — для пары уже есть pending-заявка. Транспорт: 409.
	ErrDuplicateRequest = errors.New("friend request already pending")

	// ErrNotFound — профиль не найден. Транспорт: 404.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable — документное хранилище не сконфигурировано.
	// Транспорт: 501 (отличаем от сбоя сконфигурированного хранилища — 500).
	ErrStoreUnavailable = errors.New("profile store is not configured")
)

// Service описывает бизнес-логику сервиса.
type Service struct {
	tokens storage.TokenStorage
	social storage.SocialStorage // может быть nil, если документное хранилище не сконфигурировано
	idp    identity.Provider
	cfg    config.AuthConfig

	// lifecycleMu сериализует последовательности check-then-act над
	// хранилищем токенов (redeem/revoke), чтобы инварианты отзыва
	// сохранялись и в многопоточном рантайме.
	lifecycleMu sync.Mutex
}

// New создаёт новый экземпляр Service.
// social допускает nil: зависящие от него операции вернут ErrStoreUnavailable.
func New(tokens storage.TokenStorage, social storage.SocialStorage, idp identity.Provider, cfg config.AuthConfig) *Service {
	return &Service{
		tokens: tokens,
		social: social,
		idp:    idp,
		cfg:    cfg,
	}
}
