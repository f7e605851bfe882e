// identity — адаптер внешнего провайдера идентичности.
//
// Сервис не хранит пароли и не реализует аутентификацию сам: вход и
// регистрация делегируются REST API провайдера (Google Identity Toolkit).
// Пакет объявляет контракт Provider и типизированные ошибки; бизнес-логика
// видит только их, без деталей HTTP.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured — API-ключ провайдера не задан; операция невозможна.
	ErrNotConfigured = errors.New("identity provider is not configured")
	// ErrInvalidCredentials — провайдер отверг пару email/пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRejected — провайдер отверг регистрацию (занятый email, слабый пароль и т.п.).
	ErrRejected = errors.New("registration rejected")
	// ErrUnavailable — провайдер недоступен (сеть/таймаут/5xx).
	ErrUnavailable = errors.New("identity provider unavailable")
)

// Account — подтверждённая провайдером учётная запись.
type Account struct {
	// UID — стабильный идентификатор пользователя у провайдера.
	UID string
	// Email учётной записи.
	Email string
	// AccountName — отображаемое имя; может отсутствовать.
	AccountName string
	// ProviderToken — собственный токен провайдера из ответа;
	// нужен для компенсирующего удаления учётной записи.
	ProviderToken string
}

// Provider выполняет операции против внешнего провайдера идентичности.
type Provider interface {
	// SignIn проверяет email/пароль и возвращает учётную запись.
	SignIn(ctx context.Context, email, password string) (*Account, error)
	// SignUp создаёт новую учётную запись.
	SignUp(ctx context.Context, email, password string) (*Account, error)
	// DeleteAccount удаляет учётную запись по её ProviderToken.
	// Используется как best-effort откат после неудачной регистрации.
	DeleteAccount(ctx context.Context, providerToken string) error
}
