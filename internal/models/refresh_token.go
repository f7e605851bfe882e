package models

import "time"

// RefreshToken — серверная запись refresh-токена.
//
// Token — непрозрачный случайный секрет (base64url, >=48 байт энтропии).
// Запись живёт до собственного ExpiresAt или до явного logout; сам токен
// при обмене на новый access-токен НЕ ротируется.
type RefreshToken struct {
	// Token — значение токена, каким его предъявляет клиент.
	Token string
	// UserID — стабильный идентификатор пользователя у провайдера идентичности.
	UserID string
	// Email пользователя на момент выпуска.
	Email string
	// AccountName — отображаемое имя; может отсутствовать.
	AccountName string
	// IssuedAt — момент выпуска (UTC).
	IssuedAt time.Time
	// ExpiresAt — момент истечения (UTC).
	ExpiresAt time.Time
}
