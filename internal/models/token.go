package models

import "time"

// TokenPair — пара токенов, выдаваемая при входе.
//
//   - AccessToken — короткоживущий JWT для доступа к API;
//   - RefreshToken — случайный секрет для выпуска нового access-токена;
//   - AccessExpiresAt — момент истечения access-токена (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// Session — результат входа или обмена refresh-токена.
// RefreshToken пуст при обмене: refresh-токен не ротируется и остаётся прежним.
type Session struct {
	UID             string
	Email           string
	AccountName     string
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// Claims — подтверждённая идентичность из проверенного access-токена.
// Восстанавливается на каждый запрос, нигде не хранится.
type Claims struct {
	// UserID — значение sub из токена.
	UserID string
	// Email из токена.
	Email string
	// IssuedAt/ExpiresAt — временные метки токена (UTC).
	IssuedAt  time.Time
	ExpiresAt time.Time
}
