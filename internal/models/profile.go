package models

import "time"

// Profile — публичный профиль пользователя в документном хранилище.
type Profile struct {
	UID         string    `bson:"_id"`
	Email       string    `bson:"email"`
	AccountName string    `bson:"account_name"`
	CreatedAt   time.Time `bson:"created_at"`
}
