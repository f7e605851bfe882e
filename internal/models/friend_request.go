package models

import "time"

// FriendRequestStatus — статус заявки в друзья.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

// FriendRequest — заявка в друзья.
//
// Инвариант: для упорядоченной пары (SenderID, ReceiverID) может существовать
// не более одной заявки в статусе pending; обратное направление — отдельная пара.
// Поля Sender*/Receiver* — best-effort денормализация профилей на момент создания:
// их отсутствие не считается ошибкой.
type FriendRequest struct {
	ID            string              `bson:"_id"`
	SenderID      string              `bson:"sender_id"`
	ReceiverID    string              `bson:"receiver_id"`
	Status        FriendRequestStatus `bson:"status"`
	SenderName    string              `bson:"sender_name,omitempty"`
	SenderEmail   string              `bson:"sender_email,omitempty"`
	ReceiverName  string              `bson:"receiver_name,omitempty"`
	ReceiverEmail string              `bson:"receiver_email,omitempty"`
	CreatedAt     time.Time           `bson:"created_at"`
}
