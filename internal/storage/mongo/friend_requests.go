package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/storage"
)

// SaveFriendRequest создаёт заявку.
// Конфликт с частичным уникальным индексом (уже есть pending-заявка для
// той же упорядоченной пары) транслируется в storage.ErrAlreadyExists.
func (m *Mongo) SaveFriendRequest(ctx context.Context, req *models.FriendRequest) error {
	const op = "storage/mongo/SaveFriendRequest"

	doc := *req
	doc.CreatedAt = doc.CreatedAt.UTC().Truncate(time.Millisecond)

	if _, err := m.requests.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PendingFriendRequest находит pending-заявку для упорядоченной пары
// (обратное направление — другая пара и другая заявка).
func (m *Mongo) PendingFriendRequest(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error) {
	const op = "storage/mongo/PendingFriendRequest"

	filter := bson.D{
		{Key: "sender_id", Value: senderID},
		{Key: "receiver_id", Value: receiverID},
		{Key: "status", Value: string(models.FriendRequestPending)},
	}

	var req models.FriendRequest
	if err := m.requests.FindOne(ctx, filter).Decode(&req); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &req, nil
}
