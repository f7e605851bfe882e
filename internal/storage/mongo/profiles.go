package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/points-backend/internal/models"
	"github.com/pribylovaa/points-backend/internal/storage"
)

// prefixUpperBound — верхняя граница диапазона для префиксного поиска.
// Тот же приём, что и range-запросы Firestore: field >= q && field <= q+'\uf8ff'.
const prefixUpperBound = "\uf8ff"

// SaveProfile создаёт профиль пользователя.
func (m *Mongo) SaveProfile(ctx context.Context, profile *models.Profile) error {
	const op = "storage/mongo/SaveProfile"

	doc := *profile
	doc.CreatedAt = doc.CreatedAt.UTC().Truncate(time.Millisecond)

	if _, err := m.profiles.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ProfileByUID находит профиль по uid.
func (m *Mongo) ProfileByUID(ctx context.Context, uid string) (*models.Profile, error) {
	const op = "storage/mongo/ProfileByUID"

	var profile models.Profile
	err := m.profiles.FindOne(ctx, bson.D{{Key: "_id", Value: uid}}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &profile, nil
}

// SearchProfiles ищет профили по префиксу account_name или email.
// Поиск регистрозависимый, не более limit совпадений на поле,
// результаты обоих полей дедуплицируются по uid.
func (m *Mongo) SearchProfiles(ctx context.Context, prefix string, limit int64) ([]models.Profile, error) {
	const op = "storage/mongo/SearchProfiles"

	if prefix == "" {
		return []models.Profile{}, nil
	}

	seen := make(map[string]models.Profile)

	for _, field := range []string{"account_name", "email"} {
		filter := bson.D{{Key: field, Value: bson.D{
			{Key: "$gte", Value: prefix},
			{Key: "$lte", Value: prefix + prefixUpperBound},
		}}}

		cur, err := m.profiles.Find(ctx, filter, options.Find().SetLimit(limit))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var batch []models.Profile
		if err := cur.All(ctx, &batch); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for _, p := range batch {
			seen[p.UID] = p
		}
	}

	out := make([]models.Profile, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}

	return out, nil
}
