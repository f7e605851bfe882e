// mongo — документное хранилище профилей и заявок в друзья.
//
// Коллекции:
//   - profiles        — профиль на документ, _id == uid провайдера идентичности;
//   - friend_requests — заявки; частичный уникальный индекс по
//     (sender_id, receiver_id) при status="pending" обеспечивает инвариант
//     «не более одной pending-заявки на упорядоченную пару».
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	profilesCollection = "profiles"
	requestsCollection = "friend_requests"
	defaultDBName      = "points"
)

// Mongo реализует storage.SocialStorage.
type Mongo struct {
	client   *mongodriver.Client
	db       *mongodriver.Database
	profiles *mongodriver.Collection
	requests *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт индексы.
func New(ctx context.Context, mongoURL string) (*Mongo, error) {
	if mongoURL == "" {
		return nil, fmt.Errorf("mongo: empty url")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(mongoURL))

	m := &Mongo{
		client:   cli,
		db:       db,
		profiles: db.Collection(profilesCollection),
		requests: db.Collection(requestsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close разрывает соединение с MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы:
//   - префиксный поиск: account_name и email;
//   - уникальность pending-заявки: (sender_id, receiver_id) при status="pending".
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	profileModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "account_name", Value: 1}},
			Options: options.Index().SetName("account_name_asc"),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_asc"),
		},
	}

	if _, err := m.profiles.Indexes().CreateMany(ctx, profileModels); err != nil {
		return fmt.Errorf("mongo ensure profile indexes: %w", err)
	}

	requestModels := []mongodriver.IndexModel{
		{
			Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}},
			Options: options.Index().
				SetName("pending_pair_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "status", Value: "pending"}}),
		},
	}

	if _, err := m.requests.Indexes().CreateMany(ctx, requestModels); err != nil {
		return fmt.Errorf("mongo ensure request indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы из пути mongodb-URI;
// при отсутствии — значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}

	return defaultDBName
}
