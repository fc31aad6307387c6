package repomanager

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/trails"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/users"
)

// MongoOptions names the databases holding credentials and user data.
type MongoOptions struct {
	AuthDatabase string
	DataDatabase string
	// Transactions enables multi-document transactions in WithinTx. They
	// need a replica set; standalone servers must turn this off.
	Transactions bool
}

// MongoRepositoryManager keeps accounts in the auth database, profiles and
// trail logs in the data database.
type MongoRepositoryManager struct {
	client       *mongo.Client
	users        *users.MongoRepository
	profiles     *profiles.MongoRepository
	trails       *trails.MongoRepository
	transactions bool
}

func NewMongoRepositoryManager(client *mongo.Client, opts MongoOptions) *MongoRepositoryManager {
	authDB := client.Database(opts.AuthDatabase)
	dataDB := client.Database(opts.DataDatabase)
	return &MongoRepositoryManager{
		client:       client,
		users:        users.NewMongoRepository(authDB),
		profiles:     profiles.NewMongoRepository(dataDB),
		trails:       trails.NewMongoRepository(dataDB),
		transactions: opts.Transactions,
	}
}

// OpenMongo connects to uri and verifies the primary is reachable.
func OpenMongo(ctx context.Context, uri string, opts MongoOptions) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return NewMongoRepositoryManager(client, opts), nil
}

func (m *MongoRepositoryManager) Users() users.Repository       { return m.users }
func (m *MongoRepositoryManager) Profiles() profiles.Repository { return m.profiles }
func (m *MongoRepositoryManager) Trails() trails.Repository      { return m.trails }

// RunMigrations creates the indexes the repositories rely on.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.users.EnsureIndexes(ctx)
}

func (m *MongoRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	if !m.transactions {
		return fn(ctx, m)
	}
	return m.client.UseSession(ctx, func(sc mongo.SessionContext) error {
		_, err := sc.WithTransaction(sc, func(sc mongo.SessionContext) (any, error) {
			return nil, fn(sc, m)
		})
		return err
	})
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
