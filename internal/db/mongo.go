package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yungbote/lifestory-backend/internal/platform/envutil"
	"github.com/yungbote/lifestory-backend/internal/platform/logger"
)

// MongoService owns the process-wide client. It is initialized once at
// startup and read-only afterwards. A missing MONGO_URI leaves the
// service unconfigured rather than failing startup; the diagnostic
// route reports that state and CRUD routes fail per operation.
type MongoService struct {
	client *mongo.Client
	db     *mongo.Database
	log    *logger.Logger
}

func NewMongoService(log *logger.Logger) (*MongoService, error) {
	serviceLog := log.With("service", "MongoService")

	uri := envutil.String("MONGO_URI", "")
	name := envutil.String("MONGO_DB", "lifestory")
	if uri == "" {
		serviceLog.Warn("MONGO_URI not set, starting without a database connection")
		return &MongoService{log: serviceLog}, nil
	}

	serviceLog.Info("Connecting to MongoDB...", "database", name)
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		serviceLog.Error("Failed to connect to MongoDB", "error", err)
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &MongoService{
		client: client,
		db:     client.Database(name),
		log:    serviceLog,
	}, nil
}

// Configured reports whether a connection was established at startup.
func (s *MongoService) Configured() bool {
	return s.client != nil
}

// Collection returns the named collection, or nil when unconfigured.
func (s *MongoService) Collection(name string) *mongo.Collection {
	if s.db == nil {
		return nil
	}
	return s.db.Collection(name)
}

// Name returns the database name, empty when unconfigured.
func (s *MongoService) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func (s *MongoService) Ping(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("no database connection established")
	}
	return s.client.Ping(ctx, nil)
}

// CollectionNames lists the collections, best effort.
func (s *MongoService) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("no database connection established")
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoService) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
