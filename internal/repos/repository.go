package repos

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/yungbote/lifestory-backend/internal/platform/apierr"
	"github.com/yungbote/lifestory-backend/internal/platform/logger"
)

// Repository is the collection-scoped persistence surface, one
// instance per resource type. Filters are plain equality documents;
// an empty filter matches everything.
type Repository[T any] interface {
	Insert(ctx context.Context, doc *T) (bson.ObjectID, error)
	FindMany(ctx context.Context, filter bson.M) ([]T, error)
	ReplaceByID(ctx context.Context, id bson.ObjectID, doc *T) (*T, error)
	DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error)
	UpdateMany(ctx context.Context, filter, update bson.M) (int64, error)
}

// ParseID converts a canonical hex string into a store identifier.
// Malformed input fails before any store access; handlers surface it
// as a 400 distinct from a lookup miss.
func ParseID(resource, s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, apierr.InvalidID(resource)
	}
	return id, nil
}

type mongoRepository[T any] struct {
	coll *mongo.Collection
	log  *logger.Logger
}

// NewMongoRepository wraps a collection. A nil collection (store never
// configured) makes every operation fail StoreUnavailable instead of
// panicking, so the server can come up without a database.
func NewMongoRepository[T any](coll *mongo.Collection, baseLog *logger.Logger) Repository[T] {
	repoLog := baseLog.With("repo", "MongoRepository")
	if coll != nil {
		repoLog = repoLog.With("collection", coll.Name())
	}
	return &mongoRepository[T]{coll: coll, log: repoLog}
}

func (r *mongoRepository[T]) Insert(ctx context.Context, doc *T) (bson.ObjectID, error) {
	if r.coll == nil {
		return bson.ObjectID{}, apierr.StoreUnavailable()
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, errors.New("store returned a non-ObjectID identifier")
	}
	return id, nil
}

func (r *mongoRepository[T]) FindMany(ctx context.Context, filter bson.M) ([]T, error) {
	if r.coll == nil {
		return nil, apierr.StoreUnavailable()
	}
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *mongoRepository[T]) ReplaceByID(ctx context.Context, id bson.ObjectID, doc *T) (*T, error) {
	if r.coll == nil {
		return nil, apierr.StoreUnavailable()
	}
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var out T
	err := r.coll.FindOneAndReplace(ctx, bson.M{"_id": id}, doc, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *mongoRepository[T]) DeleteByID(ctx context.Context, id bson.ObjectID) (bool, error) {
	if r.coll == nil {
		return false, apierr.StoreUnavailable()
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoRepository[T]) UpdateMany(ctx context.Context, filter, update bson.M) (int64, error) {
	if r.coll == nil {
		return 0, apierr.StoreUnavailable()
	}
	if filter == nil {
		filter = bson.M{}
	}
	res, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
