package trails

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
)

// CollectionName is the collection holding one document per owner.
const CollectionName = "trails"

// MongoRepository stores each TrailLog as one document keyed by owner id
// with the hikes in an embedded array.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func (r *MongoRepository) AppendIfAbsent(ctx context.Context, ownerID string, hike models.HikeRecord) (bool, error) {
	filter := bson.D{
		{Key: "_id", Value: ownerID},
		{Key: "hikes.trailId", Value: bson.D{{Key: "$ne", Value: hike.TrailID}}},
	}
	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "hikes", Value: hike}}},
	}

	// A duplicate key error means the upsert tried to create a second
	// document with this _id: either a concurrent writer created the log
	// first, or the log already holds trailID. One more attempt tells the
	// two apart, because the document now exists.
	for attempt := 0; ; attempt++ {
		res, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err == nil {
			return res.ModifiedCount == 1 || res.UpsertedCount == 1, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return false, fmt.Errorf("db error: %w", err)
		}
		if attempt > 0 {
			return false, nil
		}
	}
}

func (r *MongoRepository) UpdateMatching(ctx context.Context, ownerID, trailID string, fields models.HikeFields, now time.Time) (bool, error) {
	filter := bson.D{
		{Key: "_id", Value: ownerID},
		{Key: "hikes.trailId", Value: trailID},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "hikes.$.started_at", Value: fields.StartedAt},
			{Key: "hikes.$.ended_at", Value: fields.EndedAt},
			{Key: "hikes.$.distance_m", Value: fields.DistanceM},
			{Key: "hikes.$.duration_s", Value: fields.DurationS},
			{Key: "hikes.$.points_json", Value: fields.PointsJSON},
			{Key: "hikes.$.points_raw", Value: fields.PointsRaw},
			{Key: "hikes.$.updated_at", Value: now},
		}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return res.MatchedCount == 1, nil
}

func (r *MongoRepository) Get(ctx context.Context, ownerID string) (*models.TrailLog, error) {
	log := &models.TrailLog{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: ownerID}}).Decode(log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return log, nil
}
