package mongo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clientdesk/portal/internal/core/domain"
	"github.com/clientdesk/portal/internal/core/ports"
)

const activityCollection = "activities"

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SubjectID string             `bson:"subject_id"`
	Username  string             `bson:"username"`
	Action    string             `bson:"action"`
	Details   string             `bson:"details,omitempty"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (r *ActivityRepository) Append(ctx context.Context, entry *domain.Activity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := activityDoc{
		SubjectID: entry.SubjectID,
		Username:  entry.Username,
		Action:    entry.Action,
		Details:   entry.Details,
		Timestamp: entry.Timestamp,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *ActivityRepository) Find(ctx context.Context, filter ports.ActivityFilter) ([]domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.SubjectID != "" {
		query["subject_id"] = filter.SubjectID
	} else if filter.SubjectMatch != "" {
		query["subject_id"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.SubjectMatch), Options: "i"}
	}

	ts := bson.M{}
	if filter.Start != nil {
		ts["$gte"] = *filter.Start
	}
	if filter.End != nil {
		ts["$lte"] = *filter.End
	}
	if len(ts) > 0 {
		query["timestamp"] = ts
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cur.Close(ctx)

	var docs []activityDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}

	entries := make([]domain.Activity, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, domain.Activity{
			ID:        d.ID.Hex(),
			SubjectID: d.SubjectID,
			Username:  d.Username,
			Action:    d.Action,
			Details:   d.Details,
			Timestamp: d.Timestamp,
		})
	}
	return entries, nil
}

// EnsureIndexes creates the indexes backing filtered, newest-first reads.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "subject_id", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
