package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

const collectionSlots = "availability_slots"

type AvailabilityRepository struct {
	col *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{col: db.Collection(collectionSlots)}
}

// ListRange returns slots overlapping [r.Start, r.End), ordered by start time.
func (r *AvailabilityRepository) ListRange(ctx context.Context, dr domain.DateRange) ([]domain.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"starts_at": bson.M{"$lt": dr.End},
		"ends_at":   bson.M{"$gt": dr.Start},
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer cur.Close(ctx)

	var slots []domain.AvailabilitySlot
	if err := cur.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("decode slots: %w", err)
	}
	return slots, nil
}

func (r *AvailabilityRepository) Insert(ctx context.Context, slot *domain.AvailabilitySlot) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the slots collection.
func (r *AvailabilityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "starts_at", Value: 1}}},
		{Keys: bson.D{{Key: "starts_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
