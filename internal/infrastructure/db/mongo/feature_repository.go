package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/foodbridge/coordination-api/internal/core/domain"
)

const collectionFeatures = "searchable_features"

type FeatureRepository struct {
	col *mongo.Collection
}

func NewFeatureRepository(db *mongo.Database) *FeatureRepository {
	return &FeatureRepository{col: db.Collection(collectionFeatures)}
}

func (r *FeatureRepository) ListAll(ctx context.Context) ([]domain.SearchableFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}
	defer cur.Close(ctx)

	var features []domain.SearchableFeature
	if err := cur.All(ctx, &features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return features, nil
}

// UpdateEmbedding stores a freshly computed vector on one feature.
func (r *FeatureRepository) UpdateEmbedding(ctx context.Context, id string, embedding []float64, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"embedding": embedding, "embedded_at": at.UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update embedding: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update embedding: feature %s not found", id)
	}
	return nil
}
