// FILE: database/repository/horizon/indexes.go
package horizonRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes backing the list, filter and search
// queries on the horizon collection.
func (r *mongoHorizonRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_horizon_created_at"),
		},
		{
			Keys:    bson.D{{Key: "horizon_date", Value: 1}},
			Options: options.Index().SetName("idx_horizon_date"),
		},
		// Compound index serving the date filter with the recency sort.
		{
			Keys:    bson.D{{Key: "horizon_date", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_horizon_date_created"),
		},
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("idx_horizon_title"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("idx_horizon_type"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create horizon indexes: %w", err)
	}
	return nil
}
