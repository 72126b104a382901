// FILE: database/repository/todo/indexes.go
package todoRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes backing the list and filter queries.
func (r *mongoTodoRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_todos_created_at"),
		},
		{
			Keys:    bson.D{{Key: "urgency", Value: 1}},
			Options: options.Index().SetName("idx_todos_urgency"),
		},
		{
			Keys:    bson.D{{Key: "priority", Value: 1}},
			Options: options.Index().SetName("idx_todos_priority"),
		},
		// Compound index serving combined urgency+priority filters sorted by recency.
		{
			Keys:    bson.D{{Key: "urgency", Value: 1}, {Key: "priority", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_todos_urgency_priority_created"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create todo indexes: %w", err)
	}
	return nil
}
