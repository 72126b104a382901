// FILE: database/repository/mealplan/indexes.go
package mealplanRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes for the three meal planning collections.
// week_start_date is unique so the upsert path can never produce two plans
// for the same week.
func (r *mongoMealPlanRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ingredientModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_ingredients_created_at"),
		},
	}
	if _, err := r.ingredients.Indexes().CreateMany(ctx, ingredientModels); err != nil {
		return fmt.Errorf("failed to create ingredient indexes: %w", err)
	}

	mealModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_meals_created_at"),
		},
	}
	if _, err := r.meals.Indexes().CreateMany(ctx, mealModels); err != nil {
		return fmt.Errorf("failed to create meal indexes: %w", err)
	}

	planModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "week_start_date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_weekly_plans_week_start"),
		},
	}
	if _, err := r.plans.Indexes().CreateMany(ctx, planModels); err != nil {
		return fmt.Errorf("failed to create weekly plan indexes: %w", err)
	}
	return nil
}
