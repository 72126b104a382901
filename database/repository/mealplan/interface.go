// File: database/repository/mealplan/interface.go
package mealplanRepo

import (
	"context"

	"eventhorizon/database"
	"eventhorizon/models"
	"eventhorizon/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MealPlanRepository handles persistence for ingredients, meals and weekly
// meal plans. The three collections travel together: meals reference
// ingredient ids and plans reference meal ids, with no cross-collection
// constraints enforced at the database level.
type MealPlanRepository interface {
	CreateIngredient(ctx context.Context, in models.IngredientCreate) (*models.Ingredient, error)
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) error

	CreateMeal(ctx context.Context, in models.MealCreate) (*models.Meal, error)
	GetAllMeals(ctx context.Context) ([]models.Meal, error)
	DeleteMeal(ctx context.Context, id string) error

	GetWeeklyPlan(ctx context.Context, weekStartDate string) (*models.WeeklyMealPlan, error)
	UpsertWeeklyPlan(ctx context.Context, in models.WeeklyMealPlanUpsert) (*models.WeeklyMealPlan, error)
	UpdateMealSlot(ctx context.Context, in models.UpdateMealSlotRequest) (*models.WeeklyMealPlan, error)
	DeleteWeeklyPlan(ctx context.Context, weekStartDate string) error
}

type mongoMealPlanRepo struct {
	ingredients *mongo.Collection
	meals       *mongo.Collection
	plans       *mongo.Collection
}

// NewMongoMealPlanRepo constructs a new MongoDB MealPlanRepository.
func NewMongoMealPlanRepo() MealPlanRepository {
	db := database.DB()
	repo := &mongoMealPlanRepo{
		ingredients: db.Collection("ingredients"),
		meals:       db.Collection("meals"),
		plans:       db.Collection("weekly_meal_plans"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create meal plan indexes", zap.Error(err))
	}
	return repo
}
