package mealplanRepo

import (
	"context"
	"time"

	"eventhorizon/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMeal inserts a new meal. The ingredient id list is stored as given;
// dangling references are tolerated.
func (r *mongoMealPlanRepo) CreateMeal(ctx context.Context, in models.MealCreate) (*models.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ingredients := in.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	meal := models.Meal{
		Name:        in.Name,
		Ingredients: ingredients,
		CreatedAt:   time.Now().UTC(),
	}
	res, err := r.meals.InsertOne(ctx, meal)
	if err != nil {
		return nil, err
	}
	meal.ID = res.InsertedID.(primitive.ObjectID)
	return &meal, nil
}

// GetAllMeals returns all meals, newest first.
func (r *mongoMealPlanRepo) GetAllMeals(ctx context.Context) ([]models.Meal, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.meals.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Meal{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteMeal removes a meal by id. Returns mongo.ErrNoDocuments when nothing
// matched.
func (r *mongoMealPlanRepo) DeleteMeal(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.meals.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
