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

// CreateIngredient inserts a new ingredient.
func (r *mongoMealPlanRepo) CreateIngredient(ctx context.Context, in models.IngredientCreate) (*models.Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ing := models.Ingredient{
		Name:      in.Name,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		CreatedAt: time.Now().UTC(),
	}
	res, err := r.ingredients.InsertOne(ctx, ing)
	if err != nil {
		return nil, err
	}
	ing.ID = res.InsertedID.(primitive.ObjectID)
	return &ing, nil
}

// GetAllIngredients returns all ingredients, newest first.
func (r *mongoMealPlanRepo) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.ingredients.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Ingredient{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteIngredient removes an ingredient by id. Returns mongo.ErrNoDocuments
// when nothing matched.
func (r *mongoMealPlanRepo) DeleteIngredient(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.ingredients.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
