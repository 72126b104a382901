// File: database/repository/todo/crud.go
package todoRepo

import (
	"context"
	"strings"
	"time"

	"eventhorizon/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new todo with fresh timestamps and returns the stored document.
func (r *mongoTodoRepo) Create(ctx context.Context, in models.TodoCreate) (*models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	todo := models.Todo{
		Title:     in.Title,
		Urgency:   in.Urgency,
		Priority:  in.Priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.coll.InsertOne(ctx, todo)
	if err != nil {
		return nil, err
	}
	todo.ID = res.InsertedID.(primitive.ObjectID)
	return &todo, nil
}

// GetAll returns todos newest first, optionally filtered by urgency and
// priority. Empty filter values match everything.
func (r *mongoTodoRepo) GetAll(ctx context.Context, urgency, priority string) ([]models.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if urgency != "" {
		filter["urgency"] = urgency
	}
	if priority != "" {
		filter["priority"] = priority
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	todos := []models.Todo{}
	if err := cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// GetByID returns a todo by its hex ObjectID. Malformed ids read as not found.
func (r *mongoTodoRepo) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var todo models.Todo
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// UpdateByID applies the non-nil fields and returns the updated document.
func (r *mongoTodoRepo) UpdateByID(ctx context.Context, id string, in models.TodoUpdate) (*models.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Urgency != nil {
		set["urgency"] = *in.Urgency
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	var todo models.Todo
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// DeleteByID removes a todo. Returns mongo.ErrNoDocuments when nothing matched.
func (r *mongoTodoRepo) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByTitle removes every todo whose title equals the trimmed input and
// returns how many were deleted.
func (r *mongoTodoRepo) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"title": title})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
