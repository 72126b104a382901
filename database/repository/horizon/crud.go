// File: database/repository/horizon/crud.go
package horizonRepo

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

// Create inserts a new horizon item. An empty type is stored as "none".
func (r *mongoHorizonRepo) Create(ctx context.Context, in models.HorizonCreate) (*models.HorizonItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	typ := in.Type
	if typ == "" {
		typ = "none"
	}
	now := time.Now().UTC()
	item := models.HorizonItem{
		Title:       in.Title,
		Details:     in.Details,
		Type:        typ,
		HorizonDate: in.HorizonDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return &item, nil
}

// GetAll returns horizon items newest first, optionally filtered by
// horizon_date. limit <= 0 falls back to DefaultListLimit; skip paginates.
func (r *mongoHorizonRepo) GetAll(ctx context.Context, horizonDate string, limit, skip int64) ([]models.HorizonItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if horizonDate != "" {
		filter["horizon_date"] = horizonDate
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.HorizonItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Count reports how many horizon items match the optional date filter.
func (r *mongoHorizonRepo) Count(ctx context.Context, horizonDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if horizonDate != "" {
		filter["horizon_date"] = horizonDate
	}
	return r.coll.CountDocuments(ctx, filter)
}

// GetByID returns a horizon item by its hex ObjectID. Malformed ids read as
// not found.
func (r *mongoHorizonRepo) GetByID(ctx context.Context, id string) (*models.HorizonItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.HorizonItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateByID applies the non-nil fields and returns the updated document.
func (r *mongoHorizonRepo) UpdateByID(ctx context.Context, id string, in models.HorizonUpdate) (*models.HorizonItem, error) {
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
	if in.Details != nil {
		set["details"] = *in.Details
	}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.HorizonDate != nil {
		set["horizon_date"] = *in.HorizonDate
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, mongo.ErrNoDocuments
	}

	var item models.HorizonItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteByID removes a horizon item. Returns mongo.ErrNoDocuments when
// nothing matched.
func (r *mongoHorizonRepo) DeleteByID(ctx context.Context, id string) error {
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

// DeleteByTitle removes every horizon item whose title equals the trimmed
// input and returns how many were deleted.
func (r *mongoHorizonRepo) DeleteByTitle(ctx context.Context, title string) (int64, error) {
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
