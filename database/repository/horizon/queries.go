// File: database/repository/horizon/queries.go
package horizonRepo

import (
	"context"
	"strings"
	"time"

	"eventhorizon/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchByTitle returns items whose title contains the query,
// case-insensitive, newest first. A blank query matches nothing.
func (r *mongoHorizonRepo) SearchByTitle(ctx context.Context, query string) ([]models.HorizonItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.HorizonItem{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"title": primitive.Regex{Pattern: query, Options: "i"}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
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

// EditByCriteria updates every item matching the existing_* fields with the
// new_* values and returns the updated documents, most recently updated
// first. The matching ids are collected before the update so the result set
// is exactly the documents that were edited.
func (r *mongoHorizonRepo) EditByCriteria(ctx context.Context, edit models.HorizonEdit) ([]models.HorizonItem, error) {
	criteria := edit.Criteria()
	if len(criteria) == 0 {
		return nil, ErrNoEditCriteria
	}
	updates := edit.Updates()
	if len(updates) == 0 {
		return nil, ErrNoEditUpdates
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	for field, value := range criteria {
		if field == "horizon_date" {
			filter[field] = value
			continue
		}
		filter[field] = strings.TrimSpace(value)
	}

	idsCursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	var idDocs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := idsCursor.All(ctx, &idDocs); err != nil {
		return nil, err
	}
	if len(idDocs) == 0 {
		return []models.HorizonItem{}, nil
	}
	ids := make([]primitive.ObjectID, len(idDocs))
	for i, d := range idDocs {
		ids[i] = d.ID
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for field, value := range updates {
		if field == "horizon_date" {
			set[field] = value
			continue
		}
		set[field] = strings.TrimSpace(value)
	}
	if _, err := r.coll.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, bson.M{"$set": set}); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
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
