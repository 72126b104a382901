// File: database/repository/bookmark/crud.go
package bookmarkRepo

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

// Create inserts a new bookmarked event with fresh timestamps.
func (r *mongoBookmarkRepo) Create(ctx context.Context, in models.BookmarkEventCreate) (*models.BookmarkedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	attendees := in.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	now := time.Now().UTC()
	event := models.BookmarkedEvent{
		Date:       in.Date,
		Time:       in.Time,
		EventTitle: in.EventTitle,
		Duration:   in.Duration,
		Attendees:  attendees,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return &event, nil
}

// GetAll returns all bookmarked events, newest first.
func (r *mongoBookmarkRepo) GetAll(ctx context.Context) ([]models.BookmarkedEvent, error) {
	return r.findSorted(ctx, bson.M{})
}

// GetByDate returns the bookmarked events saved for one date, newest first.
func (r *mongoBookmarkRepo) GetByDate(ctx context.Context, date string) ([]models.BookmarkedEvent, error) {
	return r.findSorted(ctx, bson.M{"date": date})
}

func (r *mongoBookmarkRepo) findSorted(ctx context.Context, filter bson.M) ([]models.BookmarkedEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.BookmarkedEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns a bookmarked event by its hex ObjectID. Malformed ids read
// as not found.
func (r *mongoBookmarkRepo) GetByID(ctx context.Context, id string) (*models.BookmarkedEvent, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.BookmarkedEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteByID removes a bookmarked event. Returns mongo.ErrNoDocuments when
// nothing matched.
func (r *mongoBookmarkRepo) DeleteByID(ctx context.Context, id string) error {
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

// DeleteByTitle removes every bookmarked event whose title equals the
// trimmed input and returns how many were deleted.
func (r *mongoBookmarkRepo) DeleteByTitle(ctx context.Context, eventTitle string) (int64, error) {
	eventTitle = strings.TrimSpace(eventTitle)
	if eventTitle == "" {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"event_title": eventTitle})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
