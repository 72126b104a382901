// File: database/repository/bookmark/interface.go
package bookmarkRepo

import (
	"context"

	"eventhorizon/database"
	"eventhorizon/models"
	"eventhorizon/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookmarkRepository handles persistence for bookmarked calendar events.
type BookmarkRepository interface {
	Create(ctx context.Context, in models.BookmarkEventCreate) (*models.BookmarkedEvent, error)
	GetAll(ctx context.Context) ([]models.BookmarkedEvent, error)
	GetByDate(ctx context.Context, date string) ([]models.BookmarkedEvent, error)
	GetByID(ctx context.Context, id string) (*models.BookmarkedEvent, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByTitle(ctx context.Context, eventTitle string) (int64, error)
}

type mongoBookmarkRepo struct {
	coll *mongo.Collection
}

// NewMongoBookmarkRepo constructs a new MongoDB BookmarkRepository.
func NewMongoBookmarkRepo() BookmarkRepository {
	coll := database.DB().Collection("bookmarked_events")
	repo := &mongoBookmarkRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create bookmark indexes", zap.Error(err))
	}
	return repo
}
