// File: database/repository/horizon/interface.go
package horizonRepo

import (
	"context"

	"eventhorizon/database"
	"eventhorizon/models"
	"eventhorizon/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultListLimit caps unpaginated horizon reads; the collection grows
// without bound and full scans are what made the original queries slow.
const DefaultListLimit = 100

// HorizonRepository handles persistence for horizon items.
type HorizonRepository interface {
	Create(ctx context.Context, in models.HorizonCreate) (*models.HorizonItem, error)
	GetAll(ctx context.Context, horizonDate string, limit, skip int64) ([]models.HorizonItem, error)
	Count(ctx context.Context, horizonDate string) (int64, error)
	GetByID(ctx context.Context, id string) (*models.HorizonItem, error)
	UpdateByID(ctx context.Context, id string, in models.HorizonUpdate) (*models.HorizonItem, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByTitle(ctx context.Context, title string) (int64, error)
	SearchByTitle(ctx context.Context, query string) ([]models.HorizonItem, error)
	EditByCriteria(ctx context.Context, edit models.HorizonEdit) ([]models.HorizonItem, error)
}

type mongoHorizonRepo struct {
	coll *mongo.Collection
}

// NewMongoHorizonRepo constructs a new MongoDB HorizonRepository.
func NewMongoHorizonRepo() HorizonRepository {
	coll := database.DB().Collection("horizon")
	repo := &mongoHorizonRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create horizon indexes", zap.Error(err))
	}
	return repo
}
