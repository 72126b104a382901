// File: database/repository/todo/interface.go
package todoRepo

import (
	"context"

	"eventhorizon/database"
	"eventhorizon/models"
	"eventhorizon/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// TodoRepository handles persistence for todo items.
type TodoRepository interface {
	Create(ctx context.Context, in models.TodoCreate) (*models.Todo, error)
	GetAll(ctx context.Context, urgency, priority string) ([]models.Todo, error)
	GetByID(ctx context.Context, id string) (*models.Todo, error)
	UpdateByID(ctx context.Context, id string, in models.TodoUpdate) (*models.Todo, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByTitle(ctx context.Context, title string) (int64, error)
}

type mongoTodoRepo struct {
	coll *mongo.Collection
}

// NewMongoTodoRepo constructs a new MongoDB TodoRepository.
func NewMongoTodoRepo() TodoRepository {
	coll := database.DB().Collection("todos")
	repo := &mongoTodoRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to create todo indexes", zap.Error(err))
	}
	return repo
}
