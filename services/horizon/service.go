// Package horizon layers a read-through cache over the horizon repository.
// Horizon reads were the slowest queries in the system; list responses are
// memoized by (date, limit, skip) and every write flushes the namespace so
// stale lists never outlive a mutation.
package horizon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	horizonRepo "eventhorizon/database/repository/horizon"
	"eventhorizon/models"
	"eventhorizon/utils"

	"go.uber.org/zap"
)

// Service is the horizon domain surface consumed by handlers.
type Service interface {
	Create(ctx context.Context, in models.HorizonCreate) (*models.HorizonItem, error)
	GetAll(ctx context.Context, horizonDate string, limit, skip int64, skipCache bool) ([]models.HorizonItem, error)
	GetByID(ctx context.Context, id string) (*models.HorizonItem, error)
	UpdateByID(ctx context.Context, id string, in models.HorizonUpdate) (*models.HorizonItem, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByTitle(ctx context.Context, title string) (int64, error)
	SearchByTitle(ctx context.Context, query string) ([]models.HorizonItem, error)
	EditByCriteria(ctx context.Context, edit models.HorizonEdit) ([]models.HorizonItem, error)
}

// DefaultHorizonService implements Service over the Mongo repository with a
// best-effort cache: a cache failure degrades to a repository read, never to
// a request failure.
type DefaultHorizonService struct {
	Repo  horizonRepo.HorizonRepository
	Cache utils.Cache
	TTL   time.Duration
}

// Create stores the item and invalidates cached lists.
func (s *DefaultHorizonService) Create(ctx context.Context, in models.HorizonCreate) (*models.HorizonItem, error) {
	item, err := s.Repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.flush(ctx)
	return item, nil
}

// GetAll returns horizon items, reading through the cache unless skipCache
// asks for a fresh read. Fresh reads still repopulate the cache.
func (s *DefaultHorizonService) GetAll(ctx context.Context, horizonDate string, limit, skip int64, skipCache bool) ([]models.HorizonItem, error) {
	key := listKey(horizonDate, limit, skip)
	if s.Cache != nil && !skipCache {
		if raw, ok := s.Cache.Get(ctx, key); ok {
			var cached []models.HorizonItem
			if err := json.Unmarshal(raw, &cached); err == nil {
				utils.GetLogger().Debug("horizon cache hit", zap.String("key", key))
				return cached, nil
			}
		}
	}

	items, err := s.Repo.GetAll(ctx, horizonDate, limit, skip)
	if err != nil {
		return nil, err
	}
	if s.Cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			s.Cache.Set(ctx, key, raw, s.TTL)
		}
	}
	return items, nil
}

func (s *DefaultHorizonService) GetByID(ctx context.Context, id string) (*models.HorizonItem, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultHorizonService) UpdateByID(ctx context.Context, id string, in models.HorizonUpdate) (*models.HorizonItem, error) {
	item, err := s.Repo.UpdateByID(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.flush(ctx)
	return item, nil
}

func (s *DefaultHorizonService) DeleteByID(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.flush(ctx)
	return nil
}

func (s *DefaultHorizonService) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	count, err := s.Repo.DeleteByTitle(ctx, title)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.flush(ctx)
	}
	return count, nil
}

func (s *DefaultHorizonService) SearchByTitle(ctx context.Context, query string) ([]models.HorizonItem, error) {
	return s.Repo.SearchByTitle(ctx, query)
}

func (s *DefaultHorizonService) EditByCriteria(ctx context.Context, edit models.HorizonEdit) ([]models.HorizonItem, error) {
	items, err := s.Repo.EditByCriteria(ctx, edit)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		s.flush(ctx)
	}
	return items, nil
}

func (s *DefaultHorizonService) flush(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.Flush(ctx, utils.HorizonCachePrefix)
	}
}

func listKey(horizonDate string, limit, skip int64) string {
	if horizonDate == "" {
		horizonDate = "all"
	}
	return fmt.Sprintf("%s%s:%d:%d", utils.HorizonCachePrefix, horizonDate, limit, skip)
}
