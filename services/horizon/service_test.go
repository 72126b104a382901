package horizon

import (
	"context"
	"testing"
	"time"

	"eventhorizon/models"
	"eventhorizon/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeRepo counts repository reads so tests can tell hits from misses.
type fakeRepo struct {
	items    []models.HorizonItem
	getCalls int
}

func (f *fakeRepo) Create(ctx context.Context, in models.HorizonCreate) (*models.HorizonItem, error) {
	item := models.HorizonItem{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Details:     in.Details,
		Type:        in.Type,
		HorizonDate: in.HorizonDate,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	f.items = append(f.items, item)
	return &item, nil
}

func (f *fakeRepo) GetAll(ctx context.Context, horizonDate string, limit, skip int64) ([]models.HorizonItem, error) {
	f.getCalls++
	out := []models.HorizonItem{}
	for _, it := range f.items {
		if horizonDate == "" || (it.HorizonDate != nil && *it.HorizonDate == horizonDate) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRepo) Count(ctx context.Context, horizonDate string) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.HorizonItem, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			return &f.items[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) UpdateByID(ctx context.Context, id string, in models.HorizonUpdate) (*models.HorizonItem, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			if in.Title != nil {
				f.items[i].Title = *in.Title
			}
			return &f.items[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRepo) DeleteByID(ctx context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID.Hex() == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeRepo) DeleteByTitle(ctx context.Context, title string) (int64, error) {
	var kept []models.HorizonItem
	var deleted int64
	for _, it := range f.items {
		if it.Title == title {
			deleted++
			continue
		}
		kept = append(kept, it)
	}
	f.items = kept
	return deleted, nil
}

func (f *fakeRepo) SearchByTitle(ctx context.Context, query string) ([]models.HorizonItem, error) {
	return f.items, nil
}

func (f *fakeRepo) EditByCriteria(ctx context.Context, edit models.HorizonEdit) ([]models.HorizonItem, error) {
	return nil, nil
}

func newService(repo *fakeRepo) *DefaultHorizonService {
	return &DefaultHorizonService{
		Repo:  repo,
		Cache: utils.NewMemoryCache(16),
		TTL:   time.Minute,
	}
}

func TestGetAllReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newService(repo)

	if _, err := svc.Create(ctx, models.HorizonCreate{Title: "a", Details: "d", Type: "none"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.GetAll(ctx, "", 100, 0, false); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if _, err := svc.GetAll(ctx, "", 100, 0, false); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if repo.getCalls != 1 {
		t.Errorf("repository read %d times, want 1 (second read from cache)", repo.getCalls)
	}
}

func TestGetAllSkipCacheBypassesButRepopulates(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newService(repo)

	if _, err := svc.GetAll(ctx, "", 100, 0, false); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if _, err := svc.GetAll(ctx, "", 100, 0, true); err != nil {
		t.Fatalf("GetAll (skip): %v", err)
	}
	if repo.getCalls != 2 {
		t.Errorf("repository read %d times, want 2 (skip_cache forces a fresh read)", repo.getCalls)
	}

	if _, err := svc.GetAll(ctx, "", 100, 0, false); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if repo.getCalls != 2 {
		t.Errorf("repository read %d times, want 2 (fresh read repopulated the cache)", repo.getCalls)
	}
}

func TestWritesInvalidateCachedLists(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newService(repo)

	created, err := svc.Create(ctx, models.HorizonCreate{Title: "a", Details: "d", Type: "none"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.GetAll(ctx, "", 100, 0, false); err != nil {
		t.Fatalf("GetAll: %v", err)
	}

	if err := svc.DeleteByID(ctx, created.ID.Hex()); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}

	items, err := svc.GetAll(ctx, "", 100, 0, false)
	if err != nil {
		t.Fatalf("GetAll after delete: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items after delete, want 0 (stale cache served)", len(items))
	}
}

func TestDistinctQueriesUseDistinctKeys(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{}
	svc := newService(repo)

	date := "2025-07-01"
	if _, err := svc.Create(ctx, models.HorizonCreate{Title: "a", Details: "d", Type: "none", HorizonDate: &date}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := svc.GetAll(ctx, "", 100, 0, false)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	dated, err := svc.GetAll(ctx, date, 100, 0, false)
	if err != nil {
		t.Fatalf("GetAll (dated): %v", err)
	}
	if len(all) != 1 || len(dated) != 1 {
		t.Errorf("got %d/%d items, want 1/1", len(all), len(dated))
	}
	if repo.getCalls != 2 {
		t.Errorf("repository read %d times, want 2 (different keys must not collide)", repo.getCalls)
	}
}
