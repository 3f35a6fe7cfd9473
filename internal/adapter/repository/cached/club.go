package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"club-service/internal/adapter/cache"
	domain "club-service/internal/domain/club"
	"club-service/internal/usecase/club"
)

// ClubRepository implements club.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation.
type ClubRepository struct {
	dbRepo club.Repository
	cache  cache.ClubCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewClubRepository creates a new instance of ClubRepository. A nil cache
// makes every call go straight to the database.
func NewClubRepository(dbRepo club.Repository, c cache.ClubCache, log *zap.Logger) *ClubRepository {
	return &ClubRepository{
		dbRepo: dbRepo,
		cache:  c,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *ClubRepository) Create(ctx context.Context, c *domain.Club) (int64, error) {
	return r.dbRepo.Create(ctx, c)
}

// GetByName delegates to the DB repository.
func (r *ClubRepository) GetByName(ctx context.Context, name string) (*domain.Club, error) {
	return r.dbRepo.GetByName(ctx, name)
}

// List delegates to the DB repository.
func (r *ClubRepository) List(ctx context.Context) ([]domain.Club, error) {
	return r.dbRepo.List(ctx)
}

// GetByID retrieves a club by ID using Cache-Aside pattern.
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*domain.Club, error) {
	if r.cache != nil {
		cachedClub, err := r.cache.Get(ctx, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cachedClub != nil {
			return cachedClub, nil
		}
	}

	// Cache miss or cache disabled - use single-flight to prevent stampede
	key := fmt.Sprintf("club:%d", id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		c, err := r.dbRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, c); err != nil {
				r.log.Warn("failed to cache club", zap.Int64("id", id), zap.Error(err))
			}
		}

		return c, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.Club), nil
}

// UpdateMembership applies the change in the DB and invalidates the cache
// entry for the club.
func (r *ClubRepository) UpdateMembership(ctx context.Context, id int64, apply func(m *domain.Membership) bool) error {
	changed := false
	err := r.dbRepo.UpdateMembership(ctx, id, func(m *domain.Membership) bool {
		changed = apply(m)
		return changed
	})
	if err != nil {
		return err
	}

	if changed && r.cache != nil {
		if err := r.cache.Delete(ctx, id); err != nil {
			r.log.Warn("failed to invalidate cache after membership update", zap.Int64("id", id), zap.Error(err))
		}
	}

	return nil
}
