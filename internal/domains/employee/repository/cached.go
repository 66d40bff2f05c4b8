package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"employee-service/internal/domains/employee/model"
	"employee-service/pkg/cache"
)

// cachedRepository is a read-through cache for FindByID in front of another
// repository. Writes and deletes invalidate the id's key. Cache errors are
// logged and never fail the call.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(inner RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{
		RepositoryInterface: inner,
		cache:               c,
		ttl:                 ttl,
	}
}

func (r *cachedRepository) FindByID(ctx context.Context, id int64) (*model.Employee, bool, error) {
	key := model.CacheKey(id)

	var cached model.Employee
	hit, err := r.cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("employee cache read failed")
	} else if hit {
		return &cached, true, nil
	}

	e, found, err := r.RepositoryInterface.FindByID(ctx, id)
	if err != nil || !found {
		return e, found, err
	}

	if err := r.cache.Set(ctx, key, e, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("employee cache write failed")
	}
	return e, true, nil
}

func (r *cachedRepository) Save(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	saved, err := r.RepositoryInterface.Save(ctx, e)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, saved.ID)
	return saved, nil
}

func (r *cachedRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.RepositoryInterface.DeleteByID(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *cachedRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, model.CacheKey(id)); err != nil {
		log.Warn().Err(err).Int64("employee_id", id).Msg("employee cache invalidation failed")
	}
}
