package service

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

var (
	// ErrCacheMiss is returned by AccountCache.Get when nothing is cached for the id.
	ErrCacheMiss = errors.New("account cache miss")

	// ErrCacheStale is returned by AccountCache.Set when the entry was invalidated
	// after the caller read its generation. The view must not be cached.
	ErrCacheStale = errors.New("account cache entry invalidated")
)

// AccountCache stores public account views keyed by account id.
//
// Every Delete bumps a per-account generation. Get reports the generation it
// observed and Set only writes when that generation is still current, so a
// reader that loaded the store before an invalidation cannot repopulate the
// cache with the old view.
type AccountCache interface {
	Get(ctx context.Context, id string) (*entity.PublicAccount, uint64, error)
	Set(ctx context.Context, account *entity.PublicAccount, generation uint64) error
	Delete(ctx context.Context, id string) error
}
