// Package dashboard serves the derived views of one loaded dataset.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/singleflight"

	"ordersdash/internal/cache"
	"ordersdash/internal/engine"
	"ordersdash/internal/models"
)

type Service struct {
	store *engine.Store
	cache cache.Cache
	ttl   time.Duration
	group singleflight.Group
}

// New wraps store. c may be nil, in which case every view is recomputed.
func New(store *engine.Store, c cache.Cache, ttl time.Duration) *Service {
	return &Service{store: store, cache: c, ttl: ttl}
}

func (s *Service) Count() int { return s.store.Len() }

func (s *Service) Summary(ctx context.Context) models.Summary {
	return memo(ctx, s, "summary", func() models.Summary { return *s.store.Aggregate() })
}

func (s *Service) Options(ctx context.Context) models.FilterOptions {
	return memo(ctx, s, "options", func() models.FilterOptions { return *s.store.Options() })
}

// Orders filters, projects and optionally sorts the table rows.
func (s *Service) Orders(f models.FilterState, sortKey string) []models.Row {
	rows := engine.Rows(s.store.Filter(f))
	engine.SortRows(rows, sortKey)
	return rows
}

func (s *Service) Order(id string) (*models.OrderDetail, error) {
	o, err := s.store.Lookup(id)
	if err != nil {
		return nil, err
	}
	return engine.Detail(o), nil
}

func (s *Service) key(view string) string {
	return fmt.Sprintf("dashboard:%016x:%s", s.store.Fingerprint, view)
}

// memo returns the cached view or computes and stores it. Concurrent misses
// on one key share a single computation. Cache failures only cost a
// recompute.
func memo[T any](ctx context.Context, s *Service, view string, compute func() T) T {
	if s.cache == nil {
		return compute()
	}
	key := s.key(view)

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		b, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warnf("cache get %s: %v", key, err)
		case ok:
			var out T
			if err := json.Unmarshal(b, &out); err == nil {
				return out, nil
			}
			log.Warnf("cache entry %s is corrupt, recomputing", key)
		}

		out := compute()
		b, err = json.Marshal(out)
		if err != nil {
			log.Errorf("encode %s: %v", key, err)
			return out, nil
		}
		if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
			log.Warnf("cache set %s: %v", key, err)
		}
		return out, nil
	})
	return v.(T)
}
