package pinot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type Resource string

const (
	ResourceTables    Resource = "tables"
	ResourceSchemas   Resource = "schemas"
	ResourceDatabases Resource = "databases"
	ResourceInstances Resource = "instances"
)

// maxSizeRequests limits the concurrent size lookups against the controller.
const maxSizeRequests = 4

type ControllerAPI interface {
	ListTables(ctx context.Context) ([]string, error)
	ListSchemas(ctx context.Context) ([]string, error)
	ListDatabases(ctx context.Context) ([]string, error)
	ListInstances(ctx context.Context) ([]string, error)
	TableSize(ctx context.Context, table string) (TableSize, error)
}

// Cache keeps controller listings for a limited time and collapses concurrent loads.
type Cache struct {
	logger zerolog.Logger
	api    ControllerAPI

	listings *ttlcache.Cache[Resource, []string]
	sizes    *ttlcache.Cache[string, TableSize]
	single   *singleflight.Group

	m         *sync.RWMutex
	fetchedAt map[Resource]time.Time
}

func NewCache(logger zerolog.Logger, api ControllerAPI, ttl time.Duration) *Cache {
	return &Cache{
		logger: logger,
		api:    api,
		listings: ttlcache.New(
			ttlcache.WithTTL[Resource, []string](ttl),
			ttlcache.WithDisableTouchOnHit[Resource, []string](),
		),
		sizes: ttlcache.New(
			ttlcache.WithTTL[string, TableSize](ttl),
			ttlcache.WithDisableTouchOnHit[string, TableSize](),
		),
		single:    &singleflight.Group{},
		m:         &sync.RWMutex{},
		fetchedAt: map[Resource]time.Time{},
	}
}

// List returns the names of a resource, loading them from the controller when not cached.
func (c *Cache) List(ctx context.Context, resource Resource) ([]string, error) {
	if item := c.listings.Get(resource); item != nil {
		return item.Value(), nil
	}

	v, err, _ := c.single.Do(string(resource), func() (any, error) {
		names, err := c.load(ctx, resource)
		if err != nil {
			return nil, err
		}

		c.listings.Set(resource, names, ttlcache.DefaultTTL)

		c.m.Lock()
		c.fetchedAt[resource] = time.Now()
		c.m.Unlock()

		return names, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]string), nil
}

// FetchedAt returns when a resource was last loaded from the controller.
func (c *Cache) FetchedAt(resource Resource) time.Time {
	c.m.RLock()
	defer c.m.RUnlock()
	return c.fetchedAt[resource]
}

// Invalidate drops a cached resource, the next List call goes to the controller.
func (c *Cache) Invalidate(resource Resource) {
	c.listings.Delete(resource)

	if resource == ResourceTables {
		c.sizes.DeleteAll()
	}
}

// TableSizes looks up the size of every table. Failed lookups are logged and left out of the result.
func (c *Cache) TableSizes(ctx context.Context, tables []string) map[string]TableSize {
	result := make(map[string]TableSize, len(tables))
	l := &sync.Mutex{}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxSizeRequests)

	for _, table := range tables {
		if item := c.sizes.Get(table); item != nil {
			l.Lock()
			result[table] = item.Value()
			l.Unlock()
			continue
		}

		group.Go(func() error {
			size, err := c.api.TableSize(ctx, table)
			if err != nil {
				c.logger.Error().Err(err).Str("table", table).Msg("error while fetching table size")
				return nil
			}

			c.sizes.Set(table, size, ttlcache.DefaultTTL)

			l.Lock()
			result[table] = size
			l.Unlock()

			return nil
		})
	}

	_ = group.Wait()

	return result
}

func (c *Cache) load(ctx context.Context, resource Resource) ([]string, error) {
	var (
		names []string
		err   error
	)

	switch resource {
	case ResourceTables:
		names, err = c.api.ListTables(ctx)
	case ResourceSchemas:
		names, err = c.api.ListSchemas(ctx)
	case ResourceDatabases:
		names, err = c.api.ListDatabases(ctx)
	case ResourceInstances:
		names, err = c.api.ListInstances(ctx)
	default:
		return nil, fmt.Errorf("unknown resource %q", resource)
	}

	if err != nil {
		return nil, fmt.Errorf("error while listing %s: %w", resource, err)
	}

	c.logger.Info().Str("resource", string(resource)).Int("count", len(names)).Msg("resource loaded")

	return names, nil
}
