package memory

import (
	"time"

	"mind-nest-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// CrisisResourceCache keeps the per-language resource lists. The table only
// changes through seeding, so entries can live for minutes.
type CrisisResourceCache struct {
	cache *cache.Cache
}

func NewCrisisResourceCache(ttl time.Duration) *CrisisResourceCache {
	return &CrisisResourceCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *CrisisResourceCache) Get(language string) ([]*entity.CrisisResource, bool) {
	x, found := c.cache.Get(language)
	if !found {
		return nil, false
	}
	resources := x.([]*entity.CrisisResource)
	return append([]*entity.CrisisResource(nil), resources...), true
}

// Set stores a copy of the slice header so later reordering by callers does not leak in.
func (c *CrisisResourceCache) Set(language string, resources []*entity.CrisisResource) {
	stored := append([]*entity.CrisisResource(nil), resources...)
	c.cache.Set(language, stored, cache.DefaultExpiration)
}

func (c *CrisisResourceCache) Flush() {
	c.cache.Flush()
}
