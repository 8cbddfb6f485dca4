package exercises

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte      = 1024 * 1024
	namesCacheKey = "exercise-names"
)

type namesLister interface {
	ListNames(ctx context.Context) ([]ExerciseName, error)
}

// NamesCache keeps the exercise name list in memory for a short time.
type NamesCache struct {
	lister namesLister
	cache  *freecache.Cache
	ttl    time.Duration
}

func NewNamesCache(lister namesLister, ttl time.Duration) *NamesCache {
	return &NamesCache{
		lister: lister,
		cache:  freecache.NewCache(megabyte),
		ttl:    ttl,
	}
}

func (c *NamesCache) ListNames(ctx context.Context) ([]ExerciseName, error) {
	if cached, err := c.cache.Get([]byte(namesCacheKey)); err == nil {
		var names []ExerciseName
		if err := json.Unmarshal(cached, &names); err == nil {
			log.Tracef("exercise names found in cache: %d", len(names))
			return names, nil
		} else {
			log.Errorf("failed to unmarshal cached exercise names: %s", err)
		}
	}

	names, err := c.lister.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	namesBytes, err := json.Marshal(names)
	if err != nil {
		log.Errorf("failed to marshal exercise names for cache: %s", err)
		return names, nil
	}
	if err := c.cache.Set([]byte(namesCacheKey), namesBytes, int(c.ttl.Seconds())); err != nil {
		log.Errorf("failed to cache exercise names: %s", err)
	}

	return names, nil
}

// Invalidate drops the cached list, the next ListNames call hits the repo.
func (c *NamesCache) Invalidate() {
	c.cache.Del([]byte(namesCacheKey))
}
