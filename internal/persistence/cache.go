package persistence

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/christopherjparrett/TheUniverse/internal/domain"
)

const (
	planetKeyPrefix = "planet:"
	planetListKey   = "planets:all"
	planetCacheTTL  = 60 * time.Second
)

// PlanetCache is a redis read-through cache for planet reads. A nil cache
// or an unreachable redis degrades to the database silently.
type PlanetCache struct {
	redis  *Redis
	logger *zap.Logger
}

// NewPlanetCache builds the cache on top of the shared redis wrapper.
func NewPlanetCache(r *Redis, logger *zap.Logger) *PlanetCache {
	return &PlanetCache{redis: r, logger: logger}
}

// GetPlanet returns the cached planet, or nil on a miss.
func (c *PlanetCache) GetPlanet(ctx context.Context, id int64) *domain.Planet {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil
	}
	raw, err := c.redis.Client.Get(ctx, planetKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("planet cache get failed", zap.Error(err))
		}
		return nil
	}
	var planet domain.Planet
	if err := json.Unmarshal(raw, &planet); err != nil {
		return nil
	}
	return &planet
}

// SetPlanet stores a planet under its id key.
func (c *PlanetCache) SetPlanet(ctx context.Context, planet *domain.Planet) {
	if c == nil || c.redis == nil || c.redis.Client == nil || planet == nil {
		return
	}
	raw, err := json.Marshal(planet)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, planetKey(planet.ID), raw, planetCacheTTL).Err(); err != nil {
		c.logger.Debug("planet cache set failed", zap.Error(err))
	}
}

// GetList returns the cached full listing, or nil on a miss.
func (c *PlanetCache) GetList(ctx context.Context) []domain.Planet {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return nil
	}
	raw, err := c.redis.Client.Get(ctx, planetListKey).Bytes()
	if err != nil {
		return nil
	}
	var planets []domain.Planet
	if err := json.Unmarshal(raw, &planets); err != nil {
		return nil
	}
	return planets
}

// SetList stores the full listing.
func (c *PlanetCache) SetList(ctx context.Context, planets []domain.Planet) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	raw, err := json.Marshal(planets)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, planetListKey, raw, planetCacheTTL).Err(); err != nil {
		c.logger.Debug("planet cache set failed", zap.Error(err))
	}
}

// Invalidate drops the entry for one planet and the listing.
func (c *PlanetCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, planetKey(id), planetListKey).Err(); err != nil {
		c.logger.Debug("planet cache invalidate failed", zap.Error(err))
	}
}

func planetKey(id int64) string {
	return planetKeyPrefix + strconv.FormatInt(id, 10)
}
