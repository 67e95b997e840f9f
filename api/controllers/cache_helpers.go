package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Forkful/api/aggregation"
	"Forkful/api/cache"
	"Forkful/api/logging"
)

const (
	topRestaurantsPrefix = "top_restaurants:"
	topUsersPrefix       = "top_users:"
)

// rankingCacheKey is per viewer because the cached cards carry viewer flags.
func rankingCacheKey(prefix string, viewer aggregation.Viewer) string {
	if id, ok := viewer.ID(); ok {
		return fmt.Sprintf("%s%d", prefix, id)
	}
	return prefix + "anon"
}

// loadCached decodes a cached payload into dst. Any cache error is a miss.
func loadCached(ctx context.Context, key string, dst interface{}) bool {
	raw, err := cache.Get(ctx, key)
	if err != nil || raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		return false
	}
	return true
}

func storeCached(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if cache.Client == nil || ttl <= 0 {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cache.Set(ctx, key, payload, ttl); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func invalidateTopRestaurants(ctx context.Context) {
	if err := cache.DeleteByPrefix(ctx, topRestaurantsPrefix); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("top restaurants cache not invalidated")
	}
}

func invalidateTopUsers(ctx context.Context) {
	if err := cache.DeleteByPrefix(ctx, topUsersPrefix); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("top users cache not invalidated")
	}
}
