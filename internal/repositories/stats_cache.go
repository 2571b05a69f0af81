package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/faraaz0786/pglife/internal/models"
)

const (
	ratingStatsKey = "listing_rating_stats"
	ratingStatsTTL = 60 * time.Second
)

// RatingStatsCache keeps the GroupByListing aggregate in redis for a short
// window. Recommendations may lag fresh reviews by up to the TTL; review
// writes invalidate the key so the common path stays current.
type RatingStatsCache struct {
	RDB *redis.Client
}

func (c *RatingStatsCache) Get(ctx context.Context) (map[int]models.RatingStats, bool) {
	if c == nil || c.RDB == nil {
		return nil, false
	}
	data, err := c.RDB.Get(ctx, ratingStatsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats map[int]models.RatingStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, false
	}
	return stats, true
}

func (c *RatingStatsCache) Set(ctx context.Context, stats map[int]models.RatingStats) {
	if c == nil || c.RDB == nil {
		return
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.RDB.Set(ctx, ratingStatsKey, data, ratingStatsTTL)
}

func (c *RatingStatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.RDB == nil {
		return
	}
	c.RDB.Del(ctx, ratingStatsKey)
}
