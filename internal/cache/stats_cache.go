package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"moodwellness/internal/model"
)

// StatsCache handles Redis operations for aggregated emotion statistics.
// Stats are expensive aggregations over the assessments collection; a short
// TTL keeps them fresh enough for dashboards.
type StatsCache interface {
	GetEmotionStats(ctx context.Context, timeRange string) (*model.EmotionStats, error)
	SetEmotionStats(ctx context.Context, stats *model.EmotionStats) error
}

type statsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a new stats cache
func NewStatsCache(client *redis.Client) StatsCache {
	return &statsCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *statsCache) key(timeRange string) string {
	return fmt.Sprintf("stats:emotions:%s", timeRange)
}

func (c *statsCache) GetEmotionStats(ctx context.Context, timeRange string) (*model.EmotionStats, error) {
	data, err := c.client.Get(ctx, c.key(timeRange)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.EmotionStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *statsCache) SetEmotionStats(ctx context.Context, stats *model.EmotionStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(stats.TimeRange), data, c.ttl).Err()
}
