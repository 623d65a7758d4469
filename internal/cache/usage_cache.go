package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// UsageCache handles Redis ZSET operations for the solution popularity
// leaderboard. The ZSET is the fast path; Mongo usage counters remain the
// source of truth.
type UsageCache interface {
	IncrementUsage(ctx context.Context, solutionID int64) error
	GetTop(ctx context.Context, limit int) ([]UsageEntry, error)
	GetRank(ctx context.Context, solutionID int64) (int64, error)
}

// UsageEntry represents a single popularity leaderboard entry
type UsageEntry struct {
	SolutionID int64 `json:"solution_id"`
	UsageCount int64 `json:"usage_count"`
	Rank       int   `json:"rank"`
}

const usageKey = "solutions:usage"

type usageCache struct {
	client *redis.Client
}

// NewUsageCache creates a new usage cache
func NewUsageCache(client *redis.Client) UsageCache {
	return &usageCache{
		client: client,
	}
}

func (c *usageCache) IncrementUsage(ctx context.Context, solutionID int64) error {
	return c.client.ZIncrBy(ctx, usageKey, 1, strconv.FormatInt(solutionID, 10)).Err()
}

func (c *usageCache) GetTop(ctx context.Context, limit int) ([]UsageEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, usageKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]UsageEntry, 0, len(results))
	for i, z := range results {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, UsageEntry{
			SolutionID: id,
			UsageCount: int64(z.Score),
			Rank:       i + 1,
		})
	}
	return entries, nil
}

func (c *usageCache) GetRank(ctx context.Context, solutionID int64) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, usageKey, strconv.FormatInt(solutionID, 10)).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}
