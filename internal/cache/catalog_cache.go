package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"moodwellness/internal/model"
)

// CatalogCache handles Redis operations for the read-mostly catalogs
// (questions and emotion categories). Both tables only change when the seed
// command runs, so a long TTL plus explicit invalidation is enough.
type CatalogCache interface {
	GetQuestions(ctx context.Context) ([]model.Question, error)
	SetQuestions(ctx context.Context, questions []model.Question) error

	GetEmotionCategories(ctx context.Context) ([]model.EmotionCategory, error)
	SetEmotionCategories(ctx context.Context, categories []model.EmotionCategory) error

	Invalidate(ctx context.Context) error
}

const (
	questionsKey  = "catalog:questions"
	categoriesKey = "catalog:emotions"
)

type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a new catalog cache
func NewCatalogCache(client *redis.Client) CatalogCache {
	return &catalogCache{
		client: client,
		ttl:    time.Hour,
	}
}

func (c *catalogCache) GetQuestions(ctx context.Context) ([]model.Question, error) {
	data, err := c.client.Get(ctx, questionsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var questions []model.Question
	if err := json.Unmarshal([]byte(data), &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *catalogCache) SetQuestions(ctx context.Context, questions []model.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, questionsKey, data, c.ttl).Err()
}

func (c *catalogCache) GetEmotionCategories(ctx context.Context) ([]model.EmotionCategory, error) {
	data, err := c.client.Get(ctx, categoriesKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var categories []model.EmotionCategory
	if err := json.Unmarshal([]byte(data), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *catalogCache) SetEmotionCategories(ctx context.Context, categories []model.EmotionCategory) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoriesKey, data, c.ttl).Err()
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, questionsKey, categoriesKey).Err()
}
