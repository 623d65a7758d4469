package service

import (
	"context"
	"fmt"
	"time"

	"moodwellness/internal/cache"
	"moodwellness/internal/model"
	"moodwellness/internal/repository"
)

// EmotionService serves the emotion category catalog and aggregated stats
type EmotionService struct {
	emotionRepo    repository.EmotionRepo
	assessmentRepo repository.AssessmentRepo
	catalogCache   cache.CatalogCache
	statsCache     cache.StatsCache
}

// NewEmotionService creates a new emotion service
func NewEmotionService(
	emotionRepo repository.EmotionRepo,
	assessmentRepo repository.AssessmentRepo,
	catalogCache cache.CatalogCache,
	statsCache cache.StatsCache,
) *EmotionService {
	return &EmotionService{
		emotionRepo:    emotionRepo,
		assessmentRepo: assessmentRepo,
		catalogCache:   catalogCache,
		statsCache:     statsCache,
	}
}

// Categories returns the emotion category catalog with embedded tags,
// cache-first
func (s *EmotionService) Categories(ctx context.Context) ([]model.EmotionCategory, error) {
	categories, err := s.catalogCache.GetEmotionCategories(ctx)
	if err == nil && categories != nil {
		return categories, nil
	}

	categories, err = s.emotionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotion categories: %w", err)
	}
	tags, err := s.emotionRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotion tags: %w", err)
	}
	attachEmotionTags(categories, tags)
	_ = s.catalogCache.SetEmotionCategories(ctx, categories)
	return categories, nil
}

// attachEmotionTags embeds each category's tags, keeping the repo's
// category/intensity ordering
func attachEmotionTags(categories []model.EmotionCategory, tags []model.EmotionTag) {
	byCategory := make(map[int64][]model.EmotionTag, len(categories))
	for _, t := range tags {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
	}
	for i := range categories {
		categories[i].Tags = byCategory[categories[i].ID]
	}
}

// statsWindow maps a time range label to its duration. Unknown labels fall
// back to the 7 day window.
func statsWindow(timeRange string) (string, time.Duration) {
	switch timeRange {
	case "1d":
		return "1d", 24 * time.Hour
	case "30d":
		return "30d", 30 * 24 * time.Hour
	default:
		return "7d", 7 * 24 * time.Hour
	}
}

// Stats aggregates the emotion distribution over a trailing window
func (s *EmotionService) Stats(ctx context.Context, timeRange string) (*model.EmotionStats, error) {
	label, window := statsWindow(timeRange)

	if cached, err := s.statsCache.GetEmotionStats(ctx, label); err == nil && cached != nil {
		return cached, nil
	}

	distribution, total, err := s.assessmentRepo.StatsByEmotion(ctx, time.Now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate emotion stats: %w", err)
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.EmotionCategory, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	for i := range distribution {
		if c, ok := byID[distribution[i].EmotionID]; ok {
			distribution[i].EmotionName = string(c.Name)
			distribution[i].Color = c.ColorCode
		}
	}

	stats := &model.EmotionStats{
		TimeRange:           label,
		EmotionDistribution: distribution,
		TotalAssessments:    total,
	}
	_ = s.statsCache.SetEmotionStats(ctx, stats)
	return stats, nil
}
