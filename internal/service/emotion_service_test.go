package service

import (
	"context"
	"testing"

	"moodwellness/internal/model"
)

func TestCategoriesEmbedTags(t *testing.T) {
	emotionRepo := &fakeEmotionRepo{
		categories: testCategories(),
		tags: []model.EmotionTag{
			{ID: 1, CategoryID: 2, TagName: "Down", IntensityLevel: 6},
			{ID: 2, CategoryID: 2, TagName: "Heartbroken", IntensityLevel: 9},
		},
	}
	catalog := &fakeCatalogCache{}
	svc := NewEmotionService(emotionRepo, &fakeAssessmentRepo{}, catalog, newFakeStatsCache())

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if len(categories) != 8 {
		t.Fatalf("len = %d, want 8", len(categories))
	}

	sadness := categories[1]
	if sadness.ID != 2 || len(sadness.Tags) != 2 {
		t.Fatalf("sadness = %+v, want 2 embedded tags", sadness)
	}
	if sadness.Tags[0].TagName != "Heartbroken" {
		t.Fatalf("first tag = %q, want strongest intensity first", sadness.Tags[0].TagName)
	}
	if len(categories[0].Tags) != 0 {
		t.Fatalf("happiness tags = %+v, want none", categories[0].Tags)
	}

	// The cached copy carries the tags, so cache hits serve the same shape
	if len(catalog.categories) != 8 || len(catalog.categories[1].Tags) != 2 {
		t.Fatalf("cached categories = %+v, want tags embedded", catalog.categories)
	}
}
