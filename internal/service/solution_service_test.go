package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"moodwellness/internal/model"
	"moodwellness/internal/repository"
)

func newSolutionFixture() (*SolutionService, *fakeSolutionRepo, *fakeRecommendationRepo, *fakeUsageCache) {
	solutionRepo := newFakeSolutionRepo()
	solutionRepo.types = []model.SolutionType{
		{ID: 1, TypeName: "breathing"},
		{ID: 2, TypeName: "music"},
	}
	solutionRepo.solutions[1] = &model.Solution{
		ID: 1, TypeID: 1, Title: "Box breathing", DifficultyLevel: 1, DurationMinutes: 5, IsActive: true,
	}
	solutionRepo.solutions[2] = &model.Solution{
		ID: 2, TypeID: 2, Title: "Calming playlist", DifficultyLevel: 2, DurationMinutes: 20, IsActive: true,
	}
	solutionRepo.solutions[3] = &model.Solution{
		ID: 3, TypeID: 1, Title: "Body scan", DifficultyLevel: 3, DurationMinutes: 15, IsActive: true,
	}

	recRepo := &fakeRecommendationRepo{}
	usage := newFakeUsageCache()
	svc := NewSolutionService(solutionRepo, recRepo, newFakeUserRepo(), usage)
	return svc, solutionRepo, recRepo, usage
}

func intPtr(v int) *int { return &v }

func TestRecordUsageRecomputesEffectiveness(t *testing.T) {
	svc, solutionRepo, _, usage := newSolutionFixture()
	ctx := context.Background()

	rec, err := svc.RecordUsage(ctx, &model.UsageRequest{
		UserID:              7,
		SolutionID:          1,
		EffectivenessRating: intPtr(5),
		Completed:           true,
	})
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if rec.ID == "" || !rec.IsAccepted {
		t.Fatalf("unexpected recommendation: %+v", rec)
	}
	if rec.CompletedAt == nil {
		t.Fatal("completed usage must carry a completion timestamp")
	}
	if got := solutionRepo.solutions[1].EffectivenessScore; got != 1.0 {
		t.Fatalf("effectiveness after one rating of 5 = %v, want 1.0", got)
	}
	if got := solutionRepo.solutions[1].UsageCount; got != 1 {
		t.Fatalf("usage count = %d, want 1", got)
	}
	if usage.counts[1] != 1 {
		t.Fatalf("cache usage count = %d, want 1", usage.counts[1])
	}

	// A rating without the completed flag still feeds the average but must
	// not be marked completed.
	rec2, err := svc.RecordUsage(ctx, &model.UsageRequest{
		UserID:              7,
		SolutionID:          1,
		EffectivenessRating: intPtr(1),
	})
	if err != nil {
		t.Fatalf("second RecordUsage: %v", err)
	}
	if rec2.CompletedAt != nil {
		t.Fatal("uncompleted usage must not carry a completion timestamp")
	}
	// mean(5,1)/5 = 0.6
	if got := solutionRepo.solutions[1].EffectivenessScore; got != 0.6 {
		t.Fatalf("effectiveness after ratings 5,1 = %v, want 0.6", got)
	}
	if got := solutionRepo.solutions[1].UsageCount; got != 2 {
		t.Fatalf("usage count = %d, want 2", got)
	}
}

func TestRecordUsageWithoutRating(t *testing.T) {
	svc, solutionRepo, _, _ := newSolutionFixture()
	rec, err := svc.RecordUsage(context.Background(), &model.UsageRequest{SolutionID: 2, Completed: true})
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if rec.CompletedAt == nil {
		t.Fatal("completion does not require a rating")
	}
	if got := solutionRepo.solutions[2].EffectivenessScore; got != 0 {
		t.Fatalf("effectiveness = %v, want unchanged 0", got)
	}
	if got := solutionRepo.solutions[2].UsageCount; got != 1 {
		t.Fatalf("usage count = %d, want 1", got)
	}
}

func TestRecordUsageUnknownSolution(t *testing.T) {
	svc, _, _, _ := newSolutionFixture()
	_, err := svc.RecordUsage(context.Background(), &model.UsageRequest{SolutionID: 99})
	if !errors.Is(err, ErrSolutionNotFound) {
		t.Fatalf("err = %v, want ErrSolutionNotFound", err)
	}
}

func TestRecordUsageBroadcasts(t *testing.T) {
	svc, _, _, _ := newSolutionFixture()
	b := &fakeBroadcaster{}
	svc.SetBroadcaster(b)

	if _, err := svc.RecordUsage(context.Background(), &model.UsageRequest{SolutionID: 1}); err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if len(b.events) != 1 || b.events[0] != "solution_usage" {
		t.Fatalf("events = %v, want [solution_usage]", b.events)
	}
}

func TestRecommendationsRanking(t *testing.T) {
	svc, solutionRepo, _, _ := newSolutionFixture()
	solutionRepo.mappings = []model.SolutionMapping{
		{EmotionCategoryID: 2, SolutionID: 1, EffectivenessWeight: 0.9, PriorityOrder: 1},
		{EmotionCategoryID: 2, SolutionID: 2, EffectivenessWeight: 0.8, PriorityOrder: 2},
		{EmotionCategoryID: 2, SolutionID: 3, EffectivenessWeight: 0.7, PriorityOrder: 3},
		{EmotionCategoryID: 4, SolutionID: 3, EffectivenessWeight: 0.95, PriorityOrder: 1},
	}

	ranked, err := svc.Recommendations(context.Background(), &model.RecommendationRequest{
		EmotionID: 2,
		Intensity: 8,
		Strategy:  "simple",
	})
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3 (only emotion 2 mappings)", len(ranked))
	}
	// Solution 1 is easy (difficulty 1) under high intensity: 0.9+0.2=1.1
	if ranked[0].ID != 1 {
		t.Fatalf("top = %d, want 1", ranked[0].ID)
	}
	if math.Abs(ranked[0].RecommendationScore-1.1) > 1e-9 {
		t.Fatalf("top score = %v, want 1.1", ranked[0].RecommendationScore)
	}
	if ranked[0].Type == nil || ranked[0].Type.ID != 1 {
		t.Fatalf("type = %+v, want type 1 attached", ranked[0].Type)
	}
}

func TestRecommendationsEmptyMapping(t *testing.T) {
	svc, _, _, _ := newSolutionFixture()
	ranked, err := svc.Recommendations(context.Background(), &model.RecommendationRequest{EmotionID: 42})
	if err != nil {
		t.Fatalf("Recommendations: %v", err)
	}
	if len(ranked) != 0 {
		t.Fatalf("len = %d, want 0", len(ranked))
	}
}

func TestByTypeFilters(t *testing.T) {
	svc, _, _, _ := newSolutionFixture()
	ctx := context.Background()

	// Type 1 holds Box breathing (difficulty 1, 5 min) and Body scan
	// (difficulty 3, 15 min). Difficulty matches exactly, duration is a cap.
	solutions, err := svc.ByType(ctx, 1, repository.SolutionFilter{Difficulty: 1})
	if err != nil {
		t.Fatalf("ByType: %v", err)
	}
	if len(solutions) != 1 || solutions[0].ID != 1 {
		t.Fatalf("difficulty filter = %+v, want only solution 1", solutions)
	}

	solutions, err = svc.ByType(ctx, 1, repository.SolutionFilter{MaxDuration: 10})
	if err != nil {
		t.Fatalf("ByType: %v", err)
	}
	if len(solutions) != 1 || solutions[0].ID != 1 {
		t.Fatalf("duration filter = %+v, want only solution 1", solutions)
	}

	solutions, err = svc.ByType(ctx, 1, repository.SolutionFilter{})
	if err != nil {
		t.Fatalf("ByType: %v", err)
	}
	if len(solutions) != 2 {
		t.Fatalf("unfiltered len = %d, want 2", len(solutions))
	}
}

func TestByTypeUnknown(t *testing.T) {
	svc, _, _, _ := newSolutionFixture()
	_, err := svc.ByType(context.Background(), 99, repository.SolutionFilter{})
	if !errors.Is(err, ErrSolutionTypeNotFound) {
		t.Fatalf("err = %v, want ErrSolutionTypeNotFound", err)
	}
}

func TestDetailAggregatesFeedback(t *testing.T) {
	svc, _, recRepo, usage := newSolutionFixture()
	ctx := context.Background()
	for _, rating := range []int{5, 5, 3} {
		r := rating
		_ = recRepo.Create(ctx, &model.Recommendation{SolutionID: 1, EffectivenessRating: &r})
	}

	detail, err := svc.Detail(ctx, 1)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.TotalFeedback != 3 {
		t.Fatalf("total feedback = %d, want 3", detail.TotalFeedback)
	}
	if len(detail.FeedbackStats) != 2 {
		t.Fatalf("buckets = %v, want 2 buckets", detail.FeedbackStats)
	}
	if detail.Type == nil || detail.Type.ID != 1 {
		t.Fatalf("type = %+v, want type 1", detail.Type)
	}
	if detail.UsageRank != 0 {
		t.Fatalf("rank on a cold leaderboard = %d, want 0", detail.UsageRank)
	}

	// Second place on the usage leaderboard
	usage.counts[1] = 5
	usage.counts[2] = 9
	detail, err = svc.Detail(ctx, 1)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.UsageRank != 2 {
		t.Fatalf("usage rank = %d, want 2", detail.UsageRank)
	}

	if _, err := svc.Detail(ctx, 99); !errors.Is(err, ErrSolutionNotFound) {
		t.Fatalf("err = %v, want ErrSolutionNotFound", err)
	}
}

func TestPopularFallsBackToMongo(t *testing.T) {
	svc, solutionRepo, _, usage := newSolutionFixture()
	solutionRepo.solutions[2].UsageCount = 10
	solutionRepo.solutions[1].UsageCount = 4

	// Cold cache: served from Mongo by usage count
	popular, err := svc.Popular(context.Background(), 2)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(popular) != 2 || popular[0].SolutionID != 2 || popular[0].Rank != 1 {
		t.Fatalf("popular = %+v, want solution 2 first", popular)
	}

	// Warm cache wins over Mongo counters
	usage.counts[3] = 99
	popular, err = svc.Popular(context.Background(), 2)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if popular[0].SolutionID != 3 || popular[0].Title != "Body scan" {
		t.Fatalf("popular = %+v, want cached solution 3 first", popular)
	}
}
