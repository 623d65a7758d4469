package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"moodwellness/internal/cache"
	"moodwellness/internal/model"
	"moodwellness/internal/repository"
	"moodwellness/internal/scoring"
)

var (
	ErrSolutionNotFound     = errors.New("solution not found")
	ErrSolutionTypeNotFound = errors.New("solution type not found")
)

// SolutionService handles recommendation ranking, the solution catalog and
// usage feedback.
type SolutionService struct {
	solutionRepo       repository.SolutionRepo
	recommendationRepo repository.RecommendationRepo
	userRepo           repository.UserRepo
	usageCache         cache.UsageCache
	broadcaster        Broadcaster
}

// NewSolutionService creates a new solution service
func NewSolutionService(
	solutionRepo repository.SolutionRepo,
	recommendationRepo repository.RecommendationRepo,
	userRepo repository.UserRepo,
	usageCache cache.UsageCache,
) *SolutionService {
	return &SolutionService{
		solutionRepo:       solutionRepo,
		recommendationRepo: recommendationRepo,
		userRepo:           userRepo,
		usageCache:         usageCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SolutionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Recommendations ranks the solutions mapped to an emotion category
func (s *SolutionService) Recommendations(ctx context.Context, req *model.RecommendationRequest) ([]model.RecommendedSolution, error) {
	mappings, err := s.solutionRepo.MappingsByEmotion(ctx, req.EmotionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution mappings: %w", err)
	}
	if len(mappings) == 0 {
		return []model.RecommendedSolution{}, nil
	}

	ids := make([]int64, len(mappings))
	for i, m := range mappings {
		ids[i] = m.SolutionID
	}
	solutions, err := s.solutionRepo.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load solutions: %w", err)
	}
	byID := make(map[int64]model.Solution, len(solutions))
	for _, sol := range solutions {
		byID[sol.ID] = sol
	}

	types, err := s.solutionRepo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution types: %w", err)
	}
	typeByID := make(map[int64]*model.SolutionType, len(types))
	for i := range types {
		typeByID[types[i].ID] = &types[i]
	}

	// Candidates keep mapping order so ranking ties stay deterministic
	candidates := make([]scoring.Candidate, 0, len(mappings))
	for _, m := range mappings {
		sol, ok := byID[m.SolutionID]
		if !ok {
			continue
		}
		candidates = append(candidates, scoring.Candidate{
			Solution: sol,
			Type:     typeByID[sol.TypeID],
			Weight:   m.EffectivenessWeight,
		})
	}

	ranked := scoring.Rank(candidates, scoring.RankOptions{
		Strategy:    strategyFromString(req.Strategy),
		Intensity:   req.Intensity,
		Preferences: req.Preferences,
		Limit:       req.Limit,
	})
	return ranked, nil
}

// RecordUsage appends a usage event, bumps the usage counters and, when the
// event carries a rating, recomputes the solution's effectiveness average.
func (s *SolutionService) RecordUsage(ctx context.Context, req *model.UsageRequest) (*model.Recommendation, error) {
	solution, err := s.solutionRepo.GetByID(ctx, req.SolutionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution: %w", err)
	}
	if solution == nil {
		return nil, ErrSolutionNotFound
	}

	if req.UserID > 0 {
		if err := s.userRepo.EnsureExists(ctx, req.UserID); err != nil {
			return nil, fmt.Errorf("failed to ensure user: %w", err)
		}
	}

	rec := &model.Recommendation{
		UserID:              req.UserID,
		AssessmentID:        req.AssessmentID,
		SolutionID:          req.SolutionID,
		IsAccepted:          true,
		EffectivenessRating: req.EffectivenessRating,
		UserFeedback:        req.Feedback,
	}
	if req.Completed {
		now := time.Now()
		rec.CompletedAt = &now
	}
	if err := s.recommendationRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to record usage: %w", err)
	}

	if err := s.solutionRepo.IncrementUsage(ctx, req.SolutionID); err != nil {
		return nil, fmt.Errorf("failed to increment usage: %w", err)
	}
	_ = s.usageCache.IncrementUsage(ctx, req.SolutionID)

	if req.EffectivenessRating != nil {
		if err := s.recomputeEffectiveness(ctx, req.SolutionID); err != nil {
			return nil, err
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast("solution_usage", map[string]interface{}{
			"solution_id": req.SolutionID,
			"user_id":     req.UserID,
			"timestamp":   time.Now().Unix(),
		})
	}
	return rec, nil
}

// recomputeEffectiveness rescales the mean of all recorded ratings (1-5)
// into [0,1]. Read-modify-write: concurrent raters may briefly race, but the
// next rating converges the average again.
func (s *SolutionService) recomputeEffectiveness(ctx context.Context, solutionID int64) error {
	ratings, err := s.recommendationRepo.RatingsBySolution(ctx, solutionID)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	score := float64(sum) / float64(len(ratings)) / 5
	score = math.Round(score*100) / 100

	if err := s.solutionRepo.SetEffectiveness(ctx, solutionID, score); err != nil {
		return fmt.Errorf("failed to update effectiveness: %w", err)
	}
	return nil
}

// Types returns the solution type catalog
func (s *SolutionService) Types(ctx context.Context) ([]model.SolutionType, error) {
	return s.solutionRepo.ListTypes(ctx)
}

// ByType lists a type's active solutions, most effective first
func (s *SolutionService) ByType(ctx context.Context, typeID int64, filter repository.SolutionFilter) ([]model.Solution, error) {
	t, err := s.solutionRepo.GetType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution type: %w", err)
	}
	if t == nil {
		return nil, ErrSolutionTypeNotFound
	}
	return s.solutionRepo.ListByType(ctx, typeID, filter)
}

// Detail returns one solution with its type and rating histogram
func (s *SolutionService) Detail(ctx context.Context, id int64) (*model.SolutionDetail, error) {
	solution, err := s.solutionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution: %w", err)
	}
	if solution == nil {
		return nil, ErrSolutionNotFound
	}

	t, err := s.solutionRepo.GetType(ctx, solution.TypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution type: %w", err)
	}

	buckets, err := s.recommendationRepo.FeedbackStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback stats: %w", err)
	}
	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	detail := &model.SolutionDetail{
		Solution:      solution,
		Type:          t,
		FeedbackStats: buckets,
		TotalFeedback: total,
	}
	// A cold or unreachable leaderboard leaves the rank at zero
	if rank, err := s.usageCache.GetRank(ctx, id); err == nil && rank > 0 {
		detail.UsageRank = int(rank)
	}
	return detail, nil
}

// Popular returns the usage leaderboard, Redis-first with a Mongo fallback
func (s *SolutionService) Popular(ctx context.Context, limit int) ([]model.PopularSolution, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	entries, err := s.usageCache.GetTop(ctx, limit)
	if err == nil && len(entries) > 0 {
		ids := make([]int64, len(entries))
		for i, e := range entries {
			ids[i] = e.SolutionID
		}
		solutions, err := s.solutionRepo.GetManyByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load solutions: %w", err)
		}
		titles := make(map[int64]string, len(solutions))
		for _, sol := range solutions {
			titles[sol.ID] = sol.Title
		}

		popular := make([]model.PopularSolution, len(entries))
		for i, e := range entries {
			popular[i] = model.PopularSolution{
				SolutionID: e.SolutionID,
				Title:      titles[e.SolutionID],
				UsageCount: e.UsageCount,
				Rank:       e.Rank,
			}
		}
		return popular, nil
	}

	solutions, err := s.solutionRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load popular solutions: %w", err)
	}
	popular := make([]model.PopularSolution, len(solutions))
	for i, sol := range solutions {
		popular[i] = model.PopularSolution{
			SolutionID: sol.ID,
			Title:      sol.Title,
			UsageCount: sol.UsageCount,
			Rank:       i + 1,
		}
	}
	return popular, nil
}
