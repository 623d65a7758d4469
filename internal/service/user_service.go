package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moodwellness/internal/model"
	"moodwellness/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// streakWindow bounds how far back streak computation looks
const streakWindow = 90 * 24 * time.Hour

// UserService computes per-user activity summaries
type UserService struct {
	userRepo           repository.UserRepo
	assessmentRepo     repository.AssessmentRepo
	recommendationRepo repository.RecommendationRepo
	solutionRepo       repository.SolutionRepo
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepo,
	assessmentRepo repository.AssessmentRepo,
	recommendationRepo repository.RecommendationRepo,
	solutionRepo repository.SolutionRepo,
) *UserService {
	return &UserService{
		userRepo:           userRepo,
		assessmentRepo:     assessmentRepo,
		recommendationRepo: recommendationRepo,
		solutionRepo:       solutionRepo,
	}
}

// Stats summarizes a user's activity on demand
func (s *UserService) Stats(ctx context.Context, userID int64) (*model.UserStats, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	totalAssessments, err := s.assessmentRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assessments: %w", err)
	}
	totalUsed, err := s.recommendationRepo.CountAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count recommendations: %w", err)
	}

	stats := &model.UserStats{
		UserID:                   userID,
		TotalAssessments:         totalAssessments,
		TotalRecommendationsUsed: totalUsed,
	}

	if latest, err := s.assessmentRepo.LatestByUser(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to load latest assessment: %w", err)
	} else if latest != nil {
		t := latest.CreatedAt
		stats.LastAssessmentAt = &t
	}

	dates, err := s.assessmentRepo.DatesByUser(ctx, userID, time.Now().Add(-streakWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to load assessment dates: %w", err)
	}
	stats.StreakDays = streakDays(dates, time.Now())

	favorite, err := s.favoriteType(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.FavoriteSolutionType = favorite

	return stats, nil
}

// favoriteType finds the solution type the user records the most usage for
func (s *UserService) favoriteType(ctx context.Context, userID int64) (*model.SolutionType, error) {
	usage, err := s.recommendationRepo.UsageBySolution(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage counts: %w", err)
	}
	if len(usage) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(usage))
	for id := range usage {
		ids = append(ids, id)
	}
	solutions, err := s.solutionRepo.GetManyByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load solutions: %w", err)
	}

	typeCounts := make(map[int64]int64)
	for _, sol := range solutions {
		typeCounts[sol.TypeID] += usage[sol.ID]
	}

	var bestType int64
	var bestCount int64
	for typeID, count := range typeCounts {
		if count > bestCount || (count == bestCount && (bestType == 0 || typeID < bestType)) {
			bestType = typeID
			bestCount = count
		}
	}
	if bestType == 0 {
		return nil, nil
	}
	return s.solutionRepo.GetType(ctx, bestType)
}

// streakDays counts consecutive calendar days with at least one assessment,
// ending today or yesterday.
func streakDays(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	days := make(map[string]bool, len(dates))
	for _, d := range dates {
		days[d.Format("2006-01-02")] = true
	}

	cursor := now
	if !days[cursor.Format("2006-01-02")] {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for days[cursor.Format("2006-01-02")] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}
