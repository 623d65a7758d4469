package model

import "time"

// User is a registered account. PasswordHash is bcrypt.
type User struct {
	ID           int64                  `json:"id" bson:"_id"`
	Username     string                 `json:"username" bson:"username"`
	Email        string                 `json:"email,omitempty" bson:"email,omitempty"`
	PasswordHash string                 `json:"-" bson:"password_hash"`
	Preferences  map[string]interface{} `json:"preferences,omitempty" bson:"preferences,omitempty"`
	CreatedAt    time.Time              `json:"created_at" bson:"created_at"`
}

// UserStats summarizes a user's activity, computed on demand
type UserStats struct {
	UserID                   int64         `json:"user_id"`
	TotalAssessments         int64         `json:"total_assessments"`
	TotalRecommendationsUsed int64         `json:"total_recommendations_used"`
	FavoriteSolutionType     *SolutionType `json:"favorite_solution_type,omitempty"`
	StreakDays               int           `json:"streak_days"`
	LastAssessmentAt         *time.Time    `json:"last_assessment_at,omitempty"`
}
