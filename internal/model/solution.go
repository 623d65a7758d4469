package model

import "time"

// SolutionType classifies coping techniques (breathing, music, journaling...)
type SolutionType struct {
	ID          int64  `json:"id" bson:"_id"`
	TypeName    string `json:"type_name" bson:"type_name"`
	TypeNameZh  string `json:"type_name_zh,omitempty" bson:"type_name_zh,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Icon        string `json:"icon,omitempty" bson:"icon,omitempty"`
	Color       string `json:"color,omitempty" bson:"color,omitempty"`
}

// Solution is a recommended coping technique. EffectivenessScore is the
// running average of user ratings rescaled to [0,1]; UsageCount only grows.
type Solution struct {
	ID                 int64    `json:"id" bson:"_id"`
	TypeID             int64    `json:"type_id" bson:"type_id"`
	Title              string   `json:"title" bson:"title"`
	TitleZh            string   `json:"title_zh,omitempty" bson:"title_zh,omitempty"`
	Description        string   `json:"description,omitempty" bson:"description,omitempty"`
	DescriptionZh      string   `json:"description_zh,omitempty" bson:"description_zh,omitempty"`
	Instructions       string   `json:"instructions,omitempty" bson:"instructions,omitempty"`
	InstructionsZh     string   `json:"instructions_zh,omitempty" bson:"instructions_zh,omitempty"`
	DurationMinutes    int      `json:"duration_minutes" bson:"duration_minutes"`
	DifficultyLevel    int      `json:"difficulty_level" bson:"difficulty_level"` // 1-5
	EffectivenessScore float64  `json:"effectiveness_score" bson:"effectiveness_score"`
	UsageCount         int64    `json:"usage_count" bson:"usage_count"`
	Tags               []string `json:"tags,omitempty" bson:"tags,omitempty"`
	ResourceURL        string   `json:"resource_url,omitempty" bson:"resource_url,omitempty"`
	IsActive           bool     `json:"is_active" bson:"is_active"`
}

// SolutionMapping associates an emotion category with a candidate solution.
// It defines the candidate pool and base score for the ranker.
type SolutionMapping struct {
	EmotionCategoryID   int64   `json:"emotion_category_id" bson:"emotion_category_id"`
	SolutionID          int64   `json:"solution_id" bson:"solution_id"`
	EffectivenessWeight float64 `json:"effectiveness_weight" bson:"effectiveness_weight"`
	PriorityOrder       int     `json:"priority_order" bson:"priority_order"`
}

// UserPreferences narrows recommendation ranking for a caller
type UserPreferences struct {
	PreferredTypes []int64 `json:"preferred_types,omitempty"`
	TimeLimit      int     `json:"time_limit,omitempty"` // minutes
}

// RecommendedSolution is one ranked entry returned to the caller
type RecommendedSolution struct {
	ID                  int64         `json:"id"`
	Title               string        `json:"title"`
	Description         string        `json:"description,omitempty"`
	Instructions        string        `json:"instructions,omitempty"`
	Type                *SolutionType `json:"type,omitempty"`
	DurationMinutes     int           `json:"duration_minutes"`
	DifficultyLevel     int           `json:"difficulty_level"`
	EffectivenessScore  float64       `json:"effectiveness_score"`
	Tags                []string      `json:"tags,omitempty"`
	ResourceURL         string        `json:"resource_url,omitempty"`
	RecommendationScore float64       `json:"recommendation_score"`
}

// RecommendationRequest is the request body for recommendation ranking
type RecommendationRequest struct {
	EmotionID   int64           `json:"emotion_id"`
	Intensity   int             `json:"intensity_level,omitempty"`
	Strategy    string          `json:"strategy,omitempty"`
	Preferences UserPreferences `json:"user_preferences,omitempty"`
	Limit       int             `json:"limit,omitempty"`
}

// UsageRequest is the request body for recording a solution usage event.
// Completed marks that the caller finished the technique; a rating may be
// given without completing and vice versa.
type UsageRequest struct {
	UserID              int64  `json:"user_id,omitempty"`
	AssessmentID        string `json:"assessment_id,omitempty"`
	SolutionID          int64  `json:"solution_id"`
	EffectivenessRating *int   `json:"effectiveness_rating,omitempty"`
	Feedback            string `json:"user_feedback,omitempty"`
	Completed           bool   `json:"completed,omitempty"`
}

// SolutionDetail is one solution joined with its type, rating histogram and
// current popularity rank (0 when the solution has no recorded usage yet)
type SolutionDetail struct {
	Solution      *Solution        `json:"solution"`
	Type          *SolutionType    `json:"type,omitempty"`
	FeedbackStats []FeedbackBucket `json:"feedback_stats"`
	TotalFeedback int64            `json:"total_feedback"`
	UsageRank     int              `json:"usage_rank,omitempty"`
}

// Recommendation records one usage event for a solution. Appended, never
// deleted; the effectiveness average is recomputed from these rows.
type Recommendation struct {
	ID                  string     `json:"id" bson:"_id,omitempty"`
	UserID              int64      `json:"user_id,omitempty" bson:"user_id,omitempty"`
	AssessmentID        string     `json:"assessment_id,omitempty" bson:"assessment_id,omitempty"`
	SolutionID          int64      `json:"solution_id" bson:"solution_id"`
	IsAccepted          bool       `json:"is_accepted" bson:"is_accepted"`
	CompletedAt         *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	EffectivenessRating *int       `json:"effectiveness_rating,omitempty" bson:"effectiveness_rating,omitempty"`
	UserFeedback        string     `json:"user_feedback,omitempty" bson:"user_feedback,omitempty"`
	CreatedAt           time.Time  `json:"created_at" bson:"created_at"`
}

// FeedbackBucket is one histogram bucket of effectiveness ratings
type FeedbackBucket struct {
	Rating int   `json:"rating" bson:"_id"`
	Count  int64 `json:"count" bson:"count"`
}

// PopularSolution is one usage-leaderboard entry
type PopularSolution struct {
	SolutionID int64  `json:"solution_id"`
	Title      string `json:"title"`
	UsageCount int64  `json:"usage_count"`
	Rank       int    `json:"rank"`
}
