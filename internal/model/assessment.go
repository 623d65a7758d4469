package model

import "time"

// AssessmentType distinguishes how responses were collected
type AssessmentType string

const (
	AssessmentQuick    AssessmentType = "quick"
	AssessmentDetailed AssessmentType = "detailed"
	AssessmentVoice    AssessmentType = "voice"
)

// PatternAnalysis is the output contract of the auxiliary analyzers
// (linguistic, behavioral, cognitive). They are fixed-signal extension
// points; a richer implementation may replace them without touching the
// surrounding contract.
type PatternAnalysis struct {
	Indicators []string `json:"indicators,omitempty" bson:"indicators,omitempty"`
	Patterns   []string `json:"patterns,omitempty" bson:"patterns,omitempty"`
	Biases     []string `json:"biases,omitempty" bson:"biases,omitempty"`
	Confidence float64  `json:"confidence,omitempty" bson:"confidence,omitempty"`
}

// AnalysisDetails carries the auxiliary signals of the enhanced strategy
type AnalysisDetails struct {
	LanguageIndicators []string `json:"language_indicators" bson:"language_indicators"`
	BehaviorPatterns   []string `json:"behavior_patterns" bson:"behavior_patterns"`
	CognitiveBiases    []string `json:"cognitive_biases" bson:"cognitive_biases"`
	InferenceReasoning []string `json:"inference_reasoning" bson:"inference_reasoning"`
}

// AnalysisResult is the outcome of one emotion analysis
type AnalysisResult struct {
	EmotionScores    map[string]float64 `json:"emotion_scores" bson:"emotion_scores"`
	PrimaryEmotion   int64              `json:"primary_emotion" bson:"primary_emotion"`
	SecondaryEmotion *int64             `json:"secondary_emotion,omitempty" bson:"secondary_emotion,omitempty"`
	IntensityLevel   int                `json:"intensity_level" bson:"intensity_level"`   // 1-10
	ConfidenceScore  float64            `json:"confidence_score" bson:"confidence_score"` // 0-1
	AnalysisType     AssessmentType     `json:"analysis_type" bson:"analysis_type"`
	AnalysisDetails  *AnalysisDetails   `json:"analysis_details,omitempty" bson:"analysis_details,omitempty"`
}

// Assessment is a persisted analysis owned by a user
type Assessment struct {
	ID               string             `json:"id" bson:"_id,omitempty"`
	UserID           int64              `json:"user_id" bson:"user_id"`
	AssessmentType   AssessmentType     `json:"assessment_type" bson:"assessment_type"`
	Responses        ResponseSet        `json:"responses" bson:"responses"`
	EmotionScores    map[string]float64 `json:"emotion_scores" bson:"emotion_scores"`
	PrimaryEmotion   int64              `json:"primary_emotion" bson:"primary_emotion"`
	SecondaryEmotion *int64             `json:"secondary_emotion,omitempty" bson:"secondary_emotion,omitempty"`
	IntensityLevel   int                `json:"intensity_level" bson:"intensity_level"`
	ConfidenceScore  float64            `json:"confidence_score" bson:"confidence_score"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
}

// SubmitAssessmentRequest is the request body for questionnaire submission.
// Strategy selects the inference pipeline; empty means enhanced.
type SubmitAssessmentRequest struct {
	UserID         int64                  `json:"user_id,omitempty"`
	AssessmentType AssessmentType         `json:"assessment_type,omitempty"`
	Responses      ResponseSet            `json:"responses"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	Strategy       string                 `json:"strategy,omitempty"`
}

// AssessmentResult pairs a persisted assessment id with its analysis.
// The id is empty for anonymous submissions, which are analyzed but not
// stored.
type AssessmentResult struct {
	AssessmentID string          `json:"assessment_id,omitempty"`
	Analysis     *AnalysisResult `json:"analysis"`
}

// AssessmentHistoryEntry is an assessment joined with its emotion names
type AssessmentHistoryEntry struct {
	Assessment
	PrimaryEmotionCategory   *EmotionCategory `json:"primary_emotion_category,omitempty"`
	SecondaryEmotionCategory *EmotionCategory `json:"secondary_emotion_category,omitempty"`
}
