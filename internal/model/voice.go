package model

import "time"

// VoiceAnalysis is the voice keyword classifier result
type VoiceAnalysis struct {
	DetectedEmotion Emotion         `json:"detected_emotion" bson:"detected_emotion"`
	IntensityLevel  int             `json:"intensity_level" bson:"intensity_level"`
	ConfidenceScore float64         `json:"confidence_score" bson:"confidence_score"`
	KeywordMatches  map[Emotion]int `json:"keyword_matches" bson:"keyword_matches"`
	Transcription   string          `json:"transcription" bson:"transcription"`
}

// VoiceAnalysisRequest is the request body for transcript analysis
type VoiceAnalysisRequest struct {
	UserID        int64  `json:"user_id,omitempty"`
	Transcription string `json:"transcription"`
}

// VoiceRecord persists one analyzed transcript
type VoiceRecord struct {
	ID               string         `json:"id" bson:"_id,omitempty"`
	UserID           int64          `json:"user_id" bson:"user_id"`
	Transcription    string         `json:"transcription" bson:"transcription"`
	Analysis         *VoiceAnalysis `json:"emotion_analysis" bson:"emotion_analysis"`
	ProcessingStatus string         `json:"processing_status" bson:"processing_status"`
	CreatedAt        time.Time      `json:"created_at" bson:"created_at"`
}
