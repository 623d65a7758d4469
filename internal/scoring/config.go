package scoring

import "moodwellness/internal/model"

// Strategy selects which inference pipeline an analysis runs through
type Strategy string

const (
	StrategySimple   Strategy = "simple"   // rule cascade over category scores
	StrategyEnhanced Strategy = "enhanced" // six-way emotion vector + pattern analyzers
)

// Valid reports whether s names a known strategy
func (s Strategy) Valid() bool {
	return s == StrategySimple || s == StrategyEnhanced
}

// Config holds every scoring constant as immutable data injected at
// construction time. Engines built from it carry no mutable state and are
// safe for concurrent use.
type Config struct {
	// MaxQuestionScore is the assumed per-question maximum used to
	// normalize aggregated category sums into [0,1].
	MaxQuestionScore float64

	// CompleteResponseCount is the response count treated as a fully
	// answered assessment when computing confidence.
	CompleteResponseCount int

	// SeverityScores maps situational-question options to severity scores;
	// unrecognized options fall back to SeverityDefault.
	SeverityScores  map[string]float64
	SeverityDefault float64

	// VoiceEmotions orders the keyword table; earlier entries win ties.
	VoiceEmotions []model.Emotion
	VoiceKeywords map[model.Emotion][]string
}

// DefaultConfig returns the scoring constants the service ships with
func DefaultConfig() Config {
	return Config{
		MaxQuestionScore:      5,
		CompleteResponseCount: 10,
		SeverityScores: map[string]float64{
			"Work/Study stress":   4,
			"Relationship issues": 4,
			"Health concerns":     5,
			"Financial worries":   4,
			"Social situations":   3,
			"No specific trigger": 1,
			"Other":               3,
		},
		SeverityDefault: 3,
		VoiceEmotions: []model.Emotion{
			model.EmotionHappiness,
			model.EmotionSadness,
			model.EmotionAnger,
			model.EmotionFear,
			model.EmotionStress,
			model.EmotionSurprise,
		},
		VoiceKeywords: map[model.Emotion][]string{
			model.EmotionHappiness: {"开心", "高兴", "快乐", "兴奋", "满足", "good", "great", "happy", "wonderful"},
			model.EmotionSadness:   {"难过", "伤心", "沮丧", "失望", "痛苦", "sad", "upset", "depressed"},
			model.EmotionAnger:     {"生气", "愤怒", "烦躁", "恼火", "气", "angry", "mad", "frustrated"},
			model.EmotionFear:      {"害怕", "担心", "紧张", "焦虑", "恐惧", "worried", "anxious", "nervous"},
			model.EmotionStress:    {"压力", "疲惫", "累", "紧绷", "忙不过来", "stressed", "overwhelmed"},
			model.EmotionSurprise:  {"惊讶", "意外", "没想到", "surprised"},
		},
	}
}

// fallbackEmotionIDs is the fixed default-resolution policy for emotion
// lookups: when the catalog is missing a label, these ids are used.
var fallbackEmotionIDs = map[model.Emotion]int64{
	model.EmotionHappiness: 1,
	model.EmotionSadness:   2,
	model.EmotionAnger:     3,
	model.EmotionFear:      4,
	model.EmotionSurprise:  5,
	model.EmotionDisgust:   6,
}

// defaultEmotionID is used when even the fallback table has no entry
const defaultEmotionID int64 = 1

// EmotionCatalog is an immutable snapshot of the emotion-category table.
// All name-to-id resolution goes through it; a miss always resolves through
// the single fallback policy above, so lookups cannot fail.
type EmotionCatalog struct {
	primary   map[model.Emotion]int64
	secondary map[model.Emotion]int64
}

// NewEmotionCatalog builds a snapshot from catalog records
func NewEmotionCatalog(categories []model.EmotionCategory) EmotionCatalog {
	c := EmotionCatalog{
		primary:   make(map[model.Emotion]int64, len(categories)),
		secondary: make(map[model.Emotion]int64),
	}
	for _, cat := range categories {
		if cat.IsPrimary {
			c.primary[cat.Name] = cat.ID
		} else {
			c.secondary[cat.Name] = cat.ID
		}
	}
	return c
}

// PrimaryID resolves a primary emotion label to its category id
func (c EmotionCatalog) PrimaryID(e model.Emotion) int64 {
	if id, ok := c.primary[e]; ok {
		return id
	}
	if id, ok := fallbackEmotionIDs[e]; ok {
		return id
	}
	return defaultEmotionID
}

// SecondaryID resolves a secondary emotion label, excluding the primary id.
// The second return is false when the catalog has no usable entry.
func (c EmotionCatalog) SecondaryID(e model.Emotion, primaryID int64) (int64, bool) {
	id, ok := c.secondary[e]
	if !ok || id == primaryID {
		return 0, false
	}
	return id, true
}
