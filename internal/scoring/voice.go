package scoring

import (
	"math"
	"strings"

	"moodwellness/internal/model"
)

// VoiceClassifier maps a free-text transcript to a detected emotion by
// bilingual keyword matching. Stateless; safe for concurrent use.
type VoiceClassifier struct {
	order    []model.Emotion
	keywords map[model.Emotion][]string
}

// NewVoiceClassifier builds a classifier from the config's keyword table
func NewVoiceClassifier(cfg Config) *VoiceClassifier {
	return &VoiceClassifier{
		order:    cfg.VoiceEmotions,
		keywords: cfg.VoiceKeywords,
	}
}

// Classify never fails. An empty or whitespace-only transcript short-circuits
// to the neutral result; a transcript with no keyword hits also resolves to
// neutral rather than an arbitrary table entry.
func (c *VoiceClassifier) Classify(transcription string) *model.VoiceAnalysis {
	if strings.TrimSpace(transcription) == "" {
		return &model.VoiceAnalysis{
			DetectedEmotion: model.EmotionNeutral,
			IntensityLevel:  1,
			ConfidenceScore: 0.2,
			KeywordMatches:  map[model.Emotion]int{},
		}
	}

	lowered := strings.ToLower(transcription)
	matches := make(map[model.Emotion]int, len(c.order))
	total := 0
	for _, emotion := range c.order {
		hits := 0
		for _, keyword := range c.keywords[emotion] {
			if strings.Contains(lowered, strings.ToLower(keyword)) || strings.Contains(transcription, keyword) {
				hits++
			}
		}
		matches[emotion] = hits
		total += hits
	}

	if total == 0 {
		return &model.VoiceAnalysis{
			DetectedEmotion: model.EmotionNeutral,
			IntensityLevel:  1,
			ConfidenceScore: 0.3,
			KeywordMatches:  matches,
			Transcription:   transcription,
		}
	}

	top := c.order[0]
	for _, emotion := range c.order[1:] {
		if matches[emotion] > matches[top] {
			top = emotion
		}
	}
	topCount := matches[top]

	intensity := topCount * 2
	if intensity < 2 {
		intensity = 2
	}
	if intensity > 10 {
		intensity = 10
	}

	confidence := math.Min(float64(topCount)/float64(total)+0.3, 1)

	return &model.VoiceAnalysis{
		DetectedEmotion: top,
		IntensityLevel:  intensity,
		ConfidenceScore: math.Round(confidence*100) / 100,
		KeywordMatches:  matches,
		Transcription:   transcription,
	}
}
