package scoring

import (
	"testing"

	"moodwellness/internal/model"
)

func TestVoiceEmptyTranscription(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	for _, transcription := range []string{"", "   ", "\n\t"} {
		res := c.Classify(transcription)
		if res.DetectedEmotion != model.EmotionNeutral {
			t.Fatalf("empty input detected %s, want neutral", res.DetectedEmotion)
		}
		if res.IntensityLevel != 1 || res.ConfidenceScore != 0.2 {
			t.Fatalf("empty input = intensity %d confidence %v, want 1 / 0.2",
				res.IntensityLevel, res.ConfidenceScore)
		}
		if len(res.KeywordMatches) != 0 {
			t.Fatalf("empty input keyword matches = %v, want none", res.KeywordMatches)
		}
	}
}

func TestVoiceNoKeywordHits(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	res := c.Classify("the weather report said rain tomorrow")
	if res.DetectedEmotion != model.EmotionNeutral {
		t.Fatalf("detected %s, want neutral for zero hits", res.DetectedEmotion)
	}
	if res.IntensityLevel != 1 || res.ConfidenceScore != 0.3 {
		t.Fatalf("zero hits = intensity %d confidence %v, want 1 / 0.3",
			res.IntensityLevel, res.ConfidenceScore)
	}
}

func TestVoiceEnglishKeywords(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	res := c.Classify("I feel happy today, life is great")

	if res.DetectedEmotion != model.EmotionHappiness {
		t.Fatalf("detected %s, want happiness", res.DetectedEmotion)
	}
	if res.KeywordMatches[model.EmotionHappiness] != 2 {
		t.Fatalf("happiness hits = %d, want 2", res.KeywordMatches[model.EmotionHappiness])
	}
	if res.IntensityLevel != 4 {
		t.Fatalf("intensity = %d, want 2 hits * 2 = 4", res.IntensityLevel)
	}
	// 2/2 + 0.3 capped at 1
	if res.ConfidenceScore != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", res.ConfidenceScore)
	}
}

func TestVoiceChineseKeywords(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	res := c.Classify("我今天很难过，也很失望")

	if res.DetectedEmotion != model.EmotionSadness {
		t.Fatalf("detected %s, want sadness", res.DetectedEmotion)
	}
	if res.KeywordMatches[model.EmotionSadness] != 2 {
		t.Fatalf("sadness hits = %d, want 2", res.KeywordMatches[model.EmotionSadness])
	}
	if res.IntensityLevel != 4 {
		t.Fatalf("intensity = %d, want 4", res.IntensityLevel)
	}
}

func TestVoiceTieBreakByTableOrder(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	// One happiness hit and one sadness hit; happiness is first in the table
	res := c.Classify("happy but also sad")

	if res.DetectedEmotion != model.EmotionHappiness {
		t.Fatalf("detected %s, want happiness on tie", res.DetectedEmotion)
	}
	if res.IntensityLevel != 2 {
		t.Fatalf("intensity = %d, want floor 2 for a single hit", res.IntensityLevel)
	}
	// 1/2 + 0.3 = 0.8
	if res.ConfidenceScore != 0.8 {
		t.Fatalf("confidence = %v, want 0.8", res.ConfidenceScore)
	}
}

func TestVoiceIntensityCapped(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	res := c.Classify("happy good great wonderful 开心 高兴 快乐")
	if res.DetectedEmotion != model.EmotionHappiness {
		t.Fatalf("detected %s, want happiness", res.DetectedEmotion)
	}
	if res.IntensityLevel != 10 {
		t.Fatalf("intensity = %d, want cap 10", res.IntensityLevel)
	}
}

func TestVoiceCaseInsensitive(t *testing.T) {
	c := NewVoiceClassifier(DefaultConfig())
	res := c.Classify("FEELING STRESSED AND OVERWHELMED")
	if res.DetectedEmotion != model.EmotionStress {
		t.Fatalf("detected %s, want stress", res.DetectedEmotion)
	}
	if res.KeywordMatches[model.EmotionStress] != 2 {
		t.Fatalf("stress hits = %d, want 2", res.KeywordMatches[model.EmotionStress])
	}
}
