package scoring

import (
	"math"

	"moodwellness/internal/model"
)

// Engine runs emotion inference over a response set. It is immutable after
// construction; all lookups go through the catalog snapshot passed per call,
// so Analyze performs no I/O and never fails.
type Engine struct {
	cfg Config
}

// NewEngine builds an engine from an immutable config
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// AnalyzeInput is everything one analysis needs
type AnalyzeInput struct {
	Questions []model.Question
	Responses model.ResponseSet
	Metadata  map[string]interface{}
	Strategy  Strategy
	Type      model.AssessmentType
	Catalog   EmotionCatalog
}

// Analyze runs the selected strategy. Enhanced is the default entry point.
func (e *Engine) Analyze(in AnalyzeInput) *model.AnalysisResult {
	if in.Strategy == StrategySimple {
		return e.analyzeSimple(in)
	}
	return e.analyzeEnhanced(in)
}

// analyzeSimple is the deterministic rule cascade over category scores
func (e *Engine) analyzeSimple(in AnalyzeInput) *model.AnalysisResult {
	scores := e.CategoryScores(in.Responses, in.Questions)

	pos := scores[model.CategoryPositiveAffect]
	neg := scores[model.CategoryNegativeAffect]
	anx := scores[model.CategoryAnxiety]
	dep := scores[model.CategoryDepression]
	stress := scores[model.CategoryStress]

	var primary model.Emotion
	switch {
	case dep > 0.6:
		primary = model.EmotionSadness
	case anx > 0.6 || stress > 0.6:
		primary = model.EmotionFear
	case neg > 0.7:
		primary = model.EmotionAnger
	case pos > 0.6:
		primary = model.EmotionHappiness
	default:
		// Neutral zone: highest signal wins, first-seen on ties
		candidates := []struct {
			emotion model.Emotion
			score   float64
		}{
			{model.EmotionHappiness, pos},
			{model.EmotionSadness, dep},
			{model.EmotionAnger, neg * 0.8},
			{model.EmotionFear, math.Max(anx, stress)},
		}
		primary = candidates[0].emotion
		best := candidates[0].score
		for _, c := range candidates[1:] {
			if c.score > best {
				primary = c.emotion
				best = c.score
			}
		}
	}
	primaryID := in.Catalog.PrimaryID(primary)

	var secondary *int64
	var secondaryName model.Emotion
	switch {
	case anx > 0.4:
		secondaryName = model.EmotionAnxiety
	case stress > 0.4:
		secondaryName = model.EmotionStress
	case neg > 0.4:
		secondaryName = model.EmotionFrustration
	}
	if secondaryName != "" {
		if id, ok := in.Catalog.SecondaryID(secondaryName, primaryID); ok {
			secondary = &id
		}
	}

	values := categoryValues(scores)
	intensity := clampIntensity(int(math.Ceil(maxValue(values) * 10)))

	completeness := math.Min(float64(len(in.Responses))/float64(e.cfg.CompleteResponseCount), 1)
	consistency := math.Max(0, 1-variance(values)*2)
	confidence := completeness*0.6 + consistency*0.4

	return &model.AnalysisResult{
		EmotionScores:    categoryScoreMap(scores),
		PrimaryEmotion:   primaryID,
		SecondaryEmotion: secondary,
		IntensityLevel:   intensity,
		ConfidenceScore:  confidence,
		AnalysisType:     in.Type,
	}
}

// analyzeEnhanced scores a six-way emotion vector by coarse per-response
// thresholding, combined with the fixed-signal pattern analyzers.
func (e *Engine) analyzeEnhanced(in AnalyzeInput) *model.AnalysisResult {
	scores := e.emotionVector(in.Responses)

	language := e.analyzeLinguisticPatterns(in.Responses)
	behavior := e.analyzeBehaviorPatterns(in.Responses, in.Metadata)
	cognitive := e.analyzeCognitivePatterns(in.Responses)

	primaryName := model.PrimaryEmotions[0]
	best := scores[primaryName]
	for _, name := range model.PrimaryEmotions[1:] {
		if scores[name] > best {
			primaryName = name
			best = scores[name]
		}
	}
	primaryID := in.Catalog.PrimaryID(primaryName)

	secondaryID := primaryID
	if name, ok := nextDistinctEmotion(scores, primaryName); ok {
		secondaryID = in.Catalog.PrimaryID(name)
	}

	intensity := clampIntensity(int(math.Round(best * 10)))
	confidence := math.Min(float64(len(in.Responses))/float64(e.cfg.CompleteResponseCount)*0.8+0.2, 1.0)

	return &model.AnalysisResult{
		EmotionScores:    emotionScoreMap(scores),
		PrimaryEmotion:   primaryID,
		SecondaryEmotion: &secondaryID,
		IntensityLevel:   intensity,
		ConfidenceScore:  confidence,
		AnalysisType:     in.Type,
		AnalysisDetails: &model.AnalysisDetails{
			LanguageIndicators: language.Indicators,
			BehaviorPatterns:   behavior.Patterns,
			CognitiveBiases:    cognitive.Biases,
			InferenceReasoning: []string{
				"weighted response pattern analysis",
				"aggregated multi-signal indicators",
			},
		},
	}
}

// emotionVector builds the six-way score vector by coarse thresholding of
// each raw response value.
func (e *Engine) emotionVector(responses model.ResponseSet) map[model.Emotion]float64 {
	scores := make(map[model.Emotion]float64, len(model.PrimaryEmotions))
	for _, name := range model.PrimaryEmotions {
		scores[name] = 0
	}
	for _, raw := range responses {
		v := parseNumber(raw)
		switch {
		case v > 7:
			scores[model.EmotionHappiness] += 0.3
		case v < 3:
			scores[model.EmotionSadness] += 0.3
			scores[model.EmotionAnger] += 0.2
		case v < 5:
			scores[model.EmotionFear] += 0.2
		}
	}
	return scores
}

// nextDistinctEmotion returns the highest-scored emotion other than primary.
// Ties resolve in vector order.
func nextDistinctEmotion(scores map[model.Emotion]float64, primary model.Emotion) (model.Emotion, bool) {
	var found bool
	var name model.Emotion
	var best float64
	for _, e := range model.PrimaryEmotions {
		if e == primary {
			continue
		}
		if !found || scores[e] > best {
			name = e
			best = scores[e]
			found = true
		}
	}
	return name, found
}

func clampIntensity(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func categoryValues(scores map[model.Category]float64) []float64 {
	values := make([]float64, 0, len(model.ScoringCategories))
	for _, cat := range model.ScoringCategories {
		values = append(values, scores[cat])
	}
	return values
}

func categoryScoreMap(scores map[model.Category]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for cat, v := range scores {
		out[string(cat)] = v
	}
	return out
}

func emotionScoreMap(scores map[model.Emotion]float64) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for name, v := range scores {
		out[string(name)] = v
	}
	return out
}

func maxValue(values []float64) float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

// variance is the population variance of values; 0 for an empty slice
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
