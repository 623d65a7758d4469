package scoring

import (
	"strconv"

	"moodwellness/internal/model"
)

// CategoryScores aggregates normalized, weighted responses into per-category
// scores in [0,1]. Responses referencing unknown question ids are silently
// skipped; categories with no accumulated weight stay at 0.
func (e *Engine) CategoryScores(responses model.ResponseSet, questions []model.Question) map[model.Category]float64 {
	byID := make(map[int64]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	sums := make(map[model.Category]float64, len(model.ScoringCategories))
	weights := make(map[model.Category]float64, len(model.ScoringCategories))

	for key, raw := range responses {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		q, ok := byID[id]
		if !ok {
			continue
		}

		weight := q.Weight
		if weight <= 0 {
			weight = 1.0
		}
		sums[q.Category] += e.Normalize(raw, q) * weight
		weights[q.Category] += weight
	}

	scores := make(map[model.Category]float64, len(model.ScoringCategories))
	for _, cat := range model.ScoringCategories {
		score := 0.0
		if weights[cat] > 0 {
			score = sums[cat] / weights[cat] / e.cfg.MaxQuestionScore
			score = clamp01(score)
		}
		scores[cat] = score
	}
	return scores
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
