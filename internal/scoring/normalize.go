package scoring

import (
	"strconv"

	"moodwellness/internal/model"
)

// Normalize converts a raw answer into a numeric score for the question's
// type. It never fails: unparseable or unknown input degrades to 0.
// Range clamping happens after aggregation, not here.
func (e *Engine) Normalize(raw interface{}, q *model.Question) float64 {
	switch q.Type {
	case model.QuestionTypeScale:
		return parseNumber(raw)
	case model.QuestionTypeMultipleChoice:
		return e.choiceScore(raw, q)
	case model.QuestionTypeBoolean:
		if b, ok := raw.(bool); ok && b {
			return 5
		}
		return 1
	default:
		return 0
	}
}

// choiceScore maps a selected option to its position score. Situational
// questions use the severity table instead of option order.
func (e *Engine) choiceScore(raw interface{}, q *model.Question) float64 {
	choice, ok := raw.(string)
	if !ok {
		return 0
	}

	options := q.OptionList()
	index := -1
	for i, opt := range options {
		if opt == choice {
			index = i
			break
		}
	}
	if index == -1 {
		return 0
	}

	if q.Category == model.CategorySituational {
		if score, ok := e.cfg.SeverityScores[choice]; ok {
			return score
		}
		return e.cfg.SeverityDefault
	}

	return float64(index + 1)
}

// parseNumber interprets a raw answer as a float. JSON numbers pass through,
// numeric strings are parsed, everything else (including booleans) scores 0.
func parseNumber(raw interface{}) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
