package scoring

import (
	"math"
	"sort"

	"moodwellness/internal/model"
)

// Candidate is one solution mapped to the target emotion, in mapping order
// (effectiveness weight desc, priority asc).
type Candidate struct {
	Solution model.Solution
	Type     *model.SolutionType
	Weight   float64 // mapping's configured effectiveness weight
}

// RankOptions narrows and sizes a ranking run
type RankOptions struct {
	Strategy    Strategy
	Intensity   int
	Preferences model.UserPreferences
	Limit       int
}

// Rank scores and orders candidates. Ties keep the incoming (priority)
// order; the result is truncated to the limit (default 6 simple,
// 4 enhanced). Enhanced scores are rounded to two decimals.
func Rank(candidates []Candidate, opts RankOptions) []model.RecommendedSolution {
	enhanced := opts.Strategy != StrategySimple

	easyBoost, hardBoost := 0.2, 0.1
	if enhanced {
		easyBoost, hardBoost = 0.3, 0.2
	}

	preferred := make(map[int64]bool, len(opts.Preferences.PreferredTypes))
	for _, t := range opts.Preferences.PreferredTypes {
		preferred[t] = true
	}

	ranked := make([]model.RecommendedSolution, 0, len(candidates))
	for _, c := range candidates {
		score := c.Weight
		if enhanced && score == 0 {
			score = 1
		}

		difficulty := c.Solution.DifficultyLevel
		if opts.Intensity >= 7 && difficulty <= 2 {
			score += easyBoost // favor easy techniques under acute distress
		} else if opts.Intensity <= 4 && difficulty >= 3 {
			score += hardBoost
		}
		if preferred[c.Solution.TypeID] {
			score += 0.3
		}
		if opts.Preferences.TimeLimit > 0 && c.Solution.DurationMinutes <= opts.Preferences.TimeLimit {
			score += 0.1
		}
		if enhanced {
			score = math.Round(score*100) / 100
		}

		title := c.Solution.Title
		if title == "" {
			title = c.Solution.TitleZh
		}
		ranked = append(ranked, model.RecommendedSolution{
			ID:                  c.Solution.ID,
			Title:               title,
			Description:         c.Solution.Description,
			Instructions:        c.Solution.Instructions,
			Type:                c.Type,
			DurationMinutes:     c.Solution.DurationMinutes,
			DifficultyLevel:     difficulty,
			EffectivenessScore:  c.Solution.EffectivenessScore,
			Tags:                c.Solution.Tags,
			ResourceURL:         c.Solution.ResourceURL,
			RecommendationScore: score,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RecommendationScore > ranked[j].RecommendationScore
	})

	limit := opts.Limit
	if limit <= 0 {
		if enhanced {
			limit = 4
		} else {
			limit = 6
		}
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
