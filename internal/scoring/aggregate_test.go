package scoring

import (
	"math"
	"testing"

	"moodwellness/internal/model"
)

func TestCategoryScoresBasic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	questions := []model.Question{
		*scaleQuestion(1, model.CategoryPositiveAffect),
		*scaleQuestion(2, model.CategoryNegativeAffect),
	}
	responses := model.ResponseSet{"1": "5", "2": "1"}

	scores := e.CategoryScores(responses, questions)

	if got := scores[model.CategoryPositiveAffect]; got != 1.0 {
		t.Fatalf("positive_affect = %v, want 1.0", got)
	}
	if got := scores[model.CategoryNegativeAffect]; math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("negative_affect = %v, want 0.2", got)
	}
	// Untouched categories are present and zero
	for _, cat := range model.ScoringCategories {
		if _, ok := scores[cat]; !ok {
			t.Fatalf("category %s missing from score map", cat)
		}
	}
	if got := scores[model.CategoryEnergy]; got != 0 {
		t.Fatalf("energy = %v, want 0", got)
	}
}

func TestCategoryScoresWeightScaleInvariance(t *testing.T) {
	e := NewEngine(DefaultConfig())
	responses := model.ResponseSet{"1": "4", "2": "2"}

	base := []model.Question{
		{ID: 1, Type: model.QuestionTypeScale, Category: model.CategoryStress, Weight: 1},
		{ID: 2, Type: model.QuestionTypeScale, Category: model.CategoryStress, Weight: 2},
	}
	scaled := []model.Question{
		{ID: 1, Type: model.QuestionTypeScale, Category: model.CategoryStress, Weight: 3},
		{ID: 2, Type: model.QuestionTypeScale, Category: model.CategoryStress, Weight: 6},
	}

	a := e.CategoryScores(responses, base)[model.CategoryStress]
	b := e.CategoryScores(responses, scaled)[model.CategoryStress]
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("uniform weight scaling changed score: %v vs %v", a, b)
	}
	// (4*1 + 2*2) / 3 / 5 = 8/15
	if math.Abs(a-8.0/15.0) > 1e-9 {
		t.Fatalf("stress = %v, want %v", a, 8.0/15.0)
	}
}

func TestCategoryScoresSkipsUnknownIDs(t *testing.T) {
	e := NewEngine(DefaultConfig())
	questions := []model.Question{*scaleQuestion(1, model.CategoryAnxiety)}
	responses := model.ResponseSet{"99": "5", "not-a-number": "5"}

	scores := e.CategoryScores(responses, questions)
	for _, cat := range model.ScoringCategories {
		if scores[cat] != 0 {
			t.Fatalf("category %s = %v, want 0 for all-unknown responses", cat, scores[cat])
		}
	}
}

func TestCategoryScoresDefaultsZeroWeight(t *testing.T) {
	e := NewEngine(DefaultConfig())
	questions := []model.Question{
		{ID: 1, Type: model.QuestionTypeScale, Category: model.CategoryControl, Weight: 0},
	}
	got := e.CategoryScores(model.ResponseSet{"1": "5"}, questions)[model.CategoryControl]
	if got != 1.0 {
		t.Fatalf("zero-weight question score = %v, want 1.0", got)
	}
}

func TestCategoryScoresClamped(t *testing.T) {
	e := NewEngine(DefaultConfig())
	questions := []model.Question{*scaleQuestion(1, model.CategoryEnergy)}
	// Out-of-range raw answers cannot push a score past 1
	got := e.CategoryScores(model.ResponseSet{"1": "50"}, questions)[model.CategoryEnergy]
	if got != 1.0 {
		t.Fatalf("overshooting answer = %v, want clamped 1.0", got)
	}
}
