package scoring

import (
	"testing"

	"moodwellness/internal/model"
)

func scaleQuestion(id int64, cat model.Category) *model.Question {
	return &model.Question{ID: id, Type: model.QuestionTypeScale, Category: cat, Weight: 1, IsActive: true}
}

func TestNormalizeScale(t *testing.T) {
	e := NewEngine(DefaultConfig())
	q := scaleQuestion(1, model.CategoryPositiveAffect)

	cases := []struct {
		name string
		raw  interface{}
		want float64
	}{
		{"numeric string", "4", 4},
		{"json number", 7.5, 7.5},
		{"empty string", "", 0},
		{"garbage string", "abc", 0},
		{"boolean on scale question", true, 0},
		{"nil", nil, 0},
	}
	for _, c := range cases {
		if got := e.Normalize(c.raw, q); got != c.want {
			t.Fatalf("%s: Normalize(%v)=%v, want %v", c.name, c.raw, got, c.want)
		}
	}
}

func TestNormalizeMultipleChoice(t *testing.T) {
	e := NewEngine(DefaultConfig())
	q := &model.Question{
		ID:       2,
		Type:     model.QuestionTypeMultipleChoice,
		Category: model.CategoryEnergy,
		Options:  model.QuestionOptions{Options: []string{"Exhausted", "Tired", "Okay", "Energetic", "Very energetic"}},
		Weight:   1,
	}

	if got := e.Normalize("Exhausted", q); got != 1 {
		t.Fatalf("first option = %v, want 1", got)
	}
	if got := e.Normalize("Very energetic", q); got != 5 {
		t.Fatalf("last option = %v, want 5", got)
	}
	if got := e.Normalize("Not an option", q); got != 0 {
		t.Fatalf("unknown option = %v, want 0", got)
	}
	if got := e.Normalize(3.0, q); got != 0 {
		t.Fatalf("non-string answer = %v, want 0", got)
	}
}

func TestNormalizeMultipleChoiceLocalizedFallback(t *testing.T) {
	e := NewEngine(DefaultConfig())
	q := &model.Question{
		ID:       3,
		Type:     model.QuestionTypeMultipleChoice,
		Category: model.CategoryEnergy,
		Options:  model.QuestionOptions{OptionsZh: []string{"从不", "偶尔", "经常"}},
		Weight:   1,
	}
	if got := e.Normalize("偶尔", q); got != 2 {
		t.Fatalf("localized option = %v, want 2", got)
	}
}

func TestNormalizeSituationalSeverity(t *testing.T) {
	e := NewEngine(DefaultConfig())
	q := &model.Question{
		ID:       4,
		Type:     model.QuestionTypeMultipleChoice,
		Category: model.CategorySituational,
		Options: model.QuestionOptions{Options: []string{
			"Work/Study stress", "Health concerns", "No specific trigger", "Exam pressure",
		}},
		Weight: 1,
	}

	cases := []struct {
		choice string
		want   float64
	}{
		{"Work/Study stress", 4},
		{"Health concerns", 5},
		{"No specific trigger", 1},
		{"Exam pressure", 3}, // in the option list but not the severity table
	}
	for _, c := range cases {
		if got := e.Normalize(c.choice, q); got != c.want {
			t.Fatalf("severity(%q)=%v, want %v", c.choice, got, c.want)
		}
	}

	if got := e.Normalize("Unlisted trigger", q); got != 0 {
		t.Fatalf("option outside the list = %v, want 0", got)
	}
}

func TestNormalizeBoolean(t *testing.T) {
	e := NewEngine(DefaultConfig())
	q := &model.Question{ID: 5, Type: model.QuestionTypeBoolean, Category: model.CategoryControl, Weight: 1}

	if got := e.Normalize(true, q); got != 5 {
		t.Fatalf("true = %v, want 5", got)
	}
	if got := e.Normalize(false, q); got != 1 {
		t.Fatalf("false = %v, want 1", got)
	}
	if got := e.Normalize(nil, q); got != 1 {
		t.Fatalf("absent = %v, want 1", got)
	}
	if got := e.Normalize("true", q); got != 1 {
		t.Fatalf("string answer = %v, want 1", got)
	}
}

func TestNormalizeUnknownType(t *testing.T) {
	e := NewEngine(DefaultConfig())
	q := &model.Question{ID: 6, Type: "essay", Category: model.CategoryEnvironment, Weight: 1}
	if got := e.Normalize("anything", q); got != 0 {
		t.Fatalf("unknown type = %v, want 0", got)
	}
}
