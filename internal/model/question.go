package model

// QuestionType defines how a question's raw answer is interpreted
type QuestionType string

const (
	QuestionTypeScale          QuestionType = "scale"           // Numeric 1-10 slider
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // Pick one option
	QuestionTypeBoolean        QuestionType = "boolean"         // Yes/no
)

// Category is a psychological dimension grouping related questions
type Category string

const (
	CategoryPositiveAffect     Category = "positive_affect"
	CategoryNegativeAffect     Category = "negative_affect"
	CategoryAnxiety            Category = "anxiety"
	CategoryDepression         Category = "depression"
	CategoryStress             Category = "stress"
	CategoryEnergy             Category = "energy"
	CategoryControl            Category = "control"
	CategorySituational        Category = "situational"
	CategoryCognitiveAppraisal Category = "cognitive_appraisal"
	CategoryEnvironment        Category = "environment"
)

// ScoringCategories is the fixed category vector the aggregator produces.
// Order matters: it defines tie-breaking and the confidence variance input.
var ScoringCategories = []Category{
	CategoryPositiveAffect,
	CategoryNegativeAffect,
	CategoryAnxiety,
	CategoryDepression,
	CategoryStress,
	CategoryEnergy,
	CategoryControl,
	CategorySituational,
	CategoryCognitiveAppraisal,
	CategoryEnvironment,
}

// QuestionOptions holds the ordered option lists for choice questions
type QuestionOptions struct {
	Options   []string `json:"options,omitempty" bson:"options,omitempty"`
	OptionsZh []string `json:"options_zh,omitempty" bson:"options_zh,omitempty"`
}

// Question is an assessment catalog entry. The catalog is read-only during
// analysis; it is only written by the seed command.
type Question struct {
	ID       int64           `json:"id" bson:"_id"`
	Text     string          `json:"question_text" bson:"question_text"`
	TextZh   string          `json:"question_text_zh,omitempty" bson:"question_text_zh,omitempty"`
	Type     QuestionType    `json:"question_type" bson:"question_type"`
	Category Category        `json:"category" bson:"category"`
	Options  QuestionOptions `json:"options" bson:"options"`
	Weight   float64         `json:"weight" bson:"weight"`
	IsActive bool            `json:"is_active" bson:"is_active"`
}

// OptionList returns the option list answers are matched against: the default
// list when present, otherwise the localized one.
func (q *Question) OptionList() []string {
	if len(q.Options.Options) > 0 {
		return q.Options.Options
	}
	return q.Options.OptionsZh
}

// ResponseSet maps question ids (JSON object keys) to raw answers.
// Values arrive as JSON numbers, strings, or booleans and are never mutated.
type ResponseSet map[string]interface{}
