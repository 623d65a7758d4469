package model

// Emotion is a canonical discrete emotion label
type Emotion string

const (
	EmotionHappiness   Emotion = "happiness"
	EmotionSadness     Emotion = "sadness"
	EmotionAnger       Emotion = "anger"
	EmotionFear        Emotion = "fear"
	EmotionSurprise    Emotion = "surprise"
	EmotionDisgust     Emotion = "disgust"
	EmotionAnxiety     Emotion = "anxiety"
	EmotionStress      Emotion = "stress"
	EmotionFrustration Emotion = "frustration"
	EmotionNeutral     Emotion = "neutral"
)

// PrimaryEmotions is the six-way vector the enhanced strategy scores over,
// in tie-breaking order.
var PrimaryEmotions = []Emotion{
	EmotionHappiness,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionDisgust,
}

// EmotionCategory is a catalog entry for a discrete emotion label. Tags are
// joined from the emotion_tags collection when the catalog is served.
type EmotionCategory struct {
	ID        int64        `json:"id" bson:"_id"`
	Name      Emotion      `json:"name" bson:"name"`
	NameZh    string       `json:"name_zh,omitempty" bson:"name_zh,omitempty"`
	ColorCode string       `json:"color_code" bson:"color_code"`
	IsPrimary bool         `json:"is_primary" bson:"is_primary"`
	Tags      []EmotionTag `json:"emotion_tags,omitempty" bson:"-"`
}

// EmotionTag is a display label attached to an emotion category at a given
// intensity level, used by clients for quick self-labelling.
type EmotionTag struct {
	ID             int64  `json:"id" bson:"_id"`
	CategoryID     int64  `json:"category_id" bson:"category_id"`
	TagName        string `json:"tag_name" bson:"tag_name"`
	TagNameZh      string `json:"tag_name_zh,omitempty" bson:"tag_name_zh,omitempty"`
	IntensityLevel int    `json:"intensity_level" bson:"intensity_level"`
}

// DisplayName prefers the localized tag name
func (t *EmotionTag) DisplayName() string {
	if t.TagNameZh != "" {
		return t.TagNameZh
	}
	return t.TagName
}

// TagGroup bundles one category's tags for the tag picker
type TagGroup struct {
	Category TagGroupCategory `json:"category"`
	Tags     []TagEntry       `json:"tags"`
}

// TagGroupCategory is the category header of a tag group
type TagGroupCategory struct {
	Name      Emotion `json:"name"`
	NameZh    string  `json:"name_zh,omitempty"`
	ColorCode string  `json:"color_code"`
}

// TagEntry is one tag inside a group
type TagEntry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Intensity int    `json:"intensity"`
}

// EmotionStat is one bucket of the emotion distribution
type EmotionStat struct {
	EmotionID    int64   `json:"emotion_id" bson:"_id"`
	EmotionName  string  `json:"emotion_name" bson:"-"`
	Color        string  `json:"color" bson:"-"`
	Count        int64   `json:"count" bson:"count"`
	AvgIntensity float64 `json:"avg_intensity" bson:"avg_intensity"`
}

// EmotionStats is the aggregated distribution over a time range
type EmotionStats struct {
	TimeRange           string        `json:"time_range"`
	EmotionDistribution []EmotionStat `json:"emotion_distribution"`
	TotalAssessments    int64         `json:"total_assessments"`
}
