package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"moodwellness/internal/cache"
	"moodwellness/internal/model"
	"moodwellness/internal/repository"
)

// In-memory fakes for the repository and cache interfaces. They implement
// only the semantics the services rely on.

type fakeQuestionRepo struct {
	questions []model.Question
}

func (f *fakeQuestionRepo) ListActive(_ context.Context) ([]model.Question, error) {
	return f.questions, nil
}

func (f *fakeQuestionRepo) UpsertMany(_ context.Context, questions []model.Question) error {
	f.questions = questions
	return nil
}

type fakeEmotionRepo struct {
	categories []model.EmotionCategory
	tags       []model.EmotionTag
}

func (f *fakeEmotionRepo) List(_ context.Context) ([]model.EmotionCategory, error) {
	return f.categories, nil
}

func (f *fakeEmotionRepo) ListTags(_ context.Context) ([]model.EmotionTag, error) {
	out := make([]model.EmotionTag, len(f.tags))
	copy(out, f.tags)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		return out[i].IntensityLevel > out[j].IntensityLevel
	})
	return out, nil
}

func (f *fakeEmotionRepo) UpsertMany(_ context.Context, categories []model.EmotionCategory) error {
	f.categories = categories
	return nil
}

func (f *fakeEmotionRepo) UpsertTags(_ context.Context, tags []model.EmotionTag) error {
	f.tags = tags
	return nil
}

type fakeAssessmentRepo struct {
	assessments []model.Assessment
}

func (f *fakeAssessmentRepo) Create(_ context.Context, a *model.Assessment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.ID = fmt.Sprintf("a%d", len(f.assessments)+1)
	f.assessments = append(f.assessments, *a)
	return nil
}

func (f *fakeAssessmentRepo) ListByUser(_ context.Context, userID int64, limit, offset int) ([]model.Assessment, error) {
	var out []model.Assessment
	for i := len(f.assessments) - 1; i >= 0; i-- {
		if f.assessments[i].UserID == userID {
			out = append(out, f.assessments[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAssessmentRepo) CountByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, a := range f.assessments {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAssessmentRepo) LatestByUser(_ context.Context, userID int64) (*model.Assessment, error) {
	var latest *model.Assessment
	for i := range f.assessments {
		a := &f.assessments[i]
		if a.UserID != userID {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) {
			latest = a
		}
	}
	return latest, nil
}

func (f *fakeAssessmentRepo) DatesByUser(_ context.Context, userID int64, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	for _, a := range f.assessments {
		if a.UserID == userID && !a.CreatedAt.Before(since) {
			dates = append(dates, a.CreatedAt)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates, nil
}

func (f *fakeAssessmentRepo) StatsByEmotion(_ context.Context, since time.Time) ([]model.EmotionStat, int64, error) {
	counts := make(map[int64]*model.EmotionStat)
	var total int64
	for _, a := range f.assessments {
		if a.CreatedAt.Before(since) {
			continue
		}
		stat, ok := counts[a.PrimaryEmotion]
		if !ok {
			stat = &model.EmotionStat{EmotionID: a.PrimaryEmotion}
			counts[a.PrimaryEmotion] = stat
		}
		stat.AvgIntensity = (stat.AvgIntensity*float64(stat.Count) + float64(a.IntensityLevel)) / float64(stat.Count+1)
		stat.Count++
		total++
	}
	var stats []model.EmotionStat
	for _, s := range counts {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Count > stats[j].Count })
	return stats, total, nil
}

type fakeVoiceRepo struct {
	records []model.VoiceRecord
}

func (f *fakeVoiceRepo) Create(_ context.Context, record *model.VoiceRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	record.ID = fmt.Sprintf("v%d", len(f.records)+1)
	f.records = append(f.records, *record)
	return nil
}

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) EnsureExists(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		f.users[id] = &model.User{ID: id, CreatedAt: time.Now()}
	}
	return nil
}

type fakeSolutionRepo struct {
	types     []model.SolutionType
	solutions map[int64]*model.Solution
	mappings  []model.SolutionMapping
}

func newFakeSolutionRepo() *fakeSolutionRepo {
	return &fakeSolutionRepo{solutions: make(map[int64]*model.Solution)}
}

func (f *fakeSolutionRepo) ListTypes(_ context.Context) ([]model.SolutionType, error) {
	return f.types, nil
}

func (f *fakeSolutionRepo) GetType(_ context.Context, id int64) (*model.SolutionType, error) {
	for i := range f.types {
		if f.types[i].ID == id {
			return &f.types[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSolutionRepo) GetByID(_ context.Context, id int64) (*model.Solution, error) {
	s, ok := f.solutions[id]
	if !ok || !s.IsActive {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSolutionRepo) GetManyByIDs(_ context.Context, ids []int64) ([]model.Solution, error) {
	var out []model.Solution
	for _, id := range ids {
		if s, ok := f.solutions[id]; ok && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSolutionRepo) ListByType(_ context.Context, typeID int64, filter repository.SolutionFilter) ([]model.Solution, error) {
	var out []model.Solution
	for _, s := range f.solutions {
		if s.TypeID != typeID || !s.IsActive {
			continue
		}
		if filter.Difficulty > 0 && s.DifficultyLevel != filter.Difficulty {
			continue
		}
		if filter.MaxDuration > 0 && s.DurationMinutes > filter.MaxDuration {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EffectivenessScore != out[j].EffectivenessScore {
			return out[i].EffectivenessScore > out[j].EffectivenessScore
		}
		return out[i].UsageCount > out[j].UsageCount
	})
	return out, nil
}

func (f *fakeSolutionRepo) ListPopular(_ context.Context, limit int) ([]model.Solution, error) {
	var out []model.Solution
	for _, s := range f.solutions {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsageCount > out[j].UsageCount })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSolutionRepo) MappingsByEmotion(_ context.Context, emotionID int64) ([]model.SolutionMapping, error) {
	var out []model.SolutionMapping
	for _, m := range f.mappings {
		if m.EmotionCategoryID == emotionID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].EffectivenessWeight != out[j].EffectivenessWeight {
			return out[i].EffectivenessWeight > out[j].EffectivenessWeight
		}
		return out[i].PriorityOrder < out[j].PriorityOrder
	})
	return out, nil
}

func (f *fakeSolutionRepo) IncrementUsage(_ context.Context, id int64) error {
	if s, ok := f.solutions[id]; ok {
		s.UsageCount++
	}
	return nil
}

func (f *fakeSolutionRepo) SetEffectiveness(_ context.Context, id int64, score float64) error {
	if s, ok := f.solutions[id]; ok {
		s.EffectivenessScore = score
	}
	return nil
}

func (f *fakeSolutionRepo) UpsertTypes(_ context.Context, types []model.SolutionType) error {
	f.types = types
	return nil
}

func (f *fakeSolutionRepo) UpsertSolutions(_ context.Context, solutions []model.Solution) error {
	for i := range solutions {
		s := solutions[i]
		f.solutions[s.ID] = &s
	}
	return nil
}

func (f *fakeSolutionRepo) ReplaceMappings(_ context.Context, mappings []model.SolutionMapping) error {
	f.mappings = mappings
	return nil
}

type fakeRecommendationRepo struct {
	recs []model.Recommendation
}

func (f *fakeRecommendationRepo) Create(_ context.Context, rec *model.Recommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.ID = fmt.Sprintf("r%d", len(f.recs)+1)
	f.recs = append(f.recs, *rec)
	return nil
}

func (f *fakeRecommendationRepo) RatingsBySolution(_ context.Context, solutionID int64) ([]int, error) {
	var ratings []int
	for _, r := range f.recs {
		if r.SolutionID == solutionID && r.EffectivenessRating != nil {
			ratings = append(ratings, *r.EffectivenessRating)
		}
	}
	return ratings, nil
}

func (f *fakeRecommendationRepo) FeedbackStats(_ context.Context, solutionID int64) ([]model.FeedbackBucket, error) {
	counts := make(map[int]int64)
	for _, r := range f.recs {
		if r.SolutionID == solutionID && r.EffectivenessRating != nil {
			counts[*r.EffectivenessRating]++
		}
	}
	var buckets []model.FeedbackBucket
	for rating, count := range counts {
		buckets = append(buckets, model.FeedbackBucket{Rating: rating, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Rating < buckets[j].Rating })
	return buckets, nil
}

func (f *fakeRecommendationRepo) CountAcceptedByUser(_ context.Context, userID int64) (int64, error) {
	var n int64
	for _, r := range f.recs {
		if r.UserID == userID && r.IsAccepted {
			n++
		}
	}
	return n, nil
}

func (f *fakeRecommendationRepo) UsageBySolution(_ context.Context, userID int64) (map[int64]int64, error) {
	usage := make(map[int64]int64)
	for _, r := range f.recs {
		if r.UserID == userID {
			usage[r.SolutionID]++
		}
	}
	return usage, nil
}

type fakeCatalogCache struct {
	questions  []model.Question
	categories []model.EmotionCategory
}

func (f *fakeCatalogCache) GetQuestions(_ context.Context) ([]model.Question, error) {
	return f.questions, nil
}

func (f *fakeCatalogCache) SetQuestions(_ context.Context, questions []model.Question) error {
	f.questions = questions
	return nil
}

func (f *fakeCatalogCache) GetEmotionCategories(_ context.Context) ([]model.EmotionCategory, error) {
	return f.categories, nil
}

func (f *fakeCatalogCache) SetEmotionCategories(_ context.Context, categories []model.EmotionCategory) error {
	f.categories = categories
	return nil
}

func (f *fakeCatalogCache) Invalidate(_ context.Context) error {
	f.questions = nil
	f.categories = nil
	return nil
}

type fakeStatsCache struct {
	stats map[string]*model.EmotionStats
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{stats: make(map[string]*model.EmotionStats)}
}

func (f *fakeStatsCache) GetEmotionStats(_ context.Context, timeRange string) (*model.EmotionStats, error) {
	return f.stats[timeRange], nil
}

func (f *fakeStatsCache) SetEmotionStats(_ context.Context, stats *model.EmotionStats) error {
	f.stats[stats.TimeRange] = stats
	return nil
}

type fakeUsageCache struct {
	counts map[int64]int64
}

func newFakeUsageCache() *fakeUsageCache {
	return &fakeUsageCache{counts: make(map[int64]int64)}
}

func (f *fakeUsageCache) IncrementUsage(_ context.Context, solutionID int64) error {
	f.counts[solutionID]++
	return nil
}

func (f *fakeUsageCache) GetTop(_ context.Context, limit int) ([]cache.UsageEntry, error) {
	var entries []cache.UsageEntry
	for id, count := range f.counts {
		entries = append(entries, cache.UsageEntry{SolutionID: id, UsageCount: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UsageCount != entries[j].UsageCount {
			return entries[i].UsageCount > entries[j].UsageCount
		}
		return entries[i].SolutionID < entries[j].SolutionID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (f *fakeUsageCache) GetRank(_ context.Context, solutionID int64) (int64, error) {
	entries, _ := f.GetTop(context.Background(), len(f.counts))
	for _, e := range entries {
		if e.SolutionID == solutionID {
			return int64(e.Rank), nil
		}
	}
	return -1, nil
}

type fakeBroadcaster struct {
	events []string
}

func (f *fakeBroadcaster) Broadcast(msgType string, _ interface{}) {
	f.events = append(f.events, msgType)
}
