package service

import (
	"context"
	"fmt"
	"time"

	"moodwellness/internal/cache"
	"moodwellness/internal/model"
	"moodwellness/internal/repository"
	"moodwellness/internal/scoring"
)

// AssessmentService handles the questionnaire flow: catalog reads, scored
// submissions and history.
type AssessmentService struct {
	questionRepo   repository.QuestionRepo
	emotionRepo    repository.EmotionRepo
	assessmentRepo repository.AssessmentRepo
	voiceRepo      repository.VoiceRepo
	userRepo       repository.UserRepo
	catalogCache   cache.CatalogCache
	engine         *scoring.Engine
	voice          *scoring.VoiceClassifier
	broadcaster    Broadcaster
}

// NewAssessmentService creates a new assessment service
func NewAssessmentService(
	questionRepo repository.QuestionRepo,
	emotionRepo repository.EmotionRepo,
	assessmentRepo repository.AssessmentRepo,
	voiceRepo repository.VoiceRepo,
	userRepo repository.UserRepo,
	catalogCache cache.CatalogCache,
	engine *scoring.Engine,
	voice *scoring.VoiceClassifier,
) *AssessmentService {
	return &AssessmentService{
		questionRepo:   questionRepo,
		emotionRepo:    emotionRepo,
		assessmentRepo: assessmentRepo,
		voiceRepo:      voiceRepo,
		userRepo:       userRepo,
		catalogCache:   catalogCache,
		engine:         engine,
		voice:          voice,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AssessmentService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// GetQuestions returns the active question catalog, cache-first
func (s *AssessmentService) GetQuestions(ctx context.Context) ([]model.Question, error) {
	questions, err := s.catalogCache.GetQuestions(ctx)
	if err == nil && questions != nil {
		return questions, nil
	}

	questions, err = s.questionRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	_ = s.catalogCache.SetQuestions(ctx, questions)
	return questions, nil
}

// Tags returns the emotion tag catalog grouped by category, ordered by
// category then strongest intensity first. Tags pointing at a category
// missing from the catalog are skipped.
func (s *AssessmentService) Tags(ctx context.Context) ([]model.TagGroup, error) {
	tags, err := s.emotionRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotion tags: %w", err)
	}
	categories, err := s.emotionCategories(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.EmotionCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	var groups []model.TagGroup
	index := make(map[int64]int)
	for _, tag := range tags {
		gi, ok := index[tag.CategoryID]
		if !ok {
			cat := byID[tag.CategoryID]
			if cat == nil {
				continue
			}
			groups = append(groups, model.TagGroup{Category: model.TagGroupCategory{
				Name:      cat.Name,
				NameZh:    cat.NameZh,
				ColorCode: cat.ColorCode,
			}})
			gi = len(groups) - 1
			index[tag.CategoryID] = gi
		}
		groups[gi].Tags = append(groups[gi].Tags, model.TagEntry{
			ID:        tag.ID,
			Name:      tag.DisplayName(),
			Intensity: tag.IntensityLevel,
		})
	}
	return groups, nil
}

// Submit scores a questionnaire submission. Submissions with a user id are
// persisted and announced on the live feed; anonymous ones are analyzed only.
func (s *AssessmentService) Submit(ctx context.Context, req *model.SubmitAssessmentRequest) (*model.AssessmentResult, error) {
	questions, err := s.GetQuestions(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := s.emotionCatalog(ctx)
	if err != nil {
		return nil, err
	}

	assessmentType := req.AssessmentType
	if assessmentType == "" {
		assessmentType = model.AssessmentQuick
	}

	analysis := s.engine.Analyze(scoring.AnalyzeInput{
		Questions: questions,
		Responses: req.Responses,
		Metadata:  req.Metadata,
		Strategy:  strategyFromString(req.Strategy),
		Type:      assessmentType,
		Catalog:   catalog,
	})

	result := &model.AssessmentResult{Analysis: analysis}
	if req.UserID <= 0 {
		return result, nil
	}

	if err := s.userRepo.EnsureExists(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}
	assessment := &model.Assessment{
		UserID:           req.UserID,
		AssessmentType:   assessmentType,
		Responses:        req.Responses,
		EmotionScores:    analysis.EmotionScores,
		PrimaryEmotion:   analysis.PrimaryEmotion,
		SecondaryEmotion: analysis.SecondaryEmotion,
		IntensityLevel:   analysis.IntensityLevel,
		ConfidenceScore:  analysis.ConfidenceScore,
	}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}
	result.AssessmentID = assessment.ID

	if s.broadcaster != nil {
		s.broadcaster.Broadcast("assessment_completed", map[string]interface{}{
			"assessment_id":   assessment.ID,
			"user_id":         assessment.UserID,
			"primary_emotion": analysis.PrimaryEmotion,
			"intensity_level": analysis.IntensityLevel,
			"timestamp":       time.Now().Unix(),
		})
	}
	return result, nil
}

// AnalyzeVoice classifies a transcript. Records for known users are persisted.
func (s *AssessmentService) AnalyzeVoice(ctx context.Context, req *model.VoiceAnalysisRequest) (*model.VoiceAnalysis, error) {
	analysis := s.voice.Classify(req.Transcription)

	if req.UserID > 0 {
		if err := s.userRepo.EnsureExists(ctx, req.UserID); err != nil {
			return nil, fmt.Errorf("failed to ensure user: %w", err)
		}
		record := &model.VoiceRecord{
			UserID:           req.UserID,
			Transcription:    req.Transcription,
			Analysis:         analysis,
			ProcessingStatus: "completed",
		}
		if err := s.voiceRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save voice record: %w", err)
		}
	}
	return analysis, nil
}

// History returns a user's assessments newest first, joined with the emotion
// category catalog.
func (s *AssessmentService) History(ctx context.Context, userID int64, limit, offset int) ([]model.AssessmentHistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	assessments, err := s.assessmentRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	categories, err := s.emotionCategories(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.EmotionCategory, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}

	entries := make([]model.AssessmentHistoryEntry, len(assessments))
	for i, a := range assessments {
		entry := model.AssessmentHistoryEntry{Assessment: a}
		entry.PrimaryEmotionCategory = byID[a.PrimaryEmotion]
		if a.SecondaryEmotion != nil {
			entry.SecondaryEmotionCategory = byID[*a.SecondaryEmotion]
		}
		entries[i] = entry
	}
	return entries, nil
}

func (s *AssessmentService) emotionCategories(ctx context.Context) ([]model.EmotionCategory, error) {
	categories, err := s.catalogCache.GetEmotionCategories(ctx)
	if err == nil && categories != nil {
		return categories, nil
	}

	categories, err = s.emotionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotion categories: %w", err)
	}
	tags, err := s.emotionRepo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load emotion tags: %w", err)
	}
	attachEmotionTags(categories, tags)
	_ = s.catalogCache.SetEmotionCategories(ctx, categories)
	return categories, nil
}

func (s *AssessmentService) emotionCatalog(ctx context.Context) (scoring.EmotionCatalog, error) {
	categories, err := s.emotionCategories(ctx)
	if err != nil {
		return scoring.EmotionCatalog{}, err
	}
	return scoring.NewEmotionCatalog(categories), nil
}

func strategyFromString(raw string) scoring.Strategy {
	s := scoring.Strategy(raw)
	if s.Valid() {
		return s
	}
	return scoring.StrategyEnhanced
}
