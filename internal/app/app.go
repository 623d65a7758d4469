package app

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"moodwellness/internal/cache"
	"moodwellness/internal/repository"
)

// App bundles the storage layer shared by the server and the seed command
type App struct {
	QuestionRepo       repository.QuestionRepo
	EmotionRepo        repository.EmotionRepo
	SolutionRepo       repository.SolutionRepo
	AssessmentRepo     repository.AssessmentRepo
	RecommendationRepo repository.RecommendationRepo
	UserRepo           repository.UserRepo
	VoiceRepo          repository.VoiceRepo

	CatalogCache cache.CatalogCache
	StatsCache   cache.StatsCache
	UsageCache   cache.UsageCache
}

// New wires repositories and caches over live connections
func New(db *mongo.Database, rdb *redis.Client) *App {
	return &App{
		QuestionRepo:       repository.NewQuestionRepo(db),
		EmotionRepo:        repository.NewEmotionRepo(db),
		SolutionRepo:       repository.NewSolutionRepo(db),
		AssessmentRepo:     repository.NewAssessmentRepo(db),
		RecommendationRepo: repository.NewRecommendationRepo(db),
		UserRepo:           repository.NewUserRepo(db),
		VoiceRepo:          repository.NewVoiceRepo(db),

		CatalogCache: cache.NewCatalogCache(rdb),
		StatsCache:   cache.NewStatsCache(rdb),
		UsageCache:   cache.NewUsageCache(rdb),
	}
}
