package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/app"
	"moodwellness/internal/config"
	"moodwellness/internal/scoring"
	"moodwellness/internal/service"
	"moodwellness/internal/transport/rest"
	"moodwellness/internal/transport/ws"
)

// @title Mood Wellness API
// @version 1.0
// @description Emotion assessment and coping solution recommendation service
// @host localhost:8080
// @BasePath /v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()

	ctx := context.Background()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize storage layer
	a := app.New(db, rdb)

	// Initialize scoring core
	scoringCfg := scoring.DefaultConfig()
	engine := scoring.NewEngine(scoringCfg)
	voiceClassifier := scoring.NewVoiceClassifier(scoringCfg)

	// Initialize services
	authSvc := service.NewAuthService(a.UserRepo, cfg.JWTSecret, cfg.TokenTTL)
	assessmentSvc := service.NewAssessmentService(
		a.QuestionRepo, a.EmotionRepo, a.AssessmentRepo, a.VoiceRepo, a.UserRepo,
		a.CatalogCache, engine, voiceClassifier)
	emotionSvc := service.NewEmotionService(a.EmotionRepo, a.AssessmentRepo, a.CatalogCache, a.StatsCache)
	solutionSvc := service.NewSolutionService(a.SolutionRepo, a.RecommendationRepo, a.UserRepo, a.UsageCache)
	userSvc := service.NewUserService(a.UserRepo, a.AssessmentRepo, a.RecommendationRepo, a.SolutionRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	assessmentSvc.SetBroadcaster(wsHub)
	solutionSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		EmotionService:    emotionSvc,
		SolutionService:   solutionSvc,
		UserService:       userSvc,
		WSHub:             wsHub,
	}
	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/auth/login")
		log.Println("  GET  /v1/assessment/questions")
		log.Println("  GET  /v1/assessment/tags")
		log.Println("  POST /v1/assessment/submit")
		log.Println("  POST /v1/assessment/voice-analysis")
		log.Println("  GET  /v1/assessment/history/{userId}")
		log.Println("  GET  /v1/emotion/categories")
		log.Println("  GET  /v1/emotion/stats")
		log.Println("  POST /v1/solution/recommendations")
		log.Println("  POST /v1/solution/usage")
		log.Println("  GET  /v1/solution/types")
		log.Println("  GET  /v1/solution/by-type/{typeId}")
		log.Println("  GET  /v1/solution/popular")
		log.Println("  GET  /v1/solution/{solutionId}")
		log.Println("  GET  /v1/user/{userId}/stats")
		log.Println("  WS   /v1/ws/live")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
