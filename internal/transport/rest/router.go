package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"moodwellness/internal/service"
	"moodwellness/internal/transport/rest/handler"
	"moodwellness/internal/transport/rest/middleware"
	"moodwellness/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	AssessmentService *service.AssessmentService
	EmotionService    *service.EmotionService
	SolutionService   *service.SolutionService
	UserService       *service.UserService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	emotionHandler := handler.NewEmotionHandler(c.EmotionService)
	solutionHandler := handler.NewSolutionHandler(c.SolutionService)
	userHandler := handler.NewUserHandler(c.UserService)
	wsHandler := ws.NewHandler(c.WSHub)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/register", authHandler.Register).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	v1.HandleFunc("/assessment/questions", assessmentHandler.GetQuestions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessment/tags", assessmentHandler.Tags).Methods("GET", "OPTIONS")
	v1.HandleFunc("/assessment/submit", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessment/voice-analysis", assessmentHandler.AnalyzeVoice).Methods("POST", "OPTIONS")

	v1.HandleFunc("/emotion/categories", emotionHandler.Categories).Methods("GET", "OPTIONS")
	v1.HandleFunc("/emotion/stats", emotionHandler.Stats).Methods("GET", "OPTIONS")

	v1.HandleFunc("/solution/recommendations", solutionHandler.Recommendations).Methods("POST", "OPTIONS")
	v1.HandleFunc("/solution/usage", solutionHandler.Usage).Methods("POST", "OPTIONS")
	v1.HandleFunc("/solution/types", solutionHandler.Types).Methods("GET", "OPTIONS")
	v1.HandleFunc("/solution/by-type/{typeId:[0-9]+}", solutionHandler.ByType).Methods("GET", "OPTIONS")
	v1.HandleFunc("/solution/popular", solutionHandler.Popular).Methods("GET", "OPTIONS")
	v1.HandleFunc("/solution/{solutionId:[0-9]+}", solutionHandler.Detail).Methods("GET", "OPTIONS")

	// WebSocket live feed (public)
	v1.HandleFunc("/ws/live", wsHandler.LiveFeed).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Authenticated routes (require user token)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/assessment/history/{userId:[0-9]+}", assessmentHandler.History).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/user/{userId:[0-9]+}/stats", userHandler.Stats).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
