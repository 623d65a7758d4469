package handler

import (
	"net/http"

	"moodwellness/internal/service"
)

// EmotionHandler handles the emotion catalog and stats endpoints
type EmotionHandler struct {
	emotionSvc *service.EmotionService
}

// NewEmotionHandler creates a new emotion handler
func NewEmotionHandler(emotionSvc *service.EmotionService) *EmotionHandler {
	return &EmotionHandler{emotionSvc: emotionSvc}
}

// Categories handles GET /v1/emotion/categories
func (h *EmotionHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.emotionSvc.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load emotion categories")
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// Stats handles GET /v1/emotion/stats
func (h *EmotionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.emotionSvc.Stats(r.Context(), r.URL.Query().Get("timeRange"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load emotion stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
