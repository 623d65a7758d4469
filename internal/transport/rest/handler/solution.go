package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"moodwellness/internal/model"
	"moodwellness/internal/repository"
	"moodwellness/internal/service"
)

// SolutionHandler handles recommendation and solution catalog endpoints
type SolutionHandler struct {
	solutionSvc *service.SolutionService
}

// NewSolutionHandler creates a new solution handler
func NewSolutionHandler(solutionSvc *service.SolutionService) *SolutionHandler {
	return &SolutionHandler{solutionSvc: solutionSvc}
}

// Recommendations handles POST /v1/solution/recommendations
func (h *SolutionHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var req model.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EmotionID <= 0 {
		writeError(w, http.StatusBadRequest, "emotion_id is required")
		return
	}

	ranked, err := h.solutionSvc.Recommendations(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to rank recommendations")
		return
	}
	writeJSON(w, http.StatusOK, ranked)
}

// Usage handles POST /v1/solution/usage
func (h *SolutionHandler) Usage(w http.ResponseWriter, r *http.Request) {
	var req model.UsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SolutionID <= 0 {
		writeError(w, http.StatusBadRequest, "solution_id is required")
		return
	}
	if req.EffectivenessRating != nil {
		if rating := *req.EffectivenessRating; rating < 1 || rating > 5 {
			writeError(w, http.StatusBadRequest, "effectiveness_rating must be between 1 and 5")
			return
		}
	}

	rec, err := h.solutionSvc.RecordUsage(r.Context(), &req)
	if errors.Is(err, service.ErrSolutionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to record usage")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Types handles GET /v1/solution/types
func (h *SolutionHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.solutionSvc.Types(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load solution types")
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// ByType handles GET /v1/solution/by-type/{typeId}
func (h *SolutionHandler) ByType(w http.ResponseWriter, r *http.Request) {
	typeID, err := strconv.ParseInt(mux.Vars(r)["typeId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid type id")
		return
	}

	filter := repository.SolutionFilter{}
	if v := r.URL.Query().Get("difficulty"); v != "" {
		filter.Difficulty, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("duration"); v != "" {
		filter.MaxDuration, _ = strconv.Atoi(v)
	}

	solutions, err := h.solutionSvc.ByType(r.Context(), typeID, filter)
	if errors.Is(err, service.ErrSolutionTypeNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load solutions")
		return
	}
	writeJSON(w, http.StatusOK, solutions)
}

// Popular handles GET /v1/solution/popular
func (h *SolutionHandler) Popular(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	popular, err := h.solutionSvc.Popular(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load popular solutions")
		return
	}
	writeJSON(w, http.StatusOK, popular)
}

// Detail handles GET /v1/solution/{solutionId}
func (h *SolutionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	solutionID, err := strconv.ParseInt(mux.Vars(r)["solutionId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid solution id")
		return
	}

	detail, err := h.solutionSvc.Detail(r.Context(), solutionID)
	if errors.Is(err, service.ErrSolutionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load solution")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
