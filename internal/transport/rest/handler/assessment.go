package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"moodwellness/internal/model"
	"moodwellness/internal/service"
	"moodwellness/internal/transport/rest/middleware"
)

// AssessmentHandler handles the questionnaire endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessmentSvc: assessmentSvc}
}

// GetQuestions handles GET /v1/assessment/questions
func (h *AssessmentHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.assessmentSvc.GetQuestions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// Tags handles GET /v1/assessment/tags
func (h *AssessmentHandler) Tags(w http.ResponseWriter, r *http.Request) {
	groups, err := h.assessmentSvc.Tags(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load emotion tags")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// Submit handles POST /v1/assessment/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Responses == nil {
		writeError(w, http.StatusBadRequest, "responses are required")
		return
	}

	result, err := h.assessmentSvc.Submit(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to analyze assessment")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AnalyzeVoice handles POST /v1/assessment/voice-analysis
func (h *AssessmentHandler) AnalyzeVoice(w http.ResponseWriter, r *http.Request) {
	var req model.VoiceAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Transcription) == "" {
		writeError(w, http.StatusBadRequest, "transcription is required")
		return
	}

	analysis, err := h.assessmentSvc.AnalyzeVoice(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to analyze transcription")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// History handles GET /v1/assessment/history/{userId}
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if middleware.GetUserID(r.Context()) != userID {
		writeError(w, http.StatusForbidden, "cannot access another user's history")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	entries, err := h.assessmentSvc.History(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
