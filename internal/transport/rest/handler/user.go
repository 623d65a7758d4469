package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"moodwellness/internal/service"
	"moodwellness/internal/transport/rest/middleware"
)

// UserHandler handles per-user endpoints
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Stats handles GET /v1/user/{userId}/stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if middleware.GetUserID(r.Context()) != userID {
		writeError(w, http.StatusForbidden, "cannot access another user's stats")
		return
	}

	stats, err := h.userSvc.Stats(r.Context(), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
