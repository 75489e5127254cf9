package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coldpitch/coldpitch/internal/handler/dto"
	"github.com/coldpitch/coldpitch/internal/service"
)

// UserHandler serves entitlement lookups.
type UserHandler struct {
	svc    *service.EmailService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.EmailService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Get handles GET /api/user/{email}. Unknown emails get the default
// free record; this endpoint never 404s.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Email is required"})
		return
	}

	user, err := h.svc.GetUser(r.Context(), email)
	if err != nil {
		h.logger.Error("user lookup failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, dto.UserResponse{
		Success: true,
		User:    user,
	})
}
