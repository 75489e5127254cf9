package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coldpitch/coldpitch/internal/handler/dto"
	"github.com/coldpitch/coldpitch/internal/service"
)

// EmailHandler handles HTTP requests for email generation.
type EmailHandler struct {
	svc    *service.EmailService
	logger *slog.Logger
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(svc *service.EmailService, logger *slog.Logger) *EmailHandler {
	return &EmailHandler{
		svc:    svc,
		logger: logger,
	}
}

// Generate handles POST /api/generate-email.
//
// Insufficient credits is reported as 200 with success:false, matching
// what the checkout widget expects. Provider failures are 500.
func (h *EmailHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	out, err := h.svc.GenerateEmail(r.Context(), service.GenerateEmailInput{
		Email:      req.Email,
		Mode:       req.Mode,
		EmailType:  req.EmailType,
		Offer:      req.YourValue,
		WebsiteURL: req.WebsiteURL,
		Name:       req.Name,
		Company:    req.Company,
		Role:       req.Role,
		Context:    req.Context,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInsufficientCredits):
			writeJSON(w, http.StatusOK, dto.ErrorResponse{Error: "No credits left. Please upgrade!"})
		case errors.Is(err, service.ErrGenerationFailed):
			h.logger.Error("generation failed",
				"error", err.Error(),
				"mode", req.Mode,
				"email_type", req.EmailType,
			)
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		default:
			h.logger.Error("generation error", "error", err.Error())
			writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	h.logger.Info("email_generated",
		"mode", req.Mode,
		"email_type", req.EmailType,
		"identified", req.Email != "",
	)

	writeJSON(w, http.StatusOK, dto.GenerateEmailResponse{
		Success:          true,
		Subject:          out.Subject,
		Body:             out.Body,
		CreditsRemaining: out.CreditsRemaining,
	})
}
