package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coldpitch/coldpitch/internal/gateway"
	"github.com/coldpitch/coldpitch/internal/handler/dto"
	"github.com/coldpitch/coldpitch/internal/service"
)

// BillingHandler handles HTTP requests for orders and payment verification.
type BillingHandler struct {
	svc    *service.BillingService
	logger *slog.Logger
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(svc *service.BillingService, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		svc:    svc,
		logger: logger,
	}
}

// CreateOrder handles POST /api/create-order.
func (h *BillingHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	out, err := h.svc.CreateOrder(r.Context(), service.CreateOrderInput{
		Amount: req.Amount,
		Plan:   req.Plan,
		Email:  req.Email,
	})
	if err != nil {
		h.logger.Error("order creation failed",
			"error", err.Error(),
			"plan", req.Plan,
		)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Info("order_created",
		"order_id", out.OrderID,
		"plan", req.Plan,
		"amount", out.Amount,
	)

	writeJSON(w, http.StatusOK, dto.CreateOrderResponse{
		Success:       true,
		OrderID:       out.OrderID,
		Amount:        out.Amount,
		Currency:      out.Currency,
		RazorpayKeyID: out.KeyID,
	})
}

// VerifyPayment handles POST /api/verify-payment.
//
// A signature mismatch is 400 with the exact message the checkout widget
// matches on; nothing is granted in that case.
func (h *BillingHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	out, err := h.svc.VerifyPayment(r.Context(), service.VerifyPaymentInput{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		Email:     req.Email,
		Plan:      req.Plan,
	})
	if err != nil {
		if errors.Is(err, gateway.ErrInvalidSignature) {
			h.logger.Warn("payment signature rejected",
				"order_id", req.RazorpayOrderID,
				"payment_id", req.RazorpayPaymentID,
			)
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid signature"})
			return
		}
		h.logger.Error("payment verification failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Info("payment_verified",
		"order_id", req.RazorpayOrderID,
		"plan", out.Plan,
		"credits", out.Credits,
	)

	writeJSON(w, http.StatusOK, dto.VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified!",
		Plan:    out.Plan,
		Credits: out.Credits,
	})
}
