package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/coldpitch/coldpitch/internal/gateway"
	"github.com/coldpitch/coldpitch/internal/metrics"
	"github.com/coldpitch/coldpitch/internal/model"
	"github.com/coldpitch/coldpitch/internal/store"
)

// OrderCreator creates orders at the payment gateway.
type OrderCreator interface {
	CreateOrder(ctx context.Context, input gateway.CreateOrderInput) (*gateway.Order, error)
	KeyID() string
}

// BillingService creates gateway orders and upgrades entitlement once a
// completed payment's signature verifies.
type BillingService struct {
	store    store.UserStore
	gateway  OrderCreator
	secret   string
	currency string
	metrics  metrics.Recorder
	now      func() time.Time
}

// NewBillingService creates a BillingService. The secret is the gateway
// key secret shared for signature verification.
func NewBillingService(userStore store.UserStore, orderGateway OrderCreator, secret, currency string, recorder metrics.Recorder) *BillingService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if currency == "" {
		currency = "INR"
	}
	return &BillingService{
		store:    userStore,
		gateway:  orderGateway,
		secret:   secret,
		currency: currency,
		metrics:  recorder,
		now:      time.Now,
	}
}

// CreateOrderInput describes an order request. Amount is in whole
// currency units; the gateway wants the smallest unit.
type CreateOrderInput struct {
	Amount int64
	Plan   string
	Email  string
}

// CreateOrderOutput carries what the checkout page needs.
type CreateOrderOutput struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
}

// CreateOrder creates a transient order at the gateway. Creating an order
// grants nothing; entitlement changes only on verification.
func (s *BillingService) CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error) {
	order, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderInput{
		Amount:   input.Amount * 100,
		Currency: s.currency,
		Receipt:  "rcpt_" + ulid.Make().String(),
		Notes: map[string]string{
			"email": input.Email,
			"plan":  input.Plan,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.metrics.IncOrderCreated()

	return &CreateOrderOutput{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
	}, nil
}

// VerifyPaymentInput carries the gateway's completed-checkout identifiers.
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	Email     string
	Plan      string
}

// VerifyPaymentOutput is the granted entitlement.
type VerifyPaymentOutput struct {
	Plan    string
	Credits int
}

// VerifyPayment recomputes the expected signature and, on match, grants
// the plan and its credit bucket. The grant overwrites any prior balance;
// a second verification does not accumulate. On mismatch nothing is
// mutated and gateway.ErrInvalidSignature is returned.
func (s *BillingService) VerifyPayment(ctx context.Context, input VerifyPaymentInput) (*VerifyPaymentOutput, error) {
	if err := gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature, s.secret); err != nil {
		s.metrics.IncPaymentRejected()
		return nil, err
	}

	plan := model.Plan(input.Plan)
	credits := model.CreditGrant(input.Plan)
	paidAt := s.now().UTC()

	if _, err := s.store.Update(ctx, input.Email, store.UserPatch{
		Plan:        &plan,
		Credits:     &credits,
		LastPayment: &paidAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to grant entitlement: %w", err)
	}

	s.metrics.IncPaymentVerified()

	return &VerifyPaymentOutput{
		Plan:    input.Plan,
		Credits: credits,
	}, nil
}
