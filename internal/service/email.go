// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coldpitch/coldpitch/internal/metrics"
	"github.com/coldpitch/coldpitch/internal/model"
	"github.com/coldpitch/coldpitch/internal/prompt"
	"github.com/coldpitch/coldpitch/internal/store"
)

// Service errors.
var (
	ErrInsufficientCredits = errors.New("no credits left")
	ErrGenerationFailed    = errors.New("AI generation failed")
)

// ModeWebsite selects enrichment-based prospect info.
const ModeWebsite = "website"

// Provider produces free-form text for a prompt. Exactly one request per
// call; implementations do not retry.
type Provider interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// Enricher summarizes a prospect web page. It degrades internally and
// never fails.
type Enricher interface {
	Summarize(ctx context.Context, pageURL string) string
}

// EmailService orchestrates one generation request: credit check,
// optional enrichment, prompt composition, the provider call, output
// parsing and the debit.
type EmailService struct {
	store    store.UserStore
	provider Provider
	enricher Enricher
	metrics  metrics.Recorder
}

// NewEmailService creates an EmailService.
func NewEmailService(userStore store.UserStore, provider Provider, enricher Enricher, recorder metrics.Recorder) *EmailService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &EmailService{
		store:    userStore,
		provider: provider,
		enricher: enricher,
		metrics:  recorder,
	}
}

// GenerateEmailInput defines one generation request. An empty Email is an
// anonymous guest: never persisted, never debited.
type GenerateEmailInput struct {
	Email      string
	Mode       string
	EmailType  string
	Offer      string
	WebsiteURL string
	Name       string
	Company    string
	Role       string
	Context    string
}

// GenerateEmailOutput is the parsed result plus the balance to report.
type GenerateEmailOutput struct {
	Subject          string
	Body             string
	CreditsRemaining int
}

// GenerateEmail runs the generation pipeline. Credits are charged on call
// success only: a provider failure costs nothing, while output that needs
// the parse fallbacks still consumes a credit.
func (s *EmailService) GenerateEmail(ctx context.Context, input GenerateEmailInput) (*GenerateEmailOutput, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveGenerationDuration(time.Since(start))
	}()

	guest := input.Email == ""

	var user *model.User
	if guest {
		user = model.DefaultUser("guest")
	} else {
		var err error
		user, err = s.store.Get(ctx, input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
	}

	// Reject before any cost is incurred: no enrichment, no provider call.
	if user.Plan.IsFree() && user.Credits <= 0 {
		s.metrics.IncInsufficientCredits()
		return nil, ErrInsufficientCredits
	}

	prospectInfo := s.prospectInfo(ctx, input)
	promptText := prompt.Compose(prospectInfo, input.Offer, input.EmailType)

	raw, err := s.provider.Generate(ctx, promptText)
	if err != nil {
		s.metrics.IncGenerationFailed()
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, err)
	}

	parsed := prompt.ParseOutput(raw)

	creditsRemaining := model.UnlimitedCredits
	if user.Plan.IsFree() {
		if guest {
			creditsRemaining = user.Credits - 1
		} else {
			debited, err := s.store.Debit(ctx, input.Email)
			if errors.Is(err, store.ErrNoCredits) {
				// A concurrent request spent the last credit between our
				// check and the debit. The balance stays at zero.
				s.metrics.IncInsufficientCredits()
				return nil, ErrInsufficientCredits
			}
			if err != nil {
				return nil, fmt.Errorf("failed to debit credits: %w", err)
			}
			s.metrics.IncCreditsDebited()
			creditsRemaining = debited.Credits
		}
	}

	s.metrics.IncEmailGenerated()

	return &GenerateEmailOutput{
		Subject:          parsed.Subject,
		Body:             parsed.Body,
		CreditsRemaining: creditsRemaining,
	}, nil
}

// GetUser returns the entitlement record for an email, defaulting for
// unknown users.
func (s *EmailService) GetUser(ctx context.Context, email string) (*model.User, error) {
	return s.store.Get(ctx, email)
}

// prospectInfo builds the prospect block, via enrichment for website mode
// and from the supplied fields otherwise.
func (s *EmailService) prospectInfo(ctx context.Context, input GenerateEmailInput) string {
	if input.Mode == ModeWebsite && input.WebsiteURL != "" {
		return s.enricher.Summarize(ctx, input.WebsiteURL)
	}
	return prompt.ProspectBlock(input.Name, input.Company, input.Role, input.Context)
}
