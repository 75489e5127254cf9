// Package model defines domain entities for the application.
package model

import "time"

// Plan represents a subscription tier.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
)

const (
	// DefaultFreeCredits is the balance assumed for users that have never
	// been persisted.
	DefaultFreeCredits = 5

	// StarterCredits is the grant for a verified starter payment.
	StarterCredits = 100

	// PaidCredits is the grant for any other paid plan name. Unrecognized
	// plan strings deliberately fall into this bucket.
	PaidCredits = 500

	// UnlimitedCredits is the sentinel reported for paid plans instead of
	// a tracked balance.
	UnlimitedCredits = 999
)

// IsFree reports whether the plan tracks a credit balance.
func (p Plan) IsFree() bool {
	return p == PlanFree || p == ""
}

// CreditGrant returns the credit balance granted when a payment for the
// named plan is verified. Every non-starter plan name grants the larger
// bucket.
func CreditGrant(plan string) int {
	if Plan(plan) == PlanStarter {
		return StarterCredits
	}
	return PaidCredits
}

// User is one entitlement record, keyed by email.
type User struct {
	Email       string     `json:"email"`
	Plan        Plan       `json:"plan"`
	Credits     int        `json:"credits"`
	LastPayment *time.Time `json:"lastPayment,omitempty"`
}

// DefaultUser returns the record assumed for an email that has never been
// written: free plan with the starting credit balance.
func DefaultUser(email string) *User {
	return &User{
		Email:   email,
		Plan:    PlanFree,
		Credits: DefaultFreeCredits,
	}
}

// CreditsRemaining returns the balance to report to clients: the tracked
// count for free users, the unlimited sentinel for paid plans.
func (u *User) CreditsRemaining() int {
	if u.Plan.IsFree() {
		return u.Credits
	}
	return UnlimitedCredits
}
