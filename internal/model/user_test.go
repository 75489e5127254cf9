package model

import "testing"

func TestDefaultUser(t *testing.T) {
	u := DefaultUser("new@example.com")

	if u.Plan != PlanFree {
		t.Errorf("expected free plan, got %s", u.Plan)
	}
	if u.Credits != DefaultFreeCredits {
		t.Errorf("expected %d credits, got %d", DefaultFreeCredits, u.Credits)
	}
	if u.LastPayment != nil {
		t.Error("expected no last payment on default record")
	}
}

func TestCreditGrant(t *testing.T) {
	tests := []struct {
		plan string
		want int
	}{
		{"starter", 100},
		{"pro", 500},
		{"enterprise", 500},
		{"startre", 500}, // typos get the catch-all grant too
		{"", 500},
	}

	for _, tt := range tests {
		if got := CreditGrant(tt.plan); got != tt.want {
			t.Errorf("CreditGrant(%q) = %d, want %d", tt.plan, got, tt.want)
		}
	}
}

func TestUser_CreditsRemaining(t *testing.T) {
	free := &User{Plan: PlanFree, Credits: 3}
	if got := free.CreditsRemaining(); got != 3 {
		t.Errorf("free plan: expected 3, got %d", got)
	}

	paid := &User{Plan: PlanStarter, Credits: 100}
	if got := paid.CreditsRemaining(); got != UnlimitedCredits {
		t.Errorf("paid plan: expected sentinel %d, got %d", UnlimitedCredits, got)
	}

	other := &User{Plan: Plan("pro"), Credits: 1}
	if got := other.CreditsRemaining(); got != UnlimitedCredits {
		t.Errorf("other paid plan: expected sentinel %d, got %d", UnlimitedCredits, got)
	}
}
