package prompt

import (
	"strings"
	"testing"
)

func TestProspectBlock_Defaults(t *testing.T) {
	block := ProspectBlock("", "", "", "")

	want := "Name: Unknown\nCompany: Unknown\nRole: Unknown"
	if block != want {
		t.Errorf("expected %q, got %q", want, block)
	}
}

func TestProspectBlock_WithContext(t *testing.T) {
	block := ProspectBlock("Ada", "Initech", "CTO", "met at conf")

	if !strings.Contains(block, "Name: Ada") {
		t.Errorf("missing name in %q", block)
	}
	if !strings.HasSuffix(block, "Extra Info: met at conf") {
		t.Errorf("expected context appended, got %q", block)
	}
}

func TestProspectBlock_NoContextLine(t *testing.T) {
	block := ProspectBlock("Ada", "Initech", "CTO", "")

	if strings.Contains(block, "Extra Info") {
		t.Errorf("context line must be omitted when absent: %q", block)
	}
}

func TestInstruction_UnknownTypeDefaults(t *testing.T) {
	if Instruction("carrier-pigeon") != Instruction(string(TypeFirstOutreach)) {
		t.Error("unknown email type must fall back to first outreach")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	a := Compose("Name: Ada", "We sell time machines", "follow-up")
	b := Compose("Name: Ada", "We sell time machines", "follow-up")

	if a != b {
		t.Error("expected identical prompts for identical inputs")
	}
}

func TestCompose_EmbedsSections(t *testing.T) {
	p := Compose("Name: Ada\nCompany: Initech", "We sell time machines", "meeting-request")

	for _, want := range []string{
		"PROSPECT INFO:",
		"Name: Ada",
		"WHAT THE SENDER OFFERS:",
		"We sell time machines",
		Instruction("meeting-request"),
		"SUBJECT:",
		"BODY:",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestParseOutput_WellFormed(t *testing.T) {
	raw := "SUBJECT: Your onboarding drop-off\n\nBODY:\nSaw your Q3 launch. Nice work.\n\nWorth 15 minutes?"

	out := ParseOutput(raw)
	if out.Subject != "Your onboarding drop-off" {
		t.Errorf("unexpected subject: %q", out.Subject)
	}
	if !strings.HasPrefix(out.Body, "Saw your Q3 launch.") {
		t.Errorf("unexpected body: %q", out.Body)
	}
}

func TestParseOutput_MissingMarkers(t *testing.T) {
	raw := "Here is some text the model produced without any structure.\n"

	out := ParseOutput(raw)
	if out.Subject != DefaultSubject {
		t.Errorf("expected default subject, got %q", out.Subject)
	}
	if out.Body != strings.TrimSpace(raw) {
		t.Errorf("expected raw output as body, got %q", out.Body)
	}
}

func TestParseOutput_MissingBodyOnly(t *testing.T) {
	raw := "SUBJECT: Quick one\nno body marker here"

	out := ParseOutput(raw)
	if out.Subject != "Quick one" {
		t.Errorf("unexpected subject: %q", out.Subject)
	}
	if out.Body != strings.TrimSpace(raw) {
		t.Errorf("expected raw fallback body, got %q", out.Body)
	}
}

func TestParseOutput_EmptySubjectFallsBack(t *testing.T) {
	raw := "SUBJECT:\n\nBODY:\nhello"

	out := ParseOutput(raw)
	if out.Subject != DefaultSubject {
		t.Errorf("expected default subject for empty marker, got %q", out.Subject)
	}
	if out.Body != "hello" {
		t.Errorf("unexpected body: %q", out.Body)
	}
}
