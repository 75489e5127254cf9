// Package prompt builds generation prompts and parses the structured
// output the provider is asked to return.
package prompt

import (
	"fmt"
	"strings"
)

// EmailType selects the outreach style embedded in the prompt.
type EmailType string

const (
	TypeFirstOutreach  EmailType = "first-outreach"
	TypeFollowUp       EmailType = "follow-up"
	TypeMeetingRequest EmailType = "meeting-request"
	TypeValuePitch     EmailType = "value-pitch"
)

// typeInstructions maps each email type to the instruction line embedded
// in the prompt.
var typeInstructions = map[EmailType]string{
	TypeFirstOutreach:  "First cold outreach - warm, brief, focus on one specific pain point, end with a soft ask (not pushing for immediate meeting).",
	TypeFollowUp:       "Follow-up to previous email - add new value, reference previous contact subtly, stronger CTA.",
	TypeMeetingRequest: "Request a meeting - show clear ROI, suggest specific short time (15 min), make it easy to say yes.",
	TypeValuePitch:     "Value proposition pitch - include a specific result/metric, explain ROI clearly, create mild urgency.",
}

// Instruction returns the instruction line for the email type. Unknown
// types fall back to first outreach.
func Instruction(emailType string) string {
	if instr, ok := typeInstructions[EmailType(emailType)]; ok {
		return instr
	}
	return typeInstructions[TypeFirstOutreach]
}

// ProspectBlock builds the prospect info section from manually supplied
// fields. Absent fields render as "Unknown"; free-text context is
// appended only when present.
func ProspectBlock(name, company, role, context string) string {
	if name == "" {
		name = "Unknown"
	}
	if company == "" {
		company = "Unknown"
	}
	if role == "" {
		role = "Unknown"
	}

	block := fmt.Sprintf("Name: %s\nCompany: %s\nRole: %s", name, company, role)
	if context != "" {
		block += "\nExtra Info: " + context
	}
	return block
}

// Compose builds the full generation prompt. It is pure: the same inputs
// always produce the same prompt.
func Compose(prospectInfo, offer, emailType string) string {
	var b strings.Builder

	b.WriteString("You are a world-class cold email copywriter. Write a highly personalized cold email.\n\n")
	b.WriteString("PROSPECT INFO:\n")
	b.WriteString(prospectInfo)
	b.WriteString("\n\nWHAT THE SENDER OFFERS:\n")
	b.WriteString(offer)
	b.WriteString("\n\nEMAIL TYPE: ")
	b.WriteString(Instruction(emailType))
	b.WriteString("\n\nSTRICT REQUIREMENTS:\n")
	b.WriteString("- Subject line: max 50 characters, personalized, makes them curious\n")
	b.WriteString("- Body: MAXIMUM 100 words - short emails get more replies\n")
	b.WriteString("- First line must reference something specific about them or their company\n")
	b.WriteString("- Include ONE specific pain point relevant to their role\n")
	b.WriteString("- ONE clear value proposition (one sentence)\n")
	b.WriteString("- ONE call to action only\n")
	b.WriteString("- Sound like a real human, not a robot\n")
	b.WriteString("- NEVER start with \"I hope this email finds you well\"\n")
	b.WriteString("- NEVER say \"I wanted to reach out\"\n\n")
	b.WriteString("RESPOND IN EXACTLY THIS FORMAT:\n")
	b.WriteString("SUBJECT: [subject line]\n\n")
	b.WriteString("BODY:\n[email body]")

	return b.String()
}
