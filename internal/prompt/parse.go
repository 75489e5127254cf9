package prompt

import "strings"

// DefaultSubject is used when the provider output has no SUBJECT: marker.
const DefaultSubject = "Quick question"

const (
	subjectMarker = "SUBJECT:"
	bodyMarker    = "BODY:"
)

// Output is the parsed provider response.
type Output struct {
	Subject string
	Body    string
}

// ParseOutput extracts the subject line and body from raw provider text.
// A missing SUBJECT: marker falls back to DefaultSubject; a missing BODY:
// marker falls back to the whole trimmed output. Fallbacks are expected
// behavior, not errors.
func ParseOutput(raw string) Output {
	out := Output{
		Subject: DefaultSubject,
		Body:    strings.TrimSpace(raw),
	}

	if subject, ok := extractSubject(raw); ok {
		out.Subject = subject
	}
	if body, ok := extractBody(raw); ok {
		out.Body = body
	}
	return out
}

// extractSubject returns the rest of the line following the first
// SUBJECT: marker.
func extractSubject(raw string) (string, bool) {
	idx := strings.Index(raw, subjectMarker)
	if idx < 0 {
		return "", false
	}

	rest := raw[idx+len(subjectMarker):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	subject := strings.TrimSpace(rest)
	if subject == "" {
		return "", false
	}
	return subject, true
}

// extractBody returns everything after the first BODY: marker.
func extractBody(raw string) (string, bool) {
	idx := strings.Index(raw, bodyMarker)
	if idx < 0 {
		return "", false
	}

	body := strings.TrimSpace(raw[idx+len(bodyMarker):])
	if body == "" {
		return "", false
	}
	return body, true
}
