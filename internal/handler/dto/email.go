// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/coldpitch/coldpitch/internal/model"
)

// GenerateEmailRequest represents the request body for generating an email.
type GenerateEmailRequest struct {
	Mode       string `json:"mode,omitempty"`
	EmailType  string `json:"emailType,omitempty"`
	YourValue  string `json:"yourValue"`
	WebsiteURL string `json:"websiteUrl,omitempty"`
	Name       string `json:"name,omitempty"`
	Company    string `json:"company,omitempty"`
	Role       string `json:"role,omitempty"`
	Context    string `json:"context,omitempty"`
	Email      string `json:"email,omitempty"`
}

// GenerateEmailResponse represents a successful generation.
type GenerateEmailResponse struct {
	Success          bool   `json:"success"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	CreditsRemaining int    `json:"creditsRemaining"`
}

// UserResponse wraps an entitlement record.
type UserResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

// ErrorResponse represents a failed operation. The wire format uses
// "error" for most failures and "message" for payment verification.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
