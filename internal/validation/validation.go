package validation

import (
	"regexp"
	"strings"

	"teamraw-backend/pkg/models"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput is the raw contact-form submission before sanitization.
type ContactInput struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
}

// ValidateContact checks a submission and returns every failure as a
// human-readable string. An empty slice means the input is acceptable.
func ValidateContact(in ContactInput) []string {
	var errs []string

	if strings.TrimSpace(in.FullName) == "" || len([]rune(strings.TrimSpace(in.FullName))) < 2 {
		errs = append(errs, "Full name is required and must be at least 2 characters")
	}
	if in.Email == "" || !emailRegex.MatchString(in.Email) {
		errs = append(errs, "Valid email address is required")
	}
	if !models.ValidInquiryType(in.InquiryType) {
		errs = append(errs, "Valid inquiry type is required")
	}
	if strings.TrimSpace(in.Message) == "" || len([]rune(strings.TrimSpace(in.Message))) < 10 {
		errs = append(errs, "Message is required and must be at least 10 characters")
	}

	return errs
}

var sanitizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// Sanitize neutralizes HTML metacharacters in user-supplied text and trims
// surrounding whitespace. Applied before persistence so stored messages can
// be rendered without markup injection. Idempotent.
func Sanitize(s string) string {
	return strings.TrimSpace(sanitizer.Replace(s))
}
