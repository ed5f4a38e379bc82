package models

// Inquiry types accepted on the public contact form.
const (
	InquiryGeneral       = "general"
	InquiryMembership    = "membership"
	InquirySponsorship   = "sponsorship"
	InquiryCollaboration = "collaboration"
)

// Message statuses.
const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

// ContactMessage is one inquiry submitted through the public site.
// Only Status and Replied change after creation.
type ContactMessage struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	InquiryType string `json:"inquiryType"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"` // ISO-8601, set at creation
	Status      string `json:"status"`
	Replied     bool   `json:"replied"`
}

// ValidInquiryType reports whether t is one of the accepted inquiry types.
func ValidInquiryType(t string) bool {
	switch t {
	case InquiryGeneral, InquiryMembership, InquirySponsorship, InquiryCollaboration:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known message status.
func ValidStatus(s string) bool {
	return s == StatusUnread || s == StatusRead
}
