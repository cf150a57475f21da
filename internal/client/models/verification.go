package models

import "encoding/base64"

// VerificationSubmission carries base64-encoded document images.
type VerificationSubmission struct {
	FullName    string `json:"full_name"`
	IDCardImage string `json:"id_card_image"`
	SelfieImage string `json:"selfie_image"`
}

type VerificationSubmitted struct {
	Message            string `json:"message"`
	VerificationStatus string `json:"verification_status"`
	SubmittedAt        string `json:"submitted_at"`
}

type VerificationRequestSummary struct {
	RequestID       int64  `json:"request_id"`
	FullName        string `json:"full_name"`
	Status          string `json:"status"`
	SubmittedAt     string `json:"submitted_at"`
	ReviewedAt      string `json:"reviewed_at,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

type VerificationStatus struct {
	UserID             int64                       `json:"user_id"`
	Username           string                      `json:"username"`
	Email              string                      `json:"email"`
	Role               Role                        `json:"role"`
	VerificationStatus string                      `json:"verification_status"`
	VerifiedAt         string                      `json:"verified_at,omitempty"`
	LatestRequest      *VerificationRequestSummary `json:"latest_request,omitempty"`
}

// VerificationFilter selects the admin verification queue page.
type VerificationFilter struct {
	Status string
	Page   int
	Limit  int
}

type VerificationRequest struct {
	RequestID          int64  `json:"request_id"`
	UserID             int64  `json:"user_id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	ProfileImage       string `json:"profile_image,omitempty"`
	FullName           string `json:"full_name"`
	IDImageURL         string `json:"id_image_url"`
	SelfieImageURL     string `json:"selfie_image_url"`
	Status             string `json:"status"`
	SubmittedAt        string `json:"submitted_at"`
	ReviewedAt         string `json:"reviewed_at,omitempty"`
	ReviewedBy         *int64 `json:"reviewed_by,omitempty"`
	RejectionReason    string `json:"rejection_reason,omitempty"`
	ReviewedByUsername string `json:"reviewed_by_username,omitempty"`
}

// VerificationRequests uses total_pages on the wire, unlike the other
// admin listings.
type VerificationRequests struct {
	Requests   []VerificationRequest `json:"requests"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"total_pages"`
	Limit      int                   `json:"limit"`
}

type VerificationDecision struct {
	Message         string `json:"message"`
	RequestID       int64  `json:"request_id"`
	UserID          int64  `json:"user_id"`
	Username        string `json:"username"`
	ApprovedAt      string `json:"approved_at,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	RejectedAt      string `json:"rejected_at,omitempty"`
}

// ImageDataURL encodes raw image bytes as a base64 data URL, the form the
// verification endpoint accepts.
func ImageDataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
