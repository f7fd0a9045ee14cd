package service

import (
	"context"
	"time"

	"cakehaven/internal/domain/entity"
)

// Mail is a rendered transactional email.
type Mail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// MailSender delivers transactional email. Delivery is best effort.
type MailSender interface {
	Send(ctx context.Context, mail *Mail) error
}

// MailComposer renders the transactional emails.
type MailComposer interface {
	PasswordReset(to, resetLink string, validFor time.Duration) (*Mail, error)
	// EnquiryDecision renders the approved or rejected notice for a decided enquiry.
	EnquiryDecision(enquiry *entity.Enquiry) (*Mail, error)
}
