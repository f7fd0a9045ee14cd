package mail

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/pkg/errors"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	passwordResetTemplate   = "password_reset.html"
	enquiryApprovedTemplate = "enquiry_approved.html"
	enquiryRejectedTemplate = "enquiry_rejected.html"
)

type templateComposer struct {
	templates *template.Template
}

// NewComposer parses the embedded templates.
func NewComposer() (service.MailComposer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse mail templates")
	}

	return &templateComposer{templates: templates}, nil
}

func (c *templateComposer) PasswordReset(to, resetLink string, validFor time.Duration) (*service.Mail, error) {
	return c.render(to, "Reset your CakeHaven password", passwordResetTemplate, map[string]any{
		"Email":    to,
		"Link":     template.URL(resetLink),
		"ValidFor": validFor.Round(time.Minute).String(),
	})
}

func (c *templateComposer) EnquiryDecision(enquiry *entity.Enquiry) (*service.Mail, error) {
	data := map[string]any{
		"ShopName":  enquiry.ShopName,
		"OwnerName": enquiry.OwnerName,
		"Email":     enquiry.Email,
		"City":      enquiry.City,
		"Reason":    "",
	}
	if enquiry.Reason != nil {
		data["Reason"] = *enquiry.Reason
	}

	switch enquiry.Status {
	case entity.EnquiryApproved:
		return c.render(enquiry.Email, "Your shop "+enquiry.ShopName+" is approved", enquiryApprovedTemplate, data)
	case entity.EnquiryRejected:
		return c.render(enquiry.Email, "Update on your CakeHaven enquiry", enquiryRejectedTemplate, data)
	default:
		return nil, errors.Errorf("enquiry %s is not decided", enquiry.ID)
	}
}

func (c *templateComposer) render(to, subject, name string, data any) (*service.Mail, error) {
	var body bytes.Buffer
	if err := c.templates.ExecuteTemplate(&body, name, data); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", name)
	}

	return &service.Mail{
		To:      to,
		Subject: subject,
		HTML:    body.String(),
	}, nil
}
