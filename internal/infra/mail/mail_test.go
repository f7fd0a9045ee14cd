package mail

import (
	"bytes"
	"context"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakehaven/internal/domain/entity"
	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
)

func TestComposer_PasswordReset(t *testing.T) {
	composer, err := NewComposer()
	require.NoError(t, err)

	mail, err := composer.PasswordReset("baker@example.com", "https://cakehaven.test/reset?token=abc", 15*time.Minute)
	require.NoError(t, err)

	assert.Equal(t, "baker@example.com", mail.To)
	assert.Equal(t, "Reset your CakeHaven password", mail.Subject)
	assert.Contains(t, mail.HTML, `href="https://cakehaven.test/reset?token=abc"`)
	assert.Contains(t, mail.HTML, "15m0s")
}

func TestComposer_EnquiryDecision(t *testing.T) {
	composer, err := NewComposer()
	require.NoError(t, err)

	reason := "Incomplete <details>"
	tests := []struct {
		name        string
		status      entity.EnquiryStatus
		reason      *string
		wantSubject string
		wantBody    []string
		wantErr     bool
	}{
		{
			name:        "approved",
			status:      entity.EnquiryApproved,
			wantSubject: "Your shop Sugar Rush is approved",
			wantBody:    []string{"Sugar Rush", "Pune", "owner@sugarrush.test"},
		},
		{
			name:        "rejected escapes reason",
			status:      entity.EnquiryRejected,
			reason:      &reason,
			wantSubject: "Update on your CakeHaven enquiry",
			wantBody:    []string{"Incomplete &lt;details&gt;"},
		},
		{
			name:    "pending is not renderable",
			status:  entity.EnquiryPending,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enquiry := &entity.Enquiry{
				ID: uuid.New(),
				ShopDetails: entity.ShopDetails{
					ShopName:  "Sugar Rush",
					OwnerName: "Asha",
					Email:     "owner@sugarrush.test",
					City:      "Pune",
				},
				Status: tt.status,
				Reason: tt.reason,
			}

			mail, err := composer.EnquiryDecision(enquiry)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, mail.Subject)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, mail.HTML, fragment)
			}
		})
	}
}

func TestSMTPSender_Send(t *testing.T) {
	sender, err := newSMTPSender("smtp.example.com", 587, "user", "secret", "CakeHaven <no-reply@cakehaven.test>")
	require.NoError(t, err)

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)
	sender.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg

		return nil
	}

	err = sender.Send(context.Background(), &service.Mail{
		To:      "baker@example.com",
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "no-reply@cakehaven.test", gotFrom)
	assert.Equal(t, []string{"baker@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>hi</p>"))
}

func TestSMTPSender_Errors(t *testing.T) {
	_, err := newSMTPSender("", 25, "", "", "no-reply@cakehaven.test")
	assert.Error(t, err)

	_, err = newSMTPSender("smtp.example.com", 25, "", "", "not an address")
	assert.Error(t, err)

	sender, err := newSMTPSender("smtp.example.com", 25, "", "", "no-reply@cakehaven.test")
	require.NoError(t, err)
	sender.send = func(string, smtp.Auth, string, []string, []byte) error {
		return assert.AnError
	}

	err = sender.Send(context.Background(), &service.Mail{To: "bad", Subject: "x"})
	assert.Error(t, err)

	err = sender.Send(context.Background(), &service.Mail{To: "baker@example.com", Subject: "x"})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLogSender_UsesRequestLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	sender := &logSender{logger: slog.New(slog.NewTextHandler(&fallback, nil))}

	ctx := logs.WithContext(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))
	err := sender.Send(ctx, &service.Mail{To: "baker@example.com", Subject: "Hello", HTML: "<p>hi</p>"})
	require.NoError(t, err)

	assert.Empty(t, fallback.String())
	assert.Contains(t, scoped.String(), "to=baker@example.com")
	assert.NotContains(t, scoped.String(), "<p>hi</p>")
}
