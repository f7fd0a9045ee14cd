package mail

import (
	"bytes"
	"context"
	"mime"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strconv"

	"github.com/pkg/errors"

	"cakehaven/internal/domain/service"
)

// smtpSender delivers mail through an authenticated SMTP relay.
type smtpSender struct {
	addr string
	auth smtp.Auth
	from *netmail.Address
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func newSMTPSender(host string, port int, username, password, from string) (*smtpSender, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}
	sender, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mail from address")
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &smtpSender{
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
		auth: auth,
		from: sender,
		send: smtp.SendMail,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, mail *service.Mail) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	to, err := netmail.ParseAddress(mail.To)
	if err != nil {
		return errors.Wrap(err, "invalid recipient")
	}

	msg := buildMessage(s.from, to, mail)
	if err := s.send(s.addr, s.auth, s.from.Address, []string{to.Address}, msg); err != nil {
		return errors.Wrapf(err, "smtp send to %s failed", s.addr)
	}

	return nil
}

func buildMessage(from, to *netmail.Address, mail *service.Mail) []byte {
	var buf bytes.Buffer
	buf.WriteString("From: " + from.String() + "\r\n")
	buf.WriteString("To: " + to.String() + "\r\n")
	buf.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", mail.Subject) + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(mail.HTML)

	return buf.Bytes()
}
