package mail

import (
	"context"
	"log/slog"

	"cakehaven/internal/domain/service"
	logs "cakehaven/internal/infra/log"
)

// logSender writes mail to the log instead of delivering it. Used in development.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, mail *service.Mail) error {
	logs.FromContext(ctx, s.logger).InfoContext(ctx, "[LogMail] Mail not delivered, logging instead",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
		slog.Int("html_bytes", len(mail.HTML)),
	)

	return nil
}
