package mail

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"cakehaven/config"
	"cakehaven/internal/domain/service"
)

const (
	ProviderLog    = "log"
	ProviderSMTP   = "smtp"
	ProviderPubSub = "pubsub"
)

// SenderParams defines the dependencies for creating a mail sender
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSender creates a mail sender based on configuration
func NewSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		params.Logger.Info("Mail not configured, using log sender")

		return &logSender{logger: params.Logger}, nil
	}

	switch cfg.Provider {
	case ProviderSMTP:
		sender, err := newSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.From)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using SMTP mail sender", slog.String("host", cfg.SMTP.Host))

		return sender, nil

	case ProviderPubSub:
		sender, err := newPubSubSender(params.Ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, cfg.PubSub.CredentialsPath, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return sender.Close()
			},
		})

		return sender, nil

	case ProviderLog, "":
		params.Logger.Info("Using log mail sender")

		return &logSender{logger: params.Logger}, nil

	default:
		params.Logger.Warn("Unknown mail provider, falling back to log sender",
			slog.String("provider", cfg.Provider))

		return &logSender{logger: params.Logger}, nil
	}
}
