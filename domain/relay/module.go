package relay

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/logger"
)

var Module = fx.Module("relay",
	fx.Provide(NewRelay),
)

// NewRelay picks the relay for the configured provider. The no-op relay is
// used only when asked for. A web3forms relay without an access key still
// posts, so the relay's rejection reaches the visitor.
func NewRelay(cfg *config.Config, log *slog.Logger) Relay {
	log = log.With(logger.Scope("relay"))

	switch cfg.Relay.Provider {
	case config.RelayWeb3Forms:
		if cfg.Relay.AccessKey == "" {
			log.Warn("web3forms access key not configured, submissions will be rejected")
		}
		log.Info("using web3forms relay", slog.String("endpoint", cfg.Relay.Endpoint))
		return NewWeb3FormsRelay(cfg.Relay.Endpoint, cfg.Relay.Timeout, log)
	case config.RelayMailgun:
		if r := NewMailgunRelay(&cfg.Email, log); r != nil {
			log.Info("using mailgun relay",
				slog.String("domain", cfg.Email.MailgunDomain),
				slog.String("to", cfg.Email.ToAddress))
			return r
		}
		log.Warn("mailgun not configured, submissions will fail")
		return &unconfiguredRelay{provider: cfg.Relay.Provider}
	case config.RelayNoop:
		log.Warn("using no-op relay, submissions are not delivered")
		return &noopRelay{log: log}
	}

	return &unconfiguredRelay{provider: cfg.Relay.Provider}
}
