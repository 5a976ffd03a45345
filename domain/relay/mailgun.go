package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mailgun/mailgun-go/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/logger"
	"github.com/amamam1231/ai-project-312/pkg/tracing"
)

// mailgunClient is the slice of the Mailgun SDK the relay needs.
type mailgunClient interface {
	NewMessage(from, subject, text string, to ...string) *mailgun.Message
	Send(ctx context.Context, m *mailgun.Message) (string, string, error)
}

// MailgunRelay delivers submissions as email through Mailgun, for sites
// that own a Mailgun domain instead of using a form relay.
type MailgunRelay struct {
	cfg    *config.EmailConfig
	log    *slog.Logger
	client mailgunClient
}

// NewMailgunRelay returns nil if Mailgun is not configured.
func NewMailgunRelay(cfg *config.EmailConfig, log *slog.Logger) *MailgunRelay {
	if !cfg.IsConfigured() {
		return nil
	}

	mg := mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey)
	if cfg.MailgunAPIBase != "" {
		mg.SetAPIBase(cfg.MailgunAPIBase)
	}

	return &MailgunRelay{
		cfg:    cfg,
		log:    log.With(logger.Scope("relay.mailgun")),
		client: mg,
	}
}

// Send mails the submission to the configured recipient. Mailgun refusing
// the message (4xx) is a rejection; anything else failing is transport.
func (r *MailgunRelay) Send(ctx context.Context, sub Submission) (_ *Response, err error) {
	ctx, span := tracing.Start(ctx, "relay.mailgun.send", attribute.String("site.relay.domain", r.cfg.MailgunDomain))
	defer func() {
		tracing.Fail(span, err)
		span.End()
	}()

	if err := r.validate(); err != nil {
		return nil, err
	}

	from := fmt.Sprintf("%s <%s>", r.cfg.FromName, r.cfg.FromEmail)
	subject := sub.Field("subject")
	if subject == "" {
		subject = "Contact form"
	}

	message := r.client.NewMessage(from, subject, mailBody(sub), r.cfg.ToAddress)
	if email := sub.Field("email"); email != "" {
		name := sub.Field("name")
		if name != "" {
			message.SetReplyTo(fmt.Sprintf("%s <%s>", name, email))
		} else {
			message.SetReplyTo(email)
		}
	}

	_, messageID, err := r.client.Send(ctx, message)
	if err != nil {
		var unexpected *mailgun.UnexpectedResponseError
		if errors.As(err, &unexpected) && unexpected.Actual >= http.StatusBadRequest && unexpected.Actual < http.StatusInternalServerError {
			span.SetAttributes(attribute.Int("http.response.status_code", unexpected.Actual))
			r.log.Warn("mailgun rejected message", slog.Int("status", unexpected.Actual))
			return &Response{Success: false}, nil
		}
		return nil, fmt.Errorf("relay: mailgun send: %w", err)
	}

	r.log.Info("contact message mailed", slog.String("message_id", messageID))
	return &Response{Success: true, Message: "Email sent"}, nil
}

func (r *MailgunRelay) validate() error {
	if r.cfg.MailgunDomain == "" {
		return fmt.Errorf("MAILGUN_DOMAIN is required")
	}
	if r.cfg.MailgunAPIKey == "" {
		return fmt.Errorf("MAILGUN_API_KEY is required")
	}
	if r.cfg.FromEmail == "" {
		return fmt.Errorf("EMAIL_FROM_ADDRESS is required")
	}
	if r.cfg.ToAddress == "" {
		return fmt.Errorf("CONTACT_TO_ADDRESS is required")
	}
	return nil
}

func mailBody(sub Submission) string {
	var b strings.Builder
	for _, key := range []string{"name", "email", "subject"} {
		fmt.Fprintf(&b, "%s: %s\n", key, sub.Field(key))
	}
	b.WriteString("\n")
	b.WriteString(sub.Field("message"))
	return b.String()
}
