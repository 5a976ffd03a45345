package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/relay"
	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/apperror"
	"github.com/amamam1231/ai-project-312/pkg/logger"
	"github.com/amamam1231/ai-project-312/pkg/tracing"
)

// SubmitRequest is one form post as received from a visitor.
type SubmitRequest struct {
	SessionID      string
	ClientIP       string
	AcceptLanguage string
	Fields         map[string]string
}

// SubmitResult carries the settled state back to the page.
type SubmitResult struct {
	SessionID string
	State     State
	Messages  i18n.Messages
}

// Service fronts the per-visitor controllers for the HTTP layer.
type Service struct {
	store     *Store
	limiter   *ClientLimiter
	sanitizer *Sanitizer
	catalog   *i18n.Catalog
	accessKey string
	idleTTL   time.Duration
	log       *slog.Logger
}

func NewService(cfg *config.Config, r relay.Relay, catalog *i18n.Catalog, log *slog.Logger) *Service {
	log = log.With(logger.Scope("contact"))

	observe := func(o Outcome) {
		label := outcomeLabel(o)
		SubmissionsTotal.WithLabelValues(label).Inc()
		RelayLatency.Observe(o.Duration.Seconds())

		attrs := []any{
			slog.String("outcome", label),
			slog.Duration("duration", o.Duration),
		}
		if o.Cause != nil {
			attrs = append(attrs, logger.Error(o.Cause))
			log.Warn("contact submission failed", attrs...)
			return
		}
		log.Info("contact submission accepted", attrs...)
	}

	newController := func(m i18n.Messages) *Controller {
		return NewController(r, m, WithObserver(observe))
	}

	return &Service{
		store:     NewStore(cfg.Contact.SessionTTL, newController),
		limiter:   NewClientLimiter(cfg.Contact.RatePerMinute, cfg.Contact.RateBurst),
		sanitizer: NewSanitizer(),
		catalog:   catalog,
		accessKey: cfg.Relay.AccessKey,
		idleTTL:   cfg.Contact.SessionTTL,
		log:       log,
	}
}

// Messages resolves the catalog entry for an Accept-Language header.
func (s *Service) Messages(acceptLanguage string) i18n.Messages {
	return s.catalog.ForAcceptLanguage(acceptLanguage)
}

// Submit rate limits, sanitizes and validates the post, then runs one
// attempt on the visitor's controller. The relay call is detached from the
// request's cancellation: once sent, an attempt runs to completion.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (_ *SubmitResult, err error) {
	ctx, span := tracing.Start(ctx, "contact.submit")
	defer func() {
		tracing.Fail(span, err)
		span.End()
	}()

	messages := s.Messages(req.AcceptLanguage)

	if !s.limiter.Allow(req.ClientIP) {
		RejectedRequests.WithLabelValues("rate_limited").Inc()
		return nil, apperror.ErrTooManyRequests.WithMessage(messages.RateLimited)
	}

	fields := s.sanitizer.Fields(req.Fields, RequiredFields...)
	if missing := fields.Missing(RequiredFields...); len(missing) > 0 {
		RejectedRequests.WithLabelValues("validation").Inc()
		return nil, apperror.NewValidation(missing).WithMessage(messages.MissingFields)
	}

	id, ctrl := s.store.Acquire(req.SessionID, messages)
	ActiveSessions.Set(float64(s.store.Len()))

	st, err := ctrl.Submit(context.WithoutCancel(ctx), fields, s.accessKey)
	if errors.Is(err, ErrSubmissionInFlight) {
		RejectedRequests.WithLabelValues("in_flight").Inc()
		return nil, apperror.ErrConflict.WithMessage(messages.AlreadySending).WithInternal(err)
	}

	span.SetAttributes(
		attribute.String("site.contact.session", id),
		attribute.String("site.contact.phase", st.Phase.String()),
	)
	return &SubmitResult{SessionID: id, State: st, Messages: messages}, nil
}

// Reset returns the visitor's form to Idle. Unknown sessions are already idle.
func (s *Service) Reset(sessionID string) (State, error) {
	ctrl := s.store.Lookup(sessionID)
	if ctrl == nil {
		return State{Phase: PhaseIdle}, nil
	}
	if err := ctrl.Reset(); err != nil {
		return ctrl.State(), apperror.ErrConflict.WithInternal(err)
	}
	return ctrl.State(), nil
}

// State returns the visitor's current form state.
func (s *Service) State(sessionID string) State {
	ctrl := s.store.Lookup(sessionID)
	if ctrl == nil {
		return State{Phase: PhaseIdle}
	}
	return ctrl.State()
}

// Sweep evicts idle sessions and rate limiters.
func (s *Service) Sweep(ctx context.Context) error {
	sessions := s.store.Sweep()
	limiters := s.limiter.Forget(s.idleTTL)
	ActiveSessions.Set(float64(s.store.Len()))

	if sessions > 0 || limiters > 0 {
		s.log.Debug("evicted idle contact sessions",
			slog.Int("sessions", sessions),
			slog.Int("limiters", limiters))
	}
	return nil
}

// ActiveSessions returns the number of live form sessions.
func (s *Service) ActiveSessions() int {
	return s.store.Len()
}
