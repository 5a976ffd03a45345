package relay

import (
	"context"
	"fmt"
	"log/slog"
)

// noopRelay accepts everything. Only selected explicitly with
// RELAY_PROVIDER=noop, which is limited to local development.
type noopRelay struct {
	log *slog.Logger
}

func (r *noopRelay) Send(ctx context.Context, sub Submission) (*Response, error) {
	r.log.Info("contact submission (no-op relay)",
		slog.Int("fields", len(sub.Fields)))
	return &Response{Success: true}, nil
}

// unconfiguredRelay stands in for a provider without credentials. Every
// send fails so the visitor sees the failure instead of a false success.
type unconfiguredRelay struct {
	provider string
}

func (r *unconfiguredRelay) Send(ctx context.Context, sub Submission) (*Response, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotConfigured, r.provider)
}
