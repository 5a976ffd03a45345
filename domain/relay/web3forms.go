package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/amamam1231/ai-project-312/pkg/logger"
	"github.com/amamam1231/ai-project-312/pkg/tracing"
)

// AccessKeyField is the form field carrying the relay access key.
const AccessKeyField = "access_key"

// Web3FormsRelay posts form-encoded submissions to a Web3Forms compatible
// endpoint and decodes its {success, message} reply.
type Web3FormsRelay struct {
	endpoint string
	client   *resty.Client
	log      *slog.Logger
}

// NewWeb3FormsRelay creates a relay for endpoint. A zero timeout leaves
// the transport default in place.
func NewWeb3FormsRelay(endpoint string, timeout time.Duration, log *slog.Logger) *Web3FormsRelay {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(3))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Web3FormsRelay{
		endpoint: endpoint,
		client:   client,
		log:      log.With(logger.Scope("relay.web3forms")),
	}
}

// Send issues exactly one POST. Non-2xx replies that still carry the JSON
// verdict are returned as responses, not errors.
func (r *Web3FormsRelay) Send(ctx context.Context, sub Submission) (_ *Response, err error) {
	ctx, span := tracing.Start(ctx, "relay.web3forms.send", attribute.String("server.address", r.endpoint))
	defer func() {
		tracing.Fail(span, err)
		span.End()
	}()

	form := make(map[string]string, len(sub.Fields)+1)
	for k, v := range sub.Fields {
		form[k] = v
	}
	form[AccessKeyField] = sub.AccessKey

	resp, err := r.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(r.endpoint)
	if err != nil {
		return nil, fmt.Errorf("relay: post %s: %w", r.endpoint, err)
	}

	var verdict struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &verdict); err != nil || verdict.Success == nil {
		r.log.Warn("unexpected relay reply",
			slog.Int("status", resp.StatusCode()),
			slog.String("content_type", resp.Header().Get("Content-Type")))
		return nil, fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode())
	}

	span.SetAttributes(
		attribute.Int("http.response.status_code", resp.StatusCode()),
		attribute.Bool("site.relay.success", *verdict.Success),
	)
	r.log.Debug("relay replied",
		slog.Int("status", resp.StatusCode()),
		slog.Bool("success", *verdict.Success))

	return &Response{Success: *verdict.Success, Message: verdict.Message}, nil
}
