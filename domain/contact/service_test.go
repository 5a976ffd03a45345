package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/relay"
	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/apperror"
)

func testConfig() *config.Config {
	return &config.Config{
		Relay: config.RelayConfig{Provider: config.RelayWeb3Forms, AccessKey: "public-key"},
		Contact: config.ContactConfig{
			SessionTTL:    30 * time.Minute,
			SweepInterval: 5 * time.Minute,
			RatePerMinute: 60,
			RateBurst:     5,
		},
	}
}

func newTestService(r relay.Relay) *Service {
	return NewService(testConfig(), r, i18n.NewCatalog("ru"), slog.Default())
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		ClientIP: "192.0.2.10",
		Fields: map[string]string{
			FieldName:    "A",
			FieldEmail:   "a@b.com",
			FieldSubject: "S",
			FieldMessage: "M",
		},
	}
}

func TestService_Submit_Accepted(t *testing.T) {
	var got relay.Submission
	svc := newTestService(relayFunc(func(_ context.Context, sub relay.Submission) (*relay.Response, error) {
		got = sub
		return &relay.Response{Success: true}, nil
	}))

	res, err := svc.Submit(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, res.SessionID)
	assert.Equal(t, PhaseSucceeded, res.State.Phase)
	assert.Equal(t, "public-key", got.AccessKey)
	assert.Equal(t, PhaseSucceeded, svc.State(res.SessionID).Phase)
}

func TestService_Submit_RelayRunsPastRequestCancellation(t *testing.T) {
	svc := newTestService(relayFunc(func(ctx context.Context, _ relay.Submission) (*relay.Response, error) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return &relay.Response{Success: true}, nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, PhaseSucceeded, res.State.Phase)
}

func TestService_Submit_Validation(t *testing.T) {
	calls := 0
	svc := newTestService(relayFunc(func(context.Context, relay.Submission) (*relay.Response, error) {
		calls++
		return &relay.Response{Success: true}, nil
	}))

	req := validRequest()
	req.Fields[FieldEmail] = "<b></b>"
	delete(req.Fields, FieldMessage)

	_, err := svc.Submit(context.Background(), req)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
	assert.Equal(t, []string{FieldEmail, FieldMessage}, appErr.Details["fields"])
	assert.Equal(t, "Заполните все поля формы.", appErr.Message)
	assert.Zero(t, calls, "invalid posts never reach the relay")
}

func TestService_Submit_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Contact.RateBurst = 1
	cfg.Contact.RatePerMinute = 1
	svc := NewService(cfg, respond(&relay.Response{Success: true}, nil), i18n.NewCatalog("ru"), slog.Default())

	req := validRequest()
	req.AcceptLanguage = "en"

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), req)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPStatus)
	assert.Equal(t, "Too many attempts. Please try again in a minute.", appErr.Message)
}

func TestService_Submit_InFlightConflict(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	svc := newTestService(relayFunc(func(context.Context, relay.Submission) (*relay.Response, error) {
		close(entered)
		<-release
		return &relay.Response{Success: true}, nil
	}))

	first := make(chan *SubmitResult)
	go func() {
		res, _ := svc.Submit(context.Background(), validRequest())
		first <- res
	}()
	<-entered

	// The session id is only known once the first attempt returns, so the
	// second post targets the single live session directly.
	var sessionID string
	svc.store.mu.Lock()
	for id := range svc.store.sessions {
		sessionID = id
	}
	svc.store.mu.Unlock()

	req := validRequest()
	req.SessionID = sessionID
	_, err := svc.Submit(context.Background(), req)

	assert.True(t, errors.Is(err, ErrSubmissionInFlight))
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.Equal(t, svc.Messages(req.AcceptLanguage).AlreadySending, appErr.Message)

	close(release)
	assert.Equal(t, PhaseSucceeded, (<-first).State.Phase)
}

func TestService_ResetAndState(t *testing.T) {
	svc := newTestService(respond(&relay.Response{Success: false, Message: "Quota exceeded"}, nil))

	res, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	st := svc.State(res.SessionID)
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, "Quota exceeded", st.ErrorMessage)
	assert.Equal(t, "A", st.Draft.Get(FieldName), "failed drafts refill the form")

	st, err = svc.Reset(res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, st.Phase)

	st, err = svc.Reset("unknown")
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.Equal(t, PhaseIdle, svc.State("unknown").Phase)
}

func TestService_Sweep(t *testing.T) {
	svc := newTestService(respond(&relay.Response{Success: true}, nil))
	clock := &fakeClock{now: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)}
	svc.store.now = clock.Now
	svc.limiter.now = clock.Now

	res, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	clock.Advance(time.Hour)
	require.NoError(t, svc.Sweep(context.Background()))
	assert.Nil(t, svc.store.Lookup(res.SessionID))
	assert.Empty(t, svc.limiter.limiters)
}
