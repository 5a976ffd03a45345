package relay

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amamam1231/ai-project-312/internal/config"
)

type fakeMailgun struct {
	sent    []*mailgun.Message
	from    string
	subject string
	text    string
	to      []string
	err     error
}

func (f *fakeMailgun) NewMessage(from, subject, text string, to ...string) *mailgun.Message {
	f.from, f.subject, f.text, f.to = from, subject, text, to
	return mailgun.NewMailgun("mg.example.com", "key-test").NewMessage(from, subject, text, to...)
}

func (f *fakeMailgun) Send(ctx context.Context, m *mailgun.Message) (string, string, error) {
	f.sent = append(f.sent, m)
	if f.err != nil {
		return "", "", f.err
	}
	return "Queued. Thank you.", "<20260101.1@mg.example.com>", nil
}

func validEmailConfig() *config.EmailConfig {
	return &config.EmailConfig{
		MailgunDomain: "mg.example.com",
		MailgunAPIKey: "key-abc123",
		FromEmail:     "noreply@example.com",
		FromName:      "YourBrand",
		ToAddress:     "hello@yourbrand.com",
	}
}

func TestMailgunRelay_Send(t *testing.T) {
	fake := &fakeMailgun{}
	r := &MailgunRelay{cfg: validEmailConfig(), log: slog.Default(), client: fake}

	resp, err := r.Send(context.Background(), testSubmission())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, "YourBrand <noreply@example.com>", fake.from)
	assert.Equal(t, "S", fake.subject)
	assert.Equal(t, []string{"hello@yourbrand.com"}, fake.to)
	assert.Contains(t, fake.text, "email: a@b.com")
	assert.Contains(t, fake.text, "\nM")
}

func TestMailgunRelay_Failures(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantRejection bool
	}{
		{"bad request is a rejection", &mailgun.UnexpectedResponseError{Expected: []int{200}, Actual: http.StatusBadRequest}, true},
		{"unauthorized is a rejection", &mailgun.UnexpectedResponseError{Expected: []int{200}, Actual: http.StatusUnauthorized}, true},
		{"server error is transport", &mailgun.UnexpectedResponseError{Expected: []int{200}, Actual: http.StatusBadGateway}, false},
		{"network error is transport", errors.New("dial tcp: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MailgunRelay{cfg: validEmailConfig(), log: slog.Default(), client: &fakeMailgun{err: tt.err}}

			resp, err := r.Send(context.Background(), testSubmission())

			if tt.wantRejection {
				require.NoError(t, err)
				assert.False(t, resp.Success)
				assert.Empty(t, resp.Message)
				return
			}
			assert.Error(t, err)
			assert.Nil(t, resp)
		})
	}
}

func TestMailgunRelayValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.EmailConfig)
		wantError string
	}{
		{"all fields valid", func(*config.EmailConfig) {}, ""},
		{"missing domain", func(c *config.EmailConfig) { c.MailgunDomain = "" }, "MAILGUN_DOMAIN is required"},
		{"missing api key", func(c *config.EmailConfig) { c.MailgunAPIKey = "" }, "MAILGUN_API_KEY is required"},
		{"missing from", func(c *config.EmailConfig) { c.FromEmail = "" }, "EMAIL_FROM_ADDRESS is required"},
		{"missing recipient", func(c *config.EmailConfig) { c.ToAddress = "" }, "CONTACT_TO_ADDRESS is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validEmailConfig()
			tt.mutate(cfg)
			err := (&MailgunRelay{cfg: cfg}).validate()

			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantError)
		})
	}
}

func TestNewMailgunRelay_Unconfigured(t *testing.T) {
	assert.Nil(t, NewMailgunRelay(&config.EmailConfig{}, slog.Default()))
}
