package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/relay"
	"github.com/amamam1231/ai-project-312/domain/site"
	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/apperror"
)

// stubRelay answers with a fixed verdict and records what it was sent.
type stubRelay struct {
	mu   sync.Mutex
	resp *relay.Response
	err  error
	sent []relay.Submission
}

func (s *stubRelay) Send(_ context.Context, sub relay.Submission) (*relay.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sub)
	return s.resp, s.err
}

func (s *stubRelay) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func testConfig() *config.Config {
	return &config.Config{
		Relay: config.RelayConfig{Provider: config.RelayWeb3Forms, AccessKey: "public-key"},
		Contact: config.ContactConfig{
			SessionTTL:    30 * time.Minute,
			SweepInterval: 5 * time.Minute,
			RatePerMinute: 60,
			RateBurst:     20,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config, r relay.Relay) *echo.Echo {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	content, err := site.Default()
	require.NoError(t, err)
	svc := contact.NewService(cfg, r, i18n.NewCatalog("ru"), log)

	e := echo.New()
	e.HTTPErrorHandler = apperror.HTTPErrorHandler(log)
	RegisterRoutes(e, NewHandler(cfg, content, svc, log))
	return e
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Анна"},
		"email":   {"anna@example.com"},
		"subject": {"Проект"},
		"message": {"Здравствуйте"},
	}
}

type requestOpt func(*http.Request)

func fetchMode(r *http.Request) { r.Header.Set("X-Requested-With", "fetch") }
func jsonMode(r *http.Request)  { r.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON) }

func withCookie(c *http.Cookie) requestOpt {
	return func(r *http.Request) { r.AddCookie(c) }
}

func withLanguage(lang string) requestOpt {
	return func(r *http.Request) { r.Header.Set("Accept-Language", lang) }
}

func do(e *echo.Echo, method, path string, form url.Values, opts ...requestOpt) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookie)
	return nil
}

func TestLandingPage(t *testing.T) {
	e := newTestServer(t, testConfig(), &stubRelay{resp: &relay.Response{Success: true}})

	rec := do(e, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Equal(t, "Accept-Language", rec.Header().Get(echo.HeaderVary))
	body := rec.Body.String()
	assert.Contains(t, body, `data-phase="idle"`)
	assert.Contains(t, body, "Отправить сообщение")
	assert.Contains(t, body, `data-reveal="services-0"`)
}

func TestLandingPage_English(t *testing.T) {
	e := newTestServer(t, testConfig(), &stubRelay{resp: &relay.Response{Success: true}})

	rec := do(e, http.MethodGet, "/", nil, withLanguage("en-US,en;q=0.9"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `lang="en"`)
	assert.Contains(t, rec.Body.String(), "Send message")
}

func TestSubmit_FetchReturnsSettledFragment(t *testing.T) {
	r := &stubRelay{resp: &relay.Response{Success: true}}
	e := newTestServer(t, testConfig(), r)

	rec := do(e, http.MethodPost, "/contact", validForm(), fetchMode)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-phase="succeeded"`)
	assert.Contains(t, body, "Сообщение отправлено!")
	assert.NotContains(t, body, "<html")

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	require.Equal(t, 1, r.calls())
	assert.Equal(t, "public-key", r.sent[0].AccessKey)
	assert.Equal(t, "Анна", r.sent[0].Field("name"))
}

func TestSubmit_PlainPostRedirectsBackToForm(t *testing.T) {
	e := newTestServer(t, testConfig(), &stubRelay{resp: &relay.Response{Success: false, Message: "Invalid access key"}})

	rec := do(e, http.MethodPost, "/contact", validForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))

	page := do(e, http.MethodGet, "/", nil, withCookie(sessionCookie(t, rec)))
	body := page.Body.String()
	assert.Contains(t, body, `data-phase="failed"`)
	assert.Contains(t, body, "Invalid access key")
	assert.Contains(t, body, `value="anna@example.com"`, "a failed form keeps its values")
}

func TestSubmit_FailuresAndState(t *testing.T) {
	tests := []struct {
		name    string
		relay   *stubRelay
		wantMsg string
	}{
		{name: "rejection with message", relay: &stubRelay{resp: &relay.Response{Message: "Quota exceeded"}}, wantMsg: "Quota exceeded"},
		{name: "rejection without message", relay: &stubRelay{resp: &relay.Response{}}, wantMsg: "Что-то пошло не так"},
		{name: "transport failure", relay: &stubRelay{err: io.ErrUnexpectedEOF}, wantMsg: "Ошибка сети. Попробуйте снова."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t, testConfig(), tt.relay)

			rec := do(e, http.MethodPost, "/contact", validForm(), fetchMode)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `data-phase="failed"`)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)

			state := do(e, http.MethodGet, "/contact/state", nil, withCookie(sessionCookie(t, rec)))
			require.Equal(t, http.StatusOK, state.Code)

			var got struct {
				Phase        string `json:"phase"`
				ErrorMessage string `json:"error_message"`
			}
			require.NoError(t, json.Unmarshal(state.Body.Bytes(), &got))
			assert.Equal(t, "failed", got.Phase)
			assert.Equal(t, tt.wantMsg, got.ErrorMessage)
		})
	}
}

func TestSubmit_JSON(t *testing.T) {
	e := newTestServer(t, testConfig(), &stubRelay{resp: &relay.Response{Success: true}})

	rec := do(e, http.MethodPost, "/contact", validForm(), jsonMode)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phase":"succeeded"}`, rec.Body.String())
}

func TestSubmit_MissingFields(t *testing.T) {
	r := &stubRelay{resp: &relay.Response{Success: true}}
	e := newTestServer(t, testConfig(), r)

	form := validForm()
	form.Set("subject", "   ")
	form.Del("message")

	t.Run("fragment", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/contact", form, fetchMode)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Заполните все поля формы.")
		assert.Contains(t, rec.Body.String(), `value="Анна"`)
	})

	t.Run("json", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/contact", form, jsonMode)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t,
			`{"error":{"code":"validation_error","message":"Заполните все поля формы.","details":{"fields":["subject","message"]}}}`,
			rec.Body.String())
	})

	t.Run("page", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/contact", form)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
		assert.Contains(t, rec.Body.String(), `role="alert"`)
	})

	assert.Equal(t, 0, r.calls(), "invalid posts never reach the relay")
}

func TestSubmit_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Contact.RatePerMinute = 1
	cfg.Contact.RateBurst = 1
	r := &stubRelay{resp: &relay.Response{Success: true}}
	e := newTestServer(t, cfg, r)

	first := do(e, http.MethodPost, "/contact", validForm(), jsonMode)
	require.Equal(t, http.StatusOK, first.Code)

	second := do(e, http.MethodPost, "/contact", validForm(), jsonMode)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), `"rate_limited"`)
	assert.Equal(t, 1, r.calls())
}

func TestReset(t *testing.T) {
	e := newTestServer(t, testConfig(), &stubRelay{resp: &relay.Response{Success: true}})

	rec := do(e, http.MethodPost, "/contact", validForm(), fetchMode)
	cookie := sessionCookie(t, rec)

	reset := do(e, http.MethodPost, "/contact/reset", nil, fetchMode, withCookie(cookie))
	require.Equal(t, http.StatusOK, reset.Code)
	assert.Contains(t, reset.Body.String(), `data-phase="idle"`)
	assert.Contains(t, reset.Body.String(), `value=""`, "a succeeded form starts empty")

	state := do(e, http.MethodGet, "/contact/state", nil, withCookie(cookie))
	assert.JSONEq(t, `{"phase":"idle"}`, state.Body.String())

	plain := do(e, http.MethodPost, "/contact/reset", nil, withCookie(cookie))
	assert.Equal(t, http.StatusSeeOther, plain.Code)
}

// gatedRelay holds its second send until released.
type gatedRelay struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (g *gatedRelay) Send(context.Context, relay.Submission) (*relay.Response, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()

	if n == 2 {
		close(g.entered)
		<-g.release
	}
	return &relay.Response{Success: true}, nil
}

func TestSubmit_InFlightKeepsFormUsable(t *testing.T) {
	r := &gatedRelay{entered: make(chan struct{}), release: make(chan struct{})}
	e := newTestServer(t, testConfig(), r)

	cookie := sessionCookie(t, do(e, http.MethodPost, "/contact", validForm(), fetchMode))

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		done <- do(e, http.MethodPost, "/contact", validForm(), fetchMode, withCookie(cookie))
	}()
	<-r.entered

	messages := i18n.NewCatalog("ru").Default()

	second := do(e, http.MethodPost, "/contact", validForm(), fetchMode, withCookie(cookie))
	require.Equal(t, http.StatusConflict, second.Code)
	body := second.Body.String()
	assert.Contains(t, body, `data-phase="submitting"`)
	assert.Contains(t, body, messages.AlreadySending)
	assert.NotContains(t, body, `type="submit" disabled`)
	assert.Contains(t, body, `value="Анна"`)

	reset := do(e, http.MethodPost, "/contact/reset", nil, fetchMode, withCookie(cookie))
	require.Equal(t, http.StatusConflict, reset.Code)
	assert.Contains(t, reset.Body.String(), messages.AlreadySending)
	assert.NotContains(t, reset.Body.String(), `type="submit" disabled`)

	close(r.release)
	assert.Equal(t, http.StatusOK, (<-done).Code)
	assert.Equal(t, 2, r.calls)
}

func TestState_UnknownSessionIsIdle(t *testing.T) {
	e := newTestServer(t, testConfig(), &stubRelay{resp: &relay.Response{Success: true}})

	rec := do(e, http.MethodGet, "/contact/state", nil, withCookie(&http.Cookie{Name: SessionCookie, Value: "nope"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phase":"idle"}`, rec.Body.String())
}
