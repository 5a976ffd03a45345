package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/domain/reveal"
	"github.com/amamam1231/ai-project-312/domain/site"
	"github.com/amamam1231/ai-project-312/internal/components"
	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/logger"
)

// Handler serves the landing page and its contact form.
type Handler struct {
	content      *site.Content
	contact      *contact.Service
	cookieMaxAge int
	secureCookie bool
	log          *slog.Logger
}

func NewHandler(cfg *config.Config, content *site.Content, svc *contact.Service, log *slog.Logger) *Handler {
	return &Handler{
		content:      content,
		contact:      svc,
		cookieMaxAge: int(cfg.Contact.SessionTTL.Seconds()),
		secureCookie: cfg.Contact.SecureCookie,
		log:          log.With(logger.Scope("handlers")),
	}
}

// LandingPage renders the whole site with the visitor's current form state.
func (h *Handler) LandingPage(c echo.Context) error {
	view := components.FormView{
		State:    h.contact.State(sessionID(c)),
		Messages: h.contact.Messages(c.Request().Header.Get(headerAcceptLanguage)),
	}
	return h.renderPage(c, http.StatusOK, view)
}

func (h *Handler) renderPage(c echo.Context, status int, view components.FormView) error {
	sched := reveal.NewScheduler()
	page := components.LandingPage(components.Page{
		Content: h.content,
		Form:    view,
		Reveal:  sched,
	})
	if err := render(c, status, page); err != nil {
		return err
	}
	reveal.RegionsObserved.Add(float64(sched.Len()))
	return nil
}

// render buffers the node so a rendering error can still become a 500.
func render(c echo.Context, status int, node g.Node) error {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return err
	}
	c.Response().Header().Add(echo.HeaderVary, headerAcceptLanguage)
	return c.HTMLBlob(status, buf.Bytes())
}
