package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/internal/components"
	"github.com/amamam1231/ai-project-312/pkg/apperror"
)

// SessionCookie keys a visitor's form session.
const SessionCookie = "form_session"

// Scripted submissions send X-Requested-With: fetch and get the form panel
// back instead of a redirect.
const (
	headerAcceptLanguage = "Accept-Language"
	headerRequestedWith  = "X-Requested-With"
	requestedWithFetch   = "fetch"
)

type responseMode int

const (
	modePage responseMode = iota
	modeFragment
	modeJSON
)

func modeOf(c echo.Context) responseMode {
	req := c.Request()
	switch {
	case req.Header.Get(headerRequestedWith) == requestedWithFetch:
		return modeFragment
	case strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON):
		return modeJSON
	default:
		return modePage
	}
}

func sessionID(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) setSession(c echo.Context, id string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   h.cookieMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// Submit relays one form post. Scripted posts get the settled form panel,
// JSON clients get the state, plain browser posts are redirected back to
// the form.
func (h *Handler) Submit(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return apperror.NewBadRequest("invalid form body").WithInternal(err)
	}

	fields := make(map[string]string, len(contact.RequiredFields))
	for _, name := range contact.RequiredFields {
		fields[name] = form.Get(name)
	}

	req := contact.SubmitRequest{
		SessionID:      sessionID(c),
		ClientIP:       c.RealIP(),
		AcceptLanguage: c.Request().Header.Get(headerAcceptLanguage),
		Fields:         fields,
	}

	mode := modeOf(c)
	res, err := h.contact.Submit(c.Request().Context(), req)
	if err != nil {
		appErr, ok := apperror.As(err)
		if !ok || mode == modeJSON {
			return err
		}
		view := components.FormView{
			State:    h.contact.State(req.SessionID),
			Messages: h.contact.Messages(req.AcceptLanguage),
			Notice:   appErr.Message,
			Values:   contact.Fields(fields),
		}
		return h.respondForm(c, mode, appErr.HTTPStatus, view)
	}

	h.setSession(c, res.SessionID)

	switch mode {
	case modeJSON:
		return c.JSON(http.StatusOK, res.State)
	case modeFragment:
		return render(c, http.StatusOK, components.ContactForm(components.FormView{
			State:    res.State,
			Messages: res.Messages,
		}))
	default:
		return c.Redirect(http.StatusSeeOther, "/#"+h.content.Contact.ID)
	}
}

// Reset returns the visitor's form to idle, e.g. after "send another".
func (h *Handler) Reset(c echo.Context) error {
	id := sessionID(c)
	mode := modeOf(c)

	st, err := h.contact.Reset(id)
	if err != nil && mode == modeJSON {
		return err
	}

	view := components.FormView{
		State:    st,
		Messages: h.contact.Messages(c.Request().Header.Get(headerAcceptLanguage)),
	}
	status := http.StatusOK
	if appErr, ok := apperror.As(err); ok {
		status = appErr.HTTPStatus
		view.Notice = view.Messages.AlreadySending
	}

	switch mode {
	case modeJSON:
		return c.JSON(status, st)
	case modeFragment:
		return render(c, status, components.ContactForm(view))
	default:
		return c.Redirect(http.StatusSeeOther, "/#"+h.content.Contact.ID)
	}
}

// State reports the visitor's form state as JSON.
func (h *Handler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, h.contact.State(sessionID(c)))
}

func (h *Handler) respondForm(c echo.Context, mode responseMode, status int, view components.FormView) error {
	if mode == modeFragment {
		return render(c, status, components.ContactForm(view))
	}
	return h.renderPage(c, status, view)
}
