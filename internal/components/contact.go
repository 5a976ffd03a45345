package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/contact"
	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/reveal"
	"github.com/amamam1231/ai-project-312/domain/site"
)

// Form endpoints.
const (
	ContactAction      = "/contact"
	ContactResetAction = "/contact/reset"
	ContactStatePath   = "/contact/state"
)

// FormPanelID is the element contact-form.js swaps with server fragments.
const FormPanelID = "contact-form-panel"

const inputClass = "w-full px-4 py-3 bg-slate-800/50 border border-slate-700 rounded-lg text-white placeholder-slate-500 focus:outline-none focus:border-blue-500 transition-colors"

// FormView is what the contact form renders from.
type FormView struct {
	State    contact.State
	Messages i18n.Messages
	// Notice is an error that was decided without settling an attempt,
	// e.g. a missing field, a rate limit or an attempt already in flight.
	// A form with a notice stays submittable.
	Notice string
	// Values refill the inputs instead of State.Draft when set.
	Values contact.Fields
}

func (v FormView) errorText() string {
	if v.Notice != "" {
		return v.Notice
	}
	return v.State.ErrorMessage
}

func (v FormView) value(name string) string {
	if v.Values != nil {
		return v.Values.Get(name)
	}
	return v.State.Draft.Get(name)
}

func ContactSection(s *reveal.Scheduler, c site.Contact, form FormView) g.Node {
	return Section(
		ID(c.ID),
		Class("py-20 md:py-32 px-4 bg-slate-900/50"),
		Div(
			Class("container mx-auto max-w-6xl"),
			Div(
				Class("grid md:grid-cols-2 gap-12"),

				RevealRegion(s, c.ID+"-channels", 0,
					SectionHeading(c.Heading, false),
					Div(
						Class("space-y-6"),
						g.Group(g.Map(c.Channels, channel)),
					),
				),

				RevealRegion(s, c.ID+"-form", secondColumnDelay,
					Div(
						Class("bg-slate-950 border border-slate-800 rounded-2xl p-8"),
						H3(Class("text-2xl font-bold mb-6"), g.Text(form.Messages.FormTitle)),
						ContactForm(form),
					),
				),
			),
		),
	)
}

func channel(ch site.Channel) g.Node {
	value := g.Node(g.Text(ch.Value))
	if ch.Href != "" {
		value = A(Href(ch.Href), Class("hover:text-blue-400 transition-colors"), g.Text(ch.Value))
	}

	return Div(
		Class("flex items-center gap-4"),
		IconBadge(ch.Icon, "w-12 h-12"),
		Div(
			Div(Class("text-sm text-gray-400"), g.Text(ch.Label)),
			Div(Class("font-medium"), value),
		),
	)
}

// ContactForm renders the form panel for the current phase. It is also
// served on its own as the fragment answering scripted submissions.
func ContactForm(v FormView) g.Node {
	body := formFields(v)
	if v.State.Phase == contact.PhaseSucceeded {
		body = successPanel(v.Messages)
	}

	return Div(
		ID(FormPanelID),
		Class("relative"),
		g.Attr("data-phase", v.State.Phase.String()),
		g.Attr("aria-live", "polite"),
		body,
	)
}

func formFields(v FormView) g.Node {
	m := v.Messages
	submitting := v.State.Phase == contact.PhaseSubmitting && v.Notice == ""
	errText := v.errorText()

	return Form(
		ID("contact-form"),
		Method("post"),
		Action(ContactAction),
		Class("space-y-6 panel-enter"),
		g.Attr("data-contact-form", ""),
		g.Attr("data-submitting-label", m.SubmittingLabel),
		g.Attr("data-network-error", m.NetworkFailure),

		Div(
			Class("grid md:grid-cols-2 gap-6"),
			field("contact-name", m.NameLabel,
				Input(ID("contact-name"), Type("text"), Name(contact.FieldName), Placeholder(m.NamePlaceholder),
					Required(), Value(v.value(contact.FieldName)), Class(inputClass)),
			),
			field("contact-email", m.EmailLabel,
				Input(ID("contact-email"), Type("email"), Name(contact.FieldEmail), Placeholder("your@email.com"),
					Required(), Value(v.value(contact.FieldEmail)), Class(inputClass)),
			),
		),
		field("contact-subject", m.SubjectLabel,
			Input(ID("contact-subject"), Type("text"), Name(contact.FieldSubject), Placeholder(m.SubjectPlaceholder),
				Required(), Value(v.value(contact.FieldSubject)), Class(inputClass)),
		),
		field("contact-message", m.MessageLabel,
			Textarea(ID("contact-message"), Name(contact.FieldMessage), Placeholder(m.MessagePlaceholder),
				Rows("4"), Required(), Class(inputClass+" resize-none"), g.Text(v.value(contact.FieldMessage))),
		),

		g.If(errText != "", Div(
			Class("text-red-400 text-sm bg-red-500/10 p-3 rounded-lg"),
			g.Attr("role", "alert"),
			g.Text(errText),
		)),

		Button(
			Type("submit"),
			g.If(submitting, Disabled()),
			Class("w-full bg-blue-600 hover:bg-blue-700 disabled:bg-slate-600 disabled:cursor-not-allowed text-white px-8 py-4 rounded-lg font-bold transition-all transform hover:scale-[1.02] disabled:transform-none flex items-center justify-center gap-2"),
			submitLabel(m, submitting),
		),
	)
}

func submitLabel(m i18n.Messages, submitting bool) g.Node {
	if submitting {
		return g.Group([]g.Node{
			Div(Class("spinner w-5 h-5 border-2 border-white/30 border-t-white rounded-full")),
			g.Text(m.SubmittingLabel),
		})
	}
	return g.Group([]g.Node{
		Icon("send", "size-5", ""),
		g.Text(m.SubmitLabel),
	})
}

func field(id, label string, input g.Node) g.Node {
	return Div(
		Label(For(id), Class("block text-sm font-medium text-gray-300 mb-2"), g.Text(label)),
		input,
	)
}

func successPanel(m i18n.Messages) g.Node {
	return Div(
		Class("text-center py-12 success-enter"),
		Div(
			Class("bg-green-500/20 w-20 h-20 rounded-full flex items-center justify-center mx-auto mb-6"),
			Icon("check-circle", "size-10 text-green-400", ""),
		),
		H3(Class("text-3xl font-bold text-white mb-4"), g.Text(m.SuccessTitle)),
		P(Class("text-gray-400 mb-8 max-w-md mx-auto"), g.Text(m.SuccessBody)),
		Form(
			Method("post"),
			Action(ContactResetAction),
			g.Attr("data-contact-reset", ""),
			g.Attr("data-network-error", m.NetworkFailure),
			Button(
				Type("submit"),
				Class("text-blue-400 hover:text-blue-300 font-semibold transition-colors"),
				g.Text(m.SendAnotherLabel),
			),
		),
	)
}
