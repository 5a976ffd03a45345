// Package i18n holds the user-facing copy that is produced by code rather
// than by page content: fallback error texts and form chrome.
package i18n

import (
	"golang.org/x/text/language"
)

// Messages is one locale's catalog.
type Messages struct {
	Tag language.Tag

	// Fallbacks surfaced when the relay gives no message of its own
	GenericFailure string
	NetworkFailure string
	RateLimited    string
	MissingFields  string
	AlreadySending string

	// Contact form chrome
	NameLabel          string
	NamePlaceholder    string
	EmailLabel         string
	SubjectLabel       string
	SubjectPlaceholder string
	MessageLabel       string
	MessagePlaceholder string
	SubmitLabel        string
	SubmittingLabel    string
	SuccessTitle       string
	SuccessBody        string
	SendAnotherLabel   string
	FormTitle          string
}

var russian = Messages{
	Tag:                language.Russian,
	GenericFailure:     "Что-то пошло не так",
	NetworkFailure:     "Ошибка сети. Попробуйте снова.",
	RateLimited:        "Слишком много попыток. Попробуйте через минуту.",
	MissingFields:      "Заполните все поля формы.",
	AlreadySending:     "Сообщение уже отправляется. Дождитесь результата.",
	NameLabel:          "Имя",
	NamePlaceholder:    "Ваше имя",
	EmailLabel:         "Email",
	SubjectLabel:       "Тема",
	SubjectPlaceholder: "Тема сообщения",
	MessageLabel:       "Сообщение",
	MessagePlaceholder: "Ваше сообщение...",
	SubmitLabel:        "Отправить сообщение",
	SubmittingLabel:    "Отправка...",
	SuccessTitle:       "Сообщение отправлено!",
	SuccessBody:        "Спасибо за обращение. Мы свяжемся с вами в ближайшее время.",
	SendAnotherLabel:   "Отправить еще сообщение",
	FormTitle:          "Отправить сообщение",
}

var english = Messages{
	Tag:                language.English,
	GenericFailure:     "Something went wrong",
	NetworkFailure:     "Network error. Please try again.",
	RateLimited:        "Too many attempts. Please try again in a minute.",
	MissingFields:      "Please fill in every field.",
	AlreadySending:     "Your message is already being sent. Please wait for the result.",
	NameLabel:          "Name",
	NamePlaceholder:    "Your name",
	EmailLabel:         "Email",
	SubjectLabel:       "Subject",
	SubjectPlaceholder: "Message subject",
	MessageLabel:       "Message",
	MessagePlaceholder: "Your message...",
	SubmitLabel:        "Send message",
	SubmittingLabel:    "Sending...",
	SuccessTitle:       "Message sent!",
	SuccessBody:        "Thanks for reaching out. We will get back to you shortly.",
	SendAnotherLabel:   "Send another message",
	FormTitle:          "Send a message",
}

// Catalog resolves a locale for a request.
type Catalog struct {
	fallback Messages
	matcher  language.Matcher
	byTag    []Messages
}

// NewCatalog builds a catalog whose default is the given locale.
// Unknown defaults resolve to Russian.
func NewCatalog(defaultLocale string) *Catalog {
	all := []Messages{russian, english}

	fallback := russian
	if tag, err := language.Parse(defaultLocale); err == nil {
		base, _ := tag.Base()
		for _, m := range all {
			if mb, _ := m.Tag.Base(); mb == base {
				fallback = m
			}
		}
	}

	// The matcher prefers its first tag when nothing matches, so the
	// configured default goes first.
	ordered := []Messages{fallback}
	for _, m := range all {
		if m.Tag != fallback.Tag {
			ordered = append(ordered, m)
		}
	}
	tags := make([]language.Tag, len(ordered))
	for i, m := range ordered {
		tags[i] = m.Tag
	}

	return &Catalog{
		fallback: fallback,
		matcher:  language.NewMatcher(tags),
		byTag:    ordered,
	}
}

// Default returns the configured locale's messages.
func (c *Catalog) Default() Messages {
	return c.fallback
}

// ForAcceptLanguage picks messages for an Accept-Language header value.
func (c *Catalog) ForAcceptLanguage(header string) Messages {
	if header == "" {
		return c.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return c.fallback
	}
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return c.fallback
	}
	return c.byTag[idx]
}
