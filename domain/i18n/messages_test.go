package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestNewCatalog_Default(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"ru", language.Russian},
		{"en", language.English},
		{"en-GB", language.English},
		{"", language.Russian},
		{"not a tag", language.Russian},
		{"de", language.Russian},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewCatalog(tt.locale).Default().Tag)
		})
	}
}

func TestCatalog_ForAcceptLanguage(t *testing.T) {
	catalog := NewCatalog("ru")

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty header", "", "Что-то пошло не так"},
		{"english", "en-US,en;q=0.9", "Something went wrong"},
		{"russian", "ru-RU", "Что-то пошло не так"},
		{"weighted english first", "de;q=0.5,en;q=0.8", "Something went wrong"},
		{"unsupported", "ja", "Что-то пошло не так"},
		{"garbage", ";;;", "Что-то пошло не так"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ForAcceptLanguage(tt.header).GenericFailure)
		})
	}
}

func TestFallbackTexts(t *testing.T) {
	ru := NewCatalog("ru").Default()
	assert.Equal(t, "Ошибка сети. Попробуйте снова.", ru.NetworkFailure)

	en := NewCatalog("en").Default()
	assert.Equal(t, "Network error. Please try again.", en.NetworkFailure)
}
