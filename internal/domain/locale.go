package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the two supported site languages.
type Locale string

const (
	// LocaleHebrew is the primary site locale, rendered right-to-left.
	LocaleHebrew Locale = "he"
	// LocaleEnglish is the secondary site locale, rendered left-to-right.
	LocaleEnglish Locale = "en"

	// DefaultLocale is used whenever a request carries no usable locale.
	DefaultLocale = LocaleHebrew
)

// SupportedLocales lists every locale the site serves, in canonical order.
var SupportedLocales = []Locale{LocaleHebrew, LocaleEnglish}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.Hebrew,
	language.English,
})

// IsLocale reports whether value names a supported locale exactly.
func IsLocale(value string) bool {
	switch Locale(value) {
	case LocaleHebrew, LocaleEnglish:
		return true
	}
	return false
}

// LocaleOrDefault returns the supported locale named by value, or DefaultLocale.
func LocaleOrDefault(value string) Locale {
	if IsLocale(value) {
		return Locale(value)
	}
	return DefaultLocale
}

// ParseLocale resolves an arbitrary BCP 47 tag (e.g. "he-IL", "en-US") to a
// supported locale. Unparseable or unrelated tags resolve to DefaultLocale.
func ParseLocale(value string) Locale {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultLocale
	}
	if IsLocale(value) {
		return Locale(value)
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultLocale
	}
	_, index, confidence := localeMatcher.Match(tag)
	if confidence == language.No {
		return DefaultLocale
	}
	if index == 1 {
		return LocaleEnglish
	}
	return LocaleHebrew
}

// Alternate returns the other supported locale.
func (l Locale) Alternate() Locale {
	if l == LocaleHebrew {
		return LocaleEnglish
	}
	return LocaleHebrew
}

// Direction returns the text direction for the locale ("rtl" or "ltr").
func (l Locale) Direction() string {
	if l == LocaleHebrew {
		return "rtl"
	}
	return "ltr"
}

// String implements fmt.Stringer.
func (l Locale) String() string { return string(l) }
