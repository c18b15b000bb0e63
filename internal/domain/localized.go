package domain

import (
	"encoding/json"
	"strings"
)

// Localized models a CMS field that is either a plain string or an object
// keyed by locale. Resolution follows the site's fallback chain:
// requested locale, then English, then Hebrew, then empty string.
type Localized struct {
	plain    string
	isPlain  bool
	byLocale map[Locale]string
}

// PlainLocalized wraps a plain string value.
func PlainLocalized(value string) Localized {
	return Localized{plain: value, isPlain: true}
}

// LocalizedIn builds a locale-keyed value (used by tests and fallbacks).
func LocalizedIn(he, en string) Localized {
	return Localized{byLocale: map[Locale]string{LocaleHebrew: he, LocaleEnglish: en}}
}

// UnmarshalJSON accepts a JSON string, null, or {"he": ..., "en": ...}.
func (l *Localized) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*l = Localized{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var plain string
		if err := json.Unmarshal(data, &plain); err != nil {
			return err
		}
		*l = Localized{plain: plain, isPlain: true}
		return nil
	}
	var raw struct {
		He *string `json:"he"`
		En *string `json:"en"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	values := make(map[Locale]string, 2)
	if raw.He != nil {
		values[LocaleHebrew] = *raw.He
	}
	if raw.En != nil {
		values[LocaleEnglish] = *raw.En
	}
	*l = Localized{byLocale: values}
	return nil
}

// Pick resolves the value for the requested locale through the fallback chain.
func (l Localized) Pick(locale Locale) string {
	if l.isPlain {
		return l.plain
	}
	if l.byLocale == nil {
		return ""
	}
	if value := l.byLocale[locale]; value != "" {
		return value
	}
	if value := l.byLocale[LocaleEnglish]; value != "" {
		return value
	}
	return l.byLocale[LocaleHebrew]
}

// IsZero reports whether no value is present for any locale.
func (l Localized) IsZero() bool {
	if l.isPlain {
		return l.plain == ""
	}
	for _, v := range l.byLocale {
		if v != "" {
			return false
		}
	}
	return true
}

// PickAll resolves a slice of localized values, dropping empty results.
func PickAll(values []Localized, locale Locale) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if picked := value.Pick(locale); picked != "" {
			out = append(out, picked)
		}
	}
	return out
}
