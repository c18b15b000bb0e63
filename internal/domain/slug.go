package domain

import "encoding/json"

// SlugPair holds the two locale-specific URL identifiers of one entity.
// Hebrew and English routes for the same service may use different slugs.
type SlugPair struct {
	He string
	En string
}

// UnmarshalJSON accepts the CMS shape {"he":{"current":...},"en":{"current":...}}.
func (s *SlugPair) UnmarshalJSON(data []byte) error {
	var raw struct {
		He *struct {
			Current string `json:"current"`
		} `json:"he"`
		En *struct {
			Current string `json:"current"`
		} `json:"en"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SlugPair{}
	if raw.He != nil {
		s.He = raw.He.Current
	}
	if raw.En != nil {
		s.En = raw.En.Current
	}
	return nil
}

// ForLocale returns the slug for the requested locale, falling back to the
// other locale's slug when the requested one is empty.
func (s SlugPair) ForLocale(locale Locale) string {
	current, other := s.He, s.En
	if locale == LocaleEnglish {
		current, other = s.En, s.He
	}
	if current != "" {
		return current
	}
	return other
}

// Alternate returns the other locale's slug for hreflang links. When the other
// locale has no slug it self-falls-back to the current locale's slug so an
// alternate link never has an empty path segment.
func (s SlugPair) Alternate(locale Locale) string {
	other := s.En
	if locale == LocaleEnglish {
		other = s.He
	}
	if other != "" {
		return other
	}
	return s.ForLocale(locale)
}

// Routable reports whether the entity carries a slug in both locales, making
// it eligible for build-time path enumeration.
func (s SlugPair) Routable() bool {
	return s.He != "" && s.En != ""
}
