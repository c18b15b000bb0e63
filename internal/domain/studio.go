package domain

import "time"

// Messages is one locale's resolved message tree: a nested mapping from keys
// to strings, string arrays, or typed record arrays, consumed by every page.
type Messages = map[string]any

// MediaType categorises an uploaded media asset.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one entry of the admin media library.
type MediaItem struct {
	ID        string    `json:"id"`
	Locale    Locale    `json:"locale"`
	Type      MediaType `json:"type"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	RawURL    string    `json:"rawUrl,omitempty"`
	Pathname  string    `json:"pathname,omitempty"`
	CreatedAt string    `json:"createdAt"`
}

// StudioGlobal carries site-wide overrides authored through the admin panel.
type StudioGlobal struct {
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
}

// StudioLocale holds one locale's message patch. The patch is an arbitrary
// partial mirror of the message tree and is merged in with the highest
// precedence.
type StudioLocale struct {
	Messages Messages `json:"messages,omitempty"`
}

// StudioContent is the admin content document persisted as one JSON blob.
type StudioContent struct {
	UpdatedAt    string                  `json:"updatedAt"`
	Global       *StudioGlobal           `json:"global,omitempty"`
	Locales      map[Locale]StudioLocale `json:"locales"`
	MediaLibrary []MediaItem             `json:"mediaLibrary"`
}

// EmptyStudioContent builds a fresh document with empty locale patches.
func EmptyStudioContent(now time.Time) *StudioContent {
	return &StudioContent{
		UpdatedAt: now.UTC().Format(time.RFC3339),
		Locales: map[Locale]StudioLocale{
			LocaleHebrew:  {},
			LocaleEnglish: {},
		},
		MediaLibrary: []MediaItem{},
	}
}

// PatchFor returns the message patch for the locale, or nil when absent.
func (c *StudioContent) PatchFor(locale Locale) Messages {
	if c == nil {
		return nil
	}
	return c.Locales[locale].Messages
}

// WhatsappOverride returns the admin WhatsApp number override when set.
func (c *StudioContent) WhatsappOverride() string {
	if c == nil || c.Global == nil {
		return ""
	}
	return c.Global.WhatsappNumber
}
