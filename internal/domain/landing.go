package domain

// LandingKind distinguishes the two landing page families.
type LandingKind string

const (
	LandingService  LandingKind = "service"
	LandingSolution LandingKind = "solution"
)

// PathSegment returns the site path segment hosting the landing family.
func (k LandingKind) PathSegment() string {
	if k == LandingSolution {
		return "solutions"
	}
	return "services"
}

// IsLandingKind reports whether value names a supported landing kind.
func IsLandingKind(value string) bool {
	switch LandingKind(value) {
	case LandingService, LandingSolution:
		return true
	}
	return false
}

// LandingRecord is the normalized view of a service or solution used to
// render a dedicated marketing page and its SEO metadata.
type LandingRecord struct {
	ID            string      `json:"id"`
	Kind          LandingKind `json:"type"`
	Slug          string      `json:"slug"`
	AlternateSlug string      `json:"alternateSlug"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Bullets       []string    `json:"bullets"`
	Price         string      `json:"price"`
	SEOTitle      string      `json:"seoTitle"`
	SEODescription string     `json:"seoDescription"`
	Noindex       bool        `json:"noindex,omitempty"`
	OgImage       string      `json:"ogImage,omitempty"`
}

// LandingParam is one build-time {locale, slug} pair for path generation.
type LandingParam struct {
	Locale Locale      `json:"locale"`
	Kind   LandingKind `json:"type"`
	Slug   string      `json:"slug"`
}
