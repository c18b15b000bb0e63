package domain

// Snapshot is one fetched, in-memory copy of all CMS-managed content for the
// current request. Every field is optional: a partially populated document set
// overlays only the fields it carries.
type Snapshot struct {
	Global     *GlobalSettings    `json:"global"`
	Navigation *Navigation        `json:"navigation"`
	Home       *HomePage          `json:"home"`
	Pages      []PageContent      `json:"pages"`
	Services   []Service          `json:"services"`
	Solutions  []Solution         `json:"solutions"`
	Packages   []Package          `json:"packages"`
	Portfolio  []PortfolioProject `json:"portfolio"`
	FAQ        []FaqItem          `json:"faq"`
}

// GlobalSettings is the CMS singleton with site-wide contact details.
type GlobalSettings struct {
	WhatsappNumber string       `json:"whatsappNumber"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email"`
	SocialLinks    []SocialLink `json:"socialLinks"`
}

// SocialLink points at one social profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Navigation is the CMS singleton describing the header menu and CTAs.
type Navigation struct {
	Items             []NavItem `json:"items"`
	PrimaryCtaLabel   Localized `json:"primaryCtaLabel"`
	PrimaryCtaHref    Localized `json:"primaryCtaHref"`
	SecondaryCtaLabel Localized `json:"secondaryCtaLabel"`
	SecondaryCtaHref  Localized `json:"secondaryCtaHref"`
}

// NavItem is a single menu entry. Order defaults to 100 when absent so
// unordered entries sort after explicitly ordered ones.
type NavItem struct {
	Label Localized `json:"label"`
	Href  Localized `json:"href"`
	Order *int      `json:"order"`
}

// SortOrder returns the effective ordering weight for the item.
func (n NavItem) SortOrder() int {
	if n.Order == nil {
		return 100
	}
	return *n.Order
}

// HomePage is the CMS singleton with hero and home-section copy.
type HomePage struct {
	HeroEyebrow         Localized `json:"heroEyebrow"`
	HeroTitle           Localized `json:"heroTitle"`
	HeroDescription     Localized `json:"heroDescription"`
	HeroTrust           Localized `json:"heroTrust"`
	HeroPrimaryCta      Localized `json:"heroPrimaryCta"`
	HeroSecondaryCta    Localized `json:"heroSecondaryCta"`
	WhoTitle            Localized `json:"whoTitle"`
	WhoDescription      Localized `json:"whoDescription"`
	HowTitle            Localized `json:"howTitle"`
	HowDescription      Localized `json:"howDescription"`
	BenefitsTitle       Localized `json:"benefitsTitle"`
	BenefitsDescription Localized `json:"benefitsDescription"`
	CtaTitle            Localized `json:"ctaTitle"`
	CtaDescription      Localized `json:"ctaDescription"`
}

// PageContent carries eyebrow/title/description and SEO copy for one of the
// six named static pages (services, solutions, pricing, portfolio, about,
// contact), keyed by PageKey.
type PageContent struct {
	PageKey     string    `json:"pageKey"`
	Eyebrow     Localized `json:"eyebrow"`
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	SEO         *PageSEO  `json:"seo"`
}

// PageSEO holds per-page meta title and description overrides.
type PageSEO struct {
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
}

// EntitySEO holds the SEO block attached to services and solutions.
type EntitySEO struct {
	Title       Localized `json:"title"`
	Description Localized `json:"description"`
	Canonical   Localized `json:"canonical"`
	Noindex     bool      `json:"noindex"`
	OgImage     *ImageRef `json:"ogImage"`
}

// ImageRef resolves a CMS image reference to its asset URL.
type ImageRef struct {
	Asset *struct {
		URL string `json:"url"`
	} `json:"asset"`
}

// URL returns the asset URL or empty when unresolved.
func (r *ImageRef) URL() string {
	if r == nil || r.Asset == nil {
		return ""
	}
	return r.Asset.URL
}

// CardType distinguishes the two service card layouts.
type CardType string

const (
	CardTypeStandard CardType = "standard"
	CardTypeSolution CardType = "solution"
)

// Service is one CMS service document.
type Service struct {
	ID               string      `json:"_id"`
	Title            Localized   `json:"title"`
	Slug             SlugPair    `json:"slug"`
	Subtitle         Localized   `json:"subtitle"`
	ShortValue       Localized   `json:"shortValue"`
	ShortDescription Localized   `json:"shortDescription"`
	FullDescription  Localized   `json:"fullDescription"`
	Category         string      `json:"category"`
	CardType         CardType    `json:"cardType"`
	Deliverables     []Localized `json:"deliverables"`
	DeliveryTime     Localized   `json:"deliveryTime"`
	PriceFrom        string      `json:"priceFrom"`
	SEO              *EntitySEO  `json:"seo"`
	Order            *int        `json:"order"`
	IsFeatured       bool        `json:"isFeatured"`
}

// Solution is one CMS solution document.
type Solution struct {
	ID            string      `json:"_id"`
	Title         Localized   `json:"title"`
	Slug          SlugPair    `json:"slug"`
	Problem       Localized   `json:"problem"`
	Outcome       Localized   `json:"outcome"`
	IncludedItems []Localized `json:"includedItems"`
	DeliveryTime  Localized   `json:"deliveryTime"`
	PriceFrom     string      `json:"priceFrom"`
	SEO           *EntitySEO  `json:"seo"`
	Order         *int        `json:"order"`
	IsFeatured    bool        `json:"isFeatured"`
}

// Package is one CMS pricing package document.
type Package struct {
	Name         Localized   `json:"name"`
	Summary      Localized   `json:"summary"`
	WhoFor       Localized   `json:"whoFor"`
	Features     []Localized `json:"features"`
	Price        string      `json:"price"`
	Active       *bool       `json:"active"`
	DisplayOrder *int        `json:"displayOrder"`
}

// IsActive reports whether the package should be shown; packages default to
// active unless explicitly disabled.
func (p Package) IsActive() bool {
	return p.Active == nil || *p.Active
}

// SortOrder returns the effective display ordering weight.
func (p Package) SortOrder() int {
	if p.DisplayOrder == nil {
		return 100
	}
	return *p.DisplayOrder
}

// PortfolioProject is one CMS portfolio case document.
type PortfolioProject struct {
	Title            Localized  `json:"title"`
	Category         string     `json:"category"`
	ClientType       Localized  `json:"clientType"`
	ShortDescription Localized  `json:"shortDescription"`
	Media            []ImageRef `json:"media"`
	DisplayOrder     *int       `json:"displayOrder"`
}

// SortOrder returns the effective display ordering weight.
func (p PortfolioProject) SortOrder() int {
	if p.DisplayOrder == nil {
		return 100
	}
	return *p.DisplayOrder
}

// FaqItem is one CMS FAQ entry.
type FaqItem struct {
	Question     Localized `json:"question"`
	Answer       Localized `json:"answer"`
	DisplayOrder *int      `json:"displayOrder"`
}

// SortOrder returns the effective display ordering weight.
func (f FaqItem) SortOrder() int {
	if f.DisplayOrder == nil {
		return 100
	}
	return *f.DisplayOrder
}
