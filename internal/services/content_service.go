package services

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/business-start/api/internal/catalog"
	domain "github.com/business-start/api/internal/domain"
)

// defaultWhatsappNumber is the last-resort contact number when neither the
// admin panel, the CMS, nor the catalog provides one.
const defaultWhatsappNumber = "972500000000"

const (
	maxServiceItems = 8
	maxCardFeatures = 5
)

// portfolioFallbackVisuals cycles through the bundled case-study artwork for
// CMS portfolio entries without uploaded media.
var portfolioFallbackVisuals = []string{
	"/portfolio/helix.svg",
	"/portfolio/nera.svg",
	"/portfolio/axis.svg",
}

// StudioReader exposes the admin content document to the resolver layer.
type StudioReader interface {
	Read(ctx context.Context) *domain.StudioContent
}

// ContentServiceDeps groups constructor parameters for the content service.
type ContentServiceDeps struct {
	Catalog   *catalog.Catalog
	Snapshots SnapshotSource
	Studio    StudioReader
	Logger    *zap.Logger
}

// ContentService resolves the final per-locale message tree: static catalog,
// overlaid with CMS content, patched with admin overrides.
type ContentService struct {
	catalog   *catalog.Catalog
	snapshots SnapshotSource
	studio    StudioReader
	logger    *zap.Logger
}

// ErrCatalogMissing signals that the message catalog dependency is absent.
var ErrCatalogMissing = errors.New("content service: message catalog is not configured")

// NewContentService constructs the content service.
func NewContentService(deps ContentServiceDeps) (*ContentService, error) {
	if deps.Catalog == nil {
		return nil, ErrCatalogMissing
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentService{
		catalog:   deps.Catalog,
		snapshots: deps.Snapshots,
		studio:    deps.Studio,
		logger:    logger,
	}, nil
}

// Resolve builds the complete message tree for the locale. It never fails:
// an unreachable CMS or blob store degrades to the static catalog.
func (s *ContentService) Resolve(ctx context.Context, locale domain.Locale) domain.Messages {
	content := s.catalog.Clone(locale)

	var snapshot *domain.Snapshot
	if s.snapshots != nil {
		snapshot = s.snapshots.Snapshot(ctx)
	}
	if snapshot != nil {
		overlaySnapshot(content, snapshot, locale)
	}

	var patch *domain.StudioContent
	if s.studio != nil {
		patch = s.studio.Read(ctx)
	}
	if messages := patch.PatchFor(locale); messages != nil {
		content = catalog.Merge(content, messages)
	}

	applyWhatsappPrecedence(content, snapshot, patch)
	return content
}

// applyWhatsappPrecedence settles the effective WhatsApp number: admin patch
// first, then CMS, then catalog, then the shared default.
func applyWhatsappPrecedence(content domain.Messages, snapshot *domain.Snapshot, patch *domain.StudioContent) {
	number := patch.WhatsappOverride()
	if number == "" && snapshot != nil && snapshot.Global != nil {
		number = snapshot.Global.WhatsappNumber
	}
	if number == "" {
		if existing, ok := catalog.Get(content, "global.whatsappNumber"); ok {
			number, _ = existing.(string)
		}
	}
	if number == "" {
		number = defaultWhatsappNumber
	}
	catalog.Set(content, "global.whatsappNumber", number)
}

func overlaySnapshot(content domain.Messages, snapshot *domain.Snapshot, locale domain.Locale) {
	overlayNavigation(content, snapshot.Navigation, locale)
	overlayHome(content, snapshot.Home, locale)
	overlayServices(content, snapshot.Services, locale)
	overlaySolutions(content, snapshot.Solutions, locale)
	overlayPackages(content, snapshot.Packages, locale)
	overlayPortfolio(content, snapshot.Portfolio, locale)
	overlayFaq(content, snapshot.FAQ, locale)
	overlayContact(content, snapshot.Global, locale)

	for pageKey, section := range map[string]string{
		"services":  "servicesPage",
		"solutions": "solutionsPage",
		"pricing":   "pricingPage",
		"portfolio": "portfolioPage",
		"about":     "aboutPage",
		"contact":   "contactPage",
	} {
		if page := findPage(snapshot.Pages, pageKey); page != nil {
			overlayPage(content, section, page, locale)
		}
	}
}

func overlayNavigation(content domain.Messages, nav *domain.Navigation, locale domain.Locale) {
	if nav != nil && len(nav.Items) > 0 {
		items := append([]domain.NavItem(nil), nav.Items...)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].SortOrder() < items[j].SortOrder()
		})
		links := make([]any, 0, len(items))
		for _, item := range items {
			href := item.Href.Pick(locale)
			if href == "" {
				href = "/"
			}
			links = append(links, map[string]any{
				"label": item.Label.Pick(locale),
				"path":  href,
			})
		}
		catalog.Set(content, "nav.links", links)
	}

	var primaryCta, primaryHref, secondaryCta, secondaryHref string
	if nav != nil {
		primaryCta = nav.PrimaryCtaLabel.Pick(locale)
		primaryHref = nav.PrimaryCtaHref.Pick(locale)
		secondaryCta = nav.SecondaryCtaLabel.Pick(locale)
		secondaryHref = nav.SecondaryCtaHref.Pick(locale)
	}
	if primaryCta == "" {
		primaryCta = "WhatsApp"
	}
	if secondaryCta == "" {
		if locale == domain.LocaleHebrew {
			secondaryCta = "בקשת הצעה"
		} else {
			secondaryCta = "Get a quote"
		}
	}
	if secondaryHref == "" {
		secondaryHref = "/contact"
	}
	catalog.Set(content, "nav.primaryCta", primaryCta)
	catalog.Set(content, "nav.primaryCtaHref", primaryHref)
	catalog.Set(content, "nav.secondaryCta", secondaryCta)
	catalog.Set(content, "nav.secondaryCtaHref", secondaryHref)
}

func overlayHome(content domain.Messages, home *domain.HomePage, locale domain.Locale) {
	if home == nil {
		return
	}
	catalog.SetString(content, "hero.eyebrow", home.HeroEyebrow.Pick(locale))
	catalog.SetString(content, "hero.title", home.HeroTitle.Pick(locale))
	catalog.SetString(content, "hero.description", home.HeroDescription.Pick(locale))
	catalog.SetString(content, "hero.trust", home.HeroTrust.Pick(locale))
	catalog.SetString(content, "hero.primaryCta", home.HeroPrimaryCta.Pick(locale))
	catalog.SetString(content, "hero.secondaryCta", home.HeroSecondaryCta.Pick(locale))
	catalog.SetString(content, "whatWeDo.title", home.WhoTitle.Pick(locale))
	catalog.SetString(content, "whatWeDo.description", home.WhoDescription.Pick(locale))
	catalog.SetString(content, "process.title", home.HowTitle.Pick(locale))
	catalog.SetString(content, "process.description", home.HowDescription.Pick(locale))
	catalog.SetString(content, "outcomes.title", home.BenefitsTitle.Pick(locale))
	catalog.SetString(content, "outcomes.description", home.BenefitsDescription.Pick(locale))
	catalog.SetString(content, "cta.title", home.CtaTitle.Pick(locale))
	catalog.SetString(content, "cta.description", home.CtaDescription.Pick(locale))
}

func overlayServices(content domain.Messages, services []domain.Service, locale domain.Locale) {
	if len(services) == 0 {
		return
	}

	items := make([]any, 0, maxServiceItems)
	var standardCards, solutionCards []any
	for _, service := range services {
		title := service.Title.Pick(locale)
		description := service.ShortValue.Pick(locale)
		if description == "" {
			description = service.ShortDescription.Pick(locale)
		}
		if len(items) < maxServiceItems {
			items = append(items, map[string]any{
				"title":       title,
				"description": description,
			})
		}

		features := domain.PickAll(service.Deliverables, locale)
		if len(features) > maxCardFeatures {
			features = features[:maxCardFeatures]
		}
		card := map[string]any{
			"title":    title,
			"audience": service.Subtitle.Pick(locale),
			"features": toAnySlice(features),
			"timeline": service.DeliveryTime.Pick(locale),
			"price":    service.PriceFrom,
			"slug":     service.Slug.ForLocale(locale),
		}
		if service.CardType == domain.CardTypeSolution {
			solutionCards = append(solutionCards, card)
		} else {
			standardCards = append(standardCards, card)
		}
	}

	catalog.Set(content, "services.items", items)
	catalog.Set(content, "servicesPage.standardCards", emptyIfNil(standardCards))
	catalog.Set(content, "servicesPage.solutionCards", emptyIfNil(solutionCards))
}

func overlaySolutions(content domain.Messages, solutions []domain.Solution, locale domain.Locale) {
	if len(solutions) == 0 {
		return
	}
	cards := make([]any, 0, len(solutions))
	for _, solution := range solutions {
		cards = append(cards, map[string]any{
			"title":   solution.Title.Pick(locale),
			"fit":     solution.Problem.Pick(locale),
			"include": toAnySlice(domain.PickAll(solution.IncludedItems, locale)),
			"price":   solution.PriceFrom,
			"slug":    solution.Slug.ForLocale(locale),
		})
	}
	catalog.Set(content, "solutionsPage.cards", cards)
}

func overlayPackages(content domain.Messages, packages []domain.Package, locale domain.Locale) {
	active := make([]domain.Package, 0, len(packages))
	for _, pkg := range packages {
		if pkg.IsActive() {
			active = append(active, pkg)
		}
	}
	if len(active) == 0 {
		return
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder() < active[j].SortOrder()
	})

	tiers := make([]any, 0, len(active))
	for _, pkg := range active {
		audience := pkg.WhoFor.Pick(locale)
		if audience == "" {
			audience = pkg.Summary.Pick(locale)
		}
		tiers = append(tiers, map[string]any{
			"title":    pkg.Name.Pick(locale),
			"audience": audience,
			"features": toAnySlice(domain.PickAll(pkg.Features, locale)),
			"price":    pkg.Price,
		})
	}
	catalog.Set(content, "pricingPage.tiers", tiers)
}

func overlayPortfolio(content domain.Messages, projects []domain.PortfolioProject, locale domain.Locale) {
	if len(projects) == 0 {
		return
	}
	sorted := append([]domain.PortfolioProject(nil), projects...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder() < sorted[j].SortOrder()
	})

	items := make([]any, 0, len(sorted))
	for index, project := range sorted {
		title := project.Title.Pick(locale)
		subtitle := project.ShortDescription.Pick(locale)
		if subtitle == "" {
			subtitle = project.ClientType.Pick(locale)
		}
		metric := project.Category
		if metric == "" {
			metric = "Case"
		}
		visual := ""
		if len(project.Media) > 0 {
			visual = project.Media[0].URL()
		}
		if visual == "" {
			visual = portfolioFallbackVisuals[index%len(portfolioFallbackVisuals)]
		}
		items = append(items, map[string]any{
			"title":    title,
			"subtitle": subtitle,
			"metric":   metric,
			"alt":      title,
			"visual":   visual,
		})
	}
	catalog.Set(content, "portfolio.items", items)
}

func overlayFaq(content domain.Messages, faq []domain.FaqItem, locale domain.Locale) {
	sorted := append([]domain.FaqItem(nil), faq...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder() < sorted[j].SortOrder()
	})

	items := make([]any, 0, len(sorted))
	for _, entry := range sorted {
		question := entry.Question.Pick(locale)
		answer := entry.Answer.Pick(locale)
		if question == "" || answer == "" {
			continue
		}
		items = append(items, map[string]any{
			"question": question,
			"answer":   answer,
		})
	}
	if len(items) > 0 {
		catalog.Set(content, "faq.items", items)
	}
}

func overlayContact(content domain.Messages, global *domain.GlobalSettings, locale domain.Locale) {
	if global == nil {
		return
	}

	whatsapp := global.WhatsappNumber
	if whatsapp == "" {
		whatsapp = catalogChannelValue(content, 0)
	}
	phoneLabel := "Phone"
	if locale == domain.LocaleHebrew {
		phoneLabel = "טלפון"
	}
	channels := make([]any, 0, 3)
	for _, channel := range []struct {
		label string
		value string
	}{
		{"WhatsApp", whatsapp},
		{phoneLabel, global.Phone},
		{"Email", global.Email},
	} {
		if channel.value == "" {
			continue
		}
		channels = append(channels, map[string]any{
			"label": channel.label,
			"value": channel.value,
		})
	}
	catalog.Set(content, "contact.channels", channels)
	catalog.Set(content, "global.whatsappNumber", global.WhatsappNumber)
}

func overlayPage(content domain.Messages, section string, page *domain.PageContent, locale domain.Locale) {
	if page.SEO != nil {
		catalog.SetString(content, section+".metaTitle", page.SEO.Title.Pick(locale))
		catalog.SetString(content, section+".metaDescription", page.SEO.Description.Pick(locale))
	}
	catalog.SetString(content, section+".eyebrow", page.Eyebrow.Pick(locale))
	catalog.SetString(content, section+".title", page.Title.Pick(locale))
	catalog.SetString(content, section+".description", page.Description.Pick(locale))
}

func findPage(pages []domain.PageContent, key string) *domain.PageContent {
	for i := range pages {
		if pages[i].PageKey == key {
			return &pages[i]
		}
	}
	return nil
}

func catalogChannelValue(content domain.Messages, index int) string {
	raw, ok := catalog.Get(content, "contact.channels")
	if !ok {
		return ""
	}
	channels, ok := raw.([]any)
	if !ok || index >= len(channels) {
		return ""
	}
	entry, ok := channels[index].(map[string]any)
	if !ok {
		return ""
	}
	value, _ := entry["value"].(string)
	return value
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func emptyIfNil(values []any) []any {
	if values == nil {
		return []any{}
	}
	return values
}
