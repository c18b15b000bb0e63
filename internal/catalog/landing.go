package catalog

import "github.com/business-start/api/internal/domain"

// fallbackLandings is the static landing-page table used when the CMS has no
// matching entity (or no CMS is configured). Slugs are shared across locales
// for the fallback set, so each record's alternate slug equals its own.
var fallbackLandings = map[domain.Locale][]domain.LandingRecord{
	domain.LocaleHebrew: {
		{
			ID:             "svc-food",
			Kind:           domain.LandingService,
			Slug:           "food-photography",
			AlternateSlug:  "food-photography",
			Title:          "צילום אוכל לעסקים שמוכרים חוויה",
			Description:    "צילום מנות, מוצרים ונראות עסקית למסעדות, קפה וקייטרינג.",
			Bullets:        []string{"צילום מנות מקצועי", "עריכת תמונה לרשת", "קבצים לאתר ורשתות"},
			Price:          "החל מ-1,800 ₪",
			SEOTitle:       "צילום אוכל לעסקים | Business Start Studio",
			SEODescription: "שירות צילום אוכל ומוצר למסעדות ובתי קפה עם מיקוד תוצאה עסקית.",
		},
		{
			ID:             "svc-reels",
			Kind:           domain.LandingService,
			Slug:           "reels-content",
			AlternateSlug:  "reels-content",
			Title:          "תוכן Reels שמביא תשומת לב ופניות",
			Description:    "הפקת וידאו קצר לעסקים שרוצים חשיפה ותנועה לפנייה.",
			Bullets:        []string{"צילום יום מרוכז", "עריכת וידאו קצר", "גרסאות לרשתות"},
			Price:          "החל מ-1,500 ₪",
			SEOTitle:       "תוכן רילס לעסקים | Business Start Studio",
			SEODescription: "חבילת וידאו קצר לרשתות חברתיות עם מיקוד בפניות ראשונות.",
		},
		{
			ID:             "svc-mini-site",
			Kind:           domain.LandingService,
			Slug:           "mini-site-for-business",
			AlternateSlug:  "mini-site-for-business",
			Title:          "מיני-אתר עסקי שמסביר וממיר",
			Description:    "דף שירות מהיר עם מסר ברור וכפתור WhatsApp לפניות.",
			Bullets:        []string{"עמוד מותאם לנייד", "ניסוח מסר שירות", "קריאה לפעולה ברורה"},
			Price:          "החל מ-2,200 ₪",
			SEOTitle:       "מיני-אתר לעסק | Business Start Studio",
			SEODescription: "בניית דף שירות/מיני-אתר לעסקים שרוצים פניות ברורות יותר.",
		},
		{
			ID:             "sol-qr",
			Kind:           domain.LandingSolution,
			Slug:           "qr-menu",
			AlternateSlug:  "qr-menu",
			Title:          "פתרון QR Menu למסעדות",
			Description:    "תפריט QR + דף שירות + WhatsApp להזמנות ופניות.",
			Bullets:        []string{"קישור תפריט מהיר", "דף מותאם מובייל", "מסלול ברור להזמנה"},
			Price:          "החל מ-2,500 ₪",
			SEOTitle:       "QR Menu + Mini Site | Business Start Studio",
			SEODescription: "פתרון QR ותפריט דיגיטלי למסעדות עם פוקוס על הזמנה ופנייה.",
		},
		{
			ID:             "sol-beauty",
			Kind:           domain.LandingSolution,
			Slug:           "beauty-booking",
			AlternateSlug:  "beauty-booking",
			Title:          "מערכת הזמנות לעסקי ביוטי",
			Description:    "תוכן, עמוד הזמנה ונכסי פרסום לקליניקות וביוטי.",
			Bullets:        []string{"תוכן לפני/אחרי", "עמוד הזמנה", "קריאייטיב פרסומי"},
			Price:          "החל מ-2,800 ₪",
			SEOTitle:       "Beauty Booking Setup | Business Start Studio",
			SEODescription: "פתרון הזמנות ופרסום לעסקי ביוטי עם מיקוד בפניות רלוונטיות.",
		},
	},
	domain.LocaleEnglish: {
		{
			ID:             "svc-food",
			Kind:           domain.LandingService,
			Slug:           "food-photography",
			AlternateSlug:  "food-photography",
			Title:          "Food photography built for conversion",
			Description:    "Professional food and product visuals for restaurants and hospitality.",
			Bullets:        []string{"Menu-focused photo set", "Social-ready edits", "Web-ready exports"},
			Price:          "From 1,800 ILS",
			SEOTitle:       "Food Photography Services | Business Start Studio",
			SEODescription: "Food and product photography for businesses that need stronger trust and response.",
		},
		{
			ID:             "svc-reels",
			Kind:           domain.LandingService,
			Slug:           "reels-content",
			AlternateSlug:  "reels-content",
			Title:          "Reels content for visibility and inquiries",
			Description:    "Short-form videos designed for social reach and commercial intent.",
			Bullets:        []string{"Focused content day", "Short edits", "Platform-ready versions"},
			Price:          "From 1,500 ILS",
			SEOTitle:       "Reels Content Services | Business Start Studio",
			SEODescription: "Short-form content package for first inquiries and faster launch.",
		},
		{
			ID:             "svc-mini-site",
			Kind:           domain.LandingService,
			Slug:           "mini-site-for-business",
			AlternateSlug:  "mini-site-for-business",
			Title:          "Mini site for booking or WhatsApp",
			Description:    "A clear service page that explains your offer and gets action.",
			Bullets:        []string{"Mobile-first service page", "Commercial message structure", "Clear CTA flow"},
			Price:          "From 2,200 ILS",
			SEOTitle:       "Mini Site for Business | Business Start Studio",
			SEODescription: "Mini website setup for businesses that need a clear lead funnel.",
		},
		{
			ID:             "sol-qr",
			Kind:           domain.LandingSolution,
			Slug:           "qr-menu",
			AlternateSlug:  "qr-menu",
			Title:          "QR menu and mini-site setup",
			Description:    "QR route, service page, and WhatsApp action for hospitality businesses.",
			Bullets:        []string{"Fast scan-to-action flow", "Mobile mini-page", "Direct inquiry path"},
			Price:          "From 2,500 ILS",
			SEOTitle:       "QR Menu Solution | Business Start Studio",
			SEODescription: "QR menu and mini-site solution for restaurants and cafes.",
		},
		{
			ID:             "sol-beauty",
			Kind:           domain.LandingSolution,
			Slug:           "beauty-booking",
			AlternateSlug:  "beauty-booking",
			Title:          "Beauty booking launch package",
			Description:    "Content + booking page + campaign assets for beauty brands.",
			Bullets:        []string{"Before/after content", "Booking page", "Ad-ready creatives"},
			Price:          "From 2,800 ILS",
			SEOTitle:       "Beauty Booking Flow | Business Start Studio",
			SEODescription: "Booking-focused solution for clinics and beauty services.",
		},
	},
}

// FallbackLanding returns the static landing record for the locale, kind, and
// slug, or nil when no fallback exists.
func FallbackLanding(kind domain.LandingKind, locale domain.Locale, slug string) *domain.LandingRecord {
	for _, record := range fallbackLandings[locale] {
		if record.Kind == kind && record.Slug == slug {
			copied := record
			copied.Bullets = append([]string(nil), record.Bullets...)
			return &copied
		}
	}
	return nil
}

// FallbackLandingSlugs lists the slug pairs of the static table for the kind.
func FallbackLandingSlugs(kind domain.LandingKind) []domain.SlugPair {
	var pairs []domain.SlugPair
	for _, record := range fallbackLandings[domain.LocaleHebrew] {
		if record.Kind != kind {
			continue
		}
		pairs = append(pairs, domain.SlugPair{He: record.Slug, En: record.AlternateSlug})
	}
	return pairs
}
