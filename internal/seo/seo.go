// Package seo builds absolute URLs, hreflang alternates, and the sitemap and
// robots documents for the bilingual site.
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/business-start/api/internal/domain"
)

// staticPaths lists every locale-relative page the site always serves,
// including the prerendered landing aliases.
var staticPaths = []string{
	"",
	"/services",
	"/solutions",
	"/pricing",
	"/portfolio",
	"/about",
	"/contact",
	"/restaurant-content",
	"/bar-content",
	"/beauty-content",
	"/qr-menu-mini-site",
	"/chef-personal-brand",
	"/small-business-quick-start",
}

// StaticPaths returns the locale-relative paths present for every locale.
func StaticPaths() []string {
	paths := make([]string, len(staticPaths))
	copy(paths, staticPaths)
	return paths
}

// AbsoluteURL joins a site-relative path onto the configured base URL.
func AbsoluteURL(baseURL, path string) string {
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// LocaleURL builds the absolute URL for a locale-relative path, e.g.
// LocaleURL(base, "he", "/pricing") -> base + "/he/pricing".
func LocaleURL(baseURL string, locale domain.Locale, path string) string {
	if path == "/" {
		path = ""
	}
	return AbsoluteURL(baseURL, "/"+string(locale)+path)
}

// ReplaceLocaleInPath rewrites the locale segment of a site path, inserting
// one when the path carries none.
func ReplaceLocaleInPath(pathname string, target domain.Locale) string {
	segments := make([]string, 0, 8)
	for _, segment := range strings.Split(pathname, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}

	if len(segments) == 0 {
		return "/" + string(target)
	}

	if domain.IsLocale(segments[0]) {
		segments[0] = string(target)
	} else {
		segments = append([]string{string(target)}, segments...)
	}

	return "/" + strings.Join(segments, "/")
}

// AlternateLink is one hreflang alternate on a sitemap entry or page head.
type AlternateLink struct {
	Hreflang string
	Href     string
}

// PageAlternates returns the he/en/x-default alternates for a locale-relative
// path that exists under both locales with the same slug.
func PageAlternates(baseURL, path string) []AlternateLink {
	if path == "/" {
		path = ""
	}
	links := make([]AlternateLink, 0, len(domain.SupportedLocales)+1)
	for _, locale := range domain.SupportedLocales {
		links = append(links, AlternateLink{
			Hreflang: string(locale),
			Href:     LocaleURL(baseURL, locale, path),
		})
	}
	links = append(links, AlternateLink{
		Hreflang: "x-default",
		Href:     LocaleURL(baseURL, domain.DefaultLocale, ""),
	})
	return links
}

// SitemapEntry is one <url> element of the sitemap.
type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
	Alternates []AlternateLink
}

type xmlAlternate struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type xmlURL struct {
	Loc        string         `xml:"loc"`
	LastMod    string         `xml:"lastmod,omitempty"`
	ChangeFreq string         `xml:"changefreq,omitempty"`
	Priority   string         `xml:"priority,omitempty"`
	Alternates []xmlAlternate `xml:"xhtml:link"`
}

type xmlURLSet struct {
	XMLName    xml.Name `xml:"urlset"`
	Xmlns      string   `xml:"xmlns,attr"`
	XmlnsXHTML string   `xml:"xmlns:xhtml,attr"`
	URLs       []xmlURL `xml:"url"`
}

// RenderSitemap serialises the entries into sitemap protocol XML with
// xhtml:link hreflang alternates.
func RenderSitemap(entries []SitemapEntry) ([]byte, error) {
	set := xmlURLSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXHTML: "http://www.w3.org/1999/xhtml",
		URLs:       make([]xmlURL, 0, len(entries)),
	}
	for _, entry := range entries {
		u := xmlURL{
			Loc:        entry.Loc,
			ChangeFreq: entry.ChangeFreq,
		}
		if !entry.LastMod.IsZero() {
			u.LastMod = entry.LastMod.UTC().Format("2006-01-02")
		}
		if entry.Priority > 0 {
			u.Priority = fmt.Sprintf("%.1f", entry.Priority)
		}
		for _, alt := range entry.Alternates {
			u.Alternates = append(u.Alternates, xmlAlternate{
				Rel:      "alternate",
				Hreflang: alt.Hreflang,
				Href:     alt.Href,
			})
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("seo: marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// StaticEntries builds the sitemap entries for every static page in every
// locale. The home page gets daily/1.0, everything else weekly/0.7.
func StaticEntries(baseURL string, now time.Time) []SitemapEntry {
	entries := make([]SitemapEntry, 0, len(staticPaths)*len(domain.SupportedLocales))
	for _, locale := range domain.SupportedLocales {
		for _, path := range staticPaths {
			entry := SitemapEntry{
				Loc:        LocaleURL(baseURL, locale, path),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   0.7,
				Alternates: PageAlternates(baseURL, path),
			}
			if path == "" {
				entry.ChangeFreq = "daily"
				entry.Priority = 1
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

// Robots renders the robots.txt body, keeping crawlers out of the API and the
// admin studio.
func Robots(baseURL string) string {
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /startstudio/\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Host: %s\n", base)
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)
	return b.String()
}
