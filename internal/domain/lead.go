package domain

import "time"

// Lead is one inbound inquiry submitted through the site's contact form.
type Lead struct {
	Name       string
	Phone      string
	Business   string
	Message    string
	Locale     Locale
	SourcePath string
	CreatedAt  time.Time
}

// LeadOutcome names where a submitted lead ended up.
type LeadOutcome string

const (
	// LeadStoredCMS indicates the lead was persisted as a CMS document.
	LeadStoredCMS LeadOutcome = "sanity"
	// LeadSkippedNoToken indicates no write credential is configured and the
	// lead was accepted but not persisted.
	LeadSkippedNoToken LeadOutcome = "skipped_no_write_token"
)
