package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/business-start/api/internal/domain"
)

const (
	defaultAPIVersion = "2026-03-01"
	defaultTimeout    = 10 * time.Second
)

// ErrNotConfigured signals that the CMS project coordinates are absent and no
// remote call can be attempted.
var ErrNotConfigured = errors.New("cms: project and dataset are not configured")

// ErrNoWriteToken signals that a mutation was requested without a write token.
var ErrNoWriteToken = errors.New("cms: write token is not configured")

// Config carries the Sanity project coordinates. ProjectID and Dataset must
// both be set for the client to issue requests; WriteToken additionally
// unlocks mutations.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	WriteToken string
}

// Configured reports whether read queries can be attempted.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.ProjectID) != "" && strings.TrimSpace(c.Dataset) != ""
}

// CanWrite reports whether mutations can be attempted.
func (c Config) CanWrite() bool {
	return c.Configured() && strings.TrimSpace(c.WriteToken) != ""
}

// SnapshotFetcher loads the aggregate content snapshot.
type SnapshotFetcher interface {
	Configured() bool
	FetchSnapshot(ctx context.Context) (*domain.Snapshot, error)
}

// LeadWriter persists inbound leads to the CMS dataset.
type LeadWriter interface {
	CanWrite() bool
	CreateLead(ctx context.Context, lead domain.Lead) error
}

// ClientDeps groups constructor parameters for the CMS client.
type ClientDeps struct {
	Config     Config
	HTTPClient *http.Client
	Logger     *zap.Logger
	Clock      func() time.Time
	// BaseURL overrides the derived Sanity API host. Tests use it to point
	// the client at a local server.
	BaseURL string
}

// Client talks to the Sanity HTTP API: one aggregate GROQ query for reads and
// the mutate endpoint for lead writes.
type Client struct {
	cfg     Config
	http    *http.Client
	logger  *zap.Logger
	clock   func() time.Time
	baseURL string
}

// NewClient constructs the CMS client. A client with an unconfigured project
// is still valid; its read and write calls fail fast with sentinel errors so
// callers can fall back to static content.
func NewClient(deps ClientDeps) *Client {
	cfg := deps.Config
	if strings.TrimSpace(cfg.APIVersion) == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Client{
		cfg:     cfg,
		http:    httpClient,
		logger:  logger,
		clock:   func() time.Time { return clock().UTC() },
		baseURL: strings.TrimRight(deps.BaseURL, "/"),
	}
}

// Configured reports whether read queries can be attempted.
func (c *Client) Configured() bool { return c.cfg.Configured() }

// CanWrite reports whether lead mutations can be attempted.
func (c *Client) CanWrite() bool { return c.cfg.CanWrite() }

// FetchSnapshot runs the aggregate query and decodes the result envelope.
func (c *Client) FetchSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?query=%s",
		c.host(true), url.PathEscape(c.cfg.Dataset), url.QueryEscape(snapshotQuery))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cms: build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("cms: query returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Result *domain.Snapshot `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("cms: decode query result: %w", err)
	}
	if envelope.Result == nil {
		return nil, errors.New("cms: query returned empty result")
	}
	return envelope.Result, nil
}

// CreateLead stores the lead as a document in the dataset. The document shape
// mirrors the studio's lead schema, with a server-side creation timestamp.
func (c *Client) CreateLead(ctx context.Context, lead domain.Lead) error {
	if !c.CanWrite() {
		return ErrNoWriteToken
	}

	payload := map[string]any{
		"mutations": []any{
			map[string]any{
				"create": map[string]any{
					"_type":      "lead",
					"name":       lead.Name,
					"phone":      lead.Phone,
					"business":   lead.Business,
					"message":    lead.Message,
					"locale":     string(lead.Locale),
					"sourcePath": lead.SourcePath,
					"createdAt":  c.clock().Format(time.RFC3339),
				},
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cms: encode lead mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/data/mutate/%s", c.host(false), url.PathEscape(c.cfg.Dataset))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("cms: build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.WriteToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cms: mutate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("cms lead mutation rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("body", strings.TrimSpace(string(respBody))))
		return fmt.Errorf("cms: mutate returned status %d", resp.StatusCode)
	}
	return nil
}

// host derives the API base. Reads go through the CDN host when UseCDN is set;
// mutations always hit the live API host.
func (c *Client) host(read bool) string {
	if c.baseURL != "" {
		return fmt.Sprintf("%s/v%s", c.baseURL, c.cfg.APIVersion)
	}
	domainSuffix := "api.sanity.io"
	if read && c.cfg.UseCDN {
		domainSuffix = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s/v%s", c.cfg.ProjectID, domainSuffix, c.cfg.APIVersion)
}
