package services

import (
	"context"
	"errors"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/business-start/api/internal/cms"
	domain "github.com/business-start/api/internal/domain"
)

// ErrInvalidLead signals that a submission is missing required fields.
var ErrInvalidLead = errors.New("lead service: name, phone, and message are required")

// LeadInput is one raw contact-form submission.
type LeadInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Business   string `json:"business"`
	Message    string `json:"message"`
	Locale     string `json:"locale"`
	SourcePath string `json:"sourcePath"`
}

// LeadServiceDeps groups constructor parameters for the lead service.
type LeadServiceDeps struct {
	Writer cms.LeadWriter
	Logger *zap.Logger
}

// LeadService validates, sanitizes, and stores inbound leads.
type LeadService struct {
	writer cms.LeadWriter
	policy *bluemonday.Policy
	logger *zap.Logger
}

// NewLeadService constructs the lead service. Submissions are stripped of any
// markup before persistence.
func NewLeadService(deps LeadServiceDeps) *LeadService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{
		writer: deps.Writer,
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// Submit validates the input and stores the lead in the CMS dataset. Without
// a write credential the lead is accepted but skipped, so the public form
// never errors on a deployment-time misconfiguration.
func (s *LeadService) Submit(ctx context.Context, in LeadInput) (domain.LeadOutcome, error) {
	lead := domain.Lead{
		Name:       s.clean(in.Name),
		Phone:      s.clean(in.Phone),
		Business:   s.clean(in.Business),
		Message:    s.clean(in.Message),
		Locale:     domain.LocaleOrDefault(in.Locale),
		SourcePath: s.clean(in.SourcePath),
	}
	if lead.SourcePath == "" {
		lead.SourcePath = "/"
	}
	if lead.Name == "" || lead.Phone == "" || lead.Message == "" {
		return "", ErrInvalidLead
	}

	if s.writer == nil || !s.writer.CanWrite() {
		s.logger.Info("lead accepted without write credential",
			zap.String("locale", string(lead.Locale)),
			zap.String("sourcePath", lead.SourcePath))
		return domain.LeadSkippedNoToken, nil
	}

	if err := s.writer.CreateLead(ctx, lead); err != nil {
		return "", err
	}
	return domain.LeadStoredCMS, nil
}

func (s *LeadService) clean(value string) string {
	return strings.TrimSpace(s.policy.Sanitize(value))
}
