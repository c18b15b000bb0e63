package services

import (
	"context"
	"errors"
	"testing"

	domain "github.com/business-start/api/internal/domain"
)

type stubLeadWriter struct {
	canWrite bool
	err      error
	captured []domain.Lead
}

func (s *stubLeadWriter) CanWrite() bool { return s.canWrite }

func (s *stubLeadWriter) CreateLead(_ context.Context, lead domain.Lead) error {
	if s.err != nil {
		return s.err
	}
	s.captured = append(s.captured, lead)
	return nil
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc := NewLeadService(LeadServiceDeps{Writer: &stubLeadWriter{canWrite: true}})
	cases := []LeadInput{
		{Phone: "050", Message: "hi"},
		{Name: "Dana", Message: "hi"},
		{Name: "Dana", Phone: "050"},
		{Name: "  ", Phone: "050", Message: "hi"},
	}
	for i, in := range cases {
		if _, err := svc.Submit(context.Background(), in); !errors.Is(err, ErrInvalidLead) {
			t.Fatalf("case %d: err = %v, want ErrInvalidLead", i, err)
		}
	}
}

func TestSubmitStoresSanitizedLead(t *testing.T) {
	writer := &stubLeadWriter{canWrite: true}
	svc := NewLeadService(LeadServiceDeps{Writer: writer})

	outcome, err := svc.Submit(context.Background(), LeadInput{
		Name:    "<script>alert(1)</script>Dana",
		Phone:   "0501234567",
		Message: "Interested in a <b>mini site</b>",
		Locale:  "en",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if outcome != domain.LeadStoredCMS {
		t.Fatalf("outcome = %s", outcome)
	}
	if len(writer.captured) != 1 {
		t.Fatalf("captured = %d leads", len(writer.captured))
	}
	lead := writer.captured[0]
	if lead.Name != "Dana" {
		t.Fatalf("name not sanitized: %q", lead.Name)
	}
	if lead.Message != "Interested in a mini site" {
		t.Fatalf("message not sanitized: %q", lead.Message)
	}
	if lead.SourcePath != "/" {
		t.Fatalf("sourcePath default = %q", lead.SourcePath)
	}
	if lead.Locale != domain.LocaleEnglish {
		t.Fatalf("locale = %s", lead.Locale)
	}
}

func TestSubmitDefaultsLocale(t *testing.T) {
	writer := &stubLeadWriter{canWrite: true}
	svc := NewLeadService(LeadServiceDeps{Writer: writer})

	if _, err := svc.Submit(context.Background(), LeadInput{
		Name: "Dana", Phone: "050", Message: "hi", Locale: "fr",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if writer.captured[0].Locale != domain.LocaleHebrew {
		t.Fatalf("locale = %s, want default he", writer.captured[0].Locale)
	}
}

func TestSubmitWithoutWriteCredentialSkips(t *testing.T) {
	svc := NewLeadService(LeadServiceDeps{Writer: &stubLeadWriter{canWrite: false}})
	outcome, err := svc.Submit(context.Background(), LeadInput{Name: "Dana", Phone: "050", Message: "hi"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if outcome != domain.LeadSkippedNoToken {
		t.Fatalf("outcome = %s", outcome)
	}
}

func TestSubmitPropagatesWriterError(t *testing.T) {
	boom := errors.New("mutate failed")
	svc := NewLeadService(LeadServiceDeps{Writer: &stubLeadWriter{canWrite: true, err: boom}})
	if _, err := svc.Submit(context.Background(), LeadInput{Name: "Dana", Phone: "050", Message: "hi"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want writer error", err)
	}
}
