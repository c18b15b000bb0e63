package requestctx

import (
	"context"
	"testing"

	domain "github.com/business-start/api/internal/domain"
)

func TestLocaleDefaultsWithoutSlot(t *testing.T) {
	if got := Locale(context.Background()); got != domain.DefaultLocale {
		t.Fatalf("Locale without slot = %s, want default", got)
	}
	// SetLocale is a no-op without a slot.
	SetLocale(context.Background(), domain.LocaleEnglish)
}

func TestSetLocaleVisibleThroughEarlierContext(t *testing.T) {
	ctx := WithLocale(context.Background())
	if got := Locale(ctx); got != domain.DefaultLocale {
		t.Fatalf("empty slot = %s, want default", got)
	}

	// A handler further down the chain sets the locale on a derived
	// context; the slot makes it visible to whoever captured ctx earlier.
	derived := context.WithValue(ctx, contextKey("unrelated"), "x")
	SetLocale(derived, domain.LocaleEnglish)

	if got := Locale(ctx); got != domain.LocaleEnglish {
		t.Fatalf("Locale after SetLocale = %s, want en", got)
	}
}
