package i18n

import (
	"strings"
	"testing"
)

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	cat := GetCatalog("pt-BR")
	if cat.Locale() != BaseLocale {
		t.Fatalf("expected fallback to %s, got %s", BaseLocale, cat.Locale())
	}
	if GetCatalog("").Locale() != BaseLocale {
		t.Fatal("expected empty locale to fall back to base")
	}
}

func TestGetCatalogReturnsFinnish(t *testing.T) {
	cat := GetCatalog("fi-FI")
	if cat.Locale() != "fi-FI" {
		t.Fatalf("expected fi-FI catalog, got %s", cat.Locale())
	}
	msg := cat.Format(CodeDiceInvalidSides, nil)
	if !strings.Contains(msg, "kaksi sivua") {
		t.Fatalf("expected Finnish message, got %q", msg)
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	cat := GetCatalog("en-US")
	msg := cat.Format(CodeDiceLimitExceeded, map[string]string{
		"MaxDice":  "100",
		"MaxSides": "1000",
	})
	if msg != "At most 100 dice with 1000 sides each" {
		t.Fatalf("unexpected rendered message: %q", msg)
	}
}

func TestFormatUnknownCodeReturnsCode(t *testing.T) {
	cat := GetCatalog("en-US")
	if got := cat.Format("NOT_A_CODE", nil); got != "NOT_A_CODE" {
		t.Fatalf("expected code passthrough, got %q", got)
	}
}

func TestFormatNilMetadataRendersEmptyVariables(t *testing.T) {
	cat := GetCatalog("en-US")
	msg := cat.Format(CodeStockUnsupportedCurrency, nil)
	if !strings.HasPrefix(msg, "Unsupported currency:") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestRegisterCatalogOverrides(t *testing.T) {
	RegisterCatalog("xx-XX", NewCatalog("xx-XX", map[Code]string{
		CodeUnknown: "override",
	}))
	if got := GetCatalog("xx-XX").Format(CodeUnknown, nil); got != "override" {
		t.Fatalf("expected registered catalog message, got %q", got)
	}
}
