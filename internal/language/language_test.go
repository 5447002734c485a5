package language

import (
	"strings"
	"testing"
)

func TestNormalizeFrom(t *testing.T) {
	tests := []struct {
		code       string
		normalized string
		valid      bool
	}{
		{"de", "DE", true},
		{"DE", "DE", true},
		{" fr ", "FR", true},
		{"en", "EN", true},
		{"en-us", "EN-US", false}, // regional variants are destination-only
		{"pt-br", "PT-BR", false},
		{"xx", "XX", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			normalized, valid := NormalizeFrom(tt.code)
			if normalized != tt.normalized {
				t.Errorf("NormalizeFrom(%q) normalized = %q, want %q", tt.code, normalized, tt.normalized)
			}
			if valid != tt.valid {
				t.Errorf("NormalizeFrom(%q) valid = %v, want %v", tt.code, valid, tt.valid)
			}
		})
	}
}

func TestNormalizeTo(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"fr", true},
		{"en-gb", true},
		{"en-us", true},
		{"pt-pt", true},
		{"pt-br", true},
		{"en", false}, // plain EN is source-only
		{"pt", false}, // plain PT is source-only
		{"xx", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if _, valid := NormalizeTo(tt.code); valid != tt.valid {
				t.Errorf("NormalizeTo(%q) valid = %v, want %v", tt.code, valid, tt.valid)
			}
		})
	}
}

func TestListSizes(t *testing.T) {
	if len(SupportedFromLangs) != 26 {
		t.Errorf("SupportedFromLangs has %d codes, want 26", len(SupportedFromLangs))
	}
	// 26 base codes minus EN and PT, plus their four regional variants.
	if len(SupportedToLangs) != 28 {
		t.Errorf("SupportedToLangs has %d codes, want 28", len(SupportedToLangs))
	}
}

func TestPrintableLangs(t *testing.T) {
	from := PrintableFromLangs()
	if !strings.Contains(from, "bg,") || strings.Contains(from, "en-us") {
		t.Errorf("PrintableFromLangs() = %q, want lowercase source codes without regional variants", from)
	}
	if from != strings.ToLower(from) {
		t.Errorf("PrintableFromLangs() not lowercase: %q", from)
	}

	to := PrintableToLangs()
	if !strings.Contains(to, "en-gb,en-us") {
		t.Errorf("PrintableToLangs() = %q, want it to contain en-gb,en-us", to)
	}
}
