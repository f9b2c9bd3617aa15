package taxonomy

import (
	"testing"
)

func TestParseCodeSpec_Single(t *testing.T) {
	codes, err := ParseCodeSpec("A00")
	if err != nil {
		t.Fatalf("ParseCodeSpec() error = %v", err)
	}
	if len(codes) != 1 || codes[0] != "A00" {
		t.Errorf("ParseCodeSpec() = %v, want [A00]", codes)
	}
}

func TestParseCodeSpec_Range(t *testing.T) {
	codes, err := ParseCodeSpec("A40-A79")
	if err != nil {
		t.Fatalf("ParseCodeSpec() error = %v", err)
	}
	if len(codes) != 40 {
		t.Fatalf("ParseCodeSpec() returned %d codes, want 40", len(codes))
	}
	if codes[0] != "A40" || codes[39] != "A79" {
		t.Errorf("ParseCodeSpec() endpoints = %s, %s, want A40, A79", codes[0], codes[39])
	}
	// Zero padding must survive expansion.
	for _, c := range codes {
		if len(c) != 3 {
			t.Errorf("ParseCodeSpec() produced unpadded code %q", c)
		}
	}
}

func TestParseCodeSpec_CommaCombination(t *testing.T) {
	codes, err := ParseCodeSpec("A04-A06, A09")
	if err != nil {
		t.Fatalf("ParseCodeSpec() error = %v", err)
	}
	want := []string{"A04", "A05", "A06", "A09"}
	if len(codes) != len(want) {
		t.Fatalf("ParseCodeSpec() = %v, want %v", codes, want)
	}
	for i, c := range codes {
		if c != want[i] {
			t.Errorf("ParseCodeSpec()[%d] = %q, want %q", i, c, want[i])
		}
	}
}

func TestParseCodeSpec_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"reversed range", "A79-A40"},
		{"mismatched prefix", "A40-B79"},
		{"no numeric suffix", "abc-def"},
		{"blank part", "A00, "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCodeSpec(tt.spec); err == nil {
				t.Errorf("ParseCodeSpec(%q) expected error, got nil", tt.spec)
			}
		})
	}
}
