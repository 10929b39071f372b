package orcas

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Return on Assets (ROA)", "return on assets roa"},
		{"return on assets roa", "return on assets roa"},
		{"  Net   Interest\tMargin ", "net interest margin"},
		{"Loans, Net", "loans net"},
		{"( ROA )", "roa"},
		{"net_interest-margin", "net_interest-margin"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.name); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"net_interest_margin", "net interest margin"},
		{"Net-Interest__Margin", "net interest margin"},
		{"Return on Assets (ROA)", "return on assets roa"},
		{"return_on_assets_(roa)", "return on assets roa"},
		{"_ROA_", "roa"},
		{"--", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.name); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{
		"Return on Assets (ROA)",
		"  (a,b)  ( c ) ",
		"A ,(B)",
		"x_y-z",
		"Ω Ratio (Ünit)",
		"",
	} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", s, twice, once)
		}
		key := NormalizeKey(s)
		if twice := NormalizeKey(key); twice != key {
			t.Errorf("NormalizeKey(NormalizeKey(%q)) = %q, want %q", s, twice, key)
		}
	}
}
