// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"testing"

	"vowsite/internal/models"
)

// allKeys is the set Resolve must always fill.
var allKeys = []string{
	ColorPrimary, ColorSecondary, ColorAccent, ColorText, ColorBackground,
	FontHeading, FontBody, StyleName,
}

func TestResolveIsTotal(t *testing.T) {
	tests := []struct {
		name  string
		theme models.Theme
	}{
		{"zero value theme", models.Theme{}},
		{"unknown preset", models.Theme{Name: "brutalist"}},
		{"partial overrides", models.Theme{Colors: models.ThemeColors{Primary: "#000000"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Resolve(tt.theme)
			for _, key := range allKeys {
				if tokens.Get(key) == "" {
					t.Errorf("token %q missing from resolved set", key)
				}
			}
		})
	}
}

func TestResolveFallsBackToClassic(t *testing.T) {
	unknown := Resolve(models.Theme{Name: "no-such-preset"})
	classic := Resolve(models.Theme{Name: "classic"})

	for _, key := range allKeys {
		if unknown.Get(key) != classic.Get(key) {
			t.Errorf("token %q: got %q, want classic default %q",
				key, unknown.Get(key), classic.Get(key))
		}
	}
}

func TestResolveOverlays(t *testing.T) {
	th := models.Theme{
		Name: "modern",
		Colors: models.ThemeColors{
			Primary: "#123456",
			Accent:  "#abcdef",
		},
		Fonts: models.ThemeFonts{Heading: "Cormorant, serif"},
	}

	tokens := Resolve(th)

	if got := tokens.Get(ColorPrimary); got != "#123456" {
		t.Errorf("primary: got %q, want override", got)
	}
	if got := tokens.Get(ColorAccent); got != "#abcdef" {
		t.Errorf("accent: got %q, want override", got)
	}
	if got := tokens.Get(FontHeading); got != "Cormorant, serif" {
		t.Errorf("heading font: got %q, want override", got)
	}

	// Unconfigured slots keep the preset value.
	modern := Resolve(models.Theme{Name: "modern"})
	if tokens.Get(ColorText) != modern.Get(ColorText) {
		t.Error("text color should come from the modern preset")
	}
	if tokens.Get(FontBody) != modern.Get(FontBody) {
		t.Error("body font should come from the modern preset")
	}
}

func TestPresetsAreDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, name := range Presets() {
		tokens := Resolve(models.Theme{Name: name})
		primary := tokens.Get(ColorPrimary)
		if prev, dup := seen[primary]; dup {
			t.Errorf("presets %q and %q share primary color %q", prev, name, primary)
		}
		seen[primary] = name
	}
}
