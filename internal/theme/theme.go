// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme resolves a website's partial theme configuration into a
// complete token set. Renderers consume visual properties only through the
// resolved tokens, never by reading raw theme fields, so a half-configured
// theme can never produce an undefined color or font.
package theme

import "vowsite/internal/models"

// Token keys. Every key is guaranteed present in a resolved token set.
const (
	ColorPrimary    = "color.primary"
	ColorSecondary  = "color.secondary"
	ColorAccent     = "color.accent"
	ColorText       = "color.text"
	ColorBackground = "color.background"
	FontHeading     = "font.heading"
	FontBody        = "font.body"
	StyleName       = "style"
)

// Tokens is the fully resolved, default-filled flat key-value set consumed
// uniformly by section renderers.
type Tokens map[string]string

// Get returns the token value for key, or the empty string for keys outside
// the resolved set.
func (t Tokens) Get(key string) string { return t[key] }

// DefaultPreset is used when a theme names no preset or an unknown one.
const DefaultPreset = "classic"

// presets are the named base palettes. Resolve starts from one of these
// and overlays the website's explicit overrides.
var presets = map[string]Tokens{
	"classic": {
		ColorPrimary:    "#8b6f47",
		ColorSecondary:  "#f5f0e8",
		ColorAccent:     "#c9a876",
		ColorText:       "#3d3a35",
		ColorBackground: "#fffdf9",
		FontHeading:     "Playfair Display, serif",
		FontBody:        "Lato, sans-serif",
		StyleName:       "elegant",
	},
	"modern": {
		ColorPrimary:    "#1f2937",
		ColorSecondary:  "#f3f4f6",
		ColorAccent:     "#d4af7a",
		ColorText:       "#111827",
		ColorBackground: "#ffffff",
		FontHeading:     "Montserrat, sans-serif",
		FontBody:        "Inter, sans-serif",
		StyleName:       "minimal",
	},
	"rustic": {
		ColorPrimary:    "#5c4a32",
		ColorSecondary:  "#ede4d3",
		ColorAccent:     "#a0783c",
		ColorText:       "#40392d",
		ColorBackground: "#faf6ee",
		FontHeading:     "Amatic SC, cursive",
		FontBody:        "Open Sans, sans-serif",
		StyleName:       "natural",
	},
	"romantic": {
		ColorPrimary:    "#9d5c63",
		ColorSecondary:  "#fdf0f2",
		ColorAccent:     "#d9a5ab",
		ColorText:       "#4a3b3d",
		ColorBackground: "#fffafb",
		FontHeading:     "Great Vibes, cursive",
		FontBody:        "Lora, serif",
		StyleName:       "soft",
	},
}

// Presets lists the available preset names. Useful for editor pickers.
func Presets() []string {
	return []string{"classic", "modern", "rustic", "romantic"}
}

// Resolve builds the complete token set for a theme. Resolution is total:
// the zero-value Theme yields the full default palette, and any field the
// couple did configure overrides only its own token.
func Resolve(t models.Theme) Tokens {
	base, ok := presets[t.Name]
	if !ok {
		base = presets[DefaultPreset]
	}

	tokens := make(Tokens, len(base))
	for k, v := range base {
		tokens[k] = v
	}

	overlay(tokens, ColorPrimary, t.Colors.Primary)
	overlay(tokens, ColorSecondary, t.Colors.Secondary)
	overlay(tokens, ColorAccent, t.Colors.Accent)
	overlay(tokens, ColorText, t.Colors.Text)
	overlay(tokens, ColorBackground, t.Colors.Background)
	overlay(tokens, FontHeading, t.Fonts.Heading)
	overlay(tokens, FontBody, t.Fonts.Body)
	overlay(tokens, StyleName, t.Style)

	return tokens
}

func overlay(tokens Tokens, key, value string) {
	if value != "" {
		tokens[key] = value
	}
}
