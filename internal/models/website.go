// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Theme holds the couple's visual configuration. Every field is optional;
// rendering always goes through theme.Resolve, which fills gaps from the
// preset defaults, so a partially specified theme still renders completely.
type Theme struct {
	Name   string      `json:"name,omitempty"`
	Colors ThemeColors `json:"colors"`
	Fonts  ThemeFonts  `json:"fonts"`
	Style  string      `json:"style,omitempty"`
}

// ThemeColors are the color slots a theme may override.
type ThemeColors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Text       string `json:"text,omitempty"`
	Background string `json:"background,omitempty"`
}

// ThemeFonts are the font slots a theme may override.
type ThemeFonts struct {
	Heading string `json:"heading,omitempty"`
	Body    string `json:"body,omitempty"`
}

// SiteSettings is the open bag of global toggles consumed by the public
// renderer. It is kept as a map rather than a struct because new toggles
// are added over time; unrecognized keys are ignored.
type SiteSettings map[string]any

// Recognized global setting keys. Renderers consume these; unknown keys
// pass through storage untouched.
const (
	SettingShowCountdown   = "showCountdown"
	SettingShowGuestBook   = "showGuestBook"
	SettingAllowPublicRSVP = "allowPublicRsvp"
	SettingRequireRSVPCode = "requireRsvpCode"
	SettingShowGuestList   = "showGuestList"
	SettingEnableSharing   = "enableSharing"
	SettingAnalytics       = "analyticsEnabled"
)

// Bool reads a boolean toggle, returning fallback when the key is absent
// or holds a non-boolean value.
func (s SiteSettings) Bool(key string, fallback bool) bool {
	if v, ok := s[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// SEO metadata is opaque to the render engine and passed through verbatim
// into the page head.
type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	OGImage     string `json:"ogImage,omitempty"`
}

// Website is the aggregate holding all sections, theme, settings, SEO
// metadata, and publication state for one wedding. Exactly one Website
// exists per wedding; Slug and CustomDomain each resolve to at most one
// Website.
type Website struct {
	ID           uuid.UUID  `json:"id"`
	WeddingID    uuid.UUID  `json:"weddingId"`
	Slug         string     `json:"slug"`
	CustomDomain *string    `json:"customDomain,omitempty"`
	IsPublished  bool       `json:"isPublished"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	Theme        Theme      `json:"theme"`
	Sections     []Section  `json:"sections"`
	Settings     SiteSettings `json:"settings"`
	SEO          SEO        `json:"seo"`

	// RSVPCodeHash gates public RSVP when the requireRsvpCode toggle is on.
	// Only the bcrypt hash is stored; never exposed over the public surface.
	RSVPCodeHash *string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Publish transitions the website from draft to published. The transition
// is one-way: PublishedAt is set exactly once, on the first call, and is
// never cleared by later edits.
func (w *Website) Publish(now time.Time) {
	w.IsPublished = true
	if w.PublishedAt == nil {
		t := now
		w.PublishedAt = &t
	}
}

// SectionByID returns a pointer to the section with the given ID, or nil.
func (w *Website) SectionByID(id uuid.UUID) *Section {
	for i := range w.Sections {
		if w.Sections[i].ID == id {
			return &w.Sections[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the website, suitable for use as an
// editing draft that must not alias the persisted aggregate.
func (w *Website) Clone() *Website {
	c := *w
	if w.CustomDomain != nil {
		d := *w.CustomDomain
		c.CustomDomain = &d
	}
	if w.PublishedAt != nil {
		t := *w.PublishedAt
		c.PublishedAt = &t
	}
	if w.RSVPCodeHash != nil {
		h := *w.RSVPCodeHash
		c.RSVPCodeHash = &h
	}
	if w.Settings != nil {
		c.Settings = SiteSettings(CloneMap(w.Settings))
	}
	c.Sections = make([]Section, len(w.Sections))
	for i, s := range w.Sections {
		c.Sections[i] = s.Clone()
	}
	return &c
}
