// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWebsitePublish(t *testing.T) {
	t.Run("first publish stamps publishedAt", func(t *testing.T) {
		w := &Website{}
		now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

		w.Publish(now)

		if !w.IsPublished {
			t.Error("IsPublished should be true")
		}
		if w.PublishedAt == nil || !w.PublishedAt.Equal(now) {
			t.Errorf("PublishedAt: got %v, want %v", w.PublishedAt, now)
		}
	})

	t.Run("republish keeps the original timestamp", func(t *testing.T) {
		w := &Website{}
		first := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
		later := first.Add(48 * time.Hour)

		w.Publish(first)
		w.Publish(later)

		if !w.PublishedAt.Equal(first) {
			t.Errorf("PublishedAt: got %v, want first publish time %v", w.PublishedAt, first)
		}
	})
}

func TestSiteSettingsBool(t *testing.T) {
	s := SiteSettings{
		SettingShowCountdown: true,
		SettingEnableSharing: false,
		"weirdValue":         "yes",
	}

	tests := []struct {
		name     string
		key      string
		fallback bool
		want     bool
	}{
		{"present true", SettingShowCountdown, false, true},
		{"present false", SettingEnableSharing, true, false},
		{"absent uses fallback", SettingShowGuestBook, true, true},
		{"non-boolean uses fallback", "weirdValue", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Bool(tt.key, tt.fallback); got != tt.want {
				t.Errorf("Bool(%q, %v) = %v, want %v", tt.key, tt.fallback, got, tt.want)
			}
		})
	}

	t.Run("nil settings use fallback", func(t *testing.T) {
		var nilSettings SiteSettings
		if !nilSettings.Bool(SettingShowCountdown, true) {
			t.Error("nil settings should return the fallback")
		}
	})
}

func TestWebsiteSectionByID(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	w := &Website{Sections: []Section{
		{ID: a, Type: SectionHero},
		{ID: b, Type: SectionRSVP},
	}}

	if got := w.SectionByID(b); got == nil || got.Type != SectionRSVP {
		t.Errorf("SectionByID(b) = %v", got)
	}
	if got := w.SectionByID(uuid.New()); got != nil {
		t.Errorf("unknown ID should yield nil, got %v", got)
	}

	// The pointer aliases the slice element so callers can mutate in place.
	w.SectionByID(a).Title = "Welcome"
	if w.Sections[0].Title != "Welcome" {
		t.Error("SectionByID should point into the aggregate")
	}
}

func TestWebsiteClone(t *testing.T) {
	domain := "emily.example.com"
	published := time.Now()
	w := &Website{
		Slug:         "emily-and-david",
		CustomDomain: &domain,
		PublishedAt:  &published,
		Settings:     SiteSettings{SettingShowCountdown: true},
		Sections: []Section{{
			ID:      uuid.New(),
			Type:    SectionHero,
			Content: map[string]any{"names": "Emily & David", "nested": map[string]any{"k": "v"}},
		}},
	}

	c := w.Clone()

	c.Sections[0].Content["names"] = "changed"
	c.Sections[0].Content["nested"].(map[string]any)["k"] = "changed"
	c.Settings[SettingShowCountdown] = false
	*c.CustomDomain = "other.example.com"

	if w.Sections[0].Content["names"] != "Emily & David" {
		t.Error("clone edits must not leak into the original content")
	}
	if w.Sections[0].Content["nested"].(map[string]any)["k"] != "v" {
		t.Error("clone edits must not leak into nested content")
	}
	if !w.Settings.Bool(SettingShowCountdown, false) {
		t.Error("clone edits must not leak into settings")
	}
	if *w.CustomDomain != "emily.example.com" {
		t.Error("clone edits must not leak into pointer fields")
	}
}

func TestSectionCloneSlices(t *testing.T) {
	s := Section{
		Type: SectionGallery,
		Content: map[string]any{
			"photos": []any{
				map[string]any{"url": "a.jpg"},
				map[string]any{"url": "b.jpg"},
			},
		},
	}

	c := s.Clone()
	c.Content["photos"].([]any)[0].(map[string]any)["url"] = "changed.jpg"

	if s.Content["photos"].([]any)[0].(map[string]any)["url"] != "a.jpg" {
		t.Error("list items must be deep-copied")
	}
}

func TestWebsiteJSONHidesRSVPHash(t *testing.T) {
	hash := "$2a$10$secret"
	w := &Website{Slug: "emily-and-david", RSVPCodeHash: &hash}

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("RSVP code hash must never serialize")
	}
}
