// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"github.com/google/uuid"
)

// SectionType tags a section with the content shape it carries. The set is
// extensible: stored data may contain tags this binary does not know, and
// every consumer must degrade to a placeholder for those.
type SectionType string

const (
	SectionHero           SectionType = "hero"
	SectionStory          SectionType = "story"
	SectionEventDetails   SectionType = "event-details"
	SectionRSVP           SectionType = "rsvp"
	SectionGallery        SectionType = "gallery"
	SectionRegistry       SectionType = "registry"
	SectionContact        SectionType = "contact"
	SectionTimeline       SectionType = "timeline"
	SectionBridalParty    SectionType = "bridal-party"
	SectionAccommodations SectionType = "accommodations"
	SectionTravel         SectionType = "travel"
	SectionFAQ            SectionType = "faq"
)

// Section is one typed, orderable, independently enable-able content block
// of a wedding site. Content and Settings are schemaless: their shape
// depends on Type, every field is optional, and unknown keys are preserved
// untouched through edit cycles.
type Section struct {
	ID        uuid.UUID      `json:"id"`
	Type      SectionType    `json:"type"`
	Title     string         `json:"title"`
	Content   map[string]any `json:"content"`
	IsEnabled bool           `json:"isEnabled"`
	Order     int            `json:"order"`
	Settings  map[string]any `json:"settings"`
}

// Clone returns a deep copy of the section. Content and Settings maps are
// copied recursively so edits to the clone never leak into the original.
func (s Section) Clone() Section {
	c := s
	c.Content = CloneMap(s.Content)
	c.Settings = CloneMap(s.Settings)
	return c
}

// CloneMap deep-copies a schemaless content map. Nested maps and slices
// (the shapes produced by JSON decoding) are copied; scalars are shared.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
