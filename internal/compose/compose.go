// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compose resolves a published website into its public HTML page:
// it filters and orders sections, derives the countdown, and dispatches
// each visible section to its registered renderer with the resolved theme
// tokens. The whole pass is pure for a fixed (website, now) pair.
package compose

import (
	"sort"
	"time"

	"vowsite/internal/models"
	"vowsite/internal/sitetype"
)

// Visible returns the sections that take part in the public render:
// disabled sections are dropped, the rest sorted by Order ascending.
// The sort is stable — sections sharing an Order keep their storage
// order, since the editor does not guarantee unique keys.
func Visible(sections []models.Section) []models.Section {
	out := make([]models.Section, 0, len(sections))
	for _, s := range sections {
		if s.IsEnabled {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Order < out[b].Order
	})
	return out
}

// ceremonyDateLayouts are the date formats the editor has historically
// written into event-details content. Parsing tries them in order.
var ceremonyDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"02/01/2006",
}

// ceremonyTime extracts the ceremony timestamp from the first visible
// event-details section. Returns the zero time when no section carries a
// parsable date.
func ceremonyTime(visible []models.Section) time.Time {
	for _, s := range visible {
		if s.Type != models.SectionEventDetails {
			continue
		}
		ceremony := sitetype.Sub(s.Content, "ceremony")
		date := sitetype.Str(ceremony, "date")
		if date == "" {
			continue
		}

		// A separate time field refines a date-only value.
		if t := sitetype.Str(ceremony, "time"); t != "" {
			if parsed, err := time.Parse("2006-01-02 15:04", date+" "+t); err == nil {
				return parsed
			}
		}
		for _, layout := range ceremonyDateLayouts {
			if parsed, err := time.Parse(layout, date); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// Countdown derives the time remaining until the ceremony from the visible
// sections. The result is nil — meaning "do not show a countdown" — when
// the date is absent, unparsable, or not in the future. It is never
// negative and never persisted.
func Countdown(visible []models.Section, now time.Time) *sitetype.Countdown {
	target := ceremonyTime(visible)
	if target.IsZero() {
		return nil
	}

	remaining := target.Sub(now)
	if remaining <= 0 {
		return nil
	}

	return &sitetype.Countdown{
		Days:    int(remaining / (24 * time.Hour)),
		Hours:   int(remaining/time.Hour) % 24,
		Minutes: int(remaining/time.Minute) % 60,
	}
}
