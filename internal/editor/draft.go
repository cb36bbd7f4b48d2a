// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor implements the content editing surface: merge-patch
// operations over a website draft. A Draft is a deep copy of the persisted
// aggregate; every operation mutates only the in-memory copy, and Save is
// the single point at which the storage collaborator is called. A failed
// Save leaves both the draft and the persisted state untouched, so the
// caller can retry.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vowsite/internal/models"
	"vowsite/internal/sitetype"
	"vowsite/internal/slug"
)

var (
	ErrSectionNotFound    = errors.New("section not found")
	ErrUnknownSectionType = errors.New("unknown section type")
	ErrIndexOutOfRange    = errors.New("list index out of range")
	ErrInvalidSlug        = errors.New("invalid slug")
)

// Saver is the storage collaborator contract the editing surface needs.
type Saver interface {
	Save(ctx context.Context, w *models.Website) error
}

// Draft wraps an editable deep copy of a Website.
type Draft struct {
	site *models.Website
}

// NewDraft starts an editing session over a deep copy of w.
func NewDraft(w *models.Website) *Draft {
	return &Draft{site: w.Clone()}
}

// Website exposes the working copy, e.g. for editor previews.
func (d *Draft) Website() *models.Website {
	return d.site
}

// Save submits the full edited website to the storage collaborator. The
// draft itself is never modified here: on failure the caller still holds
// the edited state and may retry.
func (d *Draft) Save(ctx context.Context, store Saver) error {
	if err := store.Save(ctx, d.site); err != nil {
		return fmt.Errorf("save website: %w", err)
	}
	return nil
}

// section finds the working copy of a section by ID.
func (d *Draft) section(id uuid.UUID) (*models.Section, error) {
	if s := d.site.SectionByID(id); s != nil {
		return s, nil
	}
	return nil, ErrSectionNotFound
}

// --- section facet operations ---

// SetTitle replaces a section's display title. Title is independently
// editable from content; nothing else is touched.
func (d *Draft) SetTitle(sectionID uuid.UUID, title string) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}
	s.Title = title
	return nil
}

// PatchContent shallow-merges partial into the section's content map.
// Keys absent from partial are preserved, so one editor facet can never
// erase fields written by another.
func (d *Draft) PatchContent(sectionID uuid.UUID, partial map[string]any) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}
	s.Content = Merge(s.Content, partial)
	return nil
}

// PatchSettings shallow-merges partial into the section's settings bag.
// Settings are additive overrides; unrecognized keys pass through.
func (d *Draft) PatchSettings(sectionID uuid.UUID, partial map[string]any) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}
	s.Settings = Merge(s.Settings, partial)
	return nil
}

// SetEnabled soft-enables or soft-disables a section. Disabled sections
// stay in storage and keep their content; they are only excluded from the
// public render.
func (d *Draft) SetEnabled(sectionID uuid.UUID, enabled bool) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}
	s.IsEnabled = enabled
	return nil
}

// SetOrder sets a section's sort key. Orders need not be contiguous or
// unique; the renderer sorts stably.
func (d *Draft) SetOrder(sectionID uuid.UUID, order int) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}
	s.Order = order
	return nil
}

// --- section collection operations ---

// AddSection appends a new section of the given type with its catalog
// defaults, ordered after every existing section.
func (d *Draft) AddSection(tag models.SectionType) (*models.Section, error) {
	def, ok := sitetype.Lookup(tag)
	if !ok {
		return nil, ErrUnknownSectionType
	}

	order := 0
	for _, s := range d.site.Sections {
		if s.Order >= order {
			order = s.Order + 1
		}
	}

	section := models.Section{
		ID:        uuid.New(),
		Type:      tag,
		Title:     def.DefaultTitle,
		Content:   def.DefaultContent(),
		IsEnabled: true,
		Order:     order,
		Settings:  map[string]any{},
	}
	d.site.Sections = append(d.site.Sections, section)
	return &d.site.Sections[len(d.site.Sections)-1], nil
}

// RemoveSection deletes a section outright. Prefer SetEnabled(false) when
// the couple may want the content back.
func (d *Draft) RemoveSection(sectionID uuid.UUID) error {
	for i := range d.site.Sections {
		if d.site.Sections[i].ID == sectionID {
			d.site.Sections = append(d.site.Sections[:i], d.site.Sections[i+1:]...)
			return nil
		}
	}
	return ErrSectionNotFound
}

// MoveSection moves a section to position toIndex within the order-sorted
// sequence and renumbers Order keys contiguously. This is the index-based
// move behind drag-and-drop reordering.
func (d *Draft) MoveSection(sectionID uuid.UUID, toIndex int) error {
	// Work on the sections in their visible (order-sorted, stable) sequence.
	idx := make([]int, len(d.site.Sections))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return d.site.Sections[idx[a]].Order < d.site.Sections[idx[b]].Order
	})

	from := -1
	for pos, i := range idx {
		if d.site.Sections[i].ID == sectionID {
			from = pos
			break
		}
	}
	if from == -1 {
		return ErrSectionNotFound
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex >= len(idx) {
		toIndex = len(idx) - 1
	}

	moved := idx[from]
	idx = append(idx[:from], idx[from+1:]...)
	idx = append(idx[:toIndex], append([]int{moved}, idx[toIndex:]...)...)

	for pos, i := range idx {
		d.site.Sections[i].Order = pos
	}
	return nil
}

// --- website-level operations ---

// UpdateTheme overlays the supplied theme onto the draft's theme: only
// non-empty fields replace existing values, matching the merge-patch
// contract of the content facets.
func (d *Draft) UpdateTheme(t models.Theme) {
	cur := &d.site.Theme
	setIf(&cur.Name, t.Name)
	setIf(&cur.Style, t.Style)
	setIf(&cur.Colors.Primary, t.Colors.Primary)
	setIf(&cur.Colors.Secondary, t.Colors.Secondary)
	setIf(&cur.Colors.Accent, t.Colors.Accent)
	setIf(&cur.Colors.Text, t.Colors.Text)
	setIf(&cur.Colors.Background, t.Colors.Background)
	setIf(&cur.Fonts.Heading, t.Fonts.Heading)
	setIf(&cur.Fonts.Body, t.Fonts.Body)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// PatchGlobalSettings shallow-merges partial into the website's global
// settings bag.
func (d *Draft) PatchGlobalSettings(partial map[string]any) {
	d.site.Settings = models.SiteSettings(Merge(d.site.Settings, partial))
}

// SetSEO replaces the SEO metadata. The block is opaque to the engine and
// small enough that wholesale replacement is the simpler contract.
func (d *Draft) SetSEO(seo models.SEO) {
	d.site.SEO = seo
}

// SetSlug validates and assigns the public address. Uniqueness across
// websites is enforced by the store at save time.
func (d *Draft) SetSlug(s string) error {
	if !slug.Valid(s) {
		return ErrInvalidSlug
	}
	d.site.Slug = s
	return nil
}

// SetCustomDomain assigns or clears the secondary address key.
func (d *Draft) SetCustomDomain(domain *string) {
	d.site.CustomDomain = domain
}

// SetRSVPCode stores a bcrypt hash of the guest access code. An empty code
// clears the gate.
func (d *Draft) SetRSVPCode(code string) error {
	if code == "" {
		d.site.RSVPCodeHash = nil
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash rsvp code: %w", err)
	}
	h := string(hash)
	d.site.RSVPCodeHash = &h
	return nil
}

// Publish transitions the draft to published. One-way; the publishedAt
// timestamp is set only on the first transition.
func (d *Draft) Publish(now time.Time) {
	d.site.Publish(now)
}
