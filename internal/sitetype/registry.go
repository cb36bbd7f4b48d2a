// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitetype is the static catalog of section types. For each type
// tag it couples the default-content factory, the editor field schema, and
// the public renderer. It is the single point where a type tag selects
// behavior — no other component may special-case a tag. Tags this catalog
// does not know (data written by a newer engine version) degrade to inert
// placeholders on both the editing and the rendering side.
package sitetype

import (
	"html/template"

	"github.com/google/uuid"

	"vowsite/internal/models"
	"vowsite/internal/theme"
)

// Countdown is the derived time-to-ceremony value computed at render time.
// It is never persisted. A nil *Countdown means "do not show a countdown",
// which is distinct from a zero countdown.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// RenderContext carries the cross-section inputs every renderer receives:
// the resolved theme tokens, the derived countdown (nil when absent), and
// the website's global settings for the few renderers gated by them.
type RenderContext struct {
	Tokens    theme.Tokens
	Countdown *Countdown
	Settings  models.SiteSettings
}

// RenderFunc renders one section to an HTML fragment. Implementations must
// defensively default every field they read from Content — the content map
// is schemaless at the storage level and any key may be missing or hold an
// unexpected type.
type RenderFunc func(s models.Section, rc RenderContext) (template.HTML, error)

// FieldKind describes the editor control for one content field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldMarkdown FieldKind = "markdown"
	FieldDate     FieldKind = "date"
	FieldTime     FieldKind = "time"
	FieldImage    FieldKind = "image"
	FieldURL      FieldKind = "url"
	FieldList     FieldKind = "list"
	FieldGroup    FieldKind = "group"
)

// Facet groups editor fields into the four editing surfaces.
type Facet string

const (
	FacetContent  Facet = "content"
	FacetMedia    Facet = "media"
	FacetStyle    Facet = "style"
	FacetSettings Facet = "settings"
)

// Field describes one editable field of a section type. Item holds the
// element schema for list fields; Fields holds the nested schema for
// group fields (e.g. event-details ceremony/reception).
type Field struct {
	Key    string    `json:"key"`
	Label  string    `json:"label"`
	Kind   FieldKind `json:"kind"`
	Facet  Facet     `json:"facet"`
	Item   []Field   `json:"item,omitempty"`
	Fields []Field   `json:"fields,omitempty"`
}

// Definition is everything the system knows about one section type.
type Definition struct {
	Tag   models.SectionType
	Label string
	Icon  string

	// DefaultContent builds the content map a freshly added section starts
	// with. Factories return fresh maps so callers may mutate freely.
	DefaultContent func() map[string]any

	// DefaultTitle is the initial display title for a new section.
	DefaultTitle string

	// Editor is the field schema the editing surface renders for this type.
	// Empty for unknown types, which get a "no editor available" placeholder.
	Editor []Field

	// ListItem maps a list-valued content key to the factory for a blank
	// default element, used by the editor's addItem primitive.
	ListItem map[string]func() map[string]any

	Render RenderFunc
}

// registry is populated by register calls from definitions.go at init time.
var registry = map[models.SectionType]Definition{}

// ordered preserves catalog order for listings and default site assembly.
var ordered []models.SectionType

func register(d Definition) {
	registry[d.Tag] = d
	ordered = append(ordered, d.Tag)
}

// Lookup returns the definition for a type tag. ok is false for tags this
// catalog does not know.
func Lookup(tag models.SectionType) (Definition, bool) {
	d, ok := registry[tag]
	return d, ok
}

// RendererFor returns the render function for a tag, falling back to the
// generic "content coming soon" placeholder for unknown tags. It never
// returns nil.
func RendererFor(tag models.SectionType) RenderFunc {
	if d, ok := registry[tag]; ok && d.Render != nil {
		return d.Render
	}
	return renderPlaceholder
}

// EditorFor returns the editor field schema for a tag. Unknown tags return
// (nil, false); the editing surface shows an inert "no editor available"
// panel instead of failing.
func EditorFor(tag models.SectionType) ([]Field, bool) {
	d, ok := registry[tag]
	if !ok {
		return nil, false
	}
	return d.Editor, true
}

// Tags returns all registered type tags in catalog order.
func Tags() []models.SectionType {
	out := make([]models.SectionType, len(ordered))
	copy(out, ordered)
	return out
}

// DefaultSections assembles the initial section set a new Website is
// created with: every registered type, enabled, in catalog order.
func DefaultSections() []models.Section {
	sections := make([]models.Section, 0, len(ordered))
	for i, tag := range ordered {
		d := registry[tag]
		sections = append(sections, models.Section{
			ID:        uuid.New(),
			Type:      tag,
			Title:     d.DefaultTitle,
			Content:   d.DefaultContent(),
			IsEnabled: true,
			Order:     i,
			Settings:  map[string]any{},
		})
	}
	return sections
}

// DefaultItem returns a blank default element for a list-valued content
// key of the given type, or an empty map when the key is not a known list.
func DefaultItem(tag models.SectionType, listKey string) map[string]any {
	if d, ok := registry[tag]; ok {
		if factory, ok := d.ListItem[listKey]; ok {
			return factory()
		}
	}
	return map[string]any{}
}
