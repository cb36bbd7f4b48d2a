// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// editor.go implements the JSON editing API consumed by the couple's
// editing UI. Every mutating endpoint follows the same shape: load the
// aggregate, apply one editing-surface operation to a draft, save, and
// invalidate the public page cache. A save failure reaches the client as
// an error payload and leaves the persisted site at its last good state.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vowsite/internal/cache"
	"vowsite/internal/editor"
	"vowsite/internal/models"
	"vowsite/internal/sitetype"
	"vowsite/internal/slug"
	"vowsite/internal/store"
)

// Editor groups the editing API handlers and their dependencies.
// storageClient may be nil when S3 is not configured; uploads then return
// 503 and everything else keeps working.
type Editor struct {
	websites  *store.WebsiteStore
	siteCache *cache.SiteCache
	uploads   Uploader
}

// Uploader is the upload collaborator contract: accept a binary, return a
// stable URL the editing surface stores as an opaque string.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}

// NewEditor creates the editor handler group.
func NewEditor(websites *store.WebsiteStore, siteCache *cache.SiteCache, uploads Uploader) *Editor {
	return &Editor{websites: websites, siteCache: siteCache, uploads: uploads}
}

// --- catalog ---

// sectionTypeInfo is the wire form of one catalog entry.
type sectionTypeInfo struct {
	Type   models.SectionType `json:"type"`
	Label  string             `json:"label"`
	Icon   string             `json:"icon"`
	Editor []sitetype.Field   `json:"editor"`
}

// SectionTypes lists the registered section types with their editor
// schemas. The editing UI builds its per-type forms from this.
func (e *Editor) SectionTypes(w http.ResponseWriter, r *http.Request) {
	var out []sectionTypeInfo
	for _, tag := range sitetype.Tags() {
		def, _ := sitetype.Lookup(tag)
		out = append(out, sectionTypeInfo{
			Type:   tag,
			Label:  def.Label,
			Icon:   def.Icon,
			Editor: def.Editor,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// --- website lifecycle ---

// CreateWebsite creates the website for a wedding with the default section
// set. 409 when the wedding already has one or the slug is taken.
func (e *Editor) CreateWebsite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeddingID   uuid.UUID `json:"weddingId"`
		CoupleNames string    `json:"coupleNames"`
		Slug        string    `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WeddingID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "weddingId is required")
		return
	}

	siteSlug := req.Slug
	if siteSlug == "" {
		siteSlug = slug.Generate(req.CoupleNames)
	}
	if !slug.Valid(siteSlug) {
		respondError(w, http.StatusBadRequest, "invalid slug")
		return
	}

	site, err := e.websites.Create(r.Context(), req.WeddingID, siteSlug)
	if errors.Is(err, store.ErrAddressTaken) {
		respondError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("create website failed", "error", err, "wedding", req.WeddingID)
		respondError(w, http.StatusInternalServerError, "could not create website")
		return
	}
	respondJSON(w, http.StatusCreated, site)
}

// GetWebsite returns a wedding's full website document, draft or published.
func (e *Editor) GetWebsite(w http.ResponseWriter, r *http.Request) {
	site, ok := e.loadSite(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, site)
}

// Publish flips the site to published. Idempotent; publishedAt is set only
// the first time.
func (e *Editor) Publish(w http.ResponseWriter, r *http.Request) {
	e.withDraft(w, r, func(d *editor.Draft) error {
		d.Publish(time.Now())
		return nil
	})
}

// --- section operations ---

// AddSection appends a new section of the requested type.
func (e *Editor) AddSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type models.SectionType `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		_, err := d.AddSection(req.Type)
		return err
	})
}

// RemoveSection deletes a section outright.
func (e *Editor) RemoveSection(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		return d.RemoveSection(sectionID)
	})
}

// UpdateSection patches the scalar section fields: title, enabled, order.
// Absent fields are left untouched.
func (e *Editor) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Title     *string `json:"title"`
		IsEnabled *bool   `json:"isEnabled"`
		Order     *int    `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title != nil {
		if msg := validateSectionTitle(*req.Title); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
	}

	e.withDraft(w, r, func(d *editor.Draft) error {
		if req.Title != nil {
			if err := d.SetTitle(sectionID, *req.Title); err != nil {
				return err
			}
		}
		if req.IsEnabled != nil {
			if err := d.SetEnabled(sectionID, *req.IsEnabled); err != nil {
				return err
			}
		}
		if req.Order != nil {
			if err := d.SetOrder(sectionID, *req.Order); err != nil {
				return err
			}
		}
		return nil
	})
}

// PatchSectionContent shallow-merges the request body into the section's
// content map.
func (e *Editor) PatchSectionContent(w http.ResponseWriter, r *http.Request) {
	e.patchSectionMap(w, r, func(d *editor.Draft, id uuid.UUID, partial map[string]any) error {
		return d.PatchContent(id, partial)
	})
}

// PatchSectionSettings shallow-merges the request body into the section's
// settings bag.
func (e *Editor) PatchSectionSettings(w http.ResponseWriter, r *http.Request) {
	e.patchSectionMap(w, r, func(d *editor.Draft, id uuid.UUID, partial map[string]any) error {
		return d.PatchSettings(id, partial)
	})
}

func (e *Editor) patchSectionMap(w http.ResponseWriter, r *http.Request, apply func(*editor.Draft, uuid.UUID, map[string]any) error) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}

	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e.withDraft(w, r, func(d *editor.Draft) error {
		return apply(d, sectionID, partial)
	})
}

// MoveSection moves a section to a new position in the visible sequence.
func (e *Editor) MoveSection(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e.withDraft(w, r, func(d *editor.Draft) error {
		return d.MoveSection(sectionID, req.Index)
	})
}

// --- list item operations ---

// AddListItem appends a blank default element to a section's list field.
func (e *Editor) AddListItem(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")

	e.withDraft(w, r, func(d *editor.Draft) error {
		_, err := d.AddItem(sectionID, key)
		return err
	})
}

// UpdateListItem merge-patches one list element by index.
func (e *Editor) UpdateListItem(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid index")
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	e.withDraft(w, r, func(d *editor.Draft) error {
		return d.UpdateItem(sectionID, key, index, fields)
	})
}

// RemoveListItem deletes one list element by index (stable delete).
func (e *Editor) RemoveListItem(w http.ResponseWriter, r *http.Request) {
	sectionID, ok := sectionIDParam(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid index")
		return
	}

	e.withDraft(w, r, func(d *editor.Draft) error {
		return d.RemoveItem(sectionID, key, index)
	})
}

// --- website-level operations ---

// UpdateTheme overlays the supplied theme fields onto the site's theme.
func (e *Editor) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var t models.Theme
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		d.UpdateTheme(t)
		return nil
	})
}

// UpdateSettings shallow-merges the request body into the site's global
// settings bag.
func (e *Editor) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var partial map[string]any
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		d.PatchGlobalSettings(partial)
		return nil
	})
}

// UpdateSEO replaces the SEO block.
func (e *Editor) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	var seo models.SEO
	if err := json.NewDecoder(r.Body).Decode(&seo); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		d.SetSEO(seo)
		return nil
	})
}

// UpdateSlug changes the public address. The previous slug's cached page
// is invalidated alongside the new one.
func (e *Editor) UpdateSlug(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		return d.SetSlug(req.Slug)
	})
}

// UpdateDomain sets or clears the custom domain.
func (e *Editor) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Domain *string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Domain != nil {
		if msg := validateDomain(*req.Domain); msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		d.SetCustomDomain(req.Domain)
		return nil
	})
}

// UpdateRSVPCode sets (or clears, with an empty code) the guest access
// code. Only the hash is stored.
func (e *Editor) UpdateRSVPCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Code) > maxRSVPCodeLen {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	e.withDraft(w, r, func(d *editor.Draft) error {
		return d.SetRSVPCode(req.Code)
	})
}

// --- shared plumbing ---

// loadSite resolves the {weddingID} route param to the wedding's website,
// writing the error response itself when that fails.
func (e *Editor) loadSite(w http.ResponseWriter, r *http.Request) (*models.Website, bool) {
	weddingID, err := uuid.Parse(chi.URLParam(r, "weddingID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid wedding id")
		return nil, false
	}

	site, err := e.websites.FindByWeddingID(r.Context(), weddingID)
	if err != nil {
		slog.Error("find website failed", "error", err, "wedding", weddingID)
		respondError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	if site == nil {
		respondError(w, http.StatusNotFound, "website not found")
		return nil, false
	}
	return site, true
}

// withDraft runs one editing operation against a fresh draft of the
// wedding's website, saves, and responds with the updated document.
// Operation errors map to 4xx; save failures map to 5xx/409 and leave the
// stored aggregate untouched.
func (e *Editor) withDraft(w http.ResponseWriter, r *http.Request, op func(*editor.Draft) error) {
	site, ok := e.loadSite(w, r)
	if !ok {
		return
	}

	draft := editor.NewDraft(site)
	if err := op(draft); err != nil {
		respondError(w, opStatus(err), err.Error())
		return
	}

	if err := draft.Save(r.Context(), e.websites); err != nil {
		if errors.Is(err, store.ErrAddressTaken) {
			respondError(w, http.StatusConflict, "address already in use")
			return
		}
		slog.Error("save website failed", "error", err, "website", site.ID)
		respondError(w, http.StatusInternalServerError, "could not save changes")
		return
	}

	// The public page for the (possibly previous) slug is now stale.
	e.siteCache.Invalidate(r.Context(), site.Slug)
	if updated := draft.Website(); updated.Slug != site.Slug {
		e.siteCache.Invalidate(r.Context(), updated.Slug)
	}

	respondJSON(w, http.StatusOK, draft.Website())
}

// opStatus maps editing-surface errors to HTTP statuses.
func opStatus(err error) int {
	switch {
	case errors.Is(err, editor.ErrSectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrUnknownSectionType),
		errors.Is(err, editor.ErrIndexOutOfRange),
		errors.Is(err, editor.ErrInvalidSlug):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func sectionIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sectionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid section id")
		return uuid.Nil, false
	}
	return id, true
}
