// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the wedding site
// service, grouped by concern: public (rendered sites) and editor (the
// JSON editing API). Handlers receive their dependencies through the
// handler struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"golang.org/x/crypto/bcrypt"

	"vowsite/internal/cache"
	"vowsite/internal/compose"
	"vowsite/internal/models"
	"vowsite/internal/store"
)

// Public groups handlers for the public-facing rendered wedding sites.
// Rendered pages are cached in Valkey for a short TTL; resolution goes
// through the published-only store queries, so a draft site is a plain
// 404 to everyone out here.
type Public struct {
	engine    *compose.Engine
	websites  *store.WebsiteStore
	siteCache *cache.SiteCache
	baseHost  string
}

// NewPublic creates the public handler group. baseHost is the host the
// app itself is served on; any other Host header is treated as a custom
// domain lookup.
func NewPublic(engine *compose.Engine, websites *store.WebsiteStore, siteCache *cache.SiteCache, baseHost string) *Public {
	return &Public{
		engine:    engine,
		websites:  websites,
		siteCache: siteCache,
		baseHost:  baseHost,
	}
}

// Site renders a published wedding site by its slug.
func (p *Public) Site(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	if cached, ok := p.siteCache.Get(r.Context(), slugParam); ok {
		writeHTML(w, cached)
		return
	}

	site, err := p.websites.FindBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("find website by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if site == nil {
		// Unknown slug and known-but-unpublished look identical from here.
		http.NotFound(w, r)
		return
	}

	p.render(w, r, site)
}

// Root resolves custom-domain requests: a request whose Host is not the
// app's own host is looked up as a customDomain. On the app host itself
// the root serves a minimal landing page.
func (p *Public) Root(w http.ResponseWriter, r *http.Request) {
	host := hostOnly(r.Host)
	if host != "" && host != p.baseHost {
		site, err := p.websites.FindByDomain(r.Context(), host)
		if err != nil {
			slog.Error("find website by domain failed", "error", err, "host", host)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if site != nil {
			p.render(w, r, site)
			return
		}
	}

	writeHTML(w, []byte(`<!DOCTYPE html>
<html><head><title>Vowsite</title></head>
<body><h1>Vowsite</h1><p>Build your wedding site.</p></body></html>`))
}

// render composes the page and stores it in the cache under the site's slug.
func (p *Public) render(w http.ResponseWriter, r *http.Request, site *models.Website) {
	rendered, err := p.engine.RenderSite(site, time.Now())
	if err != nil {
		slog.Error("render site failed", "error", err, "slug", site.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.siteCache.Set(r.Context(), site.Slug, rendered)
	writeHTML(w, rendered)
}

// QR serves a PNG QR code pointing at the site's public URL. Available
// only when the couple enabled sharing.
func (p *Public) QR(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	site, err := p.websites.FindBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("find website by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if site == nil || !site.Settings.Bool(models.SettingEnableSharing, false) {
		http.NotFound(w, r)
		return
	}

	png, err := qrcode.Encode(p.engine.ShareURL(site.Slug), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// VerifyRSVPCode checks a guest-entered access code against the site's
// stored hash. The response never reveals whether a site exists without
// being published.
func (p *Public) VerifyRSVPCode(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	site, err := p.websites.FindBySlug(r.Context(), slugParam)
	if err != nil {
		slog.Error("find website by slug failed", "error", err, "slug", slugParam)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if site == nil {
		respondError(w, http.StatusNotFound, "site not found")
		return
	}

	if !site.Settings.Bool(models.SettingRequireRSVPCode, false) || site.RSVPCodeHash == nil {
		respondJSON(w, http.StatusOK, map[string]any{"valid": true})
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	valid := bcrypt.CompareHashAndPassword([]byte(*site.RSVPCodeHash), []byte(req.Code)) == nil
	respondJSON(w, http.StatusOK, map[string]any{"valid": valid})
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

// hostOnly strips an optional port from a Host header value.
func hostOnly(hostport string) string {
	if i := strings.LastIndex(hostport, ":"); i != -1 && !strings.Contains(hostport[i:], "]") {
		return hostport[:i]
	}
	return hostport
}
