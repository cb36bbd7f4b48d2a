// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package compose

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"sync"
	"time"

	"vowsite/internal/models"
	"vowsite/internal/sitetype"
	"vowsite/internal/theme"
)

// Engine renders complete public pages. It is stateless apart from the
// base URL used for share links; the page shell template is compiled once
// per process.
type Engine struct {
	baseURL string
}

// NewEngine creates a page composition engine. baseURL is the public
// origin used to build share links (no trailing slash).
func NewEngine(baseURL string) *Engine {
	return &Engine{baseURL: strings.TrimRight(baseURL, "/")}
}

// ShareURL returns the public address for a slug, used by share chrome
// and QR codes.
func (e *Engine) ShareURL(slug string) string {
	return e.baseURL + "/" + slug
}

// renderedSection is one section's contribution to the page shell.
type renderedSection struct {
	Title   string
	Body    template.HTML
	Classes string
	DOMID   string
}

// pageData feeds the page shell template.
type pageData struct {
	Title       string
	Description string
	Keywords    string
	OGImage     string

	ColorPrimary    string
	ColorSecondary  string
	ColorAccent     string
	ColorText       string
	ColorBackground string
	FontHeading     string
	FontBody        string

	Sections  []renderedSection
	ShowShare bool
	ShareURL  string
	Analytics bool
	Year      int
}

// RenderSite composes the full public page for a website at the given
// render time. The output is deterministic for a fixed (site, now): the
// same visible ordering and the same countdown value every pass.
func (e *Engine) RenderSite(site *models.Website, now time.Time) ([]byte, error) {
	visible := Visible(site.Sections)
	tokens := theme.Resolve(site.Theme)

	// The countdown is derived, render-time-only state. The global toggle
	// gates whether it reaches the renderers at all.
	var countdown *sitetype.Countdown
	if site.Settings.Bool(models.SettingShowCountdown, true) {
		countdown = Countdown(visible, now)
	}

	rc := sitetype.RenderContext{
		Tokens:    tokens,
		Countdown: countdown,
		Settings:  site.Settings,
	}

	sections := make([]renderedSection, 0, len(visible))
	for _, s := range visible {
		body, err := sitetype.RendererFor(s.Type)(s, rc)
		if err != nil {
			// One malformed section must not take the whole page down.
			slog.Warn("section render failed", "type", s.Type, "section", s.ID, "error", err)
			continue
		}
		sections = append(sections, renderedSection{
			Title:   s.Title,
			Body:    body,
			Classes: sectionClasses(s),
			DOMID:   sectionDOMID(s),
		})
	}

	data := pageData{
		Title:       firstNonEmpty(site.SEO.Title, site.Slug),
		Description: site.SEO.Description,
		Keywords:    site.SEO.Keywords,
		OGImage:     site.SEO.OGImage,

		ColorPrimary:    tokens.Get(theme.ColorPrimary),
		ColorSecondary:  tokens.Get(theme.ColorSecondary),
		ColorAccent:     tokens.Get(theme.ColorAccent),
		ColorText:       tokens.Get(theme.ColorText),
		ColorBackground: tokens.Get(theme.ColorBackground),
		FontHeading:     tokens.Get(theme.FontHeading),
		FontBody:        tokens.Get(theme.FontBody),

		Sections:  sections,
		ShowShare: site.Settings.Bool(models.SettingEnableSharing, false),
		ShareURL:  e.ShareURL(site.Slug),
		Analytics: site.Settings.Bool(models.SettingAnalytics, false),
		Year:      now.Year(),
	}

	tmpl, err := shellTemplate()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute page shell: %w", err)
	}
	return buf.Bytes(), nil
}

// Recognized per-section setting keys. Anything else in the settings bag
// is ignored by the renderer and passes through storage untouched.
func sectionClasses(s models.Section) string {
	classes := []string{"section", "section-" + string(s.Type)}
	if b, ok := s.Settings["animation"].(bool); ok && b {
		classes = append(classes, "animated")
	}
	if b, ok := s.Settings["hideOnMobile"].(bool); ok && b {
		classes = append(classes, "hide-mobile")
	}
	if b, ok := s.Settings["hideOnDesktop"].(bool); ok && b {
		classes = append(classes, "hide-desktop")
	}
	if c, ok := s.Settings["customClass"].(string); ok && c != "" {
		classes = append(classes, c)
	}
	return strings.Join(classes, " ")
}

func sectionDOMID(s models.Section) string {
	if id, ok := s.Settings["customId"].(string); ok && id != "" {
		return id
	}
	return string(s.Type)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

const shellTmplSrc = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .Description}}<meta name="description" content="{{.Description}}">{{end}}
{{if .Keywords}}<meta name="keywords" content="{{.Keywords}}">{{end}}
<meta property="og:title" content="{{.Title}}">
{{if .Description}}<meta property="og:description" content="{{.Description}}">{{end}}
{{if .OGImage}}<meta property="og:image" content="{{.OGImage}}">{{end}}
<style>
:root {
--color-primary: {{.ColorPrimary}};
--color-secondary: {{.ColorSecondary}};
--color-accent: {{.ColorAccent}};
--color-text: {{.ColorText}};
--color-background: {{.ColorBackground}};
--font-heading: {{.FontHeading}};
--font-body: {{.FontBody}};
}
body { margin: 0; color: var(--color-text); background: var(--color-background); font-family: var(--font-body); }
h1, h2, h3, h4 { font-family: var(--font-heading); color: var(--color-primary); }
.section { padding: 3rem 1.5rem; max-width: 960px; margin: 0 auto; }
.section-title { text-align: center; }
.hide-mobile { display: none; } @media (min-width: 768px) { .hide-mobile { display: block; } .hide-desktop { display: none; } }
a { color: var(--color-accent); }
</style>
</head>
<body>
{{range .Sections}}<section id="{{.DOMID}}" class="{{.Classes}}">
{{if .Title}}<h2 class="section-title">{{.Title}}</h2>{{end}}
{{.Body}}
</section>
{{end}}{{if .ShowShare}}<footer class="share">
<a href="{{.ShareURL}}/qr">Share this site</a>
</footer>
{{end}}<footer class="colophon"><p>&copy; {{.Year}}</p></footer>
</body>
</html>`

var (
	shellOnce sync.Once
	shellTmpl *template.Template
	shellErr  error
)

// shellTemplate compiles the page shell once per process. The source is a
// compile-time constant, so the error branch only fires on a programming
// mistake.
func shellTemplate() (*template.Template, error) {
	shellOnce.Do(func() {
		shellTmpl, shellErr = template.New("shell").Parse(shellTmplSrc)
		if shellErr != nil {
			shellErr = fmt.Errorf("compile page shell: %w", shellErr)
		}
	})
	return shellTmpl, shellErr
}
