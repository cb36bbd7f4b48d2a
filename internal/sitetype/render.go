// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// render.go holds the per-type section renderers and their HTML fragment
// templates. Fragments are compiled once and cached; rendering is pure for
// a fixed (section, context) pair. The shared robustness rule: every field
// read from Content goes through the defensive accessors in fields.go, and
// an empty list renders a placeholder state, never an error.
package sitetype

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"vowsite/internal/markdown"
	"vowsite/internal/models"
)

// fragmentCache holds compiled fragment templates keyed by fragment name.
// Sources are compile-time constants, so entries never need invalidation.
type fragmentCache struct {
	mu      sync.RWMutex
	entries map[string]*template.Template
}

var fragments = &fragmentCache{entries: make(map[string]*template.Template)}

func (c *fragmentCache) get(name string) *template.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[name]
}

func (c *fragmentCache) put(name string, tmpl *template.Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = tmpl
}

// renderFragment compiles (once) and executes a named fragment template.
func renderFragment(name, src string, data any) (template.HTML, error) {
	tmpl := fragments.get(name)
	if tmpl == nil {
		var err error
		tmpl, err = template.New(name).Parse(src)
		if err != nil {
			return "", fmt.Errorf("compile %s fragment: %w", name, err)
		}
		fragments.put(name, tmpl)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s fragment: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// --- placeholder (unknown type) ---

const placeholderTmpl = `<div class="section-placeholder">
<p>Content coming soon.</p>
</div>`

// renderPlaceholder is the fallback renderer for tags this catalog does
// not know. It must never fail: the section collection may contain types
// added by a newer engine version.
func renderPlaceholder(s models.Section, rc RenderContext) (template.HTML, error) {
	return renderFragment("placeholder", placeholderTmpl, nil)
}

// --- hero ---

const heroTmpl = `<div class="hero">
{{if .BackgroundImage}}<img class="hero-bg" src="{{.BackgroundImage}}" alt="">{{end}}
<h1 class="hero-headline">{{.Headline}}</h1>
{{if .Subtitle}}<p class="hero-subtitle">{{.Subtitle}}</p>{{end}}
{{if .Date}}<p class="hero-date">{{.Date}}</p>{{end}}
{{if .Venue}}<p class="hero-venue">{{.Venue}}</p>{{end}}
{{if .Countdown}}<div class="hero-countdown">
<span>{{.Countdown.Days}} days</span>
<span>{{.Countdown.Hours}} hours</span>
<span>{{.Countdown.Minutes}} minutes</span>
</div>{{end}}
</div>`

func renderHero(s models.Section, rc RenderContext) (template.HTML, error) {
	return renderFragment("hero", heroTmpl, struct {
		Headline        string
		Subtitle        string
		Date            string
		Venue           string
		BackgroundImage string
		Countdown       *Countdown
	}{
		Headline:        StrOr(s.Content, "headline", "We're getting married!"),
		Subtitle:        Str(s.Content, "subtitle"),
		Date:            Str(s.Content, "date"),
		Venue:           Str(s.Content, "venue"),
		BackgroundImage: Str(s.Content, "backgroundImage"),
		Countdown:       rc.Countdown,
	})
}

// --- story ---

const storyTmpl = `<div class="story">
{{if .Image}}<img class="story-image" src="{{.Image}}" alt="">{{end}}
{{if .Body}}<div class="story-body">{{.Body}}</div>{{else}}<p class="story-empty">Our story is still being written.</p>{{end}}
{{if .HowWeMet}}<div class="story-chapter"><h3>How we met</h3><p>{{.HowWeMet}}</p></div>{{end}}
{{if .Proposal}}<div class="story-chapter"><h3>The proposal</h3><p>{{.Proposal}}</p></div>{{end}}
</div>`

func renderStory(s models.Section, rc RenderContext) (template.HTML, error) {
	// The story body is authored as Markdown; conversion escapes any raw
	// HTML so couple-entered text cannot inject markup.
	var body template.HTML
	if src := Str(s.Content, "body"); src != "" {
		html, err := markdown.ToHTML(src)
		if err == nil {
			body = template.HTML(html)
		}
	}

	return renderFragment("story", storyTmpl, struct {
		Body     template.HTML
		HowWeMet string
		Proposal string
		Image    string
	}{
		Body:     body,
		HowWeMet: Str(s.Content, "howWeMet"),
		Proposal: Str(s.Content, "proposal"),
		Image:    Str(s.Content, "image"),
	})
}

// --- event-details ---

const eventDetailsTmpl = `<div class="event-details">
<div class="event-block">
<h3>Ceremony</h3>
{{if .Ceremony.Date}}<p class="event-date">{{.Ceremony.Date}}{{if .Ceremony.Time}} at {{.Ceremony.Time}}{{end}}</p>{{end}}
{{if .Ceremony.Location}}<p class="event-location">{{.Ceremony.Location}}</p>{{end}}
{{if .Ceremony.Address}}<p class="event-address">{{.Ceremony.Address}}</p>{{end}}
{{if .Ceremony.Description}}<p class="event-description">{{.Ceremony.Description}}</p>{{end}}
{{if .Ceremony.Empty}}<p class="event-tbd">Details to be announced.</p>{{end}}
</div>
<div class="event-block">
<h3>Reception</h3>
{{if .Reception.Date}}<p class="event-date">{{.Reception.Date}}{{if .Reception.Time}} at {{.Reception.Time}}{{end}}</p>{{end}}
{{if .Reception.Location}}<p class="event-location">{{.Reception.Location}}</p>{{end}}
{{if .Reception.Address}}<p class="event-address">{{.Reception.Address}}</p>{{end}}
{{if .Reception.Description}}<p class="event-description">{{.Reception.Description}}</p>{{end}}
{{if .Reception.Empty}}<p class="event-tbd">Details to be announced.</p>{{end}}
</div>
</div>`

type eventBlock struct {
	Date        string
	Time        string
	Location    string
	Address     string
	Description string
	Empty       bool
}

func readEventBlock(m map[string]any, key string) eventBlock {
	sub := Sub(m, key)
	b := eventBlock{
		Date:        Str(sub, "date"),
		Time:        Str(sub, "time"),
		Location:    Str(sub, "location"),
		Address:     Str(sub, "address"),
		Description: Str(sub, "description"),
	}
	b.Empty = b.Date == "" && b.Location == "" && b.Address == "" && b.Description == ""
	return b
}

func renderEventDetails(s models.Section, rc RenderContext) (template.HTML, error) {
	return renderFragment("event-details", eventDetailsTmpl, struct {
		Ceremony  eventBlock
		Reception eventBlock
	}{
		Ceremony:  readEventBlock(s.Content, "ceremony"),
		Reception: readEventBlock(s.Content, "reception"),
	})
}

// --- rsvp ---

const rsvpTmpl = `<div class="rsvp">
{{if .Note}}<p class="rsvp-note">{{.Note}}</p>{{end}}
{{if .Deadline}}<p class="rsvp-deadline">Please respond by {{.Deadline}}</p>{{end}}
{{if .AllowPublic}}<a class="rsvp-button" href="#rsvp-form">RSVP</a>{{else if .Email}}<p class="rsvp-contact">RSVP to <a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
</div>`

func renderRSVP(s models.Section, rc RenderContext) (template.HTML, error) {
	return renderFragment("rsvp", rsvpTmpl, struct {
		Note        string
		Deadline    string
		Email       string
		AllowPublic bool
	}{
		Note:        StrOr(s.Content, "note", "We can't wait to celebrate with you."),
		Deadline:    Str(s.Content, "deadline"),
		Email:       Str(s.Content, "email"),
		AllowPublic: rc.Settings.Bool(models.SettingAllowPublicRSVP, false),
	})
}

// --- gallery ---

const galleryTmpl = `<div class="gallery">
{{if .Photos}}{{range .Photos}}<figure class="gallery-item">
<img src="{{.URL}}" alt="{{.Caption}}">
{{if .Caption}}<figcaption>{{.Caption}}</figcaption>{{end}}
</figure>{{end}}{{else}}<p class="gallery-empty">Photos coming soon.</p>{{end}}
</div>`

func renderGallery(s models.Section, rc RenderContext) (template.HTML, error) {
	type photo struct {
		URL     string
		Caption string
	}
	var photos []photo
	for _, item := range List(s.Content, "photos") {
		url := Str(item, "url")
		if url == "" {
			continue
		}
		photos = append(photos, photo{URL: url, Caption: Str(item, "caption")})
	}
	return renderFragment("gallery", galleryTmpl, struct{ Photos []photo }{photos})
}

// --- registry ---

const registryTmpl = `<div class="registry">
{{if .Message}}<p class="registry-message">{{.Message}}</p>{{end}}
{{if .Links}}<ul class="registry-links">{{range .Links}}<li><a href="{{.URL}}" rel="noopener">{{.Name}}</a></li>{{end}}</ul>{{else}}<p class="registry-empty">Registry details coming soon.</p>{{end}}
</div>`

func renderRegistry(s models.Section, rc RenderContext) (template.HTML, error) {
	type link struct {
		Name string
		URL  string
	}
	var links []link
	for _, item := range List(s.Content, "links") {
		url := Str(item, "url")
		if url == "" {
			continue
		}
		links = append(links, link{Name: StrOr(item, "name", url), URL: url})
	}
	return renderFragment("registry", registryTmpl, struct {
		Message string
		Links   []link
	}{
		Message: Str(s.Content, "message"),
		Links:   links,
	})
}

// --- contact ---

const contactTmpl = `<div class="contact">
{{if .Message}}<p class="contact-message">{{.Message}}</p>{{end}}
{{if .Email}}<p class="contact-email"><a href="mailto:{{.Email}}">{{.Email}}</a></p>{{end}}
{{if .Phone}}<p class="contact-phone">{{.Phone}}</p>{{end}}
{{if and (not .Email) (not .Phone)}}<p class="contact-empty">Contact details coming soon.</p>{{end}}
</div>`

func renderContact(s models.Section, rc RenderContext) (template.HTML, error) {
	return renderFragment("contact", contactTmpl, struct {
		Message string
		Email   string
		Phone   string
	}{
		Message: Str(s.Content, "message"),
		Email:   Str(s.Content, "email"),
		Phone:   Str(s.Content, "phone"),
	})
}

// --- timeline ---

const timelineTmpl = `<div class="timeline">
{{if .Events}}<ol class="timeline-events">{{range .Events}}<li class="timeline-event">
{{if .Time}}<span class="timeline-time">{{.Time}}</span>{{end}}
<span class="timeline-title">{{.Title}}</span>
{{if .Description}}<p class="timeline-description">{{.Description}}</p>{{end}}
</li>{{end}}</ol>{{else}}<p class="timeline-empty">Schedule coming soon.</p>{{end}}
</div>`

func renderTimeline(s models.Section, rc RenderContext) (template.HTML, error) {
	type event struct {
		Time        string
		Title       string
		Description string
	}
	var events []event
	for _, item := range List(s.Content, "events") {
		title := Str(item, "title")
		if title == "" {
			continue
		}
		events = append(events, event{
			Time:        Str(item, "time"),
			Title:       title,
			Description: Str(item, "description"),
		})
	}
	return renderFragment("timeline", timelineTmpl, struct{ Events []event }{events})
}

// --- bridal-party ---

const bridalPartyTmpl = `<div class="bridal-party">
{{if .Members}}{{range .Members}}<div class="party-member">
{{if .Photo}}<img class="party-photo" src="{{.Photo}}" alt="{{.Name}}">{{end}}
<h4 class="party-name">{{.Name}}</h4>
{{if .Role}}<p class="party-role">{{.Role}}</p>{{end}}
{{if .Bio}}<p class="party-bio">{{.Bio}}</p>{{end}}
</div>{{end}}{{else}}<p class="party-empty">Meet the wedding party — coming soon.</p>{{end}}
</div>`

func renderBridalParty(s models.Section, rc RenderContext) (template.HTML, error) {
	type member struct {
		Name  string
		Role  string
		Photo string
		Bio   string
	}
	var members []member
	for _, item := range List(s.Content, "members") {
		name := Str(item, "name")
		if name == "" {
			continue
		}
		members = append(members, member{
			Name:  name,
			Role:  Str(item, "role"),
			Photo: Str(item, "photo"),
			Bio:   Str(item, "bio"),
		})
	}
	return renderFragment("bridal-party", bridalPartyTmpl, struct{ Members []member }{members})
}

// --- accommodations ---

const accommodationsTmpl = `<div class="accommodations">
{{if .Hotels}}{{range .Hotels}}<div class="hotel">
<h4 class="hotel-name">{{.Name}}</h4>
{{if .Address}}<p class="hotel-address">{{.Address}}</p>{{end}}
{{if .Notes}}<p class="hotel-notes">{{.Notes}}</p>{{end}}
{{if .URL}}<a class="hotel-link" href="{{.URL}}" rel="noopener">Book</a>{{end}}
</div>{{end}}{{else}}<p class="accommodations-empty">Accommodation suggestions coming soon.</p>{{end}}
</div>`

func renderAccommodations(s models.Section, rc RenderContext) (template.HTML, error) {
	type hotel struct {
		Name    string
		Address string
		URL     string
		Notes   string
	}
	var hotels []hotel
	for _, item := range List(s.Content, "hotels") {
		name := Str(item, "name")
		if name == "" {
			continue
		}
		hotels = append(hotels, hotel{
			Name:    name,
			Address: Str(item, "address"),
			URL:     Str(item, "url"),
			Notes:   Str(item, "notes"),
		})
	}
	return renderFragment("accommodations", accommodationsTmpl, struct{ Hotels []hotel }{hotels})
}

// --- travel ---

const travelTmpl = `<div class="travel">
{{if .Directions}}<div class="travel-block"><h4>Getting there</h4><p>{{.Directions}}</p></div>{{end}}
{{if .Parking}}<div class="travel-block"><h4>Parking</h4><p>{{.Parking}}</p></div>{{end}}
{{if .Transport}}<div class="travel-block"><h4>Transport</h4><p>{{.Transport}}</p></div>{{end}}
{{if .Empty}}<p class="travel-empty">Travel information coming soon.</p>{{end}}
</div>`

func renderTravel(s models.Section, rc RenderContext) (template.HTML, error) {
	directions := Str(s.Content, "directions")
	parking := Str(s.Content, "parking")
	transport := Str(s.Content, "transport")
	return renderFragment("travel", travelTmpl, struct {
		Directions string
		Parking    string
		Transport  string
		Empty      bool
	}{
		Directions: directions,
		Parking:    parking,
		Transport:  transport,
		Empty:      directions == "" && parking == "" && transport == "",
	})
}

// --- faq ---

const faqTmpl = `<div class="faq">
{{if .Items}}{{range .Items}}<details class="faq-item">
<summary>{{.Question}}</summary>
<p>{{.Answer}}</p>
</details>{{end}}{{else}}<p class="faq-empty">Questions and answers coming soon.</p>{{end}}
</div>`

func renderFAQ(s models.Section, rc RenderContext) (template.HTML, error) {
	type entry struct {
		Question string
		Answer   string
	}
	var items []entry
	for _, item := range List(s.Content, "items") {
		q := Str(item, "question")
		if q == "" {
			continue
		}
		items = append(items, entry{Question: q, Answer: Str(item, "answer")})
	}
	return renderFragment("faq", faqTmpl, struct{ Items []entry }{items})
}
