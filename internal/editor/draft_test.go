// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vowsite/internal/models"
)

// testSite builds a three-section website in hero/story/rsvp order.
func testSite() *models.Website {
	return &models.Website{
		ID:        uuid.New(),
		WeddingID: uuid.New(),
		Slug:      "emily-and-david",
		Sections: []models.Section{
			{ID: uuid.New(), Type: models.SectionHero, Title: "Welcome", IsEnabled: true, Order: 0,
				Content: map[string]any{"names": "Emily & David", "tagline": "We're getting married!"}},
			{ID: uuid.New(), Type: models.SectionStory, Title: "Our Story", IsEnabled: true, Order: 1,
				Content: map[string]any{"body": "We met in Lisbon."}},
			{ID: uuid.New(), Type: models.SectionRSVP, Title: "RSVP", IsEnabled: true, Order: 2,
				Content: map[string]any{}},
		},
		Settings: models.SiteSettings{},
	}
}

func TestDraftIsIsolatedCopy(t *testing.T) {
	site := testSite()
	d := NewDraft(site)

	if err := d.SetTitle(site.Sections[0].ID, "Hello"); err != nil {
		t.Fatalf("SetTitle: %v", err)
	}
	if err := d.PatchContent(site.Sections[0].ID, map[string]any{"names": "changed"}); err != nil {
		t.Fatalf("PatchContent: %v", err)
	}

	if site.Sections[0].Title != "Welcome" {
		t.Error("draft edits must not touch the source aggregate")
	}
	if site.Sections[0].Content["names"] != "Emily & David" {
		t.Error("draft content edits must not touch the source aggregate")
	}
	if d.Website().Sections[0].Title != "Hello" {
		t.Error("draft should carry the edit")
	}
}

func TestPatchContentPreservesOtherKeys(t *testing.T) {
	site := testSite()
	d := NewDraft(site)
	heroID := site.Sections[0].ID

	if err := d.PatchContent(heroID, map[string]any{"tagline": "Join us"}); err != nil {
		t.Fatalf("PatchContent: %v", err)
	}

	content := d.Website().Sections[0].Content
	if content["tagline"] != "Join us" {
		t.Errorf("tagline: got %v", content["tagline"])
	}
	if content["names"] != "Emily & David" {
		t.Error("unpatched keys must be preserved")
	}
}

func TestSectionFacetOperations(t *testing.T) {
	site := testSite()
	d := NewDraft(site)
	storyID := site.Sections[1].ID

	t.Run("SetEnabled", func(t *testing.T) {
		if err := d.SetEnabled(storyID, false); err != nil {
			t.Fatalf("SetEnabled: %v", err)
		}
		if d.Website().Sections[1].IsEnabled {
			t.Error("section should be disabled")
		}
		// Disabling must keep content intact.
		if d.Website().Sections[1].Content["body"] != "We met in Lisbon." {
			t.Error("disabling a section must not clear its content")
		}
	})

	t.Run("SetOrder", func(t *testing.T) {
		if err := d.SetOrder(storyID, 10); err != nil {
			t.Fatalf("SetOrder: %v", err)
		}
		if d.Website().Sections[1].Order != 10 {
			t.Errorf("order: got %d, want 10", d.Website().Sections[1].Order)
		}
	})

	t.Run("PatchSettings", func(t *testing.T) {
		if err := d.PatchSettings(storyID, map[string]any{"animation": "fade"}); err != nil {
			t.Fatalf("PatchSettings: %v", err)
		}
		if d.Website().Sections[1].Settings["animation"] != "fade" {
			t.Error("settings patch not applied")
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		if err := d.SetTitle(uuid.New(), "x"); !errors.Is(err, ErrSectionNotFound) {
			t.Errorf("got %v, want ErrSectionNotFound", err)
		}
	})
}

func TestAddSection(t *testing.T) {
	site := testSite()
	d := NewDraft(site)

	s, err := d.AddSection(models.SectionGallery)
	if err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if s.Type != models.SectionGallery {
		t.Errorf("type: got %q", s.Type)
	}
	if !s.IsEnabled {
		t.Error("new sections start enabled")
	}
	if s.Order != 3 {
		t.Errorf("order: got %d, want 3 (after existing sections)", s.Order)
	}
	if s.ID == uuid.Nil {
		t.Error("new section needs an ID")
	}
	if s.Content == nil {
		t.Error("new section should carry catalog defaults")
	}

	t.Run("unknown type", func(t *testing.T) {
		if _, err := d.AddSection("hologram"); !errors.Is(err, ErrUnknownSectionType) {
			t.Errorf("got %v, want ErrUnknownSectionType", err)
		}
	})
}

func TestRemoveSection(t *testing.T) {
	site := testSite()
	d := NewDraft(site)
	storyID := site.Sections[1].ID

	if err := d.RemoveSection(storyID); err != nil {
		t.Fatalf("RemoveSection: %v", err)
	}
	if len(d.Website().Sections) != 2 {
		t.Fatalf("sections: got %d, want 2", len(d.Website().Sections))
	}
	if d.Website().SectionByID(storyID) != nil {
		t.Error("removed section still present")
	}

	if err := d.RemoveSection(storyID); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("second remove: got %v, want ErrSectionNotFound", err)
	}
}

func TestMoveSection(t *testing.T) {
	site := testSite()
	d := NewDraft(site)
	rsvpID := site.Sections[2].ID

	// Move RSVP to the front: hero/story shift down one.
	if err := d.MoveSection(rsvpID, 0); err != nil {
		t.Fatalf("MoveSection: %v", err)
	}

	w := d.Website()
	byID := map[uuid.UUID]int{}
	for _, s := range w.Sections {
		byID[s.ID] = s.Order
	}
	if byID[rsvpID] != 0 {
		t.Errorf("rsvp order: got %d, want 0", byID[rsvpID])
	}
	if byID[site.Sections[0].ID] != 1 || byID[site.Sections[1].ID] != 2 {
		t.Errorf("remaining sections should renumber contiguously: %v", byID)
	}

	t.Run("out-of-range index clamps", func(t *testing.T) {
		if err := d.MoveSection(rsvpID, 99); err != nil {
			t.Fatalf("MoveSection: %v", err)
		}
		if got := d.Website().SectionByID(rsvpID).Order; got != 2 {
			t.Errorf("order: got %d, want last position 2", got)
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		if err := d.MoveSection(uuid.New(), 0); !errors.Is(err, ErrSectionNotFound) {
			t.Errorf("got %v, want ErrSectionNotFound", err)
		}
	})
}

func TestUpdateTheme(t *testing.T) {
	site := testSite()
	site.Theme = models.Theme{Name: "classic", Colors: models.ThemeColors{Primary: "#111111"}}
	d := NewDraft(site)

	d.UpdateTheme(models.Theme{Colors: models.ThemeColors{Accent: "#ff00ff"}})

	th := d.Website().Theme
	if th.Colors.Accent != "#ff00ff" {
		t.Errorf("accent: got %q", th.Colors.Accent)
	}
	if th.Name != "classic" || th.Colors.Primary != "#111111" {
		t.Error("empty fields in the patch must not clear existing values")
	}
}

func TestSetSlug(t *testing.T) {
	d := NewDraft(testSite())

	if err := d.SetSlug("new-address"); err != nil {
		t.Fatalf("SetSlug: %v", err)
	}
	if d.Website().Slug != "new-address" {
		t.Errorf("slug: got %q", d.Website().Slug)
	}

	if err := d.SetSlug("Not Valid!"); !errors.Is(err, ErrInvalidSlug) {
		t.Errorf("got %v, want ErrInvalidSlug", err)
	}
	if d.Website().Slug != "new-address" {
		t.Error("failed SetSlug must not change the draft")
	}
}

func TestSetRSVPCode(t *testing.T) {
	d := NewDraft(testSite())

	if err := d.SetRSVPCode("garden-party"); err != nil {
		t.Fatalf("SetRSVPCode: %v", err)
	}
	hash := d.Website().RSVPCodeHash
	if hash == nil {
		t.Fatal("hash should be set")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*hash), []byte("garden-party")); err != nil {
		t.Errorf("stored hash should verify the code: %v", err)
	}

	t.Run("empty code clears the gate", func(t *testing.T) {
		if err := d.SetRSVPCode(""); err != nil {
			t.Fatalf("SetRSVPCode: %v", err)
		}
		if d.Website().RSVPCodeHash != nil {
			t.Error("empty code should clear the hash")
		}
	})
}

func TestDraftPublish(t *testing.T) {
	d := NewDraft(testSite())
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	d.Publish(now)

	w := d.Website()
	if !w.IsPublished || w.PublishedAt == nil || !w.PublishedAt.Equal(now) {
		t.Errorf("publish state: published=%v at=%v", w.IsPublished, w.PublishedAt)
	}
}

// failingSaver always fails, for verifying that Save leaves the draft
// intact so the caller can retry.
type failingSaver struct{ err error }

func (f failingSaver) Save(ctx context.Context, w *models.Website) error { return f.err }

type recordingSaver struct{ saved *models.Website }

func (r *recordingSaver) Save(ctx context.Context, w *models.Website) error {
	r.saved = w
	return nil
}

func TestDraftSave(t *testing.T) {
	t.Run("submits the edited aggregate", func(t *testing.T) {
		site := testSite()
		d := NewDraft(site)
		d.SetTitle(site.Sections[0].ID, "Hello")

		rec := &recordingSaver{}
		if err := d.Save(context.Background(), rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if rec.saved == nil || rec.saved.Sections[0].Title != "Hello" {
			t.Error("saver should receive the edited website")
		}
	})

	t.Run("failure leaves the draft intact", func(t *testing.T) {
		site := testSite()
		d := NewDraft(site)
		d.SetTitle(site.Sections[0].ID, "Hello")

		boom := errors.New("connection reset")
		err := d.Save(context.Background(), failingSaver{err: boom})
		if !errors.Is(err, boom) {
			t.Fatalf("Save should wrap the saver error, got %v", err)
		}
		if d.Website().Sections[0].Title != "Hello" {
			t.Error("draft must keep its edits after a failed save")
		}
	})
}
