// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"vowsite/internal/models"
)

func gallerySite() (*models.Website, uuid.UUID) {
	id := uuid.New()
	return &models.Website{
		Sections: []models.Section{{
			ID:      id,
			Type:    models.SectionGallery,
			Content: map[string]any{"photos": []any{}},
		}},
	}, id
}

func photos(d *Draft, id uuid.UUID) []any {
	return d.Website().SectionByID(id).Content["photos"].([]any)
}

func TestListItemLifecycle(t *testing.T) {
	site, galleryID := gallerySite()
	d := NewDraft(site)

	// Add three photos and fill in their URLs.
	for i, url := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		idx, err := d.AddItem(galleryID, "photos")
		if err != nil {
			t.Fatalf("AddItem: %v", err)
		}
		if idx != i {
			t.Fatalf("AddItem index: got %d, want %d", idx, i)
		}
		if err := d.UpdateItem(galleryID, "photos", idx, map[string]any{"url": url}); err != nil {
			t.Fatalf("UpdateItem: %v", err)
		}
	}

	list := photos(d, galleryID)
	if len(list) != 3 {
		t.Fatalf("photos: got %d, want 3", len(list))
	}

	// A blank item carries the catalog default fields.
	first := list[0].(map[string]any)
	if _, ok := first["caption"]; !ok {
		t.Error("default photo item should carry a caption field")
	}
	if first["url"] != "a.jpg" {
		t.Errorf("first url: got %v", first["url"])
	}

	// Update patches only the named fields.
	if err := d.UpdateItem(galleryID, "photos", 1, map[string]any{"caption": "First dance"}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	second := photos(d, galleryID)[1].(map[string]any)
	if second["url"] != "b.jpg" || second["caption"] != "First dance" {
		t.Errorf("second item: %#v", second)
	}

	// Removing the middle item keeps the order of the rest.
	if err := d.RemoveItem(galleryID, "photos", 1); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	list = photos(d, galleryID)
	if len(list) != 2 {
		t.Fatalf("photos after remove: got %d, want 2", len(list))
	}
	if list[0].(map[string]any)["url"] != "a.jpg" || list[1].(map[string]any)["url"] != "c.jpg" {
		t.Errorf("stable delete violated: %#v", list)
	}
}

func TestListItemIndexValidation(t *testing.T) {
	site, galleryID := gallerySite()
	d := NewDraft(site)
	d.AddItem(galleryID, "photos")

	for _, idx := range []int{-1, 1, 99} {
		if err := d.UpdateItem(galleryID, "photos", idx, map[string]any{}); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("UpdateItem(%d): got %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := d.RemoveItem(galleryID, "photos", idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveItem(%d): got %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestAddItemToleratesMissingList(t *testing.T) {
	id := uuid.New()
	site := &models.Website{
		Sections: []models.Section{{
			ID:      id,
			Type:    models.SectionGallery,
			Content: map[string]any{},
		}},
	}
	d := NewDraft(site)

	idx, err := d.AddItem(id, "photos")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if idx != 0 {
		t.Errorf("index: got %d, want 0", idx)
	}
	if len(photos(d, id)) != 1 {
		t.Error("list should be created on first add")
	}
}

func TestListOpsOnUnknownSection(t *testing.T) {
	site, _ := gallerySite()
	d := NewDraft(site)
	missing := uuid.New()

	if _, err := d.AddItem(missing, "photos"); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("AddItem: got %v", err)
	}
	if err := d.UpdateItem(missing, "photos", 0, nil); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("UpdateItem: got %v", err)
	}
	if err := d.RemoveItem(missing, "photos", 0); !errors.Is(err, ErrSectionNotFound) {
		t.Errorf("RemoveItem: got %v", err)
	}
}
