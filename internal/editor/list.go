// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// list.go implements the generic list-editing primitives shared by the
// gallery, registry links, FAQ, schedule, accommodations, and wedding
// party editors. Indices refer to the current array position at call time;
// removal is a stable delete that preserves the relative order of the
// remaining items.
package editor

import (
	"github.com/google/uuid"

	"vowsite/internal/sitetype"
)

// listAt reads the list value at key, tolerating an absent or non-list
// value by treating it as empty.
func listAt(content map[string]any, key string) []any {
	if content == nil {
		return nil
	}
	if l, ok := content[key].([]any); ok {
		return l
	}
	return nil
}

// AddItem appends a blank default element (from the type catalog) to the
// list at key and returns the new element's index.
func (d *Draft) AddItem(sectionID uuid.UUID, key string) (int, error) {
	s, err := d.section(sectionID)
	if err != nil {
		return 0, err
	}

	list := listAt(s.Content, key)
	list = append(list, any(sitetype.DefaultItem(s.Type, key)))

	if s.Content == nil {
		s.Content = map[string]any{}
	}
	s.Content[key] = list
	return len(list) - 1, nil
}

// UpdateItem merge-patches one list element in place. Fields absent from
// the patch are preserved; element order is unchanged.
func (d *Draft) UpdateItem(sectionID uuid.UUID, key string, index int, fields map[string]any) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}

	list := listAt(s.Content, key)
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}

	existing, _ := list[index].(map[string]any)
	list[index] = Merge(existing, fields)
	s.Content[key] = list
	return nil
}

// RemoveItem deletes the element at index. The relative order of all other
// items is preserved.
func (d *Draft) RemoveItem(sectionID uuid.UUID, key string, index int) error {
	s, err := d.section(sectionID)
	if err != nil {
		return err
	}

	list := listAt(s.Content, key)
	if index < 0 || index >= len(list) {
		return ErrIndexOutOfRange
	}

	list = append(list[:index], list[index+1:]...)
	s.Content[key] = list
	return nil
}
