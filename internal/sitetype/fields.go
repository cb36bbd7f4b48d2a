// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package sitetype

// Defensive accessors for schemaless content maps. The same stored data
// may flow through engine versions with different expectations, so a
// renderer never assumes a key exists or holds the type it wants: a miss
// yields the zero value (or an explicit fallback), never a panic.

// Str reads a string field, returning "" when absent or not a string.
func Str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// StrOr reads a string field with an explicit fallback.
func StrOr(m map[string]any, key, fallback string) string {
	if s := Str(m, key); s != "" {
		return s
	}
	return fallback
}

// Sub reads a nested object field (e.g. event-details ceremony/reception).
// Returns an empty map when the key is absent or not an object, so chained
// reads stay safe.
func Sub(m map[string]any, key string) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return map[string]any{}
}

// List reads a list-of-objects field (gallery photos, registry links, FAQ
// entries). Elements that are not objects are skipped rather than failing
// the whole list.
func List(m map[string]any, key string) []map[string]any {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if item, ok := e.(map[string]any); ok {
			items = append(items, item)
		}
	}
	return items
}
