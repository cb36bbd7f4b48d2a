// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package editor

// Merge overlays partial onto base, shallow: every key present in partial
// replaces (or adds) that key in the result, every other key of base is
// kept as-is. The returned map is a fresh copy — neither input is mutated.
//
// Merge is associative: Merge(Merge(m, a), b) equals Merge(m, union(a, b))
// where union applies a then b. It never drops keys not mentioned in the
// patch, which is what lets independent editor facets write to the same
// content map without clobbering each other.
func Merge(base, partial map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(partial))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}
