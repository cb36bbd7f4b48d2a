// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives and validates the URL-safe address under which a
// published site is served.
package slug

import (
	"regexp"
	"strings"
)

const maxLen = 100

var validPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Generate derives a slug from free-form text such as the couple's names.
// The result is lowercase ASCII with single hyphens between words, for
// example "Emily & David" becomes "emily-david". Returns "" when nothing
// usable remains.
func Generate(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	return s
}

// Valid reports whether s is an acceptable site address: non-empty
// lowercase alphanumerics separated by single hyphens, at most 100 bytes.
func Valid(s string) bool {
	if s == "" || len(s) > maxLen {
		return false
	}
	return validPattern.MatchString(s)
}
