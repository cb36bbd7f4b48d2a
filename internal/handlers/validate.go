// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"unicode/utf8"
)

// Validation limits for editor inputs.
const (
	maxSectionTitleLen = 200
	maxDomainLen       = 253
	maxRSVPCodeLen     = 100
	maxUploadBytes     = 10 << 20 // 10 MiB per media upload
)

// validateSectionTitle checks a section title and returns the first error
// found, or "".
func validateSectionTitle(title string) string {
	if utf8.RuneCountInString(title) > maxSectionTitleLen {
		return "Title is too long (max 200 characters)."
	}
	return ""
}

// validateDomain does a light sanity check on a custom domain. Ownership
// verification happens outside this service.
func validateDomain(domain string) string {
	if domain == "" {
		return "Domain is required."
	}
	if utf8.RuneCountInString(domain) > maxDomainLen {
		return "Domain is too long."
	}
	return ""
}
