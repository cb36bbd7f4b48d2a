// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds security-related HTTP headers to every response.
// Wedding pages carry couple-authored content and are meant to be shared
// widely, so the public surface gets the standard hardening set.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// Published sites may be embedded by the editor preview but not by
		// third-party origins.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Disable the legacy XSS filter (can cause issues; CSP is preferred).
		h.Set("X-XSS-Protection", "0")

		// Control what information is sent in the Referer header.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Prevent the site from being used in FLoC cohort calculations.
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
