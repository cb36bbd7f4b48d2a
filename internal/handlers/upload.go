// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedUploadTypes maps accepted content types to their canonical file
// extension. Everything else is rejected up front.
var allowedUploadTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Upload accepts a multipart media upload, stores it through the upload
// collaborator, and returns the stable URL. The URL is an opaque string to
// everything downstream — sections just keep it in their content.
func (e *Editor) Upload(w http.ResponseWriter, r *http.Request) {
	if e.uploads == nil {
		respondError(w, http.StatusServiceUnavailable, "media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ext, ok := allowedUploadTypes[contentType]
	if !ok {
		// Fall back on the filename extension for clients that send
		// application/octet-stream.
		ext = strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" && ext != ".gif" {
			respondError(w, http.StatusUnsupportedMediaType, "only image uploads are supported")
			return
		}
	}

	key := "media/" + uuid.NewString() + ext
	url, err := e.uploads.Upload(r.Context(), key, contentType, file, header.Size)
	if err != nil {
		slog.Error("media upload failed", "error", err, "key", key)
		respondError(w, http.StatusBadGateway, "upload failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"url": url})
}
