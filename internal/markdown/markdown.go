// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts couple-authored Markdown (the love-story body)
// into HTML using goldmark. Raw HTML embedded in the source is escaped,
// not passed through — story text is user input rendered on a public page.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // Tables, strikethrough, autolinks
		extension.Typographer, // Smart quotes and dashes
	),
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
