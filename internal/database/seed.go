// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"vowsite/internal/models"
	"vowsite/internal/sitetype"
)

// Seed inserts a published demo website for development. It is a no-op if
// any website already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM websites`).Scan(&count); err != nil {
		return fmt.Errorf("seed count: %w", err)
	}
	if count > 0 {
		return nil
	}

	sections := sitetype.DefaultSections()
	for i := range sections {
		switch sections[i].Type {
		case models.SectionHero:
			sections[i].Content["headline"] = "Emily & David"
			sections[i].Content["subtitle"] = "are getting married"
			sections[i].Content["date"] = "June 12, 2027"
			sections[i].Content["venue"] = "Willow Creek Gardens"
		case models.SectionEventDetails:
			sections[i].Content["ceremony"] = map[string]any{
				"date":     "2027-06-12",
				"time":     "15:00",
				"location": "Willow Creek Gardens",
				"address":  "14 Orchard Lane",
			}
		case models.SectionStory:
			sections[i].Content["body"] = "We met on a rainy Tuesday and never looked back."
		}
	}

	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("seed marshal sections: %w", err)
	}
	themeJSON, _ := json.Marshal(models.Theme{Name: "classic"})
	settingsJSON, _ := json.Marshal(models.SiteSettings{
		models.SettingShowCountdown: true,
		models.SettingEnableSharing: true,
	})
	seoJSON, _ := json.Marshal(models.SEO{
		Title:       "Emily & David — June 12, 2027",
		Description: "Join us to celebrate our wedding.",
	})

	_, err = db.Exec(`
		INSERT INTO websites (wedding_id, slug, is_published, published_at,
		                      theme, sections, settings, seo)
		VALUES ($1, $2, TRUE, NOW(), $3, $4, $5, $6)
	`, uuid.New(), "emily-and-david", themeJSON, sectionsJSON, settingsJSON, seoJSON)
	if err != nil {
		return fmt.Errorf("seed insert website: %w", err)
	}

	slog.Info("database seeded", "slug", "emily-and-david")
	return nil
}
