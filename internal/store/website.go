// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the persistence layer for website aggregates.
// The schemaless parts of the aggregate (sections, theme, settings, seo)
// live in JSONB columns; unknown keys round-trip through storage intact.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"vowsite/internal/models"
	"vowsite/internal/sitetype"
)

// ErrAddressTaken is returned when a slug or custom domain is already
// claimed by another website. Both keys must resolve to at most one site.
var ErrAddressTaken = errors.New("address already in use")

// WebsiteStore handles all website-related database operations.
type WebsiteStore struct {
	db *sql.DB
}

// NewWebsiteStore creates a new WebsiteStore with the given database connection.
func NewWebsiteStore(db *sql.DB) *WebsiteStore {
	return &WebsiteStore{db: db}
}

const websiteColumns = `
	id, wedding_id, slug, custom_domain, is_published, published_at,
	theme, sections, settings, seo, rsvp_code_hash, created_at, updated_at`

// Create inserts a new, unpublished website for a wedding, seeded with the
// catalog's default section set. Called when a wedding first enables its
// site.
func (s *WebsiteStore) Create(ctx context.Context, weddingID uuid.UUID, siteSlug string) (*models.Website, error) {
	w := &models.Website{
		WeddingID: weddingID,
		Slug:      siteSlug,
		Theme:     models.Theme{Name: "classic"},
		Sections:  sitetype.DefaultSections(),
		Settings:  models.SiteSettings{models.SettingShowCountdown: true},
	}

	theme, sections, settings, seo, err := marshalAggregate(w)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO websites (wedding_id, slug, theme, sections, settings, seo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING`+websiteColumns,
		weddingID, siteSlug, theme, sections, settings, seo,
	)

	created, err := scanWebsite(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAddressTaken
		}
		return nil, fmt.Errorf("create website: %w", err)
	}
	return created, nil
}

// FindByWeddingID retrieves the website owned by a wedding, published or
// not. Returns nil if the wedding has no site yet.
func (s *WebsiteStore) FindByWeddingID(ctx context.Context, weddingID uuid.UUID) (*models.Website, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT`+websiteColumns+` FROM websites WHERE wedding_id = $1`, weddingID)
	w, err := scanWebsite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by wedding: %w", err)
	}
	return w, nil
}

// FindBySlug retrieves a website by its public slug, only if published.
// Draft sites are indistinguishable from missing ones to public callers.
func (s *WebsiteStore) FindBySlug(ctx context.Context, siteSlug string) (*models.Website, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT`+websiteColumns+` FROM websites WHERE slug = $1 AND is_published`, siteSlug)
	w, err := scanWebsite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by slug: %w", err)
	}
	return w, nil
}

// FindByDomain retrieves a published website by its custom domain.
func (s *WebsiteStore) FindByDomain(ctx context.Context, domain string) (*models.Website, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT`+websiteColumns+` FROM websites WHERE custom_domain = $1 AND is_published`, domain)
	w, err := scanWebsite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find website by domain: %w", err)
	}
	return w, nil
}

// Save persists the full aggregate. published_at is write-once at the
// database level: once set it survives every later save, even one that
// mistakenly carries a nil timestamp.
func (s *WebsiteStore) Save(ctx context.Context, w *models.Website) error {
	theme, sections, settings, seo, err := marshalAggregate(w)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE websites SET
			slug = $1, custom_domain = $2, is_published = $3,
			published_at = COALESCE(published_at, $4),
			theme = $5, sections = $6, settings = $7, seo = $8,
			rsvp_code_hash = $9, updated_at = NOW()
		WHERE id = $10
	`, w.Slug, w.CustomDomain, w.IsPublished, w.PublishedAt,
		theme, sections, settings, seo, w.RSVPCodeHash, w.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAddressTaken
		}
		return fmt.Errorf("save website: %w", err)
	}
	return nil
}

// Delete removes a wedding's website. Only called from the owning
// wedding's cascade — websites are not independently deletable.
func (s *WebsiteStore) Delete(ctx context.Context, weddingID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM websites WHERE wedding_id = $1`, weddingID)
	if err != nil {
		return fmt.Errorf("delete website: %w", err)
	}
	return nil
}

// marshalAggregate encodes the JSONB columns.
func marshalAggregate(w *models.Website) (theme, sections, settings, seo []byte, err error) {
	if theme, err = json.Marshal(w.Theme); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal theme: %w", err)
	}
	if w.Sections == nil {
		w.Sections = []models.Section{}
	}
	if sections, err = json.Marshal(w.Sections); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal sections: %w", err)
	}
	if w.Settings == nil {
		w.Settings = models.SiteSettings{}
	}
	if settings, err = json.Marshal(w.Settings); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal settings: %w", err)
	}
	if seo, err = json.Marshal(w.SEO); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshal seo: %w", err)
	}
	return theme, sections, settings, seo, nil
}

// scanWebsite reads one row into a Website, decoding the JSONB columns.
func scanWebsite(row *sql.Row) (*models.Website, error) {
	w := &models.Website{}
	var theme, sections, settings, seo []byte
	var publishedAt sql.NullTime

	err := row.Scan(
		&w.ID, &w.WeddingID, &w.Slug, &w.CustomDomain, &w.IsPublished, &publishedAt,
		&theme, &sections, &settings, &seo, &w.RSVPCodeHash, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if publishedAt.Valid {
		t := publishedAt.Time.UTC()
		w.PublishedAt = &t
	}
	if err := json.Unmarshal(theme, &w.Theme); err != nil {
		return nil, fmt.Errorf("unmarshal theme: %w", err)
	}
	if err := json.Unmarshal(sections, &w.Sections); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	if err := json.Unmarshal(settings, &w.Settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := json.Unmarshal(seo, &w.SEO); err != nil {
		return nil, fmt.Errorf("unmarshal seo: %w", err)
	}
	return w, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505), used to map slug/domain collisions.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
