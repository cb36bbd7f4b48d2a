// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides a Valkey-backed full-page HTML cache for rendered
// public sites. The TTL is short because the page embeds a countdown
// derived from render time; a stale page only lags by minutes.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// siteKeyPrefix is the Valkey key prefix for cached site pages.
	siteKeyPrefix = "site:"

	// DefaultSiteTTL is how long a rendered site page stays cached.
	DefaultSiteTTL = time.Minute
)

// SiteCache manages full-page HTML caching in Valkey, keyed by slug.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a site page cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves the cached HTML for a slug. The second return is false on miss.
func (sc *SiteCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, siteKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("site cache get error", "slug", slug, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores rendered HTML for a slug with the configured TTL.
func (sc *SiteCache) Set(ctx context.Context, slug string, html []byte) {
	if err := sc.client.Set(ctx, siteKeyPrefix+slug, html, sc.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes a slug's cached page. Called after every editor save
// or publish so the public site reflects the latest content promptly.
func (sc *SiteCache) Invalidate(ctx context.Context, slug string) {
	if err := sc.client.Del(ctx, siteKeyPrefix+slug).Err(); err != nil {
		slog.Warn("site cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("site cache invalidated", "slug", slug)
}
