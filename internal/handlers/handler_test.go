// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"vowsite/internal/cache"
	"vowsite/internal/compose"
	"vowsite/internal/database"
	"vowsite/internal/models"
	"vowsite/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "vowsite")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "vowsite")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "site:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests. Requests go
// through the handlers directly; route params are injected via chi contexts.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Websites  *store.WebsiteStore
	SiteCache *cache.SiteCache
	Engine    *compose.Engine
	Editor    *Editor
	Public    *Public
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	websites := store.NewWebsiteStore(db)
	siteCache := cache.NewSiteCache(vk, 1*time.Minute)
	engine := compose.NewEngine("http://localhost:8080")

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Websites:  websites,
		SiteCache: siteCache,
		Engine:    engine,
		Editor:    NewEditor(websites, siteCache, nil),
		Public:    NewPublic(engine, websites, siteCache, "localhost"),
	}
}

// createTestSite provisions a website through the store and registers
// cleanup. Returns the site with its default section set.
func createTestSite(t *testing.T, env *testEnv) *models.Website {
	t.Helper()

	slug := "test-wedding-" + uuid.NewString()[:8]
	site, err := env.Websites.Create(context.Background(), uuid.New(), slug)
	if err != nil {
		t.Fatalf("create test site: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM websites WHERE id = $1", site.ID)
		env.SiteCache.Invalidate(context.Background(), site.Slug)
	})
	return site
}

// jsonRequest builds a request with an optional JSON body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withChiURLParams adds chi URL parameters to a request. Handlers read
// route params through chi, so direct handler invocations need this.
func withChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeSite reads a website document from a JSON response.
func decodeSite(t *testing.T, rec *httptest.ResponseRecorder) *models.Website {
	t.Helper()

	var site models.Website
	if err := json.NewDecoder(rec.Body).Decode(&site); err != nil {
		t.Fatalf("decode website response: %v", err)
	}
	return &site
}
