// Package router sets up all HTTP routes and middleware chains for the
// wedding site service. Routes are organized into the public rendering
// surface and the editor JSON API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vowsite/internal/handlers"
	"vowsite/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(editorAPI *handlers.Editor, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Editor JSON API. Authentication and collaborator permissions are
	// enforced by the gateway in front of this service.
	r.Route("/api", func(r chi.Router) {
		r.Get("/section-types", editorAPI.SectionTypes)
		r.Post("/uploads", editorAPI.Upload)

		r.Route("/websites", func(r chi.Router) {
			r.Post("/", editorAPI.CreateWebsite)

			r.Route("/{weddingID}", func(r chi.Router) {
				r.Get("/", editorAPI.GetWebsite)
				r.Post("/publish", editorAPI.Publish)

				r.Patch("/theme", editorAPI.UpdateTheme)
				r.Patch("/settings", editorAPI.UpdateSettings)
				r.Put("/seo", editorAPI.UpdateSEO)
				r.Put("/slug", editorAPI.UpdateSlug)
				r.Put("/domain", editorAPI.UpdateDomain)
				r.Put("/rsvp-code", editorAPI.UpdateRSVPCode)

				r.Route("/sections", func(r chi.Router) {
					r.Post("/", editorAPI.AddSection)

					r.Route("/{sectionID}", func(r chi.Router) {
						r.Patch("/", editorAPI.UpdateSection)
						r.Delete("/", editorAPI.RemoveSection)
						r.Patch("/content", editorAPI.PatchSectionContent)
						r.Patch("/settings", editorAPI.PatchSectionSettings)
						r.Post("/move", editorAPI.MoveSection)

						r.Route("/lists/{key}/items", func(r chi.Router) {
							r.Post("/", editorAPI.AddListItem)
							r.Patch("/{index}", editorAPI.UpdateListItem)
							r.Delete("/{index}", editorAPI.RemoveListItem)
						})
					})
				})
			})
		})
	})

	// Public routes — rendered wedding sites, rate limited per IP.
	r.Group(func(r chi.Router) {
		limiter := middleware.NewRateLimiter(120, time.Minute)
		r.Use(limiter.Handler)

		r.Get("/", public.Root)
		r.Get("/{slug}", public.Site)
		r.Get("/{slug}/qr", public.QR)
		r.Post("/{slug}/rsvp-code/verify", public.VerifyRSVPCode)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
