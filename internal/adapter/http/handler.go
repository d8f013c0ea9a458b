package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"snaplink/internal/core/domain"
	"snaplink/internal/core/port"
)

// Options tunes request handling that depends on the deployment.
type Options struct {
	// DevIP, when set, replaces the visitor address on redirects so geo
	// lookups work from loopback during development.
	DevIP string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// that turns requests into calls on port.LinkUseCase. Routes are registered
// on a chi.Router; everything under /api/v1 except the redirect requires a
// bearer token.
type Handler struct {
	svc    port.LinkUseCase
	signer port.UploadSigner
	auth   *Authenticator
	opts   Options
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.LinkUseCase, signer port.UploadSigner, auth *Authenticator, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, signer: signer, auth: auth, opts: opts, logger: logger}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/links/{id}/redirect", h.handleRedirect)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.writeError))

			r.With(requirePermission(domain.PermLinkCreate, h.writeError)).Post("/links", h.handleCreateLink)
			r.With(requirePermission(domain.PermLinkRead, h.writeError)).Get("/links", h.handleListLinks)
			r.With(requirePermission(domain.PermLinkRead, h.writeError)).Get("/links/{id}", h.handleGetLink)
			r.With(requirePermission(domain.PermLinkUpdate, h.writeError)).Put("/links/{id}", h.handleUpdateLink)
			r.With(requirePermission(domain.PermLinkDelete, h.writeError)).Delete("/links/{id}", h.handleDeleteLink)
			r.With(requirePermission(domain.PermLinkRead, h.writeError)).Get("/analytics", h.handleAnalytics)
			r.Post("/upload-signature", h.handleUploadSignature)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
