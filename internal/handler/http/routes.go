package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// streaming routes must not be buffered by gzip
	router.Get("/api/events", h.streamEvents)
	router.Get("/api/previews/{handle}", h.openPreview)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version/", h.getVersion)
		r.Get("/api/quick-notes", h.openQuickNotes)
		r.Delete("/api/poll", h.stopPolling)
		r.Delete("/api/attachments/{attachmentID}", h.removeAttachment)

		r.Get("/api/playlists", h.listPlaylists)
		r.Post("/api/playlists", h.createPlaylist)
		r.Post("/api/playlists/import", h.importPlaylist)

		r.Route("/api/playlists/{playlistID}", func(r chi.Router) {
			r.Use(h.withPlaylist)

			r.Get("/", h.getPlaylist)
			r.Get("/removed", h.getRemovedVersions)
			r.Get("/pending", h.getPending)
			r.Post("/poll", h.startPolling)
			r.Post("/apply", h.applyPending)
			r.Post("/refresh", h.refresh)
			r.Post("/versions", h.addVersions)
			r.Delete("/versions/manual", h.clearAddedVersions)
			r.Get("/drafts", h.listDrafts)

			r.Route("/versions/{versionID}", func(r chi.Router) {
				r.Get("/draft", h.getDraft)
				r.Put("/draft", h.saveDraft)
				r.Delete("/draft", h.clearDraft)
				r.Post("/publish", h.publish)
				r.With(h.withContentChecksum).Post("/attachments", h.addAttachment)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
