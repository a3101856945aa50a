package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
)

// withPlaylist reads the {playlistID} path segment, stores it in the request
// context under [utils.PlaylistIDCtxKey] and tags the request logger with it.
// A blank id is rejected with 400.
func (h *Handler) withPlaylist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playlistID := strings.TrimSpace(chi.URLParam(r, "playlistID"))
		if playlistID == "" {
			writeError(w, r, "Handler.withPlaylist", ErrEmptyPlaylistID)
			return
		}

		ctx := context.WithValue(r.Context(), utils.PlaylistIDCtxKey, playlistID)
		ctx = logger.FromRequest(r).WithPlaylist(playlistID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// playlistID returns the id stored by withPlaylist.
func playlistID(r *http.Request) string {
	id, _ := utils.GetPlaylistIDFromContext(r.Context())
	return id
}
