package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{store.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: playlist pl", store.ErrDuplicateID), http.StatusConflict},
		{service.ErrNoPendingChanges, http.StatusConflict},
		{service.ErrAlreadyPublished, http.StatusConflict},
		{service.ErrEmptyDraft, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", service.ErrInvalidPlaylist, validators.ErrInvalidPlaylist), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", validators.ErrInvalidNote, errors.New("content: cannot be blank")), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", service.ErrTransientFetch, adapter.ErrUnavailable), http.StatusServiceUnavailable},
		{adapter.ErrUnauthorized, http.StatusBadGateway},
		{fmt.Errorf("%w: %w", service.ErrPersistence, store.ErrExecutingStatement), http.StatusInternalServerError},
		{ErrInvalidJSON, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWithLogging_RecordsRequest(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("done"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/playlists", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	out := buf.String()
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"uri":"/api/playlists"`)
	assert.Contains(t, out, `"status":201`)
	assert.Contains(t, out, `"size":4`)
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.Flush()

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, 3, w.size)
	assert.True(t, rr.Flushed)
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Write([]byte("x"))
	assert.Equal(t, http.StatusOK, w.status)
}

func TestWithGZip(t *testing.T) {
	payload := bytes.Repeat([]byte("version "), 100)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) > 0 {
			w.Write(body)
			return
		}
		w.Write(payload)
	})

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		got, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, rr.Body.Bytes())
	})

	t.Run("event streams stay plain", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		req.Header.Set("Accept", "text/event-stream")
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
	})

	t.Run("decodes gzip request body", func(t *testing.T) {
		var compressed bytes.Buffer
		zw := gzip.NewWriter(&compressed)
		zw.Write([]byte(`{"name":"Picks"}`))
		zw.Close()

		req := httptest.NewRequest(http.MethodPost, "/", &compressed)
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, `{"name":"Picks"}`, rr.Body.String())
	})

	t.Run("no content stays empty", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("rejects broken gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()
		withGZip(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWithPlaylist(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = utils.GetPlaylistIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	run := func(id string) *httptest.ResponseRecorder {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("playlistID", id)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rr := httptest.NewRecorder()
		h.withPlaylist(next).ServeHTTP(rr, req)
		return rr
	}

	rr := run("pl-1")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pl-1", seen)

	seen = ""
	rr = run("   ")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, seen)
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/playlists", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/playlists", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/playlists", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
