package adapter

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/utils"
	"github.com/MKhiriev/go-review-keeper/models"
	"golang.org/x/time/rate"
)

const (
	playlistVersionsPath = "/api/playlists/{playlistID}/versions"
	notesPath            = "/api/notes"
)

type httpTrackingAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewHTTPTrackingAdapter constructs an HTTP/REST implementation of
// [TrackingAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress, configures the request timeout and bearer token and
// builds a limiter allowing cfg.RateLimit requests per second. A
// non-positive rate disables throttling.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPTrackingAdapter(cfg config.ClientAdapter, logger *logger.Logger) (TrackingAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout).WithBearerToken(cfg.Token)

	return &httpTrackingAdapter{
		client:  client,
		limiter: newLimiter(cfg.RateLimit),
		logger:  logger,
	}, nil
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := int(math.Ceil(perSecond))
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPlaylistVersions implements [TrackingAdapter]. It issues
// GET /api/playlists/{id}/versions and decodes the JSON array of versions.
func (h *httpTrackingAdapter) FetchPlaylistVersions(ctx context.Context, remotePlaylistID string) ([]models.RemoteVersion, error) {
	log := logger.FromContext(ctx)

	if err := h.wait(ctx); err != nil {
		return nil, err
	}

	var versions []models.RemoteVersion
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("playlistID", remotePlaylistID).
		SetResult(&versions).
		Get(playlistVersionsPath)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "httpTrackingAdapter.FetchPlaylistVersions").
			Str("remote_playlist_id", remotePlaylistID).
			Msg("fetch request failed")
		return nil, transportError(ctx, "fetch playlist versions", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if versions == nil {
		versions = []models.RemoteVersion{}
	}

	log.Debug().
		Str("func", "httpTrackingAdapter.FetchPlaylistVersions").
		Str("remote_playlist_id", remotePlaylistID).
		Int("versions", len(versions)).
		Msg("fetched remote versions")
	return versions, nil
}

// PublishNote implements [TrackingAdapter]. It POSTs note to /api/notes and
// returns the created note id.
func (h *httpTrackingAdapter) PublishNote(ctx context.Context, note models.NoteRequest) (models.NoteResponse, error) {
	log := logger.FromContext(ctx)

	if err := h.wait(ctx); err != nil {
		return models.NoteResponse{}, err
	}

	var created models.NoteResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post(notesPath)
	if err != nil {
		log.Err(err).
			Str("func", "httpTrackingAdapter.PublishNote").
			Str("version_id", note.VersionID).
			Msg("publish request failed")
		return models.NoteResponse{}, transportError(ctx, "publish note", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteResponse{}, err
	}
	if created.NoteID == "" {
		return models.NoteResponse{}, fmt.Errorf("%w: empty note id", ErrInvalidResponse)
	}

	log.Info().
		Str("func", "httpTrackingAdapter.PublishNote").
		Str("version_id", note.VersionID).
		Str("note_id", created.NoteID).
		Msg("note published")
	return created, nil
}

// wait blocks until the limiter admits one more request.
func (h *httpTrackingAdapter) wait(ctx context.Context) error {
	if err := h.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// transportError keeps cancellation of the caller's context visible and
// classifies every other transport failure, timeouts included, as
// unavailable.
func transportError(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s request: %w", op, errors.Join(ctx.Err(), err))
	}
	return fmt.Errorf("%w: %s request: %w", ErrUnavailable, op, err)
}
