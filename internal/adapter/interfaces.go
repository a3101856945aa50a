// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to
// the remote production-tracking service.
//
// The primary abstraction is [TrackingAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTrackingAdapter]) built on resty and throttled by a
// token-bucket limiter.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrPlaylistNotFound] for 404, [ErrUnavailable] for
// 5xx and network failures).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-review-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tracking_adapter_mock.go -package=mock

// TrackingAdapter defines the calls the client makes to the tracking
// service. Implementations are responsible for serialisation, authentication
// and mapping transport-level errors to the sentinel values defined in this
// package.
type TrackingAdapter interface {
	// FetchPlaylistVersions returns the current version list of the remote
	// playlist. Returns [ErrPlaylistNotFound] (wrapped) when the playlist was
	// deleted upstream and [ErrUnavailable] (wrapped) for transient failures.
	FetchPlaylistVersions(ctx context.Context, remotePlaylistID string) ([]models.RemoteVersion, error)

	// PublishNote creates a note on the tracking service and returns its id.
	// Publishing is a one-way write; nothing is read back.
	PublishNote(ctx context.Context, note models.NoteRequest) (models.NoteResponse, error)
}
