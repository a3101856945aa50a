package service

import (
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/validators"
)

type ClientServices struct {
	Poller     PollingCoordinator
	Reconciler ReconciliationController
	Drafts     DraftManager
	Playlists  PlaylistService
	Previews   *PreviewTracker
	Validator  validators.Validator
	Broker     *events.Broker
}

func NewClientServices(
	storages *store.ClientStorages,
	tracking adapter.TrackingAdapter,
	broker *events.Broker,
	pollInterval time.Duration,
) *ClientServices {
	validator := validators.NewReviewValidator()
	previews := NewPreviewTracker()

	publisher := events.Discard
	if broker != nil {
		publisher = broker
	}

	poller := NewPollingCoordinator(storages, tracking, publisher, pollInterval)
	reconciler := NewReconciliationController(storages, tracking, poller, publisher)

	return &ClientServices{
		Poller:     poller,
		Reconciler: reconciler,
		Drafts:     NewDraftManager(storages, tracking, validator, previews, publisher),
		Playlists:  NewPlaylistService(storages, reconciler, validator),
		Previews:   previews,
		Validator:  validator,
		Broker:     broker,
	}
}

// Close stops polling and releases every preview handle.
func (s *ClientServices) Close() {
	s.Poller.Stop()
	s.Drafts.Close()
}
