package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/models"
)

const defaultPollInterval = 5 * time.Second

type pollingCoordinator struct {
	playlists store.PlaylistRepository
	versions  store.VersionRepository
	tracking  adapter.TrackingAdapter
	publisher events.Publisher
	interval  time.Duration
	now       func() time.Time

	// lifecycle serialises Start and Stop so a cycle is never orphaned.
	lifecycle sync.Mutex

	mu sync.Mutex
	// generation is bumped on every Start and Stop. A tick captures it and
	// drops its result when it no longer matches.
	generation uint64
	playlistID string
	remoteID   string
	onChange   models.ChangeListener
	// notify hands changes to the listener goroutine of the cycle, so a
	// listener may call Stop, Start or Restart without waiting on itself.
	notify  chan models.PendingChange
	pending *models.PendingChange
	// deletedNotified guards the one-shot deleted-upstream event of the
	// current cycle.
	deletedNotified bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPollingCoordinator creates an idle coordinator polling every interval.
// A non-positive interval defaults to 5 seconds.
func NewPollingCoordinator(
	storages *store.ClientStorages,
	tracking adapter.TrackingAdapter,
	publisher events.Publisher,
	interval time.Duration,
) PollingCoordinator {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if publisher == nil {
		publisher = events.Discard
	}

	return &pollingCoordinator{
		playlists: storages.Playlists,
		versions:  storages.Versions,
		tracking:  tracking,
		publisher: publisher,
		interval:  interval,
		now:       time.Now,
	}
}

// Start implements [PollingCoordinator].
func (c *pollingCoordinator) Start(ctx context.Context, playlistID string, onChange models.ChangeListener) error {
	log := logger.FromContext(ctx)

	details, err := c.playlists.GetPlaylist(ctx, playlistID)
	if err != nil {
		return fmt.Errorf("load playlist for polling: %w", err)
	}
	if !details.Playlist.Pollable() {
		return fmt.Errorf("%w: %s", ErrPlaylistNotPollable, playlistID)
	}

	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.stop()

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.playlistID = playlistID
	c.remoteID = *details.Playlist.RemoteID
	c.onChange = onChange
	c.notify = nil
	c.pending = nil
	c.deletedNotified = false

	// the cycle outlives the request that started it
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	c.cancel = cancel
	if onChange != nil {
		c.notify = make(chan models.PendingChange, 1)
		go c.dispatch(loopCtx, gen, onChange, c.notify)
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go c.loop(loopCtx, gen)

	log.Info().
		Str("func", "pollingCoordinator.Start").
		Str("playlist_id", playlistID).
		Dur("interval", c.interval).
		Msg("polling started")
	return nil
}

func (c *pollingCoordinator) loop(ctx context.Context, gen uint64) {
	defer c.wg.Done()

	c.tick(ctx, gen)

	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.tick(ctx, gen)
		}
	}
}

// dispatch delivers changes to onChange until the cycle ends. It is not
// tracked by wg: stop never waits for a listener.
func (c *pollingCoordinator) dispatch(ctx context.Context, gen uint64, onChange models.ChangeListener, notify <-chan models.PendingChange) {
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-notify:
			c.mu.Lock()
			current := gen == c.generation
			c.mu.Unlock()
			if current {
				onChange(change)
			}
		}
	}
}

// tick runs one fetch-and-diff cycle. Failures are logged and swallowed.
func (c *pollingCoordinator) tick(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	playlistID, remoteID := c.playlistID, c.remoteID
	c.mu.Unlock()

	log := logger.FromContext(ctx).WithPlaylist(playlistID).With().
		Str("func", "pollingCoordinator.tick").
		Logger()

	states, err := c.versions.GetVersionStates(ctx, playlistID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read version states")
		return
	}

	remote, err := c.tracking.FetchPlaylistVersions(ctx, remoteID)
	if err != nil {
		if errors.Is(err, adapter.ErrPlaylistNotFound) {
			c.notifyDeleted(gen, playlistID)
			return
		}
		if ctx.Err() == nil {
			log.Warn().Err(err).Msg("poll fetch failed, retrying next tick")
		}
		return
	}

	active, manual := splitStates(states)
	diff := ComputeDiff(active, manual, remote)

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		log.Debug().Msg("dropping result of a superseded poll")
		return
	}
	c.deletedNotified = false

	if diff.Empty() {
		hadPending := c.pending != nil
		c.pending = nil
		c.mu.Unlock()
		if hadPending {
			c.publisher.Publish(events.Event{Type: events.TypePendingCleared, PlaylistID: playlistID})
		}
		return
	}

	change := models.NewPendingChange(playlistID, diff, c.now())
	c.pending = &change
	notify := c.notify
	c.mu.Unlock()

	log.Info().
		Int("added", change.AddedCount).
		Int("removed", change.RemovedCount).
		Msg("remote changes detected")

	if notify != nil {
		// only the latest change matters to a listener that fell behind
		select {
		case <-notify:
		default:
		}
		select {
		case notify <- change:
		default:
		}
	}
	c.publisher.Publish(events.Event{Type: events.TypePendingChanges, PlaylistID: playlistID, Data: change})
}

func (c *pollingCoordinator) notifyDeleted(gen uint64, playlistID string) {
	c.mu.Lock()
	if gen != c.generation || c.deletedNotified {
		c.mu.Unlock()
		return
	}
	c.deletedNotified = true
	c.pending = nil
	c.mu.Unlock()

	c.publisher.Publish(events.Event{Type: events.TypeDeletedUpstream, PlaylistID: playlistID})
}

// Stop implements [PollingCoordinator].
func (c *pollingCoordinator) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.stop()
}

func (c *pollingCoordinator) stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.generation++
	c.pending = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// Restart implements [PollingCoordinator].
func (c *pollingCoordinator) Restart(ctx context.Context) error {
	c.mu.Lock()
	running := c.cancel != nil
	playlistID, onChange := c.playlistID, c.onChange
	c.mu.Unlock()

	if !running {
		return nil
	}
	return c.Start(ctx, playlistID, onChange)
}

// Pending implements [PollingCoordinator].
func (c *pollingCoordinator) Pending() (models.PendingChange, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return models.PendingChange{}, false
	}
	return *c.pending, true
}

// ClearPending implements [PollingCoordinator].
func (c *pollingCoordinator) ClearPending(playlistID string) {
	c.mu.Lock()
	cleared := c.pending != nil && c.pending.PlaylistID == playlistID
	if cleared {
		c.pending = nil
	}
	c.mu.Unlock()

	if cleared {
		c.publisher.Publish(events.Event{Type: events.TypePendingCleared, PlaylistID: playlistID})
	}
}

// Active implements [PollingCoordinator].
func (c *pollingCoordinator) Active() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil {
		return "", false
	}
	return c.playlistID, true
}
