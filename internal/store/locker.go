package store

import "sync"

// playlistLocker hands out one mutex per playlist id so that all writes to
// a playlist are serialised while different playlists proceed independently.
type playlistLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPlaylistLocker() *playlistLocker {
	return &playlistLocker{locks: make(map[string]*sync.Mutex)}
}

// lock blocks until the playlist mutex is held and returns its release func.
func (l *playlistLocker) lock(playlistID string) func() {
	l.mu.Lock()
	m, ok := l.locks[playlistID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[playlistID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
