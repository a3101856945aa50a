package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTombstoneJanitor_PurgesWithRetentionCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	versions := mock.NewMockVersionRepository(ctrl)

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	j := NewTombstoneJanitor(versions, config.ClientWorkers{
		TombstoneRetention: 48 * time.Hour,
		JanitorInterval:    time.Hour,
	})
	j.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	versions.EXPECT().PurgeTombstones(gomock.Any(), now.Add(-48*time.Hour)).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			cancel()
			return 3, nil
		})

	assert.NoError(t, j.Run(ctx))
}

func TestTombstoneJanitor_KeepsRunningAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	versions := mock.NewMockVersionRepository(ctrl)

	j := NewTombstoneJanitor(versions, config.ClientWorkers{JanitorInterval: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		versions.EXPECT().PurgeTombstones(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database is locked")),
		versions.EXPECT().PurgeTombstones(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, time.Time) (int64, error) {
				cancel()
				return 0, nil
			}),
	)

	done := make(chan error, 1)
	go func() { done <- j.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestNewTombstoneJanitor_Defaults(t *testing.T) {
	j := NewTombstoneJanitor(nil, config.ClientWorkers{})

	assert.Equal(t, config.DefaultJanitorInterval, j.interval)
	assert.Equal(t, config.DefaultTombstoneRetention, j.retention)
}
