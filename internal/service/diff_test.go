package service

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDiff_Scenario(t *testing.T) {
	d := ComputeDiff([]string{"v1", "v2"}, nil, remoteVersions("v1", "v3"))

	assert.Equal(t, []string{"v3"}, d.Added)
	assert.Equal(t, []string{"v2"}, d.Removed)
	assert.Equal(t, remoteVersions("v1", "v3"), d.RemoteSnapshot)
	assert.False(t, d.Empty())
}

func TestComputeDiff_NoChange(t *testing.T) {
	d := ComputeDiff([]string{"v2", "v1"}, nil, remoteVersions("v1", "v2"))

	assert.True(t, d.Empty())
	assert.NotNil(t, d.Added)
	assert.NotNil(t, d.Removed)
}

func TestComputeDiff_ManuallyAddedNeverReported(t *testing.T) {
	manual := map[string]struct{}{"v9": {}, "v8": {}}

	tests := []struct {
		name   string
		active []string
		remote []models.RemoteVersion
	}{
		{name: "remote never returns manual", active: []string{"v1", "v9"}, remote: remoteVersions("v1")},
		{name: "remote returns manual", active: []string{"v1", "v9"}, remote: remoteVersions("v1", "v9")},
		{name: "manual not active but remote has it", active: []string{"v1"}, remote: remoteVersions("v1", "v8")},
		{name: "empty remote", active: []string{"v9", "v8"}, remote: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDiff(tt.active, manual, tt.remote)
			for id := range manual {
				assert.NotContains(t, d.Added, id)
				assert.NotContains(t, d.Removed, id)
			}
		})
	}
}

func TestComputeDiff_DuplicatesCollapse(t *testing.T) {
	d := ComputeDiff([]string{"v1", "v1"}, nil, remoteVersions("v2", "v2"))

	assert.Equal(t, []string{"v2"}, d.Added)
	assert.Equal(t, []string{"v1"}, d.Removed)
}

func TestComputeDiff_DeterministicAndOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := range 200 {
		universe := make([]string, 12)
		for i := range universe {
			universe[i] = fmt.Sprintf("v%02d", i)
		}

		var active []string
		manual := map[string]struct{}{}
		var remote []models.RemoteVersion
		for _, id := range universe {
			if rng.IntN(2) == 0 {
				active = append(active, id)
			}
			if rng.IntN(4) == 0 {
				manual[id] = struct{}{}
			}
			if rng.IntN(2) == 0 {
				remote = append(remote, models.RemoteVersion{ID: id})
			}
		}

		want := ComputeDiff(active, manual, remote)
		again := ComputeDiff(active, manual, remote)
		require.Equal(t, want, again, "round %d", round)

		shuffledActive := append([]string(nil), active...)
		shuffledRemote := append([]models.RemoteVersion(nil), remote...)
		rng.Shuffle(len(shuffledActive), func(i, j int) {
			shuffledActive[i], shuffledActive[j] = shuffledActive[j], shuffledActive[i]
		})
		rng.Shuffle(len(shuffledRemote), func(i, j int) {
			shuffledRemote[i], shuffledRemote[j] = shuffledRemote[j], shuffledRemote[i]
		})

		got := ComputeDiff(shuffledActive, manual, shuffledRemote)
		require.Equal(t, want.Added, got.Added, "round %d", round)
		require.Equal(t, want.Removed, got.Removed, "round %d", round)

		for id := range manual {
			require.NotContains(t, got.Added, id)
			require.NotContains(t, got.Removed, id)
		}
	}
}

func TestSplitStates(t *testing.T) {
	active, manual := splitStates([]models.VersionState{
		{VersionID: "v1"},
		{VersionID: "v9", ManuallyAdded: true},
	})

	assert.Equal(t, []string{"v1", "v9"}, active)
	assert.Equal(t, map[string]struct{}{"v9": {}}, manual)
}
