package service

import (
	"slices"

	"github.com/MKhiriev/go-review-keeper/models"
)

// ComputeDiff compares the active local version ids with a fetched remote
// list.
//
// A remote id that is neither active nor manually added is added. An active
// id that is not manually added and missing from remote is removed. Manually
// added ids never appear in either set. Both slices are sorted and free of
// duplicates, so the result depends only on the input sets.
func ComputeDiff(currentActive []string, manuallyAdded map[string]struct{}, remote []models.RemoteVersion) models.Diff {
	active := make(map[string]struct{}, len(currentActive))
	for _, id := range currentActive {
		active[id] = struct{}{}
	}

	inRemote := make(map[string]struct{}, len(remote))
	added := make([]string, 0)
	for _, rv := range remote {
		if _, seen := inRemote[rv.ID]; seen {
			continue
		}
		inRemote[rv.ID] = struct{}{}

		if _, ok := active[rv.ID]; ok {
			continue
		}
		if _, ok := manuallyAdded[rv.ID]; ok {
			continue
		}
		added = append(added, rv.ID)
	}

	removed := make([]string, 0)
	for id := range active {
		if _, ok := manuallyAdded[id]; ok {
			continue
		}
		if _, ok := inRemote[id]; !ok {
			removed = append(removed, id)
		}
	}

	slices.Sort(added)
	slices.Sort(removed)

	return models.Diff{
		Added:          added,
		Removed:        removed,
		RemoteSnapshot: remote,
	}
}

// splitStates turns version states into the active id list and the
// manually added set expected by [ComputeDiff].
func splitStates(states []models.VersionState) ([]string, map[string]struct{}) {
	active := make([]string, 0, len(states))
	manual := make(map[string]struct{})
	for _, s := range states {
		active = append(active, s.VersionID)
		if s.ManuallyAdded {
			manual[s.VersionID] = struct{}{}
		}
	}
	return active, manual
}
