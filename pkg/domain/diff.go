package domain

import (
	"reflect"
	"slices"
)

// ModelDiff represents the changes between two builds of the same case.
// It is designed to be logged or serialized when a rebuilt model replaces a stored one.
type ModelDiff struct {
	// Name is always present to identify the case.
	Name string `json:"name"`

	// Radii is set when any surface minor radius changed.
	Radii *RadiiDelta `json:"radii,omitempty"`

	// Materials lists the names of materials that were added, removed or changed.
	Materials []string `json:"materials,omitempty"`

	// TalliesAdded and TalliesRemoved compare tally names.
	TalliesAdded   []string `json:"tallies_added,omitempty"`
	TalliesRemoved []string `json:"tallies_removed,omitempty"`

	// TalliesChanged lists tallies kept by name whose scores, nuclides or
	// resolved filters differ, e.g. after a group structure change.
	TalliesChanged []string `json:"tallies_changed,omitempty"`

	// Settings changed?
	Settings *Settings `json:"settings,omitempty"`
}

// RadiiDelta carries both radii sequences so a reader can spot the shifted shell.
type RadiiDelta struct {
	Old []float64 `json:"old"`
	New []float64 `json:"new"`
}

// Diff calculates the difference between oldModel and newModel.
// If oldModel is nil, it returns a diff representing the entire newModel (first build).
func Diff(oldModel, newModel *Model) *ModelDiff {
	if newModel == nil {
		return nil
	}

	diff := &ModelDiff{Name: newModel.Name}

	var oldRadii []float64
	if oldModel != nil {
		oldRadii = oldModel.Geometry.Radii()
	}
	if newRadii := newModel.Geometry.Radii(); !reflect.DeepEqual(oldRadii, newRadii) {
		diff.Radii = &RadiiDelta{Old: oldRadii, New: newRadii}
	}

	diff.Materials = diffMaterials(oldModel, newModel)
	diff.TalliesAdded, diff.TalliesRemoved = diffTallies(oldModel, newModel)
	diff.TalliesChanged = changedTallies(oldModel, newModel)

	if oldModel == nil || !reflect.DeepEqual(oldModel.Settings, newModel.Settings) {
		s := newModel.Settings
		diff.Settings = &s
	}

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffMaterials(old, new *Model) []string {
	var changed []string
	seen := make(map[string]bool)

	for _, m := range new.Materials {
		seen[m.Name] = true
		if old == nil {
			changed = append(changed, m.Name)
			continue
		}
		prev, ok := old.Material(m.Name)
		if !ok || !reflect.DeepEqual(prev, m) {
			changed = append(changed, m.Name)
		}
	}

	if old != nil {
		for _, m := range old.Materials {
			if !seen[m.Name] {
				changed = append(changed, m.Name)
			}
		}
	}
	return changed
}

// diffTallies compares name sets; order changes are not reported.
func diffTallies(old, new *Model) (added, removed []string) {
	oldNames := make(map[string]bool)
	if old != nil {
		for _, t := range old.Tallies {
			oldNames[t.Name] = true
		}
	}
	newNames := make(map[string]bool, len(new.Tallies))
	for _, t := range new.Tallies {
		newNames[t.Name] = true
		if !oldNames[t.Name] {
			added = append(added, t.Name)
		}
	}
	if old != nil {
		for _, t := range old.Tallies {
			if !newNames[t.Name] {
				removed = append(removed, t.Name)
			}
		}
	}
	return added, removed
}

// changedTallies reports tallies present in both models whose content
// differs. Filter and tally ids are ignored so a renumbering alone is quiet.
func changedTallies(old, new *Model) []string {
	if old == nil {
		return nil
	}
	var changed []string
	for _, t := range new.Tallies {
		prev, ok := old.Tally(t.Name)
		if !ok {
			continue
		}
		if !slices.Equal(prev.Scores, t.Scores) ||
			!slices.Equal(prev.Nuclides, t.Nuclides) ||
			!reflect.DeepEqual(resolveFilters(old, prev), resolveFilters(new, t)) {
			changed = append(changed, t.Name)
		}
	}
	return changed
}

func resolveFilters(m *Model, t Tally) []Filter {
	out := make([]Filter, len(t.Filters))
	for i, id := range t.Filters {
		if f, ok := m.Filter(id); ok {
			f.ID = 0
			out[i] = f
		} else {
			out[i] = Filter{ID: id}
		}
	}
	return out
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *ModelDiff) IsEmpty() bool {
	return d.Radii == nil &&
		len(d.Materials) == 0 &&
		len(d.TalliesAdded) == 0 &&
		len(d.TalliesRemoved) == 0 &&
		len(d.TalliesChanged) == 0 &&
		d.Settings == nil
}
