package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func sampleModel() *Model {
	return &Model{
		Name: "case",
		Materials: []Material{
			{ID: 1, Name: "chamber", Density: Density{Value: 1e-8, Units: DensityUnitsGramsPerCC}},
			{ID: 2, Name: "first_wall", Density: Density{Value: 19.25, Units: DensityUnitsGramsPerCC}},
		},
		Geometry: Geometry{
			Surfaces: []Surface{
				{ID: 1, MajorRadius: 330, MinorRadius: 188.7},
				{ID: 2, MajorRadius: 330, MinorRadius: 188.8, Boundary: BoundaryVacuum},
			},
		},
		Settings: Settings{Batches: 240, Particles: 100},
		Filters: []Filter{
			{ID: 1, Kind: FilterCell, Cells: []int{1}},
			{ID: 2, Kind: FilterEnergy, GroupStructure: "VITAMIN-J-175"},
		},
		Tallies: []Tally{
			{ID: 1, Name: "TBR channel", Filters: []int{1}, Scores: []string{ScoreTritium}, Nuclides: []string{"Li6", "Li7"}},
			{ID: 2, Name: "heating fw n", Filters: []int{1}, Scores: []string{ScoreHeating}},
			{ID: 3, Name: "neutron_spectra_fw", Filters: []int{1, 2}, Scores: []string{ScoreFlux}},
		},
	}
}

func TestDiff(t *testing.T) {
	t.Run("First Build (Old is Nil)", func(t *testing.T) {
		m := sampleModel()
		d := Diff(nil, m)
		if d == nil {
			t.Fatal("expected a diff for the first build")
		}
		if d.Radii == nil || len(d.Radii.New) != 2 || d.Radii.Old != nil {
			t.Errorf("unexpected radii delta: %+v", d.Radii)
		}
		if len(d.Materials) != 2 {
			t.Errorf("expected 2 materials, got %v", d.Materials)
		}
		if len(d.TalliesAdded) != 3 || len(d.TalliesRemoved) != 0 || len(d.TalliesChanged) != 0 {
			t.Errorf("unexpected tally delta: +%v -%v", d.TalliesAdded, d.TalliesRemoved)
		}
		if d.Settings == nil {
			t.Error("expected settings in first build diff")
		}
	})

	t.Run("No Changes", func(t *testing.T) {
		if d := Diff(sampleModel(), sampleModel()); d != nil {
			t.Errorf("expected nil diff, got %+v", d)
		}
	})

	t.Run("Shifted Shell", func(t *testing.T) {
		changed := sampleModel()
		changed.Geometry.Surfaces[1].MinorRadius = 189.8
		d := Diff(sampleModel(), changed)
		if d == nil || d.Radii == nil {
			t.Fatalf("expected radii delta, got %+v", d)
		}
		if d.Radii.Old[1] != 188.8 || d.Radii.New[1] != 189.8 {
			t.Errorf("unexpected radii delta %+v", d.Radii)
		}
		if d.Settings != nil || len(d.Materials) != 0 {
			t.Errorf("only radii should change, got %+v", d)
		}
	})

	t.Run("Tally Renamed", func(t *testing.T) {
		changed := sampleModel()
		changed.Tallies[1].Name = "heating fw tot n"
		d := Diff(sampleModel(), changed)
		if d == nil {
			t.Fatal("expected diff")
		}
		if strings.Join(d.TalliesAdded, ",") != "heating fw tot n" {
			t.Errorf("added = %v", d.TalliesAdded)
		}
		if strings.Join(d.TalliesRemoved, ",") != "heating fw n" {
			t.Errorf("removed = %v", d.TalliesRemoved)
		}
	})

	t.Run("Group Structure Changed", func(t *testing.T) {
		changed := sampleModel()
		changed.Filters[1].GroupStructure = "CCFE-709"
		d := Diff(sampleModel(), changed)
		if d == nil {
			t.Fatal("expected diff for a new group structure")
		}
		if strings.Join(d.TalliesChanged, ",") != "neutron_spectra_fw" {
			t.Errorf("changed = %v", d.TalliesChanged)
		}
		if len(d.TalliesAdded) != 0 || len(d.TalliesRemoved) != 0 {
			t.Errorf("names are unchanged, got +%v -%v", d.TalliesAdded, d.TalliesRemoved)
		}
	})

	t.Run("Tally Nuclides Changed", func(t *testing.T) {
		changed := sampleModel()
		changed.Tallies[0].Nuclides = []string{"Li6"}
		d := Diff(sampleModel(), changed)
		if d == nil || strings.Join(d.TalliesChanged, ",") != "TBR channel" {
			t.Errorf("expected TBR channel reported, got %+v", d)
		}
	})

	t.Run("Filters Renumbered", func(t *testing.T) {
		changed := sampleModel()
		changed.Filters[0].ID, changed.Filters[1].ID = 2, 1
		for i := range changed.Tallies {
			for j, id := range changed.Tallies[i].Filters {
				changed.Tallies[i].Filters[j] = 3 - id
			}
		}
		if d := Diff(sampleModel(), changed); d != nil {
			t.Errorf("renumbering alone should not be reported, got %+v", d)
		}
	})

	t.Run("Material Removed", func(t *testing.T) {
		changed := sampleModel()
		changed.Materials = changed.Materials[:1]
		d := Diff(sampleModel(), changed)
		if d == nil || len(d.Materials) != 1 || d.Materials[0] != "first_wall" {
			t.Errorf("expected first_wall reported, got %+v", d)
		}
	})
}

func TestDiff_JSONOmitsUnchanged(t *testing.T) {
	changed := sampleModel()
	changed.Settings.Particles = 4200000
	d := Diff(sampleModel(), changed)
	if d == nil {
		t.Fatal("expected diff")
	}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "radii") || strings.Contains(s, "tallies_added") {
		t.Errorf("unchanged fields should be omitted: %s", s)
	}
	if !strings.Contains(s, `"particles":4200000`) {
		t.Errorf("settings payload missing: %s", s)
	}
}
