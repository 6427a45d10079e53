package tally

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/geometry"
	"github.com/aretw0/blanket/pkg/materials"
)

func referenceGeometry(t *testing.T) domain.Geometry {
	t.Helper()
	c, err := materials.Default(materials.DefaultParams())
	require.NoError(t, err)
	radii := geometry.Solve(geometry.DefaultFirstWallArea, geometry.DefaultMajorRadius, geometry.DefaultThicknesses)
	g, err := geometry.Build(radii, geometry.DefaultMajorRadius, c)
	require.NoError(t, err)
	return g
}

func TestBuild_ReferenceSet(t *testing.T) {
	g := referenceGeometry(t)
	set, err := Build(g, DefaultOptions(geometry.Shells()))
	require.NoError(t, err)

	// 2 TBR + 2 flux + 7 shells * 4 species * 2 kinds + 7 spectra
	assert.Len(t, set.Tallies, 67)

	names := set.Names()
	assert.Equal(t, []string{"TBR channel", "TBR tank", "cell_flux_tally_fw", "cell_flux_tally_str1"}, names[:4])
	assert.Equal(t, []string{
		"heating fw n", "heating fw electron", "heating fw photon", "heating fw positron",
		"heating fw tot n", "heating fw tot electron", "heating fw tot photon", "heating fw tot positron",
	}, names[4:12])
	assert.Equal(t, "heating str3 tot positron", names[59])
	assert.Equal(t, "neutron_spectra_fw", names[60])
	assert.Equal(t, "neutron_spectra_str3", names[66])

	for i, tl := range set.Tallies {
		assert.Equal(t, i+1, tl.ID)
	}
}

func TestBuild_UniqueNames(t *testing.T) {
	set, err := Build(referenceGeometry(t), DefaultOptions(geometry.Shells()))
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, n := range set.Names() {
		assert.False(t, seen[n], "duplicate %q", n)
		seen[n] = true
	}
}

func TestBuild_Deterministic(t *testing.T) {
	g := referenceGeometry(t)
	a, err := Build(g, DefaultOptions(geometry.Shells()))
	require.NoError(t, err)
	b, err := Build(g, DefaultOptions(geometry.Shells()))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_FiltersShared(t *testing.T) {
	g := referenceGeometry(t)
	set, err := Build(g, DefaultOptions(geometry.Shells()))
	require.NoError(t, err)

	counts := make(map[domain.FilterKind]int)
	for i, f := range set.Filters {
		assert.Equal(t, i+1, f.ID)
		counts[f.Kind]++
	}
	assert.Equal(t, 7, counts[domain.FilterCell], "one cell filter per shell")
	assert.Equal(t, 5, counts[domain.FilterParticle], "four single species plus the first wall set")
	assert.Equal(t, 1, counts[domain.FilterEnergy])

	byID := make(map[int]domain.Filter)
	for _, f := range set.Filters {
		byID[f.ID] = f
	}

	flux := set.Tallies[2]
	require.Len(t, flux.Filters, 2)
	assert.Equal(t, []domain.Particle{domain.Neutron, domain.Electron, domain.Positron, domain.Photon},
		byID[flux.Filters[1]].Particles)

	fw, _ := g.Cell("fw")
	assert.Equal(t, []int{fw.ID}, byID[flux.Filters[0]].Cells)
}

func TestBuild_Scores(t *testing.T) {
	g := referenceGeometry(t)
	set, err := Build(g, DefaultOptions(geometry.Shells()))
	require.NoError(t, err)

	for _, tl := range set.Tallies {
		shell, _, total, ok := ParseHeatingName(tl.Name)
		switch {
		case ok && total:
			assert.Equal(t, []string{domain.ScoreHeatingLocal}, tl.Scores, tl.Name)
		case ok:
			assert.Equal(t, []string{domain.ScoreHeating}, tl.Scores, tl.Name)
		case tl.Name == TBRChannelName || tl.Name == TBRTankName:
			assert.Equal(t, []string{domain.ScoreTritium}, tl.Scores)
			assert.Equal(t, []string{"Li6", "Li7"}, tl.Nuclides)
		default:
			assert.Equal(t, []string{domain.ScoreFlux}, tl.Scores, tl.Name)
		}
		if ok {
			assert.Contains(t, geometry.Shells(), shell)
		}
	}

	spectrum := set.Tallies[60]
	require.Len(t, spectrum.Filters, 3)
	assert.Equal(t, domain.FilterEnergy, set.Filters[spectrum.Filters[2]-1].Kind)
	assert.Equal(t, DefaultGroupStructure, set.Filters[spectrum.Filters[2]-1].GroupStructure)
}

func TestBuild_Errors(t *testing.T) {
	g := referenceGeometry(t)

	_, err := Build(g, DefaultOptions([]string{"fw", "fw"}))
	assert.ErrorIs(t, err, domain.ErrDuplicateTally)

	_, err = Build(g, DefaultOptions([]string{"fw", "mantle"}))
	assert.Error(t, err)

	opts := DefaultOptions(geometry.Shells())
	opts.GroupStructure = ""
	_, err = Build(g, opts)
	assert.Error(t, err)

	_, err = Build(g, DefaultOptions(nil))
	assert.Error(t, err)

	opts = DefaultOptions(geometry.Shells())
	opts.TritiumNuclides = nil
	_, err = Build(g, opts)
	assert.Error(t, err)
}

func TestPresentNuclides(t *testing.T) {
	salt := domain.Material{Constituents: []domain.Constituent{
		{Name: "F", Kind: domain.KindElement},
		{Name: "Li6", Kind: domain.KindNuclide},
	}}
	assert.Equal(t, []string{"Li6"}, PresentNuclides(TritiumNuclides, salt))
	assert.Nil(t, PresentNuclides([]string{"F"}, salt), "elements are not nuclides")

	salt.Constituents = append(salt.Constituents, domain.Constituent{Name: "Li7", Kind: domain.KindNuclide})
	assert.Equal(t, []string{"Li6", "Li7"}, PresentNuclides(TritiumNuclides, salt))
}

func TestNaming(t *testing.T) {
	for _, shell := range geometry.Shells() {
		for _, sp := range HeatingSpecies {
			got, label, total, ok := ParseHeatingName(HeatingName(shell, sp))
			require.True(t, ok)
			assert.Equal(t, shell, got)
			assert.Equal(t, sp.Label, label)
			assert.False(t, total)

			got, label, total, ok = ParseHeatingName(TotalHeatingName(shell, sp))
			require.True(t, ok)
			assert.Equal(t, shell, got)
			assert.Equal(t, sp.Label, label)
			assert.True(t, total)
		}
	}

	for _, name := range []string{"TBR channel", "neutron_spectra_fw", "heating", "heating a b c d"} {
		_, _, _, ok := ParseHeatingName(name)
		assert.False(t, ok, fmt.Sprintf("%q is not a heating name", name))
	}
}

func TestCoversShell(t *testing.T) {
	g := referenceGeometry(t)
	set, err := Build(g, DefaultOptions(geometry.Shells()))
	require.NoError(t, err)
	m := &domain.Model{Geometry: g, Filters: set.Filters, Tallies: set.Tallies}

	tests := []struct {
		name  string
		shell string
		want  bool
	}{
		{"heating fw n", "fw", true},
		{"heating fw tot photon", "fw", true},
		{"heating str1 n", "fw", false},
		{"neutron_spectra_flibe2", "flibe2", true},
		{"cell_flux_tally_str1", "str1", true},
		{TBRChannelName, "flibe1", true},
		{TBRTankName, "flibe2", true},
		{TBRChannelName, "flibe2", false},
		{TBRChannelName, "mantle", false},
	}
	for _, tt := range tests {
		tl, ok := m.Tally(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.want, CoversShell(m, tl, tt.shell), "%s in %s", tt.name, tt.shell)
	}
}
