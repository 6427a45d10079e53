package tally

import (
	"slices"
	"strings"

	"github.com/aretw0/blanket/pkg/domain"
)

// Species pairs a transported particle with the label used in tally names.
type Species struct {
	Particle domain.Particle
	Label    string
}

// HeatingSpecies is the fixed species order of the heating tallies.
var HeatingSpecies = []Species{
	{Particle: domain.Neutron, Label: "n"},
	{Particle: domain.Electron, Label: "electron"},
	{Particle: domain.Photon, Label: "photon"},
	{Particle: domain.Positron, Label: "positron"},
}

// Result-parsing tools key off these names; keep them stable.

// HeatingName names the prompt heating tally: "heating <shell> <species>".
func HeatingName(shell string, sp Species) string {
	return "heating " + shell + " " + sp.Label
}

// TotalHeatingName names the local heating tally: "heating <shell> tot <species>".
func TotalHeatingName(shell string, sp Species) string {
	return "heating " + shell + " tot " + sp.Label
}

// SpectrumName names the neutron spectrum tally of a shell.
func SpectrumName(shell string) string {
	return "neutron_spectra_" + shell
}

// FluxName names the cell flux tally of a shell.
func FluxName(shell string) string {
	return "cell_flux_tally_" + shell
}

// Tritium production tally names.
const (
	TBRChannelName = "TBR channel"
	TBRTankName    = "TBR tank"
)

// ParseHeatingName is the inverse of HeatingName and TotalHeatingName.
func ParseHeatingName(name string) (shell, label string, total, ok bool) {
	fields := strings.Fields(name)
	switch {
	case len(fields) == 3 && fields[0] == "heating":
		return fields[1], fields[2], false, true
	case len(fields) == 4 && fields[0] == "heating" && fields[2] == "tot":
		return fields[1], fields[3], true, true
	default:
		return "", "", false, false
	}
}

// CoversShell reports whether t scores in the named cell of m, judged by
// the bins of its cell filters.
func CoversShell(m *domain.Model, t domain.Tally, shell string) bool {
	cell, ok := m.Geometry.Cell(shell)
	if !ok {
		return false
	}
	for _, id := range t.Filters {
		f, ok := m.Filter(id)
		if !ok || f.Kind != domain.FilterCell {
			continue
		}
		if slices.Contains(f.Cells, cell.ID) {
			return true
		}
	}
	return false
}
