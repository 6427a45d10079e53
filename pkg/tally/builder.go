// Package tally enumerates the tally requests of the blanket case.
//
// The set is a fixed cross product of shells, species and score kinds,
// expressed as iteration over enumerated sets with naming functions, plus the
// tritium production and flux tallies on selected shells.
package tally

import (
	"fmt"
	"strings"

	"github.com/aretw0/blanket/pkg/domain"
)

// DefaultGroupStructure is the 175-group structure of the spectrum tallies.
const DefaultGroupStructure = "VITAMIN-J-175"

// TritiumNuclides are the candidate breeding nuclides of the TBR tallies.
var TritiumNuclides = []string{"Li6", "Li7"}

// PresentNuclides keeps the candidates that m lists as nuclide constituents,
// in candidate order.
func PresentNuclides(candidates []string, m domain.Material) []string {
	var out []string
	for _, name := range candidates {
		for _, c := range m.Constituents {
			if c.Kind == domain.KindNuclide && c.Name == name {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// CellLookup resolves cells by name.
type CellLookup interface {
	Cell(name string) (domain.Cell, bool)
}

// Options select the shells and group structure.
type Options struct {
	Shells         []string // heating and spectrum shells, in order
	BreederChannel string   // TBR channel cell
	BreederTank    string   // TBR tank cell
	FirstWall      string   // multi-species flux cell
	FirstStructure string   // neutron flux cell
	GroupStructure string

	// TritiumNuclides restrict the TBR tallies; every one must be present in the breeder.
	TritiumNuclides []string
}

// DefaultOptions matches the reference blanket layout.
func DefaultOptions(shells []string) Options {
	return Options{
		Shells:          shells,
		BreederChannel:  "flibe1",
		BreederTank:     "flibe2",
		FirstWall:       "fw",
		FirstStructure:  "str1",
		GroupStructure:  DefaultGroupStructure,
		TritiumNuclides: append([]string(nil), TritiumNuclides...),
	}
}

// Set is the enumerated request list and the filters it references.
type Set struct {
	Filters []domain.Filter
	Tallies []domain.Tally
}

// Names returns tally names in request order.
func (s *Set) Names() []string {
	out := make([]string, len(s.Tallies))
	for i, t := range s.Tallies {
		out[i] = t.Name
	}
	return out
}

// builder shares filters across tallies and rejects duplicate names.
type builder struct {
	cells   CellLookup
	set     Set
	filters map[string]int
	names   map[string]bool
	err     error
}

func (b *builder) filter(key string, f domain.Filter) int {
	if id, ok := b.filters[key]; ok {
		return id
	}
	f.ID = len(b.set.Filters) + 1
	b.set.Filters = append(b.set.Filters, f)
	b.filters[key] = f.ID
	return f.ID
}

func (b *builder) cell(name string) int {
	c, ok := b.cells.Cell(name)
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("no cell named %q", name)
		}
		return 0
	}
	return b.filter(fmt.Sprintf("cell:%d", c.ID), domain.Filter{
		Kind:  domain.FilterCell,
		Cells: []int{c.ID},
	})
}

func (b *builder) particles(ps ...domain.Particle) int {
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = string(p)
	}
	return b.filter("particle:"+strings.Join(labels, ","), domain.Filter{
		Kind:      domain.FilterParticle,
		Particles: append([]domain.Particle(nil), ps...),
	})
}

func (b *builder) energy(structure string) int {
	return b.filter("energy:"+structure, domain.Filter{
		Kind:           domain.FilterEnergy,
		GroupStructure: structure,
	})
}

func (b *builder) add(name string, filters []int, scores []string, nuclides []string) {
	if b.err != nil {
		return
	}
	if b.names[name] {
		b.err = fmt.Errorf("%w: %q", domain.ErrDuplicateTally, name)
		return
	}
	b.names[name] = true
	b.set.Tallies = append(b.set.Tallies, domain.Tally{
		ID:       len(b.set.Tallies) + 1,
		Name:     name,
		Filters:  filters,
		Scores:   scores,
		Nuclides: append([]string(nil), nuclides...),
	})
}

// Build enumerates the tally set over the given cells:
//
//  1. tritium production in the breeder channel and tank,
//  2. cell flux on the first wall (all species) and first structure (neutrons),
//  3. prompt and local heating for every shell and species,
//  4. neutron spectra for every shell on the named group structure.
func Build(cells CellLookup, opts Options) (*Set, error) {
	if opts.GroupStructure == "" {
		return nil, fmt.Errorf("group structure is required")
	}
	if len(opts.Shells) == 0 {
		return nil, fmt.Errorf("at least one shell is required")
	}
	if len(opts.TritiumNuclides) == 0 {
		return nil, fmt.Errorf("at least one tritium nuclide is required")
	}

	b := &builder{
		cells:   cells,
		filters: make(map[string]int),
		names:   make(map[string]bool),
	}

	b.add(TBRChannelName, []int{b.cell(opts.BreederChannel)}, []string{domain.ScoreTritium}, opts.TritiumNuclides)
	b.add(TBRTankName, []int{b.cell(opts.BreederTank)}, []string{domain.ScoreTritium}, opts.TritiumNuclides)

	b.add(FluxName(opts.FirstWall),
		[]int{b.cell(opts.FirstWall), b.particles(domain.Neutron, domain.Electron, domain.Positron, domain.Photon)},
		[]string{domain.ScoreFlux}, nil)
	b.add(FluxName(opts.FirstStructure),
		[]int{b.cell(opts.FirstStructure), b.particles(domain.Neutron)},
		[]string{domain.ScoreFlux}, nil)

	for _, shell := range opts.Shells {
		cell := b.cell(shell)
		for _, sp := range HeatingSpecies {
			b.add(HeatingName(shell, sp), []int{cell, b.particles(sp.Particle)}, []string{domain.ScoreHeating}, nil)
		}
		for _, sp := range HeatingSpecies {
			b.add(TotalHeatingName(shell, sp), []int{cell, b.particles(sp.Particle)}, []string{domain.ScoreHeatingLocal}, nil)
		}
	}

	energy := b.energy(opts.GroupStructure)
	for _, shell := range opts.Shells {
		b.add(SpectrumName(shell),
			[]int{b.cell(shell), b.particles(domain.Neutron), energy},
			[]string{domain.ScoreFlux}, nil)
	}

	if b.err != nil {
		return nil, b.err
	}
	return &b.set, nil
}
