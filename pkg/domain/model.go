package domain

import "slices"

// Model aggregates everything the transport engine needs for one case.
// It is created once by the assembler and never mutated after handoff.
type Model struct {
	Name      string     `json:"name" yaml:"name" mapstructure:"name"`
	Materials []Material `json:"materials" yaml:"materials" mapstructure:"materials"`
	Geometry  Geometry   `json:"geometry" yaml:"geometry" mapstructure:"geometry"`
	Settings  Settings   `json:"settings" yaml:"settings" mapstructure:"settings"`
	Filters   []Filter   `json:"filters" yaml:"filters" mapstructure:"filters"`
	Tallies   []Tally    `json:"tallies" yaml:"tallies" mapstructure:"tallies"`
}

// Material returns the material with the given name.
func (m *Model) Material(name string) (Material, bool) {
	for _, mat := range m.Materials {
		if mat.Name == name {
			return mat, true
		}
	}
	return Material{}, false
}

// Filter returns the filter with the given id.
func (m *Model) Filter(id int) (Filter, bool) {
	for _, f := range m.Filters {
		if f.ID == id {
			return f, true
		}
	}
	return Filter{}, false
}

// Tally returns the tally with the given name.
func (m *Model) Tally(name string) (Tally, bool) {
	for _, t := range m.Tallies {
		if t.Name == name {
			return t, true
		}
	}
	return Tally{}, false
}

// TallyNames returns the tally names in request order.
func (m *Model) TallyNames() []string {
	names := make([]string, len(m.Tallies))
	for i, t := range m.Tallies {
		names[i] = t.Name
	}
	return names
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := *m
	c.Materials = slices.Clone(m.Materials)
	for i := range c.Materials {
		c.Materials[i] = m.Materials[i].Clone()
	}
	c.Geometry = Geometry{
		Surfaces: slices.Clone(m.Geometry.Surfaces),
		Cells:    slices.Clone(m.Geometry.Cells),
	}
	c.Filters = slices.Clone(m.Filters)
	for i, f := range m.Filters {
		c.Filters[i].Cells = slices.Clone(f.Cells)
		c.Filters[i].Particles = slices.Clone(f.Particles)
	}
	c.Tallies = slices.Clone(m.Tallies)
	for i, t := range m.Tallies {
		c.Tallies[i].Filters = slices.Clone(t.Filters)
		c.Tallies[i].Scores = slices.Clone(t.Scores)
		c.Tallies[i].Nuclides = slices.Clone(t.Nuclides)
	}
	return &c
}
