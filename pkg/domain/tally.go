package domain

// FilterKind names the binning a Filter applies.
type FilterKind string

const (
	FilterCell     FilterKind = "cell"
	FilterParticle FilterKind = "particle"
	FilterEnergy   FilterKind = "energy"
)

// Score names used by the tally set.
const (
	ScoreHeating      = "heating"
	ScoreHeatingLocal = "heating-local"
	ScoreFlux         = "flux"
	ScoreTritium      = "(n,Xt)"
)

// Filter bins tally scores. Exactly one of Cells, Particles or GroupStructure
// is set, according to Kind. Energy filters reference a named group structure;
// the bounds are resolved at export time.
type Filter struct {
	ID             int        `json:"id" yaml:"id" mapstructure:"id"`
	Kind           FilterKind `json:"kind" yaml:"kind" mapstructure:"kind"`
	Cells          []int      `json:"cells,omitempty" yaml:"cells,omitempty" mapstructure:"cells"`
	Particles      []Particle `json:"particles,omitempty" yaml:"particles,omitempty" mapstructure:"particles"`
	GroupStructure string     `json:"group_structure,omitempty" yaml:"group_structure,omitempty" mapstructure:"group_structure"`
}

// Tally is a named scoring request.
type Tally struct {
	ID       int      `json:"id" yaml:"id" mapstructure:"id"`
	Name     string   `json:"name" yaml:"name" mapstructure:"name"`
	Filters  []int    `json:"filters" yaml:"filters" mapstructure:"filters"`
	Scores   []string `json:"scores" yaml:"scores" mapstructure:"scores"`
	Nuclides []string `json:"nuclides,omitempty" yaml:"nuclides,omitempty" mapstructure:"nuclides"`
}
