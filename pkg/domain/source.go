package domain

// RingSpace places source sites on a circle of fixed Radius at height Z,
// with the azimuth uniform on [PhiMin, PhiMax] (radians).
type RingSpace struct {
	Radius float64    `json:"radius" yaml:"radius" mapstructure:"radius"`
	Z      float64    `json:"z" yaml:"z" mapstructure:"z"`
	PhiMin float64    `json:"phi_min" yaml:"phi_min" mapstructure:"phi_min"`
	PhiMax float64    `json:"phi_max" yaml:"phi_max" mapstructure:"phi_max"`
	Origin [3]float64 `json:"origin" yaml:"origin" mapstructure:"origin"`
}

// AngleIsotropic is the only angular distribution the source uses.
const AngleIsotropic = "isotropic"

// MuirEnergy is a Gaussian fusion peak parameterised by the peak energy E0 (eV),
// the sum of reactant masses over the neutron mass, and the ion temperature KT (eV).
type MuirEnergy struct {
	E0        float64 `json:"e0" yaml:"e0" mapstructure:"e0"`
	MassRatio float64 `json:"m_rat" yaml:"m_rat" mapstructure:"m_rat"`
	KT        float64 `json:"kt" yaml:"kt" mapstructure:"kt"`
}

// Source is a declarative record of the emission distribution. Sampling is the
// transport engine's job.
type Source struct {
	Strength float64    `json:"strength" yaml:"strength" mapstructure:"strength"`
	Space    RingSpace  `json:"space" yaml:"space" mapstructure:"space"`
	Angle    string     `json:"angle" yaml:"angle" mapstructure:"angle"`
	Energy   MuirEnergy `json:"energy" yaml:"energy" mapstructure:"energy"`
}
