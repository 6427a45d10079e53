// Package source declares the fusion neutron source of the blanket case.
package source

import (
	"fmt"
	"math"

	"github.com/aretw0/blanket/pkg/domain"
)

// D-T fusion peak parameters.
const (
	DefaultPeakEnergy  = 14.08e6 // eV
	DefaultMassRatio   = 5.0     // (m_D + m_T) / m_n
	DefaultTemperature = 20000.0 // eV, ion temperature
)

// Params describe the ring source.
type Params struct {
	RingRadius  float64 // cm, normally the torus major radius
	PeakEnergy  float64 // eV
	MassRatio   float64
	Temperature float64 // eV
}

// DefaultParams places the ring on the given major radius.
func DefaultParams(major float64) Params {
	return Params{
		RingRadius:  major,
		PeakEnergy:  DefaultPeakEnergy,
		MassRatio:   DefaultMassRatio,
		Temperature: DefaultTemperature,
	}
}

// Fusion returns a unit-strength ring on the mid-plane with a uniform
// azimuth, isotropic emission and a Muir energy spectrum.
func Fusion(p Params) (domain.Source, error) {
	if p.RingRadius <= 0 {
		return domain.Source{}, fmt.Errorf("ring radius must be positive, got %g", p.RingRadius)
	}
	if p.PeakEnergy <= 0 || p.MassRatio <= 0 || p.Temperature <= 0 {
		return domain.Source{}, fmt.Errorf("muir parameters must be positive (e0=%g m_rat=%g kt=%g)",
			p.PeakEnergy, p.MassRatio, p.Temperature)
	}

	return domain.Source{
		Strength: 1,
		Space: domain.RingSpace{
			Radius: p.RingRadius,
			Z:      0,
			PhiMin: 0,
			PhiMax: 2 * math.Pi,
		},
		Angle: domain.AngleIsotropic,
		Energy: domain.MuirEnergy{
			E0:        p.PeakEnergy,
			MassRatio: p.MassRatio,
			KT:        p.Temperature,
		},
	}, nil
}

// SpectrumWidth is the standard deviation (eV) of the Gaussian peak the
// engine samples: sqrt(2·E0·kT / m_rat).
func SpectrumWidth(e domain.MuirEnergy) float64 {
	return math.Sqrt(2 * e.E0 * e.KT / e.MassRatio)
}
