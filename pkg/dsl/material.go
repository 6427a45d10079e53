package dsl

import "github.com/aretw0/blanket/pkg/domain"

// MaterialBuilder provides a fluent API for configuring a material.
type MaterialBuilder struct {
	material domain.Material
}

func (m *MaterialBuilder) add(name string, kind domain.ConstituentKind, fraction float64, basis domain.FractionBasis) *MaterialBuilder {
	m.material.Constituents = append(m.material.Constituents, domain.Constituent{
		Name:     name,
		Kind:     kind,
		Fraction: fraction,
		Basis:    basis,
	})
	return m
}

// Nuclide appends an isotope by atom fraction.
func (m *MaterialBuilder) Nuclide(name string, fraction float64) *MaterialBuilder {
	return m.add(name, domain.KindNuclide, fraction, domain.AtomFraction)
}

// NuclideWeight appends an isotope by weight fraction.
func (m *MaterialBuilder) NuclideWeight(name string, fraction float64) *MaterialBuilder {
	return m.add(name, domain.KindNuclide, fraction, domain.WeightFraction)
}

// Element appends a natural element by atom fraction.
func (m *MaterialBuilder) Element(name string, fraction float64) *MaterialBuilder {
	return m.add(name, domain.KindElement, fraction, domain.AtomFraction)
}

// ElementWeight appends a natural element by weight fraction.
func (m *MaterialBuilder) ElementWeight(name string, fraction float64) *MaterialBuilder {
	return m.add(name, domain.KindElement, fraction, domain.WeightFraction)
}

// Density sets the density with its units.
func (m *MaterialBuilder) Density(units string, value float64) *MaterialBuilder {
	m.material.Density = domain.Density{Value: value, Units: units}
	return m
}

// Temperature sets the material temperature in Kelvin.
func (m *MaterialBuilder) Temperature(kelvin float64) *MaterialBuilder {
	m.material.Temperature = kelvin
	return m
}

// Build returns a copy of the underlying domain.Material.
// This is primarily used by the Builder, but exposed for advanced usage.
func (m *MaterialBuilder) Build() domain.Material {
	return m.material.Clone()
}
