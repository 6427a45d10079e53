package dsl

import (
	"testing"

	"github.com/aretw0/blanket/pkg/domain"
)

func TestBuilder_Catalog(t *testing.T) {
	b := New()

	b.Material("first_wall").
		Nuclide("W182", 0.265).
		Nuclide("W184", 0.3064).
		Density(domain.DensityUnitsGramsPerCC, 19.25).
		Temperature(900)

	b.Material("structural_material").
		ElementWeight("Ni", 0.53).
		ElementWeight("Cr", 0.1906).
		Density(domain.DensityUnitsGramsPerCC, 8.19).
		Temperature(900)

	materials, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("Expected 2 materials, got %d", len(materials))
	}

	fw := materials[0]
	if fw.ID != 1 || fw.Name != "first_wall" {
		t.Errorf("Expected first_wall with id 1, got %q id %d", fw.Name, fw.ID)
	}
	if fw.Basis() != domain.AtomFraction {
		t.Errorf("Expected atom fractions, got %q", fw.Basis())
	}
	if fw.Constituents[0].Kind != domain.KindNuclide || fw.Constituents[0].Name != "W182" {
		t.Errorf("Unexpected first constituent %+v", fw.Constituents[0])
	}
	if fw.Density.Value != 19.25 || fw.Density.Units != "g/cm3" {
		t.Errorf("Unexpected density %+v", fw.Density)
	}

	ss := materials[1]
	if ss.ID != 2 {
		t.Errorf("Expected id 2, got %d", ss.ID)
	}
	if ss.Basis() != domain.WeightFraction {
		t.Errorf("Expected weight fractions, got %q", ss.Basis())
	}
	if ss.Constituents[1].Kind != domain.KindElement {
		t.Errorf("Expected element kind, got %q", ss.Constituents[1].Kind)
	}
}

func TestBuilder_MaterialReturnsExisting(t *testing.T) {
	b := New()
	b.Material("chamber").Element("H", 1)
	b.Material("chamber").Density(domain.DensityUnitsGramsPerCC, 1e-8)

	materials, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(materials) != 1 {
		t.Fatalf("Expected 1 material, got %d", len(materials))
	}
	if materials[0].Density.Value != 1e-8 || len(materials[0].Constituents) != 1 {
		t.Errorf("Expected both calls to configure the same material, got %+v", materials[0])
	}
}

func TestBuilder_EmptyMaterial(t *testing.T) {
	b := New()
	b.Material("empty")

	if _, err := b.Build(); err == nil {
		t.Error("Expected error for material without constituents")
	}
}

func TestBuilder_CopiesAreIsolated(t *testing.T) {
	b := New()
	mb := b.Material("chamber").Element("H", 1)

	first := mb.Build()
	first.Constituents[0].Fraction = 42

	if again := mb.Build(); again.Constituents[0].Fraction != 1 {
		t.Errorf("Mutating a built copy leaked into the builder: %v", again.Constituents[0].Fraction)
	}
}

func TestMaterial_MixedBasis(t *testing.T) {
	m := New().Material("mixed").Element("Fe", 0.5).ElementWeight("Cr", 0.5).Build()
	if m.Basis() != "" {
		t.Errorf("Expected empty basis for mixed material, got %q", m.Basis())
	}
}
