package dsl

import (
	"fmt"

	"github.com/aretw0/blanket/pkg/domain"
)

// Builder manages the material catalog construction.
type Builder struct {
	order     []string
	materials map[string]*MaterialBuilder
}

// New creates a new material builder.
func New() *Builder {
	return &Builder{
		materials: make(map[string]*MaterialBuilder),
	}
}

// Material declares a new material.
// If the material already exists, it returns the existing builder.
func (b *Builder) Material(name string) *MaterialBuilder {
	if mb, ok := b.materials[name]; ok {
		return mb
	}
	mb := &MaterialBuilder{
		material: domain.Material{
			Name:    name,
			Density: domain.Density{Units: domain.DensityUnitsGramsPerCC},
		},
	}
	b.order = append(b.order, name)
	b.materials[name] = mb
	return mb
}

// Build compiles the declared materials in declaration order, assigning ids from 1.
func (b *Builder) Build() ([]domain.Material, error) {
	out := make([]domain.Material, 0, len(b.order))
	for i, name := range b.order {
		if name == "" {
			return nil, fmt.Errorf("material %d: missing name", i+1)
		}
		m := b.materials[name].Build()
		if len(m.Constituents) == 0 {
			return nil, fmt.Errorf("material %s: no constituents", name)
		}
		m.ID = i + 1
		out = append(out, m)
	}
	return out, nil
}
