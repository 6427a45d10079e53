package geometry

import (
	"fmt"

	"github.com/aretw0/blanket/pkg/domain"
)

// MaterialLookup resolves catalog materials by name.
type MaterialLookup interface {
	Get(name string) (domain.Material, bool)
}

// Build constructs one torus per radius around the z axis, marks the last one
// as the vacuum boundary, and fills one cell per surface following Layout.
// Surface and cell ids start at 1 and follow the radial order.
func Build(radii Radii, major float64, catalog MaterialLookup) (domain.Geometry, error) {
	if len(radii) != len(Layout) {
		return domain.Geometry{}, fmt.Errorf("layout has %d layers, got %d radii", len(Layout), len(radii))
	}
	if err := radii.Validate(); err != nil {
		return domain.Geometry{}, fmt.Errorf("invalid radii: %w", err)
	}

	g := domain.Geometry{
		Surfaces: make([]domain.Surface, len(radii)),
		Cells:    make([]domain.Cell, len(radii)),
	}

	for i, r := range radii {
		layer := Layout[i]

		boundary := domain.BoundaryTransmission
		if i == len(radii)-1 {
			boundary = domain.BoundaryVacuum
		}
		g.Surfaces[i] = domain.Surface{
			ID:          i + 1,
			Name:        layer.Surface,
			MajorRadius: major,
			MinorRadius: r,
			Boundary:    boundary,
		}

		if _, ok := catalog.Get(layer.Material); !ok {
			return domain.Geometry{}, fmt.Errorf("cell %s: %w %q", layer.Cell, domain.ErrUnknownMaterial, layer.Material)
		}

		region := domain.Region{Outer: i + 1}
		if i > 0 {
			region.Inner = i
		}
		g.Cells[i] = domain.Cell{
			ID:       i + 1,
			Name:     layer.Cell,
			Material: layer.Material,
			Region:   region,
		}
	}

	return g, nil
}
