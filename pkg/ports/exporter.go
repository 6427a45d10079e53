package ports

import (
	"context"

	"github.com/aretw0/blanket/pkg/domain"
)

// Exporter hands an assembled model to the outside world, typically by
// writing the transport engine's input files.
type Exporter interface {
	Export(ctx context.Context, model *domain.Model) error
}

// GroupResolver maps an energy group structure name to its bin boundaries (eV).
type GroupResolver interface {
	Resolve(name string) ([]float64, error)
}
