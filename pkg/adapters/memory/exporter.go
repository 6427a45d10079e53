package memory

import (
	"context"
	"sync"

	"github.com/aretw0/blanket/pkg/domain"
)

// Exporter implements ports.Exporter by keeping every exported model.
// Useful for tests and for embedding the assembler in another process.
type Exporter struct {
	mu     sync.Mutex
	models []*domain.Model
}

// NewExporter creates an empty in-memory exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export records a copy of the model.
func (e *Exporter) Export(ctx context.Context, model *domain.Model) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.models = append(e.models, model.Clone())
	return nil
}

// Models returns the exported models in export order.
func (e *Exporter) Models() []*domain.Model {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*domain.Model(nil), e.models...)
}

// Last returns the most recent export, or nil.
func (e *Exporter) Last() *domain.Model {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.models) == 0 {
		return nil
	}
	return e.models[len(e.models)-1]
}
