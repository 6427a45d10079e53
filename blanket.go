package blanket

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/geometry"
	"github.com/aretw0/blanket/pkg/materials"
	"github.com/aretw0/blanket/pkg/ports"
	"github.com/aretw0/blanket/pkg/source"
	"github.com/aretw0/blanket/pkg/tally"
	"github.com/aretw0/blanket/pkg/validation"
)

// BuildObserver is notified after every assembly attempt.
type BuildObserver interface {
	ObserveBuild(d time.Duration, model *domain.Model, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveBuild(time.Duration, *domain.Model, error) {}

// Assembler turns a Case into a validated Model.
// It holds no per-build state and is safe for concurrent use.
type Assembler struct {
	logger   *slog.Logger
	observer BuildObserver
	groups   ports.GroupResolver
}

// Option defines a functional option for configuring the Assembler.
type Option func(*Assembler)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}

// WithObserver registers a build observer, typically the metrics collectors.
func WithObserver(o BuildObserver) Option {
	return func(a *Assembler) {
		a.observer = o
	}
}

// WithGroups makes Build reject cases whose energy group structure the
// resolver cannot supply, instead of failing later at export.
func WithGroups(g ports.GroupResolver) Option {
	return func(a *Assembler) {
		a.groups = g
	}
}

// New creates an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build assembles the model of c: materials, shell radii, geometry, source,
// settings and tallies, followed by a full validation pass.
// Identical cases produce identical models.
func (a *Assembler) Build(ctx context.Context, c Case) (*domain.Model, error) {
	start := time.Now()
	model, err := a.build(ctx, c)
	a.observer.ObserveBuild(time.Since(start), model, err)
	if err != nil {
		a.logger.Error("model assembly failed", "case", c.Name, "error", err)
		return nil, err
	}
	return model, nil
}

func (a *Assembler) build(ctx context.Context, c Case) (*domain.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	logger := a.logger.With("case", c.Name)

	catalog, err := materials.Default(materials.Params{
		Temperature:   c.Materials.Temperature,
		Li6Enrichment: c.Materials.Li6Enrichment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build material catalog: %w", err)
	}

	major := c.Geometry.MajorRadius
	radii, err := geometry.SolveChecked(c.Geometry.FirstWallArea, major, c.Geometry.Thicknesses)
	if err != nil {
		return nil, fmt.Errorf("failed to solve shell radii: %w", err)
	}
	logger.Debug("solved shell radii", "inner", radii.Inner(), "outer", radii.Outer())

	geom, err := geometry.Build(radii, major, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build geometry: %w", err)
	}

	src, err := source.Fusion(source.Params{
		RingRadius:  major,
		PeakEnergy:  c.Source.PeakEnergy,
		MassRatio:   c.Source.MassRatio,
		Temperature: c.Source.IonTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to define source: %w", err)
	}

	if a.groups != nil {
		if _, err := a.groups.Resolve(c.Tallies.GroupStructure); err != nil {
			return nil, fmt.Errorf("failed to resolve tally group structure: %w", err)
		}
	}
	opts := tally.DefaultOptions(geometry.Shells())
	opts.GroupStructure = c.Tallies.GroupStructure
	breeder, _ := catalog.Get(materials.Breeder)
	opts.TritiumNuclides = tally.PresentNuclides(tally.TritiumNuclides, breeder)
	set, err := tally.Build(geom, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build tallies: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := &domain.Model{
		Name:      c.Name,
		Materials: catalog.All(),
		Geometry:  geom,
		Settings: domain.Settings{
			RunMode:         domain.RunModeFixedSource,
			Batches:         c.Settings.Batches,
			Particles:       c.Settings.Particles,
			Inactive:        c.Settings.Inactive,
			PhotonTransport: c.Settings.PhotonTransport,
			Source:          src,
		},
		Filters: set.Filters,
		Tallies: set.Tallies,
	}
	if err := validation.Model(model); err != nil {
		return nil, fmt.Errorf("model validation failed: %w", err)
	}

	logger.Info("assembled model",
		"materials", len(model.Materials),
		"cells", len(model.Geometry.Cells),
		"filters", len(model.Filters),
		"tallies", len(model.Tallies),
	)
	return model, nil
}

// Export hands the model to an exporter.
func (a *Assembler) Export(ctx context.Context, model *domain.Model, exporter ports.Exporter) error {
	if model == nil {
		return fmt.Errorf("cannot export a nil model")
	}
	if err := exporter.Export(ctx, model); err != nil {
		a.logger.Error("export failed", "case", model.Name, "error", err)
		return fmt.Errorf("failed to export %q: %w", model.Name, err)
	}
	a.logger.Info("exported model", "case", model.Name)
	return nil
}

// BuildAndExport is Build followed by Export.
func (a *Assembler) BuildAndExport(ctx context.Context, c Case, exporter ports.Exporter) (*domain.Model, error) {
	model, err := a.Build(ctx, c)
	if err != nil {
		return nil, err
	}
	if err := a.Export(ctx, model, exporter); err != nil {
		return nil, err
	}
	return model, nil
}
