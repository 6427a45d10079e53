// Package openmc writes an assembled model as the OpenMC engine's XML input
// set: materials.xml, geometry.xml, settings.xml and tallies.xml.
package openmc

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/nuclide"
	"github.com/aretw0/blanket/pkg/ports"
	"github.com/aretw0/blanket/pkg/source"
)

// Input file names.
const (
	MaterialsFile = "materials.xml"
	GeometryFile  = "geometry.xml"
	SettingsFile  = "settings.xml"
	TalliesFile   = "tallies.xml"
)

const rootUniverse = 1

// Exporter implements ports.Exporter for OpenMC.
type Exporter struct {
	dir    string
	groups ports.GroupResolver
	logger *slog.Logger
}

type Option func(*Exporter)

// WithGroups sets the resolver for energy filter group structures.
// Without one, models with energy filters cannot be exported.
func WithGroups(g ports.GroupResolver) Option {
	return func(e *Exporter) {
		e.groups = g
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = l
	}
}

// New creates an exporter writing into dir.
func New(dir string, opts ...Option) *Exporter {
	e := &Exporter{
		dir:    dir,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders every input file first and then writes them, so an
// unresolvable model leaves the directory untouched.
func (e *Exporter) Export(ctx context.Context, model *domain.Model) error {
	if model == nil {
		return fmt.Errorf("openmc: model is nil")
	}

	mats, err := materialsDocument(model)
	if err != nil {
		return err
	}
	geom, err := geometryDocument(model)
	if err != nil {
		return err
	}
	tallies, err := talliesDocument(model, e.groups)
	if err != nil {
		return err
	}

	docs := []struct {
		name string
		v    any
	}{
		{MaterialsFile, mats},
		{GeometryFile, geom},
		{SettingsFile, settingsDocument(model.Settings)},
		{TalliesFile, tallies},
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("openmc: failed to create output directory: %w", err)
	}
	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(e.dir, d.name)
		if err := writeXML(path, d.v); err != nil {
			return fmt.Errorf("openmc: %s: %w", d.name, err)
		}
		e.logger.Debug("wrote input file", "path", path)
	}

	e.logger.Info("exported model", "case", model.Name, "dir", e.dir,
		"materials", len(model.Materials), "cells", len(model.Geometry.Cells), "tallies", len(model.Tallies))
	return nil
}

func writeXML(path string, v any) error {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	var b strings.Builder
	b.WriteString(xml.Header)
	b.Write(data)
	b.WriteString("\n")
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func materialsDocument(m *domain.Model) (materialsFile, error) {
	doc := materialsFile{Materials: make([]materialXML, 0, len(m.Materials))}
	for _, mat := range m.Materials {
		x := materialXML{
			ID:          mat.ID,
			Name:        mat.Name,
			Temperature: mat.Temperature,
			Density:     densityXML{Units: mat.Density.Units, Value: mat.Density.Value},
		}
		index := make(map[string]int)
		for _, c := range mat.Constituents {
			shares, err := expand(c)
			if err != nil {
				return materialsFile{}, fmt.Errorf("openmc: material %q: %w", mat.Name, err)
			}
			for _, sh := range shares {
				if i, ok := index[sh.Name]; ok {
					x.Constituents[i].add(sh.Fraction)
					continue
				}
				entry := constituentXML{XMLName: xml.Name{Local: "nuclide"}, Name: sh.Name}
				fraction := sh.Fraction
				switch c.Basis {
				case domain.AtomFraction:
					entry.AO = &fraction
				case domain.WeightFraction:
					entry.WO = &fraction
				default:
					return materialsFile{}, fmt.Errorf("openmc: material %q: unknown fraction basis %q", mat.Name, c.Basis)
				}
				index[sh.Name] = len(x.Constituents)
				x.Constituents = append(x.Constituents, entry)
			}
		}
		doc.Materials = append(doc.Materials, x)
	}
	return doc, nil
}

// expand turns a constituent into nuclide shares. Natural elements are
// split over their isotopes since the engine only reads nuclides.
func expand(c domain.Constituent) ([]nuclide.Share, error) {
	switch c.Kind {
	case domain.KindNuclide:
		return []nuclide.Share{{Name: c.Name, Fraction: c.Fraction}}, nil
	case domain.KindElement:
		if c.Basis == domain.WeightFraction {
			return nuclide.ExpandWeight(c.Name, c.Fraction)
		}
		return nuclide.ExpandAtom(c.Name, c.Fraction)
	default:
		return nil, fmt.Errorf("unknown constituent kind %q", c.Kind)
	}
}

func geometryDocument(m *domain.Model) (geometryFile, error) {
	doc := geometryFile{}
	for _, c := range m.Geometry.Cells {
		mat, ok := m.Material(c.Material)
		if !ok {
			return geometryFile{}, fmt.Errorf("openmc: cell %q: %w %q", c.Name, domain.ErrUnknownMaterial, c.Material)
		}
		doc.Cells = append(doc.Cells, cellXML{
			ID:       c.ID,
			Name:     c.Name,
			Material: mat.ID,
			Region:   c.Region.String(),
			Universe: rootUniverse,
		})
	}
	for _, s := range m.Geometry.Surfaces {
		x := surfaceXML{
			ID:     s.ID,
			Name:   s.Name,
			Type:   "z-torus",
			Coeffs: joinFloats(s.Coefficients()...),
		}
		// Transmission is the engine default and is left implicit.
		if s.Boundary != domain.BoundaryTransmission {
			x.Boundary = string(s.Boundary)
		}
		doc.Surfaces = append(doc.Surfaces, x)
	}
	return doc, nil
}

func settingsDocument(s domain.Settings) settingsFile {
	src := s.Source
	space := src.Space
	return settingsFile{
		RunMode:         s.RunMode,
		Particles:       s.Particles,
		Batches:         s.Batches,
		Inactive:        s.Inactive,
		PhotonTransport: s.PhotonTransport,
		Source: sourceXML{
			Particle: string(domain.Neutron),
			Strength: src.Strength,
			Space: spaceXML{
				Type:   "cylindrical",
				Origin: joinFloats(space.Origin[:]...),
				R:      distXML{Type: "discrete", Parameters: joinFloats(space.Radius, 1)},
				Phi:    distXML{Type: "uniform", Parameters: joinFloats(space.PhiMin, space.PhiMax)},
				Z:      distXML{Type: "discrete", Parameters: joinFloats(space.Z, 1)},
			},
			Angle: distXML{Type: src.Angle},
			// The Muir peak is sampled as a normal distribution around E0.
			Energy: distXML{Type: "normal", Parameters: joinFloats(src.Energy.E0, source.SpectrumWidth(src.Energy))},
		},
	}
}

func talliesDocument(m *domain.Model, groups ports.GroupResolver) (talliesFile, error) {
	doc := talliesFile{}
	for _, f := range m.Filters {
		x := filterXML{ID: f.ID, Type: string(f.Kind)}
		switch f.Kind {
		case domain.FilterCell:
			x.Bins = joinInts(f.Cells)
		case domain.FilterParticle:
			names := make([]string, len(f.Particles))
			for i, p := range f.Particles {
				names[i] = string(p)
			}
			x.Bins = strings.Join(names, " ")
		case domain.FilterEnergy:
			if groups == nil {
				return talliesFile{}, fmt.Errorf("openmc: filter %d: %w: %q (no group registry configured)",
					f.ID, domain.ErrUnknownGroupStructure, f.GroupStructure)
			}
			bounds, err := groups.Resolve(f.GroupStructure)
			if err != nil {
				return talliesFile{}, fmt.Errorf("openmc: filter %d: %w", f.ID, err)
			}
			for i := 1; i < len(bounds); i++ {
				if bounds[i] <= bounds[i-1] {
					return talliesFile{}, fmt.Errorf("openmc: filter %d: group structure %q bounds are not strictly increasing",
						f.ID, f.GroupStructure)
				}
			}
			x.Bins = joinFloats(bounds...)
		default:
			return talliesFile{}, fmt.Errorf("openmc: filter %d: unknown kind %q", f.ID, f.Kind)
		}
		doc.Filters = append(doc.Filters, x)
	}

	for _, t := range m.Tallies {
		doc.Tallies = append(doc.Tallies, tallyXML{
			ID:       t.ID,
			Name:     t.Name,
			Filters:  joinInts(t.Filters),
			Nuclides: strings.Join(t.Nuclides, " "),
			Scores:   strings.Join(t.Scores, " "),
		})
	}
	return doc, nil
}
