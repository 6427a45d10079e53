// Package manifest writes and reads a single-file YAML description of an
// assembled model, for downstream tooling that keys off tally and cell names.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/blanket/pkg/domain"
)

// FileName is the manifest written into the export directory.
const FileName = "model.yaml"

// Kind identifies manifest documents.
const Kind = "blanket/model"

// CurrentVersion is the manifest schema version written by this package.
const CurrentVersion = 1

// Document is the manifest envelope.
type Document struct {
	Kind      string        `yaml:"kind" mapstructure:"kind"`
	Version   int           `yaml:"version" mapstructure:"version"`
	Generator string        `yaml:"generator,omitempty" mapstructure:"generator"`
	Model     *domain.Model `yaml:"model" mapstructure:"model"`
}

// Exporter implements ports.Exporter by writing model.yaml into a directory.
type Exporter struct {
	dir       string
	generator string
}

type Option func(*Exporter)

// WithGenerator records the producing tool and version in the manifest.
func WithGenerator(g string) Option {
	return func(e *Exporter) {
		e.generator = g
	}
}

// New creates a manifest exporter writing into dir.
func New(dir string, opts ...Option) *Exporter {
	e := &Exporter{dir: dir}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Path returns the manifest file path.
func (e *Exporter) Path() string {
	return filepath.Join(e.dir, FileName)
}

// Export writes the manifest.
func (e *Exporter) Export(ctx context.Context, model *domain.Model) error {
	if model == nil {
		return fmt.Errorf("manifest: model is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Marshal(Document{Kind: Kind, Version: CurrentVersion, Generator: e.generator, Model: model})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("manifest: failed to create output directory: %w", err)
	}
	if err := os.WriteFile(e.Path(), data, 0644); err != nil {
		return fmt.Errorf("manifest: failed to write: %w", err)
	}
	return nil
}

// Marshal renders a manifest document.
func Marshal(doc Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to marshal: %w", err)
	}
	return data, nil
}

// Decode reads a manifest from YAML. Unknown keys are rejected so that
// hand-edited manifests fail loudly instead of silently losing fields.
func Decode(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: invalid yaml: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("manifest: empty document")
	}

	var doc Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("manifest: failed to decode: %w", err)
	}

	if doc.Kind != Kind {
		return nil, fmt.Errorf("manifest: unexpected kind %q", doc.Kind)
	}
	if doc.Version < 1 || doc.Version > CurrentVersion {
		return nil, fmt.Errorf("manifest: unsupported version %d", doc.Version)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("manifest: model is missing")
	}
	return &doc, nil
}

// Load reads a manifest file and returns its model.
func Load(path string) (*domain.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: failed to read: %w", err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.Model, nil
}
