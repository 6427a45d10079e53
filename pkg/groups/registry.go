// Package groups resolves energy group structures by name.
//
// Group boundaries are nuclear data and are supplied from outside, usually
// through a YAML file:
//
//	structures:
//	  - name: VITAMIN-J-175
//	    bounds: [1.0e-5, 0.1, ...]
package groups

import (
	"fmt"
	"math"
	"os"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/blanket/pkg/domain"
)

// Structure is a named set of energy bin boundaries in eV, ascending.
// N boundaries define N-1 groups.
type Structure struct {
	Name   string    `yaml:"name" json:"name"`
	Bounds []float64 `yaml:"bounds" json:"bounds"`
}

// Groups returns the number of energy groups.
func (s Structure) Groups() int {
	if len(s.Bounds) < 2 {
		return 0
	}
	return len(s.Bounds) - 1
}

// Validate checks the boundaries are finite, non-negative and strictly increasing.
func (s Structure) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("group structure: name is required")
	}
	if len(s.Bounds) < 2 {
		return fmt.Errorf("group structure %q: at least two bounds are required", s.Name)
	}
	if floats.HasNaN(s.Bounds) || math.IsInf(floats.Max(s.Bounds), 1) {
		return fmt.Errorf("group structure %q: bounds must be finite", s.Name)
	}
	if floats.Min(s.Bounds) < 0 {
		return fmt.Errorf("group structure %q: bounds must be non-negative", s.Name)
	}
	for i := 1; i < len(s.Bounds); i++ {
		if s.Bounds[i] <= s.Bounds[i-1] {
			return fmt.Errorf("group structure %q: bounds must be strictly increasing at index %d", s.Name, i)
		}
	}
	return nil
}

// Registry is a concurrency-safe set of group structures.
type Registry struct {
	mu         sync.RWMutex
	structures map[string]Structure
}

// NewRegistry creates a registry holding the given structures.
func NewRegistry(structures ...Structure) (*Registry, error) {
	r := &Registry{structures: make(map[string]Structure)}
	for _, s := range structures {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds or replaces a structure after validating it.
func (r *Registry) Register(s Structure) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.Bounds = append([]float64(nil), s.Bounds...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.structures[s.Name] = s
	return nil
}

// Resolve returns the bounds of the named structure.
// Returns domain.ErrUnknownGroupStructure when the name is not registered.
func (r *Registry) Resolve(name string) ([]float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.structures[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGroupStructure, name)
	}
	return append([]float64(nil), s.Bounds...), nil
}

// Names returns the registered structure names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.structures))
	for n := range r.structures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type file struct {
	Structures []Structure `yaml:"structures"`
}

// Parse decodes a YAML document of group structures.
func Parse(data []byte) ([]Structure, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode group structures: %w", err)
	}
	return f.Structures, nil
}

// LoadFile reads a YAML file of group structures into a new registry.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read group structures: %w", err)
	}
	structures, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r, err := NewRegistry(structures...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
