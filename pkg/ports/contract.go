package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket/pkg/domain"
)

func contractModel(name string) *domain.Model {
	return &domain.Model{
		Name: name,
		Materials: []domain.Material{{
			ID:           1,
			Name:         "neutron_multiplier",
			Constituents: []domain.Constituent{{Name: "Be", Kind: domain.KindElement, Fraction: 1, Basis: domain.AtomFraction}},
			Density:      domain.Density{Value: 1.848, Units: domain.DensityUnitsGramsPerCC},
			Temperature:  900,
		}},
		Geometry: domain.Geometry{
			Surfaces: []domain.Surface{{ID: 1, Name: "outer", MajorRadius: 330, MinorRadius: 100, Boundary: domain.BoundaryVacuum}},
			Cells:    []domain.Cell{{ID: 1, Name: "nm", Material: "neutron_multiplier", Region: domain.Region{Outer: 1}}},
		},
		Settings: domain.Settings{RunMode: domain.RunModeFixedSource, Batches: 2, Particles: 10},
		Filters:  []domain.Filter{{ID: 1, Kind: domain.FilterCell, Cells: []int{1}}},
		Tallies:  []domain.Tally{{ID: 1, Name: "heating nm n", Filters: []int{1}, Scores: []string{domain.ScoreHeating}}},
	}
}

// RunModelStoreContract runs a suite of tests to verify that a ModelStore implementation
// adheres to the defined interface contract.
func RunModelStoreContract(t *testing.T, store ModelStore) {
	ctx := context.Background()
	name := "contract-case-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		model := contractModel(name)

		err := store.Save(ctx, name, model)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, model, loaded)
	})

	t.Run("Save replaces", func(t *testing.T) {
		model := contractModel(name)
		model.Settings.Batches = 7
		require.NoError(t, store.Save(ctx, name, model))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, 7, loaded.Settings.Batches)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrModelNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, name, contractModel(name))
		require.NoError(t, err)

		err = store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrModelNotFound, "Load after Delete should return ErrModelNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing case should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		_ = store.Save(ctx, id1, contractModel(id1))
		_ = store.Save(ctx, id2, contractModel(id2))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
	})
}
