package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket/pkg/adapters/memory"
	"github.com/aretw0/blanket/pkg/domain"
	"github.com/aretw0/blanket/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunModelStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	m := &domain.Model{Name: "a", Tallies: []domain.Tally{{ID: 1, Name: "TBR tank"}}}
	require.NoError(t, store.Save(ctx, "a", m))
	m.Tallies[0].Name = "mutated"

	loaded, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "TBR tank", loaded.Tallies[0].Name)

	loaded.Tallies[0].Name = "mutated again"
	again, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "TBR tank", again.Tallies[0].Name)
}

func TestExporter(t *testing.T) {
	e := memory.NewExporter()
	assert.Nil(t, e.Last())

	require.NoError(t, e.Export(context.Background(), &domain.Model{Name: "first"}))
	require.NoError(t, e.Export(context.Background(), &domain.Model{Name: "second"}))

	assert.Len(t, e.Models(), 2)
	assert.Equal(t, "second", e.Last().Name)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.Export(ctx, &domain.Model{}), context.Canceled)
}
