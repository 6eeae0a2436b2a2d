package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imobsites/crm-board/internal/entity"
)

func newTestCache(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "board.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestLoadWithoutPriorSave(t *testing.T) {
	store := newTestCache(t)

	order, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, order)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestCache(t)
	ctx := context.Background()

	order := entity.NewColumnOrder()
	order[entity.ColunaNovo] = []string{"3", "1"}
	order[entity.ColunaVisita] = []string{"7"}

	require.NoError(t, store.Save(ctx, order))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.True(t, loaded.Equal(order))
}

// Cada mutação regrava a mesma chave; a leitura sempre vê a mais nova.
func TestSaveOverwrites(t *testing.T) {
	store := newTestCache(t)
	ctx := context.Background()

	first := entity.NewColumnOrder()
	first[entity.ColunaNovo] = []string{"1"}
	require.NoError(t, store.Save(ctx, first))

	second := entity.NewColumnOrder()
	second[entity.ColunaNovo] = []string{"2", "1"}
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, loaded[entity.ColunaNovo])
}
