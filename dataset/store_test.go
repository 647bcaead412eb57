package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStore creates a store in a temporary directory
func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenStore(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)

	t.Cleanup(func() { store.Close() })

	return store
}

func TestStorePutGet(t *testing.T) {
	store := openTestStore(t)

	vector := []float64{0.25, -3.5, 1e-9}

	id, err := store.Put("walk", vector)
	require.NoError(t, err)

	rec, err := store.Get(id)
	require.NoError(t, err)

	assert.Equal(t, "walk", rec.Label)
	assert.Equal(t, vector, rec.Vector)
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(42)
	assert.Error(t, err)
}

func TestStoreListAndCount(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Put("walk", []float64{1, 2})
	require.NoError(t, err)

	_, err = store.Put("stand", []float64{3, 4})
	require.NoError(t, err)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	// insertion order preserved
	assert.Equal(t, "walk", records[0].Label)
	assert.Equal(t, "stand", records[1].Label)
	assert.Equal(t, []float64{3, 4}, records[1].Vector)
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.db")

	store, err := OpenStore(path)
	require.NoError(t, err)

	_, err = store.Put("walk", []float64{7})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// records survive reopening
	store, err = OpenStore(path)
	require.NoError(t, err)

	defer store.Close()

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
