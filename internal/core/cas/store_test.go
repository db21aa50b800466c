// internal/core/cas/store_test.go
package cas

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unboxed-hq/hazwaste/internal/core/db"
	"github.com/unboxed-hq/hazwaste/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.MigrateUp(conn))

	queries, err := db.LoadQueries(conn)
	require.NoError(t, err)

	store, err := NewStore(queries)
	require.NoError(t, err)
	return store
}

func TestStore_LookupSeededChemical(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chem, err := store.Lookup(ctx, "67-64-1")
	require.NoError(t, err)
	require.NotNil(t, chem)

	assert.Equal(t, "Acetone", chem.Name)
	assert.True(t, chem.Ignitable)
	assert.False(t, chem.Corrosive)
	require.NotNil(t, chem.FlashPointC)
	assert.InDelta(t, -17.0, *chem.FlashPointC, 0.001)
	assert.Equal(t, "UN1090", chem.UNNumber)
	assert.Equal(t, "3", chem.HazardClass)
}

func TestStore_LookupMissIsNilNil(t *testing.T) {
	store := newTestStore(t)

	chem, err := store.Lookup(context.Background(), "50-78-2")
	require.NoError(t, err)
	assert.Nil(t, chem)
}

func TestStore_Upsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	fp := 23.0
	chem := &Chemical{
		CASNumber:   "100-41-4",
		Name:        "Ethylbenzene",
		Ignitable:   true,
		FlashPointC: &fp,
		UNNumber:    "UN1175",
		HazardClass: "3",
	}
	require.NoError(t, store.Upsert(ctx, chem))

	got, err := store.Lookup(ctx, "100-41-4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ethylbenzene", got.Name)

	// Upsert replaces on conflict.
	chem.Name = "Ethylbenzene (technical)"
	require.NoError(t, store.Upsert(ctx, chem))

	got, err = store.Lookup(ctx, "100-41-4")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ethylbenzene (technical)", got.Name)
}

func TestStore_UpsertRejectsInvalidCAS(t *testing.T) {
	store := newTestStore(t)

	err := store.Upsert(context.Background(), &Chemical{
		CASNumber: "12-34-5",
		Name:      "Bogus",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidCAS)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	chems, err := store.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, chems, 5)

	// Ordered by CAS number.
	for i := 1; i < len(chems); i++ {
		assert.Less(t, chems[i-1].CASNumber, chems[i].CASNumber)
	}

	all, err := store.List(ctx, 1000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 19)
}

func TestStore_CountIncludesSeedRows(t *testing.T) {
	store := newTestStore(t)

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 19)
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	conn, err := db.Open("sqlite://" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.MigrateUp(conn))
	require.NoError(t, db.MigrateUp(conn))

	statuses, err := db.MigrateStatus(conn)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.True(t, s.Applied, "migration %s not applied", s.ID)
	}
}
