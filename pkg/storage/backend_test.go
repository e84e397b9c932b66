package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algobench/pkg/common"
	"algobench/pkg/dataset"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadAndGet(t *testing.T) {
	s := openTestStore(t)
	people := dataset.NewGenerator(42).People(250)
	require.NoError(t, s.Load(people))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 250, n)

	for _, p := range people {
		got, ok, err := s.Get(p.ID)
		require.NoError(t, err)
		require.True(t, ok, "id %d", p.ID)
		require.Equal(t, p, got)
	}

	_, ok, err := s.Get(251)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadReplacesDuplicates(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Load([]common.Record{{ID: 1, City: common.Cali, Salary: 1_500_000}}))
	require.NoError(t, s.Load([]common.Record{{ID: 1, City: common.Bogota, Remote: true, Salary: 2_000_000}}))

	got, ok, err := s.Get(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, common.Bogota, got.City)
	assert.True(t, got.Remote)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountAfterLoad(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.Load(dataset.NewGenerator(1).People(10)))
	n, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	require.NoError(t, s.Load(nil))
	n, err = s.Count()
	require.NoError(t, err)
	assert.Equal(t, 10, n, "empty load keeps existing rows")
}
