package dataset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algobench/pkg/common"
)

func TestPeopleDeterministic(t *testing.T) {
	first := NewGenerator(42).People(5)
	second := NewGenerator(42).People(5)

	require.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestPeopleSeedChangesDataset(t *testing.T) {
	a := NewGenerator(1).People(200)
	b := NewGenerator(2).People(200)
	assert.NotEqual(t, a, b)
}

func TestPeopleUniqueIDs(t *testing.T) {
	const n = 1000
	people := NewGenerator(7).People(n)
	require.Len(t, people, n)

	ids := make([]int, 0, n)
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	slices.Sort(ids)
	for i, id := range ids {
		require.Equal(t, i+1, id, "ids must be exactly 1..n")
	}
}

func TestPeopleAttributeRanges(t *testing.T) {
	for _, p := range NewGenerator(3).People(2000) {
		assert.Contains(t, common.Cities, p.City)
		assert.GreaterOrEqual(t, p.Experience, 0)
		assert.LessOrEqual(t, p.Experience, 10)
		assert.GreaterOrEqual(t, p.Salary, 1_500_000)
		assert.LessOrEqual(t, p.Salary, 12_000_000)
		assert.Zero(t, p.Salary%1000, "salary must be a multiple of 1000")
	}
}

func TestPeopleShuffled(t *testing.T) {
	people := NewGenerator(42).People(500)
	sorted := slices.IsSortedFunc(people, func(a, b common.Record) int {
		return a.ID - b.ID
	})
	assert.False(t, sorted, "dataset should not come out in id order")
}

func TestPeopleEmpty(t *testing.T) {
	assert.Empty(t, NewGenerator(42).People(0))
	assert.Empty(t, NewGenerator(42).People(-3))
}

func TestIntRangeInclusive(t *testing.T) {
	g := NewGenerator(9)
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := g.IntRange(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		seenLo = seenLo || v == 1
		seenHi = seenHi || v == 3
	}
	assert.True(t, seenLo)
	assert.True(t, seenHi)
	assert.Equal(t, 5, g.IntRange(5, 5))
}

func TestGeneratorDrawsFollowSeed(t *testing.T) {
	a, b := NewGenerator(5), NewGenerator(5)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntRange(1, 1_000_000), b.IntRange(1, 1_000_000), "draw %d", i)
	}
	assert.Equal(t, a.People(50), b.People(50))
}
