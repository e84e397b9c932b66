package bench

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algobench/pkg/dataset"
	"algobench/pkg/monitor"
)

func stepRunner(opts ...Option) *Runner {
	clock := monitor.NewStepClock(time.Unix(0, 0), time.Second)
	return NewRunner(append([]Option{WithClock(clock)}, opts...)...)
}

func TestRunSmallDataset(t *testing.T) {
	res, err := stepRunner().Run(1000, 42)
	require.NoError(t, err)

	assert.Equal(t, 1000, res.N)
	assert.Equal(t, int64(42), res.Seed)
	assert.True(t, res.DeMorganOK)
	assert.Equal(t, 21, res.ExampleGCD)
	assert.True(t, res.LookupsAgree)
	assert.True(t, res.IndexesOrdered)
	assert.Empty(t, res.Sentinels())

	assert.GreaterOrEqual(t, res.TargetID, 1)
	assert.LessOrEqual(t, res.TargetID, 1000)
	assert.Greater(t, res.Filtered, 0)
	assert.Less(t, res.Filtered, 1000)
	assert.Greater(t, res.BSTHeight, 0)

	require.NotNil(t, res.InsertionSort)
	assert.Equal(t, 1.0, *res.InsertionSort)
	for name, v := range map[string]float64{
		"filter":         res.FilterE1,
		"sort":           res.SortBuiltin,
		"linear":         res.SearchLinear,
		"binary":         res.SearchBinary,
		"bst_build":      res.BSTBuild,
		"bst_search":     res.SearchBST,
		"btree_build":    res.BTreeBuild,
		"btree_search":   res.SearchBTree,
		"learned_build":  res.LearnedBuild,
		"learned_search": res.SearchLearned,
	} {
		assert.Equal(t, 1.0, v, name)
	}
	assert.Nil(t, res.SearchSQLite)
}

func TestRunSkipsInsertionSortAboveThreshold(t *testing.T) {
	res, err := stepRunner().Run(10000, 42)
	require.NoError(t, err)
	assert.Nil(t, res.InsertionSort)
	assert.Empty(t, res.Sentinels())
}

func TestRunThresholdIsInclusive(t *testing.T) {
	res, err := stepRunner(WithInsertionSortMax(500)).Run(500, 1)
	require.NoError(t, err)
	assert.NotNil(t, res.InsertionSort)

	res, err = stepRunner(WithInsertionSortMax(500)).Run(501, 1)
	require.NoError(t, err)
	assert.Nil(t, res.InsertionSort)
}

func TestRunDeterministic(t *testing.T) {
	a, err := stepRunner().Run(2000, 7)
	require.NoError(t, err)
	b, err := stepRunner().Run(2000, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := stepRunner().Run(2000, 8)
	require.NoError(t, err)
	assert.True(t, a.TargetID != c.TargetID || a.Filtered != c.Filtered || a.BSTHeight != c.BSTHeight)
}

func TestRunPackageEntryPoint(t *testing.T) {
	res := Run(1000, 42)
	require.NotNil(t, res)
	assert.Empty(t, res.Sentinels())
	assert.GreaterOrEqual(t, res.FilterE1, 0.0)
	assert.NotNil(t, res.InsertionSort)
}

func TestRunWithSQLite(t *testing.T) {
	res, err := stepRunner(WithSQLite(true)).Run(800, 42)
	require.NoError(t, err)
	require.NotNil(t, res.SearchSQLite)
	assert.Equal(t, 1.0, *res.SearchSQLite)
	assert.True(t, res.LookupsAgree)
}

func TestSQLiteLookupRejectsRowCountMismatch(t *testing.T) {
	people := dataset.NewGenerator(3).People(20)
	people = append(people, people[0])

	timer := monitor.NewTimer(monitor.NewStepClock(time.Unix(0, 0), time.Second))
	_, _, _, err := stepRunner().sqliteLookup(timer, people, people[0].ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite holds 20 rows, want 21")
	assert.Empty(t, timer.Phases(), "lookup must not be timed after a failed load")
}

func TestRunLogsPhases(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := stepRunner(WithLogger(logger)).Run(6000, 42)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "insertion sort skipped")
	assert.Contains(t, out, "name=bst_build")
	assert.Contains(t, out, "msg=\"learned index\"")
	assert.Contains(t, out, "samples=6000")
	assert.Contains(t, out, "run complete")
	assert.NotContains(t, out, "name=insertion_sort")
}

func TestResultJSONKeys(t *testing.T) {
	res, err := stepRunner().Run(10000, 42)
	require.NoError(t, err)

	data, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{
		"n", "de_morgan_ok", "filter_E1_s", "sort_builtin_s", "insertion_sort_s",
		"search_linear_s", "search_binary_s", "bst_build_s", "search_bst_s", "example_gcd",
		"lookups_agree", "indexes_ordered",
	} {
		assert.Contains(t, m, key)
	}
	assert.Nil(t, m["insertion_sort_s"])
	assert.Equal(t, 21.0, m["example_gcd"])
}

func TestSentinels(t *testing.T) {
	res := &Result{N: 5, DeMorganOK: true, ExampleGCD: ExpectedGCD, LookupsAgree: true, IndexesOrdered: true}
	assert.Empty(t, res.Sentinels())

	res.DeMorganOK = false
	res.ExampleGCD = 7
	res.LookupsAgree = false
	res.IndexesOrdered = false
	res.TargetID = 3
	failed := res.Sentinels()
	require.Len(t, failed, 4)
	assert.Contains(t, failed[0], "De Morgan")
	assert.Contains(t, failed[1], "gcd")
	assert.Contains(t, failed[2], "id 3")
	assert.Contains(t, failed[3], "ascending id order")
}
