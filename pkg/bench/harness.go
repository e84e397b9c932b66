// Package bench drives one benchmark run: generate the dataset, check the
// boolean identities, and time each search, sort and tree phase over it.
package bench

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"algobench/pkg/common"
	"algobench/pkg/core"
	"algobench/pkg/core/learned"
	"algobench/pkg/core/memory"
	"algobench/pkg/core/numeric"
	"algobench/pkg/core/search"
	"algobench/pkg/core/sorting"
	"algobench/pkg/core/structure"
	"algobench/pkg/dataset"
	"algobench/pkg/logic"
	"algobench/pkg/monitor"
	"algobench/pkg/storage"
)

const (
	DefaultInsertionSortMax = 5000
	DefaultBTreeDegree      = 32
	DefaultLearnedFanout    = 1000
)

// Runner holds the knobs shared by every run. A Runner keeps no state
// between runs; each Run owns its dataset and trees.
type Runner struct {
	clock            monitor.Clock
	logger           *slog.Logger
	insertionSortMax int
	btreeDegree      int
	learnedFanout    int
	sqlite           bool
}

type Option func(*Runner)

func WithClock(c monitor.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithInsertionSortMax sets the largest n for which insertion sort is timed.
func WithInsertionSortMax(n int) Option {
	return func(r *Runner) { r.insertionSortMax = n }
}

func WithBTreeDegree(d int) Option {
	return func(r *Runner) { r.btreeDegree = d }
}

func WithLearnedFanout(f int) Option {
	return func(r *Runner) { r.learnedFanout = f }
}

// WithSQLite adds an in-memory SQLite primary-key lookup phase.
func WithSQLite(enabled bool) Option {
	return func(r *Runner) { r.sqlite = enabled }
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		clock:            monitor.SystemClock(),
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		insertionSortMax: DefaultInsertionSortMax,
		btreeDegree:      DefaultBTreeDegree,
		learnedFanout:    DefaultLearnedFanout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run benchmarks a dataset of n records generated from seed with the
// default runner. Without the SQLite phase a run cannot fail.
func Run(n int, seed int64) *Result {
	res, err := NewRunner().Run(n, seed)
	if err != nil {
		panic(fmt.Sprintf("bench: default runner failed: %v", err))
	}
	return res
}

// Run executes every phase for (n, seed). n must be positive.
func (r *Runner) Run(n int, seed int64) (*Result, error) {
	log := r.logger.With("n", n, "seed", seed)
	gen := dataset.NewGenerator(seed)
	people := gen.People(n)

	res := &Result{
		N:          n,
		Seed:       seed,
		DeMorganOK: logic.CheckDeMorgan(people),
	}
	timer := monitor.NewTimer(r.clock)

	var filtered []common.Record
	res.FilterE1 = timer.Measure("filter_E1", func() {
		filtered = logic.Filter(people, logic.E1)
	})
	res.Filtered = len(filtered)

	res.SortBuiltin = timer.Measure("sort_builtin", func() {
		sorted := slices.Clone(filtered)
		slices.SortStableFunc(sorted, func(a, b common.Record) int {
			return a.Salary - b.Salary
		})
	})

	if n <= r.insertionSortMax {
		secs := timer.Measure("insertion_sort", func() {
			_ = sorting.InsertionSort(filtered, common.BySalary)
		})
		res.InsertionSort = &secs
	} else {
		log.Debug("insertion sort skipped", "max", r.insertionSortMax)
	}

	sortedByID := slices.Clone(people)
	slices.SortFunc(sortedByID, func(a, b common.Record) int {
		return a.ID - b.ID
	})
	target := gen.IntRange(1, n)
	res.TargetID = target

	var linHit, binHit common.Record
	var linOK, binOK bool

	res.SearchLinear = timer.Measure("search_linear", func() {
		linHit, linOK = search.LinearSearch(people, target)
	})
	res.SearchBinary = timer.Measure("search_binary", func() {
		binHit, binOK = search.BinarySearch(sortedByID, target)
	})

	tree := structure.NewBST[common.Record]()
	res.BSTBuild = timer.Measure("bst_build", func() {
		for _, p := range people {
			tree.Insert(p.ID, p)
		}
	})
	res.SearchBST = timer.Measure("search_bst", func() {
		_, _ = tree.Search(target)
	})
	res.BSTHeight = tree.Height()

	index := memory.NewIndex(r.btreeDegree)
	res.BTreeBuild = timer.Measure("btree_build", func() {
		for _, p := range people {
			index.Put(p)
		}
	})
	res.SearchBTree = timer.Measure("search_btree", func() {
		_, _ = index.Get(target)
	})

	var li *learned.Index
	res.LearnedBuild = timer.Measure("learned_build", func() {
		li = learned.Build(sortedByID, r.learnedFanout)
	})
	res.SearchLearned = timer.Measure("search_learned", func() {
		_, _ = li.Get(target)
	})

	res.IndexesOrdered = core.Ascending(n, func(visit func(int) bool) {
		tree.InOrder(func(key int, _ common.Record) bool { return visit(key) })
	}) && core.Ascending(n, func(visit func(int) bool) {
		index.Ascend(func(p common.Record) bool { return visit(p.ID) })
	})

	worst := 0
	diagnostics := li.ExportDiagnostics()
	for _, d := range diagnostics {
		worst = max(worst, abs(d.Error))
	}
	log.Debug("learned index",
		"min_err", li.MinErr,
		"max_err", li.MaxErr,
		"samples", len(diagnostics),
		"worst_sampled_err", worst,
	)

	agree := linOK && binOK && linHit == binHit &&
		core.Agree(target, linHit, core.BSTIndex{BST: tree}, index, li)

	if r.sqlite {
		hit, ok, secs, err := r.sqliteLookup(timer, people, target)
		if err != nil {
			return nil, fmt.Errorf("sqlite phase n=%d: %w", n, err)
		}
		res.SearchSQLite = &secs
		agree = agree && ok && hit == linHit
	}
	res.LookupsAgree = agree

	res.ExampleGCD = numeric.Gcd(1071, 462)

	for _, p := range timer.Phases() {
		log.Debug("phase", "name", p.Name, "elapsed", p.Elapsed)
	}
	log.Info("run complete",
		"filtered", res.Filtered,
		"target", target,
		"bst_height", res.BSTHeight,
		"total", timer.Total(),
	)
	return res, nil
}

func (r *Runner) sqliteLookup(timer *monitor.Timer, people []common.Record, target int) (common.Record, bool, float64, error) {
	st, err := storage.OpenSQLite(storage.MemoryDSN)
	if err != nil {
		return common.Record{}, false, 0, err
	}
	defer st.Close()

	if err := st.Load(people); err != nil {
		return common.Record{}, false, 0, err
	}
	rows, err := st.Count()
	if err != nil {
		return common.Record{}, false, 0, err
	}
	if rows != len(people) {
		return common.Record{}, false, 0, fmt.Errorf("sqlite holds %d rows, want %d", rows, len(people))
	}

	var hit common.Record
	var ok bool
	var lookupErr error
	secs := timer.Measure("search_sqlite", func() {
		hit, ok, lookupErr = st.Get(target)
	})
	if lookupErr != nil {
		return common.Record{}, false, 0, lookupErr
	}
	return hit, ok, secs, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
