package bench

import "fmt"

// ExpectedGCD is gcd(1071, 462), the dataset-independent sentinel.
const ExpectedGCD = 21

// Result is the read-only outcome of one run. Durations are seconds.
// Optional phases are nil when they were not measured.
type Result struct {
	N          int   `json:"n"`
	Seed       int64 `json:"seed"`
	DeMorganOK bool  `json:"de_morgan_ok"`

	FilterE1      float64  `json:"filter_E1_s"`
	SortBuiltin   float64  `json:"sort_builtin_s"`
	InsertionSort *float64 `json:"insertion_sort_s"`
	SearchLinear  float64  `json:"search_linear_s"`
	SearchBinary  float64  `json:"search_binary_s"`
	BSTBuild      float64  `json:"bst_build_s"`
	SearchBST     float64  `json:"search_bst_s"`
	ExampleGCD    int      `json:"example_gcd"`

	Filtered      int      `json:"filtered"`
	TargetID      int      `json:"target_id"`
	BSTHeight     int      `json:"bst_height"`
	BTreeBuild    float64  `json:"btree_build_s"`
	SearchBTree   float64  `json:"search_btree_s"`
	LearnedBuild  float64  `json:"learned_build_s"`
	SearchLearned float64  `json:"search_learned_s"`
	SearchSQLite  *float64 `json:"search_sqlite_s"`
	LookupsAgree  bool     `json:"lookups_agree"`

	IndexesOrdered bool `json:"indexes_ordered"`
}

// Sentinels lists the self-checks that failed; empty means all passed.
func (r *Result) Sentinels() []string {
	var failed []string
	if !r.DeMorganOK {
		failed = append(failed, fmt.Sprintf("n=%d: De Morgan identity violated", r.N))
	}
	if r.ExampleGCD != ExpectedGCD {
		failed = append(failed, fmt.Sprintf("n=%d: gcd(1071, 462) = %d, want %d", r.N, r.ExampleGCD, ExpectedGCD))
	}
	if !r.LookupsAgree {
		failed = append(failed, fmt.Sprintf("n=%d: lookups for id %d disagree", r.N, r.TargetID))
	}
	if !r.IndexesOrdered {
		failed = append(failed, fmt.Sprintf("n=%d: tree walks are not in ascending id order", r.N))
	}
	return failed
}
