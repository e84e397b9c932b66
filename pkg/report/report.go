// Package report renders benchmark results for the console, as aligned text
// or as a JSON envelope.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"algobench/pkg/bench"
)

const skipped = "skipped"

// row is one labelled line of a text report.
type row struct {
	label string
	value string
}

func seconds(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func optionalSeconds(v *float64) string {
	if v == nil {
		return skipped
	}
	return seconds(*v)
}

func rows(p *message.Printer, r *bench.Result) []row {
	return []row{
		{"de_morgan_ok", fmt.Sprint(r.DeMorganOK)},
		{"example_gcd", fmt.Sprint(r.ExampleGCD)},
		{"lookups_agree", fmt.Sprint(r.LookupsAgree)},
		{"indexes_ordered", fmt.Sprint(r.IndexesOrdered)},
		{"filtered", p.Sprintf("%d", r.Filtered)},
		{"bst_height", p.Sprintf("%d", r.BSTHeight)},
		{"filter_E1_s", seconds(r.FilterE1)},
		{"sort_builtin_s", seconds(r.SortBuiltin)},
		{"insertion_sort_s", optionalSeconds(r.InsertionSort)},
		{"search_linear_s", seconds(r.SearchLinear)},
		{"search_binary_s", seconds(r.SearchBinary)},
		{"bst_build_s", seconds(r.BSTBuild)},
		{"search_bst_s", seconds(r.SearchBST)},
		{"btree_build_s", seconds(r.BTreeBuild)},
		{"search_btree_s", seconds(r.SearchBTree)},
		{"learned_build_s", seconds(r.LearnedBuild)},
		{"search_learned_s", seconds(r.SearchLearned)},
		{"search_sqlite_s", optionalSeconds(r.SearchSQLite)},
	}
}

// WriteText prints one block per result, separated by blank lines.
// Counts use English digit grouping.
func WriteText(w io.Writer, results ...*bench.Result) error {
	p := message.NewPrinter(language.English)
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := p.Fprintf(w, "n=%d seed=%d target_id=%d\n", r.N, r.Seed, r.TargetID); err != nil {
			return err
		}
		for _, rw := range rows(p, r) {
			if _, err := fmt.Fprintf(w, "  %-18s %s\n", rw.label, rw.value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Envelope is the JSON shape of every command's output.
type Envelope struct {
	Status  string `json:"status"`             // "ok" or "error"
	Data    any    `json:"data,omitempty"`     // command payload
	Error   string `json:"error,omitempty"`    // failure message
	TraceID string `json:"trace_id,omitempty"` // correlates one invocation's output
}

// WriteJSON prints env as indented JSON followed by a newline.
func WriteJSON(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode %s envelope: %w", env.Status, err)
	}
	return nil
}
