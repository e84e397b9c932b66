// Package search implements the array-based id lookups.
package search

import "algobench/pkg/common"

// LinearSearch scans records in order and returns the first with the id.
func LinearSearch(records []common.Record, id int) (common.Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return common.Record{}, false
}

// BinarySearch bisects records, which must already be sorted ascending by id.
// Unsorted input gives wrong answers, not a panic.
func BinarySearch(sorted []common.Record, id int) (common.Record, bool) {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		midID := sorted[mid].ID
		if midID == id {
			return sorted[mid], true
		}
		if id < midID {
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return common.Record{}, false
}
