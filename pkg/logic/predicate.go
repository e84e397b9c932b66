// Package logic evaluates boolean predicates over records and checks
// logical identities against a dataset.
package logic

import "algobench/pkg/common"

// Predicate is a pure boolean function of a record.
type Predicate func(r common.Record) bool

// A holds when the record lives in Bogotá.
func A(r common.Record) bool { return r.City == common.Bogota }

// B holds for at least two years of experience.
func B(r common.Record) bool { return r.Experience >= 2 }

// C holds for remote records.
func C(r common.Record) bool { return r.Remote }

// E1 is (A ∧ B) ∨ C.
func E1(r common.Record) bool { return (A(r) && B(r)) || C(r) }

// DeMorganLeft is ¬(A ∧ B).
func DeMorganLeft(r common.Record) bool { return !(A(r) && B(r)) }

// DeMorganRight is ¬A ∨ ¬B.
func DeMorganRight(r common.Record) bool { return !A(r) || !B(r) }

// And is true when every predicate holds. An empty And is true.
func And(ps ...Predicate) Predicate {
	return func(r common.Record) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Or is true when any predicate holds. An empty Or is false.
func Or(ps ...Predicate) Predicate {
	return func(r common.Record) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(r common.Record) bool { return !p(r) }
}

// Equivalent reports whether p and q agree on every record.
// A single disagreement fails the whole check.
func Equivalent(records []common.Record, p, q Predicate) bool {
	for _, r := range records {
		if p(r) != q(r) {
			return false
		}
	}
	return true
}

// CheckDeMorgan validates ¬(A ∧ B) == ¬A ∨ ¬B over the dataset.
func CheckDeMorgan(records []common.Record) bool {
	return Equivalent(records, DeMorganLeft, DeMorganRight)
}

// Filter returns the records satisfying p, in input order.
// The result never shares a backing array with records.
func Filter(records []common.Record, p Predicate) []common.Record {
	out := make([]common.Record, 0)
	for _, r := range records {
		if p(r) {
			out = append(out, r)
		}
	}
	return out
}

// Count reports how many records satisfy p without allocating.
func Count(records []common.Record, p Predicate) int {
	n := 0
	for _, r := range records {
		if p(r) {
			n++
		}
	}
	return n
}
