// Package dataset produces the synthetic records every benchmark phase runs over.
package dataset

import (
	"math/rand"

	"algobench/pkg/common"
)

const (
	minExperience = 0
	maxExperience = 10

	// Salaries are drawn in thousands and scaled up.
	minSalaryK = 1500
	maxSalaryK = 12000
)

// Generator owns its random source, so two generators with the same seed
// produce identical datasets regardless of what else the process is doing.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator whose draws are fully determined by seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// People returns n records with ids 1..n in shuffled order.
func (g *Generator) People(n int) []common.Record {
	if n <= 0 {
		return []common.Record{}
	}

	people := make([]common.Record, 0, n)
	for i := 1; i <= n; i++ {
		people = append(people, common.Record{
			ID:         i,
			City:       common.Cities[g.rng.Intn(len(common.Cities))],
			Experience: g.IntRange(minExperience, maxExperience),
			Remote:     g.rng.Intn(2) == 0,
			Salary:     g.IntRange(minSalaryK, maxSalaryK) * 1000,
		})
	}

	g.rng.Shuffle(len(people), func(i, j int) {
		people[i], people[j] = people[j], people[i]
	})
	return people
}

// IntRange draws uniformly from [lo, hi], both ends inclusive.
func (g *Generator) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}
