package common

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordString(t *testing.T) {
	r := Record{ID: 7, City: Medellin, Experience: 3, Remote: true, Salary: 4_500_000}
	assert.Equal(t, "Record{ID: 7, City: Medellín, Exp: 3, Remote: true, Salary: 4500000}", r.String())
}

func TestCitiesDrawOrder(t *testing.T) {
	assert.Equal(t, []string{"Bogotá", "Cali", "Medellín", "Barranquilla"}, Cities)
	assert.True(t, slices.Contains(Cities, Barranquilla))
}
