package common

import "fmt"

// City labels used by the generator. Bogota is the category predicate A tests for.
const (
	Bogota       = "Bogotá"
	Cali         = "Cali"
	Medellin     = "Medellín"
	Barranquilla = "Barranquilla"
)

// Cities is the fixed category set, in draw order.
var Cities = []string{Bogota, Cali, Medellin, Barranquilla}

// Record is the synthetic entity every benchmark phase operates on.
type Record struct {
	ID         int    `json:"id"`
	City       string `json:"city"`
	Experience int    `json:"experience"`
	Remote     bool   `json:"remote"`
	Salary     int    `json:"salary"`
}

// String renders the record for debug output.
func (r Record) String() string {
	return fmt.Sprintf("Record{ID: %d, City: %s, Exp: %d, Remote: %t, Salary: %d}",
		r.ID, r.City, r.Experience, r.Remote, r.Salary)
}

// ByID returns the record's identity; handy as a key function.
func ByID(r Record) int { return r.ID }

// BySalary returns the record's salary; handy as a key function.
func BySalary(r Record) int { return r.Salary }
