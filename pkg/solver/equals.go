package solver

import "fmt"

// Equals asserts that all of its variables hold the same value. Variant
// sudoku clone regions and palindrome lines reduce to this.
type Equals struct {
	id        ConstraintID
	variables VariableSet
}

// NewEquals builds the constraint over at least two variables.
func NewEquals(id ConstraintID, variables VariableSet) *Equals {
	if variables.Len() < 2 {
		panic(fmt.Sprintf("solver: Equals over %d variables", variables.Len()))
	}
	return &Equals{id: id, variables: variables}
}

// ID returns the reporting id.
func (c *Equals) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *Equals) Variables() VariableSet { return c.variables }

// CheckSolved reports whether every solved variable carries the same value.
func (c *Equals) CheckSolved(domains Domains) bool {
	first := true
	value := 0
	same := true
	c.variables.Iterate(func(v Variable) {
		x := domains[v].Min()
		if first {
			value, first = x, false
		} else if x != value {
			same = false
		}
	})
	return same
}

// Simplify intersects every variable with the intersection of all covered
// domains: a value any variable cannot take is a value none of them can.
func (c *Equals) Simplify(domains Domains, rep Reporter) SimplifyResult {
	shared := All()
	c.variables.Iterate(func(v Variable) { shared.IntersectWith(domains[v]) })

	progress := false
	c.variables.Iterate(func(v Variable) {
		if apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(shared) }) {
			progress = true
		}
	})
	return progressIf(progress)
}
