package solver

import "fmt"

// NotEquals asserts that its two variables take different values.
// Anti-knight and anti-king sudoku rules expand into one NotEquals per
// attacking pair.
type NotEquals struct {
	id        ConstraintID
	variables VariableSet
}

// NewNotEquals builds the constraint over exactly two variables.
func NewNotEquals(id ConstraintID, variables VariableSet) *NotEquals {
	if variables.Len() != 2 {
		panic(fmt.Sprintf("solver: NotEquals over %d variables", variables.Len()))
	}
	return &NotEquals{id: id, variables: variables}
}

// ID returns the reporting id.
func (c *NotEquals) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *NotEquals) Variables() VariableSet { return c.variables }

// CheckSolved reports whether the two solved values differ.
func (c *NotEquals) CheckSolved(domains Domains) bool {
	v1, v2 := c.variables.Min(), c.variables.Max()
	return domains[v1].Min() != domains[v2].Min()
}

// Simplify resolves the constraint once either side is solved: equal
// singletons are a contradiction, distinct singletons discharge the
// constraint, and a single solved side removes its value from the other.
func (c *NotEquals) Simplify(domains Domains, rep Reporter) SimplifyResult {
	v1, v2 := c.variables.Min(), c.variables.Max()
	d1, d2 := domains[v1], domains[v2]

	if d1.Len() == 1 && d2.Len() == 1 {
		if d1 == d2 {
			return ResultUnsolvable
		}
		return ResultSolved
	}

	progress := false
	if x, ok := d1.Value(); ok && d2.Contains(x) {
		progress = apply(c, domains, rep, v2, func(d *Domain) { d.Remove(x) }) || progress
	}
	if x, ok := d2.Value(); ok && d1.Contains(x) {
		progress = apply(c, domains, rep, v1, func(d *Domain) { d.Remove(x) }) || progress
	}
	return progressIf(progress)
}
