package solver

import "fmt"

// Permutation asserts that its variables take each value of a fixed value
// set exactly once: the values are pairwise distinct and cover the set.
// Sudoku rows, columns and boxes are Permutations over {1..9}.
type Permutation struct {
	id        ConstraintID
	variables VariableSet
	domain    Domain
}

// NewPermutation builds the constraint. The number of variables must equal
// the number of values; anything else is a programmer error and panics.
func NewPermutation(id ConstraintID, variables VariableSet, domain Domain) *Permutation {
	if variables.Len() != domain.Len() {
		panic(fmt.Sprintf("solver: Permutation over %d variables but %d values",
			variables.Len(), domain.Len()))
	}
	return &Permutation{id: id, variables: variables, domain: domain}
}

// ID returns the reporting id.
func (c *Permutation) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *Permutation) Variables() VariableSet { return c.variables }

// CheckSolved reports whether the solved variables exactly cover the value
// set.
func (c *Permutation) CheckSolved(domains Domains) bool {
	return domains.union(c.variables) == c.domain
}

// Simplify first confines every variable to the constraint's value set,
// then runs the naked-tuple kernel. A tuple hit splits the permutation in
// two: the tuple variables over the tuple values, and the rest over the
// remaining values. Both halves are again permutations by pigeonhole.
func (c *Permutation) Simplify(domains Domains, rep Reporter) SimplifyResult {
	progress := false
	c.variables.Iterate(func(v Variable) {
		if apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(c.domain) }) {
			progress = true
		}
	})

	if sel, union, ok := simplifyDistinct(domains, c.variables); ok {
		return Rewrite(
			NewPermutation(c.id, sel, union),
			NewPermutation(c.id, c.variables.Difference(sel), c.domain.Difference(union)),
		)
	}

	return progressIf(progress)
}
