package solver

import "fmt"

// DistinctAntisum asserts that its variables take pairwise distinct values
// whose sum avoids every value of a forbidden set. It is the negative
// counterpart of DistinctSum, used for "the cage must not sum to X" clues.
type DistinctAntisum struct {
	id        ConstraintID
	variables VariableSet
	antisums  BitSet
}

// NewDistinctAntisum builds the constraint over a non-empty variable set.
func NewDistinctAntisum(id ConstraintID, variables VariableSet, antisums BitSet) *DistinctAntisum {
	if variables.Empty() {
		panic(fmt.Sprintf("solver: DistinctAntisum over %d variables", variables.Len()))
	}
	return &DistinctAntisum{id: id, variables: variables, antisums: antisums}
}

// ID returns the reporting id.
func (c *DistinctAntisum) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *DistinctAntisum) Variables() VariableSet { return c.variables }

// CheckSolved reports whether the solved values are distinct and their sum
// avoids the forbidden set. Sums past the set's range are trivially
// permitted.
func (c *DistinctAntisum) CheckSolved(domains Domains) bool {
	union := domains.union(c.variables)
	return union.Len() == c.variables.Len() && !c.antisums.Contains(union.Sum())
}

// Simplify mirrors DistinctSum: a lone variable simply loses the forbidden
// values; a naked-tuple hit peels off a Permutation and shifts the
// forbidden set down by the tuple's sum for the remainder.
func (c *DistinctAntisum) Simplify(domains Domains, rep Reporter) SimplifyResult {
	if v, ok := c.variables.Value(); ok {
		apply(c, domains, rep, v, func(d *Domain) { d.DifferenceWith(c.antisums) })
		if domains[v].Empty() {
			return ResultUnsolvable
		}
		return ResultSolved
	}

	if sel, d1, ok := simplifyDistinct(domains, c.variables); ok {
		s1 := d1.Sum()
		var shifted BitSet
		c.antisums.Iterate(func(a int) {
			if a >= s1 {
				shifted.Insert(a - s1)
			}
		})
		rest := c.variables.Difference(sel)
		sel.Iterate(func(v Variable) {
			apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(d1) })
		})
		rest.Iterate(func(v Variable) {
			apply(c, domains, rep, v, func(d *Domain) { d.DifferenceWith(d1) })
		})
		return Rewrite(
			NewPermutation(c.id, sel, d1),
			NewDistinctAntisum(c.id, rest, shifted),
		)
	}

	union := domains.union(c.variables)
	if union.Len() == c.variables.Len() {
		if c.antisums.Contains(union.Sum()) {
			return ResultUnsolvable
		}
		return Rewrite(NewPermutation(c.id, c.variables, union))
	}
	return ResultStuck
}
