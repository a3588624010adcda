package solver

import "fmt"

// DistinctSum asserts that its variables take pairwise distinct values
// summing to a fixed total. Killer cages and X/V clues map here.
type DistinctSum struct {
	id        ConstraintID
	variables VariableSet
	sum       int
}

// NewDistinctSum builds the constraint over a non-empty variable set.
func NewDistinctSum(id ConstraintID, variables VariableSet, sum int) *DistinctSum {
	if variables.Empty() || sum < 0 {
		panic(fmt.Sprintf("solver: DistinctSum over %d variables, sum %d",
			variables.Len(), sum))
	}
	return &DistinctSum{id: id, variables: variables, sum: sum}
}

// ID returns the reporting id.
func (c *DistinctSum) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *DistinctSum) Variables() VariableSet { return c.variables }

// CheckSolved reports whether the solved values are distinct and sum to the
// target.
func (c *DistinctSum) CheckSolved(domains Domains) bool {
	union := domains.union(c.variables)
	return union.Len() == c.variables.Len() && union.Sum() == c.sum
}

// Simplify resolves a lone variable outright; otherwise a naked-tuple hit
// peels the tuple off as a Permutation and leaves a smaller DistinctSum
// over the remainder. When no proper tuple exists but the variables are
// already forced pairwise distinct, the whole set either matches the target
// sum and becomes a Permutation, or cannot.
func (c *DistinctSum) Simplify(domains Domains, rep Reporter) SimplifyResult {
	if v, ok := c.variables.Value(); ok {
		target := Domain{}
		if c.sum < 128 {
			target = Single(c.sum)
		}
		apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(target) })
		if domains[v].Empty() {
			return ResultUnsolvable
		}
		return ResultSolved
	}

	if sel, d1, ok := simplifyDistinct(domains, c.variables); ok {
		s1 := d1.Sum()
		if s1 > c.sum {
			return ResultUnsolvable
		}
		rest := c.variables.Difference(sel)
		sel.Iterate(func(v Variable) {
			apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(d1) })
		})
		rest.Iterate(func(v Variable) {
			apply(c, domains, rep, v, func(d *Domain) { d.DifferenceWith(d1) })
		})
		return Rewrite(
			NewPermutation(c.id, sel, d1),
			NewDistinctSum(c.id, rest, c.sum-s1),
		)
	}

	// The kernel only inspects proper subsets; the whole set is ours to
	// check.
	union := domains.union(c.variables)
	if union.Len() == c.variables.Len() {
		if union.Sum() == c.sum {
			return Rewrite(NewPermutation(c.id, c.variables, union))
		}
		return ResultUnsolvable
	}
	return ResultStuck
}
