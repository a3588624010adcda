package solver

import "fmt"

// ConsecutiveSet asserts that its variables take pairwise distinct values
// forming a run of consecutive integers, in any order. A renban line is
// exactly this; a white kropki dot is the two-variable case.
type ConsecutiveSet struct {
	id        ConstraintID
	variables VariableSet
}

// NewConsecutiveSet builds the constraint over at least two variables.
func NewConsecutiveSet(id ConstraintID, variables VariableSet) *ConsecutiveSet {
	if variables.Len() < 2 {
		panic(fmt.Sprintf("solver: ConsecutiveSet over %d variables", variables.Len()))
	}
	return &ConsecutiveSet{id: id, variables: variables}
}

// ID returns the reporting id.
func (c *ConsecutiveSet) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *ConsecutiveSet) Variables() VariableSet { return c.variables }

// CheckSolved reports whether the solved values are distinct and form an
// unbroken run.
func (c *ConsecutiveSet) CheckSolved(domains Domains) bool {
	union := domains.union(c.variables)
	n := c.variables.Len()
	return union.Len() == n && union.Max()-union.Min()+1 == n
}

// Simplify applies the naked-tuple deduction in place. When that changes a
// domain it reports progress straight away; otherwise it narrows every
// variable to the window the solved values leave open and bars the solved
// values from the unsolved variables.
//
// A tuple hit does not split the constraint the way Permutation does: the
// consecutive property relates the whole group, so the set must stay
// together. Instead the tuple variables are confined to the tuple values
// and those values are barred from the rest.
//
// For the window: with lo and hi the extreme solved values, the final run
// has length |V| and must contain [lo, hi], so it cannot extend more than
// |V| - (hi - lo + 1) past either end.
func (c *ConsecutiveSet) Simplify(domains Domains, rep Reporter) SimplifyResult {
	if sel, union, ok := simplifyDistinct(domains, c.variables); ok {
		progress := false
		sel.Iterate(func(v Variable) {
			if apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(union) }) {
				progress = true
			}
		})
		c.variables.Difference(sel).Iterate(func(v Variable) {
			if apply(c, domains, rep, v, func(d *Domain) { d.DifferenceWith(union) }) {
				progress = true
			}
		})
		if progress {
			return ResultProgress
		}
	}

	lo, hi := -1, -1
	var taken Domain
	c.variables.Iterate(func(v Variable) {
		if x, ok := domains[v].Value(); ok {
			taken.Insert(x)
			if lo < 0 || x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}
	})
	if lo < 0 {
		return ResultStuck
	}

	n := c.variables.Len()
	span := hi - lo + 1
	if span > n {
		return ResultUnsolvable
	}
	excess := n - span
	winLo := lo - excess
	if winLo < 0 {
		winLo = 0
	}
	winHi := hi + excess
	if winHi > 127 {
		winHi = 127
	}
	cover := Range(winLo, winHi)

	progress := false
	c.variables.Iterate(func(v Variable) {
		keep := cover
		if domains[v].Len() != 1 {
			keep = cover.Difference(taken)
		}
		if apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(keep) }) {
			progress = true
		}
	})
	return progressIf(progress)
}
