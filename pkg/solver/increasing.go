package solver

import "fmt"

// Increasing asserts that its variables, read in construction order, take
// strictly increasing values. Thermometer clues are the canonical source.
//
// Unlike the set-shaped constraints this one is ordered, so it keeps the
// original slice alongside the derived variable set.
type Increasing struct {
	id        ConstraintID
	order     []Variable
	variables VariableSet
}

// NewIncreasing builds the constraint over an ordered sequence of at least
// two variables.
func NewIncreasing(id ConstraintID, order []Variable) *Increasing {
	if len(order) < 2 {
		panic(fmt.Sprintf("solver: Increasing over %d variables", len(order)))
	}
	var set VariableSet
	for _, v := range order {
		set.Insert(v)
	}
	return &Increasing{id: id, order: append([]Variable(nil), order...), variables: set}
}

// ID returns the reporting id.
func (c *Increasing) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *Increasing) Variables() VariableSet { return c.variables }

// CheckSolved reports whether the solved values strictly increase in order.
func (c *Increasing) CheckSolved(domains Domains) bool {
	last := -1
	for _, v := range c.order {
		x := domains[v].Min()
		if x <= last {
			return false
		}
		last = x
	}
	return true
}

// Simplify runs two bound sweeps. Forward: each variable must exceed the
// minimum of its predecessor, so values at or below that minimum go.
// Backward: each variable must stay below the maximum of its successor.
// An emptied domain is a contradiction and is reported directly.
func (c *Increasing) Simplify(domains Domains, rep Reporter) SimplifyResult {
	progress := false

	prevMin := -1
	for _, v := range c.order {
		if prevMin >= 0 {
			if apply(c, domains, rep, v, func(d *Domain) { d.DifferenceWith(Range(0, prevMin)) }) {
				progress = true
			}
		}
		if domains[v].Empty() {
			return ResultUnsolvable
		}
		prevMin = domains[v].Min()
	}

	nextMax := -1
	for i := len(c.order) - 1; i >= 0; i-- {
		v := c.order[i]
		if nextMax == 0 {
			// the predecessor would need a value below 0
			return ResultUnsolvable
		}
		if nextMax > 0 {
			if apply(c, domains, rep, v, func(d *Domain) { d.IntersectWith(Range(0, nextMax-1)) }) {
				progress = true
			}
		}
		if domains[v].Empty() {
			return ResultUnsolvable
		}
		nextMax = domains[v].Max()
	}

	return progressIf(progress)
}
