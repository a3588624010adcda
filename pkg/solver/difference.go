package solver

import "fmt"

// Difference asserts that adjacent variables in its ordered sequence differ
// by at least a threshold: |value(v_i) - value(v_i+1)| >= threshold.
// A german whisper line is Difference with threshold 5.
type Difference struct {
	id        ConstraintID
	order     []Variable
	variables VariableSet
	threshold int
}

// NewDifference builds the constraint over an ordered sequence of at least
// two variables and a threshold of at least one.
func NewDifference(id ConstraintID, order []Variable, threshold int) *Difference {
	if len(order) < 2 || threshold < 1 {
		panic(fmt.Sprintf("solver: Difference over %d variables, threshold %d",
			len(order), threshold))
	}
	var set VariableSet
	for _, v := range order {
		set.Insert(v)
	}
	return &Difference{
		id:        id,
		order:     append([]Variable(nil), order...),
		variables: set,
		threshold: threshold,
	}
}

// ID returns the reporting id.
func (c *Difference) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *Difference) Variables() VariableSet { return c.variables }

// CheckSolved reports whether every adjacent pair is far enough apart.
func (c *Difference) CheckSolved(domains Domains) bool {
	last := -1
	for _, v := range c.order {
		x := domains[v].Min()
		if last >= 0 {
			diff := x - last
			if diff < 0 {
				diff = -diff
			}
			if diff < c.threshold {
				return false
			}
		}
		last = x
	}
	return true
}

// differenceImage returns the values at least threshold away from some
// value of domain: the union over y of the complement of the too-close
// band [y-(t-1), y+(t-1)], clamped to the value range.
func differenceImage(domain Domain, threshold int) Domain {
	var image Domain
	domain.Iterate(func(y int) {
		lo := y - (threshold - 1)
		if lo < 0 {
			lo = 0
		}
		hi := y + (threshold - 1)
		if hi > 127 {
			hi = 127
		}
		image.UnionWith(Range(lo, hi).Complement())
	})
	return image
}

// Simplify narrows each member of an adjacent pair to the image of the
// other. An emptied domain is left for the generic check pass to convert
// into the Unsolvable verdict on the next visit.
func (c *Difference) Simplify(domains Domains, rep Reporter) SimplifyResult {
	progress := false
	for i := 0; i+1 < len(c.order); i++ {
		a, b := c.order[i], c.order[i+1]
		da, db := domains[a], domains[b]

		if apply(c, domains, rep, b, func(d *Domain) { d.IntersectWith(differenceImage(da, c.threshold)) }) {
			progress = true
		}
		if domains[b].Empty() {
			return ResultStuck
		}

		if apply(c, domains, rep, a, func(d *Domain) { d.IntersectWith(differenceImage(db, c.threshold)) }) {
			progress = true
		}
		if domains[a].Empty() {
			return ResultStuck
		}
	}
	return progressIf(progress)
}
