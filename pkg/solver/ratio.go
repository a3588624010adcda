package solver

import "fmt"

// Ratio asserts that one of its two variables holds exactly ratio times the
// value of the other, in either direction. A black kropki dot is Ratio 2.
type Ratio struct {
	id        ConstraintID
	variables VariableSet
	ratio     int
}

// NewRatio builds the constraint over exactly two variables with a ratio of
// at least one.
func NewRatio(id ConstraintID, variables VariableSet, ratio int) *Ratio {
	if variables.Len() != 2 || ratio < 1 {
		panic(fmt.Sprintf("solver: Ratio over %d variables, ratio %d",
			variables.Len(), ratio))
	}
	return &Ratio{id: id, variables: variables, ratio: ratio}
}

// ID returns the reporting id.
func (c *Ratio) ID() ConstraintID { return c.id }

// Variables returns the covered variable set.
func (c *Ratio) Variables() VariableSet { return c.variables }

// CheckSolved reports whether one solved value is ratio times the other.
func (c *Ratio) CheckSolved(domains Domains) bool {
	x := domains[c.variables.Min()].Min()
	y := domains[c.variables.Max()].Min()
	return x*c.ratio == y || y*c.ratio == x
}

// ratioImage returns the values reachable from domain by multiplying or
// exactly dividing by ratio. Products past the value range are dropped.
func ratioImage(domain Domain, ratio int) Domain {
	var image Domain
	domain.Iterate(func(y int) {
		if p := y * ratio; p < 128 {
			image.Insert(p)
		}
		if y%ratio == 0 {
			image.Insert(y / ratio)
		}
	})
	return image
}

// Simplify narrows each side to the ratio image of the other. Like
// Difference, an emptied domain is handed to the generic check pass.
func (c *Ratio) Simplify(domains Domains, rep Reporter) SimplifyResult {
	v1, v2 := c.variables.Min(), c.variables.Max()
	d1, d2 := domains[v1], domains[v2]

	progress := false
	if apply(c, domains, rep, v2, func(d *Domain) { d.IntersectWith(ratioImage(d1, c.ratio)) }) {
		progress = true
	}
	if domains[v2].Empty() {
		return ResultStuck
	}
	if apply(c, domains, rep, v1, func(d *Domain) { d.IntersectWith(ratioImage(d2, c.ratio)) }) {
		progress = true
	}
	if domains[v1].Empty() {
		return ResultStuck
	}
	return progressIf(progress)
}
