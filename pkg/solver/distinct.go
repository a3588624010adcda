package solver

import "math/bits"

// maxDistinctVars bounds the subset enumeration in simplifyDistinct. The
// search is exponential in the number of variables, so past this size the
// kernel reports no deduction instead of walking 2^n masks.
const maxDistinctVars = 20

// simplifyDistinct is the naked-tuple kernel shared by every
// all-distinct-over-a-value-set propagator.
//
// It looks for a non-empty proper subset S of variables whose combined
// candidate set U satisfies |U| = |S|. By pigeonhole the values of U are
// then used up exactly by S: every variable of S is confined to U, and no
// variable outside S may take a value of U. The caller decides how to act
// on the hit (Permutation splits itself, ConsecutiveSet prunes in place).
//
// Subsets are enumerated as bitmasks 1..2^n-2 over the variables in
// ascending id order; the first hit wins.
func simplifyDistinct(domains Domains, variables VariableSet) (selection VariableSet, union Domain, ok bool) {
	vars := variables.Values()
	n := len(vars)
	if n > maxDistinctVars {
		return VariableSet{}, Domain{}, false
	}
	for mask := uint64(1); mask+1 < uint64(1)<<uint(n); mask++ {
		var sel VariableSet
		var u Domain
		for m := mask; m != 0; m &= m - 1 {
			v := vars[bits.TrailingZeros64(m)]
			sel.Insert(v)
			u.UnionWith(domains[v])
		}
		if u.Len() == sel.Len() {
			return sel, u, true
		}
	}
	return VariableSet{}, Domain{}, false
}
