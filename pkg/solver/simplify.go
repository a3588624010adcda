package solver

// SolveResult is the engine verdict: the puzzle is fully determined, the
// engine ran out of deductions, or no assignment exists.
type SolveResult int

const (
	// Solved: every constraint was discharged; all domains are singletons.
	Solved SolveResult = iota
	// Stuck: a fixed point was reached without solving or refuting.
	Stuck
	// Unsolvable: no assignment of the current candidates satisfies the
	// constraints.
	Unsolvable
)

// String returns the lowercase verdict name.
func (r SolveResult) String() string {
	switch r {
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	case Unsolvable:
		return "unsolvable"
	default:
		return "unknown"
	}
}

// simplify drives all active constraints to a fixed point. Each pass visits
// the constraints in order: solved constraints are swap-removed, rewrites
// are spliced in at the tail of the pass, and any Unsolvable verdict
// terminates the whole run. The loop ends when the list empties (Solved) or
// a pass makes no progress (Stuck).
//
// Termination: every pass either removes a constraint, strictly shrinks
// some domain, or is the last. Both quantities are bounded and monotone.
func simplify(domains Domains, constraints *[]Constraint, rep Reporter) SolveResult {
	cs := *constraints
	defer func() { *constraints = cs }()

	for {
		progress := false
		for i := 0; i < len(cs); {
			r := CheckAndSimplify(cs[i], domains, rep)
			switch r.kind {
			case simplifyUnsolvable:
				return Unsolvable
			case simplifySolved:
				// order is not significant within a pass
				cs[i] = cs[len(cs)-1]
				cs = cs[:len(cs)-1]
			case simplifyStuck:
				i++
			case simplifyProgress:
				progress = true
				i++
			case simplifyRewrite:
				cs[i] = cs[len(cs)-1]
				cs = cs[:len(cs)-1]
				cs = append(cs, r.rewrite...)
				progress = true
			}
		}
		if len(cs) == 0 {
			return Solved
		}
		if !progress {
			// Some propagators (Difference, Ratio) report Stuck after
			// emptying a domain and rely on a later check to surface
			// the contradiction. There is no later pass here, so run
			// the empty-domain check before the host can observe the
			// state.
			for _, c := range cs {
				empty := false
				c.Variables().Iterate(func(v Variable) {
					if domains[v].Empty() {
						empty = true
					}
				})
				if empty {
					return Unsolvable
				}
			}
			return Stuck
		}
	}
}
