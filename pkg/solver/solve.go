package solver

import (
	"fmt"
	"sort"
)

// Config drives the branching solver.
type Config struct {
	// Greedy adopts the first full solution a guess uncovers. When false
	// the solver only commits reductions proven by exhausting a
	// variable's candidates, which converges on the intersection of all
	// solutions.
	Greedy bool

	// MaxDepth bounds the guess recursion. Depth starts at 1, so
	// MaxDepth 0 disables guessing entirely and the solver returns the
	// plain simplifier verdict.
	MaxDepth uint64
}

// Puzzle is one solver state: a domains table plus the active constraints.
// The zero value is unusable; populate both fields before solving.
type Puzzle struct {
	Domains     Domains
	Constraints []Constraint
}

// NewPuzzle assembles a solver state from a host-prepared domains table and
// constraint list. Both are copied; the caller keeps its inputs.
func NewPuzzle(domains Domains, constraints []Constraint) *Puzzle {
	return &Puzzle{
		Domains:     domains.Clone(),
		Constraints: append([]Constraint(nil), constraints...),
	}
}

// Clone returns an independent copy of the state. Constraints are immutable
// values, so only the list itself is copied.
func (p *Puzzle) Clone() *Puzzle {
	return &Puzzle{
		Domains:     p.Domains.Clone(),
		Constraints: append([]Constraint(nil), p.Constraints...),
	}
}

// Solve is the package entry point: it runs the engine over the given state
// and returns the verdict together with the final candidate table.
func Solve(domains Domains, constraints []Constraint, cfg Config, rep Reporter) (SolveResult, Domains) {
	p := NewPuzzle(domains, constraints)
	result := p.Solve(cfg, rep)
	return result, p.Domains
}

// Solve runs the simplifier and, when it saturates, branches.
func (p *Puzzle) Solve(cfg Config, rep Reporter) SolveResult {
	return p.solve(cfg, rep, 1)
}

func (p *Puzzle) solve(cfg Config, rep Reporter, depth uint64) SolveResult {
	result := simplify(p.Domains, &p.Constraints, rep)
	if result != Stuck {
		return result
	}
	if depth > cfg.MaxDepth {
		return Stuck
	}

	for _, v := range p.branchOrder() {
		domain := p.Domains[v]
		inferred := domain

		stop := false
		domain.Iterate(func(x int) {
			if stop {
				return
			}
			trial := p.Clone()
			trial.Domains[v] = Single(x)
			if rep.Enabled() {
				rep.Emit(fmt.Sprintf("guess %s = %d", rep.VariableName(v), x))
			}
			switch trial.solve(cfg, rep, depth+1) {
			case Unsolvable:
				inferred.Remove(x)
			case Solved:
				if cfg.Greedy {
					*p = *trial
					stop = true
				}
			}
		})
		if stop {
			return Solved
		}

		if inferred != domain {
			p.Domains[v] = inferred
			if rep.Enabled() {
				rep.Emit(fmt.Sprintf("%s is %s by guessing", rep.VariableName(v), inferred))
			}
			return p.solve(cfg, rep, depth)
		}
	}
	return Stuck
}

// branchOrder lists the unsolved variables, most constrained first:
// smallest domain, then highest degree (number of active constraints
// mentioning the variable). The degree tiebreak is a heuristic, not part of
// the correctness contract.
func (p *Puzzle) branchOrder() []Variable {
	var candidates []Variable
	for v := range p.Domains {
		if p.Domains[v].Len() > 1 {
			candidates = append(candidates, v)
		}
	}
	degree := make(map[Variable]int, len(candidates))
	for _, c := range p.Constraints {
		c.Variables().Iterate(func(v Variable) { degree[v]++ })
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		la, lb := p.Domains[a].Len(), p.Domains[b].Len()
		if la != lb {
			return la < lb
		}
		return degree[a] > degree[b]
	})
	return candidates
}
