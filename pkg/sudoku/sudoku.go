// Package sudoku translates variant sudoku puzzles into the core engine's
// variables and constraints and back. It owns the request/response schema
// used by the HTTP server and the CLI pipe mode.
//
// The grid is 9x9 with digits 1..9. Cells are named "r:c" with r and c in
// 1..9, and cell (r, c) maps to the dense variable id (r-1)*9 + (c-1).
package sudoku

import (
	"fmt"

	"github.com/gitrdm/gridlogic/pkg/solver"
)

// Clue types accepted in a request.
const (
	ClueWhiteKropki = "white_kropki" // adjacent cells hold consecutive digits
	ClueBlackKropki = "black_kropki" // one cell holds double the other
	ClueX           = "x"            // the pair sums to 10
	ClueV           = "v"            // the pair sums to 5
	ClueThermometer = "thermometer"  // strictly increasing from the bulb
	CluePalindrome  = "palindrome"   // reads the same from both ends
	ClueRenban      = "renban"       // distinct consecutive digits, any order
	ClueWhisper     = "whisper"      // adjacent cells differ by at least 5
	ClueKillerCage  = "killer_cage"  // distinct digits with a given sum
)

// Clue is one local variant constraint over a cell sequence.
type Clue struct {
	Type  string   `json:"type"`
	Cells []string `json:"cells"`
	Sum   int      `json:"sum,omitempty"` // killer cages only
}

// GlobalClues switches the whole-grid movement rules on.
type GlobalClues struct {
	AntiKnight bool `json:"anti_knight"`
	AntiKing   bool `json:"anti_king"`
}

// Clues bundles the variant rules of a request.
type Clues struct {
	Globals GlobalClues `json:"globals"`
	Locals  []Clue      `json:"locals"`
}

// Config carries the solver settings of a request.
type Config struct {
	Breadcrumbs bool   `json:"breadcrumbs"`
	Greedy      bool   `json:"greedy"`
	MaxDepth    uint64 `json:"max_depth"`
}

// Request is the full puzzle description: per-cell candidate lists keyed by
// cell name, the variant clues, and the solver configuration.
type Request struct {
	Domains map[string][]int `json:"domains"`
	Clues   Clues            `json:"constraints"`
	Config  Config           `json:"config"`
}

// Response reports the verdict and the final candidates per cell.
type Response struct {
	Result      string           `json:"result"`
	Domains     map[string][]int `json:"domains"`
	DurationMS  int64            `json:"duration_ms"`
	Breadcrumbs []string         `json:"breadcrumbs,omitempty"`
}

// cellName renders the canonical "r:c" name, 1-based.
func cellName(r, c int) string { return fmt.Sprintf("%d:%d", r, c) }

// cellID maps 1-based grid coordinates to the dense variable id.
func cellID(r, c int) solver.Variable { return (r-1)*9 + (c - 1) }

// builder accumulates the engine inputs while translating a request.
type builder struct {
	variableNames   []string
	constraintNames []string
	domains         solver.Domains
	constraints     []solver.Constraint
	nameToID        map[string]solver.Variable
}

func newBuilder(domains map[string][]int) (*builder, error) {
	if len(domains) != 81 {
		return nil, fmt.Errorf("expected 81 cells, got %d", len(domains))
	}
	b := &builder{nameToID: make(map[string]solver.Variable, 81)}
	for r := 1; r <= 9; r++ {
		for c := 1; c <= 9; c++ {
			name := cellName(r, c)
			digits, ok := domains[name]
			if !ok {
				return nil, fmt.Errorf("missing domain for cell %s", name)
			}
			var domain solver.Domain
			for _, d := range digits {
				if d < 1 || d > 9 {
					return nil, fmt.Errorf("cell %s: digit %d out of range", name, d)
				}
				domain.Insert(d)
			}
			if domain.Empty() {
				return nil, fmt.Errorf("cell %s has no candidates", name)
			}
			b.nameToID[name] = len(b.variableNames)
			b.variableNames = append(b.variableNames, name)
			b.domains = append(b.domains, domain)
		}
	}
	b.addGridConstraints()
	return b, nil
}

func (b *builder) addConstraint(name string, build func(id solver.ConstraintID) solver.Constraint) {
	id := len(b.constraintNames)
	b.constraintNames = append(b.constraintNames, name)
	b.constraints = append(b.constraints, build(id))
}

// addGridConstraints installs the 27 classic sudoku permutations.
func (b *builder) addGridConstraints() {
	digits := solver.Range(1, 9)
	for r := 1; r <= 9; r++ {
		var row solver.VariableSet
		for c := 1; c <= 9; c++ {
			row.Insert(cellID(r, c))
		}
		b.addConstraint(fmt.Sprintf("row(%d)", r), func(id solver.ConstraintID) solver.Constraint {
			return solver.NewPermutation(id, row, digits)
		})
	}
	for c := 1; c <= 9; c++ {
		var col solver.VariableSet
		for r := 1; r <= 9; r++ {
			col.Insert(cellID(r, c))
		}
		b.addConstraint(fmt.Sprintf("col(%d)", c), func(id solver.ConstraintID) solver.Constraint {
			return solver.NewPermutation(id, col, digits)
		})
	}
	for bx := 0; bx < 3; bx++ {
		for by := 0; by < 3; by++ {
			var box solver.VariableSet
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					box.Insert(cellID(bx*3+i+1, by*3+j+1))
				}
			}
			b.addConstraint(fmt.Sprintf("box(%d)", bx*3+by+1), func(id solver.ConstraintID) solver.Constraint {
				return solver.NewPermutation(id, box, digits)
			})
		}
	}
}

// cells resolves a clue's cell names into ordered variable ids.
func (b *builder) cells(names []string) ([]solver.Variable, error) {
	vars := make([]solver.Variable, 0, len(names))
	for _, name := range names {
		id, ok := b.nameToID[name]
		if !ok {
			return nil, fmt.Errorf("unknown cell %s", name)
		}
		vars = append(vars, id)
	}
	return vars, nil
}

func toSet(vars []solver.Variable) solver.VariableSet {
	var set solver.VariableSet
	for _, v := range vars {
		set.Insert(v)
	}
	return set
}

// addClue translates one local clue into core constraints.
func (b *builder) addClue(clue Clue) error {
	vars, err := b.cells(clue.Cells)
	if err != nil {
		return err
	}
	if len(vars) < 2 {
		return fmt.Errorf("%s clue needs at least two cells", clue.Type)
	}
	set := toSet(vars)
	if set.Len() != len(vars) {
		return fmt.Errorf("%s clue repeats a cell", clue.Type)
	}

	switch clue.Type {
	case ClueWhiteKropki:
		b.addConstraint("white kropki", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewConsecutiveSet(id, set)
		})
	case ClueBlackKropki:
		b.addConstraint("black kropki", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewRatio(id, set, 2)
		})
	case ClueX:
		b.addConstraint("X", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewDistinctSum(id, set, 10)
		})
	case ClueV:
		b.addConstraint("V", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewDistinctSum(id, set, 5)
		})
	case ClueThermometer:
		b.addConstraint("thermometer", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewIncreasing(id, vars)
		})
	case CluePalindrome:
		for i := 0; i < len(vars)/2; i++ {
			pair := toSet([]solver.Variable{vars[i], vars[len(vars)-1-i]})
			b.addConstraint("palindrome", func(id solver.ConstraintID) solver.Constraint {
				return solver.NewEquals(id, pair)
			})
		}
	case ClueRenban:
		b.addConstraint("renban", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewConsecutiveSet(id, set)
		})
	case ClueWhisper:
		b.addConstraint("whisper", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewDifference(id, vars, 5)
		})
	case ClueKillerCage:
		if clue.Sum < 1 {
			return fmt.Errorf("killer cage needs a positive sum")
		}
		b.addConstraint("killer cage", func(id solver.ConstraintID) solver.Constraint {
			return solver.NewDistinctSum(id, set, clue.Sum)
		})
	default:
		return fmt.Errorf("unknown clue type %q", clue.Type)
	}
	return nil
}

// knightMoves and kingMoves are the attack offsets of the global rules.
var (
	knightMoves = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingMoves   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// addMoveClues installs one NotEquals per attacking pair. Each unordered
// pair appears once, whichever direction reaches it first.
func (b *builder) addMoveClues(name string, moves [][2]int) {
	seen := make(map[[2]solver.Variable]bool)
	for r1 := 1; r1 <= 9; r1++ {
		for c1 := 1; c1 <= 9; c1++ {
			for _, m := range moves {
				r2, c2 := r1+m[0], c1+m[1]
				if r2 < 1 || r2 > 9 || c2 < 1 || c2 > 9 {
					continue
				}
				a, z := cellID(r1, c1), cellID(r2, c2)
				if a > z {
					a, z = z, a
				}
				if seen[[2]solver.Variable{a, z}] {
					continue
				}
				seen[[2]solver.Variable{a, z}] = true
				pair := toSet([]solver.Variable{a, z})
				b.addConstraint(name, func(id solver.ConstraintID) solver.Constraint {
					return solver.NewNotEquals(id, pair)
				})
			}
		}
	}
}

// build translates the whole request.
func build(req Request) (*builder, error) {
	b, err := newBuilder(req.Domains)
	if err != nil {
		return nil, err
	}
	for _, clue := range req.Clues.Locals {
		if err := b.addClue(clue); err != nil {
			return nil, err
		}
	}
	if req.Clues.Globals.AntiKnight {
		b.addMoveClues("anti-knight", knightMoves)
	}
	if req.Clues.Globals.AntiKing {
		b.addMoveClues("anti-king", kingMoves)
	}
	return b, nil
}
