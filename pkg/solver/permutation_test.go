package solver

import "testing"

func TestPermutationShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("mismatched shape should panic")
		}
	}()
	NewPermutation(0, varSet(0, 1), Range(1, 3))
}

func TestPermutationRowElimination(t *testing.T) {
	// r1..r8 solved with 1..8, r9 wide open: the row forces r9 = 9.
	domains := make(Domains, 9)
	var row VariableSet
	for i := 0; i < 9; i++ {
		row.Insert(i)
		if i < 8 {
			domains[i] = Single(i + 1)
		} else {
			domains[i] = Range(1, 9)
		}
	}
	constraints := []Constraint{NewPermutation(0, row, Range(1, 9))}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Solved {
		t.Fatalf("expected solved, got %v", result)
	}
	if domains[8] != Single(9) {
		t.Errorf("expected r9 = {9}, got %v", domains[8])
	}
}

func TestPermutationNakedPair(t *testing.T) {
	domains := uniform(9, Range(1, 9))
	domains[0] = varSet(1, 2)
	domains[1] = varSet(1, 2)
	var row VariableSet
	for i := 0; i < 9; i++ {
		row.Insert(i)
	}
	constraints := []Constraint{NewPermutation(0, row, Range(1, 9))}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Stuck {
		t.Fatalf("expected stuck after the pair is extracted, got %v", result)
	}
	for i := 2; i < 9; i++ {
		if domains[i].Contains(1) || domains[i].Contains(2) {
			t.Errorf("cell %d still contains a pair value: %v", i, domains[i])
		}
	}
	if domains[0] != varSet(1, 2) || domains[1] != varSet(1, 2) {
		t.Errorf("pair cells must keep their two candidates")
	}
}

func TestPermutationSingleCell(t *testing.T) {
	domains := Domains{Range(1, 9)}
	constraints := []Constraint{NewPermutation(0, varSet(0), Single(7))}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Solved {
		t.Fatalf("expected solved, got %v", result)
	}
	if domains[0] != Single(7) {
		t.Errorf("expected {7}, got %v", domains[0])
	}
}

func TestPermutationCheckSolved(t *testing.T) {
	c := NewPermutation(0, varSet(0, 1, 2), Range(1, 3))
	if !c.CheckSolved(Domains{Single(2), Single(3), Single(1)}) {
		t.Errorf("a full cover must check as solved")
	}
	if c.CheckSolved(Domains{Single(2), Single(2), Single(1)}) {
		t.Errorf("a repeated value must not check as solved")
	}
}

func TestPermutationOutOfDomainUnsolvable(t *testing.T) {
	// The cell's only candidates lie outside the row values.
	domains := Domains{varSet(8, 9), Range(1, 2)}
	constraints := []Constraint{NewPermutation(0, varSet(0, 1), Range(1, 2))}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Unsolvable {
		t.Fatalf("expected unsolvable, got %v", result)
	}
}
