package solver

import "testing"

func TestEqualsIntersects(t *testing.T) {
	domains := Domains{varSet(1, 2, 3), varSet(2, 3, 4), varSet(3, 4, 5)}
	constraints := []Constraint{NewEquals(0, varSet(0, 1, 2))}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Solved {
		t.Fatalf("expected solved, got %v", result)
	}
	for i := range domains {
		if domains[i] != Single(3) {
			t.Errorf("cell %d: got %v, want {3}", i, domains[i])
		}
	}
}

func TestEqualsDisjointUnsolvable(t *testing.T) {
	domains := Domains{varSet(1, 2), varSet(3, 4)}
	constraints := []Constraint{NewEquals(0, varSet(0, 1))}

	if result := simplify(domains, &constraints, NopReporter{}); result != Unsolvable {
		t.Fatalf("expected unsolvable, got %v", result)
	}
}

func TestNotEquals(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 Domain
		want   SimplifyResult
	}{
		{"both solved equal", Single(4), Single(4), ResultUnsolvable},
		{"both solved distinct", Single(4), Single(5), ResultSolved},
		{"no singleton", Range(1, 3), Range(1, 3), ResultStuck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domains := Domains{tt.d1, tt.d2}
			c := NewNotEquals(0, varSet(0, 1))
			if got := c.Simplify(domains, NopReporter{}); !sameResult(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNotEqualsRemovesSolvedValue(t *testing.T) {
	domains := Domains{Single(4), Range(1, 9)}
	c := NewNotEquals(0, varSet(0, 1))

	if got := c.Simplify(domains, NopReporter{}); !sameResult(got, ResultProgress) {
		t.Fatalf("expected progress, got %+v", got)
	}
	want := Range(1, 9)
	want.Remove(4)
	if domains[1] != want {
		t.Errorf("got %v, want %v", domains[1], want)
	}
}

func TestDifferenceWhisper(t *testing.T) {
	// Adjacent cells at least 5 apart: 5 itself can never appear, and a
	// solved 1 forces its neighbour to {6..9}.
	domains := Domains{Single(1), Range(1, 9)}
	constraints := []Constraint{NewDifference(0, []Variable{0, 1}, 5)}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Stuck {
		t.Fatalf("expected stuck, got %v", result)
	}
	if domains[1] != Range(6, 9) {
		t.Errorf("expected {6..9}, got %v", domains[1])
	}
}

func TestDifferenceEmptyDomainStuckThenUnsolvable(t *testing.T) {
	// 5 has no partner at distance 5 within {1..9} once the neighbour is
	// pinned: the propagator reports stuck and the generic check turns
	// the empty domain into the final verdict.
	domains := Domains{Single(5), varSet(2, 7)}
	c := NewDifference(0, []Variable{0, 1}, 5)

	if got := c.Simplify(domains, NopReporter{}); !sameResult(got, ResultStuck) {
		t.Fatalf("expected stuck from the propagator, got %+v", got)
	}
	if !domains[1].Empty() {
		t.Fatalf("expected the neighbour to be emptied, got %v", domains[1])
	}

	domains = Domains{Single(5), varSet(2, 7)}
	constraints := []Constraint{NewDifference(0, []Variable{0, 1}, 5)}
	if result := simplify(domains, &constraints, NopReporter{}); result != Unsolvable {
		t.Errorf("expected unsolvable from the simplifier, got %v", result)
	}
}

func TestDifferenceCheckSolved(t *testing.T) {
	c := NewDifference(0, []Variable{0, 1, 2}, 4)
	if !c.CheckSolved(Domains{Single(1), Single(9), Single(2)}) {
		t.Errorf("|1-9| and |9-2| both clear the threshold")
	}
	if c.CheckSolved(Domains{Single(1), Single(4), Single(9)}) {
		t.Errorf("|1-4| is under the threshold")
	}
}

func TestRatioKropkiBlack(t *testing.T) {
	domains := Domains{varSet(3, 4), Range(1, 9)}
	constraints := []Constraint{NewRatio(0, varSet(0, 1), 2)}

	result := simplify(domains, &constraints, NopReporter{})
	if result != Stuck {
		t.Fatalf("expected stuck, got %v", result)
	}
	// images: 3 -> 6, 4 -> {2, 8}
	if domains[1] != varSet(2, 6, 8) {
		t.Errorf("expected {2,6,8}, got %v", domains[1])
	}
}

func TestRatioCheckSolved(t *testing.T) {
	c := NewRatio(0, varSet(0, 1), 3)
	if !c.CheckSolved(Domains{Single(2), Single(6)}) {
		t.Errorf("2 and 6 satisfy ratio 3")
	}
	if !c.CheckSolved(Domains{Single(6), Single(2)}) {
		t.Errorf("the ratio applies in either direction")
	}
	if c.CheckSolved(Domains{Single(2), Single(7)}) {
		t.Errorf("2 and 7 do not satisfy ratio 3")
	}
}

func TestRatioOverflowDropsProducts(t *testing.T) {
	domains := Domains{Single(100), Range(0, 127)}
	c := NewRatio(0, varSet(0, 1), 2)

	if got := c.Simplify(domains, NopReporter{}); !sameResult(got, ResultProgress) {
		t.Fatalf("expected progress, got %+v", got)
	}
	// 200 is out of range; only the quotient survives.
	if domains[1] != Single(50) {
		t.Errorf("expected {50}, got %v", domains[1])
	}
}
