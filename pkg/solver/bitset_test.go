package solver

import (
	"reflect"
	"testing"
)

func TestBitSetBasics(t *testing.T) {
	var b BitSet
	if !b.Empty() || b.Len() != 0 {
		t.Fatalf("zero BitSet should be empty")
	}

	b.Insert(0)
	b.Insert(63)
	b.Insert(64)
	b.Insert(127)
	if b.Len() != 4 {
		t.Errorf("expected 4 values, got %d", b.Len())
	}
	for _, v := range []int{0, 63, 64, 127} {
		if !b.Contains(v) {
			t.Errorf("expected %d to be present", v)
		}
	}
	if b.Contains(-1) || b.Contains(128) {
		t.Errorf("out-of-range values must not be contained")
	}
	if b.Min() != 0 || b.Max() != 127 {
		t.Errorf("expected min 0 max 127, got %d %d", b.Min(), b.Max())
	}

	b.Remove(0)
	b.Remove(127)
	if b.Min() != 63 || b.Max() != 64 {
		t.Errorf("expected min 63 max 64, got %d %d", b.Min(), b.Max())
	}
}

func TestBitSetRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		len      int
		contains []int
		excludes []int
	}{
		{"single word", 1, 9, 9, []int{1, 5, 9}, []int{0, 10}},
		{"word boundary", 60, 70, 11, []int{60, 63, 64, 70}, []int{59, 71}},
		{"full width", 0, 127, 128, []int{0, 127}, nil},
		{"point", 5, 5, 1, []int{5}, []int{4, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Range(tt.min, tt.max)
			if r.Len() != tt.len {
				t.Errorf("expected len %d, got %d", tt.len, r.Len())
			}
			for _, v := range tt.contains {
				if !r.Contains(v) {
					t.Errorf("expected %d in range", v)
				}
			}
			for _, v := range tt.excludes {
				if r.Contains(v) {
					t.Errorf("expected %d outside range", v)
				}
			}
		})
	}
}

func TestBitSetRangePanics(t *testing.T) {
	for _, args := range [][2]int{{5, 4}, {0, 128}, {-1, 3}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Range(%d, %d) should panic", args[0], args[1])
				}
			}()
			Range(args[0], args[1])
		}()
	}
}

func TestBitSetMinMaxEmptyPanics(t *testing.T) {
	var b BitSet
	for name, f := range map[string]func(){
		"Min": func() { b.Min() },
		"Max": func() { b.Max() },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s of empty set should panic", name)
				}
			}()
			f()
		}()
	}
}

func TestBitSetAlgebra(t *testing.T) {
	a := Range(1, 5)
	b := Range(4, 9)

	if got := a.Union(b); got != Range(1, 9) {
		t.Errorf("union: got %v", got)
	}
	if got := a.Intersection(b); got != Range(4, 5) {
		t.Errorf("intersection: got %v", got)
	}
	if got := a.Difference(b); got != Range(1, 3) {
		t.Errorf("difference: got %v", got)
	}
	if got := a.Complement().Complement(); got != a {
		t.Errorf("double complement: got %v", got)
	}
	if got := All().Difference(a); got != a.Complement() {
		t.Errorf("complement via difference: got %v", got)
	}

	c := a
	c.UnionWith(b)
	c.IntersectWith(Range(2, 8))
	c.DifferenceWith(Single(5))
	want := Range(2, 8)
	want.Remove(5)
	if c != want {
		t.Errorf("in-place ops: got %v, want %v", c, want)
	}
}

func TestBitSetFromBits(t *testing.T) {
	b := FromBits(0b1011, 1)
	if !reflect.DeepEqual(b.Values(), []int{0, 1, 3, 64}) {
		t.Errorf("unexpected values %v", b.Values())
	}
	if b != Single(0).Union(Single(1)).Union(Single(3)).Union(Single(64)) {
		t.Errorf("FromBits disagrees with Insert")
	}
}

func TestBitSetIteration(t *testing.T) {
	b := FromBits(0, 0)
	for _, v := range []int{3, 7, 64, 100} {
		b.Insert(v)
	}

	var up []int
	b.Iterate(func(v int) { up = append(up, v) })
	if !reflect.DeepEqual(up, []int{3, 7, 64, 100}) {
		t.Errorf("ascending iteration: got %v", up)
	}

	var down []int
	b.IterateReverse(func(v int) { down = append(down, v) })
	if !reflect.DeepEqual(down, []int{100, 64, 7, 3}) {
		t.Errorf("descending iteration: got %v", down)
	}
}

func TestBitSetValueAndSum(t *testing.T) {
	if _, ok := NewBitSet().Value(); ok {
		t.Errorf("empty set has no value")
	}
	if v, ok := Single(42).Value(); !ok || v != 42 {
		t.Errorf("singleton value: got %d, %v", v, ok)
	}
	if _, ok := Range(1, 2).Value(); ok {
		t.Errorf("two-element set has no value")
	}
	if got := Range(1, 9).Sum(); got != 45 {
		t.Errorf("sum: got %d", got)
	}
}

func TestBitSetString(t *testing.T) {
	tests := []struct {
		set  BitSet
		want string
	}{
		{NewBitSet(), "<empty>"},
		{Single(7), "7"},
		{Range(1, 3), "1,2,3"},
	}
	for _, tt := range tests {
		if got := tt.set.String(); got != tt.want {
			t.Errorf("String(%v): got %q, want %q", tt.set, got, tt.want)
		}
	}
}
