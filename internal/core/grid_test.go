package core

import (
	"errors"
	"testing"
)

func TestGridBounds(t *testing.T) {
	g := NewGrid[int](3, 2)

	cases := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{2, 1, true},
		{-1, 0, false},
		{0, -1, false},
		{3, 0, false},
		{0, 2, false},
	}
	for _, tc := range cases {
		if got := g.In(tc.x, tc.y); got != tc.ok {
			t.Fatalf("In(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.ok)
		}
		err := g.Set(tc.x, tc.y, 7)
		if tc.ok && err != nil {
			t.Fatalf("Set(%d,%d) unexpected error: %v", tc.x, tc.y, err)
		}
		if !tc.ok && !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) error = %v, want ErrOutOfBounds", tc.x, tc.y, err)
		}
		v, err := g.Get(tc.x, tc.y)
		if tc.ok && (err != nil || v != 7) {
			t.Fatalf("Get(%d,%d) = %d, %v", tc.x, tc.y, v, err)
		}
		if !tc.ok && !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) error = %v, want ErrOutOfBounds", tc.x, tc.y, err)
		}
	}
}

func TestGridCopyFromIsIndependent(t *testing.T) {
	g := NewGrid[int](2, 2)
	g.Put(1, 1, 5)

	c := NewGrid[int](2, 2)
	c.CopyFrom(g)
	c.Put(1, 1, 9)
	if g.At(1, 1) != 5 {
		t.Fatalf("copy write leaked into source: %d", g.At(1, 1))
	}

	g.CopyFrom(c)
	if g.At(1, 1) != 9 {
		t.Fatalf("CopyFrom did not copy, got %d", g.At(1, 1))
	}

	g.Reset(0)
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not reset: %d", i, v)
		}
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid[bool](0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}
