package core

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestNewUniformGridValidation(t *testing.T) {
	if _, err := NewUniformGrid(0, 5, 0.5); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("rows=0 returned %v, want ErrInvalidDimension", err)
	}
	if _, err := NewUniformGrid(5, -1, 0.5); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("cols=-1 returned %v, want ErrInvalidDimension", err)
	}
	if _, err := NewUniformGrid(2, 2, 1.5); !errors.Is(err, ErrInvalidMoisture) {
		t.Fatalf("moisture=1.5 returned %v, want ErrInvalidMoisture", err)
	}
	if _, err := NewUniformGrid(2, 2, -0.1); !errors.Is(err, ErrInvalidMoisture) {
		t.Fatalf("moisture=-0.1 returned %v, want ErrInvalidMoisture", err)
	}

	g, err := NewUniformGrid(3, 4, 0.25)
	if err != nil {
		t.Fatalf("valid grid returned error: %v", err)
	}
	if g.Rows != 3 || g.Cols != 4 {
		t.Fatalf("dimensions %dx%d, want 3x4", g.Rows, g.Cols)
	}
	for i, cell := range g.Cells() {
		if cell.Moisture != 0.25 {
			t.Fatalf("cell %d moisture %v, want 0.25", i, cell.Moisture)
		}
		if cell.TapActive || cell.OverrideActive {
			t.Fatalf("cell %d flags set at creation", i)
		}
	}
}

func TestNewRandomGridDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	a, err := NewRandomGrid(4, 4, rng)
	if err != nil {
		t.Fatal(err)
	}
	rng = rand.New(rand.NewPCG(42, 0))
	b, err := NewRandomGrid(4, 4, rng)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Cells() {
		m := a.Cells()[i].Moisture
		if m < 0 || m >= 1 {
			t.Fatalf("cell %d moisture %v outside [0,1)", i, m)
		}
		if m != b.Cells()[i].Moisture {
			t.Fatalf("cell %d differs between identically seeded grids", i)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g, err := NewUniformGrid(2, 3, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}}
	for _, c := range cases {
		if _, err := g.At(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%d,%d) returned %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := g.SetMoisture(c[0], c[1], 0.5); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("SetMoisture(%d,%d) returned %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if err := g.SetMoisture(1, 2, 7); err != nil {
		t.Fatal(err)
	}
	cell, err := g.At(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if cell.Moisture != 1 {
		t.Fatalf("SetMoisture did not clamp: got %v", cell.Moisture)
	}
}

func TestClampMoisture(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{-0.5, 0}, {0, 0}, {0.33, 0.33}, {1, 1}, {1.2, 1},
	}
	for _, c := range cases {
		if got := ClampMoisture(c.in); got != c.want {
			t.Fatalf("ClampMoisture(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
