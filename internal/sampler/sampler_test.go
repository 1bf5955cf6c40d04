package sampler

import (
	"math"
	"testing"
)

func TestSampleSinglePoint(t *testing.T) {
	xs, ys, err := Sample("sin(x)", 0, 0, 1)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if len(xs) != 1 || len(ys) != 1 {
		t.Fatalf("len(xs), len(ys) = %d, %d, want 1, 1", len(xs), len(ys))
	}
	if xs[0] != 0 {
		t.Errorf("xs[0] = %g, want 0", xs[0])
	}
	if ys[0] != 0.0 {
		t.Errorf("ys[0] = %g, want 0.0", ys[0])
	}
}

func TestSampleEndpointsInclusive(t *testing.T) {
	xs, _, err := Sample("x", -10, 10, 5)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if xs[0] != -10 {
		t.Errorf("xs[0] = %g, want -10", xs[0])
	}
	if xs[len(xs)-1] != 10 {
		t.Errorf("xs[last] = %g, want 10", xs[len(xs)-1])
	}
}

func TestSampleEvenSpacing(t *testing.T) {
	xs, ys, err := Sample("2*x", 0, 4, 5)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	wantX := []float64{0, 1, 2, 3, 4}
	for i := range wantX {
		if xs[i] != wantX[i] {
			t.Errorf("xs[%d] = %g, want %g", i, xs[i], wantX[i])
		}
		if ys[i] != 2*wantX[i] {
			t.Errorf("ys[%d] = %g, want %g", i, ys[i], 2*wantX[i])
		}
	}
}

func TestSamplePointCount(t *testing.T) {
	for _, n := range []int{1, 2, 100} {
		xs, ys, err := Sample("cos(x)", 0, 1, n)
		if err != nil {
			t.Fatalf("Sample(n=%d) error = %v", n, err)
		}
		if len(xs) != n || len(ys) != n {
			t.Errorf("Sample(n=%d) lengths = %d, %d, want %d", n, len(xs), len(ys), n)
		}
	}
}

func TestSampleFunctions(t *testing.T) {
	const tol = 1e-12

	tests := []struct {
		name string
		expr string
		x    float64
		want float64
	}{
		{"sin", "sin(x)", math.Pi / 2, 1},
		{"cos", "cos(x)", 0, 1},
		{"tan", "tan(x)", math.Pi / 4, 1},
		{"exp", "exp(x)", 1, math.E},
		{"log", "log(x)", math.E, 1},
		{"sqrt", "sqrt(x)", 9, 3},
		{"pi constant", "pi", 0, math.Pi},
		{"compound", "sin(x) + cos(2*x)", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ys, err := Sample(tt.expr, tt.x, tt.x, 1)
			if err != nil {
				t.Fatalf("Sample(%q) error = %v", tt.expr, err)
			}
			if math.Abs(ys[0]-tt.want) > tol {
				t.Errorf("%s at x=%g = %g, want %g", tt.expr, tt.x, ys[0], tt.want)
			}
		})
	}
}

func TestSampleErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		n    int
	}{
		{"unbalanced parens", "sin(x", 10},
		{"unknown function", "sinh(x)", 10},
		{"not a number", "x > 1", 10},
		{"zero points", "x", 0},
		{"negative points", "x", -3},
		{"log outside domain", "log(x)", 1},
		{"sqrt outside domain", "sqrt(0 - x - 1)", 10},
		{"division blows up", "1 / x", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs, ys, err := Sample(tt.expr, 0, 1, tt.n)
			if err == nil {
				t.Fatalf("Sample(%q, n=%d) error = nil, want error", tt.expr, tt.n)
			}
			if xs != nil || ys != nil {
				t.Error("failed Sample() returned partial data")
			}
		})
	}
}
