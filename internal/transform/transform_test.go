package transform

import (
	"math"
	"testing"
)

func TestRollingAverage(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{10, 20, 30, 40, 50}

	xs, ys, err := RollingAverage(x, y, 3)
	if err != nil {
		t.Fatalf("RollingAverage() error = %v", err)
	}

	wantX := []float64{1, 2, 3}
	wantY := []float64{20, 30, 40}
	if len(xs) != len(wantX) {
		t.Fatalf("len(xs) = %d, want %d", len(xs), len(wantX))
	}
	for i := range wantX {
		if xs[i] != wantX[i] || ys[i] != wantY[i] {
			t.Errorf("point %d = (%g, %g), want (%g, %g)", i, xs[i], ys[i], wantX[i], wantY[i])
		}
	}
}

func TestRollingAverageWindowOne(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}

	xs, ys, err := RollingAverage(x, y, 1)
	if err != nil {
		t.Fatalf("RollingAverage() error = %v", err)
	}
	if len(xs) != 2 || xs[0] != 1 || ys[1] != 4 {
		t.Errorf("window 1 changed the data: %v %v", xs, ys)
	}
}

func TestRollingAverageErrors(t *testing.T) {
	tests := []struct {
		name   string
		points int
		window int
	}{
		{"zero window", 5, 0},
		{"negative window", 5, -1},
		{"window larger than series", 3, 4},
		{"empty series", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := make([]float64, tt.points)
			y := make([]float64, tt.points)
			xs, ys, err := RollingAverage(x, y, tt.window)
			if err == nil {
				t.Fatal("RollingAverage() error = nil, want error")
			}
			if xs != nil || ys != nil {
				t.Error("failed RollingAverage() returned partial data")
			}
		})
	}
}

func TestLinearFitExact(t *testing.T) {
	// y = 2x + 1, noise-free.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7}

	fit, err := LinearFit(x, y)
	if err != nil {
		t.Fatalf("LinearFit() error = %v", err)
	}

	const tol = 1e-12
	if math.Abs(fit.Slope-2) > tol {
		t.Errorf("Slope = %g, want 2", fit.Slope)
	}
	if math.Abs(fit.Intercept-1) > tol {
		t.Errorf("Intercept = %g, want 1", fit.Intercept)
	}
	if math.Abs(fit.RSquared-1) > tol {
		t.Errorf("RSquared = %g, want 1", fit.RSquared)
	}
	if fit.Equation() != "y = 2.0000x + 1.0000" {
		t.Errorf("Equation() = %q, want %q", fit.Equation(), "y = 2.0000x + 1.0000")
	}
}

func TestLinearFitLine(t *testing.T) {
	fit, err := LinearFit([]float64{0, 5, 10}, []float64{0, 5, 10})
	if err != nil {
		t.Fatalf("LinearFit() error = %v", err)
	}

	xs, ys := fit.Line(11)
	if len(xs) != 11 {
		t.Fatalf("len(xs) = %d, want 11", len(xs))
	}
	if xs[0] != 0 || xs[10] != 10 {
		t.Errorf("endpoints = %g, %g, want 0, 10", xs[0], xs[10])
	}
	const tol = 1e-12
	for i := range xs {
		if math.Abs(ys[i]-xs[i]) > tol {
			t.Errorf("ys[%d] = %g, want %g", i, ys[i], xs[i])
		}
	}
}

func TestLinearFitConstantSeries(t *testing.T) {
	fit, err := LinearFit([]float64{0, 1, 2}, []float64{5, 5, 5})
	if err != nil {
		t.Fatalf("LinearFit() error = %v", err)
	}
	if fit.Slope != 0 || fit.Intercept != 5 {
		t.Errorf("fit = %+v, want slope 0 intercept 5", fit)
	}
	if fit.RSquared != 1 {
		t.Errorf("RSquared = %g, want 1 for a perfectly flat fit", fit.RSquared)
	}
}

func TestLinearFitErrors(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
	}{
		{"too few points", []float64{0, 1}, []float64{0, 1}},
		{"empty series", nil, nil},
		{"vertical series", []float64{2, 2, 2}, []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LinearFit(tt.x, tt.y); err == nil {
				t.Fatal("LinearFit() error = nil, want error")
			}
		})
	}
}
