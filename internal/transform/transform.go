// Package transform derives new data series from existing ones: window
// smoothing and least-squares line fitting.
package transform

import (
	"fmt"
	"math"
)

// RollingAverage smooths a series with a leading window of the given
// size: element i of the result averages points i..i+window-1 on both
// axes, so the result has len(x)-window+1 points.
func RollingAverage(x, y []float64, window int) (xs, ys []float64, err error) {
	if window < 1 {
		return nil, nil, fmt.Errorf("window size must be at least 1, got %d", window)
	}
	if len(x) < window {
		return nil, nil, fmt.Errorf("window size %d is larger than the %d-point series", window, len(x))
	}

	n := len(x) - window + 1
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		var sumX, sumY float64
		for j := i; j < i+window; j++ {
			sumX += x[j]
			sumY += y[j]
		}
		xs[i] = sumX / float64(window)
		ys[i] = sumY / float64(window)
	}
	return xs, ys, nil
}

// Fit is a fitted line y = Slope*x + Intercept over the x range of the
// source series, with the coefficient of determination of the fit.
type Fit struct {
	Slope     float64
	Intercept float64
	RSquared  float64

	xMin, xMax float64
}

// Equation renders the fit the way it is reported to the user.
func (f Fit) Equation() string {
	return fmt.Sprintf("y = %.4fx + %.4f", f.Slope, f.Intercept)
}

// Line samples the fitted line at n evenly spaced points across the
// source series' x range.
func (f Fit) Line(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := f.xMin
		if n > 1 {
			x = f.xMin + (f.xMax-f.xMin)*float64(i)/float64(n-1)
		}
		xs[i] = x
		ys[i] = f.Slope*x + f.Intercept
	}
	return xs, ys
}

// LinearFit computes the least-squares line through the series. It needs
// at least 3 points and some spread in x; a vertical series has no
// finite slope and is rejected.
func LinearFit(x, y []float64) (Fit, error) {
	if len(x) < 3 {
		return Fit{}, fmt.Errorf("need at least 3 points to fit, got %d", len(x))
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return Fit{}, fmt.Errorf("x values are all identical, no line to fit")
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	yMean := sumY / n
	var ssTot, ssRes float64
	for i := range x {
		ssTot += (y[i] - yMean) * (y[i] - yMean)
		pred := slope*x[i] + intercept
		ssRes += (y[i] - pred) * (y[i] - pred)
	}
	rSquared := 1.0
	if ssTot != 0 {
		rSquared = 1.0 - ssRes/ssTot
	}

	fit := Fit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		xMin:      math.Inf(1),
		xMax:      math.Inf(-1),
	}
	for _, v := range x {
		fit.xMin = math.Min(fit.xMin, v)
		fit.xMax = math.Max(fit.xMax, v)
	}
	return fit, nil
}
