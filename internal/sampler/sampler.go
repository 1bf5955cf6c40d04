// Package sampler turns a typed math expression into a data series by
// evaluating it over an evenly spaced range of x values. Expressions run
// through a constrained evaluator exposing only the documented function
// set, never a general-purpose one.
package sampler

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Functions usable in expressions, plus the constant "pi" and the sample
// variable "x".
var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
}

func unary(f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("expected a number, got %T", args[0])
		}
		return f(v), nil
	}
}

// Sample evaluates expr at n evenly spaced x values over the inclusive
// range [xMin, xMax]: the first sample is at xMin, the last at xMax, and
// n == 1 degenerates to a single sample at xMin. Any parse or evaluation
// failure aborts the whole operation, as does a non-finite result such as
// log at zero; no partial series is returned.
func Sample(expr string, xMin, xMax float64, n int) (xs, ys []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("point count must be at least 1, got %d", n)
	}

	eval, err := govaluate.NewEvaluableExpressionWithFunctions(expr, functions)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %q: %w", expr, err)
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	params := map[string]interface{}{"pi": math.Pi}
	for i := 0; i < n; i++ {
		x := xMin
		if n > 1 {
			x = xMin + (xMax-xMin)*float64(i)/float64(n-1)
		}
		params["x"] = x

		result, err := eval.Evaluate(params)
		if err != nil {
			return nil, nil, fmt.Errorf("evaluating %q at x=%g: %w", expr, x, err)
		}
		y, ok := result.(float64)
		if !ok {
			return nil, nil, fmt.Errorf("expression %q does not evaluate to a number (got %T)", expr, result)
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return nil, nil, fmt.Errorf("expression %q is not finite at x=%g", expr, x)
		}

		xs[i] = x
		ys[i] = y
	}
	return xs, ys, nil
}
