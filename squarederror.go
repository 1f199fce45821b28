package mlp

import (
	"gonum.org/v1/gonum/floats"
)

type squarederror struct{}

// SquaredError returns the cost function used to measure the error of a Network: half of the sum of
// the squared differences between outputs and targets. Unlike a mean squared error, the result is
// not divided by the number of outputs, so the derivative w.r.t. each output is simply
// output - target.
func SquaredError() CostFunction {
	return squarederror{}
}

func (c squarederror) Cost(values, targets []float64) float64 {
	d := floats.Distance(values, targets, 2)
	return 0.5 * d * d
}

func (c squarederror) Deriv(values, targets []float64, returnFunc func(int, float64)) {
	for i := range values {
		returnFunc(i, values[i]-targets[i])
	}
}
