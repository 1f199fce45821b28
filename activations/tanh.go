package activations

import (
	"math"
)

type tanh int8

// Tanh returns the hyperbolic tangent function, with outputs in (-1, 1).
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Evaluate(potential float64) float64 {
	return math.Tanh(potential)
}

func (t tanh) Derivative(potential float64) float64 {
	v := math.Tanh(potential)
	return 1 - v*v
}
