package activations

import (
	"math"
)

type logistic int8

// Logistic returns the standard logistic (sigmoid) function, 1 / (1 + e^-x), with outputs in (0, 1).
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

func (t logistic) Evaluate(potential float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*potential)
}

func (t logistic) Derivative(potential float64) float64 {
	v := t.Evaluate(potential)
	return v * (1 - v)
}
