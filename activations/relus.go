// relus.go contains the activation functions related to relu:
// * ReLU
// * Leaky ReLU
// * Softplus (because it's similar)
package activations

import (
	"math"
	"strconv"
)

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the standard rectified linear unit, max(x, 0).
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Evaluate(potential float64) float64 {
	return math.Max(potential, 0)
}

func (t relu) Derivative(potential float64) float64 {
	if potential > 0 {
		return 1
	}

	return 0
}

// ****************************************
// Leaky ReLU
// ****************************************

type lrelu float64

// DefaultLeak is the leaky factor used for "leaky-relu" when it is looked up by name
const DefaultLeak float64 = 0.01

// LeakyReLU returns a standard 'leaky ReLU', where the leaky factor is given by alpha.
func LeakyReLU(alpha float64) lrelu {
	return lrelu(alpha)
}

func (t lrelu) TypeString() string {
	return "leaky-relu"
}

func (t lrelu) Evaluate(potential float64) float64 {
	if potential < 0 {
		return float64(t) * potential
	}

	return potential
}

func (t lrelu) Derivative(potential float64) float64 {
	if potential < 0 {
		return float64(t)
	}

	return 1
}

func (t lrelu) String() string {
	return "leaky-relu(" + strconv.FormatFloat(float64(t), 'g', -1, 64) + ")"
}

// ****************************************
// Softplus
// ****************************************

type softplus int8

// Softplus returns the smooth approximation of ReLU, ln(1 + e^x).
func Softplus() softplus {
	return softplus(0)
}

func (t softplus) TypeString() string {
	return "softplus"
}

func (t softplus) Evaluate(potential float64) float64 {
	return math.Log1p(math.Exp(potential))
}

// The derivative of softplus is the logistic function
func (t softplus) Derivative(potential float64) float64 {
	return Logistic().Evaluate(potential)
}
