package activations

type linear int8

// Linear returns the identity function, which passes the potential through unchanged. It is
// usually used for the output layer of networks that forecast unbounded values.
func Linear() linear {
	return linear(0)
}

func (t linear) TypeString() string {
	return "linear"
}

func (t linear) Evaluate(potential float64) float64 {
	return potential
}

func (t linear) Derivative(potential float64) float64 {
	return 1
}
