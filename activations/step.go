package activations

type step int8

// Step returns the Heaviside step function: 1 for potentials >= 0 and 0 otherwise.
//
// Step does not provide a derivative, so Networks that use it can be evaluated but not trained
// by backpropagation.
func Step() step {
	return step(0)
}

func (t step) TypeString() string {
	return "step"
}

func (t step) Evaluate(potential float64) float64 {
	if potential >= 0 {
		return 1
	}

	return 0
}
