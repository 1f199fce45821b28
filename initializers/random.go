package initializers

type random struct {
	RNG
}

// Random returns an Initializer that uses the provided RNG to generate the weights. There is no
// scaling beyond that of the RNG.
func Random(g RNG) random {
	return random{g}
}

// Set is the implementation of mlp.Initializer
func (r random) Set(fanIn int, ws []float64) {
	for i := range ws {
		ws[i] = r.Gen()
	}
}

type constant float64

// Constant returns an Initializer that sets every weight to the given value. Constant(0) gives the
// zero-weight network that is useful as a baseline.
func Constant(value float64) constant {
	return constant(value)
}

// Set is the implementation of mlp.Initializer
func (c constant) Set(fanIn int, ws []float64) {
	for i := range ws {
		ws[i] = float64(c)
	}
}
