package initializers

import (
	"math/rand"
)

// LeCun returns variance scaling with a factor of 1, suited to tanh and logistic layers.
func LeCun(src *rand.Rand) *varianceScaling {
	return VarianceScaling(src).Factor(1)
}

// He returns variance scaling with a factor of 2, suited to relu layers.
func He(src *rand.Rand) *varianceScaling {
	return VarianceScaling(src).Factor(2)
}
