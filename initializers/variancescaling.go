package initializers

import (
	"math"
	"math/rand"
)

type varianceScaling struct {
	src    *rand.Rand
	factor float64
}

// VarianceScaling returns an Initializer that draws weights from a truncated normal distribution
// with variance factor / fanIn, where the fan-in of a neuron counts its bias synapse. The default
// factor is 1, and can be changed by Factor or by SetDefault("varscl-factor").
func VarianceScaling(src *rand.Rand) *varianceScaling {
	return &varianceScaling{src, defaultValue["varscl-factor"]}
}

// Factor sets the scaling factor to be used for the Initializer.
func (v *varianceScaling) Factor(f float64) *varianceScaling {
	v.factor = f
	return v
}

// Set is the implementation of mlp.Initializer
func (v *varianceScaling) Set(fanIn int, ws []float64) {
	gen := TruncNormal(v.src).SD(math.Sqrt(v.factor / float64(fanIn)))

	for i := range ws {
		ws[i] = gen.Gen()
	}
}
