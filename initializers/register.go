// Package initializers provides implementations of mlp.Initializer. Every random Initializer owns a
// *rand.Rand, so that training runs can be reproduced from a seed:
//
//	init := initializers.Random(initializers.Uniform(initializers.NewSource(1)))
//	err := net.Initialize(init)
package initializers

import (
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"math"
)

// The default bounds of Uniform
const (
	DefaultLower float64 = -1
	DefaultUpper float64 = 1
)

// default values, because 'default' is a keyword
var defaultValue map[string]float64

func init() {
	defaultValue = map[string]float64{
		"uniform-lower": DefaultLower,
		"uniform-upper": DefaultUpper,
		"normal-mean":   0,
		"normal-sd":     1,
		"varscl-factor": 1,
	}
}

// SetDefault sets the default values used by the constructors of this package. The values that can
// be set are: "uniform-lower", "uniform-upper", "normal-mean", "normal-sd", and "varscl-factor".
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}

// Default returns the default Initializer, seeded with the given value: weights drawn uniformly from
// [-1, 1] (or the bounds set by SetDefault).
func Default(seed int64) mlp.Initializer {
	return Random(Uniform(NewSource(seed)))
}
