package initializers

import (
	"math/rand"
)

// RNG is a source of random weights. Every RNG in this package draws from its own *rand.Rand, so
// that results can be reproduced by seeding it.
type RNG interface {
	Gen() float64
}

// NewSource returns a new generator seeded with the given value, for use with the RNGs of this
// package.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

type uniform struct {
	src          *rand.Rand
	lower, upper float64
}

// Uniform returns an RNG that gives values uniformly spread between its bounds, which can be set by
// Bounds. The default bounds are [-1, 1], and can be changed with SetDefault for "uniform-lower" and
// "uniform-upper".
func Uniform(src *rand.Rand) *uniform {
	return &uniform{src, defaultValue["uniform-lower"], defaultValue["uniform-upper"]}
}

// Bounds sets the range of a Uniform RNG, returning it. If lower > upper, they are swapped.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return u.src.Float64()*(u.upper-u.lower) + u.lower
}

type normal struct {
	src  *rand.Rand
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center and standard
// deviation can be set by Mean and SD, respectively.
//
// Default centers and standard deviations can be set by SetDefault for "normal-mean" and
// "normal-sd".
func Normal(src *rand.Rand) *normal {
	return &normal{src, defaultValue["normal-mean"], defaultValue["normal-sd"]}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return n.src.NormFloat64()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within a truncated normal distribution, cut off at 2
// standard deviations by default. The center and standard deviation can be set in the same way as
// Normal, because Normal is embedded in the TruncNormal type.
func TruncNormal(src *rand.Rand) *truncNormal {
	return &truncNormal{Normal(src), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will panic if given
// sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen() float64 {
	for {
		v := t.src.NormFloat64()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}
