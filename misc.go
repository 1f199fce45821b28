package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"math"
	"strconv"
	"strings"
)

// CorrectRound returns whether or not every output rounds to its target, with values >= 0.5 rounding
// to 1 and values < 0.5 rounding to 0. It assumes that len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Floor(outs[i]+0.5) != targets[i] {
			return false
		}
	}

	return true
}

// CorrectHighest returns whether or not the largest value in each of the two is at the same index.
func CorrectHighest(outs, targets []float64) bool {
	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}

// Accuracy returns the fraction of the patterns in the set for which 'correct' reports the output
// of the Network as correct. CorrectRound and CorrectHighest are provided as common options.
func (net *Network) Accuracy(set *TrainingSet, correct func(outs, targets []float64) bool) (float64, error) {
	if set == nil {
		return 0, NilArgError{"Training set"}
	} else if correct == nil {
		return 0, NilArgError{"Correctness function"}
	} else if err := net.checkSet(set); err != nil {
		return 0, err
	} else if len(set.patterns) == 0 {
		return 0, errors.Wrapf(ErrEmptySet, "Can't get accuracy")
	}

	var count int
	for _, p := range set.patterns {
		out, err := net.Evaluate(p.Input)
		if err != nil {
			return 0, err
		}

		if correct(out, p.Output) {
			count++
		}
	}

	return float64(count) / float64(len(set.patterns)), nil
}

// NormalizeVector returns a copy of the vector scaled so that its sum of squares is equal to the
// given magnitude. A vector of all zeros stays all zeros.
func NormalizeVector(v []float64, magnitude float64) ([]float64, error) {
	if magnitude < 0 {
		return nil, errors.Errorf("Can't normalize vector to negative magnitude %v", magnitude)
	}

	var factor float64
	if sumSq := floats.Dot(v, v); sumSq != 0 {
		factor = math.Sqrt(magnitude / sumSq)
	}

	n := make([]float64, len(v))
	floats.ScaleTo(n, factor, v)
	return n, nil
}

// VectorToString formats the vector with two decimal places per value, as in: [0.00, 1.00]
func VectorToString(v []float64) string {
	strs := make([]string, len(v))
	for i, x := range v {
		strs[i] = strconv.FormatFloat(x, 'f', 2, 64)
	}

	return "[" + strings.Join(strs, ", ") + "]"
}
