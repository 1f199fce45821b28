package hyperparams

import (
	"encoding/json"
	"fmt"
	"github.com/pkg/errors"
)

type step struct {
	Iter int
	Val  float64
}

type stepper []step

// Step returns a HyperParameter that starts at the given base value and changes at each step added
// by Add. Steps must be added in increasing order of iteration.
func Step(base float64) *stepper {
	s := make([]step, 1)

	s[0] = step{0, base}

	st := stepper(s)
	return &st
}

// Add adds a step to the HyperParameter: from the given iteration onwards, it has the given value.
// Add will panic if iter is before the iteration of the last step.
func (s *stepper) Add(iter int, value float64) *stepper {
	if last := (*s)[len(*s)-1].Iter; iter < last {
		panic(fmt.Sprintf("step at iteration %d added after step at iteration %d", iter, last))
	}

	*s = append(*s, step{iter, value})
	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(iter int) float64 {
	sl := []step(*s)
	for i := 1; i < len(sl); i++ {
		if sl[i].Iter > iter {
			return sl[i-1].Val
		}
	}

	return sl[len(sl)-1].Val
}

func (s *stepper) UnmarshalJSON(data []byte) error {
	var sl []step
	if err := json.Unmarshal(data, &sl); err != nil {
		return err
	} else if len(sl) == 0 {
		return errors.Errorf("Step hyperparameter must have at least one step")
	}

	for i := 1; i < len(sl); i++ {
		if sl[i].Iter < sl[i-1].Iter {
			return errors.Errorf("Steps are not in order of iteration (%d after %d)", sl[i].Iter, sl[i-1].Iter)
		}
	}

	*s = stepper(sl)
	return nil
}
