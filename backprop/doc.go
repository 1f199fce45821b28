// Package backprop trains mlp Networks with the error backpropagation algorithm, using momentum
// and a separate adaptive learning rate for every synapse.
//
// The training state (gradients, accumulated errors, weight changes, learning rates and momenta)
// is attached to an existing mlp.Network with Decorate, and removed again with Undecorate; the
// Network itself is never copied. Most callers only need the Teacher:
//
//	t := backprop.NewTeacher(trainingSet, nil, backprop.DefaultArgs())
//	log, err := t.Train(net)
//
// Training is single-threaded, and a Network must not be evaluated elsewhere while it is being
// trained.
package backprop

import (
	"github.com/sharnoff/mlp"
)

var _ mlp.Teacher = (*Teacher)(nil)
