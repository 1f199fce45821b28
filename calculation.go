package mlp

import (
	"github.com/pkg/errors"
)

// Evaluate sets the outputs of the input neurons to the given values and propagates them through
// the hidden layers and then the output layer. Each activation neuron caches its potential (the
// weighted sum of its source neurons' outputs, bias included) and its output.
//
// A copy of the outputs of the output layer is returned. If the number of inputs does not match the
// size of the input layer, type SizeMismatchError is returned.
func (net *Network) Evaluate(input []float64) ([]float64, error) {
	if err := net.propagate(input); err != nil {
		return nil, err
	}

	return net.Outputs(), nil
}

// Outputs returns a copy of the outputs of the output layer from the most recent evaluation.
func (net *Network) Outputs() []float64 {
	out := net.OutputLayer().neurons
	vs := make([]float64, len(out))
	for i, id := range out {
		vs[i] = net.neurons[id].output
	}

	return vs
}

func (net *Network) propagate(input []float64) error {
	in := net.InputLayer().neurons
	if len(input) != len(in) {
		return SizeMismatchError{len(in), len(input), "inputs"}
	}

	for i, id := range in {
		net.neurons[id].output = input[i]
	}

	for _, l := range net.activationLayers() {
		for _, id := range l.neurons {
			n := &net.neurons[id]

			var sum float64
			for _, sid := range n.sourceSynapses {
				s := &net.synapses[sid]
				sum += s.weight * net.neurons[s.source].output
			}

			n.potential = sum
			n.output = l.f.Evaluate(sum)
		}
	}

	return nil
}

// CalculateError returns the total error of the Network over every pattern in the set: the sum of
// SquaredError's cost for each pattern. The result is not averaged.
//
// If the input or output length of the set doesn't match the Network, type SizeMismatchError is
// returned (wrapped).
func (net *Network) CalculateError(set *TrainingSet) (float64, error) {
	if set == nil {
		return 0, NilArgError{"Training set"}
	} else if err := net.checkSet(set); err != nil {
		return 0, err
	}

	cf := SquaredError()

	var total float64
	for i, p := range set.patterns {
		out, err := net.Evaluate(p.Input)
		if err != nil {
			return 0, errors.Wrapf(err, "Evaluating pattern %d failed\n", i)
		}

		total += cf.Cost(out, p.Output)
	}

	return total, nil
}

// checkSet returns an error if the set doesn't have the same input and output lengths as the Network
func (net *Network) checkSet(set *TrainingSet) error {
	if set.inputLength != net.InputSize() {
		return errors.Wrapf(SizeMismatchError{net.InputSize(), set.inputLength, "training set inputs"}, "Can't use training set with Network")
	} else if set.outputLength != net.OutputSize() {
		return errors.Wrapf(SizeMismatchError{net.OutputSize(), set.outputLength, "training set outputs"}, "Can't use training set with Network")
	}

	return nil
}
