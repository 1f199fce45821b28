package mlp

// ActivationFunction maps a neuron's potential (its weighted input sum) to its output. Hidden and
// output layers each carry one. Implementations can be found in the subpackage "activations".
type ActivationFunction interface {
	// TypeString returns the name the function is registered under, e.g. "logistic".
	TypeString() string

	// Evaluate returns the output for the given potential.
	Evaluate(potential float64) float64
}

// DerivableActivationFunction is an ActivationFunction that can also provide its derivative. Only
// Networks whose hidden and output layers all use derivable functions can be trained by
// backpropagation.
type DerivableActivationFunction interface {
	ActivationFunction

	// Derivative returns the derivative of the function, evaluated at the given potential.
	Derivative(potential float64) float64
}

// Initializer sets the weights of the source synapses of a single neuron. It is given the fan-in of
// the neuron (the number of weights, including the bias synapse) and the slice to fill.
//
// Implementations can be found in the subpackage "initializers". Initializers that draw random
// numbers should own their generator so that runs can be reproduced.
type Initializer interface {
	Set(fanIn int, ws []float64)
}

// HyperParameter is a value that may change as training progresses, indexed by iteration.
// Implementations can be found in the subpackage "hyperparams".
type HyperParameter interface {
	TypeString() string
	Value(iter int) float64
}

// CostFunction measures the error of a single pattern and provides its derivative.
type CostFunction interface {
	// arguments: actual values, target values. Both will always have the same length.
	Cost([]float64, []float64) float64

	// Deriv gives the derivative of the cost w.r.t. each of the outputs, by calling the provided
	// function with the index and the derivative.
	Deriv([]float64, []float64, func(int, float64))
}

// Teacher is the contract satisfied by anything that can train a Network with a TrainingSet.
// Training blocks until finished; the Network holds the best weights found when Train returns.
type Teacher interface {
	Name() string
	Train(net *Network) (*TrainingLog, error)
}
