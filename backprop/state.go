package backprop

// neuron is the training state attached to each neuron. Only hidden and output neurons use it.
type neuron struct {
	// dE/dy for the current pattern
	gradient float64

	// f'(potential) for the current pattern
	derivative float64
}

// synapse is the training state attached to each synapse.
type synapse struct {
	// dE/dw for the current pattern
	gradient float64

	// the sum of gradients since the last reset
	accumulatedError float64

	weightChange         float64
	previousWeightChange float64

	learningRate float64
}

// connector is the training state attached to each connector.
type connector struct {
	momentum float64
}
