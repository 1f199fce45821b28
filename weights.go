package mlp

import (
	"math/rand"
)

// forEachSourceSynapse calls f with every trainable synapse, in canonical order: the hidden layers,
// then the output layer; within a layer, neuron by neuron; and for each neuron, its source synapses
// in connection order (bias synapse first).
//
// Every operation that walks the weights of the Network goes through here.
func (net *Network) forEachSourceSynapse(f func(n NeuronID, s SynapseID)) {
	for _, l := range net.activationLayers() {
		for _, id := range l.neurons {
			for _, sid := range net.neurons[id].sourceSynapses {
				f(id, sid)
			}
		}
	}
}

// Initialize gives every synapse a new weight from the Initializer and resets the potential and
// output of every neuron. The bias neuron keeps its output of 1.
//
// The Initializer is called once per activation neuron with its fan-in (the number of its source
// synapses, bias included), in canonical order.
func (net *Network) Initialize(init Initializer) error {
	if init == nil {
		return NilArgError{"Initializer"}
	}

	var ws []float64
	for _, l := range net.activationLayers() {
		for _, id := range l.neurons {
			n := &net.neurons[id]

			if cap(ws) < len(n.sourceSynapses) {
				ws = make([]float64, len(n.sourceSynapses))
			}
			ws = ws[:len(n.sourceSynapses)]

			init.Set(len(ws), ws)
			for i, sid := range n.sourceSynapses {
				net.synapses[sid].weight = ws[i]
			}
		}
	}

	for i := range net.neurons {
		net.neurons[i].potential = 0
		net.neurons[i].output = 0
	}
	net.neurons[0].output = 1

	return nil
}

// Weights returns a copy of every weight of the Network, in canonical order. The result always has
// length SynapseCount().
func (net *Network) Weights() []float64 {
	ws := make([]float64, 0, len(net.synapses))
	net.forEachSourceSynapse(func(_ NeuronID, s SynapseID) {
		ws = append(ws, net.synapses[s].weight)
	})

	return ws
}

// SetWeights sets every weight of the Network from the given slice, in canonical order. Weights
// read back by Weights will be bit-for-bit identical.
//
// If the length of the slice is not SynapseCount(), type SizeMismatchError is returned and no
// weights are changed.
func (net *Network) SetWeights(ws []float64) error {
	if len(ws) != len(net.synapses) {
		return SizeMismatchError{len(net.synapses), len(ws), "weights"}
	}

	i := 0
	net.forEachSourceSynapse(func(_ NeuronID, s SynapseID) {
		net.synapses[s].weight = ws[i]
		i++
	})

	return nil
}

// Jitter adds uniformly distributed noise in [-limit, limit] to every weight, drawing from the
// given generator in canonical order.
func (net *Network) Jitter(rng *rand.Rand, limit float64) error {
	if rng == nil {
		return NilArgError{"Random generator"}
	}

	net.forEachSourceSynapse(func(_ NeuronID, s SynapseID) {
		net.synapses[s].weight += limit * (2*rng.Float64() - 1)
	})

	return nil
}
