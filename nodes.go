package mlp

import (
	"fmt"
)

// NeuronRef is a view onto a single neuron of a Network. It is only valid for as long as the
// Network is.
type NeuronRef struct {
	net *Network
	id  NeuronID
}

// SynapseRef is a view onto a single synapse of a Network. Weights read or written through it are
// those of the Network itself.
type SynapseRef struct {
	net *Network
	id  SynapseID
}

// Neuron returns a reference to the neuron with the given ID. Neuron panics if the ID is out of
// range, in the same way that indexing a slice would.
func (net *Network) Neuron(id NeuronID) NeuronRef {
	_ = net.neurons[id]
	return NeuronRef{net, id}
}

// Synapse returns a reference to the synapse with the given ID. Synapse panics if the ID is out of
// range.
func (net *Network) Synapse(id SynapseID) SynapseRef {
	_ = net.synapses[id]
	return SynapseRef{net, id}
}

func (n NeuronRef) data() *neuronData {
	return &n.net.neurons[n.id]
}

// ID returns the handle of the neuron.
func (n NeuronRef) ID() NeuronID {
	return n.id
}

// Layer returns the layer that contains the neuron.
func (n NeuronRef) Layer() *Layer {
	return n.data().layer
}

// Output returns the output of the neuron from the most recent evaluation. The bias neuron always
// outputs 1.
func (n NeuronRef) Output() float64 {
	return n.data().output
}

// Potential returns the weighted sum of the neuron's inputs from the most recent evaluation. It is
// always zero for the bias and input neurons.
func (n NeuronRef) Potential() float64 {
	return n.data().potential
}

// SourceSynapses returns the synapses going into the neuron, bias synapse first. The returned slice
// must not be modified.
func (n NeuronRef) SourceSynapses() []SynapseID {
	return n.data().sourceSynapses
}

// TargetSynapses returns the synapses leaving from the neuron. The returned slice must not be
// modified.
func (n NeuronRef) TargetSynapses() []SynapseID {
	return n.data().targetSynapses
}

func (n NeuronRef) String() string {
	return fmt.Sprintf("Neuron(%d, %v)", n.id, n.data().layer.kind)
}

func (s SynapseRef) data() *synapseData {
	return &s.net.synapses[s.id]
}

// ID returns the handle of the synapse.
func (s SynapseRef) ID() SynapseID {
	return s.id
}

// Weight returns the current weight of the synapse.
func (s SynapseRef) Weight() float64 {
	return s.data().weight
}

// SetWeight sets the weight of the synapse.
func (s SynapseRef) SetWeight(w float64) {
	s.data().weight = w
}

// Source returns the ID of the neuron that the synapse leaves from.
func (s SynapseRef) Source() NeuronID {
	return s.data().source
}

// Target returns the ID of the neuron that the synapse goes into.
func (s SynapseRef) Target() NeuronID {
	return s.data().target
}

// Connector returns the connector that owns the synapse.
func (s SynapseRef) Connector() *Connector {
	return s.data().connector
}

func (s SynapseRef) String() string {
	d := s.data()
	return fmt.Sprintf("Synapse(%d -> %d, %g)", d.source, d.target, d.weight)
}
