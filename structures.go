package mlp

// NeuronID is the handle of a neuron within its Network. IDs are assigned in construction order:
// the bias neuron is always 0, followed by the input layer, the hidden layers and the output layer.
type NeuronID int

// SynapseID is the handle of a synapse within its Network. IDs are assigned connector by connector,
// in the order given by NetworkBlueprint.ConnectorBlueprints.
type SynapseID int

// LayerKind is the role a Layer plays in its Network.
type LayerKind uint8

const (
	KindBias LayerKind = iota
	KindInput
	KindHidden
	KindOutput
)

func (k LayerKind) String() string {
	switch k {
	case KindBias:
		return "bias"
	case KindInput:
		return "input"
	case KindHidden:
		return "hidden"
	case KindOutput:
		return "output"
	}

	return "unknown"
}

// Network is a feed-forward neural network built from a NetworkBlueprint. Neurons and synapses are
// stored in arenas owned by the Network and referred to by their IDs.
//
// A Network is not safe for concurrent use.
type Network struct {
	bp *NetworkBlueprint

	// all of the layers, in the order: bias, input, hidden..., output
	layers []*Layer

	connectors []*Connector

	// stored such that the id of each is its index
	neurons  []neuronData
	synapses []synapseData

	// the Overlay currently attached, if any
	owner interface{}
}

// Layer is a group of neurons that share a role and (for hidden and output layers) an activation
// function.
type Layer struct {
	net   *Network
	index int
	kind  LayerKind

	// nil for the bias and input layers
	f ActivationFunction

	neurons []NeuronID

	// connectors that go into this layer, and those that leave from it
	sourceConnectors []*Connector
	targetConnectors []*Connector
}

type neuronData struct {
	layer *Layer

	// potential is the weighted sum of inputs; only calculated for activation neurons
	potential float64
	output    float64

	// synapses for which this neuron is the target (sourceSynapses) or the source
	// (targetSynapses), in connection order
	sourceSynapses []SynapseID
	targetSynapses []SynapseID
}

// Connector is the dense set of synapses from one layer to another.
type Connector struct {
	net    *Network
	index  int
	source *Layer
	target *Layer

	// source-major: every synapse leaving the first source neuron, then the second, etc.
	synapses []SynapseID
}

type synapseData struct {
	weight    float64
	source    NeuronID
	target    NeuronID
	connector *Connector
}
