package mlp

import (
	"strconv"
	"strings"
)

// Blueprint returns the blueprint that the Network was built from.
func (net *Network) Blueprint() *NetworkBlueprint {
	return net.bp
}

// LayerCount returns the number of input, hidden and output layers, as in
// NetworkBlueprint.LayerCount.
func (net *Network) LayerCount() int {
	return len(net.layers) - 1
}

// Layer returns the layer at the given index, using the same scheme as
// NetworkBlueprint.LayerNeuronCount: -1 is the bias layer and LayerCount()-1 is the output layer.
func (net *Network) Layer(index int) (*Layer, error) {
	if index < -1 || index >= net.LayerCount() {
		return nil, LayerIndexError{index, net.LayerCount()}
	}

	return net.layerAt(index), nil
}

// BiasLayer returns the layer containing the single bias neuron.
func (net *Network) BiasLayer() *Layer {
	return net.layers[0]
}

// InputLayer returns the input layer.
func (net *Network) InputLayer() *Layer {
	return net.layers[1]
}

// HiddenLayers returns a copy of the list of hidden layers, in order.
func (net *Network) HiddenLayers() []*Layer {
	hs := make([]*Layer, len(net.layers)-3)
	copy(hs, net.layers[2:len(net.layers)-1])
	return hs
}

// OutputLayer returns the output layer.
func (net *Network) OutputLayer() *Layer {
	return net.layers[len(net.layers)-1]
}

// activationLayers returns the hidden layers followed by the output layer. The slice must not be
// modified.
func (net *Network) activationLayers() []*Layer {
	return net.layers[2:]
}

// Connectors returns a copy of the list of connectors, in the order that they were created.
func (net *Network) Connectors() []*Connector {
	cs := make([]*Connector, len(net.connectors))
	copy(cs, net.connectors)
	return cs
}

// InputSize returns the number of inputs the Network expects.
func (net *Network) InputSize() int {
	return len(net.InputLayer().neurons)
}

// OutputSize returns the number of values that the Network outputs.
func (net *Network) OutputSize() int {
	return len(net.OutputLayer().neurons)
}

// NeuronCount returns the total number of neurons, including the bias and input neurons.
func (net *Network) NeuronCount() int {
	return len(net.neurons)
}

// SynapseCount returns the number of trainable synapses, which is also the number of weights.
func (net *Network) SynapseCount() int {
	return len(net.synapses)
}

// Decorated returns whether or not an Overlay is currently attached to the Network.
func (net *Network) Decorated() bool {
	return net.owner != nil
}

// String returns a multi-line description of the layers of the Network, in the form:
//	MLP
//	[
//	0 : input(2)
//	1 : hidden(2, logistic)
//	2 : output(1, logistic)
//	]
func (net *Network) String() string {
	var sb strings.Builder
	sb.WriteString("MLP\n[\n")
	for i, l := range net.layers[1:] {
		sb.WriteString(strconv.Itoa(i) + " : " + l.String() + "\n")
	}

	sb.WriteString("]")
	return sb.String()
}

// Kind returns the role of the layer within its Network.
func (l *Layer) Kind() LayerKind {
	return l.kind
}

// Index returns the index of the layer, as used by Network.Layer.
func (l *Layer) Index() int {
	return l.index
}

// Size returns the number of neurons in the layer.
func (l *Layer) Size() int {
	return len(l.neurons)
}

// ActivationFunction returns the activation function of the layer, or nil for the bias and input
// layers.
func (l *Layer) ActivationFunction() ActivationFunction {
	return l.f
}

// Neurons returns the IDs of the neurons in the layer. The returned slice must not be modified.
func (l *Layer) Neurons() []NeuronID {
	return l.neurons
}

// SourceConnectors returns the connectors going into the layer. The returned slice must not be
// modified.
func (l *Layer) SourceConnectors() []*Connector {
	return l.sourceConnectors
}

// TargetConnectors returns the connectors leaving from the layer. The returned slice must not be
// modified.
func (l *Layer) TargetConnectors() []*Connector {
	return l.targetConnectors
}

func (l *Layer) String() string {
	if l.f == nil {
		return l.kind.String() + "(" + strconv.Itoa(len(l.neurons)) + ")"
	}

	return l.kind.String() + "(" + strconv.Itoa(len(l.neurons)) + ", " + l.f.TypeString() + ")"
}

// Index returns the position of the connector in Network.Connectors, which is also the handle used
// by Overlay.Connector.
func (c *Connector) Index() int {
	return c.index
}

// Source returns the layer that the connector leaves from.
func (c *Connector) Source() *Layer {
	return c.source
}

// Target returns the layer that the connector goes into.
func (c *Connector) Target() *Layer {
	return c.target
}

// Synapses returns the IDs of the synapses owned by the connector, source-major. The returned slice
// must not be modified.
func (c *Connector) Synapses() []SynapseID {
	return c.synapses
}

func (c *Connector) String() string {
	return "Connector(" + strconv.Itoa(c.source.index) + " -> " + strconv.Itoa(c.target.index) + ")"
}
