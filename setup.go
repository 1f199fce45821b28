package mlp

// NewNetwork builds a Network from the given blueprint. The network has a bias layer with a single
// neuron whose output is always 1, the input layer, the hidden layers in order, and the output
// layer; every connector of the blueprint is then instantiated, with one synapse per pair of
// source and target neurons.
//
// All weights start at zero. Initialize (or SetWeights / LoadWeights) should be called before the
// Network is used.
func NewNetwork(bp *NetworkBlueprint) (*Network, error) {
	if bp == nil {
		return nil, NilArgError{"Network blueprint"}
	}

	net := &Network{bp: bp}

	net.addLayer(KindBias, bp.bias.neuronCount, nil)
	net.addLayer(KindInput, bp.input.neuronCount, nil)
	for _, h := range bp.hidden {
		net.addLayer(KindHidden, h.neuronCount, h.f)
	}
	net.addLayer(KindOutput, bp.output.neuronCount, bp.output.f)

	net.neurons[0].output = 1

	net.synapses = make([]synapseData, 0, bp.SynapseCount())
	for _, cb := range bp.connectors {
		net.addConnector(net.layerAt(cb.SourceLayer), net.layerAt(cb.TargetLayer))
	}

	net.connect()
	return net, nil
}

func (net *Network) addLayer(kind LayerKind, size int, f ActivationFunction) {
	l := &Layer{
		net:     net,
		index:   len(net.layers) - 1,
		kind:    kind,
		f:       f,
		neurons: make([]NeuronID, size),
	}

	for i := range l.neurons {
		l.neurons[i] = NeuronID(len(net.neurons))
		net.neurons = append(net.neurons, neuronData{layer: l})
	}

	net.layers = append(net.layers, l)
}

// layerAt returns the layer at the blueprint index, without checking it
func (net *Network) layerAt(index int) *Layer {
	return net.layers[index+1]
}

func (net *Network) addConnector(source, target *Layer) {
	c := &Connector{
		net:      net,
		index:    len(net.connectors),
		source:   source,
		target:   target,
		synapses: make([]SynapseID, 0, len(source.neurons)*len(target.neurons)),
	}

	for _, s := range source.neurons {
		for _, t := range target.neurons {
			c.synapses = append(c.synapses, SynapseID(len(net.synapses)))
			net.synapses = append(net.synapses, synapseData{source: s, target: t, connector: c})
		}
	}

	source.targetConnectors = append(source.targetConnectors, c)
	target.sourceConnectors = append(target.sourceConnectors, c)
	net.connectors = append(net.connectors, c)
}

// connect registers every synapse with both of its neurons. Because connectors are created bias
// first and synapses are source-major, each neuron's source synapses end up in canonical order.
func (net *Network) connect() {
	for i := range net.synapses {
		id := SynapseID(i)
		s := &net.synapses[i]

		net.neurons[s.target].sourceSynapses = append(net.neurons[s.target].sourceSynapses, id)
		net.neurons[s.source].targetSynapses = append(net.neurons[s.source].targetSynapses, id)
	}
}
