package mlp

// Overlay attaches extension records to every neuron (N), synapse (S) and connector (C) of a Network,
// addressed by the same IDs as the Network itself. It is how teachers keep their training state
// alongside the Network without copying it: weights and outputs are always read from and written
// to the Network's own storage.
//
// Only one Overlay can be attached to a Network at a time. Once Undecorate has been called, every
// method except Undecorate panics with ErrOverlayDetached.
type Overlay[N, S, C any] struct {
	net *Network

	neurons    []N
	synapses   []S
	connectors []C

	detached bool
}

// Decorate attaches a new Overlay to the Network, with one zero-valued record per neuron, synapse
// and connector. The topology of the Network is left untouched.
//
// If the Network already has an Overlay attached, ErrAlreadyDecorated is returned.
func Decorate[N, S, C any](net *Network) (*Overlay[N, S, C], error) {
	if net == nil {
		return nil, NilArgError{"Network"}
	} else if net.owner != nil {
		return nil, ErrAlreadyDecorated
	}

	o := &Overlay[N, S, C]{
		net:        net,
		neurons:    make([]N, len(net.neurons)),
		synapses:   make([]S, len(net.synapses)),
		connectors: make([]C, len(net.connectors)),
	}

	net.owner = o
	return o, nil
}

func (o *Overlay[N, S, C]) check() {
	if o.detached {
		panic(ErrOverlayDetached)
	}
}

// Network returns the Network that the Overlay is attached to.
func (o *Overlay[N, S, C]) Network() *Network {
	o.check()
	return o.net
}

// Neuron returns the record of the neuron with the given ID.
func (o *Overlay[N, S, C]) Neuron(id NeuronID) *N {
	o.check()
	return &o.neurons[id]
}

// Synapse returns the record of the synapse with the given ID.
func (o *Overlay[N, S, C]) Synapse(id SynapseID) *S {
	o.check()
	return &o.synapses[id]
}

// Connector returns the record of the connector at the given index, as in Connector.Index.
func (o *Overlay[N, S, C]) Connector(index int) *C {
	o.check()
	return &o.connectors[index]
}

// Detached returns whether or not Undecorate has been called.
func (o *Overlay[N, S, C]) Detached() bool {
	return o.detached
}

// Undecorate removes the Overlay from its Network, dropping every record, and returns the Network
// itself. The weights of the Network are kept as they are.
//
// Calling Undecorate a second time returns ErrOverlayDetached.
func (o *Overlay[N, S, C]) Undecorate() (*Network, error) {
	if o.detached {
		return nil, ErrOverlayDetached
	}

	net := o.net
	net.owner = nil

	o.net = nil
	o.neurons, o.synapses, o.connectors = nil, nil, nil
	o.detached = true

	return net, nil
}
