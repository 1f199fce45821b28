package backprop

import (
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
)

// Network is an mlp.Network decorated for training by backpropagation. It should be created by
// Decorate, and handed back with Undecorate once training has finished.
//
// While decorated, the underlying mlp.Network can still be evaluated, and any weights it reports
// are the ones being trained.
type Network struct {
	overlay *mlp.Overlay[neuron, synapse, connector]
	net     *mlp.Network
	args    Args
	cost    mlp.CostFunction

	// hidden layers then the output layer, with their derivable activation functions
	layers []*mlp.Layer
	derivs []mlp.DerivableActivationFunction

	// the current iteration of the run, starting at 0 after Initialize
	iter int

	// the weights of the Network when it was decorated, given to Args.Restart
	initial []float64
}

// Decorate attaches backpropagation state to the Network. Every hidden and output layer must have
// an activation function that implements mlp.DerivableActivationFunction; if not, mlp.ErrNotDerivable
// is returned (wrapped with the index of the layer) and the Network is left undecorated.
//
// The Network keeps its weights until Initialize is called. If the Network is already decorated,
// mlp.ErrAlreadyDecorated is returned.
func Decorate(net *mlp.Network, args Args) (*Network, error) {
	if net == nil {
		return nil, errors.Errorf("Can't decorate Network for backpropagation, Network is nil")
	} else if err := args.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Can't decorate Network for backpropagation, invalid args\n")
	}

	bn := &Network{
		net:    net,
		args:   args,
		cost:   mlp.SquaredError(),
		layers: append(net.HiddenLayers(), net.OutputLayer()),
	}

	bn.derivs = make([]mlp.DerivableActivationFunction, len(bn.layers))
	for i, l := range bn.layers {
		d, ok := l.ActivationFunction().(mlp.DerivableActivationFunction)
		if !ok {
			return nil, errors.Wrapf(mlp.ErrNotDerivable, "Can't decorate Network for backpropagation, layer %d (%s)",
				l.Index(), l.ActivationFunction().TypeString())
		}

		bn.derivs[i] = d
	}

	var err error
	if bn.overlay, err = mlp.Decorate[neuron, synapse, connector](net); err != nil {
		return nil, errors.Wrapf(err, "Can't decorate Network for backpropagation\n")
	}

	bn.initial = net.Weights()
	bn.resetState()
	return bn, nil
}

// resetState sets every synapse's learning rate to its initial value, and everything else to zero
func (bn *Network) resetState() {
	for i := 0; i < bn.net.SynapseCount(); i++ {
		*bn.overlay.Synapse(mlp.SynapseID(i)) = synapse{learningRate: bn.args.InitialLearningRate}
	}

	for i := 0; i < bn.net.NeuronCount(); i++ {
		*bn.overlay.Neuron(mlp.NeuronID(i)) = neuron{}
	}

	bn.iter = 0
	bn.setMomentum()
}

func (bn *Network) setMomentum() {
	m := bn.args.Momentum.Value(bn.iter)
	for _, c := range bn.net.Connectors() {
		bn.overlay.Connector(c.Index()).momentum = m
	}
}

// Network returns the underlying mlp.Network.
func (bn *Network) Network() *mlp.Network {
	return bn.net
}

// Initialize sets the starting weights of a run and resets all of the training state. The weights
// are given by Args.Restart if it is set, and drawn fresh from Args.Init otherwise.
func (bn *Network) Initialize() error {
	if bn.args.Restart != nil {
		ws := make([]float64, len(bn.initial))
		copy(ws, bn.initial)

		if err := bn.args.Restart(bn.net, ws); err != nil {
			return errors.Wrapf(err, "Restarting from initial weights failed\n")
		}
	} else if err := bn.net.Initialize(bn.args.Init); err != nil {
		return err
	}

	bn.resetState()
	return nil
}

// Evaluate evaluates the underlying Network, caching the potentials and outputs that Backpropagate
// uses.
func (bn *Network) Evaluate(input []float64) ([]float64, error) {
	return bn.net.Evaluate(input)
}

// ResetSynapseErrors sets the accumulated error of every synapse to zero.
func (bn *Network) ResetSynapseErrors() {
	for i := 0; i < bn.net.SynapseCount(); i++ {
		bn.overlay.Synapse(mlp.SynapseID(i)).accumulatedError = 0
	}
}

// Backpropagate calculates the gradient of the error w.r.t. every neuron and synapse, for the
// outputs of the most recent call to Evaluate and the given desired outputs. The gradient of each
// synapse is added to its accumulated error.
//
// The output layer is handled first, with gradients given by the derivative of the squared error;
// then the hidden layers in reverse. The gradient of a hidden neuron is the sum, over its target
// synapses, of the target's gradient times the target's derivative times the weight.
func (bn *Network) Backpropagate(desired []float64) error {
	out := bn.net.Outputs()
	if len(desired) != len(out) {
		return mlp.SizeMismatchError{Expected: len(out), Got: len(desired), Name: "desired outputs"}
	}

	last := len(bn.layers) - 1

	outIDs := bn.layers[last].Neurons()
	bn.cost.Deriv(out, desired, func(i int, d float64) {
		bn.overlay.Neuron(outIDs[i]).gradient = d
	})

	for li := last; li >= 0; li-- {
		f := bn.derivs[li]

		for _, id := range bn.layers[li].Neurons() {
			n := bn.overlay.Neuron(id)
			ref := bn.net.Neuron(id)

			if li != last {
				var g float64
				for _, sid := range ref.TargetSynapses() {
					s := bn.net.Synapse(sid)
					t := bn.overlay.Neuron(s.Target())
					g += t.gradient * t.derivative * s.Weight()
				}

				n.gradient = g
			}

			n.derivative = f.Derivative(ref.Potential())

			for _, sid := range ref.SourceSynapses() {
				s := bn.overlay.Synapse(sid)
				s.gradient = n.gradient * n.derivative * bn.net.Neuron(bn.net.Synapse(sid).Source()).Output()
				s.accumulatedError += s.gradient
			}
		}
	}

	return nil
}

// UpdateSynapseWeights changes every weight by its accumulated error. For each synapse:
//	previousWeightChange = weightChange
//	weightChange = -learningRate * accumulatedError
//	weight += weightChange + momentum * previousWeightChange
// after which the learning rate is multiplied by Growth if the two weight changes have the same
// sign, and by Shrink otherwise.
func (bn *Network) UpdateSynapseWeights() {
	bn.setMomentum()
	growth := bn.args.Growth.Value(bn.iter)
	shrink := bn.args.Shrink.Value(bn.iter)

	for i := 0; i < bn.net.SynapseCount(); i++ {
		id := mlp.SynapseID(i)
		ref := bn.net.Synapse(id)
		s := bn.overlay.Synapse(id)
		m := bn.overlay.Connector(ref.Connector().Index()).momentum

		s.previousWeightChange = s.weightChange
		s.weightChange = -s.learningRate * s.accumulatedError
		ref.SetWeight(ref.Weight() + s.weightChange + m*s.previousWeightChange)

		if s.weightChange*s.previousWeightChange > 0 {
			s.learningRate *= growth
		} else {
			s.learningRate *= shrink
		}
	}
}

// Weights returns the weights of the underlying Network, in canonical order.
func (bn *Network) Weights() []float64 {
	return bn.net.Weights()
}

// SetWeights sets the weights of the underlying Network, in canonical order.
func (bn *Network) SetWeights(ws []float64) error {
	return bn.net.SetWeights(ws)
}

// CalculateError returns the total error of the Network on the set, as in mlp.Network.CalculateError.
func (bn *Network) CalculateError(set *mlp.TrainingSet) (float64, error) {
	return bn.net.CalculateError(set)
}

// Undecorate removes the backpropagation state and returns the underlying Network, with its
// current weights. The Network can be decorated again afterwards.
func (bn *Network) Undecorate() (*mlp.Network, error) {
	return bn.overlay.Undecorate()
}
