// Package mlp provides a framework for multilayer feed-forward neural networks that are built from
// an immutable blueprint and trained by separate teachers.
//
// Creating Networks
//
// Every Network starts as a NetworkBlueprint, which lists the sizes of the input layer, of any
// number of hidden layers, and of the output layer, along with the activation functions of the
// latter two:
//
//		bp, err := mlp.NewNetworkBlueprint(
//			mlp.NewLayerBlueprint(2),
//			[]*mlp.ActivationLayerBlueprint{mlp.NewActivationLayerBlueprint(2, activations.Logistic())},
//			mlp.NewActivationLayerBlueprint(1, activations.Logistic()),
//		)
//
// Activation functions can be found in the subpackage "activations". The Network itself adds a bias
// layer with a single neuron (constant output 1) and fully connects every hidden and output layer to
// both the bias layer and the layer before it:
//
//		net, err := mlp.NewNetwork(bp)
//		err = net.Initialize(initializers.Random(initializers.Uniform(rng)))
//
// Weights are enumerated in one canonical order everywhere: hidden layers first, then the output
// layer; neuron by neuron; and for each neuron its source synapses, bias synapse first. Weights,
// SetWeights, SaveWeights and LoadWeights all follow it.
//
// Training
//
// Teachers satisfy the Teacher interface. The subpackage "backprop" provides one that uses the error
// backpropagation algorithm with momentum and per-weight adaptive learning rates. While training,
// the teacher attaches its own state to the Network's neurons, synapses and connectors through an
// Overlay (see Decorate), and removes it again when it is done. Only one Overlay may be attached to a
// Network at a time.
//
// Numeric divergence while training (weights growing without bound, non-finite potentials) is not
// detected or corrected; results in that case are undefined.
//
// Saving and Loading
//
// Weights are stored as plain text, see SaveWeights. Training sets use a similar format, see
// ReadTrainingSet.
package mlp
