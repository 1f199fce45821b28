package mlp

import (
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// LayerBlueprint describes a layer without an activation function; it is used for the input layer
// (and internally for the bias layer).
type LayerBlueprint struct {
	neuronCount int
}

// NewLayerBlueprint returns a LayerBlueprint with the given number of neurons. The size is checked
// when the blueprint is used by NewNetworkBlueprint.
func NewLayerBlueprint(neuronCount int) *LayerBlueprint {
	return &LayerBlueprint{neuronCount}
}

// NeuronCount returns the number of neurons in the layer.
func (lb *LayerBlueprint) NeuronCount() int {
	return lb.neuronCount
}

// Compatible returns whether or not the two layers have the same size.
func (lb *LayerBlueprint) Compatible(other *LayerBlueprint) bool {
	return other != nil && lb.neuronCount == other.neuronCount
}

func (lb *LayerBlueprint) String() string {
	return strconv.Itoa(lb.neuronCount)
}

// ActivationLayerBlueprint describes a hidden or output layer: its size and activation function.
type ActivationLayerBlueprint struct {
	LayerBlueprint
	f ActivationFunction
}

// NewActivationLayerBlueprint returns an ActivationLayerBlueprint with the given size and
// activation function.
func NewActivationLayerBlueprint(neuronCount int, f ActivationFunction) *ActivationLayerBlueprint {
	return &ActivationLayerBlueprint{LayerBlueprint{neuronCount}, f}
}

// ActivationFunction returns the activation function of the layer.
func (ab *ActivationLayerBlueprint) ActivationFunction() ActivationFunction {
	return ab.f
}

func (ab *ActivationLayerBlueprint) String() string {
	if ab.f == nil {
		return ab.LayerBlueprint.String()
	}

	return ab.LayerBlueprint.String() + " " + ab.f.TypeString()
}

// ConnectorBlueprint describes a dense connection from every neuron of the source layer to every
// neuron of the target layer. Layers are given by their index, as in LayerNeuronCount.
type ConnectorBlueprint struct {
	SourceLayer, SourceNeuronCount int
	TargetLayer, TargetNeuronCount int
}

// SynapseCount returns the number of synapses the connector will have.
func (cb ConnectorBlueprint) SynapseCount() int {
	return cb.SourceNeuronCount * cb.TargetNeuronCount
}

// NetworkBlueprint is the immutable description of a Network. It should be created by
// NewNetworkBlueprint.
type NetworkBlueprint struct {
	bias       *LayerBlueprint
	input      *LayerBlueprint
	hidden     []*ActivationLayerBlueprint
	output     *ActivationLayerBlueprint
	connectors []ConnectorBlueprint
}

// NewNetworkBlueprint validates the given layers and derives the connectors between them. There are
// two connectors going into each hidden and output layer: the first from the bias layer, the second
// from the layer immediately before it.
//
// Errors are returned if any blueprint or activation function is nil (type NilArgError) or if any
// layer doesn't have a positive size (ErrNonPositiveSize).
func NewNetworkBlueprint(input *LayerBlueprint, hidden []*ActivationLayerBlueprint, output *ActivationLayerBlueprint) (*NetworkBlueprint, error) {
	if input == nil {
		return nil, NilArgError{"Input layer blueprint"}
	} else if output == nil {
		return nil, NilArgError{"Output layer blueprint"}
	}

	if input.neuronCount < 1 {
		return nil, errors.Wrapf(ErrNonPositiveSize, "Layer 0 (input) has %d neurons", input.neuronCount)
	}

	activationLayers := append(append([]*ActivationLayerBlueprint{}, hidden...), output)
	for i, l := range activationLayers {
		if l == nil {
			return nil, NilArgError{"Blueprint of layer " + strconv.Itoa(i+1)}
		} else if l.f == nil {
			return nil, NilArgError{"Activation function of layer " + strconv.Itoa(i+1)}
		} else if l.neuronCount < 1 {
			return nil, errors.Wrapf(ErrNonPositiveSize, "Layer %d has %d neurons", i+1, l.neuronCount)
		}
	}

	bp := &NetworkBlueprint{
		bias:   NewLayerBlueprint(1),
		input:  input,
		hidden: activationLayers[:len(hidden)],
		output: output,
	}

	bp.connectors = make([]ConnectorBlueprint, 0, 2*(len(hidden)+1))
	for target := 1; target < bp.LayerCount(); target++ {
		targetCount, _ := bp.LayerNeuronCount(target)
		sourceCount, _ := bp.LayerNeuronCount(target - 1)

		bp.connectors = append(bp.connectors,
			ConnectorBlueprint{-1, 1, target, targetCount},
			ConnectorBlueprint{target - 1, sourceCount, target, targetCount},
		)
	}

	return bp, nil
}

// LayerCount returns the number of input, hidden and output layers. The bias layer is not counted.
func (bp *NetworkBlueprint) LayerCount() int {
	return 1 + len(bp.hidden) + 1
}

// HiddenLayerCount returns the number of hidden layers.
func (bp *NetworkBlueprint) HiddenLayerCount() int {
	return len(bp.hidden)
}

// LayerNeuronCount returns the number of neurons in the layer at the given index: -1 is the bias
// layer (always 1), 0 is the input layer, 1 through LayerCount()-2 are the hidden layers, and
// LayerCount()-1 is the output layer. Any other index returns type LayerIndexError.
func (bp *NetworkBlueprint) LayerNeuronCount(index int) (int, error) {
	switch {
	case index == -1:
		return bp.bias.neuronCount, nil
	case index == 0:
		return bp.input.neuronCount, nil
	case 0 < index && index < bp.LayerCount()-1:
		return bp.hidden[index-1].neuronCount, nil
	case index == bp.LayerCount()-1:
		return bp.output.neuronCount, nil
	}

	return 0, LayerIndexError{index, bp.LayerCount()}
}

// InputLayer returns the blueprint of the input layer.
func (bp *NetworkBlueprint) InputLayer() *LayerBlueprint {
	return bp.input
}

// HiddenLayers returns a copy of the list of hidden layer blueprints.
func (bp *NetworkBlueprint) HiddenLayers() []*ActivationLayerBlueprint {
	hs := make([]*ActivationLayerBlueprint, len(bp.hidden))
	copy(hs, bp.hidden)
	return hs
}

// OutputLayer returns the blueprint of the output layer.
func (bp *NetworkBlueprint) OutputLayer() *ActivationLayerBlueprint {
	return bp.output
}

// ConnectorBlueprints returns a copy of the derived connectors, in the order they are created.
func (bp *NetworkBlueprint) ConnectorBlueprints() []ConnectorBlueprint {
	cs := make([]ConnectorBlueprint, len(bp.connectors))
	copy(cs, bp.connectors)
	return cs
}

// SynapseCount returns the total number of synapses (and so weights) that a Network built from the
// blueprint will have.
func (bp *NetworkBlueprint) SynapseCount() int {
	total := 0
	for _, c := range bp.connectors {
		total += c.SynapseCount()
	}

	return total
}

// Sizes returns the neuron counts of the input, hidden, and output layers, in order.
func (bp *NetworkBlueprint) Sizes() []int {
	sizes := make([]int, 0, bp.LayerCount())
	sizes = append(sizes, bp.input.neuronCount)
	for _, h := range bp.hidden {
		sizes = append(sizes, h.neuronCount)
	}

	return append(sizes, bp.output.neuronCount)
}

// Compatible returns whether or not the two blueprints have the same number of layers, each of the
// same size. Activation functions are not compared.
func (bp *NetworkBlueprint) Compatible(other *NetworkBlueprint) bool {
	if other == nil || bp.LayerCount() != other.LayerCount() {
		return false
	}

	for i := 0; i < bp.LayerCount(); i++ {
		a, _ := bp.LayerNeuronCount(i)
		b, _ := other.LayerNeuronCount(i)
		if a != b {
			return false
		}
	}

	return true
}

// String returns the blueprint in the form:
//	MLP(2, [2 logistic], 1 logistic)
func (bp *NetworkBlueprint) String() string {
	hs := make([]string, len(bp.hidden))
	for i, h := range bp.hidden {
		hs[i] = h.String()
	}

	return "MLP(" + bp.input.String() + ", [" + strings.Join(hs, ", ") + "], " + bp.output.String() + ")"
}
