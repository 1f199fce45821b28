package main

import (
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/activations"
	"strconv"
	"strings"
)

const defaultActivation string = "logistic"

// parseLayers turns a description like "2,4:tanh,1:linear" into a blueprint
func parseLayers(desc string) (*mlp.NetworkBlueprint, error) {
	parts := strings.Split(desc, ",")
	if len(parts) < 2 {
		return nil, errors.Errorf("Layers %q must have at least an input and an output layer", desc)
	}

	sizeOf := func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, errors.Errorf("Bad layer size %q", s)
		}

		return n, nil
	}

	if strings.Contains(parts[0], ":") {
		return nil, errors.Errorf("Input layer can't have an activation function")
	}

	inSize, err := sizeOf(parts[0])
	if err != nil {
		return nil, err
	}

	activationLayers := make([]*mlp.ActivationLayerBlueprint, len(parts)-1)
	for i, p := range parts[1:] {
		sizeStr, name := p, defaultActivation
		if j := strings.Index(p, ":"); j >= 0 {
			sizeStr, name = p[:j], strings.TrimSpace(p[j+1:])
		}

		size, err := sizeOf(sizeStr)
		if err != nil {
			return nil, err
		}

		f, err := activations.Get(name)
		if err != nil {
			return nil, errors.Wrapf(err, "Layer %d\n", i+1)
		}

		activationLayers[i] = mlp.NewActivationLayerBlueprint(size, f)
	}

	last := len(activationLayers) - 1
	return mlp.NewNetworkBlueprint(mlp.NewLayerBlueprint(inSize), activationLayers[:last], activationLayers[last])
}

func buildNetwork() (*mlp.Network, error) {
	bp, err := parseLayers(layersFlag)
	if err != nil {
		return nil, err
	}

	return mlp.NewNetwork(bp)
}
