// Package activations provides the activation functions for the hidden and output layers of
// mlp Networks. Every function here except Step also implements mlp.DerivableActivationFunction.
//
// Functions are registered by their TypeString so that they can be looked up by name, for example
// from the command line.
package activations

import (
	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"sort"
)

var registry map[string]func() mlp.ActivationFunction

func init() {
	list := []func() mlp.ActivationFunction{
		func() mlp.ActivationFunction { return LeakyReLU(DefaultLeak) },
		func() mlp.ActivationFunction { return Logistic() },
		func() mlp.ActivationFunction { return Softplus() },
		func() mlp.ActivationFunction { return Linear() },
		func() mlp.ActivationFunction { return ReLU() },
		func() mlp.ActivationFunction { return Tanh() },
		func() mlp.ActivationFunction { return Step() },
	}

	for _, f := range list {
		if err := Register(f); err != nil {
			panic(err)
		}
	}
}

// Register adds the activation function made by the given constructor to the registry, under its
// TypeString. Registering the same name twice returns an error.
func Register(f func() mlp.ActivationFunction) error {
	if f == nil {
		return errors.Errorf("Can't register activation function, constructor is nil")
	}

	a := f()
	if a == nil {
		return errors.Errorf("Can't register activation function, constructor returned nil")
	}

	if registry == nil {
		registry = make(map[string]func() mlp.ActivationFunction)
	}

	name := a.TypeString()
	if _, ok := registry[name]; ok {
		return errors.Errorf("Can't register activation function, name %q is already taken", name)
	}

	registry[name] = f
	return nil
}

// Get returns a new instance of the activation function registered under the given name.
func Get(name string) (mlp.ActivationFunction, error) {
	f, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("No activation function registered as %q", name)
	}

	return f(), nil
}

// Names returns the names of every registered activation function, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}
