package backprop

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/activations"
	"github.com/sharnoff/mlp/hyperparams"
	"gonum.org/v1/gonum/diff/fd"
)

func newNetwork(t *testing.T, in int, hidden []int, out int, hf, of mlp.ActivationFunction) *mlp.Network {
	t.Helper()

	hs := make([]*mlp.ActivationLayerBlueprint, len(hidden))
	for i, s := range hidden {
		hs[i] = mlp.NewActivationLayerBlueprint(s, hf)
	}

	bp, err := mlp.NewNetworkBlueprint(mlp.NewLayerBlueprint(in), hs, mlp.NewActivationLayerBlueprint(out, of))
	if err != nil {
		t.Fatal(err)
	}

	net, err := mlp.NewNetwork(bp)
	if err != nil {
		t.Fatal(err)
	}
	return net
}

func newSet(t *testing.T, in, out int, data ...[]float64) *mlp.TrainingSet {
	t.Helper()

	set, err := mlp.NewTrainingSet(in, out)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range data {
		if err = set.Add(mlp.NewTrainingPattern(d[:in], d[in:])); err != nil {
			t.Fatal(err)
		}
	}
	return set
}

// plainArgs gives plain gradient descent: no momentum, and learning rates that never change
func plainArgs(lr float64) Args {
	args := DefaultArgs()
	args.InitialLearningRate = lr
	args.Momentum = hyperparams.Constant(0)
	args.Growth = hyperparams.Constant(1)
	args.Shrink = hyperparams.Constant(1)
	return args
}

func TestClosedFormGradientStep(t *testing.T) {
	net := newNetwork(t, 1, nil, 1, nil, activations.Linear())
	set := newSet(t, 1, 1, []float64{2, 1}, []float64{-1, 0.5})

	const lr = 0.1
	w0, w1 := 0.3, -0.2

	bn, err := Decorate(net, plainArgs(lr))
	if err != nil {
		t.Fatal(err)
	}
	defer bn.Undecorate()

	// bias, input
	if err = bn.SetWeights([]float64{w0, w1}); err != nil {
		t.Fatal(err)
	}

	// E = 0.5 * sum (w0 + w1*x - y)^2
	var g0, g1 float64
	for _, p := range set.Patterns() {
		d := w0 + w1*p.Input[0] - p.Output[0]
		g0 += d
		g1 += d * p.Input[0]
	}

	if err = bn.Iterate(set); err != nil {
		t.Fatal(err)
	}

	ws := bn.Weights()
	if want := w0 - lr*g0; math.Abs(ws[0]-want) > 1e-12 {
		t.Fatalf("bias weight: expected %v, got %v", want, ws[0])
	}
	if want := w1 - lr*g1; math.Abs(ws[1]-want) > 1e-12 {
		t.Fatalf("input weight: expected %v, got %v", want, ws[1])
	}
}

func TestOnlineUpdatesPerPattern(t *testing.T) {
	net := newNetwork(t, 1, nil, 1, nil, activations.Linear())
	set := newSet(t, 1, 1, []float64{1, 1}, []float64{1, 1})

	args := plainArgs(0.5)
	args.Online = true

	bn, err := Decorate(net, args)
	if err != nil {
		t.Fatal(err)
	}
	defer bn.Undecorate()

	bn.SetWeights([]float64{0, 0})
	if err = bn.Iterate(set); err != nil {
		t.Fatal(err)
	}

	// first pattern: d = -1, w = (0.5, 0.5); second: out = 1, d = 0, no change
	ws := bn.Weights()
	if ws[0] != 0.5 || ws[1] != 0.5 {
		t.Fatalf("expected weights [0.5 0.5], got %v", ws)
	}
}

func TestMomentumAndAdaptiveRate(t *testing.T) {
	net := newNetwork(t, 1, nil, 1, nil, activations.Linear())

	args := DefaultArgs()
	args.InitialLearningRate = 0.1

	bn, err := Decorate(net, args)
	if err != nil {
		t.Fatal(err)
	}
	defer bn.Undecorate()

	bn.SetWeights([]float64{0, 0})

	// two updates with the same accumulated error
	s := bn.overlay.Synapse(0)
	for i := 0; i < 2; i++ {
		bn.ResetSynapseErrors()
		s.accumulatedError = 1
		bn.UpdateSynapseWeights()
	}

	// first: change -0.1, previous 0 -> rate shrinks to 0.05
	// second: change -0.05, previous -0.1 -> weight += -0.05 + 0.9*-0.1, rate grows
	w := net.Synapse(0).Weight()
	if want := -0.1 + -0.05 + 0.9*-0.1; math.Abs(w-want) > 1e-12 {
		t.Fatalf("expected weight %v, got %v", want, w)
	}
	if want := 0.05 * DefaultGrowth; math.Abs(s.learningRate-want) > 1e-12 {
		t.Fatalf("expected learning rate %v, got %v", want, s.learningRate)
	}
}

// canonical returns the synapse IDs in the order used by Weights
func canonical(net *mlp.Network) []mlp.SynapseID {
	var ids []mlp.SynapseID
	for _, l := range append(net.HiddenLayers(), net.OutputLayer()) {
		for _, n := range l.Neurons() {
			ids = append(ids, net.Neuron(n).SourceSynapses()...)
		}
	}
	return ids
}

func TestGradientMatchesFiniteDifferences(t *testing.T) {
	tests := []struct {
		name   string
		hidden []int
		hf, of mlp.ActivationFunction
	}{
		{"logistic", []int{3}, activations.Logistic(), activations.Logistic()},
		{"tanh linear", []int{4, 3}, activations.Tanh(), activations.Linear()},
		{"softplus tanh", []int{2}, activations.Softplus(), activations.Tanh()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := newNetwork(t, 2, tt.hidden, 2, tt.hf, tt.of)
			set := newSet(t, 2, 2,
				[]float64{0.5, -1, 0.2, 0.8},
				[]float64{-0.3, 0.7, -0.5, 0.1},
				[]float64{1, 1, 0.9, -0.4},
			)

			rng := rand.New(rand.NewSource(2))
			ws := make([]float64, net.SynapseCount())
			for i := range ws {
				ws[i] = rng.Float64()*2 - 1
			}

			bn, err := Decorate(net, DefaultArgs())
			if err != nil {
				t.Fatal(err)
			}
			defer bn.Undecorate()

			bn.SetWeights(ws)
			bn.ResetSynapseErrors()
			for _, p := range set.Patterns() {
				if _, err = bn.Evaluate(p.Input); err != nil {
					t.Fatal(err)
				}
				if err = bn.Backpropagate(p.Output); err != nil {
					t.Fatal(err)
				}
			}

			errorAt := func(x []float64) float64 {
				if err := net.SetWeights(x); err != nil {
					t.Fatal(err)
				}
				e, err := net.CalculateError(set)
				if err != nil {
					t.Fatal(err)
				}
				return e
			}

			want := fd.Gradient(nil, errorAt, ws, &fd.Settings{Formula: fd.Central})

			for i, id := range canonical(net) {
				got := bn.overlay.Synapse(id).accumulatedError
				if math.Abs(got-want[i]) > 1e-6 {
					t.Fatalf("weight %d: backpropagated gradient %v, finite differences %v", i, got, want[i])
				}
			}
		})
	}
}

func TestDecorateRejectsNonDerivable(t *testing.T) {
	net := newNetwork(t, 2, []int{2}, 1, activations.Step(), activations.Logistic())

	_, err := Decorate(net, DefaultArgs())
	if errors.Cause(err) != mlp.ErrNotDerivable {
		t.Fatalf("expected ErrNotDerivable, got %v", err)
	}
	if net.Decorated() {
		t.Fatalf("Network should not be decorated after a failed Decorate")
	}
}

func TestDecorateTwice(t *testing.T) {
	net := newNetwork(t, 2, nil, 1, nil, activations.Logistic())

	bn, err := Decorate(net, DefaultArgs())
	if err != nil {
		t.Fatal(err)
	}

	if _, err = Decorate(net, DefaultArgs()); errors.Cause(err) != mlp.ErrAlreadyDecorated {
		t.Fatalf("expected ErrAlreadyDecorated, got %v", err)
	}

	got, err := bn.Undecorate()
	if err != nil {
		t.Fatal(err)
	}
	if got != net {
		t.Fatalf("Undecorate should return the same Network")
	}
}

func TestBackpropagateSizeMismatch(t *testing.T) {
	net := newNetwork(t, 1, nil, 2, nil, activations.Linear())

	bn, err := Decorate(net, DefaultArgs())
	if err != nil {
		t.Fatal(err)
	}
	defer bn.Undecorate()

	bn.Evaluate([]float64{1})
	if err = bn.Backpropagate([]float64{1}); err == nil {
		t.Fatalf("expected error for wrong number of desired outputs")
	}
}
