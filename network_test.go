package mlp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/activations"
	"github.com/sharnoff/mlp/initializers"
)

func mustNetwork(t *testing.T, bp *mlp.NetworkBlueprint) *mlp.Network {
	t.Helper()
	net, err := mlp.NewNetwork(bp)
	if err != nil {
		t.Fatalf("NewNetwork: %v", err)
	}
	return net
}

func randomWeights(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	ws := make([]float64, n)
	for i := range ws {
		ws[i] = rng.NormFloat64() * 3
	}
	return ws
}

func TestNewNetworkTopology(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, []int{3}, 2, activations.Logistic()))

	if net.LayerCount() != 3 {
		t.Fatalf("expected 3 layers, got %d", net.LayerCount())
	}
	// (1+2)*3 + (1+3)*2
	if net.SynapseCount() != 17 {
		t.Fatalf("expected 17 synapses, got %d", net.SynapseCount())
	}
	if net.NeuronCount() != 1+2+3+2 {
		t.Fatalf("expected 8 neurons, got %d", net.NeuronCount())
	}

	bias := net.BiasLayer().Neurons()[0]
	if out := net.Neuron(bias).Output(); out != 1 {
		t.Fatalf("bias neuron should output 1, got %v", out)
	}

	if n := len(net.InputLayer().SourceConnectors()); n != 0 {
		t.Fatalf("input layer should have no source connectors, has %d", n)
	}

	for _, l := range append(net.HiddenLayers(), net.OutputLayer()) {
		cs := l.SourceConnectors()
		if len(cs) != 2 {
			t.Fatalf("layer %d should have 2 source connectors, has %d", l.Index(), len(cs))
		}
		if cs[0].Source() != net.BiasLayer() {
			t.Fatalf("first source connector of layer %d should come from the bias layer", l.Index())
		}
		prev, _ := net.Layer(l.Index() - 1)
		if cs[1].Source() != prev {
			t.Fatalf("second source connector of layer %d should come from the previous layer", l.Index())
		}

		for _, id := range l.Neurons() {
			ss := net.Neuron(id).SourceSynapses()
			if len(ss) != 1+prev.Size() {
				t.Fatalf("neuron %d should have %d source synapses, has %d", id, 1+prev.Size(), len(ss))
			}
			if net.Synapse(ss[0]).Source() != bias {
				t.Fatalf("first source synapse of neuron %d should come from the bias neuron", id)
			}
			for i, sid := range ss[1:] {
				if src := net.Synapse(sid).Source(); src != prev.Neurons()[i] {
					t.Fatalf("source synapse %d of neuron %d comes from %d, expected %d", i+1, id, src, prev.Neurons()[i])
				}
				if net.Synapse(sid).Target() != id {
					t.Fatalf("source synapse of neuron %d has the wrong target", id)
				}
			}
		}
	}

	if _, err := net.Layer(3); err == nil {
		t.Fatalf("expected error for out of range layer")
	}
}

func TestEvaluateSizeMismatch(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, nil, 1, activations.Linear()))

	_, err := net.Evaluate([]float64{1, 2, 3})
	if e, ok := errors.Cause(err).(mlp.SizeMismatchError); !ok || e.Expected != 2 || e.Got != 3 {
		t.Fatalf("expected SizeMismatchError{2, 3}, got %v", err)
	}
}

func TestEvaluateLinear(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, nil, 1, activations.Linear()))

	// bias, x0, x1
	if err := net.SetWeights([]float64{0.5, 2, -3}); err != nil {
		t.Fatal(err)
	}

	out, err := net.Evaluate([]float64{1, 4})
	if err != nil {
		t.Fatal(err)
	}
	if want := 0.5 + 2*1 - 3*4.0; out[0] != want {
		t.Fatalf("expected %v, got %v", want, out[0])
	}

	outID := net.OutputLayer().Neurons()[0]
	if p := net.Neuron(outID).Potential(); p != out[0] {
		t.Fatalf("potential should be cached as %v, got %v", out[0], p)
	}

	out[0] = 100
	if again := net.Outputs(); again[0] == 100 {
		t.Fatalf("Evaluate should return a copy of the outputs")
	}
}

func TestZeroWeightErrorBaseline(t *testing.T) {
	set, err := mlp.NewTrainingSet(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	set.Add(mlp.NewTrainingPattern([]float64{1, 2}, []float64{0.5, -1}))
	set.Add(mlp.NewTrainingPattern([]float64{-3, 0}, []float64{2, 0}))

	// 0.5 * (0.25 + 1 + 4 + 0)
	const want = 2.625

	for _, f := range []mlp.ActivationFunction{activations.Tanh(), activations.Linear()} {
		t.Run(f.TypeString(), func(t *testing.T) {
			net := mustNetwork(t, mustBlueprint(t, 2, []int{3}, 2, f))
			if err := net.Initialize(initializers.Constant(0)); err != nil {
				t.Fatal(err)
			}

			got, err := net.CalculateError(set)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got-want) > 1e-12 {
				t.Fatalf("expected error %v, got %v", want, got)
			}
		})
	}
}

func TestCalculateErrorSchemaMismatch(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, nil, 1, activations.Linear()))
	set, _ := mlp.NewTrainingSet(3, 1)

	_, err := net.CalculateError(set)
	if _, ok := errors.Cause(err).(mlp.SizeMismatchError); !ok {
		t.Fatalf("expected SizeMismatchError, got %v", err)
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 3, []int{4, 2}, 2, activations.Tanh()))

	ws := randomWeights(net.SynapseCount(), 7)
	ws[0] = math.SmallestNonzeroFloat64
	ws[1] = -math.MaxFloat64
	ws[2] = math.Copysign(0, -1)

	if err := net.SetWeights(ws); err != nil {
		t.Fatal(err)
	}

	got := net.Weights()
	if len(got) != len(ws) {
		t.Fatalf("expected %d weights, got %d", len(ws), len(got))
	}
	for i := range ws {
		if math.Float64bits(got[i]) != math.Float64bits(ws[i]) {
			t.Fatalf("weight %d: expected %v, got %v", i, ws[i], got[i])
		}
	}

	if err := net.SetWeights(ws[1:]); err == nil {
		t.Fatalf("expected error for wrong number of weights")
	} else if _, ok := err.(mlp.SizeMismatchError); !ok {
		t.Fatalf("expected SizeMismatchError, got %v", err)
	}
}

func TestCanonicalOrder(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, []int{3, 2}, 2, activations.Logistic()))

	ws := make([]float64, net.SynapseCount())
	for i := range ws {
		ws[i] = float64(i)
	}
	if err := net.SetWeights(ws); err != nil {
		t.Fatal(err)
	}

	// hidden layers, then output; neuron by neuron; bias synapse first then previous layer in order
	i := 0
	for _, l := range append(net.HiddenLayers(), net.OutputLayer()) {
		for _, id := range l.Neurons() {
			for _, sid := range net.Neuron(id).SourceSynapses() {
				if w := net.Synapse(sid).Weight(); w != float64(i) {
					t.Fatalf("synapse %v should have weight %d, has %v", net.Synapse(sid), i, w)
				}
				i++
			}
		}
	}

	// the first weight of the first neuron of the second hidden layer is its bias weight, and comes
	// after the 3 * (1+2) weights of the first hidden layer
	h2 := net.HiddenLayers()[1].Neurons()[0]
	first := net.Neuron(h2).SourceSynapses()[0]
	if w := net.Synapse(first).Weight(); w != 9 {
		t.Fatalf("expected weight 9, got %v", w)
	}
	if net.Synapse(first).Source() != net.BiasLayer().Neurons()[0] {
		t.Fatalf("expected bias synapse")
	}

	// the last weight is the synapse from the last neuron of the second hidden layer into the last
	// output neuron
	outs := net.OutputLayer().Neurons()
	ss := net.Neuron(outs[len(outs)-1]).SourceSynapses()
	if w := net.Synapse(ss[len(ss)-1]).Weight(); w != float64(len(ws)-1) {
		t.Fatalf("expected weight %d, got %v", len(ws)-1, w)
	}
}

func TestInitialize(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, []int{3}, 1, activations.Logistic()))

	if err := net.Initialize(nil); err == nil {
		t.Fatalf("expected error for nil initializer")
	}

	if err := net.Initialize(initializers.Default(3)); err != nil {
		t.Fatal(err)
	}
	first := net.Weights()
	for i, w := range first {
		if w < initializers.DefaultLower || w > initializers.DefaultUpper {
			t.Fatalf("weight %d out of range: %v", i, w)
		}
	}

	if _, err := net.Evaluate([]float64{1, 1}); err != nil {
		t.Fatal(err)
	}

	if err := net.Initialize(initializers.Default(3)); err != nil {
		t.Fatal(err)
	}
	second := net.Weights()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed should give same weights")
		}
	}

	for _, id := range net.OutputLayer().Neurons() {
		if n := net.Neuron(id); n.Output() != 0 || n.Potential() != 0 {
			t.Fatalf("neuron state should be reset")
		}
	}
	if out := net.Neuron(net.BiasLayer().Neurons()[0]).Output(); out != 1 {
		t.Fatalf("bias output should stay 1, got %v", out)
	}
}

func TestJitter(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 2, []int{2}, 1, activations.Logistic()))
	if err := net.Initialize(initializers.Constant(0.5)); err != nil {
		t.Fatal(err)
	}

	if err := net.Jitter(rand.New(rand.NewSource(1)), 0.1); err != nil {
		t.Fatal(err)
	}

	changed := false
	for _, w := range net.Weights() {
		if math.Abs(w-0.5) > 0.1 {
			t.Fatalf("weight %v outside of jitter range", w)
		}
		if w != 0.5 {
			changed = true
		}
	}
	if !changed {
		t.Fatalf("jitter should change weights")
	}
}

func TestAccuracy(t *testing.T) {
	net := mustNetwork(t, mustBlueprint(t, 1, nil, 1, activations.Linear()))
	// output = input
	if err := net.SetWeights([]float64{0, 1}); err != nil {
		t.Fatal(err)
	}

	set, _ := mlp.NewTrainingSet(1, 1)
	set.Add(mlp.NewTrainingPattern([]float64{0.9}, []float64{1}))
	set.Add(mlp.NewTrainingPattern([]float64{0.2}, []float64{0}))
	set.Add(mlp.NewTrainingPattern([]float64{0.6}, []float64{0}))
	set.Add(mlp.NewTrainingPattern([]float64{0.4}, []float64{1}))

	acc, err := net.Accuracy(set, mlp.CorrectRound)
	if err != nil {
		t.Fatal(err)
	}
	if acc != 0.5 {
		t.Fatalf("expected accuracy 0.5, got %v", acc)
	}
}
