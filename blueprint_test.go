package mlp_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/activations"
)

func hidden(sizes ...int) []*mlp.ActivationLayerBlueprint {
	hs := make([]*mlp.ActivationLayerBlueprint, len(sizes))
	for i, s := range sizes {
		hs[i] = mlp.NewActivationLayerBlueprint(s, activations.Logistic())
	}
	return hs
}

func mustBlueprint(t *testing.T, in int, hs []int, out int, f mlp.ActivationFunction) *mlp.NetworkBlueprint {
	t.Helper()
	bp, err := mlp.NewNetworkBlueprint(mlp.NewLayerBlueprint(in), hidden(hs...), mlp.NewActivationLayerBlueprint(out, f))
	if err != nil {
		t.Fatalf("NewNetworkBlueprint: %v", err)
	}
	return bp
}

func TestNewNetworkBlueprintValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   *mlp.LayerBlueprint
		hidden  []*mlp.ActivationLayerBlueprint
		output  *mlp.ActivationLayerBlueprint
		wantErr error
		nilArg  bool
	}{
		{"valid", mlp.NewLayerBlueprint(2), hidden(3), mlp.NewActivationLayerBlueprint(1, activations.Linear()), nil, false},
		{"no hidden", mlp.NewLayerBlueprint(2), nil, mlp.NewActivationLayerBlueprint(1, activations.Linear()), nil, false},
		{"zero input", mlp.NewLayerBlueprint(0), nil, mlp.NewActivationLayerBlueprint(1, activations.Linear()), mlp.ErrNonPositiveSize, false},
		{"negative hidden", mlp.NewLayerBlueprint(2), hidden(-1), mlp.NewActivationLayerBlueprint(1, activations.Linear()), mlp.ErrNonPositiveSize, false},
		{"zero output", mlp.NewLayerBlueprint(2), hidden(2), mlp.NewActivationLayerBlueprint(0, activations.Linear()), mlp.ErrNonPositiveSize, false},
		{"nil input", nil, nil, mlp.NewActivationLayerBlueprint(1, activations.Linear()), nil, true},
		{"nil output", mlp.NewLayerBlueprint(2), nil, nil, nil, true},
		{"nil activation", mlp.NewLayerBlueprint(2), nil, mlp.NewActivationLayerBlueprint(1, nil), nil, true},
		{"nil hidden layer", mlp.NewLayerBlueprint(2), []*mlp.ActivationLayerBlueprint{nil}, mlp.NewActivationLayerBlueprint(1, activations.Linear()), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mlp.NewNetworkBlueprint(tt.input, tt.hidden, tt.output)

			switch {
			case tt.nilArg:
				if _, ok := errors.Cause(err).(mlp.NilArgError); !ok {
					t.Fatalf("expected NilArgError, got %v", err)
				}
			case tt.wantErr != nil:
				if errors.Cause(err) != tt.wantErr {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLayerNeuronCount(t *testing.T) {
	bp := mustBlueprint(t, 2, []int{3, 4}, 1, activations.Logistic())

	if bp.LayerCount() != 4 {
		t.Fatalf("expected 4 layers, got %d", bp.LayerCount())
	}

	tests := []struct {
		index int
		want  int
		fails bool
	}{
		{-2, 0, true},
		{-1, 1, false},
		{0, 2, false},
		{1, 3, false},
		{2, 4, false},
		{3, 1, false},
		{4, 0, true},
	}

	for _, tt := range tests {
		got, err := bp.LayerNeuronCount(tt.index)
		if tt.fails {
			if _, ok := err.(mlp.LayerIndexError); !ok {
				t.Fatalf("index %d: expected LayerIndexError, got %v", tt.index, err)
			}
			continue
		}

		if err != nil {
			t.Fatalf("index %d: unexpected error: %v", tt.index, err)
		} else if got != tt.want {
			t.Fatalf("index %d: expected %d neurons, got %d", tt.index, tt.want, got)
		}
	}
}

func TestConnectorBlueprints(t *testing.T) {
	bp := mustBlueprint(t, 2, []int{3}, 1, activations.Logistic())

	want := []mlp.ConnectorBlueprint{
		{SourceLayer: -1, SourceNeuronCount: 1, TargetLayer: 1, TargetNeuronCount: 3},
		{SourceLayer: 0, SourceNeuronCount: 2, TargetLayer: 1, TargetNeuronCount: 3},
		{SourceLayer: -1, SourceNeuronCount: 1, TargetLayer: 2, TargetNeuronCount: 1},
		{SourceLayer: 1, SourceNeuronCount: 3, TargetLayer: 2, TargetNeuronCount: 1},
	}

	got := bp.ConnectorBlueprints()
	if len(got) != len(want) {
		t.Fatalf("expected %d connectors, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("connector %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}

	// (1+2)*3 + (1+3)*1
	if bp.SynapseCount() != 13 {
		t.Fatalf("expected 13 synapses, got %d", bp.SynapseCount())
	}
}

func TestBlueprintCompatible(t *testing.T) {
	a := mustBlueprint(t, 2, []int{3}, 1, activations.Logistic())

	tests := []struct {
		name string
		b    *mlp.NetworkBlueprint
		want bool
	}{
		{"same sizes, other activation", mustBlueprint(t, 2, []int{3}, 1, activations.Tanh()), true},
		{"different hidden size", mustBlueprint(t, 2, []int{4}, 1, activations.Logistic()), false},
		{"extra layer", mustBlueprint(t, 2, []int{3, 3}, 1, activations.Logistic()), false},
		{"different input", mustBlueprint(t, 1, []int{3}, 1, activations.Logistic()), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Compatible(tt.b); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if !mlp.NewLayerBlueprint(3).Compatible(mlp.NewLayerBlueprint(3)) {
		t.Fatalf("layers of equal size should be compatible")
	}
	if mlp.NewLayerBlueprint(3).Compatible(mlp.NewLayerBlueprint(2)) {
		t.Fatalf("layers of different size should not be compatible")
	}
}

func TestBlueprintString(t *testing.T) {
	bp := mustBlueprint(t, 2, []int{2}, 1, activations.Logistic())
	if s := bp.String(); s != "MLP(2, [2 logistic], 1 logistic)" {
		t.Fatalf("unexpected string %q", s)
	}
}
