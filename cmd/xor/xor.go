package main

import (
	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/activations"
	"github.com/sharnoff/mlp/backprop"
	"github.com/sharnoff/mlp/initializers"

	"fmt"
)

const (
	// main hyperparameters
	maxRuns       int     = 10
	maxIterations int     = 100000
	tolerance     float64 = 1e-3
	seed          int64   = 1

	// where to save/load the weights
	path string = "xor-weights.txt"
)

func dataset() *mlp.TrainingSet {
	set, err := mlp.NewTrainingSet(2, 1)
	if err != nil {
		panic(err.Error())
	}

	data := [][][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	}

	for _, d := range data {
		if err = set.Add(mlp.NewTrainingPattern(d[0], d[1])); err != nil {
			panic(err.Error())
		}
	}

	return set
}

func setup() *mlp.Network {
	fmt.Println("Setting up network...")
	bp, err := mlp.NewNetworkBlueprint(
		mlp.NewLayerBlueprint(2),
		[]*mlp.ActivationLayerBlueprint{mlp.NewActivationLayerBlueprint(2, activations.Logistic())},
		mlp.NewActivationLayerBlueprint(1, activations.Logistic()),
	)
	if err != nil {
		panic(err.Error())
	}

	net, err := mlp.NewNetwork(bp)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println(bp)
	fmt.Println("Done!")
	return net
}

func train(net *mlp.Network, set *mlp.TrainingSet) {
	args := backprop.DefaultArgs()
	args.MaxRuns = maxRuns
	args.MaxIterations = maxIterations
	args.Tolerance = tolerance
	args.Init = initializers.Default(seed)
	args.Update = func(r backprop.Result) {
		fmt.Printf("run %d: %d iterations, error %g (best %g)\n", r.Run, r.Iterations, r.Error, r.Best)
	}

	fmt.Println("Starting training...")
	log, err := backprop.NewTeacher(set, nil, args).Train(net)
	if err != nil {
		panic(err.Error())
	}

	fmt.Println(log)
	fmt.Println("Done training!")
}

func test(net *mlp.Network, set *mlp.TrainingSet) {
	fmt.Println("Testing...")
	for _, p := range set.Patterns() {
		out, err := net.Evaluate(p.Input)
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("%s -> %s (expected %s)\n", mlp.VectorToString(p.Input), mlp.VectorToString(out), mlp.VectorToString(p.Output))
	}

	acc, err := net.Accuracy(set, mlp.CorrectRound)
	if err != nil {
		panic(err.Error())
	}

	fmt.Printf("Accuracy: %.0f%%\n", 100*acc)
}

func save(net *mlp.Network) {
	fmt.Println("Saving...")
	if err := net.SaveWeightsFile(path); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load() *mlp.Network {
	net := setup()

	fmt.Println("Loading...")
	if err := net.LoadWeightsFile(path); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func main() {
	set := dataset()

	net := setup()
	train(net, set)
	test(net, set)
	save(net)

	net = load()
	test(net, set)
}
