package main

import (
	"fmt"

	"github.com/sharnoff/mlp"
	"github.com/sharnoff/mlp/backprop"
	"github.com/sharnoff/mlp/initializers"
	"github.com/spf13/cobra"
)

var (
	trainData       string
	trainTest       string
	trainSplitIndex int
	trainSplitSize  int
	trainArgsFile   string
	trainWeightsIn  string
	trainOut        string
	trainSeed       int64
	trainRuns       int
	trainIterations int
	trainTolerance  float64
	trainOnline     bool
	trainShuffle    bool
	trainJitter     float64
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a network by backpropagation",
	Long: `Train a network by backpropagation, keeping the weights of the best of several runs.

Training arguments can be given as a JSON file with --args; flags that are set explicitly
override the values from the file.

With --weights, every run starts from the loaded weights (plus noise, with --jitter) instead of
random ones, and the loaded weights are kept unless a run does better.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		net, err := buildNetwork()
		if err != nil {
			return err
		}

		set, err := mlp.ReadTrainingSetFile(trainData)
		if err != nil {
			return err
		}

		var test *mlp.TrainingSet
		if trainTest != "" {
			if test, err = mlp.ReadTrainingSetFile(trainTest); err != nil {
				return err
			}
		} else if trainSplitSize > 0 {
			if test, err = set.SeparateTestSet(trainSplitIndex, trainSplitSize); err != nil {
				return err
			}
		}

		args := backprop.DefaultArgs()
		if trainArgsFile != "" {
			if args, err = backprop.ReadArgsFile(trainArgsFile); err != nil {
				return err
			}
		}

		flags := cmd.Flags()
		if flags.Changed("runs") {
			args.MaxRuns = trainRuns
		}
		if flags.Changed("iterations") {
			args.MaxIterations = trainIterations
		}
		if flags.Changed("tolerance") {
			args.Tolerance = trainTolerance
		}
		if flags.Changed("online") {
			args.Online = trainOnline
		}

		src := initializers.NewSource(trainSeed)
		args.Init = initializers.Random(initializers.Uniform(src))
		if trainShuffle {
			args.Order = backprop.Shuffled(src)
		}

		args.Update = func(r backprop.Result) {
			fmt.Print(".")
		}

		if trainWeightsIn != "" {
			if err = net.LoadWeightsFile(trainWeightsIn); err != nil {
				return err
			}

			args.Restart = backprop.Jittered(src, trainJitter)
		}

		log, err := backprop.NewTeacher(set, test, args).Train(net)
		fmt.Println()
		if err != nil {
			return err
		}

		fmt.Println(log)

		if trainOut != "" {
			if err = net.SaveWeightsFile(trainOut); err != nil {
				return err
			}
			fmt.Printf("Saved weights to %s\n", trainOut)
		}

		return nil
	},
}

func init() {
	f := trainCmd.Flags()
	f.StringVarP(&trainData, "data", "d", "", "training set file")
	f.StringVar(&trainTest, "test", "", "test set file")
	f.IntVar(&trainSplitIndex, "split-index", 0, "first pattern of the training set to move into the test set")
	f.IntVar(&trainSplitSize, "split-size", 0, "number of patterns of the training set to move into the test set")
	f.StringVar(&trainArgsFile, "args", "", "JSON file of training arguments")
	f.StringVar(&trainWeightsIn, "weights", "", "weights file to start every run from")
	f.StringVarP(&trainOut, "out", "o", "", "file to save the trained weights to")
	f.Int64Var(&trainSeed, "seed", 1, "seed for weight initialization and shuffling")
	f.IntVar(&trainRuns, "runs", 1, "maximum number of runs")
	f.IntVar(&trainIterations, "iterations", 10000, "maximum number of iterations per run")
	f.Float64Var(&trainTolerance, "tolerance", 0, "error at which to stop training")
	f.BoolVar(&trainOnline, "online", false, "update weights after every pattern instead of once per iteration")
	f.BoolVar(&trainShuffle, "shuffle", false, "present patterns in a new random order every iteration")
	f.Float64Var(&trainJitter, "jitter", 0, "with --weights, add uniform noise in [-jitter, jitter] to the loaded weights at the start of each run")

	trainCmd.MarkFlagRequired("data")
}
