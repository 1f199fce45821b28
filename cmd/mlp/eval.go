package main

import (
	"fmt"

	"github.com/sharnoff/mlp"
	"github.com/spf13/cobra"
)

var (
	evalWeights string
	evalData    string
	evalRound   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a trained network on a data set",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := buildNetwork()
		if err != nil {
			return err
		}

		if err = net.LoadWeightsFile(evalWeights); err != nil {
			return err
		}

		set, err := mlp.ReadTrainingSetFile(evalData)
		if err != nil {
			return err
		}

		for _, p := range set.Patterns() {
			out, err := net.Evaluate(p.Input)
			if err != nil {
				return err
			}

			fmt.Printf("%s -> %s (expected %s)\n", mlp.VectorToString(p.Input), mlp.VectorToString(out), mlp.VectorToString(p.Output))
		}

		netErr, err := net.CalculateError(set)
		if err != nil {
			return err
		}
		fmt.Printf("Error: %g\n", netErr)

		correct := mlp.CorrectHighest
		if evalRound {
			correct = mlp.CorrectRound
		}

		if set.Size() != 0 {
			acc, err := net.Accuracy(set, correct)
			if err != nil {
				return err
			}
			fmt.Printf("Accuracy: %.2f%%\n", 100*acc)
		}

		log := mlp.NewTrainingLog(0, 0, netErr)
		if set.Size() != 0 {
			if err = log.CalculateForecastAccuracy(net, set); err != nil {
				return err
			}
			fmt.Printf("RSS: %g, RSD: %g\n", log.RSSTestSet, log.RSDTestSet)
		}

		return nil
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalWeights, "weights", "w", "", "weights file to load")
	evalCmd.Flags().StringVarP(&evalData, "data", "d", "", "data set file")
	evalCmd.Flags().BoolVar(&evalRound, "round", false, "count outputs as correct when they round to the targets (default: highest output)")
	evalCmd.MarkFlagRequired("weights")
	evalCmd.MarkFlagRequired("data")
}
