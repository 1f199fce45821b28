// Command mlp trains and evaluates multilayer perceptrons stored as weight files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shared by every command
var layersFlag string

var rootCmd = &cobra.Command{
	Use:   "mlp",
	Short: "Train and evaluate multilayer perceptrons",
	Long: `mlp trains feed-forward neural networks by backpropagation and evaluates them.

Networks are described by their layers, as a comma-separated list of sizes. The first
is the input layer, the last is the output layer, and any in between are hidden layers.
Hidden and output layers can name their activation function after a colon:

  mlp train --layers 2,2:tanh,1:linear --data xor.txt --out weights.txt

Training sets and weights are plain text files.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&layersFlag, "layers", "l", "", "layer sizes and activations, e.g. 2,2:logistic,1:logistic")
	rootCmd.MarkPersistentFlagRequired("layers")

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(infoCmd)
}
