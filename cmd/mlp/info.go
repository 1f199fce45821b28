package main

import (
	"fmt"
	"strings"

	"github.com/sharnoff/mlp/activations"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe a network and its connectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		net, err := buildNetwork()
		if err != nil {
			return err
		}

		fmt.Println(net.Blueprint())
		fmt.Println(net)
		fmt.Printf("Synapses: %d\n", net.SynapseCount())

		fmt.Println("Connectors:")
		for _, c := range net.Connectors() {
			fmt.Printf("  %v: %d synapses\n", c, len(c.Synapses()))
		}

		fmt.Printf("Activation functions: %s\n", strings.Join(activations.Names(), ", "))
		return nil
	},
}
