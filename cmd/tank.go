package cmd

import (
	"github.com/spf13/cobra"
)

var tankCmd = &cobra.Command{
	Use:   "tank",
	Short: "Cup tank wind loads and base reactions",
	Long: `Compute the base reactions of a catalogue cup-type elevated water
tank under a power-law wind profile: horizontal shear, overturning
moment and gravity loads.

Catalogue capacities: 15, 20, 30 and 60 m³.

Subcommands:
  loads  - Base reactions, raw and factored`,
}

func init() {
	rootCmd.AddCommand(tankCmd)
}
