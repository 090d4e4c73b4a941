package cmd

import (
	"github.com/spf13/cobra"
)

var pileCmd = &cobra.Command{
	Use:   "pile",
	Short: "Pile axial capacity by the Decourt-Quaresma method",
	Long: `Compute the admissible axial capacity of a circular pile with the
Decourt-Quaresma method and the NBR-6122 8.2.1.2 tip limitation for
bored installations.

Soil categories: clay, silty-clay, sandy-silt, sand
Installation methods: driven, strauss, bentonite, cfa, root, injected

Subcommands:
  capacity  - Tip, shaft and total admissible capacity`,
}

func init() {
	rootCmd.AddCommand(pileCmd)
}
