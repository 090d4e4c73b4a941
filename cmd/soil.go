package cmd

import (
	"github.com/spf13/cobra"
)

var soilCmd = &cobra.Command{
	Use:   "soil",
	Short: "SPT soil profile inspection",
	Long: `Inspect an SPT soil profile: adjusted blow counts, tip-zone and
shaft averages for a candidate pile length.

Blow counts are given one per metre of depth, surface first. When several
borings exist, average them first (or load them as columns of a file).

Subcommands:
  show  - Print the adjusted profile and the pile averages`,
}

func init() {
	rootCmd.AddCommand(soilCmd)
}
