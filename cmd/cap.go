package cmd

import (
	"github.com/spf13/cobra"
)

var capCmd = &cobra.Command{
	Use:   "cap",
	Short: "Square pile-cap sizing and verification",
	Long: `Distribute the factored tank loads over a 4, 5 or 9 pile group
under a square cap and verify the governing pile load against the
admissible pile capacity.

Subcommands:
  verify  - Per-pile governing load, minimum width and verdict`,
}

func init() {
	rootCmd.AddCommand(capCmd)
}
