package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredyGabriel/base-tanque/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "base-tanque",
	Short:        "Cup tank deep foundation verification tool",
	SilenceUsage: true,
	Long: `base-tanque - Elevated Cup Tank Foundation Verifier

A CLI tool for the geotechnical and structural verification of
pile groups supporting cup-type elevated water tanks.

This tool helps structural and geotechnical engineers perform:
  - Wind load integration over the tank shaft and cup
  - Pile axial capacity by the Decourt-Quaresma method
  - NBR-6122 tip-capacity limitation for bored piles
  - Pile-cap sizing and per-pile load distribution
  - Pass/fail compliance verification

All units are SI without multiples: metres, newtons, pascals.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   base-tanque v%-43s║\n", version.Version)
		fmt.Println("  ║   Elevated Cup Tank Foundation Verifier                   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the verification of deep foundations under")
		fmt.Println("  cup-type elevated water tanks.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • SPT soil profile inspection and averaging")
		fmt.Println("    • Pile capacity by the Decourt-Quaresma method")
		fmt.Println("    • Pile-cap load distribution for 4, 5 and 9 pile groups")
		fmt.Println("    • Wind base reactions from the tank catalogue")
		fmt.Println("    • Full verification chain with PDF report")
		fmt.Println()
		fmt.Println("  Use 'base-tanque --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
