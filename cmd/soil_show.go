package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fredyGabriel/base-tanque/internal/diagram"
)

var (
	soilSPT        string
	soilSPTFile    string
	soilPileLength float64
	soilShowChart  bool
	soilExportFile string
)

var soilShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the adjusted SPT profile and pile averages",
	Long: `Print the measured and adjusted SPT values per metre, and the
tip-zone and shaft averages for a candidate pile length.

Values below 3 blows are raised to 3 and values above 50 lowered to 50;
the empirical correlations are only validated inside that band.

Examples:
  # Inline blow counts, one per metre
  base-tanque soil show --spt 2,2,3,4,4,6,7,8,9,11 --length 8

  # Averaged borings from a spreadsheet, with a terminal chart
  base-tanque soil show --spt-file borings.xlsx --length 15 --chart`,
	RunE: runSoilShow,
}

func init() {
	soilCmd.AddCommand(soilShowCmd)

	soilShowCmd.Flags().StringVar(&soilSPT, "spt", "", "Comma-separated SPT blow counts, surface first")
	soilShowCmd.Flags().StringVar(&soilSPTFile, "spt-file", "", "SPT file (.csv or .xlsx), one boring per column")
	soilShowCmd.Flags().Float64VarP(&soilPileLength, "length", "l", 0, "Candidate pile length (m)")
	soilShowCmd.Flags().BoolVar(&soilShowChart, "chart", false, "Show terminal SPT chart")
	soilShowCmd.Flags().StringVarP(&soilExportFile, "output", "o", "", "Export profile plot to file (png, svg, pdf)")
}

func runSoilShow(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(soilSPT, soilSPTFile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SPT SOIL PROFILE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("MEASUREMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth (m)\tMeasured\tAdjusted [3,50]\n")
	raw := profile.Raw()
	adjusted := profile.Adjusted()
	for i := range raw {
		fmt.Fprintf(w, "  %d\t%.1f\t%.1f\n", i+1, raw[i], adjusted[i])
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Surveyed depth: %d m\n", profile.SurveyedDepth())
	fmt.Println()

	if soilPileLength > 0 {
		np, err := profile.TipAverage(soilPileLength)
		if err != nil {
			return err
		}
		nl, err := profile.ShaftAverage(soilPileLength)
		if err != nil {
			return err
		}

		fmt.Printf("PILE AVERAGES (L = %.1f m):\n", soilPileLength)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Tip-zone average Np:\t%.2f\n", np)
		fmt.Fprintf(w, "  Shaft average NL:\t%.2f\n", nl)
		w.Flush()
		fmt.Println()
	}

	if soilShowChart {
		fmt.Println(diagram.DrawSPTChart(adjusted))
	}

	if soilExportFile != "" {
		if err := diagram.ExportSoilProfile(profile, soilExportFile); err != nil {
			return fmt.Errorf("exporting profile plot: %w", err)
		}
		fmt.Printf("Profile plot exported to: %s\n", soilExportFile)
	}

	return nil
}
