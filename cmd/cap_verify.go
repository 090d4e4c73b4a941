package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fredyGabriel/base-tanque/internal/diagram"
	"github.com/fredyGabriel/base-tanque/internal/pilecap"
)

var (
	capPiles    int
	capSide     float64
	capHeight   float64
	capOverhang float64
	capLoadN    float64
	capLoadH    float64
	capLoadM    float64
	capShowPlan bool
)

var capVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the pile group under a square cap",
	Long: `Compute the governing per-pile load under the factored loads
(vertical + wind shear + overturning moment), the minimum cap width,
and the pass/fail verdict against the admissible pile capacity.

Loads must already carry their partial factors. Two hypotheses are
evaluated and the governing maximum taken: full tank with wind, and
gravity only.

Examples:
  base-tanque cap verify --piles 5 -B 3.5 --height 1.0 --overhang 0.3 \
      --spt-file borings.csv -l 15 -d 0.40 --method strauss \
      -N 518000 -H 26000 -M 243000`,
	RunE: runCapVerify,
}

func init() {
	capCmd.AddCommand(capVerifyCmd)

	capVerifyCmd.Flags().IntVar(&capPiles, "piles", 4, "Pile count: 4, 5 or 9")
	capVerifyCmd.Flags().Float64VarP(&capSide, "side", "B", 0, "Cap side B (m) [required]")
	capVerifyCmd.Flags().Float64Var(&capHeight, "height", 1.0, "Cap height h (m)")
	capVerifyCmd.Flags().Float64Var(&capOverhang, "overhang", 0.3, "Overhang v from outer pile face (m)")
	capVerifyCmd.Flags().Float64VarP(&capLoadN, "vertical", "N", 0, "Factored vertical load N (N) [required]")
	capVerifyCmd.Flags().Float64VarP(&capLoadH, "shear", "H", 0, "Factored horizontal load H (N)")
	capVerifyCmd.Flags().Float64VarP(&capLoadM, "moment", "M", 0, "Factored base moment M (N·m)")
	capVerifyCmd.Flags().BoolVar(&capShowPlan, "plan", false, "Show ASCII plan view of the cap")

	// Pile and soil flags shared with `pile capacity`
	capVerifyCmd.Flags().StringVar(&pileSPT, "spt", "", "Comma-separated SPT blow counts, surface first")
	capVerifyCmd.Flags().StringVar(&pileSPTFile, "spt-file", "", "SPT file (.csv or .xlsx), one boring per column")
	capVerifyCmd.Flags().Float64VarP(&pileLength, "length", "l", 0, "Pile length (m) [required]")
	capVerifyCmd.Flags().Float64VarP(&pileDiameter, "diameter", "d", 0, "Pile diameter (m) [required]")
	capVerifyCmd.Flags().StringVar(&pileTipSoil, "tip-soil", "silty-clay", "Soil category at the pile tip")
	capVerifyCmd.Flags().StringVar(&pileShaftSoil, "shaft-soil", "silty-clay", "Soil category along the shaft")
	capVerifyCmd.Flags().StringVar(&pileMethod, "method", "strauss", "Installation method")

	capVerifyCmd.MarkFlagRequired("side")
	capVerifyCmd.MarkFlagRequired("vertical")
	capVerifyCmd.MarkFlagRequired("length")
	capVerifyCmd.MarkFlagRequired("diameter")
}

func runCapVerify(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(pileSPT, pileSPTFile)
	if err != nil {
		return err
	}
	p, err := buildPile(profile)
	if err != nil {
		return err
	}
	layout, err := pilecap.ParseLayout(capPiles)
	if err != nil {
		return err
	}
	c, err := pilecap.New(pilecap.Config{
		Layout: layout,
		Pile:   p,
		B:      capSide,
		H:      capHeight,
		V:      capOverhang,
		N:      capLoadN,
		F:      capLoadH,
		M:      capLoadM,
	})
	if err != nil {
		return err
	}

	verdict, err := c.Verify()
	if err != nil {
		return err
	}

	printCapVerdict(c, verdict)

	if capShowPlan {
		fmt.Println(diagram.DrawCapPlan(diagram.CapPlanData{
			Layout:   layout,
			Side:     c.B,
			Overhang: c.V,
			Diameter: p.Diameter,
		}))
	}

	return nil
}

func printCapVerdict(c *pilecap.Cap, verdict pilecap.Verdict) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SQUARE PILE CAP VERIFICATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("CAP DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layout:\t%s\n", c.Layout)
	fmt.Fprintf(w, "  Adopted side B:\t%.2f m\n", c.B)
	fmt.Fprintf(w, "  Height h:\t%.2f m\n", c.H)
	fmt.Fprintf(w, "  Self weight:\t%.2f kN\n", c.Weight()/1000)
	fmt.Fprintf(w, "  Min. pile spacing:\t%.2f m\n", c.MinSpacing())
	w.Flush()
	fmt.Println()

	fmt.Println("RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Minimum required side:\t%.2f m\n", verdict.MinimumWidth)
	fmt.Fprintf(w, "  Governing pile load:\t%.2f kN\n", verdict.MaxPileLoad/1000)
	fmt.Fprintf(w, "  Admissible pile capacity:\t%.2f kN\n", verdict.PileCapacity/1000)
	fmt.Fprintf(w, "  Margin:\t%.2f kN\n", verdict.Margin/1000)
	okStr := map[bool]string{true: "OK", false: "NOT OK"}
	fmt.Fprintf(w, "  Width check:\t%s\n", okStr[verdict.WidthOK])
	fmt.Fprintf(w, "  Spacing check:\t%s\n", okStr[verdict.SpacingOK])
	w.Flush()
	fmt.Println()

	if verdict.Passed {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  VERIFICATION PASSED                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	} else {
		fmt.Println("  ╔═════════════════════════════════════════╗")
		fmt.Println("  ║  VERIFICATION FAILED                    ║")
		fmt.Println("  ╚═════════════════════════════════════════╝")
	}
	fmt.Println()
	fmt.Printf("  Status: %s\n", verdict.Message)
	fmt.Println()
}
