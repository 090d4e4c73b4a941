package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fredyGabriel/base-tanque/internal/diagram"
	"github.com/fredyGabriel/base-tanque/internal/dq"
	"github.com/fredyGabriel/base-tanque/internal/pile"
	"github.com/fredyGabriel/base-tanque/internal/soil"
)

var (
	pileSPT        string
	pileSPTFile    string
	pileLength     float64
	pileDiameter   float64
	pileTipSoil    string
	pileShaftSoil  string
	pileMethod     string
	pileGammaTip   float64
	pileGammaShaft float64
	pileCurveFile  string
)

var pileCapacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Compute the admissible pile capacity",
	Long: `Compute the unit resistances and the admissible tip, shaft and
total capacities of a pile by the Decourt-Quaresma method.

For Strauss and bentonite excavations the credited tip capacity is
limited to a quarter of the shaft capacity (NBR-6122 8.2.1.2).

Examples:
  # 15 m bored pile, 40 cm, silty clay along tip and shaft
  base-tanque pile capacity --spt-file borings.csv -l 15 -d 0.40 \
      --tip-soil silty-clay --shaft-soil silty-clay --method strauss`,
	RunE: runPileCapacity,
}

func init() {
	pileCmd.AddCommand(pileCapacityCmd)

	pileCapacityCmd.Flags().StringVar(&pileSPT, "spt", "", "Comma-separated SPT blow counts, surface first")
	pileCapacityCmd.Flags().StringVar(&pileSPTFile, "spt-file", "", "SPT file (.csv or .xlsx), one boring per column")
	pileCapacityCmd.Flags().Float64VarP(&pileLength, "length", "l", 0, "Pile length (m) [required]")
	pileCapacityCmd.Flags().Float64VarP(&pileDiameter, "diameter", "d", 0, "Pile diameter (m) [required]")
	pileCapacityCmd.Flags().StringVar(&pileTipSoil, "tip-soil", "silty-clay", "Soil category at the pile tip")
	pileCapacityCmd.Flags().StringVar(&pileShaftSoil, "shaft-soil", "silty-clay", "Soil category along the shaft")
	pileCapacityCmd.Flags().StringVar(&pileMethod, "method", "strauss", "Installation method")
	pileCapacityCmd.Flags().Float64Var(&pileGammaTip, "gamma-p", pile.DefaultGammaTip, "Safety factor for tip capacity")
	pileCapacityCmd.Flags().Float64Var(&pileGammaShaft, "gamma-l", pile.DefaultGammaShaft, "Safety factor for shaft capacity")
	pileCapacityCmd.Flags().StringVarP(&pileCurveFile, "output", "o", "", "Export capacity-vs-length plot (png, svg, pdf)")

	pileCapacityCmd.MarkFlagRequired("length")
	pileCapacityCmd.MarkFlagRequired("diameter")
}

// buildPile assembles a pile from the shared CLI flags.
func buildPile(profile *soil.Profile) (*pile.Pile, error) {
	tip, err := dq.ParseSoil(pileTipSoil)
	if err != nil {
		return nil, err
	}
	shaft, err := dq.ParseSoil(pileShaftSoil)
	if err != nil {
		return nil, err
	}
	method, err := dq.ParseMethod(pileMethod)
	if err != nil {
		return nil, err
	}
	return pile.New(pile.Config{
		Length:     pileLength,
		Diameter:   pileDiameter,
		TipSoil:    tip,
		ShaftSoil:  shaft,
		Method:     method,
		GammaTip:   pileGammaTip,
		GammaShaft: pileGammaShaft,
		Profile:    profile,
	})
}

func runPileCapacity(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile(pileSPT, pileSPTFile)
	if err != nil {
		return err
	}
	p, err := buildPile(profile)
	if err != nil {
		return err
	}

	capacity, err := p.AdmissibleCapacity()
	if err != nil {
		return err
	}
	rp, err := p.TipUnitResistance()
	if err != nil {
		return err
	}
	rl, err := p.ShaftUnitResistance()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PILE CAPACITY - DECOURT-QUARESMA")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length:\t%.2f m\n", p.Length)
	fmt.Fprintf(w, "  Diameter:\t%.0f cm\n", p.Diameter*100)
	fmt.Fprintf(w, "  Tip soil:\t%s\n", p.TipSoil)
	fmt.Fprintf(w, "  Shaft soil:\t%s\n", p.ShaftSoil)
	fmt.Fprintf(w, "  Installation:\t%s\n", p.Method)
	fmt.Fprintf(w, "  γp / γL:\t%.2f / %.2f\n", p.GammaTip, p.GammaShaft)
	w.Flush()
	fmt.Println()

	fmt.Println("UNIT RESISTANCES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tip rp = K·Np:\t%.2f kPa\n", rp/1000)
	fmt.Fprintf(w, "  Shaft rL = 10(NL/3 + 1):\t%.2f kPa\n", rl/1000)
	w.Flush()
	fmt.Println()

	fmt.Println("ADMISSIBLE CAPACITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Tip:\t%.2f kN\n", capacity.Tip/1000)
	fmt.Fprintf(w, "  Shaft:\t%.2f kN\n", capacity.Shaft/1000)
	if capacity.CapApplied {
		fmt.Fprintf(w, "  Tip credited (NBR-6122 8.2.1.2):\t%.2f kN\n", capacity.TipUsed/1000)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  ADMISSIBLE CAPACITY = %.2f kN\n", capacity.Total/1000)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	if capacity.CapApplied {
		fmt.Println()
		fmt.Println("  Note: bored installation, tip contribution limited to 0.25·shaft.")
	}
	fmt.Println()

	if pileCurveFile != "" {
		if err := exportCapacityCurve(profile, p, pileCurveFile); err != nil {
			return fmt.Errorf("exporting capacity curve: %w", err)
		}
		fmt.Printf("Capacity curve exported to: %s\n", pileCurveFile)
	}

	return nil
}

// exportCapacityCurve samples the admissible capacity for every feasible
// whole-metre length up to the surveyed depth.
func exportCapacityCurve(profile *soil.Profile, base *pile.Pile, filename string) error {
	var points []diagram.CapacityPoint
	for l := 3; l <= profile.SurveyedDepth(); l++ {
		p, err := pile.New(pile.Config{
			Length:     float64(l),
			Diameter:   base.Diameter,
			TipSoil:    base.TipSoil,
			ShaftSoil:  base.ShaftSoil,
			Method:     base.Method,
			GammaTip:   base.GammaTip,
			GammaShaft: base.GammaShaft,
			Profile:    profile,
		})
		if err != nil {
			continue
		}
		total, err := p.AdmissibleTotal()
		if err != nil {
			continue
		}
		points = append(points, diagram.CapacityPoint{Length: float64(l), Capacity: total})
	}
	return diagram.ExportCapacityCurve(points, base.Length, filename)
}
