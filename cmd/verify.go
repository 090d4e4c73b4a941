package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fredyGabriel/base-tanque/internal/dq"
	"github.com/fredyGabriel/base-tanque/internal/pilecap"
	"github.com/fredyGabriel/base-tanque/internal/report"
	"github.com/fredyGabriel/base-tanque/internal/tank"
)

var (
	verifyWindSpeed  float64
	verifyCapacity   int
	verifyReportFile string
	verifyProject    string
	verifyAuthor     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the full verification chain",
	Long: `Run the complete verification chain for a cup tank on a pile
group: wind integration, tank base reactions, ULS load combination,
Decourt-Quaresma pile capacity, pile-cap load distribution and the
compliance verdict.

Examples:
  base-tanque verify --wind 50 --capacity 30 \
      --spt-file borings.csv -l 15 -d 0.40 --method strauss \
      --piles 5 -B 3.5 --height 1.0 --report tank30.pdf`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().Float64VarP(&verifyWindSpeed, "wind", "w", 50, "Basic wind speed (m/s)")
	verifyCmd.Flags().IntVarP(&verifyCapacity, "capacity", "c", 20, "Tank capacity (m³): 15, 20, 30 or 60")

	verifyCmd.Flags().StringVar(&pileSPT, "spt", "", "Comma-separated SPT blow counts, surface first")
	verifyCmd.Flags().StringVar(&pileSPTFile, "spt-file", "", "SPT file (.csv or .xlsx), one boring per column")
	verifyCmd.Flags().Float64VarP(&pileLength, "length", "l", 0, "Pile length (m) [required]")
	verifyCmd.Flags().Float64VarP(&pileDiameter, "diameter", "d", 0, "Pile diameter (m) [required]")
	verifyCmd.Flags().StringVar(&pileTipSoil, "tip-soil", "silty-clay", "Soil category at the pile tip")
	verifyCmd.Flags().StringVar(&pileShaftSoil, "shaft-soil", "silty-clay", "Soil category along the shaft")
	verifyCmd.Flags().StringVar(&pileMethod, "method", "strauss", "Installation method")

	verifyCmd.Flags().IntVar(&capPiles, "piles", 4, "Pile count: 4, 5 or 9")
	verifyCmd.Flags().Float64VarP(&capSide, "side", "B", 0, "Cap side B (m) [required]")
	verifyCmd.Flags().Float64Var(&capHeight, "height", 1.0, "Cap height h (m)")
	verifyCmd.Flags().Float64Var(&capOverhang, "overhang", 0.3, "Overhang v from outer pile face (m)")

	verifyCmd.Flags().StringVar(&verifyReportFile, "report", "", "Write a PDF calculation report")
	verifyCmd.Flags().StringVar(&verifyProject, "project", "", "Project name for the report")
	verifyCmd.Flags().StringVar(&verifyAuthor, "engineer", "", "Engineer name for the report")

	verifyCmd.MarkFlagRequired("length")
	verifyCmd.MarkFlagRequired("diameter")
	verifyCmd.MarkFlagRequired("side")
}

func runVerify(cmd *cobra.Command, args []string) error {
	// Wind and tank
	wind := tank.NewWind(verifyWindSpeed)
	t, err := tank.New(wind, verifyCapacity)
	if err != nil {
		return err
	}
	shear, moment := t.Reactions()
	n, fh, fm, combo := dq.Governing(dq.BaseLoads{
		Permanent: t.SelfWeight(),
		Water:     t.WaterWeight(),
		Shear:     shear,
		Moment:    moment,
	}, dq.ULSCombinations)

	// Pile
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

	// Cap
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
		N:      n,
		F:      fh,
		M:      fm,
	})
	if err != nil {
		return err
	}
	verdict, err := c.Verify()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CUP TANK FOUNDATION - FULL VERIFICATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("FACTORED LOADS AT FOUNDATION BASE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination:\t%s\n", combo.Description)
	fmt.Fprintf(w, "  Vertical load N:\t%.2f kN\n", n/1000)
	fmt.Fprintf(w, "  Horizontal shear H:\t%.2f kN\n", fh/1000)
	fmt.Fprintf(w, "  Overturning moment M:\t%.2f kN·m\n", fm/1000)
	w.Flush()
	fmt.Println()

	fmt.Println("PILE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length / diameter:\t%.2f m / %.0f cm\n", p.Length, p.Diameter*100)
	fmt.Fprintf(w, "  Installation:\t%s\n", p.Method)
	fmt.Fprintf(w, "  Admissible capacity:\t%.2f kN\n", capacity.Total/1000)
	w.Flush()

	printCapVerdict(c, verdict)

	if verifyReportFile != "" {
		data := report.Data{
			Project:      verifyProject,
			Author:       verifyAuthor,
			WindSpeed:    wind.BasicSpeed,
			Pressure10:   wind.Pressure10(),
			TankCapacity: t.Capacity,
			GravityLoad:  n,
			Shear:        fh,
			Moment:       fm,
			Combination:  combo.Description,
			PileLength:   p.Length,
			PileDiameter: p.Diameter,
			Method:       p.Method.String(),
			TipSoil:      p.TipSoil.String(),
			ShaftSoil:    p.ShaftSoil.String(),
			Capacity:     capacity,
			CapSide:      c.B,
			CapHeight:    c.H,
			Layout:       layout.String(),
			Verdict:      verdict,
		}
		if err := report.Save(data, verifyReportFile); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to: %s\n", verifyReportFile)
	}

	return nil
}
