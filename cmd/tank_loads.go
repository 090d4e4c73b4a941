package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fredyGabriel/base-tanque/internal/dq"
	"github.com/fredyGabriel/base-tanque/internal/tank"
)

var (
	tankWindSpeed float64
	tankCapacity  int
	tankEmpty     bool
)

var tankLoadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Compute the tank base reactions",
	Long: `Compute the wind shear and overturning moment at the foundation
base by closed-form integration of the wind pressure over the tank
shaft and cup, plus the gravity loads, raw and with the governing
ULS partial factors applied.

Examples:
  base-tanque tank loads --wind 50 --capacity 30`,
	RunE: runTankLoads,
}

func init() {
	tankCmd.AddCommand(tankLoadsCmd)

	tankLoadsCmd.Flags().Float64VarP(&tankWindSpeed, "wind", "w", 50, "Basic wind speed (m/s)")
	tankLoadsCmd.Flags().IntVarP(&tankCapacity, "capacity", "c", 20, "Tank capacity (m³): 15, 20, 30 or 60")
	tankLoadsCmd.Flags().BoolVar(&tankEmpty, "empty", false, "Consider the tank empty")
}

func runTankLoads(cmd *cobra.Command, args []string) error {
	wind := tank.NewWind(tankWindSpeed)
	t, err := tank.New(wind, tankCapacity)
	if err != nil {
		return err
	}

	h, m := t.Reactions()
	loads := dq.BaseLoads{
		Permanent: t.SelfWeight(),
		Water:     t.WaterWeight(),
		Shear:     h,
		Moment:    m,
	}
	if tankEmpty {
		loads.Water = 0
	}
	n, fh, fm, combo := dq.Governing(loads, dq.ULSCombinations)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CUP TANK BASE REACTIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("WIND:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Basic speed:\t%.1f m/s\n", wind.BasicSpeed)
	fmt.Fprintf(w, "  Dynamic pressure at 10 m:\t%.2f kN/m²\n", wind.Pressure10()/1000)
	w.Flush()
	fmt.Println()

	fmt.Println("TANK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Capacity:\t%d m³\n", t.Capacity)
	fmt.Fprintf(w, "  Shaft:\tØ%.2f m × %.1f m (cd %.2f)\n", t.ShaftDiameter(), t.ShaftHeight(), t.ShaftDrag())
	fmt.Fprintf(w, "  Cup:\tØ%.2f m × %.1f m (cd %.2f)\n", t.CupDiameter(), t.CupHeight(), t.CupDrag())
	fmt.Fprintf(w, "  Self weight:\t%.2f kN\n", t.SelfWeight()/1000)
	fmt.Fprintf(w, "  Water weight:\t%.2f kN\n", t.WaterWeight()/1000)
	w.Flush()
	fmt.Println()

	fmt.Println("BASE REACTIONS (unfactored):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vertical load:\t%.2f kN\n", t.GravityLoad(!tankEmpty)/1000)
	fmt.Fprintf(w, "  Horizontal shear H:\t%.2f kN\n", h/1000)
	fmt.Fprintf(w, "  Overturning moment M:\t%.2f kN·m\n", m/1000)
	w.Flush()
	fmt.Println()

	fmt.Printf("FACTORED (%s):\n", combo.Description)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Vertical load N:\t%.2f kN\n", n/1000)
	fmt.Fprintf(w, "  Horizontal shear H:\t%.2f kN\n", fh/1000)
	fmt.Fprintf(w, "  Overturning moment M:\t%.2f kN·m\n", fm/1000)
	w.Flush()
	fmt.Println()

	return nil
}
