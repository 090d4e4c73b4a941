package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/fredyGabriel/base-tanque/internal/pilecap"
)

// CapPlanData holds data for drawing a pile-cap plan view.
type CapPlanData struct {
	Layout   pilecap.Layout
	Side     float64 // B (m)
	Overhang float64 // v (m)
	Diameter float64 // pile diameter (m)
}

// DrawCapPlan creates an ASCII plan view of the square cap with its pile
// group.
func DrawCapPlan(data CapPlanData) string {
	var sb strings.Builder

	// Fixed character grid, pile markers placed by layout pattern.
	size := 21
	grid := make([][]rune, size)
	for i := range grid {
		grid[i] = make([]rune, size)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	near, mid, far := 3, size/2, size-4
	place := func(r, c int) {
		grid[r][c] = 'O'
	}

	place(near, near)
	place(near, far)
	place(far, near)
	place(far, far)
	switch data.Layout {
	case pilecap.FivePile:
		place(mid, mid)
	case pilecap.NinePile:
		place(near, mid)
		place(mid, near)
		place(mid, mid)
		place(mid, far)
		place(far, mid)
	}

	sb.WriteString("\n")
	sb.WriteString("  CAP PLAN VIEW\n")
	sb.WriteString("  ─────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", size)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", size)))
	sb.WriteString(fmt.Sprintf("  B = %.2f m, overhang v = %.2f m\n", data.Side, data.Overhang))
	sb.WriteString(fmt.Sprintf("  %s, diameter %.0f cm\n", data.Layout, data.Diameter*100))

	return sb.String()
}

// DrawSPTChart plots the adjusted SPT blow counts versus depth.
func DrawSPTChart(adjusted []float64) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  ADJUSTED SPT PROFILE (blows vs depth, m)\n")
	sb.WriteString("  ────────────────────────────────────────\n")
	sb.WriteString(asciigraph.Plot(adjusted,
		asciigraph.Height(10),
		asciigraph.Offset(3),
		asciigraph.Precision(0),
	))
	sb.WriteString("\n")

	return sb.String()
}
