package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/fredyGabriel/base-tanque/internal/soil"
)

// ExportSoilProfile plots the raw and adjusted SPT series against depth and
// saves the image. The format follows the file extension (png, svg, pdf).
func ExportSoilProfile(profile *soil.Profile, filename string) error {
	p := plot.New()
	p.Title.Text = "SPT Soil Profile"
	p.X.Label.Text = "Blow count N"
	p.Y.Label.Text = "Depth (m)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	raw := profile.Raw()
	adjusted := profile.Adjusted()

	rawPts := make(plotter.XYs, len(raw))
	adjPts := make(plotter.XYs, len(adjusted))
	for i := range raw {
		depth := float64(i + 1)
		rawPts[i] = plotter.XY{X: raw[i], Y: depth}
		adjPts[i] = plotter.XY{X: adjusted[i], Y: depth}
	}

	rawLine, err := plotter.NewLine(rawPts)
	if err != nil {
		return err
	}
	rawLine.LineStyle.Width = vg.Points(1)
	rawLine.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	rawLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(rawLine)
	p.Legend.Add("measured", rawLine)

	adjLine, err := plotter.NewLine(adjPts)
	if err != nil {
		return err
	}
	adjLine.LineStyle.Width = vg.Points(2)
	adjLine.LineStyle.Color = color.Black
	p.Add(adjLine)
	p.Legend.Add("adjusted [3,50]", adjLine)

	marks, err := plotter.NewScatter(adjPts)
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	marks.GlyphStyle.Radius = vg.Points(2)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	return save(p, filename)
}

// CapacityPoint is one admissible capacity sample along the pile length.
type CapacityPoint struct {
	Length   float64 // m
	Capacity float64 // N
}

// ExportCapacityCurve plots admissible pile capacity versus pile length and
// marks the design length.
func ExportCapacityCurve(points []CapacityPoint, designLength float64, filename string) error {
	if len(points) == 0 {
		return fmt.Errorf("no capacity points to plot")
	}

	p := plot.New()
	p.Title.Text = "Admissible Pile Capacity (Decourt-Quaresma)"
	p.X.Label.Text = "Pile length (m)"
	p.Y.Label.Text = "Capacity (kN)"

	pts := make(plotter.XYs, len(points))
	for i, c := range points {
		pts[i] = plotter.XY{X: c.Length, Y: c.Capacity / 1000}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	// Vertical marker at the design length
	var atDesign float64
	for _, c := range points {
		if c.Length <= designLength {
			atDesign = c.Capacity / 1000
		}
	}
	marker, err := plotter.NewLine(plotter.XYs{
		{X: designLength, Y: 0},
		{X: designLength, Y: atDesign},
	})
	if err != nil {
		return err
	}
	marker.LineStyle.Width = vg.Points(1.5)
	marker.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	marker.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("design L = %.1f m", designLength), marker)

	return save(p, filename)
}

func save(p *plot.Plot, filename string) error {
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
