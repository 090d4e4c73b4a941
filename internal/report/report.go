package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/fredyGabriel/base-tanque/internal/pile"
	"github.com/fredyGabriel/base-tanque/internal/pilecap"
)

// Data collects the verification chain results for the PDF report.
type Data struct {
	Project string
	Author  string
	Notes   string

	// Wind and tank
	WindSpeed    float64 // m/s
	Pressure10   float64 // Pa
	TankCapacity int     // m³
	GravityLoad  float64 // N, factored
	Shear        float64 // N, factored
	Moment       float64 // N·m, factored
	Combination  string

	// Pile
	PileLength   float64
	PileDiameter float64
	Method       string
	TipSoil      string
	ShaftSoil    string
	Capacity     pile.Capacity

	// Cap
	CapSide   float64
	CapHeight float64
	Layout    string
	Verdict   pilecap.Verdict
}

// Build composes the A4 calculation report.
func Build(d Data) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Cup Tank Deep Foundation Verification")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if d.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", d.Project))
		pdf.Ln(6)
	}
	if d.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", d.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Wind and tank loads")
	row(pdf, "Basic wind speed", "%.1f m/s", d.WindSpeed)
	row(pdf, "Dynamic pressure at 10 m", "%.2f kN/m2", d.Pressure10/1000)
	pdf.Cell(0, 6, fmt.Sprintf("Tank capacity: %d m3", d.TankCapacity))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Load combination: %s", d.Combination))
	pdf.Ln(6)
	row(pdf, "Factored vertical load N", "%.2f kN", d.GravityLoad/1000)
	row(pdf, "Factored horizontal shear H", "%.2f kN", d.Shear/1000)
	row(pdf, "Factored base moment M", "%.2f kN.m", d.Moment/1000)
	pdf.Ln(4)

	section(pdf, "Pile capacity (Decourt-Quaresma)")
	row(pdf, "Length", "%.2f m", d.PileLength)
	row(pdf, "Diameter", "%.0f cm", d.PileDiameter*100)
	pdf.Cell(0, 6, fmt.Sprintf("Installation: %s, tip soil: %s, shaft soil: %s",
		d.Method, d.TipSoil, d.ShaftSoil))
	pdf.Ln(6)
	row(pdf, "Admissible tip capacity", "%.2f kN", d.Capacity.Tip/1000)
	row(pdf, "Admissible shaft capacity", "%.2f kN", d.Capacity.Shaft/1000)
	if d.Capacity.CapApplied {
		row(pdf, "Tip credited (NBR-6122 8.2.1.2)", "%.2f kN", d.Capacity.TipUsed/1000)
	}
	row(pdf, "Admissible total capacity", "%.2f kN", d.Capacity.Total/1000)
	pdf.Ln(4)

	section(pdf, "Pile cap")
	pdf.Cell(0, 6, fmt.Sprintf("Layout: %s", d.Layout))
	pdf.Ln(6)
	row(pdf, "Adopted side B", "%.2f m", d.CapSide)
	row(pdf, "Height h", "%.2f m", d.CapHeight)
	row(pdf, "Minimum required side", "%.2f m", d.Verdict.MinimumWidth)
	row(pdf, "Governing pile load", "%.2f kN", d.Verdict.MaxPileLoad/1000)
	row(pdf, "Margin", "%.2f kN", d.Verdict.Margin/1000)
	pdf.Ln(4)

	section(pdf, "Verdict")
	pdf.SetFont("Helvetica", "B", 12)
	if d.Verdict.Passed {
		pdf.Cell(0, 8, "PASS - pile load below admissible capacity")
	} else {
		pdf.Cell(0, 8, "FAIL - pile load exceeds admissible capacity")
	}
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, d.Verdict.Message, "", "L", false)

	if d.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, d.Notes, "", "L", false)
	}

	return pdf
}

// Save writes the report to a file.
func Save(d Data, path string) error {
	return Build(d).OutputFileAndClose(path)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
}

func row(pdf *gofpdf.Fpdf, label, format string, value float64) {
	pdf.Cell(90, 6, label)
	pdf.Cell(0, 6, fmt.Sprintf(format, value))
	pdf.Ln(6)
}
