package tank

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCapacity reports a tank capacity outside the catalogue.
var ErrUnknownCapacity = errors.New("unknown tank capacity")

const (
	gravity = 9.80665 // m/s²

	// selfWeightFactor estimates the empty tank weight from its capacity
	// (kN per m³ of capacity, a manufacturer rule of thumb).
	selfWeightFactor = 1.5
)

// dimensions of a catalogue cup tank, in metres.
type dimensions struct {
	shaftDiameter float64
	shaftHeight   float64
	cupDiameter   float64
	cupHeight     float64
}

// catalogue of standard cup-tank sizes, keyed by capacity in m³.
var catalogue = map[int]dimensions{
	15: {shaftDiameter: 0.80, shaftHeight: 12, cupDiameter: 2.0, cupHeight: 5.60},
	20: {shaftDiameter: 0.80, shaftHeight: 12, cupDiameter: 2.0, cupHeight: 5.90},
	30: {shaftDiameter: 0.80, shaftHeight: 12, cupDiameter: 2.3, cupHeight: 5.90},
	60: {shaftDiameter: 1.50, shaftHeight: 14, cupDiameter: 3.2, cupHeight: 5.40},
}

// Capacities lists the catalogue capacities in ascending order (m³).
func Capacities() []int {
	out := make([]int, 0, len(catalogue))
	for c := range catalogue {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Tank is a catalogue cup-type elevated water tank exposed to wind.
type Tank struct {
	Wind     Wind
	Capacity int // m³

	dims dimensions
}

// New builds a tank of a catalogue capacity.
func New(wind Wind, capacity int) (*Tank, error) {
	d, ok := catalogue[capacity]
	if !ok {
		return nil, fmt.Errorf("%w: %d m³ (allowed: %v)", ErrUnknownCapacity,
			capacity, Capacities())
	}
	return &Tank{Wind: wind, Capacity: capacity, dims: d}, nil
}

// ShaftDiameter of the support shaft (m).
func (t *Tank) ShaftDiameter() float64 { return t.dims.shaftDiameter }

// ShaftHeight of the support shaft (m).
func (t *Tank) ShaftHeight() float64 { return t.dims.shaftHeight }

// CupDiameter of the cup (m).
func (t *Tank) CupDiameter() float64 { return t.dims.cupDiameter }

// CupHeight of the cup (m).
func (t *Tank) CupHeight() float64 { return t.dims.cupHeight }

// TotalHeight from the base to the top of the cup (m).
func (t *Tank) TotalHeight() float64 { return t.dims.shaftHeight + t.dims.cupHeight }

// SelfWeight is the estimated empty tank weight (N).
func (t *Tank) SelfWeight() float64 {
	return float64(t.Capacity) * selfWeightFactor * 1000
}

// WaterWeight with the tank full (N).
func (t *Tank) WaterWeight() float64 {
	return float64(t.Capacity) * gravity * 1000
}

// GravityLoad is the total vertical load at the base (N).
func (t *Tank) GravityLoad(full bool) float64 {
	if full {
		return t.SelfWeight() + t.WaterWeight()
	}
	return t.SelfWeight()
}

// Drag-coefficient table for circular cylinders versus diameter/height,
// after White, Fluid Mechanics.
var (
	dragRatios = []float64{0, 0.025, 0.05, 0.1, 0.2, 1. / 3., 0.5, 1}
	dragCoefs  = []float64{1.2, 0.98, 0.91, 0.82, 0.74, 0.72, 0.68, 0.74}
)

// DragCoefficient interpolates the cylinder drag coefficient for a
// diameter/height ratio, clamped to the table ends.
func DragCoefficient(dOverH float64) float64 {
	if dOverH <= dragRatios[0] {
		return dragCoefs[0]
	}
	last := len(dragRatios) - 1
	if dOverH >= dragRatios[last] {
		return dragCoefs[last]
	}
	i := sort.SearchFloat64s(dragRatios, dOverH)
	if dragRatios[i] == dOverH {
		return dragCoefs[i]
	}
	x0, x1 := dragRatios[i-1], dragRatios[i]
	y0, y1 := dragCoefs[i-1], dragCoefs[i]
	return y0 + (y1-y0)*(dOverH-x0)/(x1-x0)
}

// ShaftDrag is the drag coefficient of the support shaft.
func (t *Tank) ShaftDrag() float64 {
	return DragCoefficient(t.dims.shaftDiameter / t.dims.shaftHeight)
}

// CupDrag is the drag coefficient of the cup.
func (t *Tank) CupDrag() float64 {
	return DragCoefficient(t.dims.cupDiameter / t.dims.cupHeight)
}

// Reactions are the wind base reactions: the horizontal shear H (N) and the
// overturning moment M (N·m), from the closed-form integration of the wind
// pressure profile over the shaft and cup strips.
func (t *Tank) Reactions() (h, m float64) {
	d := t.dims
	cdShaft := t.ShaftDrag()
	cdCup := t.CupDrag()

	fShaft := t.Wind.stripForce(cdShaft, d.shaftDiameter, 0, d.shaftHeight)
	mShaft := t.Wind.stripMoment(cdShaft, d.shaftDiameter, 0, d.shaftHeight)

	fCup := t.Wind.stripForce(cdCup, d.cupDiameter, d.shaftHeight, d.shaftHeight+d.cupHeight)
	mCup := t.Wind.stripMoment(cdCup, d.cupDiameter, d.shaftHeight, d.shaftHeight+d.cupHeight)

	return fShaft + fCup, mShaft + mCup
}
