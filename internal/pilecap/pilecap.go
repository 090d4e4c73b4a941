package pilecap

import (
	"errors"
	"fmt"
	"math"

	"github.com/fredyGabriel/base-tanque/internal/concrete"
	"github.com/fredyGabriel/base-tanque/internal/pile"
	"github.com/fredyGabriel/base-tanque/internal/soil"
)

// ErrInvalidLayout reports a pile layout outside the supported patterns.
var ErrInvalidLayout = errors.New("invalid pile-cap layout")

// Layout is the pile arrangement under the square cap.
type Layout int

const (
	// FourPile: one pile at each corner.
	FourPile Layout = iota
	// FivePile: one at each corner plus one at the center.
	FivePile
	// NinePile: a 3x3 grid.
	NinePile
)

func (l Layout) String() string {
	switch l {
	case FourPile:
		return "4 piles"
	case FivePile:
		return "5 piles"
	case NinePile:
		return "9 piles"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Valid reports whether the layout is a supported pattern.
func (l Layout) Valid() bool {
	return l == FourPile || l == FivePile || l == NinePile
}

// Piles is the pile count of the layout.
func (l Layout) Piles() int {
	return map[Layout]int{FourPile: 4, FivePile: 5, NinePile: 9}[l]
}

// factor models how many pile rows resist the overturning moment.
func (l Layout) factor() float64 {
	if l == NinePile {
		return 3
	}
	return 2
}

// spacingMultiplier converts the minimum pile spacing into the minimum
// distance between the axes of the outermost piles.
func (l Layout) spacingMultiplier() float64 {
	switch l {
	case FivePile:
		return math.Sqrt2
	case NinePile:
		return 2
	}
	return 1
}

// ParseLayout resolves a pile count to its layout.
func ParseLayout(piles int) (Layout, error) {
	switch piles {
	case 4:
		return FourPile, nil
	case 5:
		return FivePile, nil
	case 9:
		return NinePile, nil
	}
	return 0, fmt.Errorf("%w: %d piles (allowed: 4, 5, 9)", ErrInvalidLayout, piles)
}

// Cap is a square reinforced-concrete pile cap loaded by the tank base
// reactions. One pile design is repeated at every position. Loads must
// already carry their partial factors.
type Cap struct {
	Layout Layout
	Pile   *pile.Pile

	B float64 // side of the square cap (m)
	H float64 // cap height (m)
	V float64 // overhang from the outer pile face to the cap edge (m)

	N float64 // vertical load on the cap, downwards (N)
	F float64 // horizontal wind shear at the cap top (N)
	M float64 // bending moment at the cap top (N·m)

	Concrete concrete.Mix
}

// Config carries the constructor inputs. A zero Concrete takes the default
// mix.
type Config struct {
	Layout   Layout
	Pile     *pile.Pile
	B        float64
	H        float64
	V        float64
	N        float64
	F        float64
	M        float64
	Concrete concrete.Mix
}

// New validates the configuration and builds a cap.
func New(cfg Config) (*Cap, error) {
	if !cfg.Layout.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLayout, int(cfg.Layout))
	}
	if cfg.Pile == nil {
		return nil, fmt.Errorf("%w: no pile", soil.ErrInvalidGeometry)
	}
	if cfg.B <= 0 || cfg.H <= 0 || cfg.V <= 0 {
		return nil, fmt.Errorf("%w: cap B=%g h=%g v=%g", soil.ErrInvalidGeometry,
			cfg.B, cfg.H, cfg.V)
	}
	c := &Cap{
		Layout:   cfg.Layout,
		Pile:     cfg.Pile,
		B:        cfg.B,
		H:        cfg.H,
		V:        cfg.V,
		N:        cfg.N,
		F:        cfg.F,
		M:        cfg.M,
		Concrete: cfg.Concrete,
	}
	if c.Concrete == (concrete.Mix{}) {
		c.Concrete = concrete.Default()
	}
	if c.span() <= 0 {
		return nil, fmt.Errorf("%w: cap side %g m leaves no span between outer piles",
			soil.ErrInvalidGeometry, cfg.B)
	}
	return c, nil
}

// span is the distance between the axes of the outermost piles (m).
func (c *Cap) span() float64 {
	return c.B - 2*c.V - c.Pile.Diameter
}

// Weight of the cap prism (N).
func (c *Cap) Weight() float64 {
	return c.B * c.B * c.H * c.Concrete.UnitWeight
}

// MinSpacing is the minimum axis-to-axis pile spacing (m).
func (c *Cap) MinSpacing() float64 {
	return 2.5 * c.Pile.Diameter
}

// SpacingOK reports whether the outer-pile span satisfies the minimum
// spacing for the layout.
func (c *Cap) SpacingOK() bool {
	return c.span() >= c.Layout.spacingMultiplier()*c.MinSpacing()
}

// MinimumWidth is the smallest cap side that satisfies both the minimum
// pile spacing and the overturning equilibrium against the pile
// compression and pull-out capacities.
func (c *Cap) MinimumWidth() (float64, error) {
	d := c.Pile.Diameter
	capacity, err := c.Pile.AdmissibleCapacity()
	if err != nil {
		return 0, err
	}
	n := c.Layout.factor()

	b1 := c.Layout.spacingMultiplier() * c.MinSpacing()
	b2 := 2 * (c.F*c.H + c.M) / (n * (capacity.Total + c.Pile.TensionCapacity))

	return 2*c.V + d + math.Max(b1, b2), nil
}

// MaxPileLoad is the governing per-pile load (N): the larger of the
// full-tank-with-wind hypothesis and the no-wind gravity hypothesis.
func (c *Cap) MaxPileLoad() float64 {
	w := c.Weight()
	n := c.Layout.factor()
	b := c.span()

	withWind := ((c.N+w)/2 + (c.F*c.H+c.M)/b) / n
	if c.Layout != FourPile {
		// The center pile of the 5 and 9 pile patterns does not share the
		// overturning couple like the corner piles do.
		withWind = (2. / 3.) * ((c.N+w)/2 + (c.F*c.H+c.M)/b) / n
	}

	gravityOnly := (c.N + w) / float64(c.Layout.Piles())

	return math.Max(withWind, gravityOnly)
}

// Verdict is the result of the pile-cap verification.
type Verdict struct {
	Passed bool

	MaxPileLoad  float64 // governing load per pile (N)
	PileCapacity float64 // admissible pile capacity (N)
	Margin       float64 // PileCapacity - MaxPileLoad (N)

	MinimumWidth float64 // required cap side (m)
	WidthOK      bool
	SpacingOK    bool

	Message string
}

// Verify checks the governing pile load against the admissible pile
// capacity and reports the geometric adequacy of the cap.
func (c *Cap) Verify() (Verdict, error) {
	capacity, err := c.Pile.AdmissibleTotal()
	if err != nil {
		return Verdict{}, err
	}
	minWidth, err := c.MinimumWidth()
	if err != nil {
		return Verdict{}, err
	}

	v := Verdict{
		MaxPileLoad:  c.MaxPileLoad(),
		PileCapacity: capacity,
		MinimumWidth: minWidth,
		WidthOK:      c.B >= minWidth,
		SpacingOK:    c.SpacingOK(),
	}
	v.Margin = v.PileCapacity - v.MaxPileLoad
	v.Passed = v.MaxPileLoad < v.PileCapacity

	switch {
	case !v.Passed:
		v.Message = "Pile overloaded: governing load exceeds admissible capacity."
	case !v.WidthOK:
		v.Message = "Pile load OK, but the cap is narrower than the required minimum width."
	case !v.SpacingOK:
		v.Message = "Pile load OK, but the pile spacing is below 2.5 diameters."
	default:
		v.Message = "Pile capacity OK. Punching shear and cap flexure must still be checked."
	}
	return v, nil
}
