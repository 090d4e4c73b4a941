package pile

import (
	"errors"
	"fmt"
	"math"

	"github.com/fredyGabriel/base-tanque/internal/concrete"
	"github.com/fredyGabriel/base-tanque/internal/dq"
	"github.com/fredyGabriel/base-tanque/internal/soil"
)

// ErrUnsupportedSoil reports a request for the horizontal subgrade reaction
// of a cohesive shaft soil, for which no formula is implemented.
var ErrUnsupportedSoil = errors.New("cohesive soil not supported")

// Default partial safety factors for the Decourt-Quaresma capacities.
const (
	DefaultGammaTip   = 4.0 // γp - tip capacity
	DefaultGammaShaft = 1.3 // γL - shaft friction
)

// Pile is a bored or driven circular pile in a surveyed soil profile.
// All capacity methods are pure functions of the constructed fields.
// SI units without multiples: metres, newtons, pascals.
type Pile struct {
	Length   float64 // m
	Diameter float64 // m

	TipSoil   dq.SoilCategory
	ShaftSoil dq.SoilCategory
	Method    dq.Method

	GammaTip   float64
	GammaShaft float64

	// TensionCapacity is the pull-out capacity (N) credited in the pile-cap
	// equilibrium. No uplift calculation is performed here; it stays zero
	// unless the caller supplies a value from a separate check.
	TensionCapacity float64

	Concrete concrete.Mix
	Profile  *soil.Profile
}

// Config carries the constructor inputs. Zero safety factors take the
// defaults; a zero Concrete takes the default mix.
type Config struct {
	Length          float64
	Diameter        float64
	TipSoil         dq.SoilCategory
	ShaftSoil       dq.SoilCategory
	Method          dq.Method
	GammaTip        float64
	GammaShaft      float64
	TensionCapacity float64
	Concrete        concrete.Mix
	Profile         *soil.Profile
}

// New validates the configuration and builds a pile.
func New(cfg Config) (*Pile, error) {
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("%w: pile length %g m", soil.ErrInvalidGeometry, cfg.Length)
	}
	if cfg.Diameter <= 0 {
		return nil, fmt.Errorf("%w: pile diameter %g m", soil.ErrInvalidGeometry, cfg.Diameter)
	}
	if cfg.Profile == nil {
		return nil, fmt.Errorf("%w: no soil profile", soil.ErrInvalidGeometry)
	}
	if int(cfg.Length) > cfg.Profile.SurveyedDepth() {
		return nil, fmt.Errorf("%w: pile length %g m exceeds surveyed depth %d m",
			soil.ErrOutOfRange, cfg.Length, cfg.Profile.SurveyedDepth())
	}
	if !cfg.TipSoil.Valid() {
		return nil, fmt.Errorf("%w: tip soil %d", dq.ErrUnknownSoil, int(cfg.TipSoil))
	}
	if !cfg.ShaftSoil.Valid() {
		return nil, fmt.Errorf("%w: shaft soil %d", dq.ErrUnknownSoil, int(cfg.ShaftSoil))
	}
	if !cfg.Method.Valid() {
		return nil, fmt.Errorf("%w: %d", dq.ErrUnknownMethod, int(cfg.Method))
	}

	p := &Pile{
		Length:          cfg.Length,
		Diameter:        cfg.Diameter,
		TipSoil:         cfg.TipSoil,
		ShaftSoil:       cfg.ShaftSoil,
		Method:          cfg.Method,
		GammaTip:        cfg.GammaTip,
		GammaShaft:      cfg.GammaShaft,
		TensionCapacity: cfg.TensionCapacity,
		Concrete:        cfg.Concrete,
		Profile:         cfg.Profile,
	}
	if p.GammaTip == 0 {
		p.GammaTip = DefaultGammaTip
	}
	if p.GammaShaft == 0 {
		p.GammaShaft = DefaultGammaShaft
	}
	if p.Concrete == (concrete.Mix{}) {
		p.Concrete = concrete.Default()
	}
	return p, nil
}

// Area is the cross-section area (m²).
func (p *Pile) Area() float64 {
	return math.Pi * math.Pow(p.Diameter/2, 2)
}

// LateralArea is the shaft surface area (m²).
func (p *Pile) LateralArea() float64 {
	return math.Pi * p.Diameter * p.Length
}

// Volume of the pile (m³).
func (p *Pile) Volume() float64 {
	return p.Area() * p.Length
}

// Inertia of the circular cross section (m⁴).
func (p *Pile) Inertia() float64 {
	return math.Pi * math.Pow(p.Diameter/2, 4) / 4
}

// Weight of the pile (N).
func (p *Pile) Weight() float64 {
	return p.Volume() * p.Concrete.UnitWeight
}

// AxialStiffness EA/L of the pile (N/m).
func (p *Pile) AxialStiffness() float64 {
	return p.Concrete.Elasticity() * p.Area() / p.Length
}

// TipUnitResistance is the unit tip resistance rp = K·Np (Pa).
func (p *Pile) TipUnitResistance() (float64, error) {
	k, err := dq.K(p.TipSoil)
	if err != nil {
		return 0, err
	}
	np, err := p.Profile.TipAverage(p.Length)
	if err != nil {
		return 0, err
	}
	return k * np, nil
}

// AdmissibleTip is the safety-factored tip capacity α·rp·A/γp (N).
func (p *Pile) AdmissibleTip() (float64, error) {
	a, err := dq.Alpha(p.TipSoil, p.Method)
	if err != nil {
		return 0, err
	}
	rp, err := p.TipUnitResistance()
	if err != nil {
		return 0, err
	}
	return a * rp * p.Area() / p.GammaTip, nil
}

// ShaftUnitResistance is the unit shaft friction rL = 10000·(NL/3 + 1) (Pa).
func (p *Pile) ShaftUnitResistance() (float64, error) {
	nl, err := p.Profile.ShaftAverage(p.Length)
	if err != nil {
		return 0, err
	}
	return 10e3 * (nl/3 + 1), nil
}

// AdmissibleShaft is the safety-factored shaft capacity β·rL·AL/γL (N).
func (p *Pile) AdmissibleShaft() (float64, error) {
	b, err := dq.Beta(p.ShaftSoil, p.Method)
	if err != nil {
		return 0, err
	}
	rl, err := p.ShaftUnitResistance()
	if err != nil {
		return 0, err
	}
	return b * rl * p.LateralArea() / p.GammaShaft, nil
}

// Capacity is the admissible capacity breakdown.
type Capacity struct {
	Tip        float64 // admissible tip capacity before the cap rule (N)
	Shaft      float64 // admissible shaft capacity (N)
	TipUsed    float64 // tip contribution actually credited (N)
	Total      float64 // TipUsed + Shaft (N)
	CapApplied bool    // NBR-6122 8.2.1.2 limit governed the tip
}

// AdmissibleCapacity evaluates the Decourt-Quaresma capacity with the
// NBR-6122 8.2.1.2 rule: bored piles mobilize tip resistance unreliably,
// so their credited tip capacity cannot exceed a quarter of the shaft
// capacity.
func (p *Pile) AdmissibleCapacity() (Capacity, error) {
	tip, err := p.AdmissibleTip()
	if err != nil {
		return Capacity{}, err
	}
	shaft, err := p.AdmissibleShaft()
	if err != nil {
		return Capacity{}, err
	}

	c := Capacity{Tip: tip, Shaft: shaft, TipUsed: tip}
	if p.Method.Bored() && 0.25*shaft < tip {
		c.TipUsed = 0.25 * shaft
		c.CapApplied = true
	}
	c.Total = c.TipUsed + c.Shaft
	return c, nil
}

// AdmissibleTotal is the total admissible axial capacity (N).
func (p *Pile) AdmissibleTotal() (float64, error) {
	c, err := p.AdmissibleCapacity()
	if err != nil {
		return 0, err
	}
	return c.Total, nil
}

// SubgradeModulus is Terzaghi's horizontal subgrade reaction modulus per
// unit length of pile at a given depth (N/m²), valid for granular shaft
// soils only.
func (p *Pile) SubgradeModulus(depth float64) (float64, error) {
	if p.ShaftSoil.Cohesive() {
		return 0, fmt.Errorf("%w: no lateral modulus formula for %s shaft",
			ErrUnsupportedSoil, p.ShaftSoil)
	}
	if depth > p.Length {
		return 0, fmt.Errorf("%w: depth %g m exceeds pile length %g m",
			soil.ErrOutOfRange, depth, p.Length)
	}
	n, err := p.Profile.BlowCountAt(depth)
	if err != nil {
		return 0, err
	}
	return 6000 * math.Pow(10, (n-28)/40) * depth * 1e3, nil
}
