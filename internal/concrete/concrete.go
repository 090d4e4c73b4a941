package concrete

import "math"

// Reinforced concrete material constants, SI units without multiples.

const (
	// UnitWeight of reinforced concrete (N/m³)
	UnitWeight = 24000.0

	// FckDefault is the default characteristic compressive strength (Pa)
	FckDefault = 20e6

	// GammaC is the concrete partial safety factor
	GammaC = 1.5
)

// Mix holds the concrete properties shared by piles and caps.
type Mix struct {
	UnitWeight float64 // N/m³
	Fck        float64 // Pa
	GammaC     float64
}

// Default returns the mix used when the caller does not override it.
func Default() Mix {
	return Mix{
		UnitWeight: UnitWeight,
		Fck:        FckDefault,
		GammaC:     GammaC,
	}
}

// Elasticity returns the secant modulus of elasticity (Pa).
func (m Mix) Elasticity() float64 {
	return 1.2 * 22 * math.Pow(m.Fck*1e-6/10/m.GammaC, 0.3) * 1e9
}
