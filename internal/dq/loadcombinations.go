package dq

// Combination is a partial-factor load combination for the ultimate limit
// state, applied to the tank base reactions before the pile-cap check.
type Combination struct {
	ID          string
	Description string
	Permanent   float64 // γG - self weight
	Variable    float64 // γQ - water and wind
}

// ULSCombinations for the full-tank-with-wind verification.
var ULSCombinations = []Combination{
	{
		ID:          "1",
		Description: "1.35G + 1.50Q",
		Permanent:   1.35,
		Variable:    1.50,
	},
	{
		ID:          "2",
		Description: "1.00G + 1.50Q",
		Permanent:   1.00,
		Variable:    1.50,
	},
}

// BaseLoads holds unfactored loads at the foundation top.
type BaseLoads struct {
	Permanent float64 // vertical, tank self weight (N)
	Water     float64 // vertical, stored water (N)
	Shear     float64 // horizontal wind shear (N)
	Moment    float64 // wind overturning moment (N·m)
}

// Factor applies the combination to a set of base loads.
func (c Combination) Factor(l BaseLoads) (n, h, m float64) {
	n = c.Permanent*l.Permanent + c.Variable*l.Water
	h = c.Variable * l.Shear
	m = c.Variable * l.Moment
	return n, h, m
}

// Governing returns the factored loads of the combination producing the
// largest vertical load together with that combination.
func Governing(l BaseLoads, combos []Combination) (n, h, m float64, governing Combination) {
	for _, c := range combos {
		cn, ch, cm := c.Factor(l)
		if cn > n {
			n, h, m = cn, ch, cm
			governing = c
		}
	}
	return n, h, m, governing
}
