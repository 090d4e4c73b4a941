package pilecap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredyGabriel/base-tanque/internal/dq"
	"github.com/fredyGabriel/base-tanque/internal/pile"
	"github.com/fredyGabriel/base-tanque/internal/soil"
)

// surveyed profile averaged from two borings of the reference project
var surveySPT = []float64{
	2, 2, 2, 2, 2, 2, 3, 3.5, 6, 4.5, 5.5,
	5, 5.5, 5, 7, 7.5, 8, 8, 8.5, 9, 12, 15.5,
}

func workedExampleCap(t *testing.T, layout Layout, n, h, m float64) *Cap {
	t.Helper()
	profile, err := soil.NewProfile(surveySPT)
	require.NoError(t, err)
	p, err := pile.New(pile.Config{
		Length:    15,
		Diameter:  0.40,
		TipSoil:   dq.SiltyClay,
		ShaftSoil: dq.SiltyClay,
		Method:    dq.Strauss,
		Profile:   profile,
	})
	require.NoError(t, err)

	c, err := New(Config{
		Layout: layout,
		Pile:   p,
		B:      3.5,
		H:      1.0,
		V:      0.3,
		N:      n,
		F:      h,
		M:      m,
	})
	require.NoError(t, err)
	return c
}

func TestLayouts(t *testing.T) {
	assert.Equal(t, 4, FourPile.Piles())
	assert.Equal(t, 5, FivePile.Piles())
	assert.Equal(t, 9, NinePile.Piles())

	_, err := ParseLayout(6)
	assert.ErrorIs(t, err, ErrInvalidLayout)

	l, err := ParseLayout(9)
	require.NoError(t, err)
	assert.Equal(t, NinePile, l)
}

func TestNew_Validation(t *testing.T) {
	profile, err := soil.NewProfile(surveySPT)
	require.NoError(t, err)
	p, err := pile.New(pile.Config{
		Length: 15, Diameter: 0.40,
		TipSoil: dq.SiltyClay, ShaftSoil: dq.SiltyClay,
		Method: dq.Strauss, Profile: profile,
	})
	require.NoError(t, err)

	_, err = New(Config{Layout: Layout(7), Pile: p, B: 3, H: 1, V: 0.3})
	assert.ErrorIs(t, err, ErrInvalidLayout)

	_, err = New(Config{Layout: FourPile, B: 3, H: 1, V: 0.3})
	assert.ErrorIs(t, err, soil.ErrInvalidGeometry)

	_, err = New(Config{Layout: FourPile, Pile: p, B: 0, H: 1, V: 0.3})
	assert.ErrorIs(t, err, soil.ErrInvalidGeometry)

	// side too small to leave a span between the outer piles
	_, err = New(Config{Layout: FourPile, Pile: p, B: 0.9, H: 1, V: 0.3})
	assert.ErrorIs(t, err, soil.ErrInvalidGeometry)
}

func TestWeight(t *testing.T) {
	c := workedExampleCap(t, FivePile, 500000, 0, 0)
	assert.InDelta(t, 3.5*3.5*1.0*24000, c.Weight(), 1e-6)
}

func TestMaxPileLoad_FivePileFormula(t *testing.T) {
	// Loads in the order of the worked 30 m³ tank example.
	n, h, m := 502049.25, 43562.0, 544760.0
	c := workedExampleCap(t, FivePile, n, h, m)

	w := c.Weight()
	b := 3.5 - 2*0.3 - 0.40
	want := (2.0 / 3.0) * ((n+w)/2 + (h*1.0+m)/b) / 2

	assert.InDelta(t, want, c.MaxPileLoad(), 1e-6)
}

func TestMaxPileLoad_FourPileFormula(t *testing.T) {
	n, h, m := 502049.25, 43562.0, 544760.0
	c := workedExampleCap(t, FourPile, n, h, m)

	w := c.Weight()
	b := 3.5 - 2*0.3 - 0.40
	want := ((n+w)/2 + (h*1.0+m)/b) / 2

	assert.InDelta(t, want, c.MaxPileLoad(), 1e-6)
}

func TestMaxPileLoad_GravityHypothesisGoverns(t *testing.T) {
	// Without wind the per-pile share of the gravity load governs.
	n := 900000.0
	c := workedExampleCap(t, FivePile, n, 0, 0)

	w := c.Weight()
	withWind := (2.0 / 3.0) * ((n + w) / 2) / 2
	gravity := (n + w) / 5

	assert.Greater(t, gravity, withWind)
	assert.InDelta(t, gravity, c.MaxPileLoad(), 1e-6)
}

func TestMinimumWidth(t *testing.T) {
	n, h, m := 502049.25, 43562.0, 544760.0
	c := workedExampleCap(t, FivePile, n, h, m)

	got, err := c.MinimumWidth()
	require.NoError(t, err)

	capTotal, err := c.Pile.AdmissibleTotal()
	require.NoError(t, err)

	b1 := math.Sqrt2 * 2.5 * 0.40
	b2 := 2 * (h*1.0 + m) / (2 * capTotal)
	want := 2*0.3 + 0.40 + math.Max(b1, b2)

	assert.InDelta(t, want, got, 1e-9)
	assert.Less(t, got, 3.5, "adopted side must satisfy the minimum")
}

func TestVerify_WorkedExamplePasses(t *testing.T) {
	// Full 30 m³ tank with 50 m/s wind, factored loads.
	c := workedExampleCap(t, FivePile, 502049.25, 43562.0, 544760.0)

	v, err := c.Verify()
	require.NoError(t, err)

	assert.True(t, v.Passed)
	assert.Greater(t, v.Margin, 0.0)
	assert.True(t, v.WidthOK)
	assert.True(t, v.SpacingOK)
	assert.InDelta(t, v.PileCapacity-v.MaxPileLoad, v.Margin, 1e-9)
}

func TestVerify_OverloadedFails(t *testing.T) {
	// An absurd vertical load must flip the verdict, with no third state.
	c := workedExampleCap(t, FivePile, 5e6, 43562.0, 544760.0)

	v, err := c.Verify()
	require.NoError(t, err)

	assert.False(t, v.Passed)
	assert.Less(t, v.Margin, 0.0)
	assert.Equal(t, v.Passed, v.MaxPileLoad < v.PileCapacity)
}

func TestVerify_BooleanMatchesComparison(t *testing.T) {
	for _, n := range []float64{1e5, 5e5, 1e6, 2e6, 5e6} {
		c := workedExampleCap(t, NinePile, n, 43562.0, 544760.0)
		v, err := c.Verify()
		require.NoError(t, err)
		assert.Equal(t, v.MaxPileLoad < v.PileCapacity, v.Passed, "N=%g", n)
	}
}
