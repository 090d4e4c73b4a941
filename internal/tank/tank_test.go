package tank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindProfile(t *testing.T) {
	w := NewWind(50)

	// the profile passes through the basic speed at the basic height
	assert.InDelta(t, 50, w.SpeedAt(10), 1e-12)
	assert.InDelta(t, 1.29*50*50/2, w.Pressure10(), 1e-9)
	assert.InDelta(t, w.Pressure10(), w.PressureAt(10), 1e-9)

	// power-law profile grows with height
	assert.Less(t, w.SpeedAt(5), w.SpeedAt(10))
	assert.Less(t, w.SpeedAt(10), w.SpeedAt(17))
}

func TestWindSFactors(t *testing.T) {
	w := NewWind(50)
	w.S1, w.S2, w.S3 = 1.1, 0.95, 1.0
	assert.InDelta(t, 50*1.1*0.95, w.CharacteristicSpeed(), 1e-12)
}

func TestStripForce_MatchesNumericIntegration(t *testing.T) {
	w := NewWind(50)
	cd, width, z0, z1 := 0.88, 0.8, 0.0, 12.0

	// midpoint rule with a fine step
	steps := 200000
	dz := (z1 - z0) / float64(steps)
	var force, moment float64
	for i := 0; i < steps; i++ {
		z := z0 + (float64(i)+0.5)*dz
		q := w.PressureAt(z)
		force += cd * width * q * dz
		moment += cd * width * q * z * dz
	}

	assert.InDelta(t, force, w.stripForce(cd, width, z0, z1), force*1e-4)
	assert.InDelta(t, moment, w.stripMoment(cd, width, z0, z1), moment*1e-4)
}

func TestNew_CatalogueOnly(t *testing.T) {
	w := NewWind(50)

	for _, c := range []int{15, 20, 30, 60} {
		_, err := New(w, c)
		assert.NoError(t, err, "capacity %d", c)
	}

	_, err := New(w, 25)
	assert.ErrorIs(t, err, ErrUnknownCapacity)
}

func TestCatalogueDimensions(t *testing.T) {
	w := NewWind(50)
	tk, err := New(w, 30)
	require.NoError(t, err)

	assert.Equal(t, 0.80, tk.ShaftDiameter())
	assert.Equal(t, 12.0, tk.ShaftHeight())
	assert.Equal(t, 2.3, tk.CupDiameter())
	assert.Equal(t, 5.9, tk.CupHeight())
	assert.InDelta(t, 17.9, tk.TotalHeight(), 1e-12)
}

func TestGravityLoads(t *testing.T) {
	w := NewWind(50)
	tk, err := New(w, 30)
	require.NoError(t, err)

	assert.InDelta(t, 30*1.5*1000, tk.SelfWeight(), 1e-9)
	assert.InDelta(t, 30*9.80665*1000, tk.WaterWeight(), 1e-9)
	assert.InDelta(t, tk.SelfWeight()+tk.WaterWeight(), tk.GravityLoad(true), 1e-9)
	assert.InDelta(t, tk.SelfWeight(), tk.GravityLoad(false), 1e-9)
}

func TestDragCoefficient(t *testing.T) {
	// table knots are reproduced exactly
	assert.InDelta(t, 1.2, DragCoefficient(0), 1e-12)
	assert.InDelta(t, 0.98, DragCoefficient(0.025), 1e-12)
	assert.InDelta(t, 0.68, DragCoefficient(0.5), 1e-12)
	assert.InDelta(t, 0.74, DragCoefficient(1), 1e-12)

	// linear between knots
	assert.InDelta(t, (1.2+0.98)/2, DragCoefficient(0.0125), 1e-12)

	// clamped outside the table
	assert.InDelta(t, 1.2, DragCoefficient(-0.5), 1e-12)
	assert.InDelta(t, 0.74, DragCoefficient(2), 1e-12)
}

func TestReactions(t *testing.T) {
	w := NewWind(50)
	tk, err := New(w, 30)
	require.NoError(t, err)

	h, m := tk.Reactions()

	assert.Greater(t, h, 0.0)
	assert.Greater(t, m, 0.0)
	assert.False(t, math.IsNaN(h))
	assert.False(t, math.IsNaN(m))

	// the resultant acts somewhere on the tank height
	centroid := m / h
	assert.Greater(t, centroid, 0.0)
	assert.Less(t, centroid, tk.TotalHeight())
}

func TestReactions_ScaleWithWindSpeedSquared(t *testing.T) {
	t1, err := New(NewWind(25), 30)
	require.NoError(t, err)
	t2, err := New(NewWind(50), 30)
	require.NoError(t, err)

	h1, m1 := t1.Reactions()
	h2, m2 := t2.Reactions()

	assert.InDelta(t, 4, h2/h1, 1e-9)
	assert.InDelta(t, 4, m2/m1, 1e-9)
}
