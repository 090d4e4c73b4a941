package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// surveyed profile averaged from two borings of the reference project
var surveySPT = []float64{
	2, 2, 2, 2, 2, 2, 3, 3.5, 6, 4.5, 5.5,
	5, 5.5, 5, 7, 7.5, 8, 8, 8.5, 9, 12, 15.5,
}

func TestNewProfile_Empty(t *testing.T) {
	_, err := NewProfile(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestAdjusted_ClampedToBand(t *testing.T) {
	p, err := NewProfile([]float64{0, 1, 2, 3, 4, 49, 50, 51, 80})
	require.NoError(t, err)

	adjusted := p.Adjusted()
	for i, v := range adjusted {
		assert.GreaterOrEqual(t, v, 3.0, "index %d", i)
		assert.LessOrEqual(t, v, 50.0, "index %d", i)
	}
	assert.Equal(t, []float64{3, 3, 3, 3, 4, 49, 50, 50, 50}, adjusted)
}

func TestAdjusted_DoesNotMutateProfile(t *testing.T) {
	raw := []float64{1, 5, 60}
	p, err := NewProfile(raw)
	require.NoError(t, err)

	_ = p.Adjusted()
	assert.Equal(t, []float64{1, 5, 60}, p.Raw())
}

func TestTipAverage(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	tests := []struct {
		name   string
		length float64
		want   float64
	}{
		// straddling window: adjusted[13], adjusted[14], adjusted[15]
		{"worked example L=15", 15, (5 + 7 + 7.5) / 3},
		// tip at survey bottom: last three metres, adjusted[19..21]
		{"length equals depth", 22, (9 + 12 + 15.5) / 3},
		// one metre short of the bottom straddles the same three values
		{"one metre above bottom", 21, (9 + 12 + 15.5) / 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.TipAverage(tc.length)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestTipAverage_BeyondSurvey(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	_, err = p.TipAverage(23)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTipAverage_TooShort(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	_, err = p.TipAverage(1)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestShaftAverage(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	// adjusted values above the tip zone: indices 0 through 12
	got, err := p.ShaftAverage(15)
	require.NoError(t, err)
	want := (3*7 + 3.5 + 6 + 4.5 + 5.5 + 5 + 5.5) / 13.0
	assert.InDelta(t, want, got, 1e-12)
}

func TestShaftAverage_Errors(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	_, err = p.ShaftAverage(23)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// a 2 m pile leaves an empty shaft window
	_, err = p.ShaftAverage(2)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestAverages_FiniteAcrossValidLengths(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	for l := 3; l <= p.SurveyedDepth(); l++ {
		np, err := p.TipAverage(float64(l))
		require.NoError(t, err, "tip L=%d", l)
		nl, err := p.ShaftAverage(float64(l))
		require.NoError(t, err, "shaft L=%d", l)
		assert.Greater(t, np, 0.0)
		assert.Greater(t, nl, 0.0)
	}
}

func TestBlowCountAt(t *testing.T) {
	p, err := NewProfile(surveySPT)
	require.NoError(t, err)

	// no measurement above the first metre
	n, err := p.BlowCountAt(0.5)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = p.BlowCountAt(8.2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, n) // adjusted[8]

	_, err = p.BlowCountAt(25)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
