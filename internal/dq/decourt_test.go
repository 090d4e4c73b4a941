package dq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableLookups(t *testing.T) {
	tests := []struct {
		soil      SoilCategory
		method    Method
		wantAlpha float64
		wantBeta  float64
	}{
		{Clay, Driven, 1.00, 1.00},
		{Clay, Strauss, 0.85, 0.85},
		{SiltyClay, Strauss, 0.60, 0.65},
		{SiltyClay, Bentonite, 0.60, 0.75},
		{SandySilt, ContinuousFlightAuger, 0.30, 1.00},
		{Sand, Strauss, 0.50, 0.50},
		{Sand, Root, 0.50, 1.50},
		{Clay, HighPressureInjected, 1.00, 3.00},
	}
	for _, tc := range tests {
		a, err := Alpha(tc.soil, tc.method)
		require.NoError(t, err)
		assert.Equal(t, tc.wantAlpha, a, "alpha %s/%s", tc.soil, tc.method)

		b, err := Beta(tc.soil, tc.method)
		require.NoError(t, err)
		assert.Equal(t, tc.wantBeta, b, "beta %s/%s", tc.soil, tc.method)
	}
}

func TestKConstants(t *testing.T) {
	want := map[SoilCategory]float64{
		Clay:      120e3,
		SiltyClay: 200e3,
		SandySilt: 250e3,
		Sand:      400e3,
	}
	for soil, k := range want {
		got, err := K(soil)
		require.NoError(t, err)
		assert.Equal(t, k, got, "K %s", soil)
	}
}

func TestUnknownMembers(t *testing.T) {
	_, err := Alpha(SoilCategory(99), Driven)
	assert.ErrorIs(t, err, ErrUnknownSoil)

	_, err = Alpha(Clay, Method(99))
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, err = Beta(SoilCategory(-1), Driven)
	assert.ErrorIs(t, err, ErrUnknownSoil)

	_, err = K(SoilCategory(99))
	assert.ErrorIs(t, err, ErrUnknownSoil)
}

func TestParse(t *testing.T) {
	s, err := ParseSoil("Silty-Clay")
	require.NoError(t, err)
	assert.Equal(t, SiltyClay, s)

	m, err := ParseMethod(" strauss ")
	require.NoError(t, err)
	assert.Equal(t, Strauss, m)

	_, err = ParseSoil("peat")
	assert.ErrorIs(t, err, ErrUnknownSoil)

	_, err = ParseMethod("augered")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestClassification(t *testing.T) {
	assert.True(t, Clay.Cohesive())
	assert.True(t, SiltyClay.Cohesive())
	assert.False(t, SandySilt.Cohesive())
	assert.False(t, Sand.Cohesive())

	assert.True(t, Strauss.Bored())
	assert.True(t, Bentonite.Bored())
	assert.False(t, Driven.Bored())
	assert.False(t, ContinuousFlightAuger.Bored())
	assert.False(t, Root.Bored())
	assert.False(t, HighPressureInjected.Bored())
}

func TestGoverningCombination(t *testing.T) {
	loads := BaseLoads{
		Permanent: 45000,
		Water:     294199.5,
		Shear:     29000,
		Moment:    363000,
	}
	n, h, m, combo := Governing(loads, ULSCombinations)

	// 1.35G + 1.50Q governs the vertical load
	assert.Equal(t, "1", combo.ID)
	assert.InDelta(t, 1.35*45000+1.5*294199.5, n, 1e-9)
	assert.InDelta(t, 1.5*29000, h, 1e-9)
	assert.InDelta(t, 1.5*363000, m, 1e-9)
}
