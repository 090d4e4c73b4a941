package tank

import "math"

// Wind is a power-law wind profile in the manner of NP 196.
type Wind struct {
	BasicSpeed  float64 // m/s at the basic height
	BasicHeight float64 // m
	Gamma       float64 // profile exponent
	S1          float64 // topographic factor
	S2          float64 // combined factor
	S3          float64 // statistical factor
	AirDensity  float64 // kg/m³
}

// NewWind builds a wind model with the standard profile constants.
func NewWind(basicSpeed float64) Wind {
	return Wind{
		BasicSpeed:  basicSpeed,
		BasicHeight: 10,
		Gamma:       2. / 7.,
		S1:          1,
		S2:          1,
		S3:          1,
		AirDensity:  1.29,
	}
}

// CharacteristicSpeed is the basic speed with the S factors applied (m/s).
func (w Wind) CharacteristicSpeed() float64 {
	return w.S1 * w.S2 * w.S3 * w.BasicSpeed
}

// SpeedAt is the wind speed at height z (m/s): vk·(z/h0)^γ.
func (w Wind) SpeedAt(z float64) float64 {
	return w.CharacteristicSpeed() * math.Pow(z/w.BasicHeight, w.Gamma)
}

// PressureAt is the dynamic pressure at height z (Pa), before any drag
// coefficient.
func (w Wind) PressureAt(z float64) float64 {
	v := w.SpeedAt(z)
	return w.AirDensity * v * v / 2
}

// Pressure10 is the dynamic pressure at the basic height (Pa).
func (w Wind) Pressure10() float64 {
	vk := w.CharacteristicSpeed()
	return w.AirDensity * vk * vk / 2
}

// stripForce integrates cd·width·q(z) over [z0, z1] (N). With
// q(z) = ρ/2·vk²·(z/h0)^(2γ) the antiderivative is elementary.
func (w Wind) stripForce(cd, width, z0, z1 float64) float64 {
	e := 2 * w.Gamma
	q0 := w.Pressure10() / math.Pow(w.BasicHeight, e)
	return cd * width * q0 * (math.Pow(z1, e+1) - math.Pow(z0, e+1)) / (e + 1)
}

// stripMoment integrates cd·width·q(z)·z over [z0, z1] (N·m about z=0).
func (w Wind) stripMoment(cd, width, z0, z1 float64) float64 {
	e := 2 * w.Gamma
	q0 := w.Pressure10() / math.Pow(w.BasicHeight, e)
	return cd * width * q0 * (math.Pow(z1, e+2) - math.Pow(z0, e+2)) / (e + 2)
}
