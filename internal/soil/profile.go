package soil

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfRange reports a pile length or depth beyond the surveyed profile.
	ErrOutOfRange = errors.New("beyond surveyed depth")

	// ErrInvalidGeometry reports a degenerate geometry such as an empty
	// averaging window or a non-positive length.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// Profile holds SPT blow counts measured one per metre of depth, index 0 at
// the surface. When several borings exist the caller averages them first,
// so values may be fractional.
type Profile struct {
	measurements []float64
}

// NewProfile builds an immutable profile from survey data.
func NewProfile(measurements []float64) (*Profile, error) {
	if len(measurements) == 0 {
		return nil, fmt.Errorf("%w: empty SPT series", ErrInvalidGeometry)
	}
	m := make([]float64, len(measurements))
	copy(m, measurements)
	return &Profile{measurements: m}, nil
}

// SurveyedDepth is the depth reached by the SPT survey, in metres.
func (p *Profile) SurveyedDepth() int {
	return len(p.measurements)
}

// Raw returns a copy of the measured blow counts.
func (p *Profile) Raw() []float64 {
	out := make([]float64, len(p.measurements))
	copy(out, p.measurements)
	return out
}

// Adjusted returns the blow counts clamped to [3, 50]. The empirical
// correlations are only validated inside that band, regional practice
// saturates values outside it.
func (p *Profile) Adjusted() []float64 {
	out := make([]float64, len(p.measurements))
	for i, v := range p.measurements {
		out[i] = math.Min(math.Max(v, 3), 50)
	}
	return out
}

// TipAverage is the mean adjusted blow count over the three metres
// straddling the pile tip.
func (p *Profile) TipAverage(pileLength float64) (float64, error) {
	depth := p.SurveyedDepth()
	l := int(pileLength)
	if l > depth {
		return 0, fmt.Errorf("%w: pile length %g m exceeds surveyed depth %d m",
			ErrOutOfRange, pileLength, depth)
	}
	if l < 2 {
		return 0, fmt.Errorf("%w: pile length %g m leaves no tip averaging window",
			ErrInvalidGeometry, pileLength)
	}
	s := p.Adjusted()
	if l == depth {
		if depth < 3 {
			return 0, fmt.Errorf("%w: survey of %d m leaves no tip averaging window",
				ErrInvalidGeometry, depth)
		}
		// Tip at the bottom of the survey: use the last three metres.
		return (s[depth-3] + s[depth-2] + s[depth-1]) / 3, nil
	}
	return (s[l-2] + s[l-1] + s[l]) / 3, nil
}

// ShaftAverage is the mean adjusted blow count along the shaft, from the
// surface down to the start of the tip averaging zone.
func (p *Profile) ShaftAverage(pileLength float64) (float64, error) {
	depth := p.SurveyedDepth()
	l := int(pileLength)
	if l > depth {
		return 0, fmt.Errorf("%w: pile length %g m exceeds surveyed depth %d m",
			ErrOutOfRange, pileLength, depth)
	}
	if l-2 <= 0 {
		return 0, fmt.Errorf("%w: pile length %g m leaves no shaft averaging window",
			ErrInvalidGeometry, pileLength)
	}
	s := p.Adjusted()[:l-2]
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s)), nil
}

// BlowCountAt returns the adjusted blow count governing at depth z. The
// first metre has no measurement above it and returns zero.
func (p *Profile) BlowCountAt(z float64) (float64, error) {
	d := int(math.Floor(z))
	if d <= 0 {
		return 0, nil
	}
	if d >= p.SurveyedDepth() {
		return 0, fmt.Errorf("%w: depth %g m exceeds surveyed depth %d m",
			ErrOutOfRange, z, p.SurveyedDepth())
	}
	return p.Adjusted()[d], nil
}
