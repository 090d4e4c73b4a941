package dq

import (
	"errors"
	"fmt"
	"strings"
)

// Decourt-Quaresma empirical coefficients for pile bearing capacity,
// as tabulated for the NBR-6122 design workflow.

// SoilCategory classifies the soil for the Decourt-Quaresma correlations.
type SoilCategory int

const (
	Clay SoilCategory = iota
	SiltyClay
	SandySilt
	Sand
	numSoils
)

// Method is the pile installation method.
type Method int

const (
	Driven Method = iota
	Strauss
	Bentonite
	ContinuousFlightAuger
	Root
	HighPressureInjected
	numMethods
)

var (
	ErrUnknownSoil   = errors.New("unknown soil category")
	ErrUnknownMethod = errors.New("unknown installation method")
)

var soilNames = [...]string{"clay", "silty-clay", "sandy-silt", "sand"}

var methodNames = [...]string{
	"driven", "strauss", "bentonite", "cfa", "root", "injected",
}

func (s SoilCategory) String() string {
	if s < 0 || s >= numSoils {
		return fmt.Sprintf("SoilCategory(%d)", int(s))
	}
	return soilNames[s]
}

func (m Method) String() string {
	if m < 0 || m >= numMethods {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Valid reports whether the category is a member of the table.
func (s SoilCategory) Valid() bool { return s >= 0 && s < numSoils }

// Valid reports whether the method is a member of the table.
func (m Method) Valid() bool { return m >= 0 && m < numMethods }

// Cohesive reports whether the category is treated as cohesive for the
// horizontal subgrade reaction formula.
func (s SoilCategory) Cohesive() bool { return s == Clay || s == SiltyClay }

// Bored reports whether the method is a bored, non-displacement installation
// subject to the NBR-6122 8.2.1.2 tip-capacity limit.
func (m Method) Bored() bool { return m == Strauss || m == Bentonite }

// ParseSoil resolves a CLI soil name to its category.
func ParseSoil(name string) (SoilCategory, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range soilNames {
		if n == s {
			return SoilCategory(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownSoil, name, strings.Join(soilNames[:], ", "))
}

// ParseMethod resolves a CLI method name to its installation method.
func ParseMethod(name string) (Method, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, m := range methodNames {
		if n == m {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownMethod, name, strings.Join(methodNames[:], ", "))
}

// alpha: tip reduction factor, rows by method, columns by soil category.
var alpha = [numMethods][numSoils]float64{
	Driven:                {1.00, 1.00, 1.00, 1.00},
	Strauss:               {0.85, 0.60, 0.60, 0.50},
	Bentonite:             {0.85, 0.60, 0.60, 0.50},
	ContinuousFlightAuger: {0.30, 0.30, 0.30, 0.30},
	Root:                  {0.85, 0.60, 0.60, 0.50},
	HighPressureInjected:  {1.00, 1.00, 1.00, 1.00},
}

// beta: shaft adhesion factor, rows by method, columns by soil category.
var beta = [numMethods][numSoils]float64{
	Driven:                {1.00, 1.00, 1.00, 1.00},
	Strauss:               {0.85, 0.65, 0.65, 0.50},
	Bentonite:             {0.90, 0.75, 0.75, 0.60},
	ContinuousFlightAuger: {1.00, 1.00, 1.00, 1.00},
	Root:                  {1.50, 1.50, 1.50, 1.50},
	HighPressureInjected:  {3.00, 3.00, 3.00, 3.00},
}

// k: tip resistance constant, Pa per SPT blow, by soil category.
var k = [numSoils]float64{
	Clay:      120e3,
	SiltyClay: 200e3,
	SandySilt: 250e3,
	Sand:      400e3,
}

// Alpha returns the tip reduction factor for a soil/method pair.
func Alpha(soil SoilCategory, method Method) (float64, error) {
	if !soil.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSoil, int(soil))
	}
	if !method.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	return alpha[method][soil], nil
}

// Beta returns the shaft adhesion factor for a soil/method pair.
func Beta(soil SoilCategory, method Method) (float64, error) {
	if !soil.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSoil, int(soil))
	}
	if !method.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
	return beta[method][soil], nil
}

// K returns the tip resistance constant (Pa per blow) for a soil category.
func K(soil SoilCategory) (float64, error) {
	if !soil.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownSoil, int(soil))
	}
	return k[soil], nil
}
