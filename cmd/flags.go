package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fredyGabriel/base-tanque/internal/soil"
)

// parseSPT turns a comma-separated blow-count list into a profile.
func parseSPT(list string) (*soil.Profile, error) {
	fields := strings.Split(list, ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SPT value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return soil.NewProfile(values)
}

// loadProfile resolves the SPT input: an inline list wins over a file path.
func loadProfile(inline, file string) (*soil.Profile, error) {
	if inline != "" {
		return parseSPT(inline)
	}
	if file != "" {
		return soil.LoadSPT(file)
	}
	return nil, fmt.Errorf("provide SPT data with --spt or --spt-file")
}
