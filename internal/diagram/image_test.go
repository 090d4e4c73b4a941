package diagram

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredyGabriel/base-tanque/internal/soil"
)

func testProfile(t *testing.T) *soil.Profile {
	t.Helper()
	p, err := soil.NewProfile([]float64{2, 2, 3, 4, 6, 5, 7, 8, 9, 12})
	require.NoError(t, err)
	return p
}

func TestExportSoilProfile_CreatesOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "plots", "profile.png")

	require.NoError(t, ExportSoilProfile(testProfile(t), out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportSoilProfile_DirectoryCreationFails(t *testing.T) {
	// A regular file where the output directory should go makes the
	// directory creation fail, which must surface as an error.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0644))

	err := ExportSoilProfile(testProfile(t), filepath.Join(blocked, "sub", "profile.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
}

func TestExportCapacityCurve(t *testing.T) {
	points := []CapacityPoint{
		{Length: 3, Capacity: 80e3},
		{Length: 6, Capacity: 140e3},
		{Length: 9, Capacity: 210e3},
		{Length: 12, Capacity: 260e3},
	}
	out := filepath.Join(t.TempDir(), "capacity.svg")

	require.NoError(t, ExportCapacityCurve(points, 9, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCapacityCurve_NoPoints(t *testing.T) {
	err := ExportCapacityCurve(nil, 10, "unused.png")
	assert.Error(t, err)
}
