package fleet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcheck/internal/models"
	"adcheck/internal/report"
)

func TestSample(t *testing.T) {
	sample := Sample()
	require.Len(t, sample, 10)

	// A representative spread: with and without modifications.
	assert.Equal(t, models.AircraftConfig{Model: "MD-11", SerialNumber: 48123, Modifications: []string{}}, sample[0])
	assert.Equal(t, []string{"mod 24591"}, sample[4].Modifications)
	assert.Equal(t, []string{"SB A320-57-1089 Rev 04"}, sample[5].Modifications)
}

func TestVerificationCasesAgainstKnownRules(t *testing.T) {
	directives := []models.Directive{
		{
			ID: "FAA-2025-23-53",
			Rules: models.ApplicabilityRules{
				Models:           []string{"MD-11", "MD-11F"},
				SerialConstraint: models.AllSerials(),
			},
		},
		{
			ID: "EASA-2025-0254R1",
			Rules: models.ApplicabilityRules{
				Models:           []string{"A320-214", "A320-232"},
				SerialConstraint: models.AllSerials(),
				ExcludedIfModifications: []string{
					"SB A320-57-1089 Rev 04",
					"mod 24591 (production)",
				},
			},
		},
	}

	results := report.Verify(VerificationCases(), directives)

	require.Len(t, results, 3)
	for i, cr := range results {
		assert.True(t, cr.Pass(), "verification case %d failed", i+1)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.json")
	content := `[
		{"model": "MD-11F", "serial_number": 48400, "modifications": []},
		{"model": "A320-214", "serial_number": 4500, "modifications": ["mod 24591"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	fleet, err := Load(path)
	require.NoError(t, err)
	require.Len(t, fleet, 2)
	assert.Equal(t, "MD-11F", fleet[0].Model)
	assert.Equal(t, 48400, fleet[0].SerialNumber)
	assert.Equal(t, []string{"mod 24591"}, fleet[1].Modifications)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
