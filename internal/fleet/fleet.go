// Package fleet provides the built-in sample aircraft configurations and
// verification cases, plus loading of fleet files.
package fleet

import (
	"encoding/json"
	"fmt"
	"os"

	"adcheck/internal/models"
	"adcheck/internal/report"
)

// Sample returns the built-in aircraft configurations evaluated by default.
func Sample() []models.AircraftConfig {
	return []models.AircraftConfig{
		{Model: "MD-11", SerialNumber: 48123, Modifications: []string{}},
		{Model: "DC-10-30F", SerialNumber: 47890, Modifications: []string{}},
		{Model: "Boeing 737-800", SerialNumber: 30123, Modifications: []string{}},
		{Model: "A320-214", SerialNumber: 5234, Modifications: []string{}},
		{Model: "A320-232", SerialNumber: 6789, Modifications: []string{"mod 24591"}},
		{Model: "A320-214", SerialNumber: 7456, Modifications: []string{"SB A320-57-1089 Rev 04"}},
		{Model: "A321-111", SerialNumber: 8123, Modifications: []string{}},
		{Model: "A321-112", SerialNumber: 364, Modifications: []string{"mod 24977"}},
		{Model: "A319-100", SerialNumber: 9234, Modifications: []string{}},
		{Model: "MD-10-10F", SerialNumber: 46234, Modifications: []string{}},
	}
}

// VerificationCases returns the built-in expected-outcome cases used by the
// verify command. The second case's negative expectation is spelled
// "Not affected" in the historic records; the comparison treats it as a
// synonym for "Not applicable".
func VerificationCases() []report.VerificationCase {
	return []report.VerificationCase{
		{
			Aircraft: models.AircraftConfig{Model: "MD-11F", SerialNumber: 48400, Modifications: []string{}},
			Expected: map[string]string{
				"FAA-2025-23-53":   "Affected",
				"EASA-2025-0254R1": "Not applicable",
			},
		},
		{
			Aircraft: models.AircraftConfig{Model: "A320-214", SerialNumber: 4500, Modifications: []string{"mod 24591"}},
			Expected: map[string]string{
				"FAA-2025-23-53":   "Not applicable",
				"EASA-2025-0254R1": "Not affected",
			},
		},
		{
			Aircraft: models.AircraftConfig{Model: "A320-214", SerialNumber: 4500, Modifications: []string{}},
			Expected: map[string]string{
				"FAA-2025-23-53":   "Not applicable",
				"EASA-2025-0254R1": "Affected",
			},
		},
	}
}

// Load reads aircraft configurations from a JSON fleet file.
func Load(path string) ([]models.AircraftConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fleet file %s: %w", path, err)
	}
	var fleet []models.AircraftConfig
	if err := json.Unmarshal(data, &fleet); err != nil {
		return nil, fmt.Errorf("failed to decode fleet file %s: %w", path, err)
	}
	return fleet, nil
}
