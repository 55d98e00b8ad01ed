package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcheck/internal/models"
)

func TestEvaluate(t *testing.T) {
	aircraft := models.AircraftConfig{Model: "MD-11F", SerialNumber: 48400}
	directives := []models.Directive{faaDirective(), easaDirective()}

	results := Evaluate(aircraft, directives)

	require.Len(t, results, 2)
	assert.Equal(t, models.Affected, results["FAA-2025-23-53"])
	assert.Equal(t, models.NotApplicable, results["EASA-2025-0254R1"])
}

func TestEvaluateFleetShapeAndOrder(t *testing.T) {
	fleet := []models.AircraftConfig{
		{Model: "MD-11F", SerialNumber: 48400},
		{Model: "A320-214", SerialNumber: 4500, Modifications: []string{"mod 24591"}},
		{Model: "Boeing 737-800", SerialNumber: 30123},
	}
	directives := []models.Directive{faaDirective(), easaDirective()}

	results := EvaluateFleet(fleet, directives)

	// Exactly N x M outcomes, aircraft and directive order preserved.
	require.Len(t, results, len(fleet))
	for i, r := range results {
		assert.Equal(t, fleet[i], r.Aircraft)
		require.Len(t, r.Outcomes, len(directives))
		for j, o := range r.Outcomes {
			assert.Equal(t, directives[j].ID, o.DirectiveID)
		}
	}

	assert.Equal(t, models.Affected, results[0].Outcomes[0].Outcome)
	assert.Equal(t, models.NotApplicable, results[0].Outcomes[1].Outcome)
	assert.Equal(t, models.NotApplicable, results[1].Outcomes[0].Outcome)
	assert.Equal(t, models.NotApplicable, results[1].Outcomes[1].Outcome)
	// The 737 matches neither directive.
	assert.Equal(t, models.NotApplicable, results[2].Outcomes[0].Outcome)
	assert.Equal(t, models.NotApplicable, results[2].Outcomes[1].Outcome)
}

func TestEvaluateFleetDuplicateIDsKeepColumns(t *testing.T) {
	d := faaDirective()
	results := EvaluateFleet(
		[]models.AircraftConfig{{Model: "MD-11", SerialNumber: 1}},
		[]models.Directive{d, d},
	)

	require.Len(t, results, 1)
	require.Len(t, results[0].Outcomes, 2)
	assert.Equal(t, results[0].Outcomes[0], results[0].Outcomes[1])
}

func TestEvaluateFleetEmpty(t *testing.T) {
	assert.Empty(t, EvaluateFleet(nil, []models.Directive{faaDirective()}))

	results := EvaluateFleet([]models.AircraftConfig{{Model: "MD-11", SerialNumber: 1}}, nil)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Outcomes)
}
