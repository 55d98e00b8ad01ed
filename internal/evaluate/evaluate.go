package evaluate

import "adcheck/internal/models"

// RecordOutcome pairs a directive id with the outcome for one aircraft.
type RecordOutcome struct {
	DirectiveID string
	Outcome     models.Outcome
}

// FleetResult holds the outcomes for one aircraft across all directives,
// in directive input order.
type FleetResult struct {
	Aircraft models.AircraftConfig
	Outcomes []RecordOutcome
}

// Evaluate applies the matcher to one aircraft across all directives and
// returns the outcome keyed by directive id.
func Evaluate(aircraft models.AircraftConfig, directives []models.Directive) map[string]models.Outcome {
	results := make(map[string]models.Outcome, len(directives))
	for _, d := range directives {
		outcome := models.NotApplicable
		if IsAffected(aircraft, d) {
			outcome = models.Affected
		}
		results[d.ID] = outcome
	}
	return results
}

// EvaluateFleet evaluates every aircraft against every directive, producing
// exactly len(fleet) x len(directives) outcomes. Aircraft and directive
// input order is preserved, so duplicate directive ids cannot collapse
// columns.
func EvaluateFleet(fleet []models.AircraftConfig, directives []models.Directive) []FleetResult {
	results := make([]FleetResult, 0, len(fleet))
	for _, aircraft := range fleet {
		outcomes := make([]RecordOutcome, 0, len(directives))
		for _, d := range directives {
			outcome := models.NotApplicable
			if IsAffected(aircraft, d) {
				outcome = models.Affected
			}
			outcomes = append(outcomes, RecordOutcome{DirectiveID: d.ID, Outcome: outcome})
		}
		results = append(results, FleetResult{Aircraft: aircraft, Outcomes: outcomes})
	}
	return results
}
