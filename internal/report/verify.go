package report

import (
	"regexp"
	"strings"

	"adcheck/internal/evaluate"
	"adcheck/internal/models"
)

// VerificationCase pairs an aircraft with the outcomes expected of it,
// keyed by directive id as written in the expectation source.
type VerificationCase struct {
	Aircraft models.AircraftConfig
	Expected map[string]string
}

// Check is the result of comparing one directive's actual outcome with an
// expectation.
type Check struct {
	DirectiveID string
	Actual      string
	Expected    string
	// HasExpected is false when the case carries no expectation for this
	// directive; such checks are informational and never fail.
	HasExpected bool
	Pass        bool
}

// CaseResult holds all checks of one verification case.
type CaseResult struct {
	Aircraft models.AircraftConfig
	Checks   []Check
}

// Pass reports whether every check with an expectation passed.
func (c CaseResult) Pass() bool {
	for _, chk := range c.Checks {
		if chk.HasExpected && !chk.Pass {
			return false
		}
	}
	return true
}

var idNoise = regexp.MustCompile(`R\d+$|-`)

// matchExpectedID finds the expectation key referring to the given
// directive id. Historic expectation keys are loose about dashes and
// revision suffixes, so ids are compared with both stripped, falling back
// to substring containment.
func matchExpectedID(expected map[string]string, directiveID string) (string, bool) {
	normID := idNoise.ReplaceAllString(directiveID, "")
	for key := range expected {
		normKey := idNoise.ReplaceAllString(key, "")
		if normKey == normID || strings.Contains(directiveID, key) || strings.Contains(key, directiveID) {
			return key, true
		}
	}
	return "", false
}

// sameOutcome compares outcome vocabulary loosely: historic rule records
// use "Not affected" and "Not applicable" interchangeably for the negative
// outcome, a known terminology inconsistency. Anything containing "not" is
// the negative outcome.
func sameOutcome(actual, expected string) bool {
	return strings.Contains(strings.ToLower(actual), "not") ==
		strings.Contains(strings.ToLower(expected), "not")
}

// Verify evaluates each case's aircraft against all directives and compares
// the outcomes with the case's expectations. Mismatches are returned as
// failed checks; Verify itself never fails.
func Verify(cases []VerificationCase, directives []models.Directive) []CaseResult {
	results := make([]CaseResult, 0, len(cases))
	for _, vc := range cases {
		cr := CaseResult{Aircraft: vc.Aircraft}
		for _, d := range directives {
			actual := models.NotApplicable
			if evaluate.IsAffected(vc.Aircraft, d) {
				actual = models.Affected
			}
			chk := Check{DirectiveID: d.ID, Actual: actual.String()}
			if key, ok := matchExpectedID(vc.Expected, d.ID); ok {
				chk.HasExpected = true
				chk.Expected = vc.Expected[key]
				chk.Pass = sameOutcome(chk.Actual, chk.Expected)
			}
			cr.Checks = append(cr.Checks, chk)
		}
		results = append(results, cr)
	}
	return results
}
