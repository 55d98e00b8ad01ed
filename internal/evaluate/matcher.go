// Package evaluate decides whether aircraft configurations are affected by
// extracted directives. All functions are total over well-formed inputs:
// matching never returns an error.
package evaluate

import (
	"regexp"
	"strings"

	"adcheck/internal/models"
	"adcheck/internal/normalize"
)

var (
	bulletinNumberPattern = regexp.MustCompile(`(a3\d{2}-\d{2}-\d{4})`)
	revisionPattern       = regexp.MustCompile(`rev(?:ision)?\s*(\d+)`)
)

// ModelMatches reports whether the aircraft model matches any of the
// directive's applicable models. Both sides are normalized first; equal
// strings match, and so do pairs where one is a suffix of the other
// ("Boeing 737-800" vs "737-800"). An empty model list matches nothing.
func ModelMatches(aircraftModel string, ruleModels []string) bool {
	am := normalize.Model(aircraftModel)
	for _, rm := range ruleModels {
		nm := normalize.Model(rm)
		if am == nm {
			return true
		}
		if strings.HasSuffix(am, nm) || strings.HasSuffix(nm, am) {
			return true
		}
	}
	return false
}

// hasExcludingModification reports whether any modification installed on
// the aircraft matches any of the directive's exclusion descriptors.
//
// The policy is deliberately permissive: partial evidence that an excluding
// modification is present is enough to exempt the aircraft. In particular,
// when the exclusion descriptor carries a service-bulletin revision and the
// aircraft's record of the same bulletin does not, the pair still matches.
func hasExcludingModification(aircraftMods, excluded []string) bool {
	for _, aircraftMod := range aircraftMods {
		am := strings.ToLower(strings.TrimSpace(aircraftMod))
		for _, excludedMod := range excluded {
			exc := strings.ToLower(strings.TrimSpace(excludedMod))
			// Context like "(production)" or "(service)" is stripped for
			// comparison.
			excBase := exc
			if i := strings.Index(exc, "("); i >= 0 {
				excBase = strings.TrimSpace(exc[:i])
			}

			if am == exc || am == excBase {
				return true
			}
			// "mod 24591" matches "mod 24591 (production)".
			if excBase != "" && (strings.Contains(am, excBase) || strings.Contains(excBase, am)) {
				return true
			}

			if strings.Contains(am, "sb ") && strings.Contains(excBase, "sb ") {
				amSB := bulletinNumberPattern.FindStringSubmatch(am)
				excSB := bulletinNumberPattern.FindStringSubmatch(excBase)
				if amSB == nil || excSB == nil || amSB[1] != excSB[1] {
					continue
				}
				amRev := revisionPattern.FindStringSubmatch(am)
				excRev := revisionPattern.FindStringSubmatch(excBase)
				switch {
				case excRev != nil && amRev != nil:
					if amRev[1] == excRev[1] {
						return true
					}
				case excRev != nil:
					// The exclusion names a revision the aircraft record
					// does not; the unspecified revision is treated as
					// satisfying it.
					return true
				default:
					// No revision on the exclusion side: any revision of
					// the bulletin qualifies.
					return true
				}
			}
		}
	}
	return false
}

// IsAffected decides applicability of one directive to one aircraft via
// three ordered, short-circuiting checks: model match, serial-number
// constraint, then exclusion scan. All three must pass for "affected".
func IsAffected(aircraft models.AircraftConfig, d models.Directive) bool {
	if !ModelMatches(aircraft.Model, d.Rules.Models) {
		return false
	}
	if !d.Rules.SerialConstraint.Contains(aircraft.SerialNumber) {
		return false
	}
	if len(aircraft.Modifications) > 0 && len(d.Rules.ExcludedIfModifications) > 0 {
		if hasExcludingModification(aircraft.Modifications, d.Rules.ExcludedIfModifications) {
			return false
		}
	}
	return true
}
