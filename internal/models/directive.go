package models

// Authority identifies the regulator that issued a directive.
type Authority string

const (
	AuthorityFAA     Authority = "FAA"
	AuthorityEASA    Authority = "EASA"
	AuthorityUnknown Authority = "UNKNOWN"
)

// UnknownID is the sentinel directive id used when extraction cannot
// determine one. Records carrying it are retained but flagged.
const UnknownID = "UNKNOWN"

// ConstraintKind discriminates the payload of a SerialConstraint.
type ConstraintKind string

const (
	ConstraintAll   ConstraintKind = "all"
	ConstraintRange ConstraintKind = "range"
	ConstraintList  ConstraintKind = "list"
)

// SerialConstraint describes which manufacturer serial numbers (MSNs) a
// directive covers. Exactly the fields relevant to Kind are populated:
// Values only for "list", Min/Max only for "range" (nil bound = unbounded).
// The zero value behaves as "all".
type SerialConstraint struct {
	Kind   ConstraintKind `json:"kind"`
	Values []int          `json:"values,omitempty"`
	Min    *int           `json:"min,omitempty"`
	Max    *int           `json:"max,omitempty"`
}

// AllSerials returns the unconstrained serial constraint.
func AllSerials() SerialConstraint {
	return SerialConstraint{Kind: ConstraintAll}
}

// SerialRange returns an inclusive-bounds range constraint.
func SerialRange(min, max int) SerialConstraint {
	return SerialConstraint{Kind: ConstraintRange, Min: &min, Max: &max}
}

// SerialList returns a membership constraint over the given serials.
func SerialList(values ...int) SerialConstraint {
	return SerialConstraint{Kind: ConstraintList, Values: values}
}

// Contains reports whether the given serial number satisfies the constraint.
// A range with both bounds absent behaves as "all"; a range with Min > Max
// matches nothing. Unrecognized kinds match everything rather than failing.
func (c SerialConstraint) Contains(serial int) bool {
	switch c.Kind {
	case ConstraintRange:
		if c.Min != nil && serial < *c.Min {
			return false
		}
		if c.Max != nil && serial > *c.Max {
			return false
		}
		return true
	case ConstraintList:
		for _, v := range c.Values {
			if v == serial {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// ApplicabilityRules is the structured core of one directive: which models
// and serial numbers it covers, and which installed modifications exempt an
// aircraft from it.
type ApplicabilityRules struct {
	// Models holds the applicable model designators, normalized and sorted.
	// Empty means extraction found no applicability: such a record matches
	// no aircraft.
	Models []string `json:"models"`

	SerialConstraint SerialConstraint `json:"serial_constraint"`

	// ExcludedIfModifications lists modification/service-bulletin descriptors
	// that exempt an aircraft from the directive when installed.
	ExcludedIfModifications []string `json:"excluded_if_modifications"`

	// RequiredModifications is informational only; it plays no role in
	// matching and is kept for traceability.
	RequiredModifications []string `json:"required_modifications"`

	Notes string `json:"notes,omitempty"`
}

// Directive is one extracted Airworthiness Directive record. It is built
// once per source document by the assembler, persisted, and never mutated
// by the matcher.
type Directive struct {
	// ID has the form <AUTHORITY>-<NUMBER>, e.g. "FAA-2025-23-53", or the
	// UnknownID sentinel when extraction could not determine one.
	ID               string             `json:"id"`
	Authority        Authority          `json:"authority"`
	EffectiveDate    string             `json:"effective_date,omitempty"`
	Subject          string             `json:"subject,omitempty"`
	Manufacturer     string             `json:"manufacturer,omitempty"`
	Rules            ApplicabilityRules `json:"rules"`
	RelatedBulletins []string           `json:"related_bulletins"`

	// SourceFile records which document the directive was extracted from.
	SourceFile string `json:"source_file,omitempty"`
}

// Identified reports whether extraction determined a real directive id.
func (d Directive) Identified() bool {
	return d.ID != "" && d.ID != UnknownID
}

// AircraftConfig is one candidate aircraft to evaluate against directives.
// Model is kept raw; normalization happens at comparison time.
type AircraftConfig struct {
	Model         string   `json:"model"`
	SerialNumber  int      `json:"serial_number"`
	Modifications []string `json:"modifications"`
}
