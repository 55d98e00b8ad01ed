package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Outcome is the two-valued result of evaluating one aircraft against one
// directive.
type Outcome int

const (
	NotApplicable Outcome = iota
	Affected
)

const (
	affectedLabel      = "Affected"
	notApplicableLabel = "Not applicable"
)

func (o Outcome) String() string {
	if o == Affected {
		return affectedLabel
	}
	return notApplicableLabel
}

// MarshalJSON emits exactly "Affected" or "Not applicable".
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON accepts the canonical labels plus the legacy spelling
// "Not affected", which historic rule records used interchangeably with
// "Not applicable". The legacy form is read but never emitted.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(affectedLabel):
		*o = Affected
	case strings.ToLower(notApplicableLabel), "not affected":
		*o = NotApplicable
	default:
		return fmt.Errorf("unknown outcome %q", s)
	}
	return nil
}
