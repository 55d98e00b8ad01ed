package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const easaApplicabilityText = `Applicability:
Airbus A320-214, A320-232 and A321-111 aeroplanes, all manufacturer serial
numbers, except those on which Airbus modification (mod) 24591 has been
embodied in production; and except those on which Airbus SB A320-57-1089 at
Revision 04 has been embodied in service.

Reason:
Cracks were found on trailing edge flap rotary actuators.

Required Action(s) and Compliance Time(s):
Within 12 months, modify the aeroplane in accordance with the instructions of Airbus SB A320-57-1089 Revision 04.
`

func TestParseEASAApplicability(t *testing.T) {
	got := parseEASAApplicability(easaApplicabilityText)

	assert.Equal(t, []string{
		"SB A320-57-1089 Rev 04",
		"mod 24591 (production)",
	}, got.excludedMods)
	assert.Equal(t, []string{"SB A320-57-1089 Revision 04"}, got.requiredMods)
	assert.Empty(t, got.notes)
}

func TestParseEASAApplicabilityServiceContext(t *testing.T) {
	text := `Applicability:
A321-111 aeroplanes, except those on which mod 24977 has been embodied in service.
Reason: fatigue.`

	got := parseEASAApplicability(text)
	assert.Equal(t, []string{"mod 24977 (service)"}, got.excludedMods)
}

func TestParseEASAApplicabilityModPatternFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		clause   string
		expected string
	}{
		{"modification (mod) form", "except those on which modification (mod) 24591 has been embodied in production;", "mod 24591 (production)"},
		{"bare mod form", "except those on which Airbus mod 24591 has been embodied in production;", "mod 24591 (production)"},
		{"parenthesized form", "except those on which (mod) 24591 has been embodied in production;", "mod 24591 (production)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseEASAApplicability("Applicability:\n" + tt.clause + "\nReason: x.")
			assert.Equal(t, []string{tt.expected}, got.excludedMods)
		})
	}
}

func TestParseEASAApplicabilityBulletinWithoutRevision(t *testing.T) {
	text := `Applicability:
A320-214 aeroplanes, except those on which SB A320-57-1060 has been embodied.
Reason: x.`

	got := parseEASAApplicability(text)
	assert.Equal(t, []string{"SB A320-57-1060"}, got.excludedMods)
}

func TestParseEASAApplicabilityDegradedMode(t *testing.T) {
	// No "Applicability:" label: the whole document is scanned and the
	// degraded mode is noted.
	text := "A320-214 aeroplanes, except those on which mod 24591 has been embodied in production; more text."

	got := parseEASAApplicability(text)
	assert.Equal(t, []string{"mod 24591 (production)"}, got.excludedMods)
	assert.NotEmpty(t, got.notes)
}

func TestParseEASAApplicabilityNoClauses(t *testing.T) {
	text := `Applicability:
A320-214 aeroplanes, all manufacturer serial numbers.
Reason: x.`

	got := parseEASAApplicability(text)
	assert.Empty(t, got.excludedMods)
	assert.Empty(t, got.requiredMods)
	assert.Empty(t, got.notes)
}
