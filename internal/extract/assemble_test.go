package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"adcheck/internal/models"
)

const faaDirectiveText = `U.S. DEPARTMENT OF TRANSPORTATION
Federal Aviation Administration
AD 2025-23-53
Effective Date: December 15, 2025
Subject: 57, Trailing Edge Flaps

The FAA is adopting a new airworthiness directive for McDonnell Douglas
Model MD-11 and MD-11F airplanes. This AD applies to all MD-11 and MD-11F
airplanes regardless of modification status.
`

const easaDirectiveText = `European Union Aviation Safety Agency
EASA AD No.: 2025-0254R1
Effective Date: 2025-11-03
ATA Chapter 57 Wings

Applicability:
Airbus A320-214, A320-232 and A321-111 aeroplanes, all manufacturer serial
numbers, except those on which Airbus modification (mod) 24591 has been
embodied in production; and except those on which Airbus SB A320-57-1089 at
Revision 04 has been embodied in service.

Reason:
Cracks were found on trailing edge flap rotary actuators.

Required Action(s) and Compliance Time(s):
Within 12 months, modify the aeroplane in accordance with the instructions of Airbus SB A320-57-1089 Revision 04.
`

func TestAssembleFAA(t *testing.T) {
	d := Assemble(faaDirectiveText, "faa_ad_2025-23-53.txt")

	assert.Equal(t, "FAA-2025-23-53", d.ID)
	assert.Equal(t, models.AuthorityFAA, d.Authority)
	assert.Equal(t, "December 15, 2025", d.EffectiveDate)
	assert.Equal(t, "Trailing Edge Flaps", d.Subject)
	assert.Equal(t, "Boeing (McDonnell Douglas)", d.Manufacturer)
	assert.Equal(t, "faa_ad_2025-23-53.txt", d.SourceFile)
	assert.True(t, d.Identified())

	assert.Equal(t, []string{"MD-11", "MD-11F"}, d.Rules.Models)
	assert.Equal(t, models.AllSerials(), d.Rules.SerialConstraint)
	// Exclusion clauses are an EASA convention.
	assert.Empty(t, d.Rules.ExcludedIfModifications)
	assert.Empty(t, d.Rules.RequiredModifications)
	assert.Empty(t, d.RelatedBulletins)
}

func TestAssembleEASA(t *testing.T) {
	d := Assemble(easaDirectiveText, "easa_ad_2025-0254R1.txt")

	assert.Equal(t, "EASA-2025-0254R1", d.ID)
	assert.Equal(t, models.AuthorityEASA, d.Authority)
	assert.Equal(t, "2025-11-03", d.EffectiveDate)
	assert.Equal(t, "Wings", d.Subject)
	assert.Equal(t, "Airbus S.A.S.", d.Manufacturer)

	assert.Equal(t, []string{"A320-214", "A320-232", "A321-111"}, d.Rules.Models)
	assert.Equal(t, models.AllSerials(), d.Rules.SerialConstraint)
	assert.Equal(t, []string{
		"SB A320-57-1089 Rev 04",
		"mod 24591 (production)",
	}, d.Rules.ExcludedIfModifications)
	assert.Equal(t, []string{"SB A320-57-1089 Revision 04"}, d.Rules.RequiredModifications)
	assert.Equal(t, []string{"SB A320-57-1089"}, d.RelatedBulletins)
}

func TestAssembleEmptyText(t *testing.T) {
	d := Assemble("", "garbled.pdf")

	assert.Equal(t, models.UnknownID, d.ID)
	assert.Equal(t, models.AuthorityUnknown, d.Authority)
	assert.False(t, d.Identified())
	assert.Empty(t, d.Rules.Models)
	assert.Equal(t, models.AllSerials(), d.Rules.SerialConstraint)
	assert.Empty(t, d.EffectiveDate)
	assert.Empty(t, d.Subject)
	assert.Empty(t, d.Manufacturer)
}

func TestDegraded(t *testing.T) {
	d := Degraded("broken.pdf", "document contains no extractable text")

	assert.Equal(t, models.UnknownID, d.ID)
	assert.Equal(t, models.AuthorityUnknown, d.Authority)
	assert.Equal(t, "broken.pdf", d.SourceFile)
	assert.Empty(t, d.Rules.Models)
	assert.Contains(t, d.Rules.Notes, "no extractable text")
	// Degraded records must still behave as valid non-matching records.
	assert.Equal(t, models.AllSerials(), d.Rules.SerialConstraint)
}

func TestInferManufacturer(t *testing.T) {
	tests := []struct {
		name     string
		models   []string
		expected string
	}{
		{"mcdonnell douglas", []string{"MD-11", "MD-11F"}, "Boeing (McDonnell Douglas)"},
		{"douglas", []string{"DC-10-30F"}, "Boeing (McDonnell Douglas)"},
		{"airbus", []string{"A320-214"}, "Airbus S.A.S."},
		{"md wins over airbus", []string{"A320-214", "MD-11"}, "Boeing (McDonnell Douglas)"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferManufacturer(tt.models))
		})
	}
}
