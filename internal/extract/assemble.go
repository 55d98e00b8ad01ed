package extract

import (
	"log/slog"
	"strings"

	"adcheck/internal/models"
	"adcheck/internal/normalize"
)

// Assemble combines all extractor outputs into one directive record for a
// document. It never fails: text in which no pattern matches produces a
// retained record with the UNKNOWN id and an empty model list, which
// matches no aircraft.
func Assemble(text, filename string) models.Directive {
	authority := DetectAuthority(text, filename)
	id := ExtractID(text, authority)

	rawModels := ExtractModels(text)
	normalized := make([]string, len(rawModels))
	for i, m := range rawModels {
		normalized[i] = normalize.Model(m)
	}

	rules := models.ApplicabilityRules{
		Models:                  normalized,
		SerialConstraint:        ExtractSerialConstraint(text),
		ExcludedIfModifications: []string{},
		RequiredModifications:   []string{},
	}

	// Exclusion clauses are an EASA drafting convention; FAA directives
	// carry empty exclusion lists.
	if authority == models.AuthorityEASA {
		easa := parseEASAApplicability(text)
		rules.ExcludedIfModifications = easa.excludedMods
		if len(easa.requiredMods) > 0 {
			rules.RequiredModifications = easa.requiredMods
		}
		rules.Notes = easa.notes
	}

	d := models.Directive{
		ID:               id,
		Authority:        authority,
		EffectiveDate:    ExtractEffectiveDate(text),
		Subject:          ExtractSubject(text),
		Manufacturer:     inferManufacturer(rawModels),
		Rules:            rules,
		RelatedBulletins: ExtractServiceBulletins(text),
		SourceFile:       filename,
	}

	if !d.Identified() {
		slog.Warn("Directive id could not be determined", "file", filename, "authority", authority)
	}
	return d
}

// Degraded builds the record retained for a document that could not be
// read or yielded no text. It matches no aircraft.
func Degraded(filename, reason string) models.Directive {
	return models.Directive{
		ID:        models.UnknownID,
		Authority: models.AuthorityUnknown,
		Rules: models.ApplicabilityRules{
			Models:                  []string{},
			SerialConstraint:        models.AllSerials(),
			ExcludedIfModifications: []string{},
			RequiredModifications:   []string{},
			Notes:                   reason,
		},
		RelatedBulletins: []string{},
		SourceFile:       filename,
	}
}

// inferManufacturer derives the manufacturer from model designator
// prefixes.
func inferManufacturer(modelList []string) string {
	for _, m := range modelList {
		if strings.HasPrefix(m, "MD-") || strings.HasPrefix(m, "DC-") {
			return "Boeing (McDonnell Douglas)"
		}
	}
	for _, m := range modelList {
		if strings.HasPrefix(m, "A3") {
			return "Airbus S.A.S."
		}
	}
	return ""
}
