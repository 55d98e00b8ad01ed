// Package extract turns raw Airworthiness Directive text into structured
// applicability rules. Each extractor is an independent pure function over
// the document text; a pattern that does not match yields an explicit
// empty/zero result, never an error.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"adcheck/internal/models"
)

var (
	faaIDPattern  = regexp.MustCompile(`AD\s+(\d{4}[-\x{2013}]\d{2}[-\x{2013}]\d{2,4})`)
	easaIDPattern = regexp.MustCompile(`AD\s+(?:No\.?\s*:?\s*)?(\d{4}[-\x{2013}]\d{4}(?:R\d+)?)`)

	// Two disjoint designator families: McDonnell Douglas / Douglas
	// (MD-11, MD-10-10F, DC-10-30F) and Airbus single-aisle (A320-214,
	// A321-111, A319-100).
	mdDCModelPattern   = regexp.MustCompile(`\b((?:MD|DC)-\d{1,2}(?:-\d{1,3})?[A-Z]?)\b`)
	airbusModelPattern = regexp.MustCompile(`\b(A3(?:19|20|21)-\d{3}[A-Z]?)\b`)

	bulletinPattern = regexp.MustCompile(`(?:SB\s+)?(A3\d{2}-\d{2}-\d{4})`)
	modRefPattern   = regexp.MustCompile(`(?i)\bmod(?:ification)?\s+(\d{4,6})\b`)

	allMSNPattern       = regexp.MustCompile(`(?i)all\s+(?:manufacturer\s+serial\s+numbers|msn)`)
	appliesToAllPattern = regexp.MustCompile(`(?i)applies?\s+to\s+all\b`)
	msnRangePattern     = regexp.MustCompile(`(?i)msn\s+(\d+)\s+(?:through|to|thru|-)\s+(\d+)`)

	// Three accepted date layouts: "15 May 2025", "May 15, 2025", "2025-05-15".
	effectiveDatePattern = regexp.MustCompile(`(?i)effective\s+(?:date)?[:\s]*(\d{1,2}\s+\w+\s+\d{4}|\w+\s+\d{1,2},?\s+\d{4}|\d{4}-\d{2}-\d{2})`)

	subjectPattern = regexp.MustCompile(`(?:Subject|ATA\s+Chapter)\s*[:\s]+(?:\d+[,\s]*)?([^\n]+)`)
)

// normalizeDashes maps en-dash variants in captured identifiers to plain
// hyphens.
func normalizeDashes(s string) string {
	return strings.ReplaceAll(s, "–", "-")
}

// DetectAuthority determines the issuing authority from the document text
// and, for FAA directives, also from the source filename.
func DetectAuthority(text, filename string) models.Authority {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "federal aviation administration") ||
		strings.Contains(strings.ToUpper(filename), "FAA") {
		return models.AuthorityFAA
	}
	if strings.Contains(lower, "easa") ||
		strings.Contains(lower, "european union aviation safety agency") {
		return models.AuthorityEASA
	}
	return models.AuthorityUnknown
}

// ExtractID extracts the directive identifier for the given authority,
// prefixed with the authority code, e.g. "FAA-2025-23-53" or
// "EASA-2025-0254R1". Returns the UNKNOWN sentinel when no identifier
// pattern matches.
func ExtractID(text string, authority models.Authority) string {
	switch authority {
	case models.AuthorityFAA:
		if m := faaIDPattern.FindStringSubmatch(text); m != nil {
			return "FAA-" + normalizeDashes(m[1])
		}
	case models.AuthorityEASA:
		if m := easaIDPattern.FindStringSubmatch(text); m != nil {
			return "EASA-" + normalizeDashes(m[1])
		}
	}
	return models.UnknownID
}

// ExtractModels collects every aircraft model designator mentioned in the
// text into a sorted, deduplicated set.
func ExtractModels(text string) []string {
	set := make(map[string]struct{})
	for _, m := range mdDCModelPattern.FindAllStringSubmatch(text, -1) {
		set[m[1]] = struct{}{}
	}
	for _, m := range airbusModelPattern.FindAllStringSubmatch(text, -1) {
		set[m[1]] = struct{}{}
	}
	return sortedKeys(set)
}

// ExtractServiceBulletins collects service bulletin references, each
// canonicalized to the form "SB A3xx-xx-xxxx".
func ExtractServiceBulletins(text string) []string {
	set := make(map[string]struct{})
	for _, m := range bulletinPattern.FindAllStringSubmatch(text, -1) {
		set["SB "+m[1]] = struct{}{}
	}
	return sortedKeys(set)
}

// ExtractModRefs collects modification references ("mod 24591",
// "Modification 24977"), each canonicalized to "mod <number>".
func ExtractModRefs(text string) []string {
	set := make(map[string]struct{})
	for _, m := range modRefPattern.FindAllStringSubmatch(text, -1) {
		set["mod "+m[1]] = struct{}{}
	}
	return sortedKeys(set)
}

// ExtractSerialConstraint extracts the MSN constraint stated in the text.
// Precedence: an explicit all-serial-numbers phrase, then "applies to all",
// then an explicit MSN range; with nothing found the directive covers all
// serial numbers.
func ExtractSerialConstraint(text string) models.SerialConstraint {
	if allMSNPattern.MatchString(text) {
		return models.AllSerials()
	}
	if appliesToAllPattern.MatchString(text) {
		return models.AllSerials()
	}
	if m := msnRangePattern.FindStringSubmatch(text); m != nil {
		min, _ := strconv.Atoi(m[1])
		max, _ := strconv.Atoi(m[2])
		return models.SerialRange(min, max)
	}
	return models.AllSerials()
}

// ExtractEffectiveDate returns the effective date as written in the
// document, or "" when none is stated. The text is not parsed into a
// calendar type.
func ExtractEffectiveDate(text string) string {
	if m := effectiveDatePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ExtractSubject returns the subject line, taken from a "Subject" or
// "ATA Chapter" heading with an optional chapter number, or "" when none
// is found.
func ExtractSubject(text string) string {
	if m := subjectPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
