package extract

import (
	"regexp"
	"strings"
)

var (
	// The applicability section runs from its label to the next section
	// heading (or end of document).
	applicabilitySection = regexp.MustCompile(`(?s)Applicability:\s*(.*?)(?:Definitions:|Reason:|$)`)

	// One exclusion clause: "except those on which ..." up to the next
	// clause boundary (semicolon, period or blank line).
	exceptClausePattern = regexp.MustCompile(`(?is)except\s+those\s+on\s+which\s+(.*?)(?:;|\.|\n\n)`)

	// Modification numbers inside a clause, tried in order of specificity.
	modClausePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)mod(?:ification)?\s*\(mod\)\s*(\d{4,6})`),
		regexp.MustCompile(`(?i)mod\s+(\d{4,6})`),
		regexp.MustCompile(`(?i)\(mod\)\s+(\d{4,6})`),
	}

	clauseBulletinPattern = regexp.MustCompile(`(?i)(?:SB\s+)?(A3\d{2}-\d{2}-\d{4})(?:\s+(?:at\s+)?Rev(?:ision)?\s+(\d+))?`)

	requiredModPattern = regexp.MustCompile(`(?i)modify the aeroplane in accordance with.*?(SB\s+A3\d{2}-\d{2}-\d{4}(?:\s+Rev(?:ision)?\s+\d+)?)`)
)

// easaApplicability carries the EASA-specific exclusion data extracted
// from a directive's applicability section.
type easaApplicability struct {
	excludedMods []string
	requiredMods []string
	notes        string
}

// parseEASAApplicability extracts modification and service-bulletin
// exclusion clauses from an EASA directive. When the "Applicability:"
// label is missing the whole document is scanned instead, and the degraded
// mode is noted on the record.
func parseEASAApplicability(text string) easaApplicability {
	var out easaApplicability

	section := text
	if m := applicabilitySection.FindStringSubmatch(text); m != nil {
		section = m[1]
	} else {
		out.notes = "applicability section not found; scanned full document"
	}

	excluded := make(map[string]struct{})
	for _, clause := range exceptClausePattern.FindAllStringSubmatch(section, -1) {
		body := clause[1]

		var modRefs []string
		for _, pat := range modClausePatterns {
			for _, m := range pat.FindAllStringSubmatch(body, -1) {
				modRefs = append(modRefs, m[1])
			}
			if len(modRefs) > 0 {
				break
			}
		}
		context := "service"
		if strings.Contains(strings.ToLower(body), "production") {
			context = "production"
		}
		for _, num := range modRefs {
			excluded["mod "+num+" ("+context+")"] = struct{}{}
		}

		for _, sb := range clauseBulletinPattern.FindAllStringSubmatch(body, -1) {
			if sb[2] != "" {
				excluded["SB "+sb[1]+" Rev "+sb[2]] = struct{}{}
			} else {
				excluded["SB "+sb[1]] = struct{}{}
			}
		}
	}
	out.excludedMods = sortedKeys(excluded)

	// Mandated corrective action, recorded for traceability only.
	if m := requiredModPattern.FindStringSubmatch(text); m != nil {
		out.requiredMods = []string{strings.TrimSpace(m[1])}
	}

	return out
}
