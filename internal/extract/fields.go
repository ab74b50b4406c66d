package extract

import (
	"regexp"
	"strings"
)

// FieldExtractor is stage 2: raw OCR text -> candidate identity fields.
// Pattern matching only; no calendar or checksum validation happens here
// (that is deferred to the matcher).
type FieldExtractor struct {
	idPattern    *regexp.Regexp
	namePatterns []*regexp.Regexp
	datePatterns []*regexp.Regexp
}

func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{
		// national ID numbers: isolated runs of 7-9 digits
		idPattern: regexp.MustCompile(`\b\d{7,9}\b`),
		namePatterns: []*regexp.Regexp{
			// NAME / FULL NAME label followed by capitalized words on the same line
			regexp.MustCompile(`(?i)(?:FULL NAME|NAMES|NAME)[\s:]+([A-Z][A-Z ]+)`),
			// consecutive CapitalizedWord CapitalizedWord sequences
			regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`),
		},
		datePatterns: []*regexp.Regexp{
			// DATE OF BIRTH / DOB / BORN label followed by a date token
			regexp.MustCompile(`(?i)(?:DATE OF BIRTH|DOB|BORN)[\s:]+([\d./-]{6,10})`),
			// standalone date-like tokens; a separator is required so plain
			// digit runs (ID numbers) are not picked up as dates
			regexp.MustCompile(`\b\d{1,4}[./-]\d{1,2}[./-]\d{1,4}\b`),
		},
	}
}

// ExtractFields collects candidate ID numbers, names, and date strings from
// raw OCR text. Candidates are deduplicated; names are additionally
// normalized and filtered for noise.
func (f *FieldExtractor) ExtractFields(text string) ExtractedData {
	out := ExtractedData{}

	out.IDNumbers = dedupe(f.idPattern.FindAllString(text, -1))

	var rawNames []string
	for _, p := range f.namePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			// label pattern captures group 1; the heuristic has no group
			if len(m) > 1 {
				rawNames = append(rawNames, m[1])
			} else {
				rawNames = append(rawNames, m[0])
			}
		}
	}
	out.Names = cleanNames(rawNames)

	var rawDates []string
	for _, p := range f.datePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) > 1 {
				rawDates = append(rawDates, m[1])
			} else {
				rawDates = append(rawDates, m[0])
			}
		}
	}
	out.Dates = dedupe(rawDates)

	return out
}

// cleanNames uppercases, strips OCR punctuation noise, collapses internal
// whitespace, drops candidates of fewer than 4 characters, and dedupes.
func cleanNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	replacer := strings.NewReplacer(":", "", "|", "", ".", "")
	for _, n := range names {
		cleaned := replacer.Replace(strings.ToUpper(strings.TrimSpace(n)))
		cleaned = strings.Join(strings.Fields(cleaned), " ")
		if len(cleaned) <= 3 {
			continue
		}
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
	}
	return out
}

func dedupe(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
