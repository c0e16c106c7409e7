package textsim

import (
	"regexp"
	"strings"
	"unicode"
)

// variantEntry rewrites one regional/medical spelling variant to its canonical
// American form. Patterns are matched whole-word and case does not matter
// because Normalize lowercases before substitution.
type variantEntry struct {
	re          *regexp.Regexp
	replacement string
}

// spellingVariants is applied in order after case/punctuation normalization.
// Longer, more specific patterns must come before patterns they contain
// (the combined "planned caesarean" entry before the bare "caesarean" one),
// so keep this table ordered by specificity.
var spellingVariants = buildVariantTable([][2]string{
	{"planned caesarean", "planned cesarean"},
	{"caesarean", "cesarean"},
	{"haemorrhagic", "hemorrhagic"},
	{"haemorrhage", "hemorrhage"},
	{"anaemia", "anemia"},
	{"anaesthesia", "anesthesia"},
	{"paediatric", "pediatric"},
	{"randomised", "randomized"},
	{"randomisation", "randomization"},
	{"oesophageal", "esophageal"},
	{"oestrogen", "estrogen"},
	{"oedema", "edema"},
	{"diarrhoea", "diarrhea"},
	{"gynaecology", "gynecology"},
	{"orthopaedic", "orthopedic"},
	{"foetal", "fetal"},
	{"tumour", "tumor"},
	{"colour", "color"},
	{"labour", "labor"},
	{"behaviour", "behavior"},
	{"centre", "center"},
	{"litre", "liter"},
})

func buildVariantTable(entries [][2]string) []variantEntry {
	table := make([]variantEntry, 0, len(entries))
	for _, e := range entries {
		table = append(table, variantEntry{
			re:          regexp.MustCompile(`\b` + regexp.QuoteMeta(e[0]) + `\b`),
			replacement: e[1],
		})
	}
	return table
}

// Normalize lowercases the text, replaces punctuation with single spaces,
// collapses consecutive whitespace, trims, and rewrites known spelling
// variants to a canonical form. It is a pure function and idempotent.
func Normalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	prevSpace := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevSpace = false
		} else if !prevSpace {
			sb.WriteRune(' ')
			prevSpace = true
		}
	}

	normalized := strings.TrimSpace(sb.String())
	for _, entry := range spellingVariants {
		normalized = entry.re.ReplaceAllString(normalized, entry.replacement)
	}
	return normalized
}
