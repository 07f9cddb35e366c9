package wording

import (
	"regexp"
	"strings"
)

// Glyphs reports whether a rune can be rendered by the target font.
type Glyphs interface {
	Has(r rune) bool
}

// redactionPlaceholder is the blackout block used for censored entries. It is
// matched in its escaped form because the check runs before unescaping.
const redactionPlaceholder = `■■■■■■■■■■■■■■■■■■\n■■■■■■■■■■\n■■■■■\n\n`

// escapedQuoteSentinel stands in for \" while the quoted value is located.
// NUL cannot appear unescaped in JSON text.
const escapedQuoteSentinel = "\x00"

var (
	quotedValuePattern = regexp.MustCompile(`"[^"]*": "([^"]*)"|"([^"]*)"`)
	markupPattern      = regexp.MustCompile(`<.*?>|{.*?}`)
)

// ExtractLine returns the corpus entries carried by one raw table line. Only
// the first quoted value is considered: the value of a "key": "value" pair
// when present, otherwise the first bare string. Entries are split on line
// breaks, stripped of markup and spaces, and kept only when every rune is in
// glyphs and at least one rune is outside ASCII.
func ExtractLine(line string, glyphs Glyphs) []string {
	content, ok := quotedValue(line)
	if !ok || content == "" || strings.Contains(content, redactionPlaceholder) {
		return nil
	}

	content = unescape(content)
	content = markupPattern.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "\r", "")
	content = strings.ReplaceAll(content, " ", "")

	var out []string
	for _, candidate := range strings.Split(content, "\n") {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		if renderable(candidate, glyphs) {
			out = append(out, candidate)
		}
	}
	return out
}

func quotedValue(line string) (string, bool) {
	protected := strings.ReplaceAll(line, `\"`, escapedQuoteSentinel)
	match := quotedValuePattern.FindStringSubmatch(protected)
	if match == nil {
		return "", false
	}
	content := match[1]
	if content == "" {
		content = match[2]
	}
	return content, true
}

// unescape restores protected quotes and then collapses escapes one rule at a
// time. The order matters: \\n must first become \n before it is read as a
// line break, exactly like the table exporter's own double escaping.
func unescape(content string) string {
	content = strings.ReplaceAll(content, escapedQuoteSentinel, `\"`)
	for _, rule := range [][2]string{
		{`\\`, `\`},
		{`\"`, `"`},
		{`\n`, "\n"},
		{`\t`, "\n"},
		{"\t", "\n"},
		{"......", "\n"},
	} {
		content = strings.ReplaceAll(content, rule[0], rule[1])
	}
	return content
}

func renderable(s string, glyphs Glyphs) bool {
	nonASCII := false
	for _, r := range s {
		if glyphs == nil || !glyphs.Has(r) {
			return false
		}
		if r > 0x7F {
			nonASCII = true
		}
	}
	return nonASCII
}
