package keyset

import (
	"sort"
	"strings"
)

// Derive returns every distinct rune of text above the space character,
// in ascending code point order.
func Derive(text string) []rune {
	seen := make(map[rune]struct{})
	for _, r := range text {
		if r <= ' ' {
			continue
		}
		seen[r] = struct{}{}
	}
	keys := make([]rune, 0, len(seen))
	for r := range seen {
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Merge appends each key not already present anywhere in baseline, followed
// by a newline, preserving baseline verbatim. It returns the merged text and
// the keys that were appended.
func Merge(baseline string, keys []rune) (string, []rune) {
	var b strings.Builder
	b.WriteString(baseline)
	var added []rune
	for _, k := range keys {
		if strings.ContainsRune(baseline, k) || containsRune(added, k) {
			continue
		}
		b.WriteRune(k)
		b.WriteByte('\n')
		added = append(added, k)
	}
	return b.String(), added
}

func containsRune(list []rune, r rune) bool {
	for _, v := range list {
		if v == r {
			return true
		}
	}
	return false
}
