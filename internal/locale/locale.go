package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is a game client identifier such as "zh_CN".
type Locale string

// Default is the client used when nothing else is configured.
const Default Locale = "zh_CN"

var supported = map[Locale]struct{}{
	"zh_CN": {},
	"en_US": {},
	"ja_JP": {},
	"ko_KR": {},
	"zh_TW": {},
}

// Supported returns every known client identifier in lexical order.
func Supported() []Locale {
	out := make([]Locale, 0, len(supported))
	for loc := range supported {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Names returns Supported as plain strings, handy for flag help text.
func Names() []string {
	locs := Supported()
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = string(loc)
	}
	return out
}

// Parse validates value against the supported set. Matching is exact after
// trimming; the game data tree is case sensitive.
func Parse(value string) (Locale, error) {
	loc := Locale(strings.TrimSpace(value))
	if _, ok := supported[loc]; !ok {
		return "", fmt.Errorf("unsupported locale %q (expected one of %s)", value, strings.Join(Names(), ", "))
	}
	return loc, nil
}

// FontSuffix is the region part used to pick the font subset directory,
// e.g. "CN" for zh_CN and "TW" for zh_TW.
func (l Locale) FontSuffix() string {
	s := string(l)
	if len(s) < 2 {
		return s
	}
	return s[len(s)-2:]
}

// Tag converts the client identifier to a BCP 47 language tag.
func (l Locale) Tag() (language.Tag, error) {
	tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("locale %q: %w", l, err)
	}
	return tag, nil
}

// DisplayName renders the locale in English, e.g. "Simplified Chinese (China)".
// Unknown tags fall back to the raw identifier.
func (l Locale) DisplayName() string {
	tag, err := l.Tag()
	if err != nil {
		return string(l)
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return string(l)
	}
	return name
}

func (l Locale) String() string { return string(l) }
