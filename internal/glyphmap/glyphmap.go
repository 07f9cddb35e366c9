package glyphmap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/image/font/sfnt"
)

// ErrMalformedFont is returned when a font file matches by extension but cannot be parsed.
var ErrMalformedFont = errors.New("glyphmap: malformed font")

// Map associates a code point with the glyph the font draws for it.
type Map map[rune]sfnt.GlyphIndex

// Has reports whether r is covered by the font.
func (m Map) Has(r rune) bool {
	_, ok := m[r]
	return ok
}

// Len returns the number of covered code points.
func (m Map) Len() int { return len(m) }

// FromRunes builds a Map covering the given runes with synthetic glyph ids.
// Useful when a font is not at hand.
func FromRunes(runes ...rune) Map {
	m := make(Map, len(runes))
	for i, r := range runes {
		m[r] = sfnt.GlyphIndex(i + 1)
	}
	return m
}

// FromString is FromRunes over every rune of s.
func FromString(s string) Map {
	return FromRunes([]rune(s)...)
}

// Load reads the first file in dir (lexical order) whose extension is listed
// in exts and returns its character map along with the path used. A missing
// directory or one without any matching file yields an empty map and an empty
// path; callers decide how loudly to report that. A matching file that fails
// to parse returns ErrMalformedFont.
func Load(dir string, exts []string) (Map, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Map{}, "", nil
		}
		return nil, "", fmt.Errorf("read font directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), exts) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		m, err := LoadFile(path)
		if err != nil {
			return nil, path, err
		}
		return m, path, nil
	}
	return Map{}, "", nil
}

// LoadFile parses a single OpenType/TrueType file or collection. Only the
// first font of a collection is consulted.
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	var font *sfnt.Font
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		collection, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFont, path, err)
		}
		if font, err = collection.Font(0); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFont, path, err)
		}
	default:
		if font, err = sfnt.Parse(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFont, path, err)
		}
	}

	m, err := cmapOf(font)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFont, path, err)
	}
	return m, nil
}

// cmapOf walks every scalar value through the font's preferred cmap subtable.
// sfnt only exposes lookups, so the table is materialized eagerly.
func cmapOf(font *sfnt.Font) (Map, error) {
	var buf sfnt.Buffer
	m := make(Map)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		idx, err := font.GlyphIndex(&buf, r)
		if err != nil {
			return nil, err
		}
		if idx != 0 {
			m[r] = idx
		}
	}
	return m, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, candidate := range exts {
		if strings.EqualFold(candidate, ext) {
			return true
		}
	}
	return false
}
