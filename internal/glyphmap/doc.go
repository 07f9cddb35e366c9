// Package glyphmap loads the set of code points a font can render.
//
// The wording extractor only keeps text the target font covers, so the map is
// read once per run from the first font file found in a directory and treated
// as immutable afterwards.
package glyphmap
