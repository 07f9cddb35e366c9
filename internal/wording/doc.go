// Package wording mines OCR training text from game table files.
//
// ExtractLine turns one raw line of a JSON table into the clean, glyph-checked
// text lines it carries. BuildCorpus applies it to every table in a directory
// and Finalize writes the corpus artifacts: the full wording list, the
// short/long split used for synthetic rendering, and the merged recognition
// alphabet.
package wording
