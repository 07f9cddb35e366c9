// Package locale enumerates the game clients a corpus can be built for.
//
// Client identifiers use the underscore form found in the game data tree
// (zh_CN, ja_JP, ...). The package maps them to BCP 47 tags for display and
// exposes the two-letter suffix that selects the font subset directory.
package locale
