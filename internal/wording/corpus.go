package wording

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"ocrcorpus/internal/logging"
)

var (
	// ErrDataDirMissing is returned when the game table directory does not exist.
	ErrDataDirMissing = errors.New("wording: data directory not found")
	// ErrInvalidRecord is returned for a table line that is not valid UTF-8.
	ErrInvalidRecord = errors.New("wording: invalid record")
)

// Stats summarizes a corpus build.
type Stats struct {
	Files   int `json:"files"`
	Lines   int `json:"lines"`
	Entries int `json:"entries"`
}

// Builder collects corpus entries from table files.
type Builder struct {
	glyphs Glyphs
	ext    string
	logger *slog.Logger
}

// NewBuilder returns a Builder reading files whose extension is exactly ext
// (".json"; "item_table.JSON" does not match) and keeping text renderable by
// glyphs.
func NewBuilder(glyphs Glyphs, ext string, logger *slog.Logger) *Builder {
	return &Builder{
		glyphs: glyphs,
		ext:    ext,
		logger: logging.NewComponentLogger(logger, "wording"),
	}
}

// Build reads every matching file directly inside dir, in lexical order, and
// unions the entries of all lines. Any read or decode failure aborts the build.
func (b *Builder) Build(ctx context.Context, dir string) (Set, Stats, error) {
	var stats Stats
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, stats, fmt.Errorf("%w: %s", ErrDataDirMissing, dir)
		}
		return nil, stats, fmt.Errorf("read data directory %s: %w", dir, err)
	}

	corpus := make(Set)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != b.ext {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		path := filepath.Join(dir, entry.Name())
		before := corpus.Len()
		lines, err := b.readFile(path, corpus)
		if err != nil {
			return nil, stats, err
		}
		stats.Files++
		stats.Lines += lines
		b.logger.Debug("table processed",
			logging.String("file", entry.Name()),
			logging.Int("lines", lines),
			logging.Int("new_entries", corpus.Len()-before),
		)
	}
	stats.Entries = corpus.Len()
	return corpus, stats, nil
}

func (b *Builder) readFile(path string, corpus Set) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open table %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 64*1024)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			if !utf8.ValidString(line) {
				return lineNo, fmt.Errorf("%w: %s:%d: not valid UTF-8", ErrInvalidRecord, path, lineNo)
			}
			corpus.AddAll(ExtractLine(line, b.glyphs)...)
		}
		if err == io.EOF {
			return lineNo, nil
		}
		if err != nil {
			return lineNo, fmt.Errorf("read table %s: %w", path, err)
		}
	}
}

// BuildCorpus is a convenience wrapper around NewBuilder(...).Build.
func BuildCorpus(ctx context.Context, dir, ext string, glyphs Glyphs) (Set, Stats, error) {
	return NewBuilder(glyphs, ext, nil).Build(ctx, dir)
}
