package wording

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"ocrcorpus/internal/fileutil"
	"ocrcorpus/internal/keyset"
)

// Artifact locations relative to the per-locale output directory.
const (
	WordingFile = "wording.txt"
	KeysFile    = "keys.txt"
	ShortFile   = "short/short_wording.txt"
	LongFile    = "long/long_wording.txt"
)

// DefaultShortThreshold separates short entries (fewer runes) from long ones.
const DefaultShortThreshold = 7

// FinalizeOptions controls where and how the corpus artifacts are written.
type FinalizeOptions struct {
	OutputDir      string
	ShortThreshold int
	UpdateBaseline bool
}

// Result describes the artifacts produced by Finalize.
type Result struct {
	OutputDir       string `json:"output_dir"`
	Entries         int    `json:"entries"`
	Short           int    `json:"short"`
	Long            int    `json:"long"`
	KeysObserved    int    `json:"keys_observed"`
	KeysAdded       string `json:"keys_added"`
	BaselinePath    string `json:"baseline_path"`
	BaselineUpdated bool   `json:"baseline_updated"`
}

// SeedASCII adds every printable ASCII character except space (33-126) as a
// single-character entry.
func SeedASCII(s Set) {
	for c := rune(33); c <= 126; c++ {
		s.Add(string(c))
	}
}

// Partition splits entries by rune count: shorter than threshold, and the rest.
func Partition(entries []string, threshold int) (short, long []string) {
	for _, e := range entries {
		if utf8.RuneCountInString(e) < threshold {
			short = append(short, e)
		} else {
			long = append(long, e)
		}
	}
	return short, long
}

// Finalize seeds a copy of corpus with printable ASCII, writes the wording,
// key and short/long artifacts under opts.OutputDir and, when requested,
// commits the merged key list back to the baseline. Entries are written in
// code point order so repeated runs produce identical files.
func Finalize(corpus Set, baseline *keyset.Baseline, opts FinalizeOptions) (Result, error) {
	if baseline == nil {
		return Result{}, errors.New("finalize: baseline is required")
	}
	if opts.OutputDir == "" {
		return Result{}, errors.New("finalize: output directory is required")
	}
	threshold := opts.ShortThreshold
	if threshold <= 0 {
		threshold = DefaultShortThreshold
	}

	full := maps.Clone(corpus)
	if full == nil {
		full = make(Set)
	}
	SeedASCII(full)
	entries := full.Sorted()
	text := strings.Join(entries, "\n")

	if err := fileutil.WriteStringAtomic(filepath.Join(opts.OutputDir, WordingFile), text); err != nil {
		return Result{}, fmt.Errorf("write wording: %w", err)
	}

	keys := keyset.Derive(text)
	merged, added := baseline.Merge(keys)
	if err := fileutil.WriteStringAtomic(filepath.Join(opts.OutputDir, KeysFile), merged); err != nil {
		return Result{}, fmt.Errorf("write keys: %w", err)
	}

	short, long := Partition(entries, threshold)
	if err := fileutil.WriteStringAtomic(filepath.Join(opts.OutputDir, ShortFile), strings.Join(short, "\n")); err != nil {
		return Result{}, fmt.Errorf("write short wording: %w", err)
	}
	if err := fileutil.WriteStringAtomic(filepath.Join(opts.OutputDir, LongFile), strings.Join(long, "\n")); err != nil {
		return Result{}, fmt.Errorf("write long wording: %w", err)
	}

	result := Result{
		OutputDir:    opts.OutputDir,
		Entries:      len(entries),
		Short:        len(short),
		Long:         len(long),
		KeysObserved: len(keys),
		KeysAdded:    string(added),
		BaselinePath: baseline.Path(),
	}
	if opts.UpdateBaseline && len(added) > 0 {
		if err := baseline.Commit(merged); err != nil {
			return result, err
		}
		result.BaselineUpdated = true
	}
	return result, nil
}
