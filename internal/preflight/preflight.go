package preflight

import (
	"ocrcorpus/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll checks every location of layout in the order a run touches them.
// updateBaseline mirrors corpus.update_baseline.
func RunAll(layout config.Layout, updateBaseline bool) []Result {
	return []Result{
		CheckBaseline("Baseline keys", layout.Baseline, updateBaseline),
		CheckReadableDir("Font directory", layout.FontDir),
		CheckReadableDir("Game tables", layout.DataDir),
		CheckOutputDir("Output", layout.Output),
	}
}

// Failed returns the subset of results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}
