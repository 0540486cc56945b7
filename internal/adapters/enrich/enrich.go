// Package enrich adds diagnostic details to similarity results.
package enrich

import (
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
)

// DefaultMaxRunes bounds the inputs the enricher will look at.
const DefaultMaxRunes = 20000

// DiffEnricher reports a rune-level diff summary and the edit distance
// between the compared texts. Inputs longer than MaxRunes are skipped.
type DiffEnricher struct {
	MaxRunes    int
	DiffTimeout time.Duration
}

// NewDiffEnricher creates an enricher with default limits.
func NewDiffEnricher() ports.DetailEnricher {
	return &DiffEnricher{
		MaxRunes:    DefaultMaxRunes,
		DiffTimeout: time.Second,
	}
}

// Enrich sets diff_insertions, diff_deletions, diff_equalities and
// edit_distance in details. The diff goes from original to copied.
func (e *DiffEnricher) Enrich(original, copied []rune, details map[string]interface{}) {
	if len(original) > e.MaxRunes || len(copied) > e.MaxRunes {
		details["details_skipped"] = true
		return
	}
	a, b := string(original), string(copied)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = e.DiffTimeout
	diffs := dmp.DiffCleanupSemanticLossless(dmp.DiffMain(a, b, false))

	var inserted, deleted, equal int
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += n
		case diffmatchpatch.DiffDelete:
			deleted += n
		case diffmatchpatch.DiffEqual:
			equal += n
		}
	}

	details["diff_insertions"] = inserted
	details["diff_deletions"] = deleted
	details["diff_equalities"] = equal
	details["edit_distance"] = levenshtein.ComputeDistance(a, b)
}
