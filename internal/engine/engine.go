// Package engine implements the four dynamic-programming algorithms that
// fill a trace.Matrix: NW-SW (linear gaps), Gotoh (affine, three-state),
// WSB (general gap cost via callbacks), and FOGSAA (branch-and-bound,
// affine). All four share the epsilon-tie policy and the same
// context-aware gap costing rules.
package engine

import (
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// Engine fills a trace matrix for two integer sequences under a scoring
// model and returns the optimal score alongside it. strand is '+' or
// '-'; '-' asks the engine to swap left/right gap penalties before
// filling (the enumerator, not the engine, remaps coordinates at
// emission time).
type Engine interface {
	Fill(a, b []int, model *score.Model, strand byte) (*trace.Matrix, float64, error)
}

// cell computes the pair score for a[i-1] against b[j-1], the 1-based
// convention every engine uses (row/column 0 is the all-gap boundary).
func cell(model *score.Model, a, b []int, i, j int) (float64, error) {
	return model.PairScore(a[i-1], b[j-1])
}

func validateStrand(strand byte) error {
	if strand != '+' && strand != '-' {
		return &score.ValidationError{Reason: "strand must be '+' or '-'"}
	}
	return nil
}
