package score

import "github.com/pkg/errors"

// Model holds every scoring option the aligner recognizes: match/mismatch
// or a substitution matrix, an optional wildcard, twelve gap penalties (or
// a pair of variable-length gap callbacks), an epsilon tie tolerance, and
// the alignment mode. Setting any field invalidates the cached Algorithm.
type Model struct {
	Match, Mismatch float64
	Matrix          *SubstitutionMatrix
	Wildcard        int // -1 = unset
	Gaps            GapPenalties
	InsertionFn     func(i, k int) float64
	DeletionFn      func(i, k int) float64
	Epsilon         float64
	Mode            Mode

	cached    Algorithm
	cacheGood bool
}

// NewModel returns a Model with a default epsilon and no wildcard set.
func NewModel() *Model {
	return &Model{Wildcard: -1, Epsilon: 1e-6}
}

func (m *Model) invalidate() { m.cacheGood = false }

// SetMatch sets the match score used when no substitution matrix is set.
func (m *Model) SetMatch(v float64) { m.Match = v; m.invalidate() }

// SetMismatch sets the mismatch penalty used when no substitution matrix is set.
func (m *Model) SetMismatch(v float64) { m.Mismatch = v; m.invalidate() }

// SetSubstitutionMatrix installs a substitution matrix, which takes
// precedence over Match/Mismatch. Wildcard is cleared, since a wildcard
// symbol is never meaningful once a full substitution matrix is in play.
func (m *Model) SetSubstitutionMatrix(mat *SubstitutionMatrix) {
	m.Matrix = mat
	m.Wildcard = -1
	m.invalidate()
}

// SetWildcard sets the symbol index that scores 0 against anything, valid
// only in match/mismatch mode.
func (m *Model) SetWildcard(symbol int) error {
	if m.Matrix != nil {
		return &ValidationError{Reason: "wildcard cannot be set in matrix mode"}
	}
	m.Wildcard = symbol
	m.invalidate()
	return nil
}

// SetGap sets one of the twelve gap penalties.
func (m *Model) SetGap(ctx GapContext, side GapSide, kind GapKind, value float64) {
	m.Gaps.Set(ctx, side, kind, value)
	m.invalidate()
}

// SetGapFuncs installs the two variable-length gap-cost callbacks. Setting
// either one forces algorithm selection to WSB, the only engine that can
// evaluate an arbitrary gap-length cost function.
func (m *Model) SetGapFuncs(insertion, deletion func(i, k int) float64) {
	m.InsertionFn = insertion
	m.DeletionFn = deletion
	m.invalidate()
}

// SetEpsilon sets the numeric tolerance used to classify scores as tied.
func (m *Model) SetEpsilon(eps float64) { m.Epsilon = eps; m.invalidate() }

// SetMode sets the alignment mode.
func (m *Model) SetMode(mode Mode) { m.Mode = mode; m.invalidate() }

func (m *Model) epsilon() float64 {
	if m.Epsilon <= 0 {
		return 1e-6
	}
	return m.Epsilon
}

// Equal reports whether two scores are tied within Epsilon, the tolerance
// every engine uses to decide which of several candidate predecessors
// count as co-optimal.
func (m *Model) Equal(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= m.epsilon()
}

// Algorithm derives the cheapest sufficient DP algorithm for this model:
// FOGSAA if the mode demands it, WSB if a variable-length gap callback is
// set, NW-SW if every gap penalty is a uniform linear cost, Gotoh
// otherwise. The result is cached until the next setter call.
func (m *Model) Algorithm() (Algorithm, error) {
	if m.cacheGood {
		return m.cached, nil
	}
	alg, err := m.selectAlgorithm()
	if err != nil {
		return 0, err
	}
	m.cached, m.cacheGood = alg, true
	return alg, nil
}

func (m *Model) selectAlgorithm() (Algorithm, error) {
	if m.Mode == FOGSAA {
		return FogsaaAlgo, nil
	}
	if m.InsertionFn != nil || m.DeletionFn != nil {
		return WSB, nil
	}
	if m.Gaps.AllEqual() {
		return NWSW, nil
	}
	return Gotoh, nil
}

// PairScore returns the score of aligning symbol a against symbol b: the
// substitution matrix entry if one is set, otherwise 0 if either equals
// Wildcard, otherwise Match or Mismatch.
func (m *Model) PairScore(a, b int) (float64, error) {
	if m.Matrix != nil {
		v, err := m.Matrix.At(a, b)
		if err != nil {
			return 0, errors.Wrap(err, "pair score")
		}
		return v, nil
	}
	if m.Wildcard >= 0 && (a == m.Wildcard || b == m.Wildcard) {
		return 0, nil
	}
	if a == b {
		return m.Match, nil
	}
	return m.Mismatch, nil
}

// InsertionCost returns the cost of an insertion (gap in A) of length k
// starting after position i, using the callback if set or the parametric
// affine fallback otherwise.
func (m *Model) InsertionCost(i, k int, ctx GapContext) float64 {
	if m.InsertionFn != nil {
		return m.InsertionFn(i, k)
	}
	return m.Gaps.AffineCost(ctx, Insertion, k)
}

// DeletionCost returns the cost of a deletion (gap in B) of length k
// starting after position i, using the callback if set or the parametric
// affine fallback otherwise.
func (m *Model) DeletionCost(i, k int, ctx GapContext) float64 {
	if m.DeletionFn != nil {
		return m.DeletionFn(i, k)
	}
	return m.Gaps.AffineCost(ctx, Deletion, k)
}

// ForStrand returns a copy of the model with left/right gap penalties
// swapped when strand is '-'. strand must be '+' or '-'; anything else is
// a ValidationError.
func (m *Model) ForStrand(strand byte) (*Model, error) {
	switch strand {
	case '+':
		return m, nil
	case '-':
		clone := *m
		clone.Gaps = m.Gaps.Swapped()
		clone.cacheGood = false
		return &clone, nil
	default:
		return nil, &ValidationError{Reason: "strand must be '+' or '-'"}
	}
}

// CheckWarnings returns non-fatal FOGSAA admissibility warnings, emitted
// when the bound derivation's monotonicity assumption (match is the
// per-position maximum, mismatch the minimum) may not hold.
func (m *Model) CheckWarnings() []Warning {
	var warnings []Warning
	if m.Mismatch >= m.Match {
		warnings = append(warnings, fWarning("mismatch (%g) >= match (%g): FOGSAA bounds may not be admissible", m.Mismatch, m.Match))
	}
	for ctx := Internal; ctx <= Right; ctx++ {
		for side := Insertion; side <= Deletion; side++ {
			for _, kind := range [...]GapKind{Open, Extend} {
				if v := m.Gaps.Get(ctx, side, kind); v > m.Mismatch {
					warnings = append(warnings, fWarning("gap score (%g) exceeds mismatch (%g): FOGSAA bounds may not be admissible", v, m.Mismatch))
					return warnings
				}
			}
		}
	}
	return warnings
}
