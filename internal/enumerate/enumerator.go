// Package enumerate walks a filled trace.Matrix and produces co-optimal
// alignments one at a time, in a fixed deterministic order, without ever
// materializing the full set up front.
package enumerate

import (
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// Step is one edit operation in an alignment, in emission (forward) order.
// Kind follows a fixed CIGAR-style convention: 'M' is a diagonal
// match/mismatch step, 'D' consumes A only (a gap in B), 'I' consumes B
// only (a gap in A). ALen/BLen are almost always 0 or 1; WSB gap steps can
// consume a run of several residues from one side at once.
type Step struct {
	Kind       byte
	ALen, BLen int
}

// Path is one full co-optimal alignment: the edit script from the
// STARTPOINT to the chosen ENDPOINT, plus the score all paths from that
// matrix share.
type Path struct {
	Steps []Step
	Score float64
}

// Enumerator lazily walks the co-optimal paths recorded in a trace.Matrix.
// It is not safe for concurrent use.
type Enumerator struct {
	tm     *trace.Matrix
	local  bool
	strand byte
	score  float64

	endpoints []point
	epIdx     int

	stack []frame
	done  bool
	first bool
}

type point struct{ i, j int }

// New builds an Enumerator over a filled matrix. score is the optimal
// score the fill returned, attached to every emitted Path. strand is
// carried only for Positions to consult later: the raw Steps are
// strand-agnostic edit scripts, and the '-' strand coordinate remap
// happens at emission time, not here: nB-1-j in Positions, nB-j in
// RunEndpoints.
func New(tm *trace.Matrix, local bool, strand byte, optimal float64) *Enumerator {
	e := &Enumerator{tm: tm, local: local, strand: strand, score: optimal, first: true}
	e.endpoints = collectEndpoints(tm, local)
	return e
}

func collectEndpoints(tm *trace.Matrix, local bool) []point {
	if !local {
		return []point{{tm.NA, tm.NB}}
	}
	var pts []point
	for i := 0; i <= tm.NA; i++ {
		for j := 0; j <= tm.NB; j++ {
			if tm.Bits[i][j].Has(trace.Endpoint) {
				pts = append(pts, point{i, j})
			}
		}
	}
	return pts
}

// Next advances to the next co-optimal path and returns it. The second
// return value is false once every path from every ENDPOINT has been
// emitted (or if the matrix records no STARTPOINT at all, meaning there
// is no alignment to enumerate).
func (e *Enumerator) Next() (Path, bool, error) {
	if e.done || e.tm.NoStart || len(e.endpoints) == 0 {
		e.done = true
		return Path{}, false, nil
	}

	for {
		if e.first {
			ep := e.endpoints[e.epIdx]
			ok, err := e.seed(ep)
			if err != nil {
				return Path{}, false, err
			}
			e.first = false
			if !ok {
				if !e.advanceEndpoint() {
					return Path{}, false, nil
				}
				continue
			}
			if err := e.descendToStart(); err != nil {
				return Path{}, false, err
			}
			return e.materialize(), true, nil
		}

		if e.backtrackToNextBranch() {
			if err := e.descendToStart(); err != nil {
				return Path{}, false, err
			}
			return e.materialize(), true, nil
		}

		if !e.advanceEndpoint() {
			return Path{}, false, nil
		}
	}
}

func (e *Enumerator) advanceEndpoint() bool {
	e.epIdx++
	if e.epIdx >= len(e.endpoints) {
		e.done = true
		return false
	}
	e.stack = nil
	ep := e.endpoints[e.epIdx]
	ok, err := e.seed(ep)
	if err != nil || !ok {
		return e.advanceEndpoint()
	}
	if err := e.descendToStart(); err != nil {
		return false
	}
	return true
}

// Strand returns the strand the underlying matrix was filled under.
func (e *Enumerator) Strand() byte { return e.strand }

// NB returns the length of sequence B the underlying matrix was filled
// for, needed by Positions to remap '-' strand coordinates.
func (e *Enumerator) NB() int { return e.tm.NB }

// StartPos returns the matrix coordinates of the STARTPOINT the most
// recently returned Path began from, needed by callers of Positions to
// anchor the walk back into the original sequences.
func (e *Enumerator) StartPos() (int, int) {
	if len(e.stack) == 0 {
		return 0, 0
	}
	last := e.stack[len(e.stack)-1]
	return last.i, last.j
}

// Reset rewinds the enumerator to its first path.
func (e *Enumerator) Reset() {
	e.stack = nil
	e.epIdx = 0
	e.done = false
	e.first = true
}

// Len returns the exact number of co-optimal paths and whether that count
// overflowed int64 while counting; when it overflows the returned count
// is the saturated math.MaxInt64 and callers should treat it as "too
// many to enumerate exhaustively" rather than a precise figure.
func (e *Enumerator) Len() (int64, bool) {
	return countPaths(e.tm, e.local)
}

