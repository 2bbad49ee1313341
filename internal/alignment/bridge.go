package alignment

import (
	"fmt"
	"math"

	"github.com/bioflow-go/bioflow-core/internal/align"
	"github.com/bioflow-go/bioflow-core/internal/enumerate"
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/sequence"
)

// ModelFromScoring puts a ScoringMatrix's linear gap penalty (GapPenalty,
// the open value) into both the open and the extend slot of all six
// (context, side) gap pairs score.Model recognizes, which keeps
// GapPenalties.AllEqual true and so keeps Model.Algorithm selecting NW-SW
// for every ScoringMatrix-driven call, matching this package's original
// linear-gap behavior exactly. GapExtendPenalty is not used.
func ModelFromScoring(s *ScoringMatrix, mode score.Mode) *score.Model {
	if s == nil {
		s = DefaultDNA()
	}

	m := score.NewModel()
	m.SetMatch(float64(s.MatchScore))
	m.SetMismatch(float64(s.MismatchPenalty))
	for ctx := score.Internal; ctx <= score.Right; ctx++ {
		for _, side := range [...]score.GapSide{score.Insertion, score.Deletion} {
			m.SetGap(ctx, side, score.Open, float64(s.GapPenalty()))
			m.SetGap(ctx, side, score.Extend, float64(s.GapPenalty()))
		}
	}
	m.SetMode(mode)
	return m
}

// dnaAligner builds an Aligner over the four-letter nucleotide alphabet
// this package has always accepted, under the given scoring and mode.
func dnaAligner(scoring *ScoringMatrix, mode score.Mode) *align.Aligner {
	return align.New(ModelFromScoring(scoring, mode), align.DefaultDNAMapping())
}

// scoreOnly runs the aligner for its optimal score alone, skipping
// enumeration, the memory-efficient two-row DP's modern equivalent.
func scoreOnly(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix, mode score.Mode) (int, error) {
	if seq1.Len() == 0 || seq2.Len() == 0 {
		return 0, fmt.Errorf("sequences must be non-empty")
	}
	sc, err := dnaAligner(scoring, mode).Score(seq1.Bases, seq2.Bases, '+')
	if err != nil {
		return 0, err
	}
	return int(math.Round(sc)), nil
}

// runAligned drives the shared engine/enumerate stack over seq1/seq2 under
// mode and materializes the first co-optimal path the deterministic
// Horizontal>Vertical>Diagonal tie-break reports into this package's
// Alignment/CIGAR representation, the same shape SmithWaterman and
// NeedlemanWunsch have always returned to their callers.
func runAligned(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix, mode score.Mode) (*Alignment, error) {
	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	aligner := dnaAligner(scoring, mode)
	enum, sc, err := aligner.Align(seq1.Bases, seq2.Bases, '+')
	if err != nil {
		return nil, err
	}

	path, ok, err := enum.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		if mode == score.Local {
			// No cell scored above zero: the best local alignment is empty.
			return NewAlignment("", "", 0, Local)
		}
		return nil, fmt.Errorf("no alignment path found")
	}

	startA, startB := enum.StartPos()
	pairs := enumerate.Positions(path, startA, startB, '+', len(seq2.Bases))

	aligned1 := make([]byte, len(pairs))
	aligned2 := make([]byte, len(pairs))
	for i, p := range pairs {
		if p.A >= 0 {
			aligned1[i] = seq1.Bases[p.A]
		} else {
			aligned1[i] = '-'
		}
		if p.B >= 0 {
			aligned2[i] = seq2.Bases[p.B]
		} else {
			aligned2[i] = '-'
		}
	}

	var totalA, totalB int
	for _, st := range path.Steps {
		totalA += st.ALen
		totalB += st.BLen
	}

	alignType := Global
	if mode == score.Local {
		alignType = Local
	}

	return NewAlignmentWithPositions(string(aligned1), string(aligned2), int(math.Round(sc)),
		startA, startA+totalA, startB, startB+totalB, alignType)
}
