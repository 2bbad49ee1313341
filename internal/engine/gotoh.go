package engine

import (
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// GotohEngine implements the three-state affine-gap engine: M
// (match/mismatch, terminates a diagonal step), Ix (a VERTICAL/deletion
// step: an A residue against a gap in B) and Iy (a HORIZONTAL/insertion
// step: a B residue against a gap in A). trace.Bits[i][j] records which of {M, Ix, Iy} could have fed the
// diagonal step into M; the Gotoh overlay records the same for the two
// gap layers, each of which may also switch directly from the other gap
// layer at the cost of a fresh open (a "gap switch").
type GotohEngine struct{}

const negInf = -1e18

func (GotohEngine) Fill(a, b []int, model *score.Model, strand byte) (*trace.Matrix, float64, error) {
	if err := validateStrand(strand); err != nil {
		return nil, 0, err
	}
	m, err := model.ForStrand(strand)
	if err != nil {
		return nil, 0, err
	}

	nA, nB := len(a), len(b)
	tm := trace.New(nA, nB)
	tm.Gotoh = trace.NewGotohOverlay(nA, nB)
	local := m.Mode == score.Local

	M := make([][]float64, nA+1)
	Ix := make([][]float64, nA+1)
	Iy := make([][]float64, nA+1)
	for i := range M {
		M[i] = make([]float64, nB+1)
		Ix[i] = make([]float64, nB+1)
		Iy[i] = make([]float64, nB+1)
	}

	if !local {
		Ix[0][0], Iy[0][0] = negInf, negInf
		for i := 1; i <= nA; i++ {
			ctx := score.ContextFor(i, 0, nA, nB)
			open := M[i-1][0] + m.Gaps.OpenCost(ctx, score.Deletion)
			Ix[i][0] = open
			from := trace.MMatrix
			if i > 1 {
				if ext := Ix[i-1][0] + m.Gaps.ExtendCost(ctx, score.Deletion); ext > open && !m.Equal(ext, open) {
					Ix[i][0], from = ext, trace.IxMatrix
				} else if m.Equal(ext, open) {
					from |= trace.IxMatrix
				}
			}
			M[i][0] = negInf
			Iy[i][0] = negInf
			tm.Gotoh.IxFrom[i][0] = from
		}
		for j := 1; j <= nB; j++ {
			ctx := score.ContextFor(0, j, nA, nB)
			open := M[0][j-1] + m.Gaps.OpenCost(ctx, score.Insertion)
			Iy[0][j] = open
			from := trace.MMatrix
			if j > 1 {
				if ext := Iy[0][j-1] + m.Gaps.ExtendCost(ctx, score.Insertion); ext > open && !m.Equal(ext, open) {
					Iy[0][j], from = ext, trace.IyMatrix
				} else if m.Equal(ext, open) {
					from |= trace.IyMatrix
				}
			}
			M[0][j] = negInf
			Ix[0][j] = negInf
			tm.Gotoh.IyFrom[0][j] = from
		}
	} else {
		for i := 1; i <= nA; i++ {
			M[i][0], Ix[i][0], Iy[i][0] = negInf, negInf, negInf
		}
		for j := 1; j <= nB; j++ {
			M[0][j], Ix[0][j], Iy[0][j] = negInf, negInf, negInf
		}
	}

	var maxScore float64
	var endpoints [][2]int
	markEndpointM := func(i, j int, v float64) {
		switch {
		case len(endpoints) == 0:
			maxScore = v
			tm.Bits[i][j] |= trace.Endpoint
			endpoints = append(endpoints, [2]int{i, j})
		case v > maxScore && !m.Equal(v, maxScore):
			for _, e := range endpoints {
				tm.Bits[e[0]][e[1]] &^= trace.Endpoint
			}
			endpoints = endpoints[:0]
			maxScore = v
			tm.Bits[i][j] |= trace.Endpoint
			endpoints = append(endpoints, [2]int{i, j})
		case m.Equal(v, maxScore):
			tm.Bits[i][j] |= trace.Endpoint
			endpoints = append(endpoints, [2]int{i, j})
		}
	}

	for i := 1; i <= nA; i++ {
		for j := 1; j <= nB; j++ {
			ctx := score.ContextFor(i, j, nA, nB)

			// Ix: gap in B, vertical step from row i-1.
			ixBest := M[i-1][j] + m.Gaps.OpenCost(ctx, score.Deletion)
			ixBits := trace.MMatrix
			if v := Ix[i-1][j] + m.Gaps.ExtendCost(ctx, score.Deletion); v > ixBest && !m.Equal(v, ixBest) {
				ixBest, ixBits = v, trace.IxMatrix
			} else if m.Equal(v, ixBest) {
				ixBits |= trace.IxMatrix
			}
			if v := Iy[i-1][j] + m.Gaps.OpenCost(ctx, score.Deletion); v > ixBest && !m.Equal(v, ixBest) {
				ixBest, ixBits = v, trace.IyMatrix
			} else if m.Equal(v, ixBest) {
				ixBits |= trace.IyMatrix
			}
			Ix[i][j] = ixBest
			tm.Gotoh.IxFrom[i][j] = ixBits

			// Iy: gap in A, horizontal step from column j-1.
			iyBest := M[i][j-1] + m.Gaps.OpenCost(ctx, score.Insertion)
			iyBits := trace.MMatrix
			if v := Iy[i][j-1] + m.Gaps.ExtendCost(ctx, score.Insertion); v > iyBest && !m.Equal(v, iyBest) {
				iyBest, iyBits = v, trace.IyMatrix
			} else if m.Equal(v, iyBest) {
				iyBits |= trace.IyMatrix
			}
			if v := Ix[i][j-1] + m.Gaps.OpenCost(ctx, score.Insertion); v > iyBest && !m.Equal(v, iyBest) {
				iyBest, iyBits = v, trace.IxMatrix
			} else if m.Equal(v, iyBest) {
				iyBits |= trace.IxMatrix
			}
			Iy[i][j] = iyBest
			tm.Gotoh.IyFrom[i][j] = iyBits

			// M: match/mismatch, diagonal step from (i-1, j-1).
			s, err := cell(m, a, b, i, j)
			if err != nil {
				return nil, 0, err
			}
			mBest := M[i-1][j-1]
			mBits := trace.MMatrix
			if v := Ix[i-1][j-1]; v > mBest && !m.Equal(v, mBest) {
				mBest, mBits = v, trace.IxMatrix
			} else if m.Equal(v, mBest) {
				mBits |= trace.IxMatrix
			}
			if v := Iy[i-1][j-1]; v > mBest && !m.Equal(v, mBest) {
				mBest, mBits = v, trace.IyMatrix
			} else if m.Equal(v, mBest) {
				mBits |= trace.IyMatrix
			}
			mBest += s

			if local {
				if mBest <= 0 || m.Equal(mBest, 0) {
					mBest = 0
					mBits = 0
					if M[i-1][j-1] > 0 || Ix[i-1][j-1] > 0 || Iy[i-1][j-1] > 0 {
						mBits = trace.Startpoint
					}
				}
			}
			M[i][j] = mBest
			tm.Bits[i][j] = mBits & (trace.MMatrix | trace.IxMatrix | trace.IyMatrix)
			if mBits&trace.Startpoint != 0 {
				tm.Bits[i][j] |= trace.Startpoint
			}

			if local {
				markEndpointM(i, j, mBest)
			}
		}
	}

	var result float64
	if local {
		result = maxScore
		if len(endpoints) == 0 || maxScore <= 0 || m.Equal(maxScore, 0) {
			tm.NoStart = true
			for _, e := range endpoints {
				tm.Bits[e[0]][e[1]] &^= trace.Endpoint
			}
		} else {
			sweepGotohReachability(tm)
		}
	} else {
		result = M[nA][nB]
		if Ix[nA][nB] > result && !m.Equal(Ix[nA][nB], result) {
			result = Ix[nA][nB]
		}
		if Iy[nA][nB] > result && !m.Equal(Iy[nA][nB], result) {
			result = Iy[nA][nB]
		}
		// tm.Bits[nA][nB] doubles as "which layer(s) tie for the final
		// score" here, distinct from its usual meaning of "which layer(s)
		// fed M diagonally" everywhere else in the matrix.
		tm.Bits[nA][nB] &^= trace.MMatrix | trace.IxMatrix | trace.IyMatrix
		if m.Equal(M[nA][nB], result) {
			tm.Bits[nA][nB] |= trace.MMatrix
		}
		if m.Equal(Ix[nA][nB], result) {
			tm.Bits[nA][nB] |= trace.IxMatrix
		}
		if m.Equal(Iy[nA][nB], result) {
			tm.Bits[nA][nB] |= trace.IyMatrix
		}
		tm.Bits[nA][nB] |= trace.Endpoint
		tm.Bits[0][0] |= trace.Startpoint
	}

	return tm, result, nil
}
