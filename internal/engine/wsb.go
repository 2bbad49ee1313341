package engine

import (
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
)

// WSBEngine implements Waterman-Smith-Beyer general gap costing: gap
// cost is an arbitrary function of the residue where the gap
// starts and its length, supplied via Model.InsertionFn/DeletionFn (or the
// affine fallback), so every candidate gap length has to be tried
// explicitly rather than folded into an O(1) extend step. Every cell
// records not just the winning gap length but every length within
// epsilon of it, since the enumerator has to walk them all.
type WSBEngine struct{}

func (WSBEngine) Fill(a, b []int, model *score.Model, strand byte) (*trace.Matrix, float64, error) {
	if err := validateStrand(strand); err != nil {
		return nil, 0, err
	}
	m, err := model.ForStrand(strand)
	if err != nil {
		return nil, 0, err
	}

	nA, nB := len(a), len(b)
	tm := trace.New(nA, nB)
	tm.WSB = trace.NewWSBOverlay(nA, nB)
	local := m.Mode == score.Local

	M := make([][]float64, nA+1)
	Ix := make([][]float64, nA+1)
	Iy := make([][]float64, nA+1)
	for i := range M {
		M[i] = make([]float64, nB+1)
		Ix[i] = make([]float64, nB+1)
		Iy[i] = make([]float64, nB+1)
		for j := range M[i] {
			if !local && (i > 0 || j > 0) {
				M[i][j] = negInf
			}
		}
	}
	for i := 0; i <= nA; i++ {
		Ix[i][0] = negInf
		Iy[i][0] = negInf
	}
	for j := 0; j <= nB; j++ {
		Ix[0][j] = negInf
		Iy[0][j] = negInf
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

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			if i == 0 && j == 0 {
				continue
			}
			ctx := score.ContextFor(i, j, nA, nB)

			if i > 0 {
				best := negInf
				var mLens, iyLens []int32
				for k := 1; k <= i; k++ {
					c := m.DeletionCost(i-k, k, ctx)
					if v := M[i-k][j] + c; !isNegInf(M[i-k][j]) {
						switch {
						case v > best && !m.Equal(v, best):
							best = v
							mLens = []int32{int32(k)}
							iyLens = nil
						case m.Equal(v, best):
							mLens = append(mLens, int32(k))
						}
					}
					if v := Iy[i-k][j] + c; !isNegInf(Iy[i-k][j]) {
						switch {
						case v > best && !m.Equal(v, best):
							best = v
							iyLens = []int32{int32(k)}
							mLens = nil
						case m.Equal(v, best):
							iyLens = append(iyLens, int32(k))
						}
					}
				}
				Ix[i][j] = best
				tm.WSB.MIx[i][j] = tm.WSB.Append(i, mLens)
				tm.WSB.IyIx[i][j] = tm.WSB.Append(i, iyLens)
			}

			if j > 0 {
				best := negInf
				var mLens, ixLens []int32
				for k := 1; k <= j; k++ {
					c := m.InsertionCost(j-k, k, ctx)
					if v := M[i][j-k] + c; !isNegInf(M[i][j-k]) {
						switch {
						case v > best && !m.Equal(v, best):
							best = v
							mLens = []int32{int32(k)}
							ixLens = nil
						case m.Equal(v, best):
							mLens = append(mLens, int32(k))
						}
					}
					if v := Ix[i][j-k] + c; !isNegInf(Ix[i][j-k]) {
						switch {
						case v > best && !m.Equal(v, best):
							best = v
							ixLens = []int32{int32(k)}
							mLens = nil
						case m.Equal(v, best):
							ixLens = append(ixLens, int32(k))
						}
					}
				}
				Iy[i][j] = best
				tm.WSB.MIy[i][j] = tm.WSB.Append(i, mLens)
				tm.WSB.IxIy[i][j] = tm.WSB.Append(i, ixLens)
			}

			if i > 0 && j > 0 {
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
				tm.Bits[i][j] |= mBits & (trace.MMatrix | trace.IxMatrix | trace.IyMatrix)
				if mBits&trace.Startpoint != 0 {
					tm.Bits[i][j] |= trace.Startpoint
				}

				if local {
					markEndpointM(i, j, mBest)
				}
			} else if !local {
				M[i][j] = negInf
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
			sweepWSBReachability(tm)
		}
	} else {
		result = M[nA][nB]
		if Ix[nA][nB] > result && !m.Equal(Ix[nA][nB], result) {
			result = Ix[nA][nB]
		}
		if Iy[nA][nB] > result && !m.Equal(Iy[nA][nB], result) {
			result = Iy[nA][nB]
		}
		// As in Gotoh, the endpoint cell's bits mean "which layer(s) tie
		// for the final score" rather than "which layer(s) fed M".
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

func isNegInf(v float64) bool { return v <= negInf/2 }
