package engine

import "github.com/bioflow-go/bioflow-core/internal/trace"

// sweepGotohReachability implements the local-mode reachability pass a
// layered engine needs: unlike NW-SW, Gotoh's gap layers are never
// clamped to zero, so an M-cell's trace can point at a gap-layer
// predecessor that never bottoms out at a STARTPOINT. This walks the
// matrix forward, layer by layer, and clears any trace bit whose
// predecessor state turned out unreachable. A cell whose M layer carries
// a STARTPOINT, or no predecessor bit at all (M was clamped to zero, or
// the cell is on the boundary), is where a local path can begin, so its
// M state counts as reachable.
func sweepGotohReachability(tm *trace.Matrix) {
	nA, nB := tm.NA, tm.NB
	reachM := make([][]bool, nA+1)
	reachIx := make([][]bool, nA+1)
	reachIy := make([][]bool, nA+1)
	for i := range reachM {
		reachM[i] = make([]bool, nB+1)
		reachIx[i] = make([]bool, nB+1)
		reachIy[i] = make([]bool, nB+1)
	}

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			if tm.Bits[i][j].Has(trace.Startpoint) || tm.Bits[i][j]&(trace.MMatrix|trace.IxMatrix|trace.IyMatrix) == 0 {
				reachM[i][j] = true
			} else if i > 0 && j > 0 {
				bits := tm.Bits[i][j]
				var ok bool
				if bits.Has(trace.MMatrix) {
					if reachM[i-1][j-1] {
						ok = true
					} else {
						bits &^= trace.MMatrix
					}
				}
				if bits.Has(trace.IxMatrix) {
					if reachIx[i-1][j-1] {
						ok = true
					} else {
						bits &^= trace.IxMatrix
					}
				}
				if bits.Has(trace.IyMatrix) {
					if reachIy[i-1][j-1] {
						ok = true
					} else {
						bits &^= trace.IyMatrix
					}
				}
				tm.Bits[i][j] = bits
				reachM[i][j] = ok
			}

			if i > 0 && tm.Gotoh != nil {
				from := tm.Gotoh.IxFrom[i][j]
				var ok bool
				if from.Has(trace.MMatrix) {
					if reachM[i-1][j] {
						ok = true
					} else {
						from &^= trace.MMatrix
					}
				}
				if from.Has(trace.IxMatrix) {
					if reachIx[i-1][j] {
						ok = true
					} else {
						from &^= trace.IxMatrix
					}
				}
				if from.Has(trace.IyMatrix) {
					if reachIy[i-1][j] {
						ok = true
					} else {
						from &^= trace.IyMatrix
					}
				}
				tm.Gotoh.IxFrom[i][j] = from
				reachIx[i][j] = ok
			}

			if j > 0 && tm.Gotoh != nil {
				from := tm.Gotoh.IyFrom[i][j]
				var ok bool
				if from.Has(trace.MMatrix) {
					if reachM[i][j-1] {
						ok = true
					} else {
						from &^= trace.MMatrix
					}
				}
				if from.Has(trace.IxMatrix) {
					if reachIx[i][j-1] {
						ok = true
					} else {
						from &^= trace.IxMatrix
					}
				}
				if from.Has(trace.IyMatrix) {
					if reachIy[i][j-1] {
						ok = true
					} else {
						from &^= trace.IyMatrix
					}
				}
				tm.Gotoh.IyFrom[i][j] = from
				reachIy[i][j] = ok
			}
		}
	}
}

// sweepWSBReachability mirrors sweepGotohReachability for WSB's
// variable-length gap lists: a length k in a cell's gap-span is only kept
// if its source cell (k residues back, in the source layer the span
// names) is itself reachable from a STARTPOINT or from a cell with no M
// predecessor bit (a local start). Filtered lists are
// rewritten as fresh spans via WSBOverlay.Append, since the row slabs are
// append-only and the fill has already finished writing to them.
func sweepWSBReachability(tm *trace.Matrix) {
	nA, nB := tm.NA, tm.NB
	reachM := make([][]bool, nA+1)
	reachIx := make([][]bool, nA+1)
	reachIy := make([][]bool, nA+1)
	for i := range reachM {
		reachM[i] = make([]bool, nB+1)
		reachIx[i] = make([]bool, nB+1)
		reachIy[i] = make([]bool, nB+1)
	}

	for i := 0; i <= nA; i++ {
		for j := 0; j <= nB; j++ {
			if tm.Bits[i][j].Has(trace.Startpoint) || tm.Bits[i][j]&(trace.MMatrix|trace.IxMatrix|trace.IyMatrix) == 0 {
				reachM[i][j] = true
			} else if i > 0 && j > 0 {
				bits := tm.Bits[i][j]
				var ok bool
				if bits.Has(trace.MMatrix) {
					if reachM[i-1][j-1] {
						ok = true
					} else {
						bits &^= trace.MMatrix
					}
				}
				if bits.Has(trace.IxMatrix) {
					if reachIx[i-1][j-1] {
						ok = true
					} else {
						bits &^= trace.IxMatrix
					}
				}
				if bits.Has(trace.IyMatrix) {
					if reachIy[i-1][j-1] {
						ok = true
					} else {
						bits &^= trace.IyMatrix
					}
				}
				tm.Bits[i][j] = bits
				reachM[i][j] = ok
			}

			if i > 0 {
				var mLens, iyLens []int32
				var ok bool
				for _, k := range tm.WSB.List(i, tm.WSB.MIx[i][j]) {
					if reachM[i-int(k)][j] {
						mLens = append(mLens, k)
						ok = true
					}
				}
				for _, k := range tm.WSB.List(i, tm.WSB.IyIx[i][j]) {
					if reachIy[i-int(k)][j] {
						iyLens = append(iyLens, k)
						ok = true
					}
				}
				tm.WSB.MIx[i][j] = tm.WSB.Append(i, mLens)
				tm.WSB.IyIx[i][j] = tm.WSB.Append(i, iyLens)
				reachIx[i][j] = ok
			}

			if j > 0 {
				var mLens, ixLens []int32
				var ok bool
				for _, k := range tm.WSB.List(i, tm.WSB.MIy[i][j]) {
					if reachM[i][j-int(k)] {
						mLens = append(mLens, k)
						ok = true
					}
				}
				for _, k := range tm.WSB.List(i, tm.WSB.IxIy[i][j]) {
					if reachIx[i][j-int(k)] {
						ixLens = append(ixLens, k)
						ok = true
					}
				}
				tm.WSB.MIy[i][j] = tm.WSB.Append(i, mLens)
				tm.WSB.IxIy[i][j] = tm.WSB.Append(i, ixLens)
				reachIy[i][j] = ok
			}
		}
	}
}
