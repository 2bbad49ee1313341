package enumerate

import "github.com/bioflow-go/bioflow-core/internal/trace"

// frame is one node of the backward walk from an ENDPOINT toward a
// STARTPOINT. layer is 0 for the flat NW-SW/FOGSAA matrices (a single
// direction plane) and one of {MMatrix, IxMatrix, IyMatrix} for the
// layered Gotoh/WSB matrices. isRoot marks the synthetic frame used only
// at a global Gotoh/WSB endpoint, whose bits mean "which layer ties for
// the final score" rather than "which layer fed M".
type frame struct {
	i, j    int
	layer   trace.Bit
	isRoot  bool
	opts    []branchOption
	chosen  int
}

// branchOption is one candidate predecessor at a frame: a geometric move
// (Diagonal/Horizontal/Vertical, or 0 for the root layer choice which
// doesn't move), the predecessor's layer for layered matrices, and how
// many residues the move consumes (always 1 outside WSB gap steps).
type branchOption struct {
	move      trace.Bit
	nextLayer trace.Bit
	length    int
}

// optionsFor lists f's candidate predecessors in a fixed tie-break
// order: HORIZONTAL before VERTICAL before DIAGONAL. For layered
// matrices the geometric move is fixed by the
// layer, so the tie-break instead orders candidate source layers Iy
// (horizontal-flavored) before Ix (vertical-flavored) before M
// (diagonal-flavored), the natural extension of the same rule.
func optionsFor(tm *trace.Matrix, f frame) []branchOption {
	if f.isRoot {
		bits := tm.Bits[f.i][f.j]
		var opts []branchOption
		if bits.Has(trace.IyMatrix) {
			opts = append(opts, branchOption{nextLayer: trace.IyMatrix})
		}
		if bits.Has(trace.IxMatrix) {
			opts = append(opts, branchOption{nextLayer: trace.IxMatrix})
		}
		if bits.Has(trace.MMatrix) {
			opts = append(opts, branchOption{nextLayer: trace.MMatrix})
		}
		return opts
	}

	if f.layer == 0 {
		bits := tm.Bits[f.i][f.j]
		var opts []branchOption
		if f.i == 0 && f.j == 0 {
			return nil
		}
		if bits.Has(trace.Horizontal) {
			opts = append(opts, branchOption{move: trace.Horizontal, length: 1})
		}
		if bits.Has(trace.Vertical) {
			opts = append(opts, branchOption{move: trace.Vertical, length: 1})
		}
		if bits.Has(trace.Diagonal) {
			opts = append(opts, branchOption{move: trace.Diagonal, length: 1})
		}
		return opts
	}

	switch f.layer {
	case trace.MMatrix:
		bits := tm.Bits[f.i][f.j] & (trace.MMatrix | trace.IxMatrix | trace.IyMatrix)
		var opts []branchOption
		if bits.Has(trace.IyMatrix) {
			opts = append(opts, branchOption{move: trace.Diagonal, nextLayer: trace.IyMatrix, length: 1})
		}
		if bits.Has(trace.IxMatrix) {
			opts = append(opts, branchOption{move: trace.Diagonal, nextLayer: trace.IxMatrix, length: 1})
		}
		if bits.Has(trace.MMatrix) {
			opts = append(opts, branchOption{move: trace.Diagonal, nextLayer: trace.MMatrix, length: 1})
		}
		return opts

	case trace.IxMatrix:
		if tm.Gotoh != nil {
			from := tm.Gotoh.IxFrom[f.i][f.j]
			var opts []branchOption
			if from.Has(trace.IyMatrix) {
				opts = append(opts, branchOption{move: trace.Vertical, nextLayer: trace.IyMatrix, length: 1})
			}
			if from.Has(trace.IxMatrix) {
				opts = append(opts, branchOption{move: trace.Vertical, nextLayer: trace.IxMatrix, length: 1})
			}
			if from.Has(trace.MMatrix) {
				opts = append(opts, branchOption{move: trace.Vertical, nextLayer: trace.MMatrix, length: 1})
			}
			return opts
		}
		var opts []branchOption
		for _, k := range tm.WSB.List(f.i, tm.WSB.IyIx[f.i][f.j]) {
			opts = append(opts, branchOption{move: trace.Vertical, nextLayer: trace.IyMatrix, length: int(k)})
		}
		for _, k := range tm.WSB.List(f.i, tm.WSB.MIx[f.i][f.j]) {
			opts = append(opts, branchOption{move: trace.Vertical, nextLayer: trace.MMatrix, length: int(k)})
		}
		return opts

	case trace.IyMatrix:
		if tm.Gotoh != nil {
			from := tm.Gotoh.IyFrom[f.i][f.j]
			var opts []branchOption
			if from.Has(trace.IxMatrix) {
				opts = append(opts, branchOption{move: trace.Horizontal, nextLayer: trace.IxMatrix, length: 1})
			}
			if from.Has(trace.IyMatrix) {
				opts = append(opts, branchOption{move: trace.Horizontal, nextLayer: trace.IyMatrix, length: 1})
			}
			if from.Has(trace.MMatrix) {
				opts = append(opts, branchOption{move: trace.Horizontal, nextLayer: trace.MMatrix, length: 1})
			}
			return opts
		}
		var opts []branchOption
		for _, k := range tm.WSB.List(f.i, tm.WSB.IxIy[f.i][f.j]) {
			opts = append(opts, branchOption{move: trace.Horizontal, nextLayer: trace.IxMatrix, length: int(k)})
		}
		for _, k := range tm.WSB.List(f.i, tm.WSB.MIy[f.i][f.j]) {
			opts = append(opts, branchOption{move: trace.Horizontal, nextLayer: trace.MMatrix, length: int(k)})
		}
		return opts
	}
	return nil
}

func nextFrame(cur frame, opt branchOption) frame {
	switch opt.move {
	case trace.Diagonal:
		return frame{i: cur.i - 1, j: cur.j - 1, layer: opt.nextLayer}
	case trace.Vertical:
		return frame{i: cur.i - opt.length, j: cur.j, layer: opt.nextLayer}
	case trace.Horizontal:
		return frame{i: cur.i, j: cur.j - opt.length, layer: opt.nextLayer}
	default:
		return frame{i: cur.i, j: cur.j, layer: opt.nextLayer}
	}
}

func (e *Enumerator) seed(ep point) (bool, error) {
	layered := e.tm.Gotoh != nil || e.tm.WSB != nil
	root := frame{i: ep.i, j: ep.j}
	switch {
	case layered && !e.local:
		root.isRoot = true
	case layered && e.local:
		root.layer = trace.MMatrix
	}
	e.stack = []frame{root}
	return true, nil
}

func (e *Enumerator) descendToStart() error {
	for {
		top := &e.stack[len(e.stack)-1]
		if top.opts == nil {
			top.opts = optionsFor(e.tm, *top)
		}
		if len(top.opts) == 0 {
			return nil
		}
		opt := top.opts[top.chosen]
		e.stack = append(e.stack, nextFrame(*top, opt))
	}
}

func (e *Enumerator) backtrackToNextBranch() bool {
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		if top.chosen+1 < len(top.opts) {
			top.chosen++
			return true
		}
		e.stack = e.stack[:len(e.stack)-1]
	}
	return false
}

func (e *Enumerator) materialize() Path {
	var steps []Step
	for k := 0; k < len(e.stack)-1; k++ {
		f := e.stack[k]
		opt := f.opts[f.chosen]
		if opt.move == 0 {
			continue
		}
		var kind byte
		var aLen, bLen int
		switch opt.move {
		case trace.Diagonal:
			kind, aLen, bLen = 'M', 1, 1
		case trace.Vertical:
			kind, aLen = 'D', opt.length
		case trace.Horizontal:
			kind, bLen = 'I', opt.length
		}
		steps = append(steps, Step{Kind: kind, ALen: aLen, BLen: bLen})
	}
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}
	return Path{Steps: steps, Score: e.score}
}
