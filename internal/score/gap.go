package score

// GapContext says whether a gap touches a sequence boundary. Left is at
// i==0 or j==0, Right is at i==nA or j==nB, Internal is neither.
type GapContext int

const (
	Internal GapContext = iota
	Left
	Right
)

// GapSide distinguishes a deletion (a VERTICAL step: an A residue against
// a gap in B) from an insertion (a HORIZONTAL step: a B residue against a
// gap in A).
type GapSide int

const (
	Insertion GapSide = iota
	Deletion
)

// GapKind distinguishes the opening cost of a gap from its per-residue
// extension cost.
type GapKind int

const (
	Open GapKind = iota
	Extend
)

// GapPenalties is a flat 6-open + 6-extend structure in place of twelve
// separately named fields: one value per (Context, Side) pair, times
// Open and Extend.
type GapPenalties struct {
	values [3][2][2]float64 // [context][side][kind]
}

// Get returns the configured penalty for the given context, side and kind.
func (g *GapPenalties) Get(ctx GapContext, side GapSide, kind GapKind) float64 {
	return g.values[ctx][side][kind]
}

// Set stores a penalty for the given context, side and kind.
func (g *GapPenalties) Set(ctx GapContext, side GapSide, kind GapKind, value float64) {
	g.values[ctx][side][kind] = value
}

// AllEqual reports whether, for every (context, side) pair, Open == Extend,
// which collapses the algorithm-selection check for NW-SW vs. Gotoh to one
// predicate: a uniform linear gap cost needs nothing beyond NW-SW.
func (g *GapPenalties) AllEqual() bool {
	for ctx := Internal; ctx <= Right; ctx++ {
		for side := Insertion; side <= Deletion; side++ {
			if g.Get(ctx, side, Open) != g.Get(ctx, side, Extend) {
				return false
			}
		}
	}
	return true
}

// ContextFor derives the gap context for a cell at (i, j) in an (nA+1) x
// (nB+1) matrix.
func ContextFor(i, j, nA, nB int) GapContext {
	if i == 0 || j == 0 {
		return Left
	}
	if i == nA || j == nB {
		return Right
	}
	return Internal
}

// Swapped returns a copy of g with its Left and Right penalties exchanged,
// used when the aligner is called on the '-' strand: the boundary that was
// the sequence start on the '+' strand becomes the end on '-', so the
// left/right gap costs must trade places too.
func (g *GapPenalties) Swapped() GapPenalties {
	out := *g
	for side := Insertion; side <= Deletion; side++ {
		for kind := Open; kind <= Extend; kind++ {
			out.values[Left][side][kind], out.values[Right][side][kind] =
				out.values[Right][side][kind], out.values[Left][side][kind]
		}
	}
	return out
}

// OpenCost returns the total cost of opening (and thereby including one
// residue of) a gap of length 1 in the given context and side.
func (g *GapPenalties) OpenCost(ctx GapContext, side GapSide) float64 {
	return g.Get(ctx, side, Open)
}

// ExtendCost returns the cost of extending an already-open gap by one more
// residue in the given context and side.
func (g *GapPenalties) ExtendCost(ctx GapContext, side GapSide) float64 {
	return g.Get(ctx, side, Extend)
}

// AffineCost returns open + (k-1)*extend for a contiguous gap of length k,
// the parametric fallback WSB uses when no callback is set.
func (g *GapPenalties) AffineCost(ctx GapContext, side GapSide, k int) float64 {
	if k <= 0 {
		return 0
	}
	return g.OpenCost(ctx, side) + float64(k-1)*g.ExtendCost(ctx, side)
}

// LeastCostlyExtend returns the most generous (numerically largest) of the
// six extend penalties (unset slots count as 0), used by FOGSAA to bound the cost of
// closing a length gap between the two sequences optimistically.
func (g *GapPenalties) LeastCostlyExtend() float64 {
	best := g.values[Internal][Insertion][Extend]
	for ctx := Internal; ctx <= Right; ctx++ {
		for side := Insertion; side <= Deletion; side++ {
			if v := g.Get(ctx, side, Extend); v > best {
				best = v
			}
		}
	}
	return best
}
