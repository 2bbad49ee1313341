// Package trace implements the packed traceback matrix that every DP
// engine fills and every PathEnumerator walks: a per-cell direction mask
// plus two algorithm-specific overlays (Gotoh's two from-nibbles, WSB's
// four gap-length lists).
package trace

// Bit is a per-cell trace flag. Every incoming direction that ties the
// cell's optimum within epsilon sets its bit, so a cell can carry more
// than one — that is what lets the enumerator walk every co-optimal path
// instead of just one.
type Bit uint8

const (
	Diagonal Bit = 1 << iota
	Horizontal
	Vertical
	MMatrix
	IxMatrix
	IyMatrix
	Startpoint
	Endpoint
)

// Has reports whether b is set in the receiver.
func (t Bit) Has(b Bit) bool { return t&b != 0 }
