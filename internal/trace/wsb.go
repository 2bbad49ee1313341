package trace

// GapSpan indexes a zero-terminated run of gap lengths inside a row's
// slab: a flat per-row allocator with begin/end offsets per cell, rather
// than one slice allocation per cell.
type GapSpan struct {
	Begin, End int32 // [Begin,End) excludes the trailing zero terminator
}

// Empty reports whether the span records no gap lengths.
func (s GapSpan) Empty() bool { return s.Begin == s.End }

// WSBOverlay holds the four variable-length gap-length lists WSB records
// per cell: MIx and IyIx (lengths reaching the Ix state from M or Iy),
// and MIy and IxIy (the symmetric pair for Iy). Each cell's lists live in
// its row's slab, so an allocation failure mid-fill can release whole
// rows without walking every cell.
type WSBOverlay struct {
	rows      [][]int32
	MIx, IyIx [][]GapSpan
	MIy, IxIy [][]GapSpan
}

// NewWSBOverlay allocates a zeroed overlay for an (nA+1) x (nB+1) matrix.
func NewWSBOverlay(nA, nB int) *WSBOverlay {
	o := &WSBOverlay{
		rows: make([][]int32, nA+1),
		MIx:  make([][]GapSpan, nA+1),
		IyIx: make([][]GapSpan, nA+1),
		MIy:  make([][]GapSpan, nA+1),
		IxIy: make([][]GapSpan, nA+1),
	}
	for i := 0; i <= nA; i++ {
		o.MIx[i] = make([]GapSpan, nB+1)
		o.IyIx[i] = make([]GapSpan, nB+1)
		o.MIy[i] = make([]GapSpan, nB+1)
		o.IxIy[i] = make([]GapSpan, nB+1)
	}
	return o
}

// Append records a zero-terminated run of gap lengths in row i's slab and
// returns the span identifying it. Passing a nil or empty slice records
// an empty span without touching the slab.
func (o *WSBOverlay) Append(i int, lengths []int32) GapSpan {
	if len(lengths) == 0 {
		return GapSpan{}
	}
	begin := int32(len(o.rows[i]))
	o.rows[i] = append(o.rows[i], lengths...)
	o.rows[i] = append(o.rows[i], 0)
	return GapSpan{Begin: begin, End: int32(len(o.rows[i])) - 1}
}

// List returns the gap lengths recorded by span, excluding the
// terminator.
func (o *WSBOverlay) List(i int, span GapSpan) []int32 {
	if span.Empty() {
		return nil
	}
	return o.rows[i][span.Begin:span.End]
}

// ReleaseRow drops row i's slab. Used to unwind a partially filled matrix
// after an allocation failure without leaking earlier rows.
func (o *WSBOverlay) ReleaseRow(i int) {
	if o == nil || i < 0 || i >= len(o.rows) {
		return
	}
	o.rows[i] = nil
	for _, spans := range [...][]GapSpan{o.MIx[i], o.IyIx[i], o.MIy[i], o.IxIy[i]} {
		for j := range spans {
			spans[j] = GapSpan{}
		}
	}
}
