package enumerate

// AlignedPair is one column of a materialized alignment: the 0-based
// index into A and B each step consumes, or -1 on the side that has a
// gap. Built from a Path's edit script, expanding any multi-residue WSB
// gap step into one AlignedPair per residue.
type AlignedPair struct {
	A, B int
}

// RunEndpoints collapses p into the run-endpoint form: consecutive steps
// of the same Kind (a maximal diagonal/horizontal/vertical run) contribute
// exactly one (begin, end) pair to rowsA and rowsB, rather than one entry
// per residue. A boundary between two runs is reported once as the end
// of the first and once as the start of the second, so len(rowsA) is
// always twice the number of runs. Coordinates start at (startA, startB)
// and B is remapped for the '-' strand.
//
// Unlike Positions, these are boundary coordinates in 0..nB (a run can
// end exactly at nB), not 0-based residue indices in 0..nB-1, so the
// '-' strand remap is nB-j rather than Positions' nB-1-j.
func RunEndpoints(p Path, startA, startB int, strand byte, nB int) (rowsA, rowsB []int) {
	remap := func(j int) int {
		if strand == '-' {
			return nB - j
		}
		return j
	}

	a, b := startA, startB
	i := 0
	for i < len(p.Steps) {
		kind := p.Steps[i].Kind
		beginA, beginB := a, b
		for i < len(p.Steps) && p.Steps[i].Kind == kind {
			switch step := p.Steps[i]; step.Kind {
			case 'M':
				a++
				b++
			case 'D':
				a += step.ALen
			case 'I':
				b += step.BLen
			}
			i++
		}
		rowsA = append(rowsA, beginA, a)
		rowsB = append(rowsB, remap(beginB), remap(b))
	}
	return rowsA, rowsB
}

// Positions expands p into the sequence of aligned index pairs, starting
// at (startA, startB) and remapping B coordinates for the '-' strand:
// strand '-' maps a B index j to nB-1-j only at emission time, never
// inside the engine or the walk itself.
func Positions(p Path, startA, startB int, strand byte, nB int) []AlignedPair {
	var pairs []AlignedPair
	a, b := startA, startB
	remap := func(j int) int {
		if strand == '-' {
			return nB - 1 - j
		}
		return j
	}
	for _, step := range p.Steps {
		switch step.Kind {
		case 'M':
			pairs = append(pairs, AlignedPair{A: a, B: remap(b)})
			a++
			b++
		case 'D':
			for k := 0; k < step.ALen; k++ {
				pairs = append(pairs, AlignedPair{A: a, B: -1})
				a++
			}
		case 'I':
			for k := 0; k < step.BLen; k++ {
				pairs = append(pairs, AlignedPair{A: -1, B: remap(b)})
				b++
			}
		}
	}
	return pairs
}
