package score

import "github.com/pkg/errors"

// SubstitutionMatrix is a small abstract view over a user-supplied scoring
// matrix: a contiguous float64 square block plus an optional injective
// mapping from a user symbol to a matrix row/column index, derived once
// before the DP fill.
type SubstitutionMatrix struct {
	size    int
	values  []float64 // row-major, size*size
	Mapping []int     // optional; Mapping[userSymbol] = matrix index, -1 = unmapped
}

// NewSubstitutionMatrix builds a SubstitutionMatrix from a row-major
// square float64 buffer. It rejects any buffer that is not square; shape
// validation of a caller-supplied buffer beyond that (non-2D, ragged)
// belongs to the façade, before values ever reach this constructor.
func NewSubstitutionMatrix(values []float64, size int) (*SubstitutionMatrix, error) {
	if size <= 0 || len(values) != size*size {
		return nil, &ValidationError{Reason: "substitution matrix must be square"}
	}
	return &SubstitutionMatrix{size: size, values: values}, nil
}

// Size returns the matrix's row/column count.
func (m *SubstitutionMatrix) Size() int { return m.size }

// Max returns the largest entry in the matrix, used by FOGSAA to build an
// admissible optimistic bound on the score of a still-unfilled region.
func (m *SubstitutionMatrix) Max() float64 {
	best := m.values[0]
	for _, v := range m.values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// WithMapping attaches a symbol->index mapping and returns the receiver
// for chaining.
func (m *SubstitutionMatrix) WithMapping(mapping []int) *SubstitutionMatrix {
	m.Mapping = mapping
	return m
}

// resolve maps a user symbol to a matrix index, or returns a DomainError
// if a mapping is set and the symbol is absent from it.
func (m *SubstitutionMatrix) resolve(symbol int) (int, error) {
	if m.Mapping == nil {
		return symbol, nil
	}
	if symbol < 0 || symbol >= len(m.Mapping) || m.Mapping[symbol] < 0 {
		return 0, errors.Wrapf(&DomainError{Reason: "unmapped symbol"}, "symbol %d", symbol)
	}
	return m.Mapping[symbol], nil
}

// At returns M[a, b], mapping a and b through Mapping first if it is set.
func (m *SubstitutionMatrix) At(a, b int) (float64, error) {
	ia, err := m.resolve(a)
	if err != nil {
		return 0, err
	}
	ib, err := m.resolve(b)
	if err != nil {
		return 0, err
	}
	if ia < 0 || ia >= m.size || ib < 0 || ib >= m.size {
		return 0, errors.Wrapf(&DomainError{Reason: "index out of range"}, "(%d,%d)", ia, ib)
	}
	return m.values[ia*m.size+ib], nil
}
