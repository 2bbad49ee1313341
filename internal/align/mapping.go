package align

import "github.com/bioflow-go/bioflow-core/internal/score"

// Mapping is a caller-owned symbol alphabet, reduced here to "map a byte
// to a small non-negative integer symbol, -1 if it isn't in the
// alphabet." Encode turns a sequence string into the []int the engines
// operate on.
type Mapping struct {
	table [256]int
}

// NewMapping returns a Mapping where every byte is initially unmapped.
func NewMapping() *Mapping {
	m := &Mapping{}
	for i := range m.table {
		m.table[i] = -1
	}
	return m
}

// Set assigns symbol as the integer code for byte value b.
func (m *Mapping) Set(b byte, symbol int) *Mapping {
	m.table[b] = symbol
	return m
}

// SetRange assigns consecutive integer codes to each byte in alphabet,
// in order, for the common case of a DNA or protein alphabet string.
func (m *Mapping) SetRange(alphabet string) *Mapping {
	for i := 0; i < len(alphabet); i++ {
		m.table[alphabet[i]] = i
	}
	return m
}

// Encode converts seq into the integer symbols the engines consume,
// failing with a DomainError on the first byte outside the alphabet.
func (m *Mapping) Encode(seq string) ([]int, error) {
	out := make([]int, len(seq))
	for i := 0; i < len(seq); i++ {
		sym := m.table[seq[i]]
		if sym < 0 {
			return nil, &score.DomainError{Reason: "symbol outside alphabet: " + string(seq[i])}
		}
		out[i] = sym
	}
	return out, nil
}

// DefaultDNAMapping returns the nucleotide alphabet used by the CLI and
// HTTP demo layers: A, C, G, T and N as symbols 0 through 4. It sets no
// wildcard; N scores as an ordinary symbol unless the model's wildcard is
// set to 4.
func DefaultDNAMapping() *Mapping {
	return NewMapping().SetRange("ACGTN")
}

// DefaultProteinMapping returns the twenty-amino-acid-plus-unknown
// alphabet used when a substitution matrix like BLOSUM is configured.
func DefaultProteinMapping() *Mapping {
	return NewMapping().SetRange("ARNDCQEGHILKMFPSTWYVX")
}
