package engine

import (
	"testing"

	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/bioflow-go/bioflow-core/internal/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeDNA(s string) []int {
	out := make([]int, len(s))
	for i, c := range s {
		switch c {
		case 'A':
			out[i] = 0
		case 'C':
			out[i] = 1
		case 'G':
			out[i] = 2
		case 'T':
			out[i] = 3
		default:
			out[i] = -1
		}
	}
	return out
}

func linearModel(mode score.Mode) *score.Model {
	m := score.NewModel()
	m.SetMatch(2)
	m.SetMismatch(-1)
	for ctx := score.Internal; ctx <= score.Right; ctx++ {
		for side := score.Insertion; side <= score.Deletion; side++ {
			m.SetGap(ctx, side, score.Open, -2)
			m.SetGap(ctx, side, score.Extend, -2)
		}
	}
	m.SetMode(mode)
	return m
}

func TestNWSWIdenticalGlobal(t *testing.T) {
	m := linearModel(score.Global)
	a, b := encodeDNA("ATGC"), encodeDNA("ATGC")

	tm, sc, err := NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 8.0, sc) // 4 matches * 2
	assert.True(t, tm.Bits[0][0].Has(trace.Startpoint))
	assert.True(t, tm.Bits[4][4].Has(trace.Endpoint))
}

func TestNWSWMismatchGlobal(t *testing.T) {
	m := linearModel(score.Global)
	a, b := encodeDNA("ATGC"), encodeDNA("ATGA")

	_, sc, err := NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 5.0, sc) // 3 matches (6) - 1 mismatch (1)
}

func TestNWSWLocalFindsBestSubstring(t *testing.T) {
	m := linearModel(score.Local)
	a, b := encodeDNA("TTATGCTT"), encodeDNA("GGATGCGG")

	tm, sc, err := NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 8.0, sc) // ATGC matches exactly
	assert.False(t, tm.NoStart)
}

func TestNWSWLocalNoMatch(t *testing.T) {
	m := linearModel(score.Local)
	a, b := encodeDNA("AAAA"), encodeDNA("TTTT")

	tm, sc, err := NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 0.0, sc)
	assert.True(t, tm.NoStart)
}

func TestNWSWRejectsBadStrand(t *testing.T) {
	m := linearModel(score.Global)
	_, _, err := NWSW{}.Fill(encodeDNA("A"), encodeDNA("A"), m, 'x')
	require.Error(t, err)
}
