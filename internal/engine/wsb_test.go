package engine

import (
	"testing"

	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wsbModel(mode score.Mode, gapFn func(i, k int) float64) *score.Model {
	m := score.NewModel()
	m.SetMatch(2)
	m.SetMismatch(-1)
	m.SetGapFuncs(gapFn, gapFn)
	m.SetMode(mode)
	return m
}

func TestWSBAgreesWithAffineUnderMatchingCostFunction(t *testing.T) {
	affine := func(i, k int) float64 {
		if k <= 0 {
			return 0
		}
		return -5 + float64(k-1)*-1
	}
	m := wsbModel(score.Global, affine)
	a, b := encodeDNA("ATGCATGC"), encodeDNA("ATGC")

	_, sc, err := WSBEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 0.0, sc)
}

func TestWSBLogarithmicGapPrefersOneGap(t *testing.T) {
	// A gap cost that grows sublinearly with length should still prefer
	// consolidating a deletion into one run rather than splitting it,
	// since AffineCost-style linear growth is a strict upper bound.
	logGap := func(i, k int) float64 {
		if k <= 0 {
			return 0
		}
		cost := -2.0
		for n := 2; n <= k; n++ {
			cost -= 1.0 / float64(n)
		}
		return cost
	}
	m := wsbModel(score.Global, logGap)
	a, b := encodeDNA("ATGCATGC"), encodeDNA("ATGC")

	_, sc, err := WSBEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	// 4 matches (8) plus one 4-length gap: -2 - 1/2 - 1/3 - 1/4
	want := 8.0 + logGap(0, 4)
	assert.InDelta(t, want, sc, 1e-9)
}

func TestWSBLocalNoMatch(t *testing.T) {
	m := wsbModel(score.Local, func(i, k int) float64 { return -2 * float64(k) })
	a, b := encodeDNA("AAAA"), encodeDNA("TTTT")

	tm, sc, err := WSBEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 0.0, sc)
	assert.True(t, tm.NoStart)
}
