package engine

import (
	"testing"

	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func affineModel(mode score.Mode) *score.Model {
	m := score.NewModel()
	m.SetMatch(2)
	m.SetMismatch(-1)
	for ctx := score.Internal; ctx <= score.Right; ctx++ {
		for side := score.Insertion; side <= score.Deletion; side++ {
			m.SetGap(ctx, side, score.Open, -5)
			m.SetGap(ctx, side, score.Extend, -1)
		}
	}
	m.SetMode(mode)
	return m
}

func TestGotohIdenticalGlobal(t *testing.T) {
	m := affineModel(score.Global)
	a, b := encodeDNA("ATGC"), encodeDNA("ATGC")

	_, sc, err := GotohEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 8.0, sc)
}

func TestGotohPrefersOneLongGapOverManyShort(t *testing.T) {
	// Under affine costing a single 4-residue gap (-5 -1 -1 -1 = -8) beats
	// four separate single-residue gaps (-5*4 = -20).
	m := affineModel(score.Global)
	a := encodeDNA("ATGCATGC")
	b := encodeDNA("ATGC")

	_, sc, err := GotohEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	// 4 matches (8) plus one 4-residue gap (-5 -1 -1 -1 = -8)
	assert.Equal(t, 0.0, sc)
}

func TestGotohLocalNoMatch(t *testing.T) {
	m := affineModel(score.Local)
	a, b := encodeDNA("AAAA"), encodeDNA("TTTT")

	tm, sc, err := GotohEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 0.0, sc)
	assert.True(t, tm.NoStart)
}

func TestGotohAgreesWithLinearWhenOpenEqualsExtend(t *testing.T) {
	linear := linearModel(score.Global)
	a, b := encodeDNA("ATGCATGC"), encodeDNA("ATGATGC")

	_, wantSc, err := NWSW{}.Fill(a, b, linear, '+')
	require.NoError(t, err)

	_, gotSc, err := GotohEngine{}.Fill(a, b, linear, '+')
	require.NoError(t, err)

	assert.Equal(t, wantSc, gotSc)
}
