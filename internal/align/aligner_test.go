package align

import (
	"testing"

	"github.com/bioflow-go/bioflow-core/internal/enumerate"
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dnaMapping() *Mapping {
	return NewMapping().SetRange("ACGT")
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

func TestAlignerScoreIdentical(t *testing.T) {
	al := New(linearModel(score.Global), dnaMapping())
	sc, err := al.Score("ATGC", "ATGC", '+')
	require.NoError(t, err)
	assert.Equal(t, 8.0, sc)
}

func TestAlignerAlignReturnsWalkableEnumerator(t *testing.T) {
	al := New(linearModel(score.Global), dnaMapping())
	enum, sc, err := al.Align("ATGC", "ATGC", '+')
	require.NoError(t, err)
	assert.Equal(t, 8.0, sc)

	path, ok, err := enum.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sc, path.Score)

	startA, startB := enum.StartPos()
	pairs := enumerate.Positions(path, startA, startB, '+', 4)
	assert.Len(t, pairs, 4)
}

func TestAlignerRejectsEmptySequence(t *testing.T) {
	al := New(linearModel(score.Global), dnaMapping())
	_, err := al.Score("", "ATGC", '+')
	require.Error(t, err)
}

func TestAlignerRejectsUnmappedSymbol(t *testing.T) {
	al := New(linearModel(score.Global), dnaMapping())
	_, err := al.Score("ATGX", "ATGC", '+')
	require.Error(t, err)
}

func TestAlignerSelectsFOGSAAAndSurfacesWarnings(t *testing.T) {
	m := score.NewModel()
	m.SetMatch(1)
	m.SetMismatch(1) // inadmissible: triggers a warning
	m.SetMode(score.FOGSAA)
	al := New(m, dnaMapping())

	_, _, err := al.Align("ATGC", "ATGC", '+')
	require.NoError(t, err)
	assert.NotEmpty(t, al.Warnings)
}

func TestAlignerSelectsWSBForGapCallback(t *testing.T) {
	m := score.NewModel()
	m.SetMatch(2)
	m.SetMismatch(-1)
	m.SetGapFuncs(func(i, k int) float64 { return -2 * float64(k) }, func(i, k int) float64 { return -2 * float64(k) })
	al := New(m, dnaMapping())

	sc, err := al.Score("ATGCATGC", "ATGC", '+')
	require.NoError(t, err)
	assert.Equal(t, 0.0, sc) // 4 matches (8) minus a 4-length gap (-8)
}
