package engine

import (
	"testing"

	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFOGSAAAgreesWithGotohGlobal(t *testing.T) {
	m := affineModel(score.Global)
	a, b := encodeDNA("ATGCATGC"), encodeDNA("ATGATGC")

	_, wantSc, err := GotohEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)

	eng := &FOGSAAEngine{}
	tm, gotSc, err := eng.Fill(a, b, m, '+')
	require.NoError(t, err)

	assert.InDelta(t, wantSc, gotSc, 1e-9)
	assert.False(t, tm.NoStart)
	assert.Empty(t, eng.Warnings)
}

func TestFOGSAAWarnsOnInadmissibleBounds(t *testing.T) {
	m := score.NewModel()
	m.SetMatch(1)
	m.SetMismatch(1) // mismatch not below match: flagged
	m.SetMode(score.FOGSAA)

	eng := &FOGSAAEngine{}
	_, _, err := eng.Fill(encodeDNA("AT"), encodeDNA("AT"), m, '+')
	require.NoError(t, err)
	assert.NotEmpty(t, eng.Warnings)
}

func TestFOGSAAIdenticalSequences(t *testing.T) {
	m := affineModel(score.Global)
	a, b := encodeDNA("ATGC"), encodeDNA("ATGC")

	eng := &FOGSAAEngine{}
	_, sc, err := eng.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 8.0, sc)
}
