package enumerate

import (
	"testing"

	"github.com/bioflow-go/bioflow-core/internal/engine"
	"github.com/bioflow-go/bioflow-core/internal/score"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioModel builds a uniform substitution/gap model, the shape every
// scenario below needs: a single match/mismatch pair and one gap-open,
// gap-extend pair broadcast across every context and side.
func scenarioModel(mode score.Mode, match, mismatch, gapOpen, gapExtend float64) *score.Model {
	m := score.NewModel()
	m.SetMatch(match)
	m.SetMismatch(mismatch)
	for ctx := score.Internal; ctx <= score.Right; ctx++ {
		for side := score.Insertion; side <= score.Deletion; side++ {
			m.SetGap(ctx, side, score.Open, gapOpen)
			m.SetGap(ctx, side, score.Extend, gapExtend)
		}
	}
	m.SetMode(mode)
	return m
}

// Scenario 1: identical sequences, global linear gaps, one path spanning
// the whole alignment as a single diagonal run.
func TestScenarioGlobalLinearIdenticalSequences(t *testing.T) {
	m := scenarioModel(score.Global, 1, -1, -1, -1)
	a, b := encodeDNA("ACGTA"), encodeDNA("ACGTA")

	tm, sc, err := engine.NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 5.0, sc)

	e := New(tm, false, '+', sc)
	path, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)

	rowsA, rowsB := RunEndpoints(path, 0, 0, '+', len(b))
	assert.Equal(t, []int{0, 5}, rowsA)
	assert.Equal(t, []int{0, 5}, rowsB)

	_, ok, err = e.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

// RunEndpoints' '-' strand remap operates on run boundaries in 0..nB,
// not residue indices in 0..nB-1: a full-length diagonal run over a
// length-5 B must land at (nB, 0), not Positions' residue-index
// reversal (nB-1, -1).
func TestScenarioRunEndpointsReverseStrand(t *testing.T) {
	m := scenarioModel(score.Global, 1, -1, -1, -1)
	a, b := encodeDNA("ACGTA"), encodeDNA("ACGTA")

	tm, sc, err := engine.NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 5.0, sc)

	e := New(tm, false, '+', sc)
	path, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)

	rowsA, rowsB := RunEndpoints(path, 0, 0, '-', len(b))
	assert.Equal(t, []int{0, 5}, rowsA)
	assert.Equal(t, []int{5, 0}, rowsB)
}

// Scenario 2: a single internal mismatch does not break the run into
// separate steps; the whole alignment is still one diagonal run.
func TestScenarioGlobalLinearSingleMismatchRun(t *testing.T) {
	m := scenarioModel(score.Global, 1, -1, -1, -1)
	a, b := encodeDNA("ACT"), encodeDNA("AGT")

	tm, sc, err := engine.NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 1.0, sc)

	e := New(tm, false, '+', sc)
	path, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	for _, s := range path.Steps {
		assert.Equal(t, byte('M'), s.Kind)
	}

	rowsA, rowsB := RunEndpoints(path, 0, 0, '+', len(b))
	assert.Equal(t, []int{0, 3}, rowsA)
	assert.Equal(t, []int{0, 3}, rowsB)
}

// Scenario 3: under Gotoh, AAA against AAAA needs a single 1-residue gap
// (3 matches, 3 - 2 = 1), and that gap can be placed at any of the 4
// positions along the shorter sequence.
func TestScenarioGotohSingleGapFourPlacements(t *testing.T) {
	m := scenarioModel(score.Global, 1, -1, -2, -1)
	a, b := encodeDNA("AAA"), encodeDNA("AAAA")

	tm, sc, err := engine.GotohEngine{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 1.0, sc)

	e := New(tm, false, '+', sc)
	count, overflowed := e.Len()
	assert.False(t, overflowed)
	assert.EqualValues(t, 4, count)

	seen := 0
	for {
		_, ok, err := e.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		seen++
	}
	assert.Equal(t, 4, seen)
}

// Scenario 4: local mode finds the exact substring match embedded in a
// longer sequence, reporting the STARTPOINT before the match rather than
// the sequence origin.
func TestScenarioLocalLinearSubstringMatch(t *testing.T) {
	m := scenarioModel(score.Local, 1, -1, -2, -1)
	a, b := encodeDNA("ACGT"), encodeDNA("GACGTC")

	tm, sc, err := engine.NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 4.0, sc)

	e := New(tm, true, '+', sc)
	path, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)

	startA, startB := e.StartPos()
	assert.Equal(t, 0, startA)
	assert.Equal(t, 1, startB)

	rowsA, rowsB := RunEndpoints(path, startA, startB, '+', len(b))
	assert.Equal(t, []int{0, 4}, rowsA)
	assert.Equal(t, []int{1, 5}, rowsB)
}

// Scenario 5: an exact full-length local match has exactly one
// co-optimal path.
func TestScenarioLocalLinearFullMatch(t *testing.T) {
	m := scenarioModel(score.Local, 1, -1, -2, -1)
	a, b := encodeDNA("ACG"), encodeDNA("ACG")

	tm, sc, err := engine.NWSW{}.Fill(a, b, m, '+')
	require.NoError(t, err)
	assert.Equal(t, 3.0, sc)

	e := New(tm, true, '+', sc)
	count, overflowed := e.Len()
	assert.False(t, overflowed)
	assert.EqualValues(t, 1, count)

	path, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)

	startA, startB := e.StartPos()
	rowsA, rowsB := RunEndpoints(path, startA, startB, '+', len(b))
	assert.Equal(t, []int{0, 3}, rowsA)
	assert.Equal(t, []int{0, 3}, rowsB)
}

// Scenario 6: FOGSAA's single returned path matches Gotoh's global score
// on the same inputs, and the enumerator built over it yields exactly
// that one path.
func TestScenarioFOGSAAAgreesWithGotohGlobal(t *testing.T) {
	gotohModel := scenarioModel(score.Global, 2, -1, -2, -1)
	a, b := encodeDNA("ACGT"), encodeDNA("AGGT")

	_, wantSc, err := engine.GotohEngine{}.Fill(a, b, gotohModel, '+')
	require.NoError(t, err)

	fogsaaModel := scenarioModel(score.FOGSAA, 2, -1, -2, -1)
	eng := &engine.FOGSAAEngine{}
	tm, gotSc, err := eng.Fill(a, b, fogsaaModel, '+')
	require.NoError(t, err)
	assert.InDelta(t, wantSc, gotSc, 1e-9)

	e := New(tm, false, '+', gotSc)
	_, ok, err := e.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = e.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}
