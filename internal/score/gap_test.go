package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGapPenaltiesAllEqual(t *testing.T) {
	var g GapPenalties
	assert.True(t, g.AllEqual()) // zero value: every open == every extend == 0

	g.Set(Internal, Insertion, Open, -3)
	g.Set(Internal, Insertion, Extend, -1)
	assert.False(t, g.AllEqual())
}

func TestGapPenaltiesSwapped(t *testing.T) {
	var g GapPenalties
	g.Set(Left, Insertion, Open, -9)
	g.Set(Right, Insertion, Open, -1)
	g.Set(Internal, Insertion, Open, -4)

	s := g.Swapped()
	assert.Equal(t, -1.0, s.Get(Left, Insertion, Open))
	assert.Equal(t, -9.0, s.Get(Right, Insertion, Open))
	assert.Equal(t, -4.0, s.Get(Internal, Insertion, Open))
	// original untouched
	assert.Equal(t, -9.0, g.Get(Left, Insertion, Open))
}

func TestContextFor(t *testing.T) {
	tests := []struct {
		name       string
		i, j       int
		nA, nB     int
		wantResult GapContext
	}{
		{"top-left corner is Left", 0, 0, 10, 10, Left},
		{"first row is Left", 0, 5, 10, 10, Left},
		{"first column is Left", 5, 0, 10, 10, Left},
		{"bottom-right corner is Right", 10, 10, 10, 10, Right},
		{"last row is Right", 10, 5, 10, 10, Right},
		{"interior cell is Internal", 5, 5, 10, 10, Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantResult, ContextFor(tt.i, tt.j, tt.nA, tt.nB))
		})
	}
}

func TestAffineCost(t *testing.T) {
	var g GapPenalties
	g.Set(Internal, Deletion, Open, -5)
	g.Set(Internal, Deletion, Extend, -1)

	assert.Equal(t, 0.0, g.AffineCost(Internal, Deletion, 0))
	assert.Equal(t, -5.0, g.AffineCost(Internal, Deletion, 1))
	assert.Equal(t, -7.0, g.AffineCost(Internal, Deletion, 3))
}

func TestLeastCostlyExtend(t *testing.T) {
	var g GapPenalties
	g.Set(Internal, Insertion, Extend, -5)
	g.Set(Left, Insertion, Extend, -1)
	g.Set(Right, Deletion, Extend, -9)

	// The three extend slots left unset hold 0, the largest of the six.
	assert.Equal(t, 0.0, g.LeastCostlyExtend())
}
