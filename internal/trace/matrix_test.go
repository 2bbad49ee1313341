package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatrix(t *testing.T) {
	m := New(3, 4)
	assert.Equal(t, 3, m.NA)
	assert.Equal(t, 4, m.NB)
	assert.Len(t, m.Bits, 4)
	assert.Len(t, m.Bits[0], 5)
	assert.False(t, m.NoStart)
	assert.Nil(t, m.Gotoh)
	assert.Nil(t, m.WSB)
}

func TestGapSpanEmpty(t *testing.T) {
	assert.True(t, GapSpan{}.Empty())
	assert.False(t, GapSpan{Begin: 0, End: 2}.Empty())
}

func TestWSBOverlayAppendAndList(t *testing.T) {
	o := NewWSBOverlay(2, 2)

	span := o.Append(1, []int32{2, 3, 5})
	assert.False(t, span.Empty())
	assert.Equal(t, []int32{2, 3, 5}, o.List(1, span))

	empty := o.Append(1, nil)
	assert.True(t, empty.Empty())
	assert.Nil(t, o.List(1, empty))
}

func TestWSBOverlayAppendIsRowLocal(t *testing.T) {
	o := NewWSBOverlay(2, 2)
	spanA := o.Append(0, []int32{1})
	spanB := o.Append(1, []int32{9})

	assert.Equal(t, []int32{1}, o.List(0, spanA))
	assert.Equal(t, []int32{9}, o.List(1, spanB))
}

func TestWSBOverlayReleaseRow(t *testing.T) {
	o := NewWSBOverlay(2, 2)
	span := o.Append(1, []int32{4})
	o.MIx[1][0] = span

	o.ReleaseRow(1)

	assert.Nil(t, o.rows[1])
	assert.Equal(t, GapSpan{}, o.MIx[1][0])
}

func TestGotohOverlayShape(t *testing.T) {
	o := NewGotohOverlay(2, 3)
	assert.Len(t, o.IxFrom, 3)
	assert.Len(t, o.IxFrom[0], 4)
	assert.Len(t, o.IyFrom, 3)
	assert.Len(t, o.IyFrom[0], 4)
}
