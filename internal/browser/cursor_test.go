package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_EmptyListIsNoOp(t *testing.T) {
	var c Cursor
	assert.False(t, c.Next(0))
	assert.False(t, c.Previous(0))
	_, ok := c.Index()
	assert.False(t, ok)

	c.Reset(0)
	_, ok = c.Index()
	assert.False(t, ok)
}

func TestCursor_Wraparound(t *testing.T) {
	var c Cursor
	c.Reset(3)

	c.Previous(3)
	i, _ := c.Index()
	assert.Equal(t, 2, i)

	c.Next(3)
	i, _ = c.Index()
	assert.Equal(t, 0, i)
}

func TestCursor_NothingSelectedStartsAtZero(t *testing.T) {
	var c Cursor
	assert.True(t, c.Next(4))
	i, ok := c.Index()
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	var p Cursor
	assert.True(t, p.Previous(4))
	i, _ = p.Index()
	assert.Equal(t, 0, i)
}

func TestCursor_RoundTripAndCycleLaws(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			c := Cursor{index: start, selected: true}

			c.Next(n)
			c.Previous(n)
			i, _ := c.Index()
			assert.Equal(t, start, i, "next then previous, n=%d start=%d", n, start)

			for k := 0; k < n; k++ {
				c.Next(n)
			}
			i, _ = c.Index()
			assert.Equal(t, start, i, "n nexts, n=%d start=%d", n, start)

			for k := 0; k < n; k++ {
				c.Previous(n)
			}
			i, _ = c.Index()
			assert.Equal(t, start, i, "n previouses, n=%d start=%d", n, start)
		}
	}
}

func TestCursor_StaleIndexAfterShrink(t *testing.T) {
	c := Cursor{index: 9, selected: true}
	c.Next(3)
	i, _ := c.Index()
	assert.Equal(t, 0, i)

	c = Cursor{index: 9, selected: true}
	c.Previous(3)
	i, _ = c.Index()
	assert.Equal(t, 2, i)
}
