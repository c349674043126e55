package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFill_AvoidsNearBlack(t *testing.T) {
	for i := 0; i < 200; i++ {
		c := randomFill()

		assert.GreaterOrEqual(t, c.R, uint8(80))
		assert.GreaterOrEqual(t, c.G, uint8(80))
		assert.GreaterOrEqual(t, c.B, uint8(80))
		assert.Equal(t, uint8(255), c.A)
	}
}

func TestNewViewer_CentersShape(t *testing.T) {
	shape := Shape{
		Name:  "dot",
		Size:  Size{W: 1, H: 1},
		Cells: []Cell{{X: 0, Y: 0}},
	}

	v, err := NewViewer(shape)
	require.NoError(t, err)

	px, py := v.placement.CellPixel(shape.Cells[0])
	assert.Equal(t, 280, px)
	assert.Equal(t, 280, py)

	w, h := v.Layout(1024, 768)
	assert.Equal(t, ScreenWidth, w)
	assert.Equal(t, ScreenHeight, h)
}

func TestBlankWindow_QuitsAfterTimeout(t *testing.T) {
	b := &BlankWindow{}

	require.NoError(t, b.Update())

	b.start = time.Now().Add(-blankTimeout - time.Second)
	assert.ErrorIs(t, b.Update(), ErrQuit)
}

func TestBlankWindow_KeepsRunningBeforeTimeout(t *testing.T) {
	b := &BlankWindow{start: time.Now()}

	assert.NoError(t, b.Update())

	w, h := b.Layout(0, 0)
	assert.Equal(t, BlankScreenWidth, w)
	assert.Equal(t, BlankScreenHeight, h)
}
