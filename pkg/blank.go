package pkg

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	BlankScreenWidth  = 800
	BlankScreenHeight = 600

	blankTimeout = 5 * time.Second
)

// BlankWindow clears the frame to a background color every frame and
// quits once a fixed wall-clock timeout has elapsed. Closing the window
// is handled by the game loop itself.
type BlankWindow struct {
	start time.Time
}

func (b *BlankWindow) Update() error {
	if b.start.IsZero() {
		b.start = time.Now()
	}

	if time.Since(b.start) >= blankTimeout {
		return ErrQuit
	}

	return nil
}

func (b *BlankWindow) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{128, 0, 0, 255})
}

func (b *BlankWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	return BlankScreenWidth, BlankScreenHeight
}
