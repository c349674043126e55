package pkg

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	GridWidth  = 30
	GridHeight = 30
	CellSize   = 20

	ScreenWidth  = GridWidth * CellSize
	ScreenHeight = GridHeight * CellSize

	statusBarHeight = 28
)

// ErrQuit signals a clean user-requested exit from a game loop.
var ErrQuit = errors.New("quit")

var mplusBigFont font.Face

// Viewer renders one shape, centered on the logical grid, in a single
// fill color. The shape is never mutated after construction.
type Viewer struct {
	shape     Shape
	placement Placement
	fill      color.RGBA
	keys      []ebiten.Key
	guiDebug  bool
}

// NewViewer prepares the status-bar font, picks the fill color and
// computes the shape's placement once; the draw loop only reads them.
func NewViewer(shape Shape) (*Viewer, error) {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return nil, err
	}

	const dpi = 72

	mplusBigFont, err = opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    16,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	return &Viewer{
		shape:     shape,
		placement: NewPlacement(shape.Cells, GridWidth, GridHeight, CellSize),
		fill:      randomFill(),
	}, nil
}

// randomFill picks one channel value per color in [80,255] to avoid
// near-black fills on the dark background.
func randomFill() color.RGBA {
	return color.RGBA{
		R: uint8(80 + rand.Intn(176)),
		G: uint8(80 + rand.Intn(176)),
		B: uint8(80 + rand.Intn(176)),
		A: 255,
	}
}

func (v *Viewer) Fill() color.RGBA {
	return v.fill
}

func (v *Viewer) Update() error {
	v.keys = inpututil.AppendPressedKeys(v.keys[:0])

	for _, p := range v.keys {
		switch p.String() {
		case "Escape":
			if inpututil.IsKeyJustPressed(p) {
				return ErrQuit
			}
		case "D":
			if inpututil.IsKeyJustPressed(p) {
				v.guiDebug = !v.guiDebug
			}
		case "F":
			if inpututil.IsKeyJustPressed(p) {
				ebiten.SetFullscreen(!ebiten.IsFullscreen())
			}
		}
	}

	return nil
}

func (v *Viewer) drawGrid(screen *ebiten.Image) {
	for gx := 0; gx <= GridWidth; gx++ {
		x := float64(gx * CellSize)
		ebitenutil.DrawLine(screen, x, 0, x, ScreenHeight, color.RGBA{48, 48, 60, 255})
	}

	for gy := 0; gy <= GridHeight; gy++ {
		y := float64(gy * CellSize)
		ebitenutil.DrawLine(screen, 0, y, ScreenWidth, y, color.RGBA{48, 48, 60, 255})
	}
}

func (v *Viewer) drawCells(screen *ebiten.Image) {
	for _, c := range v.shape.Cells {
		px, py := v.placement.CellPixel(c)
		ebitenutil.DrawRect(screen, float64(px), float64(py), CellSize, CellSize, v.fill)
	}
}

func (v *Viewer) drawStatusBar(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, ScreenHeight-statusBarHeight, ScreenWidth, statusBarHeight, color.RGBA{48, 48, 48, 196})

	msg := fmt.Sprintf("%s - %d cells", v.shape.Name, len(v.shape.Cells))
	text.Draw(screen, msg, mplusBigFont, 6, ScreenHeight-8, color.White)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})

	v.drawGrid(screen)
	v.drawCells(screen)
	v.drawStatusBar(screen)

	if v.guiDebug {
		b := v.placement.Bounds()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f\nFPS: %0.2f\nBounds: (%d,%d)-(%d,%d)",
			ebiten.CurrentTPS(), ebiten.CurrentFPS(), b.MinX, b.MinY, b.MaxX, b.MaxY))
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
