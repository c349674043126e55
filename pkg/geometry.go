package pkg

// Bounds is the minimal axis-aligned rectangle, in grid-cell units,
// containing all of a shape's cells.
type Bounds struct {
	MinX int
	MaxX int
	MinY int
	MaxY int
}

// BoundsOf computes the true extrema over the cell list. The extrema are
// seeded from the first cell rather than zero, so shapes living entirely
// in negative coordinate space keep their real bounds.
func BoundsOf(cells []Cell) Bounds {
	if len(cells) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: cells[0].X,
		MaxX: cells[0].X,
		MinY: cells[0].Y,
		MaxY: cells[0].Y,
	}

	for _, c := range cells[1:] {
		if c.X < b.MinX {
			b.MinX = c.X
		}
		if c.X > b.MaxX {
			b.MaxX = c.X
		}
		if c.Y < b.MinY {
			b.MinY = c.Y
		}
		if c.Y > b.MaxY {
			b.MaxY = c.Y
		}
	}

	return b
}

func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Placement translates a shape so its minimum coordinate maps to the
// origin and centers it within a fixed logical grid. The centering offset
// may be negative when the shape exceeds the grid; no clamping is done,
// so cells can land outside the visible window.
type Placement struct {
	bounds   Bounds
	offsetX  int
	offsetY  int
	cellSize int
}

func NewPlacement(cells []Cell, gridWidth, gridHeight, cellSize int) Placement {
	bounds := BoundsOf(cells)

	return Placement{
		bounds:   bounds,
		offsetX:  (gridWidth - bounds.Width()) / 2,
		offsetY:  (gridHeight - bounds.Height()) / 2,
		cellSize: cellSize,
	}
}

func (p Placement) Bounds() Bounds {
	return p.bounds
}

func (p Placement) Offset() (int, int) {
	return p.offsetX, p.offsetY
}

// CellGrid returns a cell's normalized position in grid units.
func (p Placement) CellGrid(c Cell) (int, int) {
	return c.X - p.bounds.MinX + p.offsetX, c.Y - p.bounds.MinY + p.offsetY
}

// CellPixel returns a cell's top-left corner in pixels.
func (p Placement) CellPixel(c Cell) (int, int) {
	gx, gy := p.CellGrid(c)

	return gx * p.cellSize, gy * p.cellSize
}
