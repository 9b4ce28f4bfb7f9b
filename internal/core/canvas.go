package core

// Canvas implements Surface on top of a Screen, mapping a fixed logical play
// area onto however many terminal cells the Screen currently has.
type Canvas struct {
	screen *Screen
	areaW  float64
	areaH  float64
}

// NewCanvas creates a canvas for a play area of areaW × areaH units.
func NewCanvas(screen *Screen, areaW, areaH float64) *Canvas {
	return &Canvas{
		screen: screen,
		areaW:  areaW,
		areaH:  areaH,
	}
}

// Screen returns the backing screen.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// toCell maps a play-area point to fractional cell coordinates.
func (c *Canvas) toCell(x, y float64) (cx, cy float64) {
	if c.areaW <= 0 || c.areaH <= 0 {
		return 0, 0
	}
	return x * float64(c.screen.Width()) / c.areaW, y * float64(c.screen.Height()) / c.areaH
}

// cellRect converts a play-area rectangle to a half-open cell range.
// Any rectangle with positive size covers at least one cell.
func (c *Canvas) cellRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	fx0, fy0 := c.toCell(x, y)
	fx1, fy1 := c.toCell(x+w, y+h)
	x0, y0 = floorInt(fx0), floorInt(fy0)
	x1, y1 = ceilInt(fx1), ceilInt(fy1)
	if w > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if h > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Clear blanks the cells covered by area.
func (c *Canvas) Clear(area Box) {
	x0, y0, x1, y1 := c.cellRect(area.X, area.Y, area.W, area.H)
	c.screen.FillRect(x0, y0, x1, y1, blankCell)
}

// DrawImage fills the covered cells with the sprite's glyph.
func (c *Canvas) DrawImage(img Sprite, x, y, w, h float64) {
	x0, y0, x1, y1 := c.cellRect(x, y, w, h)
	c.screen.FillRect(x0, y0, x1, y1, Cell{Rune: img.Glyph, Color: img.Color})
}

// DrawText writes text on the row containing the baseline y.
// Terminal cells have one size, so font is ignored.
func (c *Canvas) DrawText(text string, x, y float64, _ Font, color Color) {
	cx, cy := c.toCell(x, y)
	row := Clamp(floorInt(cy)-1, 0, max(c.screen.Height()-1, 0))
	c.screen.DrawText(floorInt(cx), row, text, color)
}

var _ Surface = (*Canvas)(nil)
