package core

// Sprite is an opaque, pre-loaded visual handle. Games pass it back to the
// Surface untouched; only the Surface knows how to draw it.
type Sprite struct {
	Name  string
	Glyph rune
	Color Color
}

// Font describes how text should be drawn. Surfaces that cannot vary the
// typeface (terminals) may ignore it.
type Font struct {
	Family string
	Size   float64 // Pixel size on a raster surface
}

// Surface is the drawing collaborator the game renders into.
// Coordinates are play-area units; the Surface owns any scaling.
type Surface interface {
	// Clear erases the given area.
	Clear(area Box)

	// DrawImage draws img stretched over the rectangle (x, y, w, h).
	DrawImage(img Sprite, x, y, w, h float64)

	// DrawText draws text with its baseline at y, starting at x.
	DrawText(text string, x, y float64, font Font, color Color)
}
