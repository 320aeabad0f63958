// Package engine defines what the renderer needs from its host: a drawing
// surface, a screen size and button input.
package engine

import "image/color"

// Surface is a pen-based drawing target. Every primitive draws with the colour
// passed to the most recent SetColor call.
type Surface interface {
	// Size reports the screen width and height in pixels.
	Size() (int, int)
	SetColor(c color.Color)
	Clear()
	Pixel(x, y int)
	Rect(x, y, w, h int)
	// VLine draws a one pixel wide vertical segment of length h starting at y.
	VLine(x, y, h int)
	Text(s string, x, y int)
	Measure(s string) (int, int)
}
