package caster

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"tilecaster/engine"
	"tilecaster/model"
)

// ShadeRange is the grey level span used for distance fog: the shortest walls
// get Dim, full-height walls get Bright.
type ShadeRange struct {
	Dim, Bright uint8
}

// Column is one projected screen column.
type Column struct {
	Top      int
	Height   int
	Distance float64
	Shade    uint8
}

type Projector struct {
	Shading ShadeRange
}

// WallHeight is the on-screen height of a wall at the given perpendicular
// distance, clamped to [0, screenHeight].
func WallHeight(distance float64, screenHeight int) float64 {
	h := float64(screenHeight)
	ceiling := h/2 - h/distance
	floor := h - ceiling
	return geom.Clamp(floor-ceiling, 0, h)
}

// Project converts a hit into a column. The euclidean ray length is scaled by
// the cosine of the ray's offset from the view direction to undo fisheye.
func (p Projector) Project(origin geom.Vector2, playerAngle, rayAngle float64, hit model.TileHit, screenHeight int) Column {
	h := float64(screenHeight)
	distance := math.Hypot(hit.HitPosition.X-origin.X, hit.HitPosition.Y-origin.Y) * math.Cos(rayAngle-playerAngle)

	ceiling := h/2 - h/distance
	wallHeight := WallHeight(distance, screenHeight)

	return Column{
		Top:      int(geom.Clamp(ceiling, 1, h)),
		Height:   int(wallHeight),
		Distance: distance,
		Shade:    p.shade(wallHeight, h),
	}
}

func (p Projector) shade(wallHeight, screenHeight float64) uint8 {
	if screenHeight <= 0 {
		return p.Shading.Dim
	}
	dim, bright := float64(p.Shading.Dim), float64(p.Shading.Bright)
	return uint8(dim + wallHeight*(bright-dim)/screenHeight)
}

// Draw renders col as a single vertical line at screen column x.
func (p Projector) Draw(s engine.Surface, x int, col Column) {
	s.SetColor(color.RGBA{R: col.Shade, G: col.Shade, B: col.Shade, A: 0xff})
	s.VLine(x, col.Top, col.Height)
}
