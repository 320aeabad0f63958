package caster

import (
	"image/color"
	"math"

	"tilecaster/engine"
	"tilecaster/model"
)

// Minimap is a fixed-scale top-down overlay of the wall tiles and the player.
type Minimap struct {
	Scale       int
	WallColor   color.RGBA
	PlayerColor color.RGBA
}

func NewMinimap(scale int) Minimap {
	return Minimap{
		Scale:       scale,
		WallColor:   color.RGBA{0x88, 0x88, 0xff, 0xff},
		PlayerColor: color.RGBA{0xff, 0, 0, 0xff},
	}
}

func (m Minimap) Draw(s engine.Surface, tiles *model.TileMap, player model.Player) {
	s.SetColor(m.WallColor)
	for y := 0; y < tiles.Size(); y++ {
		for x := 0; x < tiles.Size(); x++ {
			if tiles.IsWall(x, y) {
				s.Rect(x*m.Scale, y*m.Scale, m.Scale, m.Scale)
			}
		}
	}

	s.SetColor(m.PlayerColor)
	s.Pixel(
		int(math.Floor(player.Position.X*float64(m.Scale))),
		int(math.Floor(player.Position.Y*float64(m.Scale))),
	)
}
