// Package caster turns a tile map and a player into a column-by-column
// pseudo-3D frame.
package caster

import (
	"image"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"tilecaster/model"
)

// CastRay walks the grid from origin along direction one tile boundary at a
// time and reports the first wall tile entered. The walk gives up once the
// current tile lies maxDistance or more from the origin.
//
// A zero direction component yields an infinite per-axis delta, which keeps
// that axis from ever being stepped; no special casing is needed.
func CastRay(tiles *model.TileMap, origin, direction geom.Vector2, maxDistance float64) model.DDAResult {
	var result model.DDAResult

	if direction.X == 0 && direction.Y == 0 {
		return result
	}

	rayDelta := geom.Vector2{
		X: math.Sqrt(1 + (direction.Y/direction.X)*(direction.Y/direction.X)),
		Y: math.Sqrt(1 + (direction.X/direction.Y)*(direction.X/direction.Y)),
	}

	mapCheck := image.Point{
		X: int(math.Floor(origin.X)),
		Y: int(math.Floor(origin.Y)),
	}

	var step image.Point
	var sideDistance geom.Vector2

	if direction.X < 0 {
		step.X = -1
		sideDistance.X = (origin.X - float64(mapCheck.X)) * rayDelta.X
	} else {
		step.X = 1
		sideDistance.X = (float64(mapCheck.X) + 1 - origin.X) * rayDelta.X
	}

	if direction.Y < 0 {
		step.Y = -1
		sideDistance.Y = (origin.Y - float64(mapCheck.Y)) * rayDelta.Y
	} else {
		step.Y = 1
		sideDistance.Y = (float64(mapCheck.Y) + 1 - origin.Y) * rayDelta.Y
	}

	distance := 0.0
	for !result.HitWall && distance < maxDistance {
		// ties step y
		if sideDistance.X < sideDistance.Y {
			sideDistance.X += rayDelta.X
			mapCheck.X += step.X
		} else {
			sideDistance.Y += rayDelta.Y
			mapCheck.Y += step.Y
		}

		distance = math.Hypot(float64(mapCheck.X)-origin.X, float64(mapCheck.Y)-origin.Y)

		if tiles.IsWall(mapCheck.X, mapCheck.Y) {
			result.HitWall = true
			result.Tile = resolveHit(origin, direction, mapCheck)
		}
	}

	return result
}

// resolveHit works out which face of tile the ray entered and where.
//
// The face is first guessed from where the origin sits relative to the tile.
// When the origin is above or below the tile and also left or right of it, the
// west/east guess is checked against the tile's y-span and replaced by
// north/south if the crossing falls outside it. A north/south guess is never
// re-checked: it is only made when the origin lies inside the tile's x-span,
// and a straight ray from there cannot reach a side face of a tile in the same
// column.
func resolveHit(origin, direction geom.Vector2, tile image.Point) model.TileHit {
	hit := model.TileHit{TilePosition: tile}

	slope := direction.Y / direction.X
	top, bottom := float64(tile.Y), float64(tile.Y+1)
	left, right := float64(tile.X), float64(tile.X+1)

	westEast := func(side model.Side, faceX float64) {
		hit.Side = side
		hit.HitPosition = geom.Vector2{X: faceX, Y: slope*(faceX-origin.X) + origin.Y}
		hit.SampleX = fraction(hit.HitPosition.Y)
	}
	northSouth := func(side model.Side, faceY float64) {
		hit.Side = side
		hit.HitPosition = geom.Vector2{X: (faceY-origin.Y)/slope + origin.X, Y: faceY}
		hit.SampleX = fraction(hit.HitPosition.X)
	}

	switch {
	case origin.Y <= top:
		switch {
		case origin.X <= left:
			westEast(model.SideWest, left)
		case origin.X >= right:
			westEast(model.SideEast, right)
		default:
			northSouth(model.SideNorth, top)
		}
		// a NaN crossing (axis-aligned ray from a tile corner) also fails this test
		if !(hit.HitPosition.Y >= top) {
			northSouth(model.SideNorth, top)
		}
	case origin.Y >= bottom:
		switch {
		case origin.X <= left:
			westEast(model.SideWest, left)
		case origin.X >= right:
			westEast(model.SideEast, right)
		default:
			northSouth(model.SideSouth, bottom)
		}
		if !(hit.HitPosition.Y <= bottom) {
			northSouth(model.SideSouth, bottom)
		}
	default:
		switch {
		case origin.X <= left:
			westEast(model.SideWest, left)
		case origin.X >= right:
			westEast(model.SideEast, right)
		default:
			// origin inside the hit tile; unreachable since the walk steps first
			hit.HitPosition = origin
		}
	}

	hit.RayLength = math.Hypot(hit.HitPosition.X-origin.X, hit.HitPosition.Y-origin.Y)
	return hit
}

func fraction(v float64) float64 {
	return v - math.Floor(v)
}
