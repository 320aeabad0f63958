package model

import (
	"image"

	"github.com/harbdog/raycaster-go/geom"
)

// Side is the face of a tile a ray entered through.
type Side int

const (
	SideNorth Side = iota
	SideSouth
	SideWest
	SideEast
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideNorth:
		return "north"
	case SideSouth:
		return "south"
	case SideWest:
		return "west"
	case SideEast:
		return "east"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

type TileHit struct {
	TilePosition image.Point
	HitPosition  geom.Vector2
	// RayLength is the euclidean distance from the ray origin to HitPosition.
	RayLength float64
	// SampleX is the normalized position along the hit face, in [0,1).
	SampleX float64
	Side    Side
}

// DDAResult holds the outcome of a single ray cast. Tile is only meaningful
// when HitWall is true.
type DDAResult struct {
	HitWall bool
	Tile    TileHit
}
