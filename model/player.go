package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

type Step int

const (
	StepForward Step = iota
	StepBackward
)

const twoPi = 2 * math.Pi

// Player is the viewer's kinematic state in map-grid units.
type Player struct {
	Position      geom.Vector2
	Angle         float64
	MovementSpeed float64
	RotationSpeed float64
	Moved         bool
}

func NewPlayer(movementSpeed, rotationSpeed float64) *Player {
	return &Player{
		MovementSpeed: movementSpeed,
		RotationSpeed: rotationSpeed,
	}
}

// Reset puts the player in the middle of the map facing angle zero.
func (p *Player) Reset(tiles *TileMap) {
	center := float64(tiles.Size() / 2)
	p.Position = geom.Vector2{X: center, Y: center}
	p.Angle = 0
	p.Moved = true
}

// Direction is the unit facing vector. Angle zero looks down +Y.
func (p *Player) Direction() geom.Vector2 {
	return geom.Vector2{X: math.Sin(p.Angle), Y: math.Cos(p.Angle)}
}

// Rotate turns the player by its rotation speed and keeps the angle in (-2π, 2π].
func (p *Player) Rotate(dir Turn) {
	switch dir {
	case TurnLeft:
		p.Angle -= p.RotationSpeed
		if p.Angle <= -twoPi {
			p.Angle += twoPi
		}
	case TurnRight:
		p.Angle += p.RotationSpeed
		if p.Angle > twoPi {
			p.Angle -= twoPi
		}
	default:
		return
	}
	p.Moved = true
}

// Move steps the player along its facing vector. A step that ends inside a wall
// tile is dropped entirely; there is no sliding.
func (p *Player) Move(dir Step, tiles *TileMap) bool {
	var sign float64
	switch dir {
	case StepForward:
		sign = 1
	case StepBackward:
		sign = -1
	default:
		return false
	}

	prev := p.Position
	d := p.Direction()
	p.Position.X += d.X * p.MovementSpeed * sign
	p.Position.Y += d.Y * p.MovementSpeed * sign

	if tiles.IsWall(int(math.Floor(p.Position.X)), int(math.Floor(p.Position.Y))) {
		p.Position = prev
		return false
	}

	p.Moved = true
	return true
}
