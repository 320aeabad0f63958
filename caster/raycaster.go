package caster

import (
	"go.uber.org/zap"

	"tilecaster/config"
	"tilecaster/engine"
	"tilecaster/model"
)

// Raycaster is the frame controller: each tick it applies input to the player
// and then draws one ray-cast column per screen pixel column.
type Raycaster struct {
	tiles     *model.TileMap
	player    *model.Player
	fov       float64
	depth     float64
	projector Projector
	minimap   Minimap
	showMap   bool
	log       *zap.Logger
}

// ColumnResult pairs a column's ray cast with its projection.
type ColumnResult struct {
	X      int
	Angle  float64
	Result model.DDAResult
	Column Column
}

func NewRaycaster(tiles *model.TileMap, cfg config.RaycasterConfig, log *zap.Logger) *Raycaster {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Raycaster{
		tiles:  tiles,
		player: model.NewPlayer(cfg.MovementSpeed, cfg.RotationSpeed),
		fov:    cfg.FOV(),
		depth:  cfg.MaxDistance,
		projector: Projector{
			Shading: ShadeRange{Dim: uint8(cfg.ShadeMin), Bright: uint8(cfg.ShadeMax)},
		},
		minimap: NewMinimap(cfg.MinimapScale),
		showMap: cfg.ShowMinimap,
		log:     log,
	}
	r.player.Reset(tiles)

	return r
}

// Init puts the player back at the centre of the map.
func (r *Raycaster) Init() {
	r.player.Reset(r.tiles)
	r.log.Info("raycaster started",
		zap.Float64("x", r.player.Position.X),
		zap.Float64("y", r.player.Position.Y),
		zap.Float64("fov", r.fov),
		zap.Float64("max_distance", r.depth),
	)
}

func (r *Raycaster) Update(tick uint32, in engine.Input) {
	if in.Held(engine.ButtonLeft) {
		r.player.Rotate(model.TurnLeft)
	}
	if in.Held(engine.ButtonRight) {
		r.player.Rotate(model.TurnRight)
	}
	if in.Held(engine.ButtonUp) && !r.player.Move(model.StepForward, r.tiles) {
		r.log.Debug("move blocked", zap.Uint32("tick", tick), zap.String("step", "forward"))
	}
	if in.Held(engine.ButtonDown) && !r.player.Move(model.StepBackward, r.tiles) {
		r.log.Debug("move blocked", zap.Uint32("tick", tick), zap.String("step", "backward"))
	}

	if r.player.Moved {
		r.player.Moved = false
		r.log.Debug("player",
			zap.Uint32("tick", tick),
			zap.Float64("x", r.player.Position.X),
			zap.Float64("y", r.player.Position.Y),
			zap.Float64("angle", r.player.Angle),
		)
	}
}

func (r *Raycaster) Draw(tick uint32, s engine.Surface) {
	width, height := s.Size()

	for x := 0; x < width; x++ {
		angle := r.RayAngle(x, width)
		result := r.cast(angle)
		if !result.HitWall {
			continue
		}
		col := r.projector.Project(r.player.Position, r.player.Angle, angle, result.Tile, height)
		r.projector.Draw(s, x, col)
	}

	if r.showMap {
		r.minimap.Draw(s, r.tiles, *r.player)
	}
}

// RayAngle spreads the field of view evenly across width columns.
func (r *Raycaster) RayAngle(x, width int) float64 {
	return (r.player.Angle - r.fov/2) + (float64(x)/float64(width))*r.fov
}

// CastColumn casts the ray for screen column x without drawing anything.
func (r *Raycaster) CastColumn(x, width int) model.DDAResult {
	return r.cast(r.RayAngle(x, width))
}

// Columns casts and projects every column of a width x height frame.
func (r *Raycaster) Columns(width, height int) []ColumnResult {
	out := make([]ColumnResult, width)
	for x := range out {
		angle := r.RayAngle(x, width)
		res := ColumnResult{X: x, Angle: angle, Result: r.cast(angle)}
		if res.Result.HitWall {
			res.Column = r.projector.Project(r.player.Position, r.player.Angle, angle, res.Result.Tile, height)
		}
		out[x] = res
	}
	return out
}

// Player returns a copy of the current player state.
func (r *Raycaster) Player() model.Player {
	return *model.Clone(r.player)
}

func (r *Raycaster) Tiles() *model.TileMap {
	return r.tiles
}

func (r *Raycaster) cast(angle float64) model.DDAResult {
	dir := (&model.Player{Angle: angle}).Direction()
	return CastRay(r.tiles, r.player.Position, dir, r.depth)
}
