package model

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

func TestReset(t *testing.T) {
	p := NewPlayer(0.2, 0.2)
	p.Angle = 3
	p.Reset(SampleMap())

	if p.Position.X != 6 || p.Position.Y != 6 {
		t.Errorf("Position = %v, want (6, 6)", p.Position)
	}
	if p.Angle != 0 {
		t.Errorf("Angle = %v, want 0", p.Angle)
	}
}

func TestRotateWrap(t *testing.T) {
	tests := []struct {
		name string
		turn Turn
	}{
		{"left", TurnLeft},
		{"right", TurnRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0.2, 0.2)
			for i := 0; i < 1000; i++ {
				p.Rotate(tt.turn)
				if p.Angle <= -twoPi || p.Angle > twoPi {
					t.Fatalf("after %d turns Angle = %v, outside (-2π, 2π]", i+1, p.Angle)
				}
			}
		})
	}
}

func TestRotateExactWrapBoundary(t *testing.T) {
	p := NewPlayer(0.2, math.Pi)
	p.Rotate(TurnLeft)
	p.Rotate(TurnLeft)

	if p.Angle != 0 {
		t.Errorf("Angle = %v, want 0 after two half turns left", p.Angle)
	}
}

func TestRotateWrapAtFullTurnSpeed(t *testing.T) {
	for _, turn := range []Turn{TurnLeft, TurnRight} {
		p := NewPlayer(0.2, twoPi)
		for i := 0; i < 10; i++ {
			p.Rotate(turn)
			if p.Angle <= -twoPi || p.Angle > twoPi {
				t.Fatalf("turn %d: Angle = %v, outside (-2π, 2π]", turn, p.Angle)
			}
		}
	}
}

func TestRotateUnknownIsNoop(t *testing.T) {
	p := NewPlayer(0.2, 0.2)
	p.Rotate(Turn(42))

	if p.Angle != 0 || p.Moved {
		t.Errorf("unknown turn changed state: angle=%v moved=%v", p.Angle, p.Moved)
	}
}

func TestMoveIntoEmptyTile(t *testing.T) {
	m := SampleMap()
	p := NewPlayer(0.2, 0.2)
	p.Reset(m)
	p.Angle = 0.7

	before := p.Position
	if !p.Move(StepForward, m) {
		t.Fatal("Move(StepForward) = false, want true")
	}

	wantX := math.Sin(0.7) * 0.2
	wantY := math.Cos(0.7) * 0.2
	if !near(p.Position.X-before.X, wantX) || !near(p.Position.Y-before.Y, wantY) {
		t.Errorf("delta = (%v, %v), want (%v, %v)", p.Position.X-before.X, p.Position.Y-before.Y, wantX, wantY)
	}

	before = p.Position
	p.Move(StepBackward, m)
	if !near(p.Position.X-before.X, -wantX) || !near(p.Position.Y-before.Y, -wantY) {
		t.Errorf("backward delta = (%v, %v), want (%v, %v)", p.Position.X-before.X, p.Position.Y-before.Y, -wantX, -wantY)
	}
}

func TestMoveIntoWallIsRejected(t *testing.T) {
	m := SampleMap()
	p := NewPlayer(0.2, 0.2)
	p.Position.X, p.Position.Y = 6.5, 4.1
	p.Angle = math.Pi // facing -Y, toward the wall row at y=3

	before := p.Position
	if p.Move(StepForward, m) {
		t.Fatal("Move into wall reported success")
	}
	if p.Position != before {
		t.Errorf("Position = %v, want unchanged %v", p.Position, before)
	}
}

func TestMoveBackwardIntoOuterWall(t *testing.T) {
	m := SampleMap()
	p := NewPlayer(0.2, 0.2)
	p.Position.X, p.Position.Y = 6.5, 10.9
	p.Angle = math.Pi // backing up moves toward +Y

	before := p.Position
	if p.Move(StepBackward, m) {
		t.Fatal("backing into the outer wall reported success")
	}
	if p.Position != before {
		t.Errorf("Position = %v, want unchanged %v", p.Position, before)
	}
}

func TestClonePlayer(t *testing.T) {
	p := NewPlayer(0.2, 0.3)
	p.Position.X, p.Position.Y = 2, 3
	p.Angle = 1

	c := Clone(p)
	if *c != *p {
		t.Errorf("Clone = %+v, want %+v", *c, *p)
	}

	c.Position.X = 9
	if p.Position.X != 2 {
		t.Error("mutating the clone changed the source")
	}
}
