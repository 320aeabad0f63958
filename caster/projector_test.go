package caster

import (
	"image"
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"tilecaster/engine"
	"tilecaster/model"
)

func TestWallHeight(t *testing.T) {
	const h = 240

	tests := []struct {
		distance float64
		want     float64
	}{
		{0, h},
		{1, h},
		{2, h},
		{4, 120},
		{5, 96},
		{30, 16},
	}

	for _, tt := range tests {
		if got := WallHeight(tt.distance, h); !near(got, tt.want) {
			t.Errorf("WallHeight(%v) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestWallHeightMonotone(t *testing.T) {
	const h = 240
	prev := WallHeight(0.01, h)

	for d := 0.02; d <= 30; d += 0.01 {
		got := WallHeight(d, h)
		if got > prev {
			t.Fatalf("WallHeight(%v) = %v grew from %v", d, got, prev)
		}
		if got < 0 || got > h {
			t.Fatalf("WallHeight(%v) = %v outside [0, %d]", d, got, h)
		}
		prev = got
	}
}

func TestProject(t *testing.T) {
	p := Projector{Shading: ShadeRange{Dim: 0x11, Bright: 0xff}}
	hit := model.TileHit{
		TilePosition: image.Pt(6, 11),
		HitPosition:  geom.Vector2{X: 6, Y: 11},
		RayLength:    5,
		Side:         model.SideNorth,
	}

	got := p.Project(geom.Vector2{X: 6, Y: 6}, 0, 0, hit, 240)

	want := Column{Top: 72, Height: 96, Distance: 5, Shade: 112}
	if got != want {
		t.Errorf("Project() = %+v, want %+v", got, want)
	}
}

func TestProjectFisheyeCorrection(t *testing.T) {
	p := Projector{Shading: ShadeRange{Dim: 0x11, Bright: 0xff}}
	hit := model.TileHit{HitPosition: geom.Vector2{X: 6, Y: 11}}

	got := p.Project(geom.Vector2{X: 6, Y: 6}, 0.3, 0, hit, 240)

	if want := 5 * math.Cos(0.3); !near(got.Distance, want) {
		t.Errorf("Distance = %v, want %v", got.Distance, want)
	}
}

func TestProjectRanges(t *testing.T) {
	p := Projector{Shading: ShadeRange{Dim: 0x11, Bright: 0xff}}
	origin := geom.Vector2{X: 6, Y: 6}

	for _, d := range []float64{0, 0.25, 1, 2, 3, 7.5, 15, 29.9} {
		hit := model.TileHit{HitPosition: geom.Vector2{X: 6, Y: 6 + d}}
		col := p.Project(origin, 0, 0, hit, 240)

		if col.Height < 0 || col.Height > 240 {
			t.Errorf("d=%v: Height = %d outside [0, 240]", d, col.Height)
		}
		if col.Top < 1 || col.Top > 240 {
			t.Errorf("d=%v: Top = %d outside [1, 240]", d, col.Top)
		}
		if col.Shade < 0x11 || col.Shade > 0xff {
			t.Errorf("d=%v: Shade = %#x outside [0x11, 0xff]", d, col.Shade)
		}
	}

	zero := p.Project(origin, 0, 0, model.TileHit{HitPosition: origin}, 240)
	if zero.Height != 240 || zero.Top != 1 || zero.Shade != 0xff {
		t.Errorf("zero distance: %+v, want full height at top 1 with bright shade", zero)
	}
}

func TestProjectorDraw(t *testing.T) {
	img := engine.NewImage(8, 20)
	p := Projector{}

	p.Draw(img, 3, Column{Top: 5, Height: 10, Shade: 0x40})

	for y := 0; y < 20; y++ {
		got := img.At(3, y)
		inside := y >= 5 && y < 15
		if inside && (got.R != 0x40 || got.G != 0x40 || got.B != 0x40 || got.A != 0xff) {
			t.Errorf("At(3, %d) = %v, want grey 0x40", y, got)
		}
		if !inside && got.A != 0 {
			t.Errorf("At(3, %d) = %v, want untouched", y, got)
		}
	}
	if got := img.At(2, 10); got.A != 0 {
		t.Errorf("At(2, 10) = %v, want untouched", got)
	}
}
