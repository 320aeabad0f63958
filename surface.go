package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tilecaster/engine"
)

// ebitenSurface draws onto the current ebiten frame.
type ebitenSurface struct {
	dst  *ebiten.Image
	pen  color.RGBA
	face *text.GoXFace
}

func newEbitenSurface() *ebitenSurface {
	return &ebitenSurface{
		pen:  color.RGBA{A: 0xff},
		face: text.NewGoXFace(engine.Face()),
	}
}

func (s *ebitenSurface) bind(screen *ebiten.Image) {
	s.dst = screen
}

func (s *ebitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ebitenSurface) SetColor(c color.Color) {
	s.pen = color.RGBAModel.Convert(c).(color.RGBA)
}

func (s *ebitenSurface) Clear() {
	s.dst.Fill(s.pen)
}

func (s *ebitenSurface) Pixel(x, y int) {
	s.dst.Set(x, y, s.pen)
}

func (s *ebitenSurface) Rect(x, y, w, h int) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.pen, false)
}

func (s *ebitenSurface) VLine(x, y, h int) {
	s.Rect(x, y, 1, h)
}

func (s *ebitenSurface) Text(str string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(s.pen)
	text.Draw(s.dst, str, s.face, op)
}

func (s *ebitenSurface) Measure(str string) (int, int) {
	m := s.face.Metrics()
	w, h := text.Measure(str, s.face, m.HAscent+m.HDescent+m.HLineGap)
	return int(math.Ceil(w)), int(math.Ceil(h))
}
