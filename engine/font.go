package engine

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const fontSize = 10

var (
	faceOnce sync.Once
	face     font.Face
)

// Face returns the shared UI font.
func Face() font.Face {
	faceOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		face = truetype.NewFace(f, &truetype.Options{
			Size:    fontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face
}

// MeasureText returns the advance width and line height of s in face.
func MeasureText(f font.Face, s string) (int, int) {
	m := f.Metrics()
	return font.MeasureString(f, s).Ceil(), (m.Ascent + m.Descent).Ceil()
}
