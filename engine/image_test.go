package engine

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestImageRectClips(t *testing.T) {
	img := NewImage(8, 8)
	img.SetColor(color.RGBA{R: 255, A: 255})
	img.Rect(6, 6, 10, 10)

	if got := img.At(7, 7); got.R != 255 {
		t.Errorf("At(7, 7) = %v, want red", got)
	}
	if got := img.At(5, 5); got.R != 0 {
		t.Errorf("At(5, 5) = %v, want untouched", got)
	}
}

func TestImageVLine(t *testing.T) {
	img := NewImage(4, 10)
	img.SetColor(color.White)
	img.VLine(2, 3, 4)

	for y := 0; y < 10; y++ {
		lit := img.At(2, y).R == 255
		want := y >= 3 && y < 7
		if lit != want {
			t.Errorf("pixel (2, %d) lit = %v, want %v", y, lit, want)
		}
	}
	if img.At(1, 4).R != 0 || img.At(3, 4).R != 0 {
		t.Error("VLine drew outside its column")
	}
}

func TestImagePixelOutOfBounds(t *testing.T) {
	img := NewImage(2, 2)
	img.SetColor(color.White)
	img.Pixel(-1, 5)
	img.Pixel(1, 1)

	if img.At(1, 1).R != 255 {
		t.Error("Pixel(1, 1) not drawn")
	}
}

func TestImageClear(t *testing.T) {
	img := NewImage(3, 3)
	img.SetColor(color.RGBA{G: 200, A: 255})
	img.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if img.At(x, y).G != 200 {
				t.Fatalf("At(%d, %d) = %v after Clear", x, y, img.At(x, y))
			}
		}
	}
}

func TestImageText(t *testing.T) {
	img := NewImage(64, 20)
	img.SetColor(color.White)
	img.Text("Hi", 0, 0)

	w, h := img.Measure("Hi")
	if w <= 0 || h <= 0 {
		t.Fatalf("Measure = (%d, %d), want positive", w, h)
	}

	lit := 0
	for _, b := range img.Pix() {
		if b != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Text drew nothing")
	}
}

func TestImageEncodePNG(t *testing.T) {
	img := NewImage(5, 4)
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
