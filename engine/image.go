package engine

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Image is a software Surface backed by an RGBA buffer. Writes outside the
// bounds are dropped.
type Image struct {
	rgba *image.RGBA
	pen  color.RGBA
	face font.Face
}

func NewImage(width, height int) *Image {
	return &Image{
		rgba: image.NewRGBA(image.Rect(0, 0, width, height)),
		pen:  color.RGBA{A: 255},
		face: Face(),
	}
}

func (img *Image) Size() (int, int) {
	b := img.rgba.Bounds()
	return b.Dx(), b.Dy()
}

func (img *Image) SetColor(c color.Color) {
	img.pen = color.RGBAModel.Convert(c).(color.RGBA)
}

func (img *Image) Clear() {
	img.Rect(0, 0, img.rgba.Bounds().Dx(), img.rgba.Bounds().Dy())
}

func (img *Image) Pixel(x, y int) {
	img.rgba.SetRGBA(x, y, img.pen)
}

func (img *Image) Rect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.rgba.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.rgba.SetRGBA(px, py, img.pen)
		}
	}
}

func (img *Image) VLine(x, y, h int) {
	img.Rect(x, y, 1, h)
}

func (img *Image) Text(s string, x, y int) {
	d := font.Drawer{
		Dst:  img.rgba,
		Src:  image.NewUniform(img.pen),
		Face: img.face,
		Dot:  fixed.P(x, y+img.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

func (img *Image) Measure(s string) (int, int) {
	return MeasureText(img.face, s)
}

// At returns the colour of a single pixel.
func (img *Image) At(x, y int) color.RGBA {
	return img.rgba.RGBAAt(x, y)
}

// Pix exposes the raw RGBA bytes, row-major.
func (img *Image) Pix() []byte {
	return img.rgba.Pix
}

func (img *Image) Bounds() image.Rectangle {
	return img.rgba.Bounds()
}

// EncodePNG writes the current frame as a PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, img.rgba)
}
