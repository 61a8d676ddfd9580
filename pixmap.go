package graphics

import (
	"image"
	"image/color"
)

// PixelSize is the number of bytes per pixel (interleaved RGB).
const PixelSize = 3

// Pixmap is a rectangular block of RGB pixels.
type Pixmap struct {
	Data        []byte
	Width       int
	Height      int
	BytePerLine int
}

// NewPixmap creates a pixmap of the given size filled with a solid color.
func NewPixmap(width, height int, fill Color) *Pixmap {
	pixmap := &Pixmap{
		Data:        make([]byte, width*height*PixelSize),
		Width:       width,
		Height:      height,
		BytePerLine: width * PixelSize,
	}
	for i := 0; i < len(pixmap.Data); i += PixelSize {
		pixmap.Data[i] = fill.R
		pixmap.Data[i+1] = fill.G
		pixmap.Data[i+2] = fill.B
	}
	return pixmap
}

// At returns the color of the pixel at (x, y).
// Out-of-range coordinates return the zero Color.
func (pixmap *Pixmap) At(x, y int) Color {
	if x < 0 || x >= pixmap.Width || y < 0 || y >= pixmap.Height {
		return Color{}
	}
	i := y*pixmap.BytePerLine + x*PixelSize
	return Color{pixmap.Data[i], pixmap.Data[i+1], pixmap.Data[i+2]}
}

// Set sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (pixmap *Pixmap) Set(x, y int, c Color) {
	if x < 0 || x >= pixmap.Width || y < 0 || y >= pixmap.Height {
		return
	}
	i := y*pixmap.BytePerLine + x*PixelSize
	pixmap.Data[i] = c.R
	pixmap.Data[i+1] = c.G
	pixmap.Data[i+2] = c.B
}

// Bounds returns the pixmap rectangle anchored at the origin.
func (pixmap *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, pixmap.Width, pixmap.Height)
}

// DrawPixmap copies src into the pixmap with its top-left corner at top.
// Any part of src that falls outside the pixmap is silently clipped.
func (pixmap *Pixmap) DrawPixmap(top image.Point, src *Pixmap) {
	srcRect := image.Rectangle{Min: top, Max: top.Add(image.Pt(src.Width, src.Height))}
	r := pixmap.Bounds().Intersect(srcRect)
	if r.Empty() {
		return
	}

	copySize := r.Dx() * PixelSize
	srcOffset := (r.Min.X - top.X) * PixelSize
	dstOffset := r.Min.X * PixelSize
	for i := 0; i < r.Dy(); i++ {
		srcRow := src.Data[(r.Min.Y-top.Y+i)*src.BytePerLine+srcOffset:]
		dstRow := pixmap.Data[(r.Min.Y+i)*pixmap.BytePerLine+dstOffset:]
		copy(dstRow[:copySize], srcRow[:copySize])
	}
}

// Clone returns a deep copy of the pixmap.
func (pixmap *Pixmap) Clone() *Pixmap {
	data := make([]byte, len(pixmap.Data))
	copy(data, pixmap.Data)
	return &Pixmap{
		Data:        data,
		Width:       pixmap.Width,
		Height:      pixmap.Height,
		BytePerLine: pixmap.BytePerLine,
	}
}

// ToImage converts the pixmap to an image.RGBA.
func (pixmap *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(pixmap.Bounds())
	for y := 0; y < pixmap.Height; y++ {
		srcRow := pixmap.Data[y*pixmap.BytePerLine:]
		dstRow := img.Pix[y*img.Stride:]
		for x := 0; x < pixmap.Width; x++ {
			dstRow[x*4] = srcRow[x*PixelSize]
			dstRow[x*4+1] = srcRow[x*PixelSize+1]
			dstRow[x*4+2] = srcRow[x*PixelSize+2]
			dstRow[x*4+3] = 0xFF
		}
	}
	return img
}

// FromImage converts any image.Image to a pixmap, discarding alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pixmap := NewPixmap(bounds.Dx(), bounds.Dy(), Color{})
	for y := 0; y < pixmap.Height; y++ {
		for x := 0; x < pixmap.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pixmap.Set(x, y, Color{c.R, c.G, c.B})
		}
	}
	return pixmap
}
