package graphics

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// The output format of SaveStill and SaveSequence is chosen by the file
// extension, the way the original toolkit did it.

// SaveStill writes a single raster to path. Supported extensions:
// .ppm, .png, .bmp, .gif (single frame).
func SaveStill(path string, raster *Pixmap) error {
	switch imageExt(path) {
	case ".ppm":
		pic := &Picture{Pixmap: *raster, Magic: DefaultMagic, MaxColor: DefaultMaxColor}
		return pic.Save(path)
	case ".png":
		return writeImageFile(path, func(file *os.File) error {
			return png.Encode(file, raster.ToImage())
		})
	case ".bmp":
		return writeImageFile(path, func(file *os.File) error {
			return bmp.Encode(file, raster.ToImage())
		})
	case ".gif":
		return writeImageFile(path, func(file *os.File) error {
			return gif.Encode(file, palettedFrame(raster), nil)
		})
	default:
		return fmt.Errorf("unsupported image extension %q", imageExt(path))
	}
}

// SaveSequence writes frames to path as an animated GIF with the given
// inter-frame delay. With loop set the animation repeats forever,
// otherwise it plays once.
func SaveSequence(path string, frames []*Pixmap, delay time.Duration, loop bool) error {
	if imageExt(path) != ".gif" {
		return fmt.Errorf("animated output requires a .gif extension, got %q", imageExt(path))
	}
	if delay <= 0 {
		delay = DefaultFrameDelay
	}

	loopCount := -1 // play once
	if loop {
		loopCount = 0 // forever
	}
	anim := &gif.GIF{LoopCount: loopCount}
	delayCS := int(delay / (10 * time.Millisecond))
	for _, frame := range frames {
		anim.Image = append(anim.Image, palettedFrame(frame))
		anim.Delay = append(anim.Delay, delayCS)
	}

	return writeImageFile(path, func(file *os.File) error {
		return gif.EncodeAll(file, anim)
	})
}

// LoadFrames reads path back into rasters. A .gif yields every frame,
// everything else a single one.
func LoadFrames(path string) ([]*Pixmap, error) {
	if imageExt(path) == ".ppm" {
		pic, err := LoadPicture(path)
		if err != nil {
			return nil, err
		}
		return []*Pixmap{&pic.Pixmap}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if imageExt(path) == ".gif" {
		anim, err := gif.DecodeAll(file)
		if err != nil {
			return nil, err
		}
		return flattenGIF(anim), nil
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return []*Pixmap{FromImage(img)}, nil
}

func imageExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

func writeImageFile(path string, encode func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := encode(file); err != nil {
		return err
	}
	return file.Sync()
}

// palettedFrame quantizes a raster for GIF output.
func palettedFrame(raster *Pixmap) *image.Paletted {
	src := raster.ToImage()
	dst := image.NewPaletted(src.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(dst, src.Bounds(), src, image.Point{})
	return dst
}

// flattenGIF composes partial GIF frames over their predecessors so
// every returned raster is a full canvas.
func flattenGIF(anim *gif.GIF) []*Pixmap {
	bounds := image.Rect(0, 0, anim.Config.Width, anim.Config.Height)
	if bounds.Empty() && len(anim.Image) > 0 {
		bounds = anim.Image[0].Bounds()
	}

	acc := image.NewRGBA(bounds)
	frames := make([]*Pixmap, 0, len(anim.Image))
	for _, frame := range anim.Image {
		draw.Draw(acc, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, FromImage(acc))
	}
	return frames
}
