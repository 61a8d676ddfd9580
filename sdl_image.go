package graphics

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	img.Init(img.INIT_JPG | img.INIT_PNG)
}

// LoadPixmap loads any SDL_image-supported file into an RGB pixmap.
func LoadPixmap(fileName string) (*Pixmap, error) {
	image, err := img.Load(fileName)
	if err != nil {
		return nil, err
	}
	defer image.Free()

	convertedImage, err := image.ConvertFormat(sdl.PIXELFORMAT_RGB24, 0)
	if err != nil {
		return nil, err
	}
	defer convertedImage.Free()

	pixmap := Pixmap{
		Data:        make([]byte, len(convertedImage.Pixels())),
		Width:       int(convertedImage.W),
		Height:      int(convertedImage.H),
		BytePerLine: int(convertedImage.Pitch),
	}
	copy(pixmap.Data, convertedImage.Pixels())
	return &pixmap, nil
}
