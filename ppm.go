package graphics

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultMagic is the magic token of binary PPM files.
const DefaultMagic = "P6"

// DefaultMaxColor is the maximum channel value of 8-bit PPM files.
const DefaultMaxColor = 255

// Picture is a pixmap with PPM metadata and a placement anchor.
// The anchor is the top-left corner of the picture in canvas coordinates.
type Picture struct {
	Pixmap
	Magic    string
	MaxColor int
	Anchor   image.Point
}

// NewPicture creates a solid-color picture of the given size.
func NewPicture(fill Color, width, height int) *Picture {
	return &Picture{
		Pixmap:   *NewPixmap(width, height, fill),
		Magic:    DefaultMagic,
		MaxColor: DefaultMaxColor,
	}
}

// Draw pastes the picture into dst at its anchor, clipping silently.
func (pic *Picture) Draw(dst *Pixmap) {
	dst.DrawPixmap(pic.Anchor, &pic.Pixmap)
}

// Move shifts the anchor by the given offset.
func (pic *Picture) Move(dx, dy int) {
	pic.Anchor = pic.Anchor.Add(image.Pt(dx, dy))
}

func readHeaderLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", errors.New("truncated PPM header")
	}
	return strings.TrimSpace(line), nil
}

// DecodePPM reads a PPM stream: three ASCII header lines (magic token,
// "width height", max color value) followed by width*height*3 raw bytes
// in row-major RGB order. One byte of slack after the payload is
// tolerated, since some encoders append a trailing newline.
func DecodePPM(reader io.Reader) (*Picture, error) {
	bufReader := bufio.NewReader(reader)

	magic, err := readHeaderLine(bufReader)
	if err != nil {
		return nil, err
	}

	sizeLine, err := readHeaderLine(bufReader)
	if err != nil {
		return nil, err
	}
	sizeFields := strings.Fields(sizeLine)
	if len(sizeFields) != 2 {
		return nil, fmt.Errorf("invalid PPM size line %q", sizeLine)
	}
	width, err := strconv.Atoi(sizeFields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid PPM width %q", sizeFields[0])
	}
	height, err := strconv.Atoi(sizeFields[1])
	if err != nil {
		return nil, fmt.Errorf("invalid PPM height %q", sizeFields[1])
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid PPM size %dx%d", width, height)
	}

	maxColorLine, err := readHeaderLine(bufReader)
	if err != nil {
		return nil, err
	}
	maxColor, err := strconv.Atoi(maxColorLine)
	if err != nil {
		return nil, fmt.Errorf("invalid PPM max color %q", maxColorLine)
	}

	data, err := io.ReadAll(bufReader)
	if err != nil {
		return nil, err
	}
	payloadSize := width * height * PixelSize
	if len(data) == payloadSize+1 {
		// Some encoders put a newline at the end of the file.
		data = data[:payloadSize]
	} else if len(data) != payloadSize {
		return nil, fmt.Errorf("PPM payload is %d bytes, expected %d", len(data), payloadSize)
	}

	return &Picture{
		Pixmap: Pixmap{
			Data:        data,
			Width:       width,
			Height:      height,
			BytePerLine: width * PixelSize,
		},
		Magic:    magic,
		MaxColor: maxColor,
	}, nil
}

// EncodePPM writes the picture as a PPM stream: the three header lines,
// the raw pixel bytes, and a single trailing newline.
func EncodePPM(writer io.Writer, pic *Picture) error {
	_, err := fmt.Fprintf(writer, "%s\n%d %d\n%d\n", pic.Magic, pic.Width, pic.Height, pic.MaxColor)
	if err != nil {
		return err
	}

	rowSize := pic.Width * PixelSize
	for y := 0; y < pic.Height; y++ {
		rowOffset := y * pic.BytePerLine
		if _, err := writer.Write(pic.Data[rowOffset : rowOffset+rowSize]); err != nil {
			return err
		}
	}

	_, err = writer.Write([]byte{'\n'})
	return err
}

// LoadPicture loads a Picture from a PPM file.
func LoadPicture(fileName string) (*Picture, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodePPM(file)
}

// Save writes the picture to a PPM file.
func (pic *Picture) Save(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := EncodePPM(file, pic); err != nil {
		return err
	}
	return file.Sync()
}
