package graphics

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveStillRoundTrip(t *testing.T) {
	raster := NewPixmap(6, 4, Color{R: 50, G: 100, B: 150})
	raster.Set(2, 1, Color{R: 250})

	// Lossless still formats must reproduce the raster exactly.
	for _, ext := range []string{".ppm", ".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "still"+ext)

			if err := SaveStill(path, raster); err != nil {
				t.Fatalf("SaveStill: %v", err)
			}
			frames, err := LoadFrames(path)
			if err != nil {
				t.Fatalf("LoadFrames: %v", err)
			}
			if len(frames) != 1 {
				t.Fatalf("got %d frames, want 1", len(frames))
			}
			if !bytes.Equal(frames[0].Data, raster.Data) {
				t.Error("pixel data differs after round trip")
			}
		})
	}
}

func TestSaveStillUnsupportedExtension(t *testing.T) {
	raster := NewPixmap(2, 2, White)
	if err := SaveStill(filepath.Join(t.TempDir(), "x.tiff"), raster); err == nil {
		t.Error("SaveStill accepted an unsupported extension")
	}
}

func TestSaveSequenceGIF(t *testing.T) {
	frames := []*Pixmap{
		NewPixmap(10, 8, Color{R: 255}),
		NewPixmap(10, 8, Color{G: 255}),
		NewPixmap(10, 8, Color{B: 255}),
	}
	path := filepath.Join(t.TempDir(), "anim.gif")

	if err := SaveSequence(path, frames, 50*time.Millisecond, true); err != nil {
		t.Fatalf("SaveSequence: %v", err)
	}

	loaded, err := LoadFrames(path)
	if err != nil {
		t.Fatalf("LoadFrames: %v", err)
	}
	if len(loaded) != len(frames) {
		t.Fatalf("got %d frames, want %d", len(loaded), len(frames))
	}
	for i, frame := range loaded {
		if frame.Width != 10 || frame.Height != 8 {
			t.Errorf("frame %d size = %dx%d, want 10x8", i, frame.Width, frame.Height)
		}
	}
}

func TestSaveSequenceRequiresGIF(t *testing.T) {
	frames := []*Pixmap{NewPixmap(2, 2, White)}
	if err := SaveSequence(filepath.Join(t.TempDir(), "anim.png"), frames, 0, false); err == nil {
		t.Error("SaveSequence accepted a non-GIF extension")
	}
}

func TestSaveSceneDispatch(t *testing.T) {
	canvas := Canvas{Width: 16, Height: 16, Background: Color{B: 200}}
	path := filepath.Join(t.TempDir(), "scene.ppm")

	if err := SaveScene(path, nil, canvas); err != nil {
		t.Fatalf("SaveScene: %v", err)
	}
	pic, err := LoadPicture(path)
	if err != nil {
		t.Fatalf("LoadPicture: %v", err)
	}
	if got := pic.At(8, 8); got != canvas.Background {
		t.Errorf("pixel (8,8) = %v, want background", got)
	}
}
