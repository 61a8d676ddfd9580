package graphics

import (
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Show opens an SDL window and plays the frames until the window is
// closed or escape is pressed. A single frame is shown as a still.
func Show(frames []*Pixmap, delay time.Duration) error {
	if len(frames) == 0 {
		return errors.New("Show needs at least one frame")
	}

	paintEngine, err := NewSDLPaintEngine(frames[0].Width, frames[0].Height)
	if err != nil {
		return err
	}

	player, err := NewPlayer(paintEngine, frames, delay)
	if err != nil {
		return err
	}
	if err := player.Start(); err != nil {
		return err
	}
	defer func() {
		player.Stop()
		player.Wait()
	}()

	for {
		event := sdl.WaitEventTimeout(50)
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return nil
			}
		}
	}
}

// Draw composites the scene and shows it in a window.
func Draw(scene Scene, canvas Canvas) error {
	return Show([]*Pixmap{canvas.Composite(scene)}, 0)
}

// DrawSequence composites each frame and plays the result in a window.
func DrawSequence(frames []Scene, canvas Canvas, delay time.Duration) error {
	return Show(canvas.CompositeSequence(frames), delay)
}

// View shows an image or animation file in a window.
func View(path string, delay time.Duration) error {
	frames, err := LoadFrames(path)
	if err != nil {
		return err
	}
	return Show(frames, delay)
}

// SaveScene composites the scene and writes it as a still image.
func SaveScene(path string, scene Scene, canvas Canvas) error {
	return SaveStill(path, canvas.Composite(scene))
}

// SaveSceneSequence composites each frame and writes the result as an
// animated GIF.
func SaveSceneSequence(path string, frames []Scene, canvas Canvas, delay time.Duration, loop bool) error {
	return SaveSequence(path, canvas.CompositeSequence(frames), delay, loop)
}
