package graphics

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenViewer plays composited frames in an Ebiten window. Space
// toggles playback, escape closes the window.
type EbitenViewer struct {
	frames   []*ebiten.Image
	delay    time.Duration
	width    int
	height   int
	frameNum int
	paused   bool
	lastSwap time.Time
}

// NewEbitenViewer creates a viewer for the given frames. A non-positive
// delay falls back to DefaultFrameDelay.
func NewEbitenViewer(frames []*Pixmap, delay time.Duration) (*EbitenViewer, error) {
	if len(frames) == 0 {
		return nil, errors.New("EbitenViewer needs at least one frame")
	}
	if delay <= 0 {
		delay = DefaultFrameDelay
	}

	images := make([]*ebiten.Image, 0, len(frames))
	for _, frame := range frames {
		images = append(images, ebiten.NewImageFromImage(frame.ToImage()))
	}

	return &EbitenViewer{
		frames:   images,
		delay:    delay,
		width:    frames[0].Width,
		height:   frames[0].Height,
		lastSwap: time.Now(),
	}, nil
}

// Update implements ebiten.Game.
func (viewer *EbitenViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		viewer.paused = !viewer.paused
	}
	if !viewer.paused && len(viewer.frames) > 1 && time.Since(viewer.lastSwap) >= viewer.delay {
		viewer.frameNum = (viewer.frameNum + 1) % len(viewer.frames)
		viewer.lastSwap = time.Now()
	}
	return nil
}

// Draw implements ebiten.Game.
func (viewer *EbitenViewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(viewer.frames[viewer.frameNum], nil)
}

// Layout implements ebiten.Game.
func (viewer *EbitenViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewer.width, viewer.height
}

// Run opens the window and blocks until it is closed.
func (viewer *EbitenViewer) Run(title string) error {
	ebiten.SetWindowSize(viewer.width, viewer.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(viewer)
}
