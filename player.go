package graphics

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultFrameDelay is the pause between animation frames.
const DefaultFrameDelay = 100 * time.Millisecond

// Player paints a sequence of rasters onto a paint engine, looping
// forever until stopped. A single frame is shown as a still.
type Player struct {
	paintEngine PaintEngine
	frames      []*Pixmap
	delay       time.Duration

	mutex        sync.Mutex
	isRunning    bool
	nextFrameNum int
	done         chan struct{}
}

// NewPlayer creates a player for the given frames. A non-positive delay
// falls back to DefaultFrameDelay.
func NewPlayer(paintEngine PaintEngine, frames []*Pixmap, delay time.Duration) (*Player, error) {
	if len(frames) == 0 {
		return nil, errors.New("Player needs at least one frame")
	}
	if delay <= 0 {
		delay = DefaultFrameDelay
	}
	return &Player{
		paintEngine: paintEngine,
		frames:      frames,
		delay:       delay,
	}, nil
}

// Start begins playback in a background goroutine.
func (player *Player) Start() error {
	player.mutex.Lock()
	defer player.mutex.Unlock()

	if player.isRunning {
		return errors.New("Player is already running")
	}

	player.isRunning = true
	player.nextFrameNum = 0
	player.done = make(chan struct{})
	go player.doDraw(player.done)
	return nil
}

// Stop ends playback. The playback goroutine exits before the next
// frame would be shown.
func (player *Player) Stop() {
	player.mutex.Lock()
	player.isRunning = false
	player.mutex.Unlock()
}

// Wait blocks until the playback goroutine has exited.
func (player *Player) Wait() {
	player.mutex.Lock()
	done := player.done
	player.mutex.Unlock()

	if done != nil {
		<-done
	}
}

func (player *Player) doDraw(done chan struct{}) {
	defer close(done)

	droppedFrameCount := 0
	showNextFrameTime := time.Now()
	for {
		frame := player.getCurrentFrame()
		if frame == nil {
			return
		}

		showNextFrameTime = showNextFrameTime.Add(player.delay)
		if time.Until(showNextFrameTime) <= 0 && len(player.frames) > 1 {
			droppedFrameCount++
			if droppedFrameCount%100 == 0 {
				logrus.Warnf("Player: the number of dropped frames: %v", droppedFrameCount)
			}
			continue
		}

		if err := player.showFrame(frame); err != nil {
			logrus.Errorf("Player: %v", err)
			player.Stop()
			return
		}
		time.Sleep(time.Until(showNextFrameTime))
	}
}

func (player *Player) getCurrentFrame() *Pixmap {
	player.mutex.Lock()
	defer player.mutex.Unlock()

	if !player.isRunning {
		return nil
	}

	frame := player.frames[player.nextFrameNum]
	player.nextFrameNum = (player.nextFrameNum + 1) % len(player.frames)
	return frame
}

func (player *Player) showFrame(frame *Pixmap) error {
	if err := player.paintEngine.Begin(); err != nil {
		return err
	}
	if err := player.paintEngine.DrawPixmap(image.Point{}, frame); err != nil {
		return err
	}
	return player.paintEngine.End()
}
