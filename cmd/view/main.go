package main

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/hadokat/graphics"
)

type options struct {
	Delay  int  `short:"d" long:"delay" default:"100" description:"Delay between animation frames in milliseconds"`
	Ebiten bool `long:"ebiten" description:"Use the Ebiten viewer instead of SDL"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Image file, animation file, or directory of .ppm frames"`
	} `positional-args:"yes" required:"yes"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	return opts
}

// loadFrameDir loads every .ppm in the directory, in name order.
func loadFrameDir(dir string) ([]*graphics.Pixmap, error) {
	inputFiles, err := filepath.Glob(filepath.Join(dir, "*.ppm"))
	if err != nil {
		return nil, err
	}
	sort.Strings(inputFiles)

	frames := make([]*graphics.Pixmap, 0, len(inputFiles))
	for _, inputFile := range inputFiles {
		pic, err := graphics.LoadPicture(inputFile)
		if err != nil {
			return nil, err
		}
		frames = append(frames, &pic.Pixmap)
	}
	return frames, nil
}

func loadInput(input string) ([]*graphics.Pixmap, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loadFrameDir(input)
	}
	return graphics.LoadFrames(input)
}

func main() {
	opts := parseCmd()
	delay := time.Duration(opts.Delay) * time.Millisecond

	frames, err := loadInput(opts.Args.Input)
	if err != nil {
		logrus.Fatalf("Failed to load %s: %v", opts.Args.Input, err)
	}
	if len(frames) == 0 {
		logrus.Fatalf("No frames found in %s", opts.Args.Input)
	}
	logrus.Infof("Loaded %d frame(s) from %s", len(frames), opts.Args.Input)

	if opts.Ebiten {
		viewer, err := graphics.NewEbitenViewer(frames, delay)
		if err != nil {
			logrus.Fatal(err)
		}
		if err := viewer.Run(filepath.Base(opts.Args.Input)); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	if err := graphics.Show(frames, delay); err != nil {
		logrus.Fatal(err)
	}
}
