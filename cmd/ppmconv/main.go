package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/hadokat/graphics"
)

type options struct {
	InputDir  string `short:"i" long:"input-dir" required:"true" description:"The input directory"`
	OutputDir string `short:"o" long:"output-dir" required:"true" description:"The output directory"`
	Pattern   string `short:"p" long:"pattern" default:"*.png" description:"Glob pattern of images to convert"`
}

func images(opts options) chan string {
	ch := make(chan string, 512)
	go func() {
		defer close(ch)

		walkFn := func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() {
				if isImage, _ := filepath.Match(opts.Pattern, info.Name()); isImage {
					ch <- path
				}
			}
			return err
		}

		if err := filepath.Walk(opts.InputDir, walkFn); err != nil {
			logrus.Fatalf("Failed to walk %s: %v", opts.InputDir, err)
		}
	}()
	return ch
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

func outputName(opts options, imageFile string) string {
	base := filepath.Base(imageFile)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".ppm"
	return filepath.Join(opts.OutputDir, base)
}

func main() {
	opts := parseCmd()

	converted := 0
	for imageFile := range images(opts) {
		pixmap, err := graphics.LoadPixmap(imageFile)
		if err != nil {
			logrus.Fatalf("Failed to load %s: %v", imageFile, err)
		}

		pic := &graphics.Picture{
			Pixmap:   *pixmap,
			Magic:    graphics.DefaultMagic,
			MaxColor: graphics.DefaultMaxColor,
		}
		outputFile := outputName(opts, imageFile)
		if err := pic.Save(outputFile); err != nil {
			logrus.Fatalf("Failed to save %s: %v", outputFile, err)
		}

		logrus.Infof("%s -> %s (%dx%d)", imageFile, outputFile, pixmap.Width, pixmap.Height)
		converted++
	}
	logrus.Infof("Converted %d image(s)", converted)
}
