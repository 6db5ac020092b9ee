package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openfsd/fsdprep/features"
)

var (
	mfcc   = flag.Bool("mfcc", false, "compute MFCC instead of log-mel")
	frames = flag.Int("frames", 0, "clip or zero-pad the time axis to this many frames (0 = keep)")
	out    = flag.String("out", "", "output directory (default: next to the input file)")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Usage: tofeat [-mfcc] [-frames N] [-out dir] <audio_file>")
		os.Exit(1)
	}
	input := flag.Arg(0)

	e := features.NewExtractor()

	var buf []float64
	var err error
	if strings.HasSuffix(input, ".flac") {
		buf, _, err = e.LoadFlacMono(input)
	} else {
		buf, _, err = e.LoadWavMono(input)
	}
	if err != nil {
		fmt.Printf("Error loading audio: %v\n", err)
		os.Exit(1)
	}

	var mat [][]float64
	if *mfcc {
		mat, err = e.MFCC(buf)
	} else {
		mat, err = e.LogMel(buf)
	}
	if err != nil {
		fmt.Printf("Error extracting features: %v\n", err)
		os.Exit(1)
	}
	mat = features.FrameFeature(mat, *frames)

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := *out
	if dir == "" {
		dir = filepath.Dir(input)
	}
	if err := features.SaveFeature(mat, filepath.Join(dir, base+".f16")); err != nil {
		fmt.Printf("Error writing feature file: %v\n", err)
		os.Exit(1)
	}
	if err := features.DumpImage(mat, filepath.Join(dir, base+".png")); err != nil {
		fmt.Printf("Error writing preview image: %v\n", err)
		os.Exit(1)
	}
}
