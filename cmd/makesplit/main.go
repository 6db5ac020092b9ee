package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openfsd/fsdprep/dataio"
	"github.com/openfsd/fsdprep/splits"
)

var (
	split = flag.String("split", "dev", `dataset split to list: "dev" or "eval"`)
	ratio = flag.Float64("ratio", 0.2, "fraction of files assigned to validation")
	seed  = flag.Int64("seed", 42, "shuffle seed")
	out   = flag.String("out", filepath.Join("data", "processed", "splits"), "output directory for the split lists")
)

func main() {
	flag.Parse()

	wavs, err := dataio.DefaultConfig().ListWavs(*split)
	if err != nil {
		fmt.Printf("Error listing wavs: %v\n", err)
		os.Exit(1)
	}

	train, val, err := splits.RandomSplit(wavs, *ratio, *seed)
	if err != nil {
		fmt.Printf("Error splitting: %v\n", err)
		os.Exit(1)
	}
	if err := splits.WriteSplitFiles(train, val, *out); err != nil {
		fmt.Printf("Error writing split files: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d train / %d val files to %s\n", len(train), len(val), *out)
}
