package main

import (
	"fmt"
	"os"

	"github.com/openfsd/fsdprep/dataio"
)

func main() {
	if err := dataio.DefaultConfig().WriteSummary(os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
