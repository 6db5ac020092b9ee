package dataio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvVar names the environment variable that can point directly at the
// dataset root, bypassing the candidate search.
const EnvVar = "FSD50K_DIR"

var (
	// ErrNotFound means no candidate directory held a complete dataset.
	ErrNotFound = errors.New("FSD50K root not found")
	// ErrSplit reports a split name other than "dev" or "eval".
	ErrSplit = errors.New(`split must be "dev" or "eval"`)
)

// Config describes where and how to look for the dataset. The zero value is
// not useful; start from DefaultConfig and override fields as needed, for
// example pointing Candidates at a fake root in tests.
type Config struct {
	// EnvVar is consulted first when non-empty; its value is prepended to
	// the candidate list.
	EnvVar string
	// Candidates are probed in order after the environment override.
	Candidates []string
	// Required entries a directory must contain to count as the root.
	Required []string
}

// DefaultConfig returns the standard search order: $FSD50K_DIR, the
// repo-local data/raw/FSD50K, then the common Colab Drive mounts.
func DefaultConfig() *Config {
	return &Config{
		EnvVar: EnvVar,
		Candidates: []string{
			filepath.Join("data", "raw", "FSD50K"),
			"/content/drive/MyDrive/FSD50K",
			"/content/drive/MyDrive/Data/FSD50K",
		},
		Required: []string{
			"FSD50K.dev_audio",
			"FSD50K.eval_audio",
			"FSD50K.ground_truth",
			"FSD50K.metadata",
		},
	}
}

// candidateRoots builds the ordered, deduplicated probe list.
func (c *Config) candidateRoots() []string {
	var cands []string
	if c.EnvVar != "" {
		if p := os.Getenv(c.EnvVar); p != "" {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
			cands = append(cands, p)
		}
	}
	cands = append(cands, c.Candidates...)

	seen := make(map[string]bool, len(cands))
	out := make([]string, 0, len(cands))
	for _, p := range cands {
		if !seen[p] {
			out = append(out, p)
			seen[p] = true
		}
	}
	return out
}

// FindRoot probes the candidates in order and returns the first directory
// containing every required entry. When nothing matches it returns an error
// wrapping ErrNotFound that lists what was tried.
func (c *Config) FindRoot() (string, error) {
	cands := c.candidateRoots()
	for _, cand := range cands {
		if hasEntries(cand, c.Required) {
			return cand, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s (set %s or place the dataset under data/raw/FSD50K)",
		ErrNotFound, strings.Join(cands, ", "), c.EnvVar)
}

func hasEntries(dir string, names []string) bool {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}
	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

// ListWavs returns the sorted *.wav paths of the given split, "dev" or
// "eval". The ordering is stable across runs, which makes the listing a
// suitable input for reproducible train/validation splits.
func (c *Config) ListWavs(split string) ([]string, error) {
	if split != "dev" && split != "eval" {
		return nil, fmt.Errorf("%w: got %q", ErrSplit, split)
	}
	root, err := c.FindRoot()
	if err != nil {
		return nil, err
	}
	wavs, err := filepath.Glob(filepath.Join(root, "FSD50K."+split+"_audio", "*.wav"))
	if err != nil {
		return nil, err
	}
	sort.Strings(wavs)
	return wavs, nil
}

// WriteSummary prints where the dataset was found and the per-split wav
// counts, or the probed candidates when discovery failed. A missing dataset
// is reported on w, not returned as an error.
func (c *Config) WriteSummary(w io.Writer) error {
	root, err := c.FindRoot()
	if errors.Is(err, ErrNotFound) {
		fmt.Fprintf(w, "FSD50K not found. Set %s or place at data/raw/FSD50K/\n", c.EnvVar)
		for i, cand := range c.candidateRoots() {
			fmt.Fprintf(w, "  candidate %d: %s\n", i+1, cand)
		}
		return nil
	}
	if err != nil {
		return err
	}

	devWavs, err := c.ListWavs("dev")
	if err != nil {
		return err
	}
	evalWavs, err := c.ListWavs("eval")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "FSD50K root: %s\n", root)
	fmt.Fprintf(w, "dev wavs:  %d\n", len(devWavs))
	fmt.Fprintf(w, "eval wavs: %d\n", len(evalWavs))
	return nil
}
