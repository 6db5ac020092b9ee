package dataio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Clip is one row of a ground-truth table: a wav file name and its labels.
type Clip struct {
	Fname  string
	Labels []string
	MIDs   []string
	// Split is the official train/val tag; only present in the dev table.
	Split string
}

// Term is one row of vocabulary.csv, mapping a label index to its display
// name and AudioSet machine identifier.
type Term struct {
	Index int
	Label string
	MID   string
}

// LoadGroundTruth reads the ground-truth CSV of the given split, "dev" or
// "eval". Labels and MIDs arrive comma-joined inside one quoted CSV field
// and are split into slices here.
func (c *Config) LoadGroundTruth(split string) ([]Clip, error) {
	if split != "dev" && split != "eval" {
		return nil, fmt.Errorf("%w: got %q", ErrSplit, split)
	}
	root, err := c.FindRoot()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, "FSD50K.ground_truth", split+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // dev has 4 columns, eval 3

	var clips []Clip
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line++
		if line == 1 {
			continue // header
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("%s: line %d: want at least 3 columns, got %d", path, line, len(rec))
		}
		clip := Clip{
			Fname:  rec[0],
			Labels: splitList(rec[1]),
			MIDs:   splitList(rec[2]),
		}
		if len(rec) > 3 {
			clip.Split = rec[3]
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

// LoadVocabulary reads vocabulary.csv from the ground-truth folder. The
// file has no header row.
func (c *Config) LoadVocabulary() ([]Term, error) {
	root, err := c.FindRoot()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(root, "FSD50K.ground_truth", "vocabulary.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	var terms []Term
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line++
		if len(rec) < 3 {
			return nil, fmt.Errorf("%s: line %d: want 3 columns, got %d", path, line, len(rec))
		}
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: bad index: %w", path, line, err)
		}
		terms = append(terms, Term{Index: idx, Label: rec[1], MID: rec[2]})
	}
	return terms, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
