package splits

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"path/filepath"

	"github.com/openfsd/fsdprep/utils"
)

// ErrRatio reports a validation ratio outside [0, 1].
var ErrRatio = errors.New("validation ratio out of range [0, 1]")

// Names of the persisted split lists inside a split directory.
const (
	TrainFile = "train_files.json"
	ValFile   = "val_files.json"
)

// RandomSplit partitions paths into a train and a validation list.
//
// The input is copied, never mutated. The copy is shuffled by a generator
// seeded with seed and local to this call, so the same (paths, valRatio,
// seed) triple always produces the same partition. The validation list
// takes the first max(1, floor(N*valRatio)) shuffled items; note the floor:
// a non-empty input always yields at least one validation item, even at
// valRatio 0, which for a single-item input leaves the train list empty.
//
// valRatio outside [0, 1] is rejected with ErrRatio. An empty input yields
// two empty lists.
func RandomSplit(paths []string, valRatio float64, seed int64) (train, val []string, err error) {
	if math.IsNaN(valRatio) || valRatio < 0 || valRatio > 1 {
		return nil, nil, fmt.Errorf("%w: %v", ErrRatio, valRatio)
	}

	items := make([]string, len(paths))
	copy(items, paths)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	nVal := 0
	if len(items) > 0 {
		nVal = int(float64(len(items)) * valRatio)
		if nVal < 1 {
			nVal = 1
		}
	}
	return items[nVal:], items[:nVal], nil
}

// WriteSplitFiles persists both lists under dir as train_files.json and
// val_files.json, each a JSON array of strings. The directory is created
// if missing; existing files are fully overwritten.
func WriteSplitFiles(train, val []string, dir string) error {
	if err := utils.EnsureDirs(dir); err != nil {
		return err
	}
	if err := utils.SaveJSON(stringList(train), filepath.Join(dir, TrainFile)); err != nil {
		return err
	}
	return utils.SaveJSON(stringList(val), filepath.Join(dir, ValFile))
}

// ReadSplitFiles loads a previously written split pair back from dir.
func ReadSplitFiles(dir string) (train, val []string, err error) {
	if err := utils.LoadJSON(filepath.Join(dir, TrainFile), &train); err != nil {
		return nil, nil, err
	}
	if err := utils.LoadJSON(filepath.Join(dir, ValFile), &val); err != nil {
		return nil, nil, err
	}
	return train, val, nil
}

// stringList keeps nil slices serializing as [] rather than null.
func stringList(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
