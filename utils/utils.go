package utils

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// EnsureDirs creates each directory (parents included) if it does not exist.
func EnsureDirs(paths ...string) error {
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// SaveJSON writes v as pretty-printed JSON with two-space indentation,
// creating parent directories if needed. An existing file is overwritten.
func SaveJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadJSON reads the JSON file at path into v.
func LoadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// NewRand returns a pseudo-random generator seeded with seed. The generator
// is owned by the caller; the shared math/rand source is never touched, so
// two generators built from the same seed yield the same sequence no matter
// what else is running.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Timestamp returns a filesystem-friendly time string such as
// "exp_2025-10-04_12-34-56", suitable for run or experiment folder names.
func Timestamp(prefix string) string {
	if prefix == "" {
		prefix = "exp"
	}
	return prefix + "_" + time.Now().Format("2006-01-02_15-04-05")
}

// ProjectPaths maps conventional project directory names to their locations
// under root: data/raw for the dataset, data/processed for derived files,
// outputs and models for run artifacts.
func ProjectPaths(root string) map[string]string {
	return map[string]string{
		"root":      root,
		"data":      filepath.Join(root, "data"),
		"raw":       filepath.Join(root, "data", "raw"),
		"processed": filepath.Join(root, "data", "processed"),
		"outputs":   filepath.Join(root, "outputs"),
		"models":    filepath.Join(root, "models"),
	}
}
