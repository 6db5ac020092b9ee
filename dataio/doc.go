// Package dataio locates the FSD50K dataset on disk and loads its metadata.
//
// The dataset root is discovered by probing an ordered list of candidate
// directories (an environment variable override first, then a repo-local
// location, then common Colab Drive mounts); the first candidate containing
// all four expected dataset subfolders wins. On top of that the package
// offers sorted wav listings per split and readers for the ground-truth and
// vocabulary CSV tables.
package dataio
