// Command makesplit writes reproducible train/validation file lists for an
// FSD50K split.
//
// It lists the wav files of the chosen split in sorted order, shuffles them
// with the given seed and writes train_files.json and val_files.json into
// the output directory. Re-running with the same ratio and seed always
// reproduces the same lists.
//
// Usage:
//
//	makesplit [-split dev|eval] [-ratio 0.2] [-seed 42] [-out data/processed/splits]
package main
