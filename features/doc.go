// Package features extracts spectral features from audio waveforms.
//
// It loads WAV and FLAC files as mono float64 sample vectors and computes
// log-mel spectrograms and MFCC matrices from them, in the common
// (features, time) layout. Matrices can be clipped or zero-padded to a
// fixed frame count for batching, dumped to a compact float16 binary file,
// or rendered as grayscale PNG images for inspection.
package features
