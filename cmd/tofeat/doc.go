// Command tofeat extracts spectral features from an audio file.
//
// It loads a WAV or FLAC file as mono samples, computes a log-mel
// spectrogram (or MFCC matrix with -mfcc), and writes the matrix as a
// float16 binary dump plus a grayscale PNG preview next to it.
//
// Usage:
//
//	tofeat [-mfcc] [-frames N] [-out dir] <audio_file>
//
// Output files are named after the input: <base>.f16 and <base>.png.
//
// Supported input formats: .wav, .flac
package main
