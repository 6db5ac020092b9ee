// Command summary prints where the FSD50K dataset was found and how many
// wav files each split contains.
//
// The dataset root is discovered by probing the standard candidate
// locations; set the FSD50K_DIR environment variable to point somewhere
// else. When nothing is found, the probed candidates are listed instead.
//
// Usage:
//
//	summary
package main
