package features

import (
	"errors"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/r9y9/gossp/stft"
)

// Extractor holds the configuration for spectral feature extraction.
type Extractor struct {
	// SampleRate is the target rate wav input is resampled to.
	SampleRate int
	NumMels    int
	NumMFCC    int
	MelFmin    float64
	MelFmax    float64
	// Window is the STFT frame shift in samples.
	Window int
	// Resolut is the STFT frame length (FFT size).
	Resolut int
	// TopDB clamps the dynamic range of log-mel output below the peak.
	TopDB float64
}

// NewExtractor creates an Extractor with default values.
func NewExtractor() *Extractor {
	return &Extractor{
		SampleRate: 32000,
		NumMels:    64,
		NumMFCC:    20,
		MelFmin:    0,
		MelFmax:    16000,
		Window:     256,
		Resolut:    2048,
		TopDB:      80,
	}
}

// ErrEmptySignal is returned when a feature is requested for a zero-length
// waveform.
var ErrEmptySignal = errors.New("empty signal")

// LogMel computes the log-mel spectrogram of a mono waveform. The result
// has shape (NumMels, frames) and holds decibel values relative to the
// loudest bin, so the maximum is 0 and nothing falls below -TopDB.
func (e *Extractor) LogMel(buf []float64) ([][]float64, error) {
	if len(buf) == 0 {
		return nil, ErrEmptySignal
	}
	power := e.powerSpectrum(buf)
	melspec := e.melFilter(power)
	powerToDB(melspec, e.TopDB)
	return melspec, nil
}

// MFCC computes mel-frequency cepstral coefficients: an orthonormal DCT-II
// over the log-mel bands of each frame, keeping the first NumMFCC rows.
// The result has shape (NumMFCC, frames).
func (e *Extractor) MFCC(buf []float64) ([][]float64, error) {
	logmel, err := e.LogMel(buf)
	if err != nil {
		return nil, err
	}
	mels := len(logmel)
	frames := len(logmel[0])
	nOut := e.NumMFCC
	if nOut > mels {
		nOut = mels
	}

	out := make([][]float64, nOut)
	for i := range out {
		out[i] = make([]float64, frames)
	}
	band := make([]float64, mels)
	for t := 0; t < frames; t++ {
		for m := 0; m < mels; m++ {
			band[m] = logmel[m][t]
		}
		coef := dctII(band)
		for i := 0; i < nOut; i++ {
			out[i][t] = coef[i]
		}
	}
	return out, nil
}

// FrameFeature clips or zero-pads a (features, time) matrix along the time
// axis to exactly maxFrames columns. maxFrames <= 0 returns mat unchanged.
func FrameFeature(mat [][]float64, maxFrames int) [][]float64 {
	if maxFrames <= 0 {
		return mat
	}
	out := make([][]float64, len(mat))
	for i, row := range mat {
		fixed := make([]float64, maxFrames)
		copy(fixed, row)
		out[i] = fixed
	}
	return out
}

// powerSpectrum runs the STFT and keeps the power of the lower half of each
// frame's spectrum, one row per frame.
func (e *Extractor) powerSpectrum(buf []float64) [][]float64 {
	s := stft.New(e.Window, e.Resolut)
	spectrum := s.STFT(pad(buf, e.Window, e.Resolut))

	bins := e.Resolut / 2
	power := make([][]float64, len(spectrum))
	for i, frame := range spectrum {
		row := make([]float64, bins)
		for j := 0; j < bins; j++ {
			re, im := real(frame[j]), imag(frame[j])
			row[j] = re*re + im*im
		}
		power[i] = row
	}
	return power
}

// pad surrounds buf with zeros so the first and last samples sit inside
// whole STFT frames, and short signals still produce at least one frame.
func pad(buf []float64, window, resolut int) []float64 {
	lead := resolut / 2
	total := len(buf) + 2*lead
	if rem := total % window; rem != 0 {
		total += window - rem
	}
	out := make([]float64, total)
	copy(out[lead:], buf)
	return out
}

const (
	melBreakFrequencyHertz = 700.0
	melHighFrequencyQ      = 1127.0
)

func melToHz(value float64) float64 {
	return melBreakFrequencyHertz * (math.Exp(value/melHighFrequencyQ) - 1.0)
}

func hzToMel(value float64) float64 {
	return melHighFrequencyQ * math.Log(1.0+(value/melBreakFrequencyHertz))
}

// melFilter integrates the linear power bins of each frame into NumMels
// mel-spaced bands between MelFmin and MelFmax. Input is (frames, bins),
// output is (NumMels, frames).
func (e *Extractor) melFilter(power [][]float64) [][]float64 {
	bins := e.Resolut / 2
	melBin := hzToMel(e.MelFmax) / float64(e.NumMels)

	out := make([][]float64, e.NumMels)
	for m := 0; m < e.NumMels; m++ {
		lo := float64(bins) * (e.MelFmin + melToHz(melBin*float64(m))) / (e.MelFmax + e.MelFmin)
		hi := float64(bins) * (e.MelFmin + melToHz(melBin*float64(m+1))) / (e.MelFmax + e.MelFmin)

		inlo, modlo := math.Modf(lo)
		inhi := math.Floor(hi)
		if inlo < 0 {
			inlo, modlo, inhi = 0, 0, 0
		}
		if inhi > float64(bins-1) {
			inhi = float64(bins - 1)
		}

		row := make([]float64, len(power))
		for t := range power {
			var total float64
			if int(inlo)+1 >= int(inhi) {
				total += power[t][int(inlo)] * (1 - modlo)
				total += power[t][int(inhi)] * modlo
			} else {
				for k := int(inlo); k < int(inhi); k++ {
					total += power[t][k]
				}
			}
			total /= float64(int(inhi) - int(inlo) + 1)
			row[t] = total
		}
		out[m] = row
	}
	return out
}

// powerToDB rescales a power matrix in place to decibels relative to its
// peak value, clamping everything below peak-topDB.
func powerToDB(mat [][]float64, topDB float64) {
	const amin = 1e-10
	ref := amin
	for _, row := range mat {
		for _, v := range row {
			if v > ref {
				ref = v
			}
		}
	}
	logRef := 10 * math.Log10(ref)
	for _, row := range mat {
		for j, v := range row {
			if v < amin {
				v = amin
			}
			row[j] = 10*math.Log10(v) - logRef
		}
	}
	if topDB > 0 {
		for _, row := range mat {
			for j := range row {
				if row[j] < -topDB {
					row[j] = -topDB
				}
			}
		}
	}
}

// dctII computes the orthonormal DCT-II of x through a double-length real
// FFT over the even extension of the input.
func dctII(x []float64) []float64 {
	n := len(x)
	ext := make([]float64, 2*n)
	copy(ext, x)
	for i := 0; i < n; i++ {
		ext[2*n-1-i] = x[i]
	}
	spec := fft.FFTReal(ext)

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		theta := math.Pi * float64(k) / float64(2*n)
		out[k] = real(spec[k])*math.Cos(theta) + imag(spec[k])*math.Sin(theta)
	}
	out[0] *= math.Sqrt(1 / float64(4*n))
	for k := 1; k < n; k++ {
		out[k] *= math.Sqrt(1 / float64(2*n))
	}
	return out
}
