package features

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

// sine returns n samples of a sine tone, enough to exercise several STFT
// frames without real audio files.
func sine(n int, freq float64, sr int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sr))
	}
	return buf
}

func TestLogMelShape(t *testing.T) {
	e := NewExtractor()
	mat, err := e.LogMel(sine(32000, 440, e.SampleRate))
	if err != nil {
		t.Fatal(err)
	}
	if len(mat) != e.NumMels {
		t.Fatalf("want %d mel rows, got %d", e.NumMels, len(mat))
	}
	frames := len(mat[0])
	if frames == 0 {
		t.Fatal("no frames produced")
	}
	for i, row := range mat {
		if len(row) != frames {
			t.Fatalf("row %d has %d frames, row 0 has %d", i, len(row), frames)
		}
	}
}

func TestLogMelDBRange(t *testing.T) {
	e := NewExtractor()
	mat, err := e.LogMel(sine(16000, 1000, e.SampleRate))
	if err != nil {
		t.Fatal(err)
	}
	peak := math.Inf(-1)
	for _, row := range mat {
		for _, v := range row {
			if v > peak {
				peak = v
			}
			if v < -e.TopDB-1e-9 {
				t.Fatalf("value %v below -TopDB", v)
			}
			if v > 1e-9 {
				t.Fatalf("value %v above reference peak", v)
			}
		}
	}
	if math.Abs(peak) > 1e-9 {
		t.Errorf("peak should sit at 0 dB (ref=max), got %v", peak)
	}
}

func TestLogMelDeterministic(t *testing.T) {
	e := NewExtractor()
	buf := sine(20000, 440, e.SampleRate)
	a, err := e.LogMel(buf)
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.LogMel(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two extractions of the same signal differ")
	}
}

func TestLogMelEmptySignal(t *testing.T) {
	if _, err := NewExtractor().LogMel(nil); !errors.Is(err, ErrEmptySignal) {
		t.Errorf("want ErrEmptySignal, got %v", err)
	}
}

func TestLogMelShortSignal(t *testing.T) {
	// shorter than one FFT frame still yields at least one frame
	e := NewExtractor()
	mat, err := e.LogMel(sine(100, 440, e.SampleRate))
	if err != nil {
		t.Fatal(err)
	}
	if len(mat[0]) == 0 {
		t.Error("short signal produced no frames")
	}
}

func TestMFCCShape(t *testing.T) {
	e := NewExtractor()
	buf := sine(32000, 440, e.SampleRate)
	logmel, err := e.LogMel(buf)
	if err != nil {
		t.Fatal(err)
	}
	mfcc, err := e.MFCC(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(mfcc) != e.NumMFCC {
		t.Fatalf("want %d coefficient rows, got %d", e.NumMFCC, len(mfcc))
	}
	if len(mfcc[0]) != len(logmel[0]) {
		t.Errorf("MFCC frames %d != log-mel frames %d", len(mfcc[0]), len(logmel[0]))
	}
}

func TestMFCCCappedByNumMels(t *testing.T) {
	e := NewExtractor()
	e.NumMels = 12
	e.NumMFCC = 40
	mfcc, err := e.MFCC(sine(16000, 440, e.SampleRate))
	if err != nil {
		t.Fatal(err)
	}
	if len(mfcc) != 12 {
		t.Errorf("coefficients cannot exceed mel bands: want 12 rows, got %d", len(mfcc))
	}
}

func TestDCTMatchesDirectForm(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{4, 16, 64} {
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.NormFloat64()
		}
		got := dctII(x)

		for k := 0; k < n; k++ {
			var sum float64
			for i := 0; i < n; i++ {
				sum += x[i] * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/float64(2*n))
			}
			scale := math.Sqrt(2 / float64(n))
			if k == 0 {
				scale = math.Sqrt(1 / float64(n))
			}
			want := scale * sum
			if math.Abs(got[k]-want) > 1e-9 {
				t.Fatalf("n=%d k=%d: fft dct %v, direct %v", n, k, got[k], want)
			}
		}
	}
}

func TestFrameFeature(t *testing.T) {
	mat := [][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}

	clipped := FrameFeature(mat, 2)
	if !reflect.DeepEqual(clipped, [][]float64{{1, 2}, {5, 6}}) {
		t.Errorf("clip: got %v", clipped)
	}

	padded := FrameFeature(mat, 6)
	if !reflect.DeepEqual(padded, [][]float64{{1, 2, 3, 4, 0, 0}, {5, 6, 7, 8, 0, 0}}) {
		t.Errorf("pad: got %v", padded)
	}

	if got := FrameFeature(mat, 0); !reflect.DeepEqual(got, mat) {
		t.Errorf("maxFrames=0 should return input unchanged, got %v", got)
	}

	// input rows must stay untouched by clipping
	if mat[0][2] != 3 || len(mat[0]) != 4 {
		t.Error("FrameFeature mutated its input")
	}
}

func TestPowerToDBFlatMatrix(t *testing.T) {
	mat := [][]float64{{2, 2}, {2, 2}}
	powerToDB(mat, 80)
	for _, row := range mat {
		for _, v := range row {
			if math.Abs(v) > 1e-12 {
				t.Fatalf("flat matrix should be all 0 dB, got %v", v)
			}
		}
	}
}
