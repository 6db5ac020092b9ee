package features

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
	"github.com/x448/float16"
)

var (
	// ErrNoSamples means a file decoded successfully but held no audio.
	ErrNoSamples = errors.New("no audio samples decoded")
	// ErrBadFeatureFile means a feature dump is truncated or not one at all.
	ErrBadFeatureFile = errors.New("malformed feature file")
	// ErrRagged means the rows of a feature matrix differ in length.
	ErrRagged = errors.New("ragged feature matrix")
	// ErrEmptyMatrix means a matrix with no cells was passed for rendering.
	ErrEmptyMatrix = errors.New("empty feature matrix")
)

// LoadWavMono decodes a wav file to a mono float64 sample vector, averaging
// the channels and resampling to the extractor's SampleRate when the file
// rate differs. It returns the samples and their actual rate.
func (e *Extractor) LoadWavMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	var src beep.Streamer = stream
	rate := int(format.SampleRate)
	if e.SampleRate > 0 && rate != e.SampleRate {
		src = beep.Resample(4, format.SampleRate, beep.SampleRate(e.SampleRate), stream)
		rate = e.SampleRate
	}

	out := readMono(src)
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	return out, rate, nil
}

// readMono drains a streamer, downmixing the two channels.
func readMono(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, (buf[i][0]+buf[i][1])/2)
		}
		if !ok {
			break
		}
	}
	return out
}

// LoadFlacMono decodes a flac file to a mono float64 sample vector in
// [-1, 1], averaging the channels. The samples keep the file's native rate,
// returned alongside; flac input is not resampled.
func (e *Extractor) LoadFlacMono(path string) ([]float64, int, error) {
	stream, err := flac.ParseFile(path)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	nch := int(stream.Info.NChannels)
	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))

	var out []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decode %s: %w", path, err)
		}
		for i := range frame.Subframes[0].Samples {
			var sum float64
			for ch := 0; ch < nch; ch++ {
				sum += float64(frame.Subframes[ch].Samples[i])
			}
			out = append(out, sum/float64(nch)/scale)
		}
	}
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}
	return out, int(stream.Info.SampleRate), nil
}

// Feature dump layout: "F16F", uint32 rows, uint32 cols, then rows*cols
// little-endian IEEE half-precision values in row-major order.
var featMagic = [4]byte{'F', '1', '6', 'F'}

// SaveFeature writes a feature matrix as a compact float16 binary file,
// creating parent directories if needed. Values outside half-precision
// range are saturated.
func SaveFeature(mat [][]float64, path string) error {
	rows := len(mat)
	cols := 0
	if rows > 0 {
		cols = len(mat[0])
	}

	buf := make([]byte, 0, len(featMagic)+8+rows*cols*2)
	buf = append(buf, featMagic[:]...)
	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], uint32(rows))
	buf = append(buf, u32[:]...)
	binary.LittleEndian.PutUint32(u32[:], uint32(cols))
	buf = append(buf, u32[:]...)

	var u16 [2]byte
	for _, row := range mat {
		if len(row) != cols {
			return ErrRagged
		}
		for _, v := range row {
			binary.LittleEndian.PutUint16(u16[:], float16.Fromfloat32(float32(v)).Bits())
			buf = append(buf, u16[:]...)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf, 0o644)
}

// LoadFeature reads a matrix written by SaveFeature back into float64.
func LoadFeature(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	head := len(featMagic) + 8
	if len(data) < head || [4]byte{data[0], data[1], data[2], data[3]} != featMagic {
		return nil, fmt.Errorf("%s: %w", path, ErrBadFeatureFile)
	}
	rows := int(binary.LittleEndian.Uint32(data[4:8]))
	cols := int(binary.LittleEndian.Uint32(data[8:12]))
	if len(data) != head+rows*cols*2 {
		return nil, fmt.Errorf("%s: %w", path, ErrBadFeatureFile)
	}

	mat := make([][]float64, rows)
	off := head
	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			bits := binary.LittleEndian.Uint16(data[off : off+2])
			row[c] = float64(float16.Frombits(bits).Float32())
			off += 2
		}
		mat[r] = row
	}
	return mat, nil
}

// DumpImage renders a (features, time) matrix as a grayscale PNG, low
// feature rows at the bottom, values normalized over the matrix range.
func DumpImage(mat [][]float64, path string) error {
	rows := len(mat)
	if rows == 0 || len(mat[0]) == 0 {
		return ErrEmptyMatrix
	}
	cols := len(mat[0])

	lo, hi := mat[0][0], mat[0][0]
	for _, row := range mat {
		if len(row) != cols {
			return ErrRagged
		}
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for r, row := range mat {
		for c, v := range row {
			img.SetGray(c, rows-1-r, color.Gray{Y: uint8(255 * (v - lo) / span)})
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
