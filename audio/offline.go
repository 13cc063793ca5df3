// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"

	"github.com/ik5/voxlab/utils"
)

// Resample converts a decoded buffer to the target rate and never
// fails: when the source rate already matches (or the target is not
// positive) the input buffer itself is returned, untouched and
// uncopied; otherwise the take is rendered offline through the cubic
// Resampler, and if that path cannot run for any reason the linear
// fallback takes over. A zero-length input yields a zero-length buffer
// at the target rate.
func Resample(buf *SampleBuffer, toRate int) *SampleBuffer {
	if buf == nil || toRate <= 0 || buf.Rate == toRate || buf.Rate <= 0 {
		return buf
	}

	if buf.Len() == 0 {
		return &SampleBuffer{Rate: toRate}
	}

	out, err := renderCubic(buf, toRate)
	if err != nil {
		return resampleLinear(buf, toRate)
	}

	return out
}

// renderCubic pushes the whole buffer through the streaming cubic
// pipeline and collects the result.
func renderCubic(buf *SampleBuffer, toRate int) (*SampleBuffer, error) {
	rs := NewResampler(NewBufferSource(buf), toRate)

	expected := int(math.Ceil(buf.Seconds() * float64(toRate)))
	samples := make([]float32, 0, expected+8)
	chunk := make([]float32, 4096)

	for {
		n, err := rs.ReadSamples(chunk)
		if n > 0 {
			samples = append(samples, chunk[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}
	}

	return &SampleBuffer{Data: samples, Rate: toRate}, nil
}

// resampleLinear is the plain interpolation fallback: output index i
// maps to source position i*from/to, blending the two neighboring
// samples and clamping at the tail.
func resampleLinear(buf *SampleBuffer, toRate int) *SampleBuffer {
	n := int(math.Round(float64(buf.Len()) * float64(toRate) / float64(buf.Rate)))
	if n <= 0 {
		return &SampleBuffer{Rate: toRate}
	}

	step := float64(buf.Rate) / float64(toRate)
	src := buf.Data
	last := len(src) - 1
	out := make([]float32, n)

	for i := range out {
		pos := float64(i) * step
		i0 := int(pos)

		if i0 >= last {
			out[i] = src[last]
			continue
		}

		out[i] = utils.LinearInterpolate(src[i0], src[i0+1], float32(pos-float64(i0)))
	}

	return &SampleBuffer{Data: out, Rate: toRate}
}
