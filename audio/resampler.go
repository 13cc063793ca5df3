// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/voxlab/utils"
)

// Resampler converts src to a target sample rate using Catmull-Rom
// cubic interpolation over a sliding four-frame window. It works on
// interleaved samples and preserves the channel count. When the target
// rate matches the source rate, reads pass straight through. A one-pole
// low-pass smooths the input when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames consumed per output frame
	channels int

	// window[0]=t-1, window[1]=t0, window[2]=t+1, window[3]=t+2;
	// interpolation happens between window[1] and window[2].
	window [4][]float32
	loaded [4]bool
	primed bool

	// Fractional read position between window[1] and window[2].
	pos float64

	frameBuf []float32
	eof      bool

	// One-pole low-pass state, enabled only when downsampling.
	lowpass     bool
	lpAlpha     float32
	lpState     []float32
	passthrough bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:         src,
		dstRate:     dstRate,
		step:        step,
		channels:    channels,
		frameBuf:    make([]float32, channels),
		passthrough: src.SampleRate() == dstRate,
		lowpass:     step > 1.0,
		lpState:     make([]float32, channels),
	}

	if r.lowpass {
		// Crude single-pole smoothing; enough to tame the worst
		// aliasing on speech-band material.
		r.lpAlpha = 0.5
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readFrame pulls one interleaved frame from the source into dst.
func (r *Resampler) readFrame(dst []float32) (int, error) {
	n, err := r.src.ReadSamples(dst[:r.channels])
	if n > 0 && r.lowpass {
		for c := 0; c < r.channels; c++ {
			dst[c] = r.lpAlpha*dst[c] + (1-r.lpAlpha)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}
	return n, err
}

// prime fills the initial four-frame window, duplicating the last
// valid frame when the source is shorter than the window.
func (r *Resampler) prime() error {
	filled := 0

	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.frameBuf[:r.channels])
		if n > 0 {
			copy(r.window[i], r.frameBuf[:n])
			r.loaded[i] = true
			filled = i + 1

			// Seed the filter with the first frame to avoid a
			// warm-up ramp from zero.
			if i == 0 && r.lowpass {
				copy(r.lpState, r.frameBuf[:n])
			}
		}

		if err == io.EOF {
			r.eof = true
			if filled == 0 {
				return io.EOF
			}
			// Short source: pad the window with the last frame read.
			for j := filled; j < 4; j++ {
				copy(r.window[j], r.window[filled-1])
				r.loaded[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	r.primed = true
	return nil
}

// advance shifts the window one frame to the left and loads the next
// source frame into the tail slot.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.window[0], r.window[1])
	copy(r.window[1], r.window[2])
	copy(r.window[2], r.window[3])
	r.loaded[0] = r.loaded[1]
	r.loaded[1] = r.loaded[2]
	r.loaded[2] = r.loaded[3]

	n, err := r.readFrame(r.window[3])
	r.loaded[3] = n > 0

	if err == io.EOF {
		r.eof = true
		if !r.loaded[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.passthrough {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / r.channels

	for written < framesNeeded {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.loaded[1] || !r.loaded[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)

		for c := 0; c < r.channels; c++ {
			y1 := r.window[1][c]
			y2 := r.window[2][c]

			// Duplicate edge frames when the window is partial.
			y0 := y1
			if r.loaded[0] {
				y0 = r.window[0][c]
			}
			y3 := y2
			if r.loaded[3] {
				y3 = r.window[3][c]
			}

			dst[written*r.channels+c] = utils.CubicInterpolate(y0, y1, y2, y3, x)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
