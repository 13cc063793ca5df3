package flac

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/voxlab/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

const flacMagic = "fLaC"

// flacReader is an interface for flac.Stream to allow testing
type flacReader interface {
	ParseNext() (*frame.Frame, error)
	Close() error
}

// source wraps mewkiz flac.Stream to implement audio.Source.
// FLAC frames arrive planar (one subframe per channel), so each frame
// is interleaved into buf and served across ReadSamples calls.
type source struct {
	dec        flacReader
	sampleRate int
	channels   int
	scale      float32
	buf        []float32
	pos        int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return s.dec.Close() }
func (s *source) BufSize() int {
	if cap(s.buf) > 0 {
		return cap(s.buf)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	total := 0
	for total < len(dst) {
		if s.pos >= len(s.buf) {
			if err := s.nextFrame(); err != nil {
				if total > 0 && err == io.EOF {
					return total, io.EOF
				}
				return total, err
			}
		}

		n := copy(dst[total:], s.buf[s.pos:])
		s.pos += n
		total += n
	}

	return total, nil
}

// nextFrame decodes the next FLAC frame and interleaves its channels.
func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		return err
	}

	if len(f.Subframes) != s.channels {
		return ErrUnsupportedFlacLayout
	}

	frames := f.Subframes[0].NSamples
	need := frames * s.channels
	if cap(s.buf) < need {
		s.buf = make([]float32, need)
	} else {
		s.buf = s.buf[:need]
	}

	for i := range frames {
		for ch := range s.channels {
			s.buf[i*s.channels+ch] = float32(f.Subframes[ch].Samples[i]) / s.scale
		}
	}

	s.pos = 0

	return nil
}

type Decoder struct{}

// Sniff reports whether prefix carries the fLaC stream marker.
func (Decoder) Sniff(prefix []byte) bool {
	return len(prefix) >= 4 && bytes.Equal(prefix[0:4], []byte(flacMagic))
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		return nil, ErrUnsupportedFlacLayout
	}

	switch info.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, ErrUnsupportedFlacDepth
	}

	return &source{
		dec:        stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		scale:      float32(int64(1) << (info.BitsPerSample - 1)),
	}, nil
}
