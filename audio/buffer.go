// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"time"
)

// SampleBuffer holds a fully decoded mono take: normalized float32
// samples at a fixed rate. Editing operations never mutate a buffer in
// place; they produce a replacement instead, so a buffer handed to a
// renderer or player stays stable for its lifetime.
type SampleBuffer struct {
	Data []float32
	Rate int
}

// NewSampleBuffer wraps samples at rate. The slice is not copied.
func NewSampleBuffer(samples []float32, rate int) *SampleBuffer {
	return &SampleBuffer{Data: samples, Rate: rate}
}

// Len is the number of samples.
func (b *SampleBuffer) Len() int { return len(b.Data) }

// Seconds is the playing time in fractional seconds.
func (b *SampleBuffer) Seconds() float64 {
	if b.Rate <= 0 {
		return 0
	}
	return float64(len(b.Data)) / float64(b.Rate)
}

// Duration is the playing time as a time.Duration.
func (b *SampleBuffer) Duration() time.Duration {
	return time.Duration(b.Seconds() * float64(time.Second))
}

// Clone returns a deep copy sharing nothing with the receiver.
func (b *SampleBuffer) Clone() *SampleBuffer {
	data := make([]float32, len(b.Data))
	copy(data, b.Data)
	return &SampleBuffer{Data: data, Rate: b.Rate}
}

// BufferSource adapts a SampleBuffer to the Source interface so a
// decoded take can re-enter streaming pipelines (resampling, mixing,
// encoding).
type BufferSource struct {
	buf *SampleBuffer
	pos int
}

func NewBufferSource(buf *SampleBuffer) *BufferSource {
	return &BufferSource{buf: buf}
}

func (s *BufferSource) SampleRate() int { return s.buf.Rate }
func (s *BufferSource) Channels() int   { return 1 }
func (s *BufferSource) BufSize() int    { return 4096 }
func (s *BufferSource) Close() error    { return nil }

// Reset rewinds to the first sample so the source can be read again.
func (s *BufferSource) Reset() { s.pos = 0 }

func (s *BufferSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.buf.Data) {
		return 0, io.EOF
	}

	n := copy(dst, s.buf.Data[s.pos:])
	s.pos += n

	if s.pos >= len(s.buf.Data) {
		return n, io.EOF
	}

	return n, nil
}
