// SPDX-License-Identifier: EPL-2.0

package playback

import "fmt"

// bufferStreamer serves a mono take as a beep StreamSeeker, duplicating
// each sample into both channels. Position advances only through Stream
// and Seek, so it is monotonic between seeks.
type bufferStreamer struct {
	data []float32
	pos  int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.data) {
		return 0, false
	}

	n := 0
	for i := range samples {
		if b.pos >= len(b.data) {
			break
		}
		v := float64(b.data[b.pos])
		samples[i][0], samples[i][1] = v, v
		b.pos++
		n++
	}

	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

func (b *bufferStreamer) Len() int { return len(b.data) }

func (b *bufferStreamer) Position() int { return b.pos }

func (b *bufferStreamer) Seek(p int) error {
	if p < 0 || p > len(b.data) {
		return fmt.Errorf("seek position %d outside [0, %d]", p, len(b.data))
	}
	b.pos = p

	return nil
}

// sustain keeps a drained source in the mixer: past the end it serves
// silence and stays ok, so the pipeline survives stop/seek/replay
// without requeueing.
type sustain struct {
	src *bufferStreamer
}

func (s sustain) Stream(samples [][2]float64) (int, bool) {
	n, _ := s.src.Stream(samples)
	for i := n; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}

	return len(samples), true
}

func (s sustain) Err() error { return nil }
