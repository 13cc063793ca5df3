// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/utils"
)

const formatPCM = 1

var (
	riffMagic = []byte("RIFF")
	waveMagic = []byte("WAVE")
	fmtMagic  = []byte("fmt ")
	dataMagic = []byte("data")
)

// wavSource streams 16-bit little endian PCM out of the data chunk.
type wavSource struct {
	r          *bytes.Reader
	sampleRate int
	channels   int
	buf        []byte
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BufSize() int    { return 4096 }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.r.Len() == 0 {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * 2
	if len(s.buf) < want {
		s.buf = make([]byte, want)
	}

	n, err := io.ReadFull(s.r, s.buf[:want])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return 0, fmt.Errorf("%w", err)
	}

	samples := n / 2
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i : 2*i+2]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if s.r.Len() == 0 {
		return samples, io.EOF
	}
	return samples, nil
}

// Decoder reads WAV containers. Canonical 16-bit PCM streams straight out of
// the data chunk; other encodings are handed to github.com/go-audio/wav.
type Decoder struct{}

// Sniff reports whether prefix starts like a RIFF/WAVE container.
func (Decoder) Sniff(prefix []byte) bool {
	return len(prefix) >= 12 &&
		bytes.Equal(prefix[0:4], riffMagic) &&
		bytes.Equal(prefix[8:12], waveMagic)
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading wav stream: %w", err)
	}

	if len(raw) < 12 || !d.Sniff(raw[:12]) {
		return nil, ErrNotWavFile
	}

	var (
		haveFmt       bool
		format        uint16
		channels      int
		sampleRate    int
		bitsPerSample int
		dataStart     = -1
		dataLen       int
	)

	// Walk the chunk list. Real files carry LIST, fact, bext and other
	// chunks in arbitrary order, so everything unknown is skipped.
	off := 12
	for off+8 <= len(raw) {
		id := raw[off : off+4]
		size := int(binary.LittleEndian.Uint32(raw[off+4 : off+8]))
		body := off + 8

		switch {
		case bytes.Equal(id, fmtMagic):
			if size < 16 || body+16 > len(raw) {
				return nil, ErrUnsupportedWavLayout
			}
			format = binary.LittleEndian.Uint16(raw[body : body+2])
			channels = int(binary.LittleEndian.Uint16(raw[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(raw[body+4 : body+8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(raw[body+14 : body+16]))
			haveFmt = true
		case bytes.Equal(id, dataMagic):
			dataStart = body
			dataLen = size
			if dataStart+dataLen > len(raw) {
				// Tolerate a truncated data chunk
				dataLen = len(raw) - dataStart
			}
		}

		if haveFmt && dataStart >= 0 {
			break
		}

		off = body + size
		if size%2 == 1 {
			off++ // chunk bodies are word aligned
		}
	}

	if !haveFmt || dataStart < 0 {
		return nil, ErrUnsupportedWavChunks
	}
	if channels < 1 || sampleRate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	if format == formatPCM && bitsPerSample == 16 {
		return &wavSource{
			r:          bytes.NewReader(raw[dataStart : dataStart+dataLen]),
			sampleRate: sampleRate,
			channels:   channels,
			buf:        make([]byte, 4096),
		}, nil
	}

	return decodeFull(raw)
}

// decodeFull hands the whole container to go-audio, which understands the
// 8/24/32-bit and float encodings the fast path does not stream.
func decodeFull(raw []byte) (audio.Source, error) {
	dec := gowav.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}

	bits := int(dec.BitDepth)
	if pcm.SourceBitDepth > 0 {
		bits = pcm.SourceBitDepth
	}

	channels := int(dec.NumChans)
	rate := int(dec.SampleRate)
	if pcm.Format != nil {
		if pcm.Format.NumChannels > 0 {
			channels = pcm.Format.NumChannels
		}
		if pcm.Format.SampleRate > 0 {
			rate = pcm.Format.SampleRate
		}
	}
	if rate <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	return &memSource{
		data:       floatsFromIntBuffer(pcm, bits),
		sampleRate: rate,
		channels:   max(channels, 1),
	}, nil
}

// floatsFromIntBuffer scales go-audio integer samples into [-1, 1].
func floatsFromIntBuffer(pcm *goaudio.IntBuffer, bits int) []float32 {
	if bits <= 0 {
		bits = 16
	}

	data := make([]float32, len(pcm.Data))
	if bits == 8 {
		// 8-bit WAV PCM is unsigned with the midpoint at 128.
		for i, v := range pcm.Data {
			data[i] = (float32(v) - 128) / 128
		}
		return data
	}

	scale := float32(uint64(1) << (bits - 1))
	for i, v := range pcm.Data {
		data[i] = float32(v) / scale
	}
	return data
}

// memSource serves a fully decoded take out of memory.
type memSource struct {
	data       []float32
	sampleRate int
	channels   int
	pos        int
}

func (s *memSource) SampleRate() int { return s.sampleRate }
func (s *memSource) Channels() int   { return s.channels }
func (s *memSource) BufSize() int    { return 4096 }
func (s *memSource) Close() error    { return nil }

func (s *memSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}

	n := copy(dst, s.data[s.pos:])
	s.pos += n

	if s.pos >= len(s.data) {
		return n, io.EOF
	}
	return n, nil
}
