// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

// Source is a pull-based stream of PCM audio.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the source's preferred read size in samples.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Sniffer is optionally implemented by decoders that can recognize
// their format from the first bytes of a stream. The prefix passed to
// Sniff holds at least SniffLen bytes unless the input is shorter.
type Sniffer interface {
	Sniff(prefix []byte) bool
}

// SniffLen is the number of leading bytes Registry.Detect hands to
// each registered Sniffer.
const SniffLen = 12

// Registry maps format keys (e.g., "wav", "mp3", "ogg") to decoders.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

// Register adds or replaces the decoder for a format key.
func (r *Registry) Register(format string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[format] = d
}

// Get returns the decoder registered for the format key.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Detect finds a decoder whose Sniffer recognizes the stream prefix.
// Decoders that do not implement Sniffer are skipped. Candidates are
// tried in sorted key order so detection is deterministic.
func (r *Registry) Detect(prefix []byte) (string, Decoder, bool) {
	for _, key := range r.Formats() {
		d, ok := r.Get(key)
		if !ok {
			continue
		}
		s, ok := d.(Sniffer)
		if !ok {
			continue
		}
		if s.Sniff(prefix) {
			return key, d, true
		}
	}

	return "", nil, false
}
