// SPDX-License-Identifier: EPL-2.0

package capture

// StreamConfig describes the input stream a Session asks its Backend
// to open.
type StreamConfig struct {
	// SampleRate in Hz.
	SampleRate int
	// Channels captured per frame, interleaved in every chunk.
	Channels int
	// FramesPerChunk is the number of frames delivered per Read.
	FramesPerChunk int
	// EchoCancellation, NoiseSuppression and AutoGainControl are
	// processing hints. Backends that cannot honor them ignore them.
	EchoCancellation bool
	NoiseSuppression bool
	AutoGainControl  bool
}

// Backend opens input streams on an audio device API. A Backend is
// shared by every session of an Engine, so implementations must be
// safe for concurrent use.
type Backend interface {
	Open(cfg StreamConfig) (Stream, error)
	Close() error
}

// Stream is one open device input stream.
type Stream interface {
	Start() error
	// Read blocks until the next chunk of interleaved float32 frames
	// is available. The returned slice may be reused by the next Read,
	// so callers keep a copy.
	Read() ([]float32, error)
	Stop() error
	Close() error
}
