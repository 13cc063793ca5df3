package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// portAudioBackend captures from the default input device. The
// processing hints in StreamConfig have no PortAudio equivalent and
// are ignored.
type portAudioBackend struct{}

// newPortAudioBackend initializes the PortAudio runtime. The matching
// Terminate happens in Close.
func newPortAudioBackend() (Backend, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("initializing portaudio: %w", err)
	}

	return portAudioBackend{}, nil
}

func (portAudioBackend) Open(cfg StreamConfig) (Stream, error) {
	buf := make([]float32, cfg.FramesPerChunk*cfg.Channels)

	stream, err := portaudio.OpenDefaultStream(cfg.Channels, 0,
		float64(cfg.SampleRate), cfg.FramesPerChunk, buf)
	if err != nil {
		return nil, fmt.Errorf("opening default input stream: %w", err)
	}

	return &portAudioStream{stream: stream, buf: buf}, nil
}

func (portAudioBackend) Close() error {
	return portaudio.Terminate()
}

type portAudioStream struct {
	stream *portaudio.Stream
	buf    []float32
}

func (s *portAudioStream) Start() error { return s.stream.Start() }

// Read blocks until the device fills one chunk. The slice it returns
// is the stream's own buffer, overwritten by the next Read.
func (s *portAudioStream) Read() ([]float32, error) {
	if err := s.stream.Read(); err != nil {
		return nil, err
	}

	return s.buf, nil
}

func (s *portAudioStream) Stop() error  { return s.stream.Stop() }
func (s *portAudioStream) Close() error { return s.stream.Close() }
