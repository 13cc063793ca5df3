// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/voxlab/audio"
	"github.com/ik5/voxlab/formats/wav"
	"github.com/ik5/voxlab/meter"
)

// State identifies where a Session is in its take lifecycle.
type State int32

const (
	// StateIdle means no take is in progress.
	StateIdle State = iota
	// StateRecording means a take is accumulating chunks.
	StateRecording
	// StateProcessing means Stop is assembling the take.
	StateProcessing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateProcessing:
		return "processing"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Default capture parameters, applied by NewSession when the
// corresponding Config field is zero.
const (
	DefaultSampleRate = 48000
	DefaultChannels   = 1
)

// Config controls a capture Session.
type Config struct {
	// SampleRate in Hz. Defaults to 48000.
	SampleRate int
	// Channels to capture. Defaults to 1; multi-channel takes fold to
	// mono when the take is assembled.
	Channels int
	// FramesPerChunk is the device read size in frames. Defaults to
	// SampleRate/10, about 100ms of audio per chunk.
	FramesPerChunk int
	// MinDuration rejects takes shorter than this on Stop. Zero
	// accepts any length.
	MinDuration time.Duration
	// MaxDuration stops accumulation on its own once reached and marks
	// the take truncated. Zero means unbounded.
	MaxDuration time.Duration
	// EchoCancellation, NoiseSuppression and AutoGainControl are
	// passed to the backend as processing hints and kept here for
	// inspection. Backends that cannot honor them ignore them.
	EchoCancellation bool
	NoiseSuppression bool
	AutoGainControl  bool
}

func (c Config) withDefaults() Config {
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultSampleRate
	}
	if c.Channels <= 0 {
		c.Channels = DefaultChannels
	}
	if c.FramesPerChunk <= 0 {
		c.FramesPerChunk = c.SampleRate / 10
	}
	return c
}

// Session records one take at a time from the engine's input device.
//
// The lifecycle is an explicit state machine: StateIdle until Start,
// StateRecording while chunks accumulate, StateProcessing while Stop
// assembles the take, then StateIdle again. Start on a non-idle
// session fails with ErrSessionActive, so a session never holds two
// device streams.
type Session struct {
	cfg    Config
	engine *Engine

	state atomic.Int32

	mu        sync.Mutex
	stream    Stream
	chunks    [][]float32
	frames    int
	maxFrames int
	truncated bool
	done      chan struct{}
	loopDone  chan struct{}
	ended     chan struct{}

	analyzer *meter.Analyzer
}

// NewSession returns an idle session recording through engine. Zero
// fields of cfg take the documented defaults.
func NewSession(engine *Engine, cfg Config) *Session {
	cfg = cfg.withDefaults()

	s := &Session{
		cfg:      cfg,
		engine:   engine,
		analyzer: meter.NewAnalyzer(meter.DefaultWindowSize),
		ended:    make(chan struct{}),
	}
	if cfg.MaxDuration > 0 {
		s.maxFrames = int(int64(cfg.MaxDuration) * int64(cfg.SampleRate) / int64(time.Second))
		if s.maxFrames < 1 {
			s.maxFrames = 1
		}
	}

	return s
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Config returns the effective configuration, defaults applied.
func (s *Session) Config() Config {
	return s.cfg
}

// Done reports that the current take stopped accumulating on its own,
// because MaxDuration was reached, the context given to Start was
// canceled, or the device stream ended. The device stream is already
// released when the channel closes; Stop must still be called to
// collect the take. Each Start arms a fresh channel.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ended
}

// Level is the live mean absolute amplitude over the metering window.
func (s *Session) Level() float64 {
	return s.analyzer.Level()
}

// Snapshot computes live metrics over the metering window.
func (s *Session) Snapshot() meter.Metrics {
	return s.analyzer.Metrics(s.cfg.SampleRate)
}

// Elapsed is the audio duration accumulated so far in the current
// take.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.takeDurationLocked()
}

// Start opens the input device and begins accumulating chunks. Only an
// idle session can start; otherwise ErrSessionActive is returned. Any
// failure to acquire the device wraps ErrMicAccessDenied. Canceling
// ctx releases the device and signals Done; the partial take stays
// collectable through Stop.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if State(s.state.Load()) != StateIdle {
		return ErrSessionActive
	}

	backend, err := s.engine.backend()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMicAccessDenied, err)
	}

	stream, err := backend.Open(StreamConfig{
		SampleRate:       s.cfg.SampleRate,
		Channels:         s.cfg.Channels,
		FramesPerChunk:   s.cfg.FramesPerChunk,
		EchoCancellation: s.cfg.EchoCancellation,
		NoiseSuppression: s.cfg.NoiseSuppression,
		AutoGainControl:  s.cfg.AutoGainControl,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMicAccessDenied, err)
	}

	if err := stream.Start(); err != nil {
		if cerr := stream.Close(); cerr != nil {
			logrus.WithError(cerr).Debug("closing capture stream after failed start")
		}
		return fmt.Errorf("%w: %w", ErrMicAccessDenied, err)
	}

	s.stream = stream
	s.chunks = nil
	s.frames = 0
	s.truncated = false
	s.analyzer.Reset()

	s.done = make(chan struct{})
	s.loopDone = make(chan struct{})
	s.ended = make(chan struct{})

	s.setState(StateRecording)
	logrus.WithFields(logrus.Fields{
		"sample_rate":      s.cfg.SampleRate,
		"channels":         s.cfg.Channels,
		"frames_per_chunk": s.cfg.FramesPerChunk,
	}).Debug("capture session started")

	go s.readLoop(ctx, stream, s.done, s.loopDone, s.ended)

	return nil
}

// readLoop pulls chunks from the device until told to stop. It never
// touches s.stream directly; Stop owns the stream once the loop has
// exited.
func (s *Session) readLoop(ctx context.Context, stream Stream, done, loopDone, ended chan struct{}) {
	defer close(loopDone)

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			s.endTake(stream, ended, "context canceled")
			return
		default:
		}

		chunk, err := stream.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logrus.WithError(err).Debug("capture read failed")
			}
			s.endTake(stream, ended, "stream ended")
			return
		}

		if !s.appendChunk(stream, ended, chunk) {
			return
		}
	}
}

// appendChunk stores one chunk and reports whether the loop should
// keep reading. Reaching MaxDuration trims the chunk, releases the
// stream and signals ended.
func (s *Session) appendChunk(stream Stream, ended chan struct{}, chunk []float32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if State(s.state.Load()) != StateRecording || s.stream != stream {
		return false
	}

	// The backend may reuse its buffer between reads.
	c := make([]float32, len(chunk))
	copy(c, chunk)

	if s.maxFrames > 0 {
		if remaining := s.maxFrames - s.frames; len(c)/s.cfg.Channels > remaining {
			c = c[:remaining*s.cfg.Channels]
		}
	}

	if len(c) > 0 {
		s.chunks = append(s.chunks, c)
		s.frames += len(c) / s.cfg.Channels
		s.analyzer.Write(c)
	}

	if s.maxFrames > 0 && s.frames >= s.maxFrames {
		s.truncated = true
		s.releaseStreamLocked()
		close(ended)
		logrus.WithFields(logrus.Fields{
			"frames": s.frames,
		}).Debug("capture take reached max duration")
		return false
	}

	return true
}

// endTake releases the stream and signals ended when the take stops
// accumulating for any reason other than Stop.
func (s *Session) endTake(stream Stream, ended chan struct{}, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if State(s.state.Load()) != StateRecording || s.stream != stream {
		return
	}

	s.releaseStreamLocked()
	close(ended)
	logrus.WithFields(logrus.Fields{
		"reason": reason,
		"frames": s.frames,
	}).Debug("capture take ended")
}

// Stop finalizes the current take. Stopping an idle session is a
// silent no-op returning (nil, nil); so is stopping while another Stop
// is already processing. A take shorter than Config.MinDuration is
// discarded with ErrRecordingTooShort. In every case the device stream
// is released and the session returns to idle; the engine's backend
// stays alive for the next take.
func (s *Session) Stop() (*Recording, error) {
	s.mu.Lock()
	if State(s.state.Load()) != StateRecording {
		s.mu.Unlock()
		return nil, nil
	}

	s.setState(StateProcessing)
	done, loopDone := s.done, s.loopDone
	s.mu.Unlock()

	// Let the reader exit before touching the stream; Read must never
	// race with Close.
	close(done)
	<-loopDone

	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.setState(StateIdle)

	s.releaseStreamLocked()

	duration := s.takeDurationLocked()
	if s.cfg.MinDuration > 0 && duration < s.cfg.MinDuration {
		s.discardLocked()
		return nil, fmt.Errorf("%w: recorded %v, minimum is %v",
			ErrRecordingTooShort, duration.Round(time.Millisecond), s.cfg.MinDuration)
	}

	rec := s.assembleLocked()
	s.discardLocked()

	logrus.WithFields(logrus.Fields{
		"duration":  rec.Duration,
		"truncated": rec.Truncated,
	}).Debug("capture take finished")

	return rec, nil
}

// releaseStreamLocked stops and closes the device stream, best effort.
// Callers hold s.mu.
func (s *Session) releaseStreamLocked() {
	if s.stream == nil {
		return
	}
	if err := s.stream.Stop(); err != nil {
		logrus.WithError(err).Debug("stopping capture stream")
	}
	if err := s.stream.Close(); err != nil {
		logrus.WithError(err).Debug("closing capture stream")
	}
	s.stream = nil
}

func (s *Session) takeDurationLocked() time.Duration {
	return time.Duration(s.frames) * time.Second / time.Duration(s.cfg.SampleRate)
}

func (s *Session) assembleLocked() *Recording {
	samples := make([]float32, 0, s.frames*s.cfg.Channels)
	for _, c := range s.chunks {
		samples = append(samples, c...)
	}
	if s.cfg.Channels > 1 {
		samples = audio.MixDown(samples, s.cfg.Channels)
	}

	buf := audio.NewSampleBuffer(samples, s.cfg.SampleRate)

	return &Recording{
		Buffer:    buf,
		WAV:       wav.Encode(buf),
		Duration:  buf.Duration(),
		Truncated: s.truncated,
	}
}

func (s *Session) discardLocked() {
	s.chunks = nil
	s.frames = 0
	s.truncated = false
	s.analyzer.Reset()
}

func (s *Session) setState(next State) {
	prev := State(s.state.Swap(int32(next)))
	if prev == next {
		return
	}
	logrus.WithFields(logrus.Fields{
		"from": prev.String(),
		"to":   next.String(),
	}).Debug("capture session state change")
}
