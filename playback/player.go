// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/sirupsen/logrus"

	"github.com/ik5/voxlab/audio"
)

// Player plays one mono take through an Output. The take is wrapped in
// a beep StreamSeeker under a beep.Ctrl; the pipeline is queued once on
// the first Play and stays in the sink until Close, so pause, stop and
// seek only flip state under the output lock.
type Player struct {
	mu     sync.Mutex
	out    Output
	buf    *audio.SampleBuffer
	src    *bufferStreamer
	ctrl   *beep.Ctrl
	rate   int
	queued bool
}

// NewPlayer wraps buf for playback through out. A nil out uses the
// beep speaker. The output is initialized at the take's sample rate.
func NewPlayer(out Output, buf *audio.SampleBuffer) (*Player, error) {
	if buf == nil {
		return nil, ErrNoBuffer
	}
	if buf.Rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSampleRate, buf.Rate)
	}
	if out == nil {
		out = NewSpeakerOutput()
	}

	if err := out.Init(buf.Rate); err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}

	src := &bufferStreamer{data: buf.Data}

	return &Player{
		out:  out,
		buf:  buf,
		src:  src,
		ctrl: &beep.Ctrl{Streamer: sustain{src: src}, Paused: true},
		rate: buf.Rate,
	}, nil
}

// Play starts or continues playback from the current position. Playing
// again while already playing is a no-op.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.Lock()
	p.ctrl.Paused = false
	p.out.Unlock()

	if !p.queued {
		p.out.Play(p.ctrl)
		p.queued = true
	}

	logrus.WithField("position", p.positionLocked()).Debug("playback started")
}

// Pause halts playback, keeping the position.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()

	logrus.WithField("position", p.positionLocked()).Debug("playback paused")
}

// Resume continues a paused take from where it stopped.
func (p *Player) Resume() { p.Play() }

// Stop halts playback and rewinds to the start.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.Lock()
	p.ctrl.Paused = true
	_ = p.src.Seek(0)
	p.out.Unlock()

	logrus.Debug("playback stopped")
}

// Playing reports whether the pipeline is queued and unpaused.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.queued {
		return false
	}

	p.out.Lock()
	paused := p.ctrl.Paused
	p.out.Unlock()

	return !paused
}

// Position is the playback offset from the start of the take. It never
// decreases while playing; only Seek and Stop move it backwards.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	p.out.Lock()
	pos := p.src.Position()
	p.out.Unlock()

	return time.Duration(pos) * time.Second / time.Duration(p.rate)
}

// Duration is the length of the wrapped take.
func (p *Player) Duration() time.Duration {
	return time.Duration(len(p.buf.Data)) * time.Second / time.Duration(p.rate)
}

// Seek moves the position to d, clamped to [0, Duration].
func (p *Player) Seek(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if d < 0 {
		d = 0
	}

	frame := int(int64(d) * int64(p.rate) / int64(time.Second))
	if frame > p.src.Len() {
		frame = p.src.Len()
	}

	p.out.Lock()
	_ = p.src.Seek(frame)
	p.out.Unlock()
}

// Close drops the pipeline and shuts the output down.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.out.Clear()
	p.queued = false

	return p.out.Close()
}
