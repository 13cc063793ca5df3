// SPDX-License-Identifier: EPL-2.0

package render

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultFPS drives the frame loop when NewLoop gets a non-positive
// rate.
const DefaultFPS = 30

// Loop invokes a frame callback at a fixed rate on its own goroutine.
// Start and Stop are idempotent; at most one goroutine ever runs, and
// Stop joins it before returning, so no frame executes after Stop.
type Loop struct {
	mu      sync.Mutex
	fps     int
	frame   func(dt float64)
	running bool
	stop    chan struct{}
	stopped chan struct{}
}

// NewLoop prepares a loop calling frame every 1/fps seconds with the
// elapsed time since the previous frame.
func NewLoop(fps int, frame func(dt float64)) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}

	return &Loop{fps: fps, frame: frame}
}

// FPS reports the configured frame rate.
func (l *Loop) FPS() int { return l.fps }

// Running reports whether the frame goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.running
}

// Start launches the frame goroutine. Starting a running loop is a
// no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return
	}
	l.running = true
	l.stop = make(chan struct{})
	l.stopped = make(chan struct{})

	logrus.WithField("fps", l.fps).Debug("render loop started")
	go l.run(l.stop, l.stopped)
}

// Stop halts the frame goroutine and waits for it to exit. Stopping an
// idle loop is a no-op.
func (l *Loop) Stop() {
	l.mu.Lock()
	stopped := l.stopped
	if l.running {
		l.running = false
		close(l.stop)
		logrus.Debug("render loop stopped")
	}
	l.mu.Unlock()

	if stopped != nil {
		<-stopped
	}
}

func (l *Loop) run(stop, stopped chan struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(time.Second / time.Duration(l.fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			l.frame(now.Sub(last).Seconds())
			last = now
		}
	}
}
