// SPDX-License-Identifier: EPL-2.0

package capture

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Engine owns the process-wide capture backend. The backend
// initializes lazily when the first session starts and is shared by
// every session after that until Close tears it down.
type Engine struct {
	mu      sync.Mutex
	factory func() (Backend, error)
	active  Backend
}

// NewEngine returns an Engine backed by PortAudio.
func NewEngine() *Engine {
	return &Engine{factory: newPortAudioBackend}
}

// NewEngineWith returns an Engine that builds its backend with
// factory. Tests use it to substitute fake devices.
func NewEngineWith(factory func() (Backend, error)) *Engine {
	return &Engine{factory: factory}
}

// backend returns the shared backend, initializing it on first use.
func (e *Engine) backend() (Backend, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return e.active, nil
	}

	b, err := e.factory()
	if err != nil {
		return nil, err
	}
	e.active = b
	logrus.Debug("capture backend initialized")

	return b, nil
}

// Close shuts the shared backend down. Closing an engine whose backend
// never initialized is a no-op; starting a session afterwards
// initializes a fresh backend.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active == nil {
		return nil
	}
	b := e.active
	e.active = nil
	logrus.Debug("capture backend closed")

	return b.Close()
}
