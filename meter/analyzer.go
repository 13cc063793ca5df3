package meter

import (
	"math"
	"sync"
)

// DefaultWindowSize is the analysis window used when none is requested.
const DefaultWindowSize = 2048

// Analyzer accumulates the most recent samples of a live stream in a
// fixed ring and computes Metrics snapshots over them. Writers and
// readers may run on different goroutines; snapshots copy the window
// under the lock and do the heavy work outside it.
type Analyzer struct {
	mu   sync.Mutex
	buf  []float32
	pos  int
	hann []float64
}

// NewAnalyzer creates an analyzer with at least windowSize samples of
// history. The window is rounded up to a power of two; windowSize <= 0
// selects DefaultWindowSize.
func NewAnalyzer(windowSize int) *Analyzer {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	size := 1
	for size < windowSize {
		size <<= 1
	}

	return &Analyzer{
		buf:  make([]float32, size),
		hann: hannWindow(size),
	}
}

// WindowSize returns the actual window size in samples.
func (a *Analyzer) WindowSize() int { return len(a.buf) }

// Write appends samples to the window, overwriting the oldest.
func (a *Analyzer) Write(samples []float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	mask := len(a.buf) - 1
	for _, s := range samples {
		a.buf[a.pos] = s
		a.pos = (a.pos + 1) & mask
	}
}

// Reset clears the window, returning the analyzer to silence.
func (a *Analyzer) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	clear(a.buf)
	a.pos = 0
}

// snapshot copies the window oldest-first into dst, which must hold
// WindowSize samples. Positions never written read as zero.
func (a *Analyzer) snapshot(dst []float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := copy(dst, a.buf[a.pos:])
	copy(dst[n:], a.buf[:a.pos])
}

// Level returns the mean absolute amplitude of the current window,
// a cheap check that skips the spectral work of Metrics.
func (a *Analyzer) Level() float64 {
	window := make([]float32, len(a.buf))
	a.snapshot(window)

	var sum float64
	for _, s := range window {
		sum += math.Abs(float64(s))
	}

	return sum / float64(len(window))
}
