// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"sync"

	"github.com/ik5/voxlab/audio"
)

// Mode selects how a buffer is drawn.
type Mode int

const (
	// ModeWaveform draws a min/max amplitude envelope.
	ModeWaveform Mode = iota
	// ModeSpectral draws per-column energy bins through a color ramp.
	ModeSpectral
)

func (m Mode) String() string {
	switch m {
	case ModeWaveform:
		return "waveform"
	case ModeSpectral:
		return "spectral"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Zoom bounds; SetZoom clamps rather than errors.
const (
	MinZoom = 0.1
	MaxZoom = 10.0
)

// DefaultBins is the spectral column partition when Options leaves
// Bins unset.
const DefaultBins = 48

// particleSpawnRate is how many particles per second spawn at full
// level.
const particleSpawnRate = 60.0

// Options configures a Renderer. Zero fields take the documented
// defaults.
type Options struct {
	// Mode to draw in. Defaults to ModeWaveform.
	Mode Mode
	// Zoom factor, clamped to [MinZoom, MaxZoom]. Defaults to 1.
	Zoom float64
	// Bins is the spectral energy partition size. Defaults to
	// DefaultBins.
	Bins int
	// MaxParticles caps the particle pool. Defaults to
	// DefaultMaxParticles.
	MaxParticles int
	// Rand drives particle randomness. Defaults to a time-seeded
	// source; inject a seeded one for reproducible animation.
	Rand *rand.Rand
}

// Palette.
var (
	backgroundColor = color.RGBA{R: 18, G: 18, B: 26, A: 255}
	waveUnplayed    = color.RGBA{R: 96, G: 104, B: 148, A: 255}
	wavePlayed      = color.RGBA{R: 108, G: 194, B: 255, A: 255}
	playheadColor   = color.RGBA{R: 240, G: 244, B: 255, A: 255}
	particleColor   = color.RGBA{R: 170, G: 220, B: 255, A: 255}
	whiteColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Renderer draws a sample buffer onto a Surface in waveform or
// spectral mode, with playback progress, live-level color modulation
// and playhead particles. All methods are safe for concurrent use.
type Renderer struct {
	mu        sync.Mutex
	surface   *Surface
	buf       *audio.SampleBuffer
	mode      Mode
	zoom      float64
	bins      int
	progress  float64
	level     float64
	particles *ParticleSystem
}

// NewRenderer wraps surface with the given options and draws an
// initial empty frame.
func NewRenderer(surface *Surface, opts Options) *Renderer {
	if opts.Zoom == 0 {
		opts.Zoom = 1
	}
	if opts.Bins <= 0 {
		opts.Bins = DefaultBins
	}

	r := &Renderer{
		surface:   surface,
		mode:      opts.Mode,
		zoom:      clampZoom(opts.Zoom),
		bins:      opts.Bins,
		particles: NewParticleSystem(opts.MaxParticles, opts.Rand),
	}
	r.Redraw()

	return r
}

// Surface returns the raster the renderer draws to.
func (r *Renderer) Surface() *Surface { return r.surface }

// SetBuffer replaces the drawn buffer and redraws. The particle pool
// resets because the playhead context is gone.
func (r *Renderer) SetBuffer(buf *audio.SampleBuffer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf = buf
	r.progress = 0
	r.particles.Reset()
	r.redrawLocked()
}

// SetMode switches drawing modes and redraws.
func (r *Renderer) SetMode(m Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mode = m
	r.redrawLocked()
}

// Mode reports the current drawing mode.
func (r *Renderer) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mode
}

// SetZoom clamps z into [MinZoom, MaxZoom] and redraws immediately.
func (r *Renderer) SetZoom(z float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.zoom = clampZoom(z)
	r.redrawLocked()
}

// Zoom reports the effective zoom factor.
func (r *Renderer) Zoom() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.zoom
}

// SetProgress moves the playhead to p in [0, 1] of the buffer. The
// next frame picks it up; call Redraw for an immediate repaint.
func (r *Renderer) SetProgress(p float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = clamp01(p)
}

// Progress reports the playhead position in [0, 1].
func (r *Renderer) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.progress
}

// SetLevel feeds the live input/playback level in [0, 1]; it modulates
// waveform color intensity and the particle spawn rate.
func (r *Renderer) SetLevel(level float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.level = clamp01(level)
}

// Resize reallocates the surface at the new logical size and device
// pixel ratio, then redraws.
func (r *Renderer) Resize(cssW, cssH int, dpr float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.surface.Resize(cssW, cssH, dpr)
	r.redrawLocked()
}

// Frame advances particle animation by dt seconds and repaints. The
// frame loop calls this at its tick rate.
func (r *Renderer) Frame(dt float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dt > 0 {
		w, h := r.surface.Width(), r.surface.Height()
		x := 0.0
		if w > 1 {
			x = r.progress * float64(w-1)
		}
		r.particles.Step(dt, r.level*particleSpawnRate, x, float64(h)/2)
	}
	r.redrawLocked()
}

// Redraw repaints the current state without advancing animation.
func (r *Renderer) Redraw() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.redrawLocked()
}

func (r *Renderer) redrawLocked() {
	r.surface.Clear(backgroundColor)

	switch r.mode {
	case ModeSpectral:
		r.drawSpectral()
	default:
		r.drawWaveform()
	}

	r.particles.draw(r.surface, particleColor)
	r.drawPlayhead()
}

func (r *Renderer) drawPlayhead() {
	s := r.surface
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	x := int(r.progress * float64(w-1))
	glow := WithAlpha(playheadColor, 96)
	s.VLine(x-1, 0, h-1, glow)
	s.VLine(x+1, 0, h-1, glow)
	s.VLine(x, 0, h-1, playheadColor)
}

func (r *Renderer) samples() []float32 {
	if r.buf == nil {
		return nil
	}
	return r.buf.Data
}

func clampZoom(z float64) float64 {
	if math.IsNaN(z) || z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
