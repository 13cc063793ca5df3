// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/voxlab/render"
)

// Key names a transport key the host forwards to HandleKey.
type Key string

const (
	// KeyLeft seeks backwards.
	KeyLeft Key = "left"
	// KeyRight seeks forwards.
	KeyRight Key = "right"
)

// Seek steps for HandleKey; the fine modifier selects the small one.
const (
	SeekStep     = 5 * time.Second
	FineSeekStep = time.Second
)

// Controller binds a Player to a Renderer: it maps pointer and key
// input to seeks, previews hover timestamps, and drives the render
// loop from the transport so the playhead tracks playback.
type Controller struct {
	player   *Player
	renderer *render.Renderer
	loop     *render.Loop

	mu        sync.Mutex
	scrubbing bool
	hover     string
	hoverSet  bool
}

// NewController wires player and renderer together with a frame loop at
// the given FPS (non-positive picks render.DefaultFPS).
func NewController(player *Player, renderer *render.Renderer, fps int) *Controller {
	c := &Controller{
		player:   player,
		renderer: renderer,
	}
	c.loop = render.NewLoop(fps, c.frame)
	c.syncProgress()

	return c
}

// frame runs on the loop goroutine; it must not touch controller
// state, or Stop's join could deadlock against an input handler.
func (c *Controller) frame(dt float64) {
	c.syncProgress()
	c.renderer.Frame(dt)
}

func (c *Controller) syncProgress() {
	dur := c.player.Duration()
	if dur <= 0 {
		c.renderer.SetProgress(0)
		return
	}
	c.renderer.SetProgress(float64(c.player.Position()) / float64(dur))
}

// Play starts playback and the frame loop.
func (c *Controller) Play() {
	c.player.Play()
	c.loop.Start()
}

// Pause halts playback, stops the frame loop and paints one final
// frame at the held position.
func (c *Controller) Pause() {
	c.player.Pause()
	c.loop.Stop()
	c.syncProgress()
	c.renderer.Redraw()
}

// Stop rewinds playback and repaints with the playhead at the start.
func (c *Controller) Stop() {
	c.player.Stop()
	c.loop.Stop()
	c.syncProgress()
	c.renderer.Redraw()
}

// Toggle plays when paused and pauses when playing.
func (c *Controller) Toggle() {
	if c.player.Playing() {
		c.Pause()
		return
	}
	c.Play()
}

// PointerDown begins a scrub and seeks to the pressed column.
func (c *Controller) PointerDown(x float64) {
	c.mu.Lock()
	c.scrubbing = true
	c.mu.Unlock()

	c.seekToPixel(x)
}

// PointerMove keeps seeking while a scrub is active, even when x has
// left the surface; outside a scrub it does nothing.
func (c *Controller) PointerMove(x float64) {
	c.mu.Lock()
	active := c.scrubbing
	c.mu.Unlock()

	if active {
		c.seekToPixel(x)
	}
}

// PointerUp ends the scrub.
func (c *Controller) PointerUp() {
	c.mu.Lock()
	c.scrubbing = false
	c.mu.Unlock()
}

// Scrubbing reports whether a drag is in progress.
func (c *Controller) Scrubbing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.scrubbing
}

// HandleKey seeks on the transport keys and reports whether the key
// was consumed, so the host can suppress its default.
func (c *Controller) HandleKey(key Key, fine bool) bool {
	step := SeekStep
	if fine {
		step = FineSeekStep
	}

	switch key {
	case KeyLeft:
		c.seekBy(-step)
	case KeyRight:
		c.seekBy(step)
	default:
		return false
	}

	return true
}

// HoverAt previews the timestamp under x as an "m:ss.t" label without
// seeking. A zero-width surface yields no label.
func (c *Controller) HoverAt(x float64) (string, bool) {
	at, ok := c.timeAt(x)
	if !ok {
		return "", false
	}

	label := formatTimestamp(at)
	c.mu.Lock()
	c.hover, c.hoverSet = label, true
	c.mu.Unlock()

	return label, true
}

// HoverEnd clears the hover preview.
func (c *Controller) HoverEnd() {
	c.mu.Lock()
	c.hover, c.hoverSet = "", false
	c.mu.Unlock()
}

// Hover returns the current preview label, if any.
func (c *Controller) Hover() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hover, c.hoverSet
}

// Close stops the loop and shuts the player down.
func (c *Controller) Close() error {
	c.loop.Stop()

	return c.player.Close()
}

func (c *Controller) seekToPixel(x float64) {
	at, ok := c.timeAt(x)
	if !ok {
		return
	}

	c.player.Seek(at)
	c.syncProgress()
	c.renderer.Redraw()

	logrus.WithFields(logrus.Fields{
		"x":  x,
		"at": at,
	}).Debug("scrub seek")
}

func (c *Controller) seekBy(delta time.Duration) {
	c.player.Seek(c.player.Position() + delta)
	c.syncProgress()
	c.renderer.Redraw()
}

// timeAt maps a surface column to a take offset, clamped to the take.
// It refuses a zero-width surface instead of dividing by it.
func (c *Controller) timeAt(x float64) (time.Duration, bool) {
	width := c.renderer.Surface().Width()
	if width <= 0 {
		return 0, false
	}

	frac := x / float64(width)
	if math.IsNaN(frac) || frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	return time.Duration(frac * float64(c.player.Duration())), true
}

// formatTimestamp renders d as "m:ss.t", minutes unpadded.
func formatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	minutes := d / time.Minute
	rest := d - minutes*time.Minute
	seconds := rest / time.Second
	tenths := (rest - seconds*time.Second) / (time.Second / 10)

	return fmt.Sprintf("%d:%02d.%d", minutes, seconds, tenths)
}
