// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"testing"
	"time"

	"github.com/ik5/voxlab/render"
)

func newTestController(t *testing.T, samples, rate, cssW, cssH int) (*Controller, *stubOutput, *render.Renderer) {
	t.Helper()

	out := &stubOutput{}
	p, err := NewPlayer(out, take(samples, rate))
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}

	renderer := render.NewRenderer(render.NewSurface(cssW, cssH, 1), render.Options{})
	c := NewController(p, renderer, 200)
	t.Cleanup(func() { _ = c.Close() })

	return c, out, renderer
}

func TestController_PointerDragScrubs(t *testing.T) {
	t.Parallel()

	// 10 seconds across a 100-column surface.
	c, _, renderer := newTestController(t, 80000, 8000, 100, 20)

	c.PointerDown(50)
	if !c.Scrubbing() {
		t.Fatal("Scrubbing() = false after PointerDown")
	}
	if got := c.player.Position(); got != 5*time.Second {
		t.Fatalf("Position() = %v, want 5s", got)
	}
	if got := renderer.Progress(); got != 0.5 {
		t.Fatalf("Progress() = %v, want 0.5", got)
	}

	c.PointerMove(75)
	if got := c.player.Position(); got != 7500*time.Millisecond {
		t.Fatalf("Position() = %v, want 7.5s", got)
	}

	// A drag keeps following the pointer outside the surface.
	c.PointerMove(-40)
	if got := c.player.Position(); got != 0 {
		t.Fatalf("Position() = %v after leftward overshoot, want 0", got)
	}
	c.PointerMove(250)
	if got := c.player.Position(); got != 10*time.Second {
		t.Fatalf("Position() = %v after rightward overshoot, want 10s", got)
	}

	c.PointerUp()
	if c.Scrubbing() {
		t.Fatal("Scrubbing() = true after PointerUp")
	}

	// Movement without a press does not seek.
	c.PointerMove(10)
	if got := c.player.Position(); got != 10*time.Second {
		t.Errorf("Position() = %v after idle move, want 10s", got)
	}
}

func TestController_KeyboardSeeks(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, 80000, 8000, 100, 20)

	steps := []struct {
		key  Key
		fine bool
		want time.Duration
	}{
		{KeyRight, false, 5 * time.Second},
		{KeyRight, false, 10 * time.Second}, // clamped at the end
		{KeyLeft, true, 9 * time.Second},
		{KeyLeft, false, 4 * time.Second},
		{KeyLeft, false, 0}, // clamped at the start
	}
	for _, s := range steps {
		if !c.HandleKey(s.key, s.fine) {
			t.Fatalf("HandleKey(%q, %v) not consumed", s.key, s.fine)
		}
		if got := c.player.Position(); got != s.want {
			t.Fatalf("Position() = %v after %q, want %v", got, s.key, s.want)
		}
	}

	if c.HandleKey(Key("x"), false) {
		t.Error("unknown key reported as consumed")
	}
	if got := c.player.Position(); got != 0 {
		t.Errorf("Position() = %v after unknown key, want 0", got)
	}
}

func TestController_HoverPreviewsWithoutSeeking(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, 80000, 8000, 100, 20)

	label, ok := c.HoverAt(25)
	if !ok || label != "0:02.5" {
		t.Fatalf("HoverAt(25) = %q, %v; want \"0:02.5\", true", label, ok)
	}
	if got := c.player.Position(); got != 0 {
		t.Errorf("hover moved the position to %v", got)
	}
	if held, ok := c.Hover(); !ok || held != label {
		t.Errorf("Hover() = %q, %v; want %q, true", held, ok, label)
	}

	// Past the right edge the preview clamps to the end of the take.
	if label, _ := c.HoverAt(500); label != "0:10.0" {
		t.Errorf("HoverAt(500) = %q, want \"0:10.0\"", label)
	}

	c.HoverEnd()
	if _, ok := c.Hover(); ok {
		t.Error("Hover() still set after HoverEnd")
	}
}

func TestController_ZeroWidthSurface(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, 8000, 8000, 0, 0)

	if label, ok := c.HoverAt(10); ok {
		t.Errorf("HoverAt on empty surface = %q, want no label", label)
	}

	c.PointerDown(10)
	if got := c.player.Position(); got != 0 {
		t.Errorf("Position() = %v after press on empty surface, want 0", got)
	}
	c.PointerUp()
}

func TestController_TransportDrivesLoop(t *testing.T) {
	t.Parallel()

	c, out, renderer := newTestController(t, 80000, 8000, 100, 20)

	c.Play()
	if !c.loop.Running() {
		t.Fatal("loop not running after Play")
	}
	if !c.player.Playing() {
		t.Fatal("player not playing after Play")
	}

	out.pull(8000) // one second in

	deadline := time.Now().Add(5 * time.Second)
	for renderer.Progress() < 0.1 {
		if time.Now().After(deadline) {
			t.Fatalf("progress stuck at %v", renderer.Progress())
		}
		time.Sleep(2 * time.Millisecond)
	}

	c.Pause()
	if c.loop.Running() {
		t.Fatal("loop still running after Pause")
	}
	if got := renderer.Progress(); got != 0.1 {
		t.Errorf("Progress() = %v after Pause, want 0.1", got)
	}

	c.Stop()
	if got := c.player.Position(); got != 0 {
		t.Errorf("Position() = %v after Stop, want 0", got)
	}
	if got := renderer.Progress(); got != 0 {
		t.Errorf("Progress() = %v after Stop, want 0", got)
	}
}

func TestController_ToggleFlips(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestController(t, 8000, 8000, 100, 20)

	c.Toggle()
	if !c.player.Playing() || !c.loop.Running() {
		t.Fatal("first Toggle did not start playback")
	}

	c.Toggle()
	if c.player.Playing() || c.loop.Running() {
		t.Fatal("second Toggle did not pause playback")
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00.0"},
		{2500 * time.Millisecond, "0:02.5"},
		{59940 * time.Millisecond, "0:59.9"},
		{61200 * time.Millisecond, "1:01.2"},
		{time.Hour, "60:00.0"},
		{-time.Second, "0:00.0"},
	}
	for _, tt := range tests {
		if got := formatTimestamp(tt.d); got != tt.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
