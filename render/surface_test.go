// SPDX-License-Identifier: EPL-2.0

package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestSurface_SizeScalesByDPR(t *testing.T) {
	t.Parallel()

	s := NewSurface(100, 50, 2)
	if s.Width() != 200 || s.Height() != 100 {
		t.Fatalf("size = %dx%d, want 200x100", s.Width(), s.Height())
	}
	if s.DPR() != 2 {
		t.Errorf("DPR() = %v, want 2", s.DPR())
	}

	s.Resize(10, 10, 1.5)
	if s.Width() != 15 || s.Height() != 15 {
		t.Errorf("after resize: %dx%d, want 15x15", s.Width(), s.Height())
	}
}

func TestSurface_NonPositiveDPRDefaultsToOne(t *testing.T) {
	t.Parallel()

	s := NewSurface(40, 30, 0)
	if s.Width() != 40 || s.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", s.Width(), s.Height())
	}
	if s.DPR() != 1 {
		t.Errorf("DPR() = %v, want 1", s.DPR())
	}
}

func TestSurface_NegativeSizeClampsToZero(t *testing.T) {
	t.Parallel()

	s := NewSurface(-8, -8, 1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}

	// Drawing on an empty raster must not panic.
	s.Clear(color.RGBA{1, 2, 3, 255})
	s.SetPixel(0, 0, color.RGBA{255, 0, 0, 255})
	s.FillRect(-4, -4, 10, 10, color.RGBA{255, 0, 0, 255})
	s.VLine(0, 5, -5, color.RGBA{255, 0, 0, 255})
}

func TestSurface_ResizeClearsContent(t *testing.T) {
	t.Parallel()

	s := NewSurface(4, 4, 1)
	s.SetPixel(1, 1, color.RGBA{255, 0, 0, 255})
	s.Resize(4, 4, 1)

	if got := s.RGBA().RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel survived resize: %v", got)
	}
}

func TestSurface_SetPixelOutOfBoundsDropped(t *testing.T) {
	t.Parallel()

	s := NewSurface(2, 2, 1)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		s.SetPixel(p[0], p[1], color.RGBA{255, 255, 255, 255})
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := s.RGBA().RGBAAt(x, y); got != (color.RGBA{}) {
				t.Errorf("pixel (%d,%d) = %v, want zero", x, y, got)
			}
		}
	}
}

func TestSurface_SetPixelBlendsAlpha(t *testing.T) {
	t.Parallel()

	s := NewSurface(1, 1, 1)
	s.Clear(color.RGBA{0, 0, 0, 255})
	s.SetPixel(0, 0, color.RGBA{255, 255, 255, 128})

	got := s.RGBA().RGBAAt(0, 0)
	want := color.RGBA{128, 128, 128, 255}
	if got != want {
		t.Errorf("blended pixel = %v, want %v", got, want)
	}

	// Zero alpha leaves the destination untouched.
	s.SetPixel(0, 0, color.RGBA{255, 0, 0, 0})
	if again := s.RGBA().RGBAAt(0, 0); again != want {
		t.Errorf("zero-alpha write changed pixel to %v", again)
	}
}

func TestSurface_FillRectClips(t *testing.T) {
	t.Parallel()

	s := NewSurface(4, 4, 1)
	s.Clear(color.RGBA{0, 0, 0, 255})
	red := color.RGBA{255, 0, 0, 255}
	s.FillRect(2, 2, 10, 10, red)

	painted := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.RGBA().RGBAAt(x, y) == red {
				painted++
				if x < 2 || y < 2 {
					t.Errorf("pixel (%d,%d) outside the rect was painted", x, y)
				}
			}
		}
	}
	if painted != 4 {
		t.Errorf("painted %d pixels, want 4", painted)
	}
}

func TestSurface_VLineEitherOrder(t *testing.T) {
	t.Parallel()

	s := NewSurface(1, 5, 1)
	blue := color.RGBA{0, 0, 255, 255}
	s.VLine(0, 3, 1, blue)

	for y := 0; y < 5; y++ {
		got := s.RGBA().RGBAAt(0, y)
		if y >= 1 && y <= 3 {
			if got != blue {
				t.Errorf("pixel (0,%d) = %v, want %v", y, got, blue)
			}
		} else if got != (color.RGBA{}) {
			t.Errorf("pixel (0,%d) = %v, want zero", y, got)
		}
	}
}

func TestSurface_EncodePNGRoundTrips(t *testing.T) {
	t.Parallel()

	s := NewSurface(3, 2, 1)
	s.Clear(color.RGBA{10, 20, 30, 255})
	s.SetPixel(2, 1, color.RGBA{200, 100, 50, 255})

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("decoded size = %dx%d, want 3x2", b.Dx(), b.Dy())
	}

	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("decoded pixel = (%d,%d,%d), want (200,100,50)", r>>8, g>>8, b>>8)
	}
}
