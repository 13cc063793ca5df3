// SPDX-License-Identifier: EPL-2.0

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// Surface is an RGBA raster sized in CSS pixels scaled by a device
// pixel ratio. Drawing primitives clip to the raster bounds and blend
// with alpha-over, so callers never need their own bounds checks.
type Surface struct {
	img *image.RGBA
	w   int
	h   int
	dpr float64
}

// NewSurface allocates a surface of cssW x cssH logical pixels at the
// given device pixel ratio.
func NewSurface(cssW, cssH int, dpr float64) *Surface {
	s := &Surface{}
	s.Resize(cssW, cssH, dpr)
	return s
}

// Resize reallocates the raster at cssW x cssH logical pixels scaled by
// dpr and clears it to transparent. A non-positive dpr is treated as 1.
func (s *Surface) Resize(cssW, cssH int, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	w := int(math.Round(float64(cssW) * dpr))
	h := int(math.Round(float64(cssH) * dpr))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	s.w, s.h, s.dpr = w, h, dpr
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Width is the raster width in device pixels.
func (s *Surface) Width() int { return s.w }

// Height is the raster height in device pixels.
func (s *Surface) Height() int { return s.h }

// DPR is the device pixel ratio the surface was sized with.
func (s *Surface) DPR() float64 { return s.dpr }

// RGBA exposes the backing image, e.g. for encoding or inspection.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// Clear fills the whole raster with c, replacing alpha.
func (s *Surface) Clear(c color.RGBA) {
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			s.img.SetRGBA(x, y, c)
		}
	}
}

// SetPixel blends c over the pixel at (x, y). Out-of-bounds writes are
// dropped.
func (s *Surface) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	if c.A == 255 {
		s.img.SetRGBA(x, y, c)
		return
	}
	if c.A == 0 {
		return
	}

	dst := s.img.RGBAAt(x, y)
	a := uint32(c.A)
	inv := 255 - a
	s.img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(c.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(c.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(c.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	})
}

// FillRect blends c over the rectangle at (x, y) with the given size,
// clipped to the raster.
func (s *Surface) FillRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			s.SetPixel(px, py, c)
		}
	}
}

// VLine blends c over the vertical run from y0 to y1 inclusive, either
// order.
func (s *Surface) VLine(x, y0, y1 int, c color.RGBA) {
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		s.SetPixel(x, y, c)
	}
}

// EncodePNG writes the raster as a PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}
