// SPDX-License-Identifier: EPL-2.0

package render

import "image/color"

// drawSpectral paints each column as a vertical stack of energy bins:
// the column's sample window is partitioned into r.bins slices and each
// slice's mean absolute energy runs through the hue/lightness ramp.
// No transform is involved; this is a time-domain energy view. Callers
// hold r.mu.
func (r *Renderer) drawSpectral() {
	s := r.surface
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	data := r.samples()
	n := len(data)
	if n == 0 {
		s.FillRect(0, h/2, w, 1, waveUnplayed)
		return
	}

	spp := float64(n) / (float64(w) * r.zoom)
	if spp < minSamplesPerPixel {
		spp = minSamplesPerPixel
	}

	bins := r.bins
	binH := float64(h) / float64(bins)

	for x := 0; x < w; x++ {
		start := int(float64(x) * spp)
		if start >= n {
			continue
		}
		end := int(float64(x+1) * spp)
		if end > n {
			end = n
		}
		if end <= start {
			end = start + 1
		}
		window := data[start:end]

		for b := 0; b < bins; b++ {
			bs := b * len(window) / bins
			be := (b + 1) * len(window) / bins
			if bs >= len(window) {
				break
			}
			if be <= bs {
				be = bs + 1
			}

			y0 := h - int(float64(b+1)*binH)
			y1 := h - int(float64(b)*binH) - 1
			s.FillRect(x, y0, 1, y1-y0+1, spectralColor(meanAbs(window[bs:be])))
		}
	}
}

func meanAbs(win []float32) float64 {
	if len(win) == 0 {
		return 0
	}
	var sum float64
	for _, v := range win {
		if v < 0 {
			v = -v
		}
		sum += float64(v)
	}
	return sum / float64(len(win))
}

// spectralColor maps bin energy onto the hue/lightness ramp: quiet
// bins sit deep blue and dark, loud bins run warm and bright.
func spectralColor(energy float64) color.RGBA {
	e := clamp01(energy)
	return HSL(250-230*e, 0.75, 0.12+0.6*e)
}
