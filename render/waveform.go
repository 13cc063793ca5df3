// SPDX-License-Identifier: EPL-2.0

package render

// minSamplesPerPixel keeps the column step positive no matter how far
// out the zoom and width drift.
const minSamplesPerPixel = 1e-9

// drawWaveform paints the min/max amplitude envelope, one column per
// device pixel, split into played and unplayed color at the progress
// point. Callers hold r.mu.
func (r *Renderer) drawWaveform() {
	s := r.surface
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}

	mid := float64(h-1) / 2
	data := r.samples()
	n := len(data)

	// Live level pushes the palette toward white.
	played := Lerp(wavePlayed, whiteColor, 0.35*r.level)
	unplayed := Lerp(waveUnplayed, whiteColor, 0.2*r.level)

	if n == 0 {
		s.FillRect(0, int(mid), w, 1, unplayed)
		return
	}

	spp := float64(n) / (float64(w) * r.zoom)
	if spp < minSamplesPerPixel {
		spp = minSamplesPerPixel
	}

	split := r.progress * float64(w)

	for x := 0; x < w; x++ {
		start := int(float64(x) * spp)
		if start >= n {
			// Zoomed past the data; keep the baseline going.
			s.SetPixel(x, int(mid), unplayed)
			continue
		}
		end := int(float64(x+1) * spp)
		if end > n {
			end = n
		}
		if end <= start {
			end = start + 1
		}

		lo, hi := envelope(data[start:end])

		c := unplayed
		if float64(x) < split {
			c = played
		}

		yTop := int(mid - float64(hi)*mid)
		yBot := int(mid - float64(lo)*mid)
		s.VLine(x, yTop, yBot, c)

		edge := Lerp(c, whiteColor, 0.45)
		s.SetPixel(x, yTop, edge)
		s.SetPixel(x, yBot, edge)
	}
}

func envelope(win []float32) (lo, hi float32) {
	lo, hi = win[0], win[0]
	for _, v := range win[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
