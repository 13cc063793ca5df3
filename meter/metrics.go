package meter

import (
	"math"
	"math/cmplx"
)

// silenceEpsilon is the level below which the window counts as silent.
const silenceEpsilon = 1e-6

// Metrics is a point-in-time reading of the analysis window. It is
// recomputed wholesale on every call; nothing is retained between
// snapshots.
type Metrics struct {
	// Level is the mean absolute amplitude, in [0, 1].
	Level float64
	// Peak is the maximum absolute amplitude, in [0, 1].
	Peak float64
	// Frequency is the dominant frequency in Hz, 0 for silence.
	Frequency float64
	// Clarity is the peak to level ratio, 0 for silence.
	Clarity float64
}

// Metrics computes a snapshot over the current window. sampleRate is
// the rate of the samples fed to Write and scales the frequency bins.
func (a *Analyzer) Metrics(sampleRate int) Metrics {
	window := make([]float32, len(a.buf))
	a.snapshot(window)

	var m Metrics

	var sum float64
	for _, s := range window {
		abs := math.Abs(float64(s))
		sum += abs
		if abs > m.Peak {
			m.Peak = abs
		}
	}
	m.Level = sum / float64(len(window))

	if m.Level < silenceEpsilon {
		return m
	}

	m.Clarity = m.Peak / m.Level
	m.Frequency = a.dominantFrequency(window, sampleRate)

	return m
}

// dominantFrequency picks the strongest bin in the lower quarter of
// the positive spectrum, the band where voice lives. Bin index maps to
// Hz as bin * rate / windowSize.
func (a *Analyzer) dominantFrequency(window []float32, sampleRate int) float64 {
	n := len(window)

	spectrum := make([]complex128, n)
	for i, s := range window {
		spectrum[i] = complex(float64(s)*a.hann[i], 0)
	}

	fft(spectrum)

	limit := n / 8
	best := 0
	bestMag := 0.0
	for i := range limit {
		mag := cmplx.Abs(spectrum[i])
		if mag > bestMag {
			bestMag = mag
			best = i
		}
	}

	if bestMag < silenceEpsilon {
		return 0
	}

	return float64(best) * float64(sampleRate) / float64(n)
}
