package meter

import "math"

// fft performs an in-place radix-2 Cooley-Tukey transform.
// len(data) must be a power of two.
func fft(data []complex128) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Bit-reverse ordering
	for i, j := 0, 0; i < n; i++ {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
	}

	// Butterfly passes
	for size := 2; size <= n; size <<= 1 {
		halfSize := size >> 1
		step := 2 * math.Pi / float64(size)
		for i := 0; i < n; i += size {
			for j := 0; j < halfSize; j++ {
				angle := float64(j) * step
				u := data[i+j]
				v := data[i+j+halfSize] * complex(math.Cos(angle), -math.Sin(angle))
				data[i+j] = u + v
				data[i+j+halfSize] = u - v
			}
		}
	}
}

// hannWindow returns Hann coefficients for size n, applied before the
// transform to reduce spectral leakage at the window edges.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}
