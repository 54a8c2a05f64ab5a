package luck

import "math/cmplx"

// fft computes the discrete Fourier transform of x in place using the
// iterative radix-2 Cooley-Tukey algorithm. len(x) must be a power of two.
// inverse selects the inverse transform, which is normalized here (every
// output is divided by len(x)), so callers need not rescale.
func fft(x []complex128, inverse bool) {
	n := len(x)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		angleStep := sign * 2 * 3.141592653589793 / float64(size)
		wStep := cmplx.Exp(complex(0, angleStep))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < half; k++ {
				u := x[start+k]
				v := x[start+k+half] * w
				x[start+k] = u + v
				x[start+k+half] = u - v
				w *= wStep
			}
		}
	}

	if inverse {
		for i := range x {
			x[i] /= complex(float64(n), 0)
		}
	}
}

// convolve returns the circular convolution of two real-valued PMFs of the
// same power-of-two length n via FFT multiplication. It equals the linear
// convolution when the combined support fits in n bins without wraparound.
func convolve(a, b []float64) []float64 {
	n := len(a)
	fa := make([]complex128, n)
	fb := make([]complex128, n)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	fft(fa, false)
	fft(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fft(fa, true)

	out := make([]float64, n)
	for i, v := range fa {
		out[i] = real(v)
	}
	return out
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
