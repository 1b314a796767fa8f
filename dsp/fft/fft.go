// This file is part of GopherPico.
//
// GopherPico is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPico is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPico.  If not, see <https://www.gnu.org/licenses/>.

package fft

import (
	"math"
	"math/bits"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/fixed"
)

// Sentinel errors returned by New().
const (
	BadNumSamples = "fft: number of samples (%d) must be a power of two in the range 8 to 65536"
	BadSampleRate = "fft: sample rate (%v) must be positive"
)

// the lowest bins are dominated by the DC offset of the capture hardware.
// they are never candidates in the peak search.
const dcBins = 5

// beta coefficient for the alpha-max-plus-beta-min magnitude estimate.
var zeroPointFour = fixed.FromFloat(0.4)

// FFT transforms fixed-point sample buffers of a single preset length.
// It is not safe for concurrent use: the spectrum analyser owns one
// instance for the lifetime of the machine.
type FFT struct {
	numSamples int
	log2       int
	sampleRate float64

	// full-cycle sine table with numSamples entries. cosine lookups use an
	// offset of a quarter cycle
	sinewave []fixed.Fix15
}

// New is the preferred method of initialisation for the FFT type. The
// number of samples is validated here, before any scheduling begins: the
// transform itself is total over well-formed input and performs no checks.
func New(numSamples int, sampleRate float64) (*FFT, error) {
	if numSamples < 8 || numSamples > 65536 || bits.OnesCount(uint(numSamples)) != 1 {
		return nil, curated.Errorf(BadNumSamples, numSamples)
	}
	if sampleRate <= 0 {
		return nil, curated.Errorf(BadSampleRate, sampleRate)
	}

	f := &FFT{
		numSamples: numSamples,
		log2:       bits.TrailingZeros(uint(numSamples)),
		sampleRate: sampleRate,
		sinewave:   make([]fixed.Fix15, numSamples),
	}

	for i := 0; i < numSamples; i++ {
		f.sinewave[i] = fixed.FromFloat(math.Sin(2 * math.Pi * float64(i) / float64(numSamples)))
	}

	return f, nil
}

// NumSamples returns the transform length the FFT was created with.
func (f *FFT) NumSamples() int {
	return f.numSamples
}

// reverse returns m with its low log2(numSamples) bits reversed. the bit
// twiddling reverses all 16 bits and then shifts the result down.
//
// based on the "reverse an N-bit quantity in parallel" method found here:
// https://graphics.stanford.edu/~seander/bithacks.html
func (f *FFT) reverse(m int) int {
	mr := ((m >> 1) & 0x5555) | ((m & 0x5555) << 1)
	mr = ((mr >> 2) & 0x3333) | ((mr & 0x3333) << 2)
	mr = ((mr >> 4) & 0x0f0f) | ((mr & 0x0f0f) << 4)
	mr = ((mr >> 8) & 0x00ff) | ((mr & 0x00ff) << 8)
	return mr >> (16 - f.log2)
}

// Transform performs the in-place FFT of the complex sequence given by the
// re and im slices. Both slices must be of the preset length. On return
// the slices hold the transform in natural order.
//
// For more information about how the algorithm works, please see
// https://vanhunteradams.com/FFT/FFT.html
func (f *FFT) Transform(re, im []fixed.Fix15) {
	n := f.numSamples

	// bit-reversal permutation. indices whose reversal is not larger are
	// skipped, they have either been swapped already or are self-pairs
	for m := 1; m < n-1; m++ {
		mr := f.reverse(m)
		if mr <= m {
			continue
		}
		re[m], re[mr] = re[mr], re[m]
		im[m], im[mr] = im[mr], im[m]
	}

	// Danielson-Lanczos passes. adapted from code by Tom Roberts (1989)
	// and Malcolm Slaney (1994)
	//
	// L is the length of the sub-FFTs being combined, doubling every pass.
	// k positions the twiddle lookups in the sine table
	l := 1
	k := f.log2 - 1
	for l < n {
		istep := l << 1

		for m := 0; m < l; m++ {
			// trig values for this butterfly group, halved to keep the
			// running sum inside the fixed-point range
			j := m << k
			wr := f.sinewave[j+n/4] >> 1
			wi := -f.sinewave[j] >> 1

			for i := m; i < n; i += istep {
				j := i + l

				// complex product of the twiddle and element j
				tr := fixed.Mul(wr, re[j]) - fixed.Mul(wi, im[j])
				ti := fixed.Mul(wr, im[j]) + fixed.Mul(wi, re[j])

				// element i is halved to match the halved twiddle
				qr := re[i] >> 1
				qi := im[i] >> 1

				re[j] = qr - tr
				im[j] = qi - ti
				re[i] = qr + tr
				im[i] = qi + ti
			}
		}

		k--
		l = istep
	}
}

// Magnitudes overwrites the first half of re with the approximate
// magnitude of each bin, using alpha-max-plus-beta-min. Only the first
// N/2 bins carry information for real input so only those are computed.
// Returns the slice of magnitudes (re resliced to half length).
func (f *FFT) Magnitudes(re, im []fixed.Fix15) []fixed.Fix15 {
	half := f.numSamples >> 1

	for i := 0; i < half; i++ {
		r := fixed.Abs(re[i])
		q := fixed.Abs(im[i])
		if r >= q {
			re[i] = r + fixed.Mul(q, zeroPointFour)
		} else {
			re[i] = q + fixed.Mul(r, zeroPointFour)
		}
	}

	return re[:half]
}

// Peak returns the bin with the largest magnitude and that magnitude,
// ignoring the DC and near-DC bins. If no bin beats a magnitude of zero
// the returned bin is zero, a degenerate peak the caller can recognise by
// the zero magnitude.
func (f *FFT) Peak(mag []fixed.Fix15) (int, fixed.Fix15) {
	maxBin := 0
	maxMag := fixed.Fix15(0)

	for i := dcBins; i < len(mag); i++ {
		if mag[i] > maxMag {
			maxMag = mag[i]
			maxBin = i
		}
	}

	return maxBin, maxMag
}

// Frequency converts a bin index to Hz.
func (f *FFT) Frequency(bin int) float64 {
	return float64(bin) * f.sampleRate / float64(f.numSamples)
}
