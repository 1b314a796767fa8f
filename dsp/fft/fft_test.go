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

package fft_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/dsp/fft"
	"github.com/jetsetilly/gopherpico/fixed"
	"github.com/jetsetilly/gopherpico/test"
)

func TestBadConfigurations(t *testing.T) {
	_, err := fft.New(1000, 10000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fft.BadNumSamples))

	_, err = fft.New(4, 10000)
	test.ExpectFailure(t, err)

	_, err = fft.New(131072, 10000)
	test.ExpectFailure(t, err)

	_, err = fft.New(1024, 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fft.BadSampleRate))

	_, err = fft.New(1024, 10000)
	test.ExpectSuccess(t, err)
}

// tone fills re/im with a pure sine at the given bin.
func tone(n, bin int, amplitude float64) ([]fixed.Fix15, []fixed.Fix15) {
	re := make([]fixed.Fix15, n)
	im := make([]fixed.Fix15, n)
	for i := 0; i < n; i++ {
		re[i] = fixed.FromFloat(amplitude * math.Sin(2*math.Pi*float64(bin)*float64(i)/float64(n)))
	}
	return re, im
}

func TestSingleTonePeak(t *testing.T) {
	const (
		n  = 1024
		fs = 10000.0
	)

	f, err := fft.New(n, fs)
	test.ExpectSuccess(t, err)

	for _, bin := range []int{5, 7, 100, 235, 511} {
		re, im := tone(n, bin, 0.9)
		f.Transform(re, im)
		mag := f.Magnitudes(re, im)

		peak, peakMag := f.Peak(mag)
		test.Equate(t, peak, bin)
		test.ExpectSuccess(t, peakMag > 0)
		test.Equate(t, f.Frequency(peak), float64(bin)*fs/n)
	}
}

func TestToneBuriedInNoise(t *testing.T) {
	const n = 1024
	const bin = 147

	f, err := fft.New(n, 10000)
	test.ExpectSuccess(t, err)

	// a deterministic "noise" floor well below the tone amplitude
	re, im := tone(n, bin, 0.8)
	for i := 0; i < n; i++ {
		re[i] += fixed.FromFloat(0.05 * math.Sin(2*math.Pi*float64(i*i)/float64(n)))
	}

	f.Transform(re, im)
	peak, _ := f.Peak(f.Magnitudes(re, im))
	test.Equate(t, peak, bin)
}

func TestDCRejection(t *testing.T) {
	const n = 1024

	f, err := fft.New(n, 10000)
	test.ExpectSuccess(t, err)

	// energy at DC and in the near-DC bins only. the capture hardware
	// delivers unsigned samples so a large DC component is the norm
	re := make([]fixed.Fix15, n)
	im := make([]fixed.Fix15, n)
	for i := 0; i < n; i++ {
		v := 128.0
		for bin := 1; bin <= 4; bin++ {
			v += 20 * math.Sin(2*math.Pi*float64(bin)*float64(i)/float64(n))
		}
		re[i] = fixed.FromInt(int(v))
	}

	f.Transform(re, im)
	mag := f.Magnitudes(re, im)
	peak, peakMag := f.Peak(mag)

	// the peak is never reported inside the excluded region: either a bin
	// above it wins on leakage residue or the peak is degenerate
	test.ExpectSuccess(t, peak == 0 || peak > 4)

	// whatever won, it is dwarfed by the orders-of-magnitude larger
	// energy parked in the excluded bins
	test.ExpectSuccess(t, peakMag < mag[0])
}

func TestImpulse(t *testing.T) {
	const n = 256

	f, err := fft.New(n, 10000)
	test.ExpectSuccess(t, err)

	// a unit impulse transforms to equal energy in every bin. with the
	// per-pass halving the expected level is 1/n
	re := make([]fixed.Fix15, n)
	im := make([]fixed.Fix15, n)
	re[0] = fixed.One

	f.Transform(re, im)

	expected := fixed.Fix15(int32(fixed.One) / n)
	for i := 0; i < n; i++ {
		test.Near(t, re[i], expected, 4)
		test.Near(t, im[i], fixed.Fix15(0), 4)
	}
}

func TestMagnitudeApproximation(t *testing.T) {
	f, err := fft.New(8, 8000)
	test.ExpectSuccess(t, err)

	// alpha-max-plus-beta-min of (3,4): max + 0.4*min = 4 + 1.2 = 5.2
	// (the true magnitude happens to be 5)
	re := []fixed.Fix15{fixed.FromInt(3), 0, 0, 0, 0, 0, 0, 0}
	im := []fixed.Fix15{fixed.FromInt(-4), 0, 0, 0, 0, 0, 0, 0}
	mag := f.Magnitudes(re, im)
	test.Near(t, mag[0], fixed.FromFloat(5.2), 4)
}
