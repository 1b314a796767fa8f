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

// Package fft implements an in-place radix-2 decimation-in-time FFT over
// Q16.15 fixed-point sequences, along with the magnitude approximation and
// peak-bin search used by the spectrum analyser.
//
// The transform keeps the running sums inside the fixed-point range by
// halving the twiddle factors at every combination pass, rather than
// normalising afterwards. The output is therefore the unnormalised DFT
// scaled down by N. Trigonometric values come from a full-cycle sine table
// computed once at initialisation; the cosine is read from the same table
// at a quarter-cycle offset.
//
// Magnitudes use the alpha-max-plus-beta-min approximation (beta = 0.4)
// which avoids a square root at the cost of a few percent of error. It is
// not a true magnitude and results will not equate with one.
package fft
