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

// Package fixed implements the Q16.15 signed fixed-point format used
// throughout the DSP core. A Fix15 value is a 32-bit integer representing
// the real value multiplied by 2^15.
//
// The arithmetic reproduces the behaviour of the original firmware
// exactly. In particular, multiplication widens to 64 bits internally and
// then truncates to 32 bits: results beyond the 32-bit range wrap rather
// than saturate. Every other package in the core depends on that wrapping
// and it must not be "fixed".
//
// No floating point is used on the tick path. The float conversions exist
// for initialisation (table generation, frequency setting) and for
// reporting.
package fixed

import "github.com/jetsetilly/gopherpico/curated"

// Fix15 is a Q16.15 signed fixed-point number.
type Fix15 int32

// number of fractional bits in a Fix15.
const fracBits = 15

// One is the Fix15 representation of the integer 1.
const One = Fix15(1 << fracBits)

// Sentinel error returned by Div().
const DivideByZero = "fixed point: divide by zero"

// FromInt converts an integer to a Fix15.
func FromInt(v int) Fix15 {
	return Fix15(v << fracBits)
}

// FromFloat converts a float to a Fix15, discarding precision beyond 2^-15.
func FromFloat(v float64) Fix15 {
	return Fix15(v * 32768.0)
}

// ToInt truncates a Fix15 to its integer part.
func ToInt(v Fix15) int {
	return int(v >> fracBits)
}

// ToFloat converts a Fix15 to the nearest float.
func ToFloat(v Fix15) float64 {
	return float64(v) / 32768.0
}

// Mul multiplies two Fix15 values. The product is computed in 64 bits and
// truncated to 32; it wraps on overflow.
func Mul(a, b Fix15) Fix15 {
	return Fix15((int64(a) * int64(b)) >> fracBits)
}

// Div divides a by b. The dividend is scaled by 2^15 before the integer
// division so no precision is lost to the quotient's fractional part.
// Returns a DivideByZero error if b is zero.
func Div(a, b Fix15) (Fix15, error) {
	if b == 0 {
		return 0, curated.Errorf(DivideByZero)
	}
	return Fix15((int64(a) << fracBits) / int64(b)), nil
}

// Abs returns the absolute value of v.
func Abs(v Fix15) Fix15 {
	if v < 0 {
		return -v
	}
	return v
}
