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

package fixed_test

import (
	"testing"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/fixed"
	"github.com/jetsetilly/gopherpico/test"
)

func TestConversions(t *testing.T) {
	test.Equate(t, fixed.FromInt(1), fixed.One)
	test.Equate(t, fixed.FromInt(0), fixed.Fix15(0))
	test.Equate(t, fixed.FromInt(-3), fixed.Fix15(-3<<15))
	test.Equate(t, fixed.ToInt(fixed.FromInt(2047)), 2047)

	test.Equate(t, fixed.FromFloat(0.5), fixed.Fix15(16384))
	test.Equate(t, fixed.ToFloat(fixed.Fix15(16384)), 0.5)
	test.Equate(t, fixed.FromFloat(-1.0), fixed.Fix15(-32768))

	// truncation towards zero for positive values
	test.Equate(t, fixed.ToInt(fixed.FromFloat(2.75)), 2)
}

// mulModel computes the expected Mul result independently: the exact
// 64-bit product shifted right 15 bits, reduced modulo 2^32 and
// reinterpreted as signed.
func mulModel(a, b fixed.Fix15) fixed.Fix15 {
	p := (int64(a) * int64(b)) >> 15
	return fixed.Fix15(int32(uint32(uint64(p))))
}

func TestMul(t *testing.T) {
	test.Equate(t, fixed.Mul(fixed.One, fixed.One), fixed.One)
	test.Equate(t, fixed.Mul(fixed.FromFloat(0.5), fixed.FromFloat(0.5)), fixed.FromFloat(0.25))
	test.Equate(t, fixed.Mul(fixed.FromInt(100), fixed.FromFloat(0.25)), fixed.FromInt(25))
	test.Equate(t, fixed.Mul(fixed.FromInt(-4), fixed.FromFloat(0.5)), fixed.FromInt(-2))

	vals := []fixed.Fix15{
		0, 1, -1, fixed.One, -fixed.One,
		fixed.FromFloat(0.4), fixed.FromInt(2047), fixed.FromInt(-2048),
		fixed.FromInt(30000), fixed.Fix15(0x7fffffff), fixed.Fix15(-0x80000000),
	}
	for _, a := range vals {
		for _, b := range vals {
			test.Equate(t, fixed.Mul(a, b), mulModel(a, b))
		}
	}
}

func TestMulWraps(t *testing.T) {
	// 300 * 300 = 90000 which is outside the ±65536 range of Q16.15. the
	// result must wrap, not saturate
	r := fixed.Mul(fixed.FromInt(300), fixed.FromInt(300))
	test.Equate(t, r, mulModel(fixed.FromInt(300), fixed.FromInt(300)))
	test.ExpectFailure(t, r == fixed.Fix15(0x7fffffff))

	// wrapping is symmetric for negative results
	r = fixed.Mul(fixed.FromInt(-300), fixed.FromInt(300))
	test.Equate(t, r, mulModel(fixed.FromInt(-300), fixed.FromInt(300)))
	test.ExpectFailure(t, r == fixed.Fix15(-0x80000000))
}

func TestDiv(t *testing.T) {
	r, err := fixed.Div(fixed.One, fixed.FromInt(2))
	test.ExpectSuccess(t, err)
	test.Equate(t, r, fixed.FromFloat(0.5))

	// the envelope increment calculation from the synthesizer: 1/3000
	r, err = fixed.Div(fixed.One, fixed.FromInt(3000))
	test.ExpectSuccess(t, err)
	test.Equate(t, r, fixed.Fix15((int64(fixed.One)<<15)/int64(fixed.FromInt(3000))))

	r, err = fixed.Div(fixed.FromInt(-10), fixed.FromInt(4))
	test.ExpectSuccess(t, err)
	test.Equate(t, r, fixed.FromFloat(-2.5))
}

func TestDivByZero(t *testing.T) {
	_, err := fixed.Div(fixed.One, 0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fixed.DivideByZero))
}

func TestAbs(t *testing.T) {
	test.Equate(t, fixed.Abs(fixed.FromInt(-5)), fixed.FromInt(5))
	test.Equate(t, fixed.Abs(fixed.FromInt(5)), fixed.FromInt(5))
	test.Equate(t, fixed.Abs(0), fixed.Fix15(0))
}
