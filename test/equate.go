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

package test

import "testing"

// Equate is used to test equality between one value and another. Both
// values must be of the same type, something the compiler will enforce:
//
//	var r uint16
//	r = someFunction()
//	test.Equate(t, r, uint16(10))
func Equate[T comparable](t *testing.T, value, expectedValue T) {
	t.Helper()

	if value != expectedValue {
		t.Errorf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// Number is the type constraint for the Near() function. Note that
// unsigned types are not included, the difference calculation requires a
// signed representation.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Near is like Equate() but for numeric values that are allowed to deviate
// from the expected value by up to tolerance in either direction. Useful
// for fixed-point results where rounding differences accumulate.
func Near[T Number](t *testing.T, value, expectedValue, tolerance T) {
	t.Helper()

	diff := value - expectedValue
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Errorf("nearness of type %T failed (%v - wanted %v ± %v)", value, value, expectedValue, tolerance)
	}
}
