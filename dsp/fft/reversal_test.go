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
	"testing"

	"github.com/jetsetilly/gopherpico/test"
)

func TestReversalTable(t *testing.T) {
	f, err := New(8, 8000)
	test.ExpectSuccess(t, err)

	expected := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for m := 0; m < 8; m++ {
		test.Equate(t, f.reverse(m), expected[m])
	}
}

func TestReversalIsAnInvolution(t *testing.T) {
	f, err := New(1024, 10000)
	test.ExpectSuccess(t, err)

	for m := 0; m < 1024; m++ {
		test.Equate(t, f.reverse(f.reverse(m)), m)
	}
}
