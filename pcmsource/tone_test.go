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

package pcmsource_test

import (
	"testing"

	"github.com/jetsetilly/gopherpico/pcmsource"
	"github.com/jetsetilly/gopherpico/test"
)

func TestToneRange(t *testing.T) {
	src := pcmsource.NewTone(10000, 250, false)

	p := make([]uint8, 400)
	test.ExpectSuccess(t, src.Fill(p))

	var min, max uint8 = 255, 0
	var sum int
	for _, s := range p {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
		sum += int(s)
	}

	// peaks reach the configured amplitude either side of centre
	test.Near(t, int(min), 28, 1)
	test.Near(t, int(max), 228, 1)

	// an integral number of cycles averages to the centre value
	test.Near(t, sum/len(p), 128, 1)
}

func TestTonePhaseContinuity(t *testing.T) {
	// one long fill and two half fills produce the same stream
	one := pcmsource.NewTone(10000, 333, false)
	two := pcmsource.NewTone(10000, 333, false)

	whole := make([]uint8, 512)
	test.ExpectSuccess(t, one.Fill(whole))

	halves := make([]uint8, 512)
	test.ExpectSuccess(t, two.Fill(halves[:256]))
	test.ExpectSuccess(t, two.Fill(halves[256:]))

	for i := range whole {
		test.Equate(t, halves[i], whole[i])
	}
}
