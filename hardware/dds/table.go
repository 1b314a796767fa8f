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

package dds

import (
	"math"

	"github.com/jetsetilly/gopherpico/fixed"
)

// the sine table has 256 entries. the oscillator indexes it with the top
// eight bits of the phase accumulator, discarding the accumulator's finer
// phase resolution.
const tableSize = 256

// peak value of the table, chosen so that a full-amplitude voice spans the
// 12-bit range of the DAC once the DC offset is added.
const tablePeak = 2047

// sine is immutable after initialisation. computed once for the process
// lifetime, never regenerated.
var sine [tableSize]fixed.Fix15

func init() {
	for i := range sine {
		sine[i] = fixed.FromFloat(tablePeak * math.Sin(2*math.Pi*float64(i)/tableSize))
	}
}
