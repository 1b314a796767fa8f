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
	"sync/atomic"

	"github.com/jetsetilly/gopherpico/fixed"
)

// Oscillator is the phase accumulator of one voice. The accumulator wraps
// naturally at 2^32, which is what maps the phase onto one period of the
// sine table.
//
// The accumulator itself belongs exclusively to the core's tick handler.
// The increment is atomic so that the tuner can retune a running voice
// from outside the core; nothing else is shared.
type Oscillator struct {
	accum    uint32
	incr     atomic.Uint32
	tickRate uint32
}

// NewOscillator is the preferred method of initialisation for the
// Oscillator type. tickRate is the frequency of the core's timer in Hz.
func NewOscillator(tickRate uint32, frequency float64) *Oscillator {
	osc := &Oscillator{tickRate: tickRate}
	osc.SetFrequency(frequency)
	return osc
}

// SetFrequency changes the output frequency of the oscillator. Safe to
// call while the voice is running.
func (osc *Oscillator) SetFrequency(hz float64) {
	osc.incr.Store(uint32(hz * 4294967296.0 / float64(osc.tickRate)))
}

// Frequency returns the current output frequency in Hz.
func (osc *Oscillator) Frequency() float64 {
	return float64(osc.incr.Load()) * float64(osc.tickRate) / 4294967296.0
}

// Tick advances the phase by one timer period and returns the sine of the
// new phase. Must only be called from the core's tick handler.
func (osc *Oscillator) Tick() fixed.Fix15 {
	osc.accum += osc.incr.Load()
	return sine[osc.accum>>24]
}
