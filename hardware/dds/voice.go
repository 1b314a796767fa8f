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
	"github.com/jetsetilly/gopherpico/fixed"
)

// midpoint of the DAC's 12-bit range. the synthesized signal swings
// around this value because the DAC is unipolar.
const dcOffset = 2048

// Voice couples an oscillator to an envelope and formats the result for
// one DAC channel. One Voice per core; no field is ever touched from the
// cooperative scheduler on that core.
type Voice struct {
	Osc *Oscillator
	Env *Envelope

	// output scale factor (volume control)
	scale fixed.Fix15

	// DAC channel configuration word OR'd into every sample
	channel uint16
}

// NewVoice is the preferred method of initialisation for the Voice type.
func NewVoice(osc *Oscillator, env *Envelope, scale fixed.Fix15, channel uint16) *Voice {
	return &Voice{
		Osc:     osc,
		Env:     env,
		scale:   scale,
		channel: channel,
	}
}

// Tick performs one DDS step and returns the formatted DAC word. The
// sample is masked to the word's sample field, not clamped: an amplitude
// and scale that overflow the 12-bit range wrap exactly as the original
// masking did.
func (v *Voice) Tick() uint16 {
	s := v.Osc.Tick()
	amplitude := v.Env.Tick()

	out := fixed.ToInt(fixed.Mul(fixed.Mul(amplitude, v.scale), s)) + dcOffset

	return v.channel | (uint16(out) & 0x0fff)
}
