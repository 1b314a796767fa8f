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

// Package dac defines the contract between the synthesis tick and the DAC
// peripheral. A DAC word is a 16-bit value: the low 12 bits are the sample
// and the high bits select and configure the output channel, exactly as
// the MCP4822 expects them on the wire.
//
// Implementations of the DAC interface are expected to buffer at least one
// pending write. The tick handler pushes and moves on; it never waits for
// the conversion to complete.
package dac

// Channel configuration words. OR one of these with a 12-bit sample to
// form a DAC word. (Gain 1x, channel active; see the MCP4822 datasheet.)
const (
	ConfigChanA uint16 = 0x3000
	ConfigChanB uint16 = 0xb000
)

// masks for the fields of a DAC word.
const (
	SampleMask  uint16 = 0x0fff
	channelMask uint16 = 0x8000
)

// DAC is how the synthesis tick reaches the audio output peripheral.
type DAC interface {
	// Push one DAC word. An error means the peripheral could not accept
	// the write; the tick handler logs and drops, it never retries.
	Push(word uint16) error
}

// Split separates a DAC word into its channel (0 for A, 1 for B) and its
// 12-bit sample value.
func Split(word uint16) (int, uint16) {
	if word&channelMask == 0 {
		return 0, word & SampleMask
	}
	return 1, word & SampleMask
}

// Discard is a DAC that accepts and drops every word. Used for headless
// and benchmark runs.
type Discard struct{}

// Push implements the DAC interface.
func (d Discard) Push(_ uint16) error {
	return nil
}
