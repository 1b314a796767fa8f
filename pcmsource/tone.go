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

package pcmsource

import (
	"math"
	"time"
)

// Tone is the default acquisition source: a pure sine wave at a fixed
// frequency, generated on demand. Phase is continuous across Fill()
// calls.
type Tone struct {
	sampleRate float64
	frequency  float64
	amplitude  float64
	phase      float64

	// a realtime tone paces Fill() to the sample rate, standing in for
	// the acquisition hardware's own timing
	realtime bool
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(sampleRate float64, frequency float64, realtime bool) *Tone {
	return &Tone{
		sampleRate: sampleRate,
		frequency:  frequency,
		amplitude:  100,
		realtime:   realtime,
	}
}

// Fill implements the capture.Source interface.
func (src *Tone) Fill(p []uint8) error {
	incr := 2 * math.Pi * src.frequency / src.sampleRate

	for i := range p {
		p[i] = uint8(128 + src.amplitude*math.Sin(src.phase))
		src.phase += incr
		if src.phase > 2*math.Pi {
			src.phase -= 2 * math.Pi
		}
	}

	if src.realtime {
		time.Sleep(time.Duration(float64(len(p)) / src.sampleRate * float64(time.Second)))
	}

	return nil
}
