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

// Package wavwriter records DAC output to disk as a WAV file. Note that
// audio data is buffered in memory in its entirity, and written to disk
// on program end. It is therefore probably only suitable for testing
// purposes.
//
// Channel A goes to the left of the stereo pair and channel B to the
// right. The 12-bit unsigned DAC samples are widened to 16-bit signed.
package wavwriter

import (
	"os"
	"sync"

	"github.com/youpy/go-wav"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/logger"
)

// WavWriter implements the dac.DAC interface.
type WavWriter struct {
	filename   string
	sampleRate uint32

	// both cores push concurrently
	crit    sync.Mutex
	channel [2][]int
}

// New is the preferred method of initialisation for the WavWriter type.
// sampleRate should be the machine's tick rate.
func New(filename string, sampleRate uint32) (*WavWriter, error) {
	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
	}
	return aw, nil
}

// Push implements the dac.DAC interface.
func (aw *WavWriter) Push(word uint16) error {
	ch, sample := dac.Split(word)

	aw.crit.Lock()
	defer aw.crit.Unlock()

	// 12-bit unsigned around 2048 to 16-bit signed around zero
	aw.channel[ch] = append(aw.channel[ch], (int(sample)-2048)<<4)

	return nil
}

// EndMixing writes the buffered samples to disk. The shorter channel is
// padded with silence; the two cores start their voices at different
// ticks so the channels rarely match exactly.
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	numSamples := len(aw.channel[0])
	if len(aw.channel[1]) > numSamples {
		numSamples = len(aw.channel[1])
	}

	buffer := make([]wav.Sample, numSamples)
	for i := range buffer {
		if i < len(aw.channel[0]) {
			buffer[i].Values[0] = aw.channel[0][i]
		}
		if i < len(aw.channel[1]) {
			buffer[i].Values[1] = aw.channel[1][i]
		}
	}

	enc := wav.NewWriter(f, uint32(numSamples), 2, aw.sampleRate, 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	if err := enc.WriteSamples(buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
