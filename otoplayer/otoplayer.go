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

// Package otoplayer plays DAC output live through the default audio
// device. The device pulls samples at the tick rate, so pushing into a
// full buffer blocks and the audio hardware ends up pacing the whole
// machine. Run the machine unthrottled when this backend is attached.
package otoplayer

import (
	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware/dac"
)

// Sentinel errors returned by the oto player.
const Failure = "otoplayer: %v"

// enough buffered samples to ride out scheduling jitter without adding
// noticeable latency. at 40 kHz this is around 100ms
const bufferedSamples = 4096

// OtoPlayer implements the dac.DAC interface.
type OtoPlayer struct {
	ctx    *oto.Context
	player *oto.Player

	// one buffered channel per DAC channel. Push feeds them, the
	// device's Read drains them
	pending [2]chan int16

	// last value seen on each channel, held when a channel runs dry
	hold [2]int16

	// closed by Close() so that a blocked Push does not hang a core
	// during shutdown
	quit chan struct{}
}

// New is the preferred method of initialisation for the OtoPlayer type.
// sampleRate should be the machine's tick rate. Blocks until the audio
// device is ready.
func New(sampleRate uint32) (*OtoPlayer, error) {
	op := &OtoPlayer{
		pending: [2]chan int16{
			make(chan int16, bufferedSamples),
			make(chan int16, bufferedSamples),
		},
		quit: make(chan struct{}),
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(sampleRate),
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, curated.Errorf(Failure, err)
	}
	<-ready

	op.ctx = ctx
	op.player = ctx.NewPlayer(op)
	op.player.Play()

	return op, nil
}

// Push implements the dac.DAC interface. Blocks when the device's
// buffer is full; that backpressure is what holds the cores to real
// time.
func (op *OtoPlayer) Push(word uint16) error {
	ch, sample := dac.Split(word)

	// 12-bit unsigned around 2048 to 16-bit signed around zero
	select {
	case op.pending[ch] <- int16((int(sample) - 2048) << 4):
	case <-op.quit:
		return curated.Errorf(Failure, "player closed")
	}

	return nil
}

// Read implements the io.Reader interface, called from the audio
// device's own goroutine. Frames are interleaved left/right with
// channel A on the left. A channel that has fallen behind repeats its
// last value rather than stalling the device.
func (op *OtoPlayer) Read(p []byte) (int, error) {
	// one stereo frame is two int16 values
	frames := len(p) / 4

	for i := 0; i < frames; i++ {
		for ch := 0; ch < 2; ch++ {
			select {
			case v := <-op.pending[ch]:
				op.hold[ch] = v
			default:
			}
			p[i*4+ch*2] = byte(op.hold[ch])
			p[i*4+ch*2+1] = byte(op.hold[ch] >> 8)
		}
	}

	return frames * 4, nil
}

// Close the player. Pending samples are dropped.
func (op *OtoPlayer) Close() error {
	if op.player == nil {
		return nil
	}
	close(op.quit)
	err := op.player.Close()
	op.player = nil
	if err != nil {
		return curated.Errorf(Failure, err)
	}
	return nil
}
