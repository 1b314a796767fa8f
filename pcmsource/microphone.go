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
	"github.com/gordonklaus/portaudio"

	"github.com/jetsetilly/gopherpico/curated"
)

// Sentinel errors returned by the microphone source.
const (
	MicrophoneFailure = "pcmsource: microphone: %v"
	MicrophoneClosed  = "pcmsource: microphone: closed"
)

// number of mono frames per PortAudio callback
const micFramesPerBuf = 256

// Microphone captures live samples from the default input device. The
// PortAudio callback runs on its own thread and hands frames over a
// buffered channel; Fill() drains the channel at the pipeline's pace.
type Microphone struct {
	stream *portaudio.Stream
	frames chan []float32

	// remainder of the last frame not yet consumed by Fill()
	pending []float32
}

// NewMicrophone is the preferred method of initialisation for the
// Microphone type. Close() must be called when done with it or the
// PortAudio runtime is left initialised.
func NewMicrophone(sampleRate float64) (*Microphone, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, curated.Errorf(MicrophoneFailure, err)
	}

	src := &Microphone{
		frames: make(chan []float32, 64),
	}

	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, micFramesPerBuf,
		func(in []float32) {
			// the callback's buffer is reused so it must be copied out
			frame := make([]float32, len(in))
			copy(frame, in)

			// drop the frame rather than stall the audio thread
			select {
			case src.frames <- frame:
			default:
			}
		})
	if err != nil {
		_ = portaudio.Terminate()
		return nil, curated.Errorf(MicrophoneFailure, err)
	}

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		_ = portaudio.Terminate()
		return nil, curated.Errorf(MicrophoneFailure, err)
	}

	src.stream = stream
	return src, nil
}

// Fill implements the capture.Source interface. Blocks until enough
// frames have arrived, which also paces the capture pipeline to the
// audio hardware.
func (src *Microphone) Fill(p []uint8) error {
	for i := range p {
		if len(src.pending) == 0 {
			frame, ok := <-src.frames
			if !ok {
				return curated.Errorf(MicrophoneClosed)
			}
			src.pending = frame
		}

		s := int(src.pending[0]*127) + 128
		if s < 0 {
			s = 0
		} else if s > 255 {
			s = 255
		}
		p[i] = uint8(s)
		src.pending = src.pending[1:]
	}
	return nil
}

// Close the stream and wind down the PortAudio runtime.
func (src *Microphone) Close() error {
	if src.stream == nil {
		return nil
	}
	_ = src.stream.Stop()
	err := src.stream.Close()
	src.stream = nil
	close(src.frames)
	if terr := portaudio.Terminate(); err == nil {
		err = terr
	}
	if err != nil {
		return curated.Errorf(MicrophoneFailure, err)
	}
	return nil
}
