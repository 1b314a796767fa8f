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

package hardware

import (
	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware/dds"
)

// Sentinel errors returned by the hardware package.
const (
	BadPreferences = "hardware: %v"
	CoreFault      = "hardware: core %d: %v"
)

// Preferences collects every tunable of the machine. All values are
// fixed before Run() and never change while the cores are running, with
// the exception of the oscillator frequencies which the tuner may adjust
// through the Core type.
type Preferences struct {
	// acquisition and analysis
	NumSamples int
	SampleRate float64

	// period of the emulated timer interrupt. 40000 means one tick is
	// 25us of virtual time
	TickRate uint32

	// beep frequency per core, in Hz
	Freq0 float64
	Freq1 float64

	// envelope peak and final output scale, as fractions of full scale
	MaxAmplitude float64
	OutputScale  float64

	// beep envelope, in ticks
	Timing dds.EnvelopeTiming

	// ticks between heartbeat report and semaphore handover
	HeartbeatInterval uint64

	// ticks between LED toggles
	BlinkInterval uint64

	// core 1's interrupt starts this many ticks after core 0's, so the
	// two beeps are audibly offset
	DesyncTicks uint64

	// pace the cores against the wall clock. leave false when the DAC
	// backend paces the machine itself (live audio playback), set for
	// headless or file-output runs that should happen in real time
	Throttle bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The returned values reproduce the original firmware:
// a 1024 sample capture at 10 kHz, 2300 Hz beeps with a 250 ms envelope
// repeating once a second, and a one second heartbeat.
func NewPreferences() Preferences {
	return Preferences{
		NumSamples: 1024,
		SampleRate: 10000,
		TickRate:   40000,

		Freq0: 2300,
		Freq1: 2300,

		MaxAmplitude: 1.0,
		OutputScale:  0.5,

		Timing: dds.EnvelopeTiming{
			AttackTime:     3000,
			DecayTime:      3000,
			SustainTime:    4000,
			RepeatInterval: 40000,
		},

		HeartbeatInterval: 40000,
		BlinkInterval:     10000,
		DesyncTicks:       20000,
	}
}

func (p Preferences) validate() error {
	if p.TickRate == 0 {
		return curated.Errorf(BadPreferences, "tick rate must be positive")
	}
	if p.SampleRate <= 0 {
		return curated.Errorf(BadPreferences, "sample rate must be positive")
	}
	if p.HeartbeatInterval == 0 {
		return curated.Errorf(BadPreferences, "heartbeat interval must be positive")
	}
	if p.MaxAmplitude < 0 || p.MaxAmplitude > 1.0 {
		return curated.Errorf(BadPreferences, "max amplitude must be in the range [0, 1]")
	}
	if p.OutputScale < 0 || p.OutputScale > 1.0 {
		return curated.Errorf(BadPreferences, "output scale must be in the range [0, 1]")
	}
	return nil
}
