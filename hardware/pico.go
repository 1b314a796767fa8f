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
	"context"
	"io"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopherpico/dsp/fft"
	"github.com/jetsetilly/gopherpico/fixed"
	"github.com/jetsetilly/gopherpico/hardware/capture"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/hardware/dds"
	"github.com/jetsetilly/gopherpico/hardware/rtos"
	"github.com/jetsetilly/gopherpico/hardware/telemetry"
	"github.com/jetsetilly/gopherpico/hardware/vga"
)

// Pico is the main container for the emulated machine.
type Pico struct {
	Prefs Preferences

	Core [2]*Core

	FFT       *fft.FFT
	Pipeline  *capture.Pipeline
	Telemetry *telemetry.Telemetry

	// the onboard LED, toggled by core 1's blink task
	LED atomic.Bool

	renderer vga.Renderer
	report   io.Writer

	// analyser scratch buffers, allocated once at startup
	re []fixed.Fix15
	im []fixed.Fix15
}

// New creates a Pico and everything inside it. The DAC, acquisition
// source and display are attached rather than owned: the same machine
// runs against live audio, file output or nothing at all. A nil report
// writer silences the heartbeat lines.
func New(prefs Preferences, d dac.DAC, src capture.Source, renderer vga.Renderer, report io.Writer) (*Pico, error) {
	if err := prefs.validate(); err != nil {
		return nil, err
	}
	if renderer == nil {
		renderer = vga.Nil{}
	}
	if report == nil {
		report = io.Discard
	}

	pico := &Pico{
		Prefs:     prefs,
		Telemetry: &telemetry.Telemetry{},
		renderer:  renderer,
		report:    report,
		re:        make([]fixed.Fix15, prefs.NumSamples),
		im:        make([]fixed.Fix15, prefs.NumSamples),
	}

	var err error

	pico.FFT, err = fft.New(prefs.NumSamples, prefs.SampleRate)
	if err != nil {
		return nil, err
	}

	pico.Pipeline, err = capture.NewPipeline(src, prefs.NumSamples)
	if err != nil {
		return nil, err
	}

	maxAmplitude := fixed.FromFloat(prefs.MaxAmplitude)
	scale := fixed.FromFloat(prefs.OutputScale)

	env0, err := dds.NewEnvelope(maxAmplitude, prefs.Timing)
	if err != nil {
		return nil, err
	}
	env1, err := dds.NewEnvelope(maxAmplitude, prefs.Timing)
	if err != nil {
		return nil, err
	}

	// channel assignment follows the original firmware: core 0 drives
	// DAC channel B, core 1 channel A
	voice0 := dds.NewVoice(dds.NewOscillator(prefs.TickRate, prefs.Freq0), env0, scale, dac.ConfigChanB)
	voice1 := dds.NewVoice(dds.NewOscillator(prefs.TickRate, prefs.Freq1), env1, scale, dac.ConfigChanA)

	pico.Core[0] = newCore(0, voice0, d, 0)
	pico.Core[1] = newCore(1, voice1, d, prefs.DesyncTicks)

	// core 0's semaphore starts signalled so that it takes the first
	// heartbeat
	goA := rtos.NewSemaphore(true)
	goB := rtos.NewSemaphore(false)

	pico.Core[0].Sched.Add(pico.heartbeat(0, "ping", goA, goB))
	pico.Core[0].Sched.Add(pico.analyser())
	pico.Core[1].Sched.Add(pico.heartbeat(1, "pong", goB, goA))
	pico.Core[1].Sched.Add(pico.blink())

	return pico, nil
}

// Run the machine until the context is cancelled or a core faults. The
// acquisition pump and both core goroutines are started here and are
// fully wound down before Run returns.
func (pico *Pico) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pico.Pipeline.Start(ctx)

	faults := make(chan error, len(pico.Core))

	var wg sync.WaitGroup
	for _, core := range pico.Core {
		wg.Add(1)
		go func(core *Core) {
			defer wg.Done()
			if err := core.run(ctx, pico.Prefs.TickRate, pico.Prefs.Throttle); err != nil {
				faults <- err

				// a dead core takes the machine with it
				cancel()
			}
		}(core)
	}
	wg.Wait()

	select {
	case err := <-faults:
		return err
	default:
		return nil
	}
}
