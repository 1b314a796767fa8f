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
	"fmt"

	"github.com/jetsetilly/gopherpico/fixed"
	"github.com/jetsetilly/gopherpico/hardware/rtos"
	"github.com/jetsetilly/gopherpico/hardware/vga"
	"github.com/jetsetilly/gopherpico/logger"
)

// heartbeat states
type hbState int

const (
	hbWaiting hbState = iota
	hbRunning
	hbSleeping
	hbSignaling
)

// spectrum layout. bars start at this x ordinate and heights are scaled
// by this factor, matching the original display
const (
	barOriginX = 59
	barScale   = 36
	textX      = 250
	textY      = 30
)

// heartbeat returns the task that runs one side of the inter-core
// handshake. The task waits on its own semaphore, reports, sleeps for
// the handshake interval and hands over by signalling the other core's
// semaphore. Because a signal is only ever raised from inside the
// opposite heartbeat body the two sides strictly alternate.
func (pico *Pico) heartbeat(coreID int, name string, wait *rtos.Semaphore, signal *rtos.Semaphore) rtos.Task {
	state := hbWaiting

	return func(proc *rtos.Proc) rtos.Status {
		switch state {
		case hbWaiting:
			if !wait.TryWait() {
				return rtos.Waiting
			}
			state = hbRunning
			return rtos.Ready

		case hbRunning:
			count := pico.Telemetry.IncrementPingPong()
			transforms := pico.Telemetry.ResetTransforms()
			fmt.Fprintf(pico.report, "%s: core %d: %d, max freq: %5.0f, fft count: %3d\n",
				name, coreID, count, pico.Telemetry.MaxFrequency(), transforms)
			state = hbSleeping
			proc.Sleep(pico.Prefs.HeartbeatInterval)
			return rtos.Waiting

		case hbSleeping:
			// the scheduler has woken us up again
			state = hbSignaling
			return rtos.Ready

		case hbSignaling:
			signal.Signal()
			state = hbWaiting
			return rtos.Ready
		}

		return rtos.Waiting
	}
}

// analyser returns core 0's spectrum task: consume a windowed epoch,
// transform, publish the dominant frequency and redraw the display.
// Display and acquisition failures are logged and the task carries on;
// the next epoch is already being captured while this one transforms.
func (pico *Pico) analyser() rtos.Task {
	return func(_ *rtos.Proc) rtos.Status {
		if !pico.Pipeline.Ready() {
			return rtos.Waiting
		}

		if err := pico.Pipeline.Consume(pico.re, pico.im); err != nil {
			logger.Logf("analyser", "%v", err)
			return rtos.Ready
		}

		pico.FFT.Transform(pico.re, pico.im)
		mag := pico.FFT.Magnitudes(pico.re, pico.im)
		bin, _ := pico.FFT.Peak(mag)

		pico.Telemetry.SetMaxFrequency(pico.FFT.Frequency(bin))
		pico.Telemetry.AddTransform()

		pico.drawSpectrum(mag, bin)

		return rtos.Ready
	}
}

// blink returns core 1's LED task.
func (pico *Pico) blink() rtos.Task {
	return func(proc *rtos.Proc) rtos.Status {
		pico.LED.Store(!pico.LED.Load())
		proc.Sleep(pico.Prefs.BlinkInterval)
		return rtos.Waiting
	}
}

func (pico *Pico) drawSpectrum(mag []fixed.Fix15, peakBin int) {
	var fault error

	for i, m := range mag {
		x := barOriginX + i
		if x >= vga.Width {
			break
		}

		height := fixed.ToInt(fixed.Mul(m, fixed.FromInt(barScale)))
		if height < 0 {
			height = 0
		} else if height > vga.Height {
			height = vga.Height
		}

		if err := pico.renderer.DrawVLine(x, 0, vga.Height-height, false); err != nil {
			fault = err
			break
		}
		if err := pico.renderer.DrawVLine(x, vga.Height-height, height, true); err != nil {
			fault = err
			break
		}
	}

	if fault == nil {
		text := fmt.Sprintf("max frequency: %5.0f Hz", pico.FFT.Frequency(peakBin))
		if err := pico.renderer.WriteText(textX, textY, text); err != nil {
			fault = err
		}
	}
	if fault == nil {
		fault = pico.renderer.Service()
	}

	if fault != nil {
		logger.Logf("display", "%v", fault)
	}
}
