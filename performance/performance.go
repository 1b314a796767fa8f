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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/pcmsource"
)

// Sentinel errors returned by the performance check.
const Failure = "performance: %v"

// Check runs an unthrottled machine against discard peripherals for the
// given duration and reports the achieved tick rate.
func Check(output io.Writer, profile bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(Failure, err)
	}

	prefs := hardware.NewPreferences()
	src := pcmsource.NewTone(prefs.SampleRate, prefs.Freq0, false)

	pico, err := hardware.New(prefs, dac.Discard{}, src, nil, nil)
	if err != nil {
		return curated.Errorf(Failure, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dur)
	defer cancel()

	err = cpuProfile(profile, "cpu.profile", func() error {
		return pico.Run(ctx)
	})
	if err != nil {
		return curated.Errorf(Failure, err)
	}

	ticks := pico.Core[0].Tick() + pico.Core[1].Tick()
	rate := float64(ticks) / 2 / dur.Seconds()

	fmt.Fprintf(output, "%.0f ticks/s per core (%0.1fx realtime)\n", rate, rate/float64(prefs.TickRate))
	fmt.Fprintf(output, "%d handshakes, %d transforms outstanding\n", pico.Telemetry.PingPong(), pico.Telemetry.ResetTransforms())

	if err := memProfile(profile, "mem.profile"); err != nil {
		return curated.Errorf(Failure, err)
	}

	return nil
}
