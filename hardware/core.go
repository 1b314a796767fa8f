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
	"time"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/hardware/dds"
	"github.com/jetsetilly/gopherpico/hardware/rtos"
)

// a throttled core paces itself in bursts of this wall-clock length.
// individual ticks are far too short to pace with a timer
const throttleQuantum = 10 * time.Millisecond

// Core is one of the two processing cores. A core owns its DDS voice,
// its cooperative scheduler and its tick counter outright; the only
// state shared between cores goes through the semaphores or the
// telemetry package.
type Core struct {
	ID    int
	Voice *dds.Voice
	Sched *rtos.Scheduler

	dac dac.DAC

	// the interrupt body does not run before this tick. used to offset
	// the two beep envelopes at startup
	isrStart uint64

	tick uint64
}

func newCore(id int, voice *dds.Voice, d dac.DAC, isrStart uint64) *Core {
	return &Core{
		ID:       id,
		Voice:    voice,
		Sched:    &rtos.Scheduler{},
		dac:      d,
		isrStart: isrStart,
	}
}

// Tick returns the core's tick counter. Only meaningful from the core's
// own goroutine or after Run() has returned.
func (c *Core) Tick() uint64 {
	return c.tick
}

// Step the core by one tick: interrupt body, scheduler poll, counter
// advance. Exposed so that tests can interleave the two cores
// deterministically; Run() drives it otherwise.
func (c *Core) Step() error {
	if c.tick >= c.isrStart {
		if err := c.dac.Push(c.Voice.Tick()); err != nil {
			return err
		}
	}
	c.Sched.Poll(c.tick)
	c.tick++
	return nil
}

// run the core until the context is cancelled or the DAC fails. With
// throttle the core is held to the wall clock; without it the DAC's own
// backpressure, if any, sets the pace.
func (c *Core) run(ctx context.Context, tickRate uint32, throttle bool) error {
	if !throttle {
		for {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if err := c.Step(); err != nil {
				return curated.Errorf(CoreFault, c.ID, err)
			}
		}
	}

	ticksPerQuantum := uint64(tickRate) * uint64(throttleQuantum) / uint64(time.Second)
	if ticksPerQuantum == 0 {
		ticksPerQuantum = 1
	}

	pace := time.NewTicker(throttleQuantum)
	defer pace.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pace.C:
			for i := uint64(0); i < ticksPerQuantum; i++ {
				if err := c.Step(); err != nil {
					return curated.Errorf(CoreFault, c.ID, err)
				}
			}
		}
	}
}
