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

package dds

import (
	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/fixed"
)

// Sentinel errors returned by NewEnvelope().
const BadEnvelope = "envelope: %v"

// State of the envelope machine.
type State int

// List of valid State values.
const (
	Active State = iota
	Silent
)

func (s State) String() string {
	switch s {
	case Active:
		return "ACTIVE"
	case Silent:
		return "SILENT"
	}
	panic("unknown envelope state")
}

// EnvelopeTiming gives the durations of the envelope phases, in ticks of
// the core timer. These are configuration values, not invariants: any
// combination where the fields are non-zero and the beep is long enough to
// hold its attack and decay is valid.
type EnvelopeTiming struct {
	AttackTime     uint32
	DecayTime      uint32
	SustainTime    uint32
	RepeatInterval uint32
}

// BeepDuration is the total number of ticks the envelope spends in the
// ACTIVE state each cycle.
func (tm EnvelopeTiming) BeepDuration() uint32 {
	return tm.AttackTime + tm.SustainTime + tm.DecayTime
}

// Envelope shapes the amplitude of one voice into repeating beeps.
type Envelope struct {
	timing EnvelopeTiming

	// per-tick amplitude deltas for the attack and decay ramps
	attackInc fixed.Fix15
	decayInc  fixed.Fix15

	state     State
	elapsed   uint32
	amplitude fixed.Fix15
}

// NewEnvelope is the preferred method of initialisation for the Envelope
// type. The ramp increments are derived from the timing here, with the
// division checked: a zero attack or decay time is a configuration error
// caught before the machine starts ticking.
func NewEnvelope(maxAmplitude fixed.Fix15, timing EnvelopeTiming) (*Envelope, error) {
	if timing.RepeatInterval == 0 {
		return nil, curated.Errorf(BadEnvelope, "repeat interval must be non-zero")
	}

	attackInc, err := fixed.Div(maxAmplitude, fixed.FromInt(int(timing.AttackTime)))
	if err != nil {
		return nil, curated.Errorf(BadEnvelope, err)
	}
	decayInc, err := fixed.Div(maxAmplitude, fixed.FromInt(int(timing.DecayTime)))
	if err != nil {
		return nil, curated.Errorf(BadEnvelope, err)
	}

	return &Envelope{
		timing:    timing,
		attackInc: attackInc,
		decayInc:  decayInc,
		state:     Active,
	}, nil
}

// State returns the current state of the envelope machine.
func (env *Envelope) State() State {
	return env.state
}

// Tick returns the amplitude to use for the current tick and then advances
// the machine. The returned amplitude is the value before this tick's
// ramp step is applied, matching the original order of operations: output
// first, ramp second.
func (env *Envelope) Tick() fixed.Fix15 {
	if env.state == Silent {
		env.elapsed++
		if env.elapsed == env.timing.RepeatInterval {
			env.amplitude = 0
			env.state = Active
			env.elapsed = 0
		}
		return 0
	}

	amplitude := env.amplitude

	if env.elapsed < env.timing.AttackTime {
		env.amplitude += env.attackInc
	} else if env.elapsed > env.timing.BeepDuration()-env.timing.DecayTime {
		env.amplitude -= env.decayInc
	}

	env.elapsed++
	if env.elapsed == env.timing.BeepDuration() {
		env.state = Silent
		env.elapsed = 0
	}

	return amplitude
}
