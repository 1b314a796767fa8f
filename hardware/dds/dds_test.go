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

package dds_test

import (
	"testing"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/fixed"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/hardware/dds"
	"github.com/jetsetilly/gopherpico/test"
)

// timing used throughout: a short beep so the tests run over full cycles
// quickly. attack 100, sustain 50, decay 100, silence 200
var timing = dds.EnvelopeTiming{
	AttackTime:     100,
	DecayTime:      100,
	SustainTime:    50,
	RepeatInterval: 200,
}

func TestOscillatorFrequency(t *testing.T) {
	osc := dds.NewOscillator(40000, 2300)

	// the increment quantises the requested frequency; the round trip is
	// accurate to well under the resolution of one FFT bin
	test.Near(t, osc.Frequency(), 2300.0, 0.001)

	osc.SetFrequency(440)
	test.Near(t, osc.Frequency(), 440.0, 0.001)
}

func TestOscillatorPeriod(t *testing.T) {
	// at tickRate/256 the oscillator steps through exactly one table entry
	// per tick. after 256 ticks the phase has wrapped to where it began
	osc := dds.NewOscillator(40000, 40000.0/256.0)

	first := osc.Tick()
	var last fixed.Fix15
	for i := 0; i < 256; i++ {
		last = osc.Tick()
	}
	test.Equate(t, last, first)
}

func TestEnvelopeShape(t *testing.T) {
	env, err := dds.NewEnvelope(fixed.One, timing)
	test.ExpectSuccess(t, err)

	beep := timing.BeepDuration()

	// record the amplitude of every tick of the ACTIVE state
	vals := make([]fixed.Fix15, beep)
	for i := range vals {
		vals[i] = env.Tick()
	}

	// attack: monotonically non-decreasing from zero
	test.Equate(t, vals[0], fixed.Fix15(0))
	for i := uint32(1); i <= timing.AttackTime; i++ {
		test.ExpectSuccess(t, vals[i] >= vals[i-1])
	}

	// sustain: amplitude held. the plateau runs up to and including the
	// first decay-region tick, whose value is returned before the first
	// decrement is applied
	for i := timing.AttackTime + 1; i <= beep-timing.DecayTime+1; i++ {
		test.Equate(t, vals[i], vals[timing.AttackTime])
	}

	// decay: monotonically non-increasing
	for i := beep - timing.DecayTime + 2; i < beep; i++ {
		test.ExpectSuccess(t, vals[i] <= vals[i-1])
	}

	// silence: exactly zero for the whole repeat interval
	test.Equate(t, env.State(), dds.Silent)
	for i := uint32(0); i < timing.RepeatInterval; i++ {
		test.Equate(t, env.Tick(), fixed.Fix15(0))
	}

	// and we're beeping again
	test.Equate(t, env.State(), dds.Active)
}

func TestEnvelopeCycleLength(t *testing.T) {
	env, err := dds.NewEnvelope(fixed.One, timing)
	test.ExpectSuccess(t, err)

	// one full ACTIVE -> SILENT -> ACTIVE cycle takes exactly
	// BeepDuration + RepeatInterval ticks
	cycle := timing.BeepDuration() + timing.RepeatInterval

	for n := 0; n < 3; n++ {
		test.Equate(t, env.State(), dds.Active)
		for i := uint32(0); i < timing.BeepDuration(); i++ {
			env.Tick()
		}
		test.Equate(t, env.State(), dds.Silent)
		for i := timing.BeepDuration(); i < cycle; i++ {
			env.Tick()
		}
		test.Equate(t, env.State(), dds.Active)
	}
}

func TestEnvelopeBadTiming(t *testing.T) {
	_, err := dds.NewEnvelope(fixed.One, dds.EnvelopeTiming{
		AttackTime: 0, DecayTime: 100, SustainTime: 50, RepeatInterval: 200,
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, dds.BadEnvelope))
	test.ExpectSuccess(t, curated.Has(err, "fixed point: divide by zero"))

	_, err = dds.NewEnvelope(fixed.One, dds.EnvelopeTiming{
		AttackTime: 100, DecayTime: 100, SustainTime: 50, RepeatInterval: 0,
	})
	test.ExpectFailure(t, err)
}

func TestVoiceWord(t *testing.T) {
	osc := dds.NewOscillator(40000, 2300)
	env, err := dds.NewEnvelope(fixed.One, timing)
	test.ExpectSuccess(t, err)

	v := dds.NewVoice(osc, env, fixed.FromFloat(0.5), dac.ConfigChanB)

	for i := 0; i < int(timing.BeepDuration()+timing.RepeatInterval); i++ {
		word := v.Tick()

		// the channel configuration survives every sample
		test.Equate(t, word&^dac.SampleMask, dac.ConfigChanB)

		channel, sample := dac.Split(word)
		test.Equate(t, channel, 1)

		// amplitude <= 1 and scale 0.5 keep the sample within the centre
		// half of the DAC range
		test.ExpectSuccess(t, sample >= 1024 && sample <= 3072)
	}
}

func TestVoiceSilence(t *testing.T) {
	osc := dds.NewOscillator(40000, 2300)
	env, err := dds.NewEnvelope(fixed.One, timing)
	test.ExpectSuccess(t, err)

	v := dds.NewVoice(osc, env, fixed.FromFloat(0.5), dac.ConfigChanA)

	// run to the silent portion of the cycle
	for i := uint32(0); i < timing.BeepDuration(); i++ {
		v.Tick()
	}
	test.Equate(t, env.State(), dds.Silent)

	// a silent voice outputs the DC offset, nothing else
	for i := uint32(0); i < timing.RepeatInterval-1; i++ {
		_, sample := dac.Split(v.Tick())
		test.Equate(t, sample, uint16(2048))
	}
}
