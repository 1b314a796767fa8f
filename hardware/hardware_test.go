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

package hardware_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/dsp/fft"
	"github.com/jetsetilly/gopherpico/hardware"
	"github.com/jetsetilly/gopherpico/hardware/dac"
	"github.com/jetsetilly/gopherpico/hardware/dds"
	"github.com/jetsetilly/gopherpico/test"
)

type silentSource struct{}

func (s silentSource) Fill(p []uint8) error {
	for i := range p {
		p[i] = 128
	}
	return nil
}

// testPreferences shrinks every interval so that tests can step the
// cores by hand in a reasonable number of ticks.
func testPreferences() hardware.Preferences {
	prefs := hardware.NewPreferences()
	prefs.NumSamples = 16
	prefs.SampleRate = 1000
	prefs.TickRate = 1000
	prefs.Timing = dds.EnvelopeTiming{
		AttackTime:     10,
		DecayTime:      10,
		SustainTime:    5,
		RepeatInterval: 50,
	}
	prefs.HeartbeatInterval = 10
	prefs.BlinkInterval = 5
	prefs.DesyncTicks = 0
	return prefs
}

func TestNewBadPreferences(t *testing.T) {
	prefs := testPreferences()
	prefs.TickRate = 0
	_, err := hardware.New(prefs, dac.Discard{}, silentSource{}, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.BadPreferences))

	// a non power of two capture length is caught by the FFT engine
	prefs = testPreferences()
	prefs.NumSamples = 12
	_, err = hardware.New(prefs, dac.Discard{}, silentSource{}, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fft.BadNumSamples))
}

// heartbeat reports look like "ping: core 0: 3, max freq: ...". returns
// the side name and the counter value.
func parseHeartbeat(t *testing.T, line string) (string, int) {
	t.Helper()
	parts := strings.Split(line, ":")
	if len(parts) < 4 {
		t.Fatalf("malformed heartbeat line: %q", line)
	}
	count, err := strconv.Atoi(strings.TrimSpace(strings.Split(parts[2], ",")[0]))
	test.ExpectSuccess(t, err)
	return parts[0], count
}

func TestHeartbeatAlternation(t *testing.T) {
	report := &bytes.Buffer{}

	pico, err := hardware.New(testPreferences(), dac.Discard{}, silentSource{}, nil, report)
	test.ExpectSuccess(t, err)

	// lopsided interleaving. core 0 runs three ticks for every one of
	// core 1's and the handshake must still alternate strictly
	for i := 0; i < 2000; i++ {
		test.ExpectSuccess(t, pico.Core[0].Step())
		test.ExpectSuccess(t, pico.Core[0].Step())
		test.ExpectSuccess(t, pico.Core[0].Step())
		test.ExpectSuccess(t, pico.Core[1].Step())
	}

	lines := strings.Split(strings.TrimSpace(report.String()), "\n")
	if len(lines) < 6 {
		t.Fatalf("too few heartbeats: %d", len(lines))
	}

	for i, line := range lines {
		name, count := parseHeartbeat(t, line)

		// core 0 takes the first heartbeat and the sides alternate
		if i%2 == 0 {
			test.Equate(t, name, "ping")
		} else {
			test.Equate(t, name, "pong")
		}

		// exactly one counter increment per handover
		test.Equate(t, count, i+1)
	}

	test.Equate(t, int(pico.Telemetry.PingPong()), len(lines))
}

func TestBlink(t *testing.T) {
	pico, err := hardware.New(testPreferences(), dac.Discard{}, silentSource{}, nil, nil)
	test.ExpectSuccess(t, err)

	core := pico.Core[1]

	// the first poll turns the LED on
	test.ExpectSuccess(t, core.Step())
	test.Equate(t, pico.LED.Load(), true)

	// and it stays on until the blink interval has passed
	for i := 0; i < 4; i++ {
		test.ExpectSuccess(t, core.Step())
		test.Equate(t, pico.LED.Load(), true)
	}
	test.ExpectSuccess(t, core.Step())
	test.Equate(t, pico.LED.Load(), false)
}

func TestDesync(t *testing.T) {
	prefs := testPreferences()
	prefs.DesyncTicks = 7

	var words []uint16
	pico, err := hardware.New(prefs, pushFunc(func(w uint16) error {
		words = append(words, w)
		return nil
	}), silentSource{}, nil, nil)
	test.ExpectSuccess(t, err)

	// core 1's interrupt body is held back for the desync period
	for i := 0; i < 10; i++ {
		test.ExpectSuccess(t, pico.Core[1].Step())
	}
	test.Equate(t, len(words), 3)
}

type pushFunc func(uint16) error

func (f pushFunc) Push(w uint16) error {
	return f(w)
}
