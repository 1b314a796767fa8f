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

// Package telemetry holds the small amount of state shared between the two
// cores. Each field falls into one of two sharing categories and the
// category dictates how it is protected:
//
// "latest value, staleness acceptable" - the peak frequency and the
// transform count are written by the analyser on one core and read by
// whichever heartbeat fires next. A reader seeing a slightly stale value
// is harmless, so these are plain atomics with no further ordering.
//
// "message passing" - the ping-pong counter is only ever touched inside a
// heartbeat body, and the handshake semaphores guarantee that at most one
// heartbeat body runs between any two signals. The semaphore handoff
// provides both the mutual exclusion and the happens-before edge, so the
// counter itself is an ordinary field.
package telemetry

import (
	"math"
	"sync/atomic"
)

// Telemetry is created once by the machine and shared by both cores.
type Telemetry struct {
	// latest-value category
	maxFrequency atomic.Uint64 // math.Float64bits
	transforms   atomic.Uint32

	// message-passing category. guarded by the handshake semaphores
	pingPong uint32
}

// SetMaxFrequency publishes the most recently detected peak frequency.
func (t *Telemetry) SetMaxFrequency(hz float64) {
	t.maxFrequency.Store(math.Float64bits(hz))
}

// MaxFrequency returns the most recently published peak frequency.
func (t *Telemetry) MaxFrequency() float64 {
	return math.Float64frombits(t.maxFrequency.Load())
}

// AddTransform increments the count of transforms since the last report.
func (t *Telemetry) AddTransform() {
	t.transforms.Add(1)
}

// ResetTransforms returns the transform count and zeroes it in one step.
// Called by a heartbeat when it reports.
func (t *Telemetry) ResetTransforms() uint32 {
	return t.transforms.Swap(0)
}

// IncrementPingPong advances the shared handshake counter and returns the
// new value. Must only be called from inside a heartbeat body.
func (t *Telemetry) IncrementPingPong() uint32 {
	t.pingPong++
	return t.pingPong
}

// PingPong returns the current value of the handshake counter. Like
// IncrementPingPong() it must only be called from inside a heartbeat body
// (or after the machine has stopped).
func (t *Telemetry) PingPong() uint32 {
	return t.pingPong
}
