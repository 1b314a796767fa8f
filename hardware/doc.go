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

// Package hardware assembles the emulated machine: two cores, each
// running a timer-driven DDS voice and a small cooperative scheduler,
// wired to whatever DAC, acquisition source and display the caller
// provides.
//
// Each Core runs in its own goroutine. A core's loop is one tick: run
// the DDS interrupt body (tick the voice, push the word to the DAC),
// poll the scheduler, advance the tick counter. One tick corresponds to
// one period of the original 40 kHz timer interrupt; nothing on the tick
// path allocates or blocks.
//
// The two cores meet once a second in the heartbeat handshake. Two
// binary semaphores, one per core, start with only core 0's signalled.
// A core's heartbeat task waits on its own semaphore, increments the
// shared counter, reports, sleeps for the handshake interval and then
// signals the other core's semaphore. The heartbeats therefore strictly
// alternate and the shared counter needs no lock of its own.
//
// Core 0 also runs the spectrum analyser task, consuming windowed
// epochs from the capture pipeline. Core 1 also blinks the LED.
package hardware
