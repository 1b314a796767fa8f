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

// Package dds implements direct digital synthesis of the amplitude-shaped
// beeps, one Voice per core. A voice runs entirely inside the core's timer
// tick: every tick advances a 32-bit phase accumulator, looks the top
// eight bits up in the sine table, scales by the envelope, and formats the
// result as a DAC word. The work is constant-time and allocation-free.
//
// The envelope is a two-state machine, ACTIVE and SILENT, driven by a tick
// counter. ACTIVE covers the linear attack ramp, the sustain plateau and
// the linear decay; SILENT is the gap between beeps during which the
// amplitude is forced to zero. The ramps are applied as repeated
// fixed-point additions, not recomputed from the elapsed time, which
// reproduces the original's rounding exactly.
package dds
