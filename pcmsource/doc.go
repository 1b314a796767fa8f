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

// Package pcmsource provides acquisition backends for the capture
// pipeline. Every source delivers unsigned 8-bit samples centred on 128,
// the range the original ADC produced.
//
// Three families of source: a pure tone generator, used by default and
// throughout the tests; file sources that loop the mono content of a
// WAV, MP3 or OGG recording at the capture rate; and a live microphone
// source through PortAudio.
package pcmsource
