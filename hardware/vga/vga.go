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

// Package vga defines the narrow contract between the spectrum analyser
// and the display peripheral. The machine knows nothing about pixel
// formats or window systems: it writes text at a position, draws vertical
// line segments and asks the display to service itself once per epoch.
//
// Errors from a Renderer are always non-fatal to the machine. The analyser
// logs them and carries on; a display that has gone away must never stall
// the DSP loops.
package vga

// Dimensions of the display, in pixels. Renderers are expected to provide
// a drawing area of at least this size.
const (
	Width  = 640
	Height = 480
)

// Renderer implementations display the spectrum and the detected peak
// frequency.
type Renderer interface {
	// WriteText draws text with its top-left corner at the given position,
	// replacing any text previously written at that position.
	WriteText(x, y int, text string) error

	// DrawVLine draws a vertical line segment of the given height upwards
	// from (x, y). When on is false the segment is erased instead.
	DrawVLine(x, y, height int, on bool) error

	// Service is called once per FFT epoch after drawing is complete.
	// Implementations present the finished frame and handle any windowing
	// system events.
	Service() error
}

// Nil is a Renderer connected to nothing.
type Nil struct{}

// WriteText implements the Renderer interface.
func (n Nil) WriteText(_, _ int, _ string) error {
	return nil
}

// DrawVLine implements the Renderer interface.
func (n Nil) DrawVLine(_, _, _ int, _ bool) error {
	return nil
}

// Service implements the Renderer interface.
func (n Nil) Service() error {
	return nil
}
