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

// Package sdlvga is a simple SDL implementation of the vga.Renderer
// interface. Spectrum bars are drawn as vertical lines; text goes to
// the window title because bundling a font isn't worth it for one
// readout.
package sdlvga

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware/vga"
)

// Sentinel errors returned by the SDL display.
const Failure = "sdlvga: %v"

// SdlVga implements the vga.Renderer interface.
type SdlVga struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// closed when the user asks the window to close
	quit chan struct{}
}

// NewSdlVga is the preferred method for creating a new instance of
// SdlVga. All rendering calls must come from a single goroutine; SDL
// is not thread-aware.
func NewSdlVga() (*SdlVga, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(Failure, err)
	}

	window, err := sdl.CreateWindow("GopherPico",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		vga.Width, vga.Height, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(Failure, err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(Failure, err)
	}

	scr := &SdlVga{
		window:   window,
		renderer: renderer,
		quit:     make(chan struct{}),
	}

	_ = renderer.SetDrawColor(0, 0, 0, 255)
	_ = renderer.Clear()
	renderer.Present()

	return scr, nil
}

// WriteText implements the vga.Renderer interface. The text replaces
// the window title; the coordinates are ignored.
func (scr *SdlVga) WriteText(_ int, _ int, text string) error {
	scr.window.SetTitle("GopherPico: " + text)
	return nil
}

// DrawVLine implements the vga.Renderer interface.
func (scr *SdlVga) DrawVLine(x int, y int, height int, on bool) error {
	if height <= 0 {
		return nil
	}

	if on {
		_ = scr.renderer.SetDrawColor(0, 255, 0, 255)
	} else {
		_ = scr.renderer.SetDrawColor(0, 0, 0, 255)
	}

	if err := scr.renderer.DrawLine(int32(x), int32(y), int32(x), int32(y+height-1)); err != nil {
		return curated.Errorf(Failure, err)
	}

	return nil
}

// Service implements the vga.Renderer interface. Flips the frame and
// drains the SDL event queue.
func (scr *SdlVga) Service() error {
	scr.renderer.Present()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			select {
			case <-scr.quit:
			default:
				close(scr.quit)
			}
		}
	}

	return nil
}

// QuitRequested is closed when the user closes the window.
func (scr *SdlVga) QuitRequested() <-chan struct{} {
	return scr.quit
}

// Destroy the window and wind down SDL.
func (scr *SdlVga) Destroy() {
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}
