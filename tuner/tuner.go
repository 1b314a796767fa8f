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

// Package tuner retunes the two voices from the keyboard while the
// machine runs. The terminal is put into cbreak mode so single
// keypresses take effect immediately:
//
//	q/a  raise/lower core 0's frequency
//	w/s  raise/lower core 1's frequency
//	ESC  leave the tuner
//
// Retuning is safe while the cores run; the oscillator increment is
// the one piece of voice state written from outside its core.
package tuner

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware"
)

// Sentinel errors returned by the tuner.
const Failure = "tuner: %v"

// frequency change per keypress, in Hz
const step = 50

const escape = 0x1b

// Run the tuner until the context is cancelled or the user leaves. The
// terminal is restored to canonical mode on the way out.
func Run(ctx context.Context, pico *hardware.Pico) (rerr error) {
	input := os.Stdin

	var canAttr unix.Termios
	if err := termios.Tcgetattr(input.Fd(), &canAttr); err != nil {
		return curated.Errorf(Failure, err)
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return curated.Errorf(Failure, err)
	}
	defer func() {
		if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &canAttr); err != nil && rerr == nil {
			rerr = curated.Errorf(Failure, err)
		}
	}()

	fmt.Println("tuner: q/a core 0, w/s core 1, ESC to quit")

	keys := make(chan byte)
	go func() {
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if err != nil || n == 0 {
				close(keys)
				return
			}
			keys <- b[0]
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case k, ok := <-keys:
			if !ok {
				return nil
			}

			var core *hardware.Core
			adjust := float64(step)

			switch k {
			case 'q':
				core = pico.Core[0]
			case 'a':
				core = pico.Core[0]
				adjust = -adjust
			case 'w':
				core = pico.Core[1]
			case 's':
				core = pico.Core[1]
				adjust = -adjust
			case escape:
				return nil
			default:
				continue
			}

			freq := core.Voice.Osc.Frequency() + adjust
			if freq < 0 {
				freq = 0
			}
			core.Voice.Osc.SetFrequency(freq)
			fmt.Printf("tuner: core %d: %5.0f Hz\n", core.ID, freq)
		}
	}
}
