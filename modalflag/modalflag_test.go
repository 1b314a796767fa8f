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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopherpico/modalflag"
	"github.com/jetsetilly/gopherpico/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 0)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddSubModes("RUN", "VERSION")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "RUN")
}

func TestModeSelection(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"version"})
	md.AddSubModes("RUN", "VERSION")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)

	// mode comparison is case insensitive
	test.Equate(t, md.Mode(), "VERSION")
	test.Equate(t, md.Path(), "VERSION")
}

func TestModeFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"run", "-frequency", "440", "leftover"})
	md.AddSubModes("RUN")

	r, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	frequency := md.AddFloat64("frequency", 2300.0, "tone frequency")

	r, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.Equate(t, r, modalflag.ParseContinue)
	test.Equate(t, *frequency, 440.0)
	test.Equate(t, md.GetArg(0), "leftover")
}

func TestUnrecognisedFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})

	r, err := md.Parse()
	test.ExpectFailure(t, err)
	test.Equate(t, r, modalflag.ParseError)
}
