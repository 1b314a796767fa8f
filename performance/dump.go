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

package performance

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherpico/curated"
	"github.com/jetsetilly/gopherpico/hardware"
)

// DumpMachine writes a graphviz rendering of the machine's object graph
// to the named file. Only call when the cores are stopped; the walk is
// not synchronised with them.
func DumpMachine(pico *hardware.Pico, outFile string) (rerr error) {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf(Failure, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(Failure, err)
		}
	}()

	memviz.Map(f, pico)

	return nil
}
