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

// Package modalflag is a thin wrapper for the flag package in the Go
// standard library. It adds the idea of program modes: a special command
// line argument that selects a different mode of operation for the
// program, each mode with its own set of flags (in the manner of the go
// command's build, test, etc. modes).
//
// Basic usage, with two modes and a fallback to the first (default) mode
// when no mode argument is given:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "VERSION")
//
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		...
//	}
//
//	switch md.Mode() {
//	...
//	}
//
// After selecting a mode, call NewMode(), add the mode's flags and Parse()
// again. Mode comparison is case insensitive.
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// Modes provides mode-aware handling of command line arguments. The Output
// field should be set before calling Parse() or help messages will not be
// seen.
type Modes struct {
	// where to print help messages. defaults to io.Discard
	Output io.Writer

	// the underlying flagset. recreated by NewArgs() and NewMode()
	flags *flag.FlagSet

	// arguments from NewArgs() and how far into them parsing has reached
	args    []string
	argsIdx int

	// sub-modes valid for the next Parse(). the first entry is the default
	subModes []string

	// modes selected by successive calls to Parse()
	path []string
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added before
	// the Parse() then the Mode() function says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error occurred and is returned as the second return value
	ParseError
)

// NewArgs initialises the Modes struct with a list of arguments, normally
// the command line.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments are part of a new mode. Flags
// added before the call are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes adds to the list of valid modes for the next Parse(). The
// first mode added is the default, selected when the user names no mode.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected during parsing, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// Parse the next layer of arguments, selecting a sub-mode if any were
// added. Help messages are printed to the Output field automatically.
func (md *Modes) Parse() (ParseResult, error) {
	output := md.Output
	if output == nil {
		output = io.Discard
	}

	// the flag package wants to print usage itself. capture it so that the
	// mode list can be included
	usage := &strings.Builder{}
	md.flags.SetOutput(usage)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp(output, usage.String())
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("%s", strings.TrimSpace(usage.String()))
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp(output io.Writer, flagUsage string) {
	if md.Path() != "" {
		fmt.Fprintf(output, "mode: %s\n", md.Path())
	}
	if flagUsage != "" {
		io.WriteString(output, flagUsage)
	}
	if len(md.subModes) > 0 {
		fmt.Fprintf(output, "sub-modes: %s (default: %s)\n",
			strings.Join(md.subModes, ", "), md.subModes[0])
	}
}

// RemainingArgs returns the arguments left over after a call to Parse(),
// ie. arguments that are not flags or a listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag or a listed
// sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag for the next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
