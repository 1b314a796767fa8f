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

// Package version records the version number of the project.
package version

import "runtime/debug"

// The name to use when referring to the application.
const ApplicationName = "GopherPico"

// number is set at build time through the linker. if it is empty then the
// project was probably built with a plain "go build".
var number string

// Version returns the version string for the build. If no version number
// was stamped at build time the vcs revision is used; failing that, the
// string "unreleased".
func Version() string {
	if number != "" {
		return number
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}

	return "unreleased"
}
