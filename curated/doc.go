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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and so can be mixed freely
// with other error values.
//
// Curated errors are created with the Errorf() function. Unlike the
// similarly named function in the fmt package, the formatting pattern is
// kept alongside the placeholder values. The pattern acts as the identity
// of the error and can be tested for with the Is() function:
//
//	e := curated.Errorf("dac: %v", err)
//
//	if curated.Is(e, "dac: %v") {
//		...
//	}
//
// Sentinel patterns can therefore be declared as plain string constants,
// which is how packages in this project advertise the errors they return.
//
// The Has() function is like Is() but will search the whole error chain
// for the pattern. Wrapped curated errors also co-operate with the
// errors.Unwrap() function from the standard library.
package curated
