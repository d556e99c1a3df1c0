// This file is part of splitrom.
//
// splitrom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// splitrom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with splitrom.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that raise errors
// worth checking for should declare the pattern as a const string, suitably
// named and commented. For example:
//
//	// NotFound is returned when the input file does not exist.
//	const NotFound = "romloader: file not found: %s"
//
//	err := curated.Errorf(NotFound, filename)
//
//	if curated.Is(err, NotFound) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain:
//
//	f := curated.Errorf("splitrom: %v", err)
//
//	if curated.Has(f, NotFound) {
//		fmt.Println("true")
//	}
//
// The Error() implementation normalises the chain so that duplicate adjacent
// parts are removed. A function can therefore wrap an error with its package
// prefix without worrying whether the callee did the same:
//
//	romloader: romloader: file not found: foo.bin
//
// is printed as:
//
//	romloader: file not found: foo.bin
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ', as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Curated errors also take part in the standard library's errors.Is() and
// errors.As() functions. Unwrap() returns every error found among the
// placeholder values, so an *fs.PathError passed to Errorf() can still be
// tested with errors.Is(err, fs.ErrNotExist).
package curated
