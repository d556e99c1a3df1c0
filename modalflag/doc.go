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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows a different
// set of flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called without arguments. This allows the same argument list to be parsed
// in stages, one stage per mode:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("SPLIT", "JOIN")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "SPLIT":
//		md.NewMode()
//		force := md.AddBoolAlias([]string{"f", "force"}, false, "overwrite without asking")
//		odd := md.AddChoice("odd-byte", "error", []string{"skip", "error"}, "odd byte policy")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode is the default mode. It is chosen when the first
// argument after the flags does not name a sub-mode, or when the flags
// themselves are not recognised at the current level. Sub-mode comparisons
// are case insensitive and modes are always reported in upper case.
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg(). Once the
// final mode has been reached, ie. no sub-modes have been added, flags may
// appear before or after the non-flag arguments. An argument after "--" is
// never treated as a flag.
//
// Alias flags share a single value between several names, most commonly a
// short and a long form of the same option. Choice flags restrict a string
// flag to a fixed list of values. A value outside of the list is a ParseError.
package modalflag
