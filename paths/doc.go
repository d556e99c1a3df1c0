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

// Package paths contains functions to prepare the paths of the files written
// by splitrom.
//
// The OutputPair() function decides where the two byte planes are written.
// The policy is simple. With no prefix, the planes are written alongside the
// input file and are named after it:
//
//	roms/game.bin -> roms/game.upper.bin, roms/game.lower.bin
//
// If the prefix is an existing directory then the planes are written to that
// directory, still named after the input file:
//
//	-o out/ roms/game.bin -> out/game.upper.bin, out/game.lower.bin
//
// Otherwise the prefix is the path and name of the planes, less the suffix:
//
//	-o out/chip roms/game.bin -> out/chip.upper.bin, out/chip.lower.bin
package paths
