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

// Package byteplane separates a 16-bit binary image into two 8-bit byte
// planes, one for each of the two 8-bit memory chips that together form a
// 16-bit data bus. It also does the reverse, interleaving two planes into a
// single image.
//
// The upper plane holds the most significant byte of each 16-bit word and the
// lower plane holds the least significant byte. Which byte of each pair in the
// image is the most significant depends on the byte order:
//
//	image:        12 34 56 78
//
//	BigEndian:    upper 12 56   lower 34 78
//	LittleEndian: upper 34 78   lower 12 56
//
// An image with an odd number of bytes has a trailing byte that belongs to no
// word. What happens to it is decided by the OddPolicy.
package byteplane
