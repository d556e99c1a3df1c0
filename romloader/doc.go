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

// Package romloader reads the binary image that is to be split.
//
// The image is either a plain file or the first file inside a zip, 7z or rar
// archive. The Load() function handles both cases:
//
//	ld := romloader.NewLoader("roms/game.zip")
//	err := ld.Load()
//	if err != nil {
//		return err
//	}
//
// After a successful Load() the Data field contains the entire image and the
// Hash field contains the SHA1 hash of the image.
//
// The ShortName() function returns the name that output files should be based
// on. For a plain file this is the name of the file without the extension. For
// an archive it is the name of the file in the archive that supplied the data,
// so that "roms/game.zip" containing "game.bin" results in "game".
package romloader
