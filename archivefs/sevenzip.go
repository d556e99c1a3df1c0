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

package archivefs

import (
	"io"

	"github.com/bodgit/sevenzip"

	"github.com/jetsetilly/splitrom/curated"
)

// SevenZipDecoder implements the Decoder interface for 7z archives.
type SevenZipDecoder struct{}

// Entries implements the Decoder interface. Entries are in the order they
// appear in the archive header.
func (SevenZipDecoder) Entries(filename string) ([]Entry, error) {
	if err := checkSignature(filename); err != nil {
		return nil, err
	}

	zr, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: 7z: %v", err)
	}
	defer zr.Close()

	ent := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		fi := f.FileInfo()
		ent = append(ent, Entry{
			Name:  f.Name,
			IsDir: fi.IsDir(),
			Size:  fi.Size(),
		})
	}

	return ent, nil
}

// ReadEntry implements the Decoder interface.
func (SevenZipDecoder) ReadEntry(filename string, name string) ([]byte, error) {
	zr, err := sevenzip.OpenReader(filename)
	if err != nil {
		return nil, curated.Errorf("archivefs: 7z: %v", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}

		r, err := f.Open()
		if err != nil {
			return nil, curated.Errorf("archivefs: 7z: %v", err)
		}
		defer r.Close()

		b, err := io.ReadAll(r)
		if err != nil {
			return nil, curated.Errorf("archivefs: 7z: %v", err)
		}
		return b, nil
	}

	return nil, curated.Errorf("archivefs: 7z: no entry named %s", name)
}
